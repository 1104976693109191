package commands

import (
	"context"
	"time"

	"lastmile/internal/core/domain/model/shipment"
	"lastmile/internal/core/domain/services"
)

// CreateShipmentCommandHandler registers new shipments.
// The shipment starts as placed with the initial warehouse event, and its
// tracking number is allocated by the repository inside the transaction.
//
// Example:
//
//	handler := NewCreateShipmentCommandHandler(uowFactory, services.NewAccessPolicy())
//	id, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("shipment creation failed: %w", err)
//	}
//	fmt.Printf("Shipment %d placed", id)
type CreateShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
	authorizer Authorizer
	now        func() time.Time
}

// NewCreateShipmentCommandHandler creates a handler for shipment creation.
func NewCreateShipmentCommandHandler(uowFactory ShipmentUoWFactory, authorizer Authorizer) CreateShipmentCommandHandler {
	return CreateShipmentCommandHandler{
		uowFactory: uowFactory,
		authorizer: authorizer,
		now:        time.Now,
	}
}

// Handle authorizes the actor, then creates and stores the shipment.
// Returns the new tracking number.
func (h *CreateShipmentCommandHandler) Handle(ctx context.Context, cmd CreateShipmentCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	if err := h.authorizer.AuthorizePrincipal(cmd.Actor(), services.CreateShipment); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.ShipmentRepository()
	id, err := repo.NextID(ctx)
	if err != nil {
		return 0, err
	}

	aggregate, err := shipment.NewShipment(
		id,
		cmd.PackageDetails(),
		cmd.Recipient(),
		cmd.Seller(),
		cmd.DestinationCode(),
		repo,
		h.now().UTC(),
	)
	if err != nil {
		return 0, err
	}

	if err = repo.Add(ctx, aggregate); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return id, nil
}

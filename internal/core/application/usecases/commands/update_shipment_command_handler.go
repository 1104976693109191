package commands

import (
	"context"
	"time"

	"lastmile/internal/core/domain/model/shipment"
	"lastmile/internal/core/domain/services"
)

// UpdateShipmentCommandHandler applies partial updates to shipments.
// A status change is checked against the transition graph and recorded as a
// tracking event by the aggregate itself.
type UpdateShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
	authorizer Authorizer
	now        func() time.Time
}

// NewUpdateShipmentCommandHandler creates a handler for shipment updates.
func NewUpdateShipmentCommandHandler(uowFactory ShipmentUoWFactory, authorizer Authorizer) UpdateShipmentCommandHandler {
	return UpdateShipmentCommandHandler{
		uowFactory: uowFactory,
		authorizer: authorizer,
		now:        time.Now,
	}
}

// Handle returns the updated shipment. On any error nothing is stored.
func (h *UpdateShipmentCommandHandler) Handle(ctx context.Context, cmd UpdateShipmentCommand) (*shipment.Shipment, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if err := h.authorizer.AuthorizePrincipal(cmd.Actor(), services.UpdateShipment); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.ShipmentRepository()
	aggregate, err := repo.Get(ctx, cmd.ShipmentID())
	if err != nil {
		return nil, err
	}

	if err = aggregate.Update(cmd.Patch(), repo, h.now().UTC()); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}

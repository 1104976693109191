package commands

import (
	"context"

	"lastmile/internal/core/domain/services"
)

// DeleteShipmentCommandHandler removes shipments. The tracking number of a
// deleted shipment is never handed out again.
type DeleteShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
	authorizer Authorizer
}

func NewDeleteShipmentCommandHandler(uowFactory ShipmentUoWFactory, authorizer Authorizer) DeleteShipmentCommandHandler {
	return DeleteShipmentCommandHandler{
		uowFactory: uowFactory,
		authorizer: authorizer,
	}
}

func (h *DeleteShipmentCommandHandler) Handle(ctx context.Context, cmd DeleteShipmentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.authorizer.AuthorizePrincipal(cmd.Actor(), services.DeleteShipment); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.ShipmentRepository().Delete(ctx, cmd.ShipmentID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

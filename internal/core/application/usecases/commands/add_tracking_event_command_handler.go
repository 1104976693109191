package commands

import (
	"context"
	"time"

	"lastmile/internal/core/domain/model/shipment"
	"lastmile/internal/core/domain/services"
)

// AddTrackingEventCommandHandler appends tracking events to shipments.
type AddTrackingEventCommandHandler struct {
	uowFactory ShipmentUoWFactory
	authorizer Authorizer
	now        func() time.Time
}

func NewAddTrackingEventCommandHandler(uowFactory ShipmentUoWFactory, authorizer Authorizer) AddTrackingEventCommandHandler {
	return AddTrackingEventCommandHandler{
		uowFactory: uowFactory,
		authorizer: authorizer,
		now:        time.Now,
	}
}

// Handle appends the event and moves the shipment to the reported status.
// Returns the stored event.
func (h *AddTrackingEventCommandHandler) Handle(
	ctx context.Context,
	cmd AddTrackingEventCommand,
) (shipment.TrackingEvent, error) {
	if err := cmd.Validate(); err != nil {
		return shipment.TrackingEvent{}, err
	}

	if err := h.authorizer.AuthorizePrincipal(cmd.Actor(), services.AddTrackingEvent); err != nil {
		return shipment.TrackingEvent{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return shipment.TrackingEvent{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.ShipmentRepository()
	aggregate, err := repo.Get(ctx, cmd.ShipmentID())
	if err != nil {
		return shipment.TrackingEvent{}, err
	}

	event, err := aggregate.AppendEvent(cmd.Location(), cmd.Description(), cmd.Status(), repo, h.now().UTC())
	if err != nil {
		return shipment.TrackingEvent{}, err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return shipment.TrackingEvent{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return shipment.TrackingEvent{}, err
	}

	return event, nil
}

package queries

import (
	"context"

	"lastmile/internal/core/domain/model/shipment"
	"lastmile/internal/core/domain/services"
	"lastmile/internal/core/ports"
)

type GetTrackingHistoryQueryHandler struct {
	reader     ports.ShipmentReader
	authorizer Authorizer
}

func NewGetTrackingHistoryQueryHandler(reader ports.ShipmentReader, authorizer Authorizer) GetTrackingHistoryQueryHandler {
	return GetTrackingHistoryQueryHandler{reader: reader, authorizer: authorizer}
}

// Handle returns the events in append order.
func (h GetTrackingHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetTrackingHistoryQuery,
) ([]shipment.TrackingEvent, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if err := h.authorizer.AuthorizePrincipal(query.Actor(), services.ViewTrackingHistory); err != nil {
		return nil, err
	}

	s, err := h.reader.Get(ctx, query.ShipmentID())
	if err != nil {
		return nil, err
	}
	return s.TrackingEvents(), nil
}

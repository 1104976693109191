package queries

import (
	"context"

	"lastmile/internal/core/domain/services"
	"lastmile/internal/core/ports"
)

// ListShipmentsQueryHandler reads shipment summaries from the store.
type ListShipmentsQueryHandler struct {
	reader     ports.ShipmentReader
	authorizer Authorizer
}

func NewListShipmentsQueryHandler(reader ports.ShipmentReader, authorizer Authorizer) ListShipmentsQueryHandler {
	return ListShipmentsQueryHandler{reader: reader, authorizer: authorizer}
}

// Handle returns summaries in insertion order. An empty result is not an error.
func (h ListShipmentsQueryHandler) Handle(ctx context.Context, query ListShipmentsQuery) ([]ShipmentSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if err := h.authorizer.AuthorizePrincipal(query.Actor(), services.ListShipments); err != nil {
		return nil, err
	}

	shipments, err := h.reader.List(ctx, ports.ShipmentFilter{
		Status:          query.Status(),
		DestinationCode: query.DestinationCode(),
		Limit:           query.Limit(),
	})
	if err != nil {
		return nil, err
	}

	summaries := make([]ShipmentSummary, 0, len(shipments))
	for _, s := range shipments {
		summaries = append(summaries, newShipmentSummary(s))
	}
	return summaries, nil
}

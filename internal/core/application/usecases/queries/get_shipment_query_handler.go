package queries

import (
	"context"

	"lastmile/internal/core/domain/model/shipment"
	"lastmile/internal/core/domain/services"
	"lastmile/internal/core/ports"
)

type GetShipmentQueryHandler struct {
	reader     ports.ShipmentReader
	authorizer Authorizer
}

func NewGetShipmentQueryHandler(reader ports.ShipmentReader, authorizer Authorizer) GetShipmentQueryHandler {
	return GetShipmentQueryHandler{reader: reader, authorizer: authorizer}
}

// Handle returns a copy of the aggregate.
// Returns *errs.ObjectNotFoundError when the shipment does not exist.
func (h GetShipmentQueryHandler) Handle(ctx context.Context, query GetShipmentQuery) (*shipment.Shipment, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if err := h.authorizer.AuthorizePrincipal(query.Actor(), services.GetShipment); err != nil {
		return nil, err
	}

	return h.reader.Get(ctx, query.ShipmentID())
}

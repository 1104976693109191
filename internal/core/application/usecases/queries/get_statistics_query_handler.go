package queries

import (
	"context"

	"lastmile/internal/core/domain/services"
	"lastmile/internal/core/ports"
)

type GetStatisticsQueryHandler struct {
	reader     ports.ShipmentReader
	authorizer Authorizer
}

func NewGetStatisticsQueryHandler(reader ports.ShipmentReader, authorizer Authorizer) GetStatisticsQueryHandler {
	return GetStatisticsQueryHandler{reader: reader, authorizer: authorizer}
}

func (h GetStatisticsQueryHandler) Handle(ctx context.Context, query GetStatisticsQuery) (Statistics, error) {
	if err := query.Validate(); err != nil {
		return Statistics{}, err
	}

	if err := h.authorizer.AuthorizePrincipal(query.Actor(), services.ViewStatistics); err != nil {
		return Statistics{}, err
	}

	counts, err := h.reader.CountByStatus(ctx)
	if err != nil {
		return Statistics{}, err
	}

	total := 0
	for _, n := range counts {
		total += n
	}
	return Statistics{Total: total, ByStatus: counts}, nil
}

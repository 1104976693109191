package queries

import (
	"errors"

	"lastmile/internal/core/domain/model/shipment"
	"lastmile/internal/core/domain/model/user"
	"lastmile/internal/pkg/guard"
)

var ErrGetStatisticsQueryIsNotConstructed = errors.New(
	"GetStatisticsQuery must be created via NewGetStatisticsQuery constructor",
)

// GetStatisticsQuery counts shipments overall and per status.
type GetStatisticsQuery struct {
	actor user.Principal
	guard guard.ConstructorGuard
}

func NewGetStatisticsQuery(actor user.Principal) GetStatisticsQuery {
	return GetStatisticsQuery{actor: actor, guard: guard.NewConstructorGuard()}
}

func (q GetStatisticsQuery) Validate() error {
	return q.guard.Validate(ErrGetStatisticsQueryIsNotConstructed)
}

func (q GetStatisticsQuery) Actor() user.Principal { return q.actor }

// Statistics holds shipment counts. Statuses without shipments are absent
// from ByStatus.
type Statistics struct {
	Total    int
	ByStatus map[shipment.Status]int
}

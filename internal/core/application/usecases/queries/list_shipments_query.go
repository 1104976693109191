// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return read models tailored to a specific use case.
package queries

import (
	"errors"
	"time"

	"lastmile/internal/core/domain/model/shipment"
	"lastmile/internal/core/domain/model/user"
	"lastmile/internal/pkg/errs"
	"lastmile/internal/pkg/guard"
)

const (
	DefaultListLimit = 10
	MaxListLimit     = 100
)

var ErrListShipmentsQueryIsNotConstructed = errors.New(
	"ListShipmentsQuery must be created via NewListShipmentsQuery constructor",
)

// ListShipmentsQuery lists shipments, optionally filtered by status and
// destination. Filters are combined with AND and limit applies after them.
//
// Example:
//
//	status := shipment.Placed
//	query, err := NewListShipmentsQuery(principal, &status, nil, 10)
//	if err != nil {
//	    return err
//	}
//	summaries, err := handler.Handle(ctx, query)
type ListShipmentsQuery struct {
	actor           user.Principal
	status          *shipment.Status
	destinationCode *int
	limit           int

	guard guard.ConstructorGuard
}

// NewListShipmentsQuery validates limit against [1, MaxListLimit].
func NewListShipmentsQuery(
	actor user.Principal,
	status *shipment.Status,
	destinationCode *int,
	limit int,
) (ListShipmentsQuery, error) {
	if status != nil {
		if err := status.Validate(); err != nil {
			return ListShipmentsQuery{}, err
		}
	}
	if limit < 1 || limit > MaxListLimit {
		return ListShipmentsQuery{}, errs.NewValueIsOutOfRangeError("limit", limit, 1, MaxListLimit)
	}

	return ListShipmentsQuery{
		actor:           actor,
		status:          status,
		destinationCode: destinationCode,
		limit:           limit,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

func (q ListShipmentsQuery) Validate() error {
	return q.guard.Validate(ErrListShipmentsQueryIsNotConstructed)
}

func (q ListShipmentsQuery) Actor() user.Principal    { return q.actor }
func (q ListShipmentsQuery) Status() *shipment.Status { return q.status }
func (q ListShipmentsQuery) DestinationCode() *int    { return q.destinationCode }
func (q ListShipmentsQuery) Limit() int               { return q.limit }

// ShipmentSummary is the list view of a shipment.
type ShipmentSummary struct {
	ID              int64
	Content         string
	Weight          float64
	Status          shipment.Status
	DestinationCode int
	RecipientName   string
	CreatedAt       time.Time
}

func newShipmentSummary(s *shipment.Shipment) ShipmentSummary {
	return ShipmentSummary{
		ID:              s.ID(),
		Content:         s.PackageDetails().Content(),
		Weight:          s.PackageDetails().Weight(),
		Status:          s.Status(),
		DestinationCode: s.DestinationCode(),
		RecipientName:   s.Recipient().Name(),
		CreatedAt:       s.CreatedAt(),
	}
}

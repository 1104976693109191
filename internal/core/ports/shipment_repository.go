// Package ports defines the contracts between the tracking core and its
// infrastructure: repositories, the unit of work, read models and security
// primitives. Adapters implement them; use cases depend only on them.
package ports

import (
	"context"

	"lastmile/internal/core/domain/model/shipment"
)

// ShipmentRepository defines the write-side persistence contract for shipment
// aggregates. It is always bound to an active unit of work.
//
// The repository also hands out tracking event ids, so it can be passed
// directly to Shipment.Update and Shipment.AppendEvent.
type ShipmentRepository interface {
	shipment.EventIDGenerator

	// NextID allocates the next tracking number. Ids grow monotonically and are
	// never reused, even after deletes.
	NextID(ctx context.Context) (int64, error)

	// Add stores a new shipment. The id must come from NextID.
	Add(ctx context.Context, aggregate *shipment.Shipment) error

	// Update replaces a stored shipment with aggregate.
	// Returns *errs.ObjectNotFoundError when the shipment does not exist.
	Update(ctx context.Context, aggregate *shipment.Shipment) error

	// Get returns a private copy of the shipment that may be mutated freely
	// and stored back through Update.
	// Returns *errs.ObjectNotFoundError when the shipment does not exist.
	Get(ctx context.Context, id int64) (*shipment.Shipment, error)

	// Delete removes the shipment and its history.
	// Returns *errs.ObjectNotFoundError when the shipment does not exist.
	Delete(ctx context.Context, id int64) error
}

// ShipmentFilter narrows a shipment listing. Nil fields match everything;
// set fields are combined with AND. Limit is applied after filtering.
type ShipmentFilter struct {
	Status          *shipment.Status
	DestinationCode *int
	Limit           int
}

// ShipmentReader is the read-side contract used by queries. Reads never
// observe a half-applied unit of work and return copies.
type ShipmentReader interface {
	// List returns shipments matching filter in insertion order.
	List(ctx context.Context, filter ShipmentFilter) ([]*shipment.Shipment, error)

	// Get returns a copy of the shipment.
	// Returns *errs.ObjectNotFoundError when the shipment does not exist.
	Get(ctx context.Context, id int64) (*shipment.Shipment, error)

	// CountByStatus returns the number of shipments per current status.
	// Statuses without shipments are absent from the map.
	CountByStatus(ctx context.Context) (map[shipment.Status]int, error)
}

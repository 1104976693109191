package memory

import (
	"context"

	"lastmile/internal/core/domain/model/shipment"
	"lastmile/internal/core/domain/model/user"
	"lastmile/internal/core/ports"
	"lastmile/internal/pkg/errs"
)

// ShipmentReader serves queries under the store read lock.
type ShipmentReader struct {
	store *Store
}

// Shipments returns the read side of the shipment collection.
func (s *Store) Shipments() *ShipmentReader {
	return &ShipmentReader{store: s}
}

var _ ports.ShipmentReader = (*ShipmentReader)(nil)

// List walks shipments in insertion order and stops once Limit matches are
// collected. A non-positive Limit means no limit.
func (r *ShipmentReader) List(ctx context.Context, filter ports.ShipmentFilter) ([]*shipment.Shipment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	result := make([]*shipment.Shipment, 0)
	for _, id := range r.store.order {
		if filter.Limit > 0 && len(result) >= filter.Limit {
			break
		}

		sh := r.store.shipments[id]
		if filter.Status != nil && sh.Status() != *filter.Status {
			continue
		}
		if filter.DestinationCode != nil && sh.DestinationCode() != *filter.DestinationCode {
			continue
		}
		result = append(result, sh.Clone())
	}

	return result, nil
}

func (r *ShipmentReader) Get(ctx context.Context, id int64) (*shipment.Shipment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	sh, ok := r.store.shipments[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("Shipment", id)
	}
	return sh.Clone(), nil
}

func (r *ShipmentReader) CountByStatus(ctx context.Context) (map[shipment.Status]int, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	counts := make(map[shipment.Status]int)
	for _, sh := range r.store.shipments {
		counts[sh.Status()]++
	}
	return counts, nil
}

// UserReader resolves users under the store read lock.
type UserReader struct {
	store *Store
}

// Users returns the read side of the user directory.
func (s *Store) Users() *UserReader {
	return &UserReader{store: s}
}

var _ ports.UserReader = (*UserReader)(nil)

func (r *UserReader) Get(ctx context.Context, username string) (*user.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	u, ok := r.store.users[username]
	if !ok {
		return nil, errs.NewObjectNotFoundError("User", username)
	}
	return u.Clone(), nil
}

// Count returns the number of registered users.
func (r *UserReader) Count() int {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return len(r.store.users)
}

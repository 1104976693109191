// Package memory provides the in-memory implementation of the tracking store:
// the shipment and user collections, their readers, and a Unit of Work that
// linearizes every mutation.
//
// Key Features:
//   - One store-wide RWMutex: a unit of work holds the write lock from Begin
//     until Commit or Rollback, readers share the read lock
//   - Changes are staged inside the unit of work and applied on Commit, so
//     readers never observe a half-applied mutation
//   - Tracking numbers come from a high-water mark and are never reused
//   - Tracking event ids come from one atomic counter shared by all shipments
//   - Every value crossing the store boundary is a copy
//
// Usage Patterns:
//
//	store := memory.NewStore()
//	if err := store.Seed(shipments, users); err != nil {
//	    return err
//	}
//
//	factory := memory.NewUnitOfWorkFactory(store)
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer uow.Rollback(ctx)
//
//	repo := uow.ShipmentRepository()
//	// ... perform operations
//
//	return uow.Commit(ctx)
package memory

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"lastmile/internal/core/domain/model/shipment"
	"lastmile/internal/core/domain/model/user"
	"lastmile/internal/pkg/errs"
)

// FirstShipmentID is the tracking number handed to the first shipment of an
// empty store.
const FirstShipmentID int64 = 12701

var ErrInvalidTransaction = errors.New("invalid transaction")

// Store owns all shipments and users of the process.
type Store struct {
	mu sync.RWMutex

	shipments map[int64]*shipment.Shipment
	// order keeps shipment ids in insertion order
	order []int64

	users map[string]*user.User
	// userOrder keeps usernames in insertion order
	userOrder []string

	// nextShipmentID only ever grows
	nextShipmentID int64
	lastEventID    atomic.Int64
}

func NewStore() *Store {
	return &Store{
		shipments:      make(map[int64]*shipment.Shipment),
		users:          make(map[string]*user.User),
		nextShipmentID: FirstShipmentID,
	}
}

// NextEventID allocates a tracking event id. Safe for concurrent use.
func (s *Store) NextEventID() int64 {
	return s.lastEventID.Add(1)
}

// Seed loads existing shipments and users. Id counters move past the highest
// seeded values.
func (s *Store) Seed(shipments []*shipment.Shipment, users []*user.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, sh := range shipments {
		if err := sh.Validate(); err != nil {
			return err
		}
		if _, exists := s.shipments[sh.ID()]; exists {
			return errs.NewAlreadyExistsErrorWithCause("Shipment", "id", fmt.Errorf("%d", sh.ID()))
		}
		s.insertShipment(sh.Clone())

		if sh.ID() >= s.nextShipmentID {
			s.nextShipmentID = sh.ID() + 1
		}
		for _, event := range sh.TrackingEvents() {
			if event.ID() > s.lastEventID.Load() {
				s.lastEventID.Store(event.ID())
			}
		}
	}

	for _, u := range users {
		if err := u.Validate(); err != nil {
			return err
		}
		if err := s.checkUserIsNew(u, nil); err != nil {
			return err
		}
		s.insertUser(u.Clone())
	}

	return nil
}

func (s *Store) insertShipment(sh *shipment.Shipment) {
	if _, exists := s.shipments[sh.ID()]; !exists {
		s.order = append(s.order, sh.ID())
	}
	s.shipments[sh.ID()] = sh
}

func (s *Store) removeShipment(id int64) {
	if _, exists := s.shipments[id]; !exists {
		return
	}
	delete(s.shipments, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

func (s *Store) insertUser(u *user.User) {
	if _, exists := s.users[u.Username()]; !exists {
		s.userOrder = append(s.userOrder, u.Username())
	}
	s.users[u.Username()] = u
}

// checkUserIsNew reports a username or e-mail collision with stored users and
// the users staged in pending. Callers hold the write lock.
func (s *Store) checkUserIsNew(u *user.User, pending map[string]*user.User) error {
	if _, exists := pending[u.Username()]; exists {
		return errs.NewAlreadyExistsError("User", "username")
	}
	if _, exists := s.users[u.Username()]; exists {
		return errs.NewAlreadyExistsError("User", "username")
	}
	for _, candidates := range []map[string]*user.User{s.users, pending} {
		for _, existing := range candidates {
			if existing.Email().IsEqual(u.Email()) {
				return errs.NewAlreadyExistsError("User", "email")
			}
		}
	}
	return nil
}

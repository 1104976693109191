package memory

import (
	"context"

	"lastmile/internal/core/domain/model/shipment"
	"lastmile/internal/core/domain/model/user"
	"lastmile/internal/core/ports"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

var tracer = otel.Tracer("lastmile/internal/adapters/out/memory")

// UnitOfWorkFactory creates UnitOfWork instances bound to one store.
//
// Example:
//
//	factory := NewUnitOfWorkFactory(store)
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer uow.Rollback(ctx)
type UnitOfWorkFactory struct {
	store *Store
}

func NewUnitOfWorkFactory(store *Store) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{store: store}
}

// Create produces a new UnitOfWork. Instances are not safe for concurrent
// use; each goroutine creates its own.
func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{store: f.store}
}

// UnitOfWork stages changes to the store and applies them atomically.
//
// Begin takes the store write lock and keeps it until Commit or Rollback, so
// units of work run one at a time. Handlers must always defer Rollback after
// a successful Begin; calling it after Commit returns ErrInvalidTransaction
// and is harmless.
type UnitOfWork struct {
	store *Store
	tx    *transaction
}

// transaction is the staging area of an open unit of work.
type transaction struct {
	// shipments holds staged versions; a nil value marks a delete
	shipments map[int64]*shipment.Shipment
	// touched keeps staged shipment ids in the order they were first staged
	touched []int64

	users        map[string]*user.User
	touchedUsers []string

	nextShipmentID int64
}

// Begin opens the transaction. Calling Begin on an open unit of work is a
// no-op.
func (uow *UnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	_, span := tracer.Start(ctx, "memory.UnitOfWork.Begin")
	uow.store.mu.Lock()
	span.End()

	if err := ctx.Err(); err != nil {
		uow.store.mu.Unlock()
		return err
	}

	uow.tx = &transaction{
		shipments:      make(map[int64]*shipment.Shipment),
		users:          make(map[string]*user.User),
		nextShipmentID: uow.store.nextShipmentID,
	}
	return nil
}

// Commit applies every staged change and releases the store.
func (uow *UnitOfWork) Commit(ctx context.Context) error {
	if uow.tx == nil {
		return ErrInvalidTransaction
	}

	_, span := tracer.Start(ctx, "memory.UnitOfWork.Commit")
	span.SetAttributes(
		attribute.Int("shipments.touched", len(uow.tx.touched)),
		attribute.Int("users.touched", len(uow.tx.touchedUsers)),
	)
	defer span.End()

	store := uow.store
	for _, id := range uow.tx.touched {
		if staged := uow.tx.shipments[id]; staged != nil {
			store.insertShipment(staged)
		} else {
			store.removeShipment(id)
		}
	}
	for _, username := range uow.tx.touchedUsers {
		store.insertUser(uow.tx.users[username])
	}
	store.nextShipmentID = uow.tx.nextShipmentID

	uow.tx = nil
	store.mu.Unlock()
	return nil
}

// Rollback discards the staged changes and releases the store.
func (uow *UnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return ErrInvalidTransaction
	}

	uow.tx = nil
	uow.store.mu.Unlock()
	return nil
}

// ShipmentRepository returns a repository bound to this unit of work. Its
// methods return ErrInvalidTransaction unless the unit of work is open.
func (uow *UnitOfWork) ShipmentRepository() ports.ShipmentRepository {
	return &shipmentRepository{uow: uow}
}

// UserRepository returns a repository bound to this unit of work.
func (uow *UnitOfWork) UserRepository() ports.UserRepository {
	return &userRepository{uow: uow}
}

func (tx *transaction) stageShipment(id int64, sh *shipment.Shipment) {
	if _, staged := tx.shipments[id]; !staged {
		tx.touched = append(tx.touched, id)
	}
	tx.shipments[id] = sh
}

func (tx *transaction) stageUser(u *user.User) {
	if _, staged := tx.users[u.Username()]; !staged {
		tx.touchedUsers = append(tx.touchedUsers, u.Username())
	}
	tx.users[u.Username()] = u
}

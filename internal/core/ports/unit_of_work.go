package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// Mutations staged through its repositories become visible atomically on
// Commit and are discarded on Rollback. Units of work are linearized: while
// one is open, no other can begin.
type UnitOfWork interface {
	// Begin starts a new transaction.
	Begin(ctx context.Context) error

	// Commit applies the staged changes.
	// Returns error if no active transaction.
	Commit(ctx context.Context) error

	// Rollback discards the staged changes.
	// Returns error if no active transaction.
	Rollback(ctx context.Context) error

	// ShipmentRepository returns a repository bound to the current transaction.
	ShipmentRepository() ShipmentRepository

	// UserRepository returns a repository bound to the current transaction.
	UserRepository() UserRepository
}

package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork per business operation.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is a transaction boundary around the order repository.
type UnitOfWork interface {
	// Begin starts a transaction. Calling it twice keeps the first transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// OrderRepository returns a repository bound to the current transaction,
	// or to the plain connection when no transaction is active.
	OrderRepository() OrderRepository
}

// Package ports defines the contracts between the brokerage core and its
// adapters: repositories per aggregate, the unit of work that binds them to one
// transaction, credential hashing and event publishing.
package ports

import (
	"context"
)

// UnitOfWorkFactory creates a new UnitOfWork for each command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is a business transaction boundary. Repositories obtained from it
// after Begin share the transaction. Domain events recorded by aggregates the
// repositories saved are published after a successful Commit.
type UnitOfWork interface {
	Begin(ctx context.Context) error

	// Commit commits the transaction and then publishes the collected events.
	Commit(ctx context.Context) error

	// Rollback discards the transaction and the collected events. It fails
	// when no transaction is active, which makes a deferred Rollback after
	// Commit harmless.
	Rollback(ctx context.Context) error

	CustomerRepository() CustomerRepository
	DriverRepository() DriverRepository
	OrderRepository() OrderRepository
	SolutionRepository() SolutionRepository
}

// Package commands contains the write use cases of the brokerage.
// Every handler validates its command, opens one unit of work, loads the
// aggregates it needs, applies domain logic and commits; any failure rolls the
// whole command back.
package commands

import (
	"context"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/order"
	"freight/internal/core/ports"
	"freight/internal/pkg/errs"
)

// Unit of Work interfaces narrowed to what each handler touches.
type (
	// TxManager handles the transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	DriverRepoFactory interface {
		DriverRepository() ports.DriverRepository
	}

	CustomerRepoFactory interface {
		CustomerRepository() ports.CustomerRepository
	}

	SolutionRepoFactory interface {
		SolutionRepository() ports.SolutionRepository
	}

	// OrderUoW serves commands that only move an order through its lifecycle.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// DriverUoW serves driver registration.
	DriverUoW interface {
		TxManager
		DriverRepoFactory
	}

	DriverUoWFactory interface {
		Create() DriverUoW
	}

	// CustomerUoW serves customer registration.
	CustomerUoW interface {
		TxManager
		CustomerRepoFactory
	}

	CustomerUoWFactory interface {
		Create() CustomerUoW
	}

	// UoW coordinates orders, drivers and solutions in one transaction.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   o, err := loadOrder(ctx, uow.OrderRepository(), customerID, orderID)
	//   // ... reserve drivers, save solutions
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		OrderRepoFactory
		DriverRepoFactory
		SolutionRepoFactory
	}

	UoWFactory interface {
		Create() UoW
	}
)

// loadOrder fetches an order of the customer. An order placed by someone else
// is reported exactly like a missing one.
func loadOrder(ctx context.Context, repo ports.OrderRepository, customerID, orderID kernel.UUID) (*order.Order, error) {
	o, err := repo.Get(ctx, customerID, orderID)
	if err != nil {
		return nil, err
	}
	if !o.BelongsTo(customerID) {
		return nil, errs.NewObjectNotFoundError("order", orderID)
	}
	return o, nil
}

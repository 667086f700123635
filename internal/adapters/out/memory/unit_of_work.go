package memory

import (
	"context"
	"errors"
	"log/slog"

	"freight/internal/adapters/out/events"
	"freight/internal/core/ports"
)

// ErrNoActiveTransaction is returned by Commit and Rollback without Begin.
var ErrNoActiveTransaction = errors.New("no active transaction")

// UnitOfWorkFactory creates units of work over one shared Store.
type UnitOfWorkFactory struct {
	store     *Store
	publisher ports.EventPublisher
	logger    *slog.Logger
}

func NewUnitOfWorkFactory(store *Store, publisher ports.EventPublisher, logger *slog.Logger) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{store: store, publisher: publisher, logger: logger}
}

func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{
		store:     f.store,
		publisher: f.publisher,
		logger:    f.logger,
	}
}

// UnitOfWork stages writes between Begin and Commit. Without Begin every write
// is committed on its own. A UnitOfWork must not be shared between goroutines.
type UnitOfWork struct {
	store     *Store
	publisher ports.EventPublisher
	logger    *slog.Logger
	tx        *changeSet
	events    events.Collector
}

func (u *UnitOfWork) Begin(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if u.tx == nil {
		u.tx = newChangeSet()
	}
	return nil
}

func (u *UnitOfWork) Commit(ctx context.Context) error {
	if u.tx == nil {
		return ErrNoActiveTransaction
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	cs := u.tx
	u.tx = nil
	if err := u.store.apply(cs); err != nil {
		u.events.Reset()
		return err
	}

	u.events.Flush(ctx, u.publisher, u.logger)
	return nil
}

func (u *UnitOfWork) Rollback(_ context.Context) error {
	if u.tx == nil {
		return ErrNoActiveTransaction
	}
	u.tx = nil
	u.events.Reset()
	return nil
}

func (u *UnitOfWork) CustomerRepository() ports.CustomerRepository {
	return &CustomerRepository{uow: u}
}

func (u *UnitOfWork) DriverRepository() ports.DriverRepository {
	return &DriverRepository{uow: u}
}

func (u *UnitOfWork) OrderRepository() ports.OrderRepository {
	return &OrderRepository{uow: u}
}

func (u *UnitOfWork) SolutionRepository() ports.SolutionRepository {
	return &SolutionRepository{uow: u}
}

// stage runs write against the active change set, or against a fresh one that
// is committed right away when no transaction is active.
func (u *UnitOfWork) stage(ctx context.Context, aggregate any, write func(cs *changeSet) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if u.tx != nil {
		if err := write(u.tx); err != nil {
			return err
		}
		u.events.Track(aggregate)
		return nil
	}

	cs := newChangeSet()
	if err := write(cs); err != nil {
		return err
	}
	if err := u.store.apply(cs); err != nil {
		return err
	}
	u.events.Track(aggregate)
	u.events.Flush(ctx, u.publisher, u.logger)
	return nil
}

package ports

import (
	"context"

	"freight/internal/core/domain/model/driver"
	"freight/internal/core/domain/model/kernel"
)

// DriverRepository defines the persistence contract for driver aggregates.
type DriverRepository interface {
	// Add persists a newly registered driver.
	Add(ctx context.Context, aggregate *driver.Driver) error

	// Update is a compare-and-swap on the driver version: it fails with
	// errs.ErrConcurrentModification when another transaction changed the
	// driver since it was loaded.
	Update(ctx context.Context, aggregate *driver.Driver) error

	Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error)

	// FindByStatuses returns at most limit drivers whose status is one of
	// statuses, oldest registration first. A non-positive limit means no limit.
	FindByStatuses(ctx context.Context, statuses []driver.Status, limit int) ([]*driver.Driver, error)

	// FindUnproposedCandidates returns at most limit candidates that no open
	// solution proposes, oldest registration first. A non-positive limit means
	// no limit.
	FindUnproposedCandidates(ctx context.Context, limit int) ([]*driver.Driver, error)
}

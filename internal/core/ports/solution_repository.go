package ports

import (
	"context"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/solution"
)

// SolutionRepository stores the open proposals of orders waiting for a decision.
type SolutionRepository interface {
	// AddAll saves the solutions of one matching round as a single batch.
	AddAll(ctx context.Context, solutions []*solution.Solution) error

	Get(ctx context.Context, id kernel.UUID) (*solution.Solution, error)

	// GetAllByOrder returns the solutions of the order, cheapest first.
	GetAllByOrder(ctx context.Context, orderID kernel.UUID) ([]*solution.Solution, error)

	DeleteAllByOrder(ctx context.Context, orderID kernel.UUID) error

	// CountByDriver counts the open solutions proposing the driver.
	CountByDriver(ctx context.Context, driverID kernel.UUID) (int64, error)
}

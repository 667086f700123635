package ports

import (
	"context"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Orders are always addressed through their customer: an order placed by
// another customer is reported as errs.ErrObjectNotFound.
type OrderRepository interface {
	// Add persists a new order.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists the order only if the stored version still equals
	// aggregate.Version(), then increments the version. A lost race fails
	// with errs.ErrConcurrentModification.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order of the customer.
	Get(ctx context.Context, customerID, orderID kernel.UUID) (*order.Order, error)

	// GetAllByCustomer retrieves the orders of the customer, newest first.
	GetAllByCustomer(ctx context.Context, customerID kernel.UUID) ([]*order.Order, error)
}

package queries

import (
	"context"
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/order"
	"freight/internal/core/ports"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

var ErrOrderQueryIsNotConstructed = errors.New("OrderQuery must be created via NewOrderQuery constructor")

// OrderQuery addresses one order of the acting customer.
type OrderQuery struct {
	customerID kernel.UUID
	orderID    kernel.UUID

	guard guard.ConstructorGuard
}

func NewOrderQuery(customerID, orderID kernel.UUID) (OrderQuery, error) {
	if err := errors.Join(customerID.Validate(), orderID.Validate()); err != nil {
		return OrderQuery{}, err
	}
	return OrderQuery{
		customerID: customerID,
		orderID:    orderID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (q OrderQuery) Validate() error {
	return q.guard.Validate(ErrOrderQueryIsNotConstructed)
}

func (q OrderQuery) CustomerID() kernel.UUID {
	return q.customerID
}

func (q OrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// loadOrder reports an order of another customer as missing.
func loadOrder(ctx context.Context, orders ports.OrderRepository, q OrderQuery) (*order.Order, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}
	o, err := orders.Get(ctx, q.CustomerID(), q.OrderID())
	if err != nil {
		return nil, err
	}
	if !o.BelongsTo(q.CustomerID()) {
		return nil, errs.NewObjectNotFoundError("order", q.OrderID())
	}
	return o, nil
}

package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrOrderCommandIsNotConstructed = errors.New("OrderCommand must be created via NewOrderCommand constructor")

// OrderCommand addresses one order of the acting customer. It is the input of
// every lifecycle step that needs nothing but the order:
// GenerateSolutions, ConfirmAgreement, ConfirmPayment and CompleteOrder.
//
//	cmd, err := NewOrderCommand(customerID, orderID)
//	err = confirmPaymentHandler.Handle(ctx, cmd)
type OrderCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	orderID    kernel.UUID

	guard guard.ConstructorGuard
}

func NewOrderCommand(customerID, orderID kernel.UUID) (OrderCommand, error) {
	cmd := OrderCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setOrderID(orderID),
	); err != nil {
		return OrderCommand{}, err
	}

	return cmd, nil
}

func (c OrderCommand) Validate() error {
	return c.guard.Validate(ErrOrderCommandIsNotConstructed)
}

func (c OrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

func (c OrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *OrderCommand) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.customerID = id
	return nil
}

func (c *OrderCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.orderID = id
	return nil
}

package commands

import (
	"errors"
	"time"

	"freight/internal/core/domain/model/cargo"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CargoSpec is the raw cargo description submitted by a customer.
type CargoSpec struct {
	Type   string
	Width  float64
	Length float64
	Height float64
	Weight float64
}

// CreateOrderCommand represents a request to register a new shipment.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, customerID,
//	    CargoSpec{Type: "fragile", Width: 1, Length: 2, Height: 1, Weight: 40},
//	    "Moscow, Tverskaya 1", "Kazan, Baumana 5", nil)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//	err = handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	customerID  kernel.UUID
	cargo       cargo.Cargo
	addressFrom kernel.Address
	addressTo   kernel.Address
	endDate     *time.Time

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand parses the raw input into domain values and reports
// every invalid field at once.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	customerID kernel.UUID,
	spec CargoSpec,
	addressFrom string,
	addressTo string,
	endDate *time.Time,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		endDate: endDate,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerID(customerID),
		cmd.setCargo(spec),
		cmd.setAddressFrom(addressFrom),
		cmd.setAddressTo(addressTo),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

func (c CreateOrderCommand) Cargo() cargo.Cargo {
	return c.cargo
}

func (c CreateOrderCommand) AddressFrom() kernel.Address {
	return c.addressFrom
}

func (c CreateOrderCommand) AddressTo() kernel.Address {
	return c.addressTo
}

// EndDate is the optional delivery deadline.
func (c CreateOrderCommand) EndDate() *time.Time {
	return c.endDate
}

func (c *CreateOrderCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.orderID = id
	return nil
}

func (c *CreateOrderCommand) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.customerID = id
	return nil
}

func (c *CreateOrderCommand) setCargo(spec CargoSpec) error {
	cargoType, err := cargo.ParseType(spec.Type)
	if err != nil {
		return err
	}
	parsed, err := cargo.NewCargo(cargoType, cargo.Dimensions{
		Width:  spec.Width,
		Length: spec.Length,
		Height: spec.Height,
	}, spec.Weight)
	if err != nil {
		return err
	}
	c.cargo = parsed
	return nil
}

func (c *CreateOrderCommand) setAddressFrom(value string) error {
	a, err := kernel.NewAddress(value)
	if err != nil {
		return errors.Join(errors.New("address from"), err)
	}
	c.addressFrom = a
	return nil
}

func (c *CreateOrderCommand) setAddressTo(value string) error {
	a, err := kernel.NewAddress(value)
	if err != nil {
		return errors.Join(errors.New("address to"), err)
	}
	c.addressTo = a
	return nil
}

// Package cargo holds the Cargo value object owned by an order.
package cargo

import (
	"errors"
	"fmt"

	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

var ErrCargoIsNotConstructed = errors.New("Cargo must be created via NewCargo constructor")

// Dimensions are the outer measures of a cargo.
type Dimensions struct {
	Width  float64
	Length float64
	Height float64
}

// Cargo is what an order ships: its type and its physical dimensions and weight.
type Cargo struct {
	cargoType Type
	width     float64
	length    float64
	height    float64
	weight    float64

	guard guard.ConstructorGuard
}

func NewCargo(cargoType Type, dimensions Dimensions, weight float64) (Cargo, error) {
	c := Cargo{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		c.setType(cargoType),
		positive("width", dimensions.Width, &c.width),
		positive("length", dimensions.Length, &c.length),
		positive("height", dimensions.Height, &c.height),
		positive("weight", weight, &c.weight),
	); err != nil {
		return Cargo{}, err
	}

	return c, nil
}

func (c Cargo) Validate() error {
	return c.guard.Validate(ErrCargoIsNotConstructed)
}

func (c Cargo) Type() Type {
	return c.cargoType
}

func (c Cargo) Dimensions() Dimensions {
	return Dimensions{Width: c.width, Length: c.length, Height: c.height}
}

func (c Cargo) Weight() float64 {
	return c.weight
}

// Volume is width * length * height.
func (c Cargo) Volume() float64 {
	return c.width * c.length * c.height
}

func (c *Cargo) setType(t Type) error {
	if err := t.Validate(); err != nil {
		return err
	}
	c.cargoType = t
	return nil
}

func positive(name string, value float64, dst *float64) error {
	if !(value > 0) {
		return errs.NewValueIsInvalidErrorWithCause(name, fmt.Errorf("%v is not greater than 0", value))
	}
	*dst = value
	return nil
}

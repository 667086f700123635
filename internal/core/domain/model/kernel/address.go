package kernel

import (
	"errors"
	"strings"

	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

const maxAddressLength = 255

var ErrAddressIsNotConstructed = errors.New("Address must be created via NewAddress constructor")

// Address is a free-form postal address of a pickup or drop-off point.
type Address struct {
	value string
	guard guard.ConstructorGuard
}

func NewAddress(value string) (Address, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return Address{}, errs.NewValueIsRequiredError("address")
	}
	if len([]rune(value)) > maxAddressLength {
		return Address{}, errs.NewValueIsOutOfRangeError("address length", len([]rune(value)), 1, maxAddressLength)
	}
	return Address{value: value, guard: guard.NewConstructorGuard()}, nil
}

func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

func (a Address) String() string {
	return a.value
}

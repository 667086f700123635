// Package guard holds the constructor guard embedded by domain objects and commands.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the guard is a zero
// value and no specific error was supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks a value as built through its constructor. The value
// objects (cargo, address, person), the aggregates and every command and query
// embed one, and their Validate methods consult it first.
//
// The zero value reports itself as not constructed. A struct literal that
// skipped the constructor, and with it every range and format check, is
// therefore rejected the first time it reaches a handler or a repository
// instead of being persisted half-initialised.
//
// Example usage:
//
//	var ErrCargoIsNotConstructed = errors.New("Cargo must be created via NewCargo")
//
//	type Cargo struct {
//	    typ    Type
//	    weight float64
//	    guard  guard.ConstructorGuard
//	}
//
//	func NewCargo(typ Type, weight float64) (Cargo, error) {
//	    if weight <= 0 {
//	        return Cargo{}, errs.NewValueIsOutOfRangeError("weight", weight, 0, nil)
//	    }
//	    return Cargo{typ: typ, weight: weight, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c Cargo) Validate() error {
//	    return c.guard.Validate(ErrCargoIsNotConstructed)
//	}
//
// Commands follow the same shape: NewOrderCommand validates its identifiers and
// sets the guard, and every handler starts with cmd.Validate().
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard that validates successfully. Call it
// only at the end of a constructor, once every field has passed its checks.
//
// Example:
//
//	return OrderCommand{
//	    customerID: customerID,
//	    orderID:    orderID,
//	    guard:      guard.NewConstructorGuard(),
//	}, nil
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate reports whether the guarded value came from its constructor.
//
// Returns:
//   - nil if the guard was created by NewConstructorGuard
//   - validationError if the guard is a zero value
//   - ErrDefaultConstructorGuard if the guard is a zero value and
//     validationError is nil
//
// Example:
//
//	func (c OrderCommand) Validate() error {
//	    return c.guard.Validate(ErrOrderCommandIsNotConstructed)
//	}
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}

package kernel

import (
	"fmt"

	"freight/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrUUIDIsNotConstructed indicates that a UUID was declared as a zero value
// instead of being built by NewUUID, UUIDFromString or UUIDFromBytes.
// Validate returns it for the nil UUID.
var ErrUUIDIsNotConstructed = errs.NewValueIsRequiredError("UUID must be created via NewUUID, UUIDFromString, or UUIDFromBytes")

// UUID is the identifier value object of every aggregate in the brokerage:
// customers, drivers, orders and solutions. It wraps github.com/google/uuid and
// hides it behind constructors, so that domain code never handles a bare
// uuid.UUID and the nil UUID never passes validation.
//
// The zero value is invalid. Build identifiers with NewUUID for new aggregates,
// with UUIDFromString for identifiers arriving over HTTP, and with
// UUIDFromBytes for identifiers read back from storage.
//
// UUID is an immutable value and is safe to copy and share between goroutines.
// It is comparable, so it can be used as a map key.
//
// Example usage:
//
//	// A new order gets a fresh identifier
//	orderID := kernel.NewUUID()
//
//	// A path parameter is parsed and validated
//	solutionID, err := kernel.UUIDFromString(c.Param("solutionId"))
//	if err != nil {
//	    return err // errs.ErrValueIsInvalid
//	}
//
//	// Ownership checks compare identifiers
//	if !o.CustomerID().IsEqual(customerID) {
//	    return errs.NewObjectNotFoundError("order", orderID)
//	}
type UUID struct {
	id uuid.UUID
}

// NewUUID generates a random (version 4) identifier. It is the only way the
// brokerage creates identifiers for new customers, drivers, orders and
// solutions, and the result always passes Validate.
//
// Example:
//
//	d, err := driver.NewDriver(kernel.NewUUID(), person, driver.High, 12)
func NewUUID() UUID {
	return UUID{id: uuid.New()}
}

// UUIDFromString parses an identifier from text. It accepts the forms
// understood by uuid.Parse:
//   - "6ba7b810-9dad-11d1-80b4-00c04fd430c8"
//   - "{6ba7b810-9dad-11d1-80b4-00c04fd430c8}"
//   - "urn:uuid:6ba7b810-9dad-11d1-80b4-00c04fd430c8"
//   - "6ba7b8109dad11d180b400c04fd430c8"
//
// Malformed text fails with errs.ErrValueIsInvalid. The nil UUID
// ("00000000-0000-0000-0000-000000000000") parses but is rejected with
// ErrUUIDIsNotConstructed.
//
// Example:
//
//	orderID, err := kernel.UUIDFromString("550e8400-e29b-41d4-a716-446655440000")
//	if err != nil {
//	    return fmt.Errorf("order id: %w", err)
//	}
func UUIDFromString(s string) (UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, errs.NewValueIsInvalidErrorWithCause("UUID", fmt.Errorf("invalid UUID format: %w", err))
	}
	parsed := UUID{id: id}
	if err = parsed.Validate(); err != nil {
		return UUID{}, err
	}
	return parsed, nil
}

// UUIDFromBytes restores an identifier persisted as 16 raw bytes, the way the
// postgres DTOs and the in-memory store keep them. Any other length fails with
// errs.ErrValueIsInvalid, the nil UUID with ErrUUIDIsNotConstructed.
//
// Example:
//
//	id, err := kernel.UUIDFromBytes(dto.ID[:])
//	if err != nil {
//	    return nil, err
//	}
func UUIDFromBytes(b []byte) (UUID, error) {
	id, err := uuid.FromBytes(b)
	if err != nil {
		return UUID{}, errs.NewValueIsInvalidErrorWithCause("UUID", fmt.Errorf("invalid UUID format: %w", err))
	}
	restored := UUID{id: id}
	if err = restored.Validate(); err != nil {
		return UUID{}, err
	}
	return restored, nil
}

// String returns the canonical lower-case form
// "xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx". It is what error messages, log
// attributes, event aggregate IDs and JWT subjects carry.
func (u UUID) String() string {
	return u.id.String()
}

// Bytes returns the wrapped google UUID, the representation used by the
// persistence DTOs and the HTTP response bodies. Take a slice with
// id.Bytes()[:] when raw bytes are needed.
func (u UUID) Bytes() uuid.UUID {
	return u.id
}

// IsEqual reports whether both identifiers hold the same value.
//
// Example:
//
//	if sol.DriverID().IsEqual(d.ID()) {
//	    // the solution proposes d
//	}
func (u UUID) IsEqual(other UUID) bool {
	return u.id == other.id
}

// Validate rejects the nil UUID with ErrUUIDIsNotConstructed. Aggregates call
// it from their setters, so a zero-value identifier never reaches storage.
//
// Example:
//
//	func (d *Driver) setID(id kernel.UUID) error {
//	    if err := id.Validate(); err != nil {
//	        return err
//	    }
//	    d.id = id
//	    return nil
//	}
func (u UUID) Validate() error {
	if u.id == uuid.Nil {
		return ErrUUIDIsNotConstructed
	}
	return nil
}

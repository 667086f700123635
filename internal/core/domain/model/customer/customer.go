package customer

import (
	"errors"
	"fmt"
	"net/mail"
	"regexp"
	"strings"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

var (
	ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")

	// ErrDuplicateCustomer is wrapped by the error returned when a customer with
	// the same email or phone is already registered.
	ErrDuplicateCustomer = errors.New("customer already registered")
)

var phonePattern = regexp.MustCompile(`^\+?[0-9]{10,15}$`)

// Principal is an authenticated actor of the platform.
type Principal interface {
	PrincipalID() kernel.UUID
}

// Customer places orders. Email and phone identify a customer uniquely; the
// password hash is opaque to the domain.
type Customer struct {
	id           kernel.UUID
	person       kernel.Person
	email        string
	phone        string
	passwordHash string
	createdAt    time.Time

	guard guard.ConstructorGuard
}

var _ Principal = (*Customer)(nil)

func NewCustomer(
	id kernel.UUID,
	person kernel.Person,
	email string,
	phone string,
	passwordHash string,
	createdAt time.Time,
) (*Customer, error) {
	c := &Customer{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		c.setID(id),
		c.setPerson(person),
		c.setEmail(email),
		c.setPhone(phone),
		c.setPasswordHash(passwordHash),
		c.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// NewDuplicateCustomerError reports a collision on a unique attribute.
func NewDuplicateCustomerError(field string, value any) error {
	return fmt.Errorf("%w: %w", ErrDuplicateCustomer, errs.NewObjectAlreadyExistsError(field, value))
}

// NormalizeEmail is applied to emails before storage and lookup.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NormalizePhone strips separators commonly typed into phone numbers.
func NormalizePhone(phone string) string {
	return strings.NewReplacer(" ", "", "-", "", "(", "", ")", "").Replace(strings.TrimSpace(phone))
}

func (c *Customer) Validate() error {
	if c == nil {
		return ErrCustomerIsNotConstructed
	}
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

func (c *Customer) ID() kernel.UUID {
	return c.id
}

func (c *Customer) PrincipalID() kernel.UUID {
	return c.id
}

func (c *Customer) Person() kernel.Person {
	return c.person
}

func (c *Customer) Email() string {
	return c.email
}

func (c *Customer) Phone() string {
	return c.phone
}

func (c *Customer) PasswordHash() string {
	return c.passwordHash
}

func (c *Customer) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Customer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Customer) setPerson(person kernel.Person) error {
	if err := person.Validate(); err != nil {
		return err
	}
	c.person = person
	return nil
}

func (c *Customer) setEmail(email string) error {
	email = NormalizeEmail(email)
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return errs.NewValueIsInvalidErrorWithCause("email", fmt.Errorf("%q is not an email address", email))
	}
	c.email = email
	return nil
}

func (c *Customer) setPhone(phone string) error {
	phone = NormalizePhone(phone)
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	if !phonePattern.MatchString(phone) {
		return errs.NewValueIsInvalidErrorWithCause("phone", fmt.Errorf("%q is not a phone number", phone))
	}
	c.phone = phone
	return nil
}

func (c *Customer) setPasswordHash(hash string) error {
	if hash == "" {
		return errs.NewValueIsRequiredError("password hash")
	}
	c.passwordHash = hash
	return nil
}

func (c *Customer) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("created at")
	}
	c.createdAt = createdAt
	return nil
}

package commands

import (
	"errors"
	"fmt"
	"strings"

	"freight/internal/core/domain/model/customer"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

// Password length bounds. 72 bytes is the most bcrypt takes into account.
const (
	MinPasswordLength = 6
	MaxPasswordLength = 72
)

var ErrSignUpCommandIsNotConstructed = errors.New("SignUpCommand must be created via NewSignUpCommand constructor")

// SignUpCommand registers a customer account.
type SignUpCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	person     kernel.Person
	email      string
	phone      string
	password   string

	guard guard.ConstructorGuard
}

func NewSignUpCommand(
	customerID kernel.UUID,
	name, secondName, middleName string,
	email, phone, password string,
) (SignUpCommand, error) {
	cmd := SignUpCommand{
		email: customer.NormalizeEmail(email),
		phone: customer.NormalizePhone(phone),
		guard: guard.NewConstructorGuard(),
	}

	person, personErr := kernel.NewPerson(name, secondName, middleName)
	cmd.person = person

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		personErr,
		cmd.setPassword(password),
	); err != nil {
		return SignUpCommand{}, err
	}

	return cmd, nil
}

func (c SignUpCommand) Validate() error {
	return c.guard.Validate(ErrSignUpCommandIsNotConstructed)
}

func (c SignUpCommand) CustomerID() kernel.UUID {
	return c.customerID
}

func (c SignUpCommand) Person() kernel.Person {
	return c.person
}

func (c SignUpCommand) Email() string {
	return c.email
}

func (c SignUpCommand) Phone() string {
	return c.phone
}

func (c SignUpCommand) Password() string {
	return c.password
}

func (c *SignUpCommand) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.customerID = id
	return nil
}

func (c *SignUpCommand) setPassword(password string) error {
	if strings.TrimSpace(password) == "" {
		return errs.NewValueIsRequiredError("password")
	}
	if len(password) < MinPasswordLength || len(password) > MaxPasswordLength {
		return errs.NewValueIsOutOfRangeErrorWithCause("password length", len(password),
			MinPasswordLength, MaxPasswordLength, fmt.Errorf("password has %d bytes", len(password)))
	}
	c.password = password
	return nil
}

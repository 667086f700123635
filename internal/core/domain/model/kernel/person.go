package kernel

import (
	"errors"
	"strings"

	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

const maxNameLength = 30

// ErrPersonIsNotConstructed is returned when a Person was not created via NewPerson.
var ErrPersonIsNotConstructed = errors.New("Person must be created via NewPerson constructor")

// Person is the naming part shared by customers and drivers. Customer and Driver
// embed it by value; it carries no identity of its own.
type Person struct {
	name       string
	secondName string
	middleName *string

	guard guard.ConstructorGuard
}

// NewPerson validates and trims the name parts. An empty middle name means "none".
func NewPerson(name, secondName, middleName string) (Person, error) {
	p := Person{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		p.setName(name),
		p.setSecondName(secondName),
		p.setMiddleName(middleName),
	); err != nil {
		return Person{}, err
	}

	return p, nil
}

func (p Person) Validate() error {
	return p.guard.Validate(ErrPersonIsNotConstructed)
}

func (p Person) Name() string {
	return p.name
}

func (p Person) SecondName() string {
	return p.secondName
}

// MiddleName returns nil when the person has no middle name.
func (p Person) MiddleName() *string {
	return p.middleName
}

// FullName renders "name [middle name] second name".
func (p Person) FullName() string {
	parts := []string{p.name}
	if p.middleName != nil {
		parts = append(parts, *p.middleName)
	}
	parts = append(parts, p.secondName)
	return strings.Join(parts, " ")
}

func (p *Person) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	if len([]rune(name)) > maxNameLength {
		return errs.NewValueIsOutOfRangeError("name length", len([]rune(name)), 1, maxNameLength)
	}
	p.name = name
	return nil
}

func (p *Person) setSecondName(secondName string) error {
	secondName = strings.TrimSpace(secondName)
	if secondName == "" {
		return errs.NewValueIsRequiredError("second name")
	}
	if len([]rune(secondName)) > maxNameLength {
		return errs.NewValueIsOutOfRangeError("second name length", len([]rune(secondName)), 1, maxNameLength)
	}
	p.secondName = secondName
	return nil
}

func (p *Person) setMiddleName(middleName string) error {
	middleName = strings.TrimSpace(middleName)
	if middleName == "" {
		return nil
	}
	if len([]rune(middleName)) > maxNameLength {
		return errs.NewValueIsOutOfRangeError("middle name length", len([]rune(middleName)), 1, maxNameLength)
	}
	p.middleName = &middleName
	return nil
}

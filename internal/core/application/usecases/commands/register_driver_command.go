package commands

import (
	"errors"

	"freight/internal/core/domain/model/driver"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrRegisterDriverCommandIsNotConstructed = errors.New(
	"RegisterDriverCommand must be created via NewRegisterDriverCommand constructor",
)

// RegisterDriverCommand adds a driver to the waiting pool.
type RegisterDriverCommand struct { //nolint:recvcheck //using for validation
	driverID      kernel.UUID
	person        kernel.Person
	qualification driver.Qualification
	experience    int

	guard guard.ConstructorGuard
}

func NewRegisterDriverCommand(
	driverID kernel.UUID,
	name, secondName, middleName string,
	qualification string,
	experience int,
) (RegisterDriverCommand, error) {
	person, personErr := kernel.NewPerson(name, secondName, middleName)
	q, qualificationErr := driver.ParseQualification(qualification)
	if err := errors.Join(driverID.Validate(), personErr, qualificationErr); err != nil {
		return RegisterDriverCommand{}, err
	}

	return RegisterDriverCommand{
		driverID:      driverID,
		person:        person,
		qualification: q,
		experience:    experience,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (c RegisterDriverCommand) Validate() error {
	return c.guard.Validate(ErrRegisterDriverCommandIsNotConstructed)
}

func (c RegisterDriverCommand) DriverID() kernel.UUID {
	return c.driverID
}

func (c RegisterDriverCommand) Person() kernel.Person {
	return c.person
}

func (c RegisterDriverCommand) Qualification() driver.Qualification {
	return c.qualification
}

func (c RegisterDriverCommand) Experience() int {
	return c.experience
}

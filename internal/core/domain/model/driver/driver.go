package driver

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

const (
	MinExperience = 2
	MaxExperience = 60
)

var ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver constructor")

// Driver is a shared, mutable aggregate referenced by id from orders and
// solutions. Its status is updated with compare-and-swap semantics: repositories
// persist a status change only if the stored version still equals Version().
type Driver struct {
	id            kernel.UUID
	person        kernel.Person
	qualification Qualification
	experience    int
	status        Status
	version       int

	guard guard.ConstructorGuard
}

// NewDriver registers a driver in Waiting status.
func NewDriver(id kernel.UUID, person kernel.Person, qualification Qualification, experience int) (*Driver, error) {
	d := &Driver{
		status: Waiting,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setPerson(person),
		d.setQualification(qualification),
		d.setExperience(experience),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDriver rebuilds a driver from storage, status and version included.
func RestoreDriver(
	id kernel.UUID,
	person kernel.Person,
	qualification Qualification,
	experience int,
	status Status,
	version int,
) (*Driver, error) {
	d := &Driver{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setPerson(person),
		d.setQualification(qualification),
		d.setExperience(experience),
		d.setStatus(status),
		d.setVersion(version),
	); err != nil {
		return nil, err
	}

	return d, nil
}

func (d *Driver) Validate() error {
	if d == nil {
		return ErrDriverIsNotConstructed
	}
	return d.guard.Validate(ErrDriverIsNotConstructed)
}

func (d *Driver) IsEqual(other *Driver) bool {
	return other != nil && d.id.IsEqual(other.id)
}

func (d *Driver) ID() kernel.UUID {
	return d.id
}

func (d *Driver) Person() kernel.Person {
	return d.person
}

func (d *Driver) Qualification() Qualification {
	return d.qualification
}

func (d *Driver) Experience() int {
	return d.experience
}

func (d *Driver) Status() Status {
	return d.status
}

// Version is the optimistic-locking version the driver was loaded with.
func (d *Driver) Version() int {
	return d.version
}

// IncrementVersion is called by repositories after a successful compare-and-swap.
func (d *Driver) IncrementVersion() {
	d.version++
}

// Reserve marks the driver as a candidate of an open solution.
func (d *Driver) Reserve() error {
	return d.transition(d.status.Reserve)
}

// Occupy assigns the driver to a confirmed order.
func (d *Driver) Occupy() error {
	return d.transition(d.status.Occupy)
}

// Release frees the driver once its order is completed.
func (d *Driver) Release() error {
	return d.transition(d.status.Release)
}

// Dismiss returns a candidate with no open solutions to the waiting pool.
func (d *Driver) Dismiss() error {
	return d.transition(d.status.Dismiss)
}

func (d *Driver) transition(event func() (Status, error)) error {
	next, err := event()
	if err != nil {
		return err
	}
	d.status = next
	return nil
}

func (d *Driver) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Driver) setPerson(person kernel.Person) error {
	if err := person.Validate(); err != nil {
		return err
	}
	d.person = person
	return nil
}

func (d *Driver) setQualification(q Qualification) error {
	if err := q.Validate(); err != nil {
		return err
	}
	d.qualification = q
	return nil
}

func (d *Driver) setExperience(experience int) error {
	if experience < MinExperience || experience > MaxExperience {
		return errs.NewValueIsOutOfRangeError("experience", experience, MinExperience, MaxExperience)
	}
	d.experience = experience
	return nil
}

func (d *Driver) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	d.status = status
	return nil
}

func (d *Driver) setVersion(version int) error {
	if version < 0 {
		return errs.NewValueIsOutOfRangeError("version", version, 0, "unbounded")
	}
	d.version = version
	return nil
}

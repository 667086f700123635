package driver_test

import (
	"testing"

	"freight/internal/core/domain/model/driver"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPerson(t *testing.T) kernel.Person {
	t.Helper()
	p, err := kernel.NewPerson("Sergey", "Ivanov", "")
	require.NoError(t, err)
	return p
}

func TestNewDriver(t *testing.T) {
	person := newPerson(t)

	t.Run("should create waiting driver", func(t *testing.T) {
		id := kernel.NewUUID()
		d, err := driver.NewDriver(id, person, driver.AboveAverage, 10)

		require.NoError(t, err)
		require.NoError(t, d.Validate())
		assert.True(t, d.ID().IsEqual(id))
		assert.Equal(t, driver.AboveAverage, d.Qualification())
		assert.Equal(t, 10, d.Experience())
		assert.Equal(t, driver.Waiting, d.Status())
		assert.Equal(t, 0, d.Version())
	})

	t.Run("should accept experience bounds", func(t *testing.T) {
		for _, exp := range []int{driver.MinExperience, driver.MaxExperience} {
			_, err := driver.NewDriver(kernel.NewUUID(), person, driver.Low, exp)
			require.NoError(t, err)
		}
	})

	t.Run("should reject experience out of range", func(t *testing.T) {
		for _, exp := range []int{1, 61, -5} {
			d, err := driver.NewDriver(kernel.NewUUID(), person, driver.Low, exp)

			require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
			assert.Nil(t, d)
			assert.Contains(t, err.Error(), "experience")
		}
	})

	t.Run("should reject unknown qualification", func(t *testing.T) {
		_, err := driver.NewDriver(kernel.NewUUID(), person, driver.UnknownQualification, 10)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should join errors of every invalid field", func(t *testing.T) {
		_, err := driver.NewDriver(kernel.UUID{}, kernel.Person{}, driver.Qualification(42), 0)

		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
		require.ErrorIs(t, err, kernel.ErrPersonIsNotConstructed)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestRestoreDriver(t *testing.T) {
	person := newPerson(t)

	d, err := driver.RestoreDriver(kernel.NewUUID(), person, driver.High, 30, driver.Busy, 7)
	require.NoError(t, err)
	assert.Equal(t, driver.Busy, d.Status())
	assert.Equal(t, 7, d.Version())

	_, err = driver.RestoreDriver(kernel.NewUUID(), person, driver.High, 30, driver.UnknownStatus, 0)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = driver.RestoreDriver(kernel.NewUUID(), person, driver.High, 30, driver.Waiting, -1)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestDriver_Lifecycle(t *testing.T) {
	d, err := driver.NewDriver(kernel.NewUUID(), newPerson(t), driver.Low, 5)
	require.NoError(t, err)

	require.NoError(t, d.Reserve())
	assert.Equal(t, driver.Candidate, d.Status())

	require.NoError(t, d.Reserve(), "candidate may be proposed again")
	assert.Equal(t, driver.Candidate, d.Status())

	require.NoError(t, d.Occupy())
	assert.Equal(t, driver.Busy, d.Status())

	err = d.Reserve()
	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	assert.Equal(t, driver.Busy, d.Status())

	require.NoError(t, d.Release())
	assert.Equal(t, driver.Waiting, d.Status())

	err = d.Release()
	var transitionErr *errs.InvalidTransitionError
	require.ErrorAs(t, err, &transitionErr)
	assert.Equal(t, "waiting", transitionErr.From)
	assert.Equal(t, "release", transitionErr.Event)
}

func TestDriver_Dismiss(t *testing.T) {
	d, err := driver.NewDriver(kernel.NewUUID(), newPerson(t), driver.Low, 5)
	require.NoError(t, err)

	require.ErrorIs(t, d.Dismiss(), errs.ErrInvalidTransition)

	require.NoError(t, d.Reserve())
	require.NoError(t, d.Dismiss())
	assert.Equal(t, driver.Waiting, d.Status())
}

func TestDriver_IncrementVersion(t *testing.T) {
	d, err := driver.NewDriver(kernel.NewUUID(), newPerson(t), driver.Low, 5)
	require.NoError(t, err)

	d.IncrementVersion()
	d.IncrementVersion()

	assert.Equal(t, 2, d.Version())
}

func TestDriver_ValidateZeroValue(t *testing.T) {
	var nilDriver *driver.Driver
	assert.Equal(t, driver.ErrDriverIsNotConstructed, nilDriver.Validate())

	var zero driver.Driver
	assert.Equal(t, driver.ErrDriverIsNotConstructed, zero.Validate())
}

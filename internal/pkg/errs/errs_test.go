package errs_test

import (
	"errors"
	"testing"

	"freight/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderId", "123")

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("orderId", "123", cause)

		assert.Equal(t,
			"object not found: param is: orderId, ID is: 123 (cause: database connection failed)",
			err.Error())
	})
}

func TestObjectAlreadyExistsError(t *testing.T) {
	err := errs.NewObjectAlreadyExistsError("email", "ivan@example.com")

	assert.Equal(t, "object already exists: email is ivan@example.com", err.Error())
	require.ErrorIs(t, err, errs.ErrObjectAlreadyExists)
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("without cause", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("email")
		assert.Equal(t, "value is invalid: email", err.Error())
	})

	t.Run("with cause", func(t *testing.T) {
		err := errs.NewValueIsInvalidErrorWithCause("email", errors.New("invalid format"))
		assert.Equal(t, "value is invalid: email (cause: invalid format)", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("formats bounds", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("experience", 61, 2, 60)

		assert.Equal(t, "value is invalid: 61 is experience, min value is 2, max value is 60", err.Error())
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("sanitizes newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	err := errs.NewValueIsRequiredErrorWithCause("phone", errors.New("blank"))

	assert.Equal(t, "value is required: phone (cause: blank)", err.Error())
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestInvalidTransitionError(t *testing.T) {
	err := errs.NewInvalidTransitionError("order", "in_process", "confirm_agreement")

	assert.Equal(t, "in_process", err.From)
	assert.Equal(t, "confirm_agreement", err.Event)
	assert.Equal(t, "invalid transition: order cannot handle confirm_agreement in status in_process", err.Error())
	require.ErrorIs(t, err, errs.ErrInvalidTransition)

	var target *errs.InvalidTransitionError
	require.ErrorAs(t, errors.Join(errors.New("other"), err), &target)
	assert.Equal(t, "order", target.Entity)
}

func TestConcurrentModificationError(t *testing.T) {
	err := errs.NewConcurrentModificationError("driver", "42", 3)

	assert.Equal(t, "concurrent modification: driver 42 changed since version 3", err.Error())
	require.ErrorIs(t, err, errs.ErrConcurrentModification)
}

func TestConfigurationError(t *testing.T) {
	err := errs.NewConfigurationError("qualification rates", 9)

	assert.Equal(t, "configuration error: qualification rates has no entry for 9", err.Error())
	require.ErrorIs(t, err, errs.ErrConfiguration)
}

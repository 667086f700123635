package order_test

import (
	"testing"
	"time"

	"freight/internal/core/domain/model/cargo"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/order"
	"freight/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var createdAt = time.Date(2026, 3, 21, 9, 30, 0, 0, time.UTC)

func newCargo(t *testing.T) cargo.Cargo {
	t.Helper()
	c, err := cargo.NewCargo(cargo.Fragile, cargo.Dimensions{Width: 1, Length: 2, Height: 1.5}, 80)
	require.NoError(t, err)
	return c
}

func newAddress(t *testing.T, value string) kernel.Address {
	t.Helper()
	a, err := kernel.NewAddress(value)
	require.NoError(t, err)
	return a
}

func newOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		kernel.NewUUID(),
		kernel.NewUUID(),
		newCargo(t),
		newAddress(t, "Moscow, Tverskaya 1"),
		newAddress(t, "Kazan, Baumana 5"),
		nil,
		createdAt,
	)
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("should create order in process", func(t *testing.T) {
		customerID := kernel.NewUUID()
		o, err := order.NewOrder(kernel.NewUUID(), customerID, newCargo(t),
			newAddress(t, "A"), newAddress(t, "B"), nil, createdAt)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, order.InProcess, o.Status())
		assert.True(t, o.BelongsTo(customerID))
		assert.False(t, o.BelongsTo(kernel.NewUUID()))
		assert.Nil(t, o.DriverID())
		assert.Nil(t, o.Cost())
		assert.Nil(t, o.Time())
		assert.Nil(t, o.ExpectedDate())
		assert.Nil(t, o.ReadyDate())
		assert.Equal(t, createdAt, o.CreatedAt())
		assert.Zero(t, o.Version())
		assert.Empty(t, o.PullEvents())
	})

	t.Run("should aggregate validation errors", func(t *testing.T) {
		_, err := order.NewOrder(kernel.UUID{}, kernel.UUID{}, cargo.Cargo{},
			kernel.Address{}, kernel.Address{}, nil, time.Time{})

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		for _, field := range []string{"customer id", "created at", "address from", "address to"} {
			assert.Contains(t, err.Error(), field)
		}
		assert.ErrorIs(t, err, cargo.ErrCargoIsNotConstructed)
	})

	t.Run("should reject end date before creation", func(t *testing.T) {
		endDate := createdAt.Add(-time.Hour)
		_, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), newCargo(t),
			newAddress(t, "A"), newAddress(t, "B"), &endDate, createdAt)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var o *order.Order
		assert.Equal(t, order.ErrOrderIsNotConstructed, o.Validate())
		assert.Equal(t, order.ErrOrderIsNotConstructed, (&order.Order{}).Validate())
	})
}

func TestOrder_Lifecycle(t *testing.T) {
	o := newOrder(t)
	driverID := kernel.NewUUID()
	paidAt := createdAt.Add(2 * time.Hour)
	readyAt := paidAt.Add(5*time.Hour + 30*time.Minute)

	require.NoError(t, o.Match(createdAt))
	assert.Equal(t, order.WaitDecision, o.Status())

	require.NoError(t, o.ConfirmSolution(driverID, 850, 6, createdAt))
	assert.Equal(t, order.WaitContractSigning, o.Status())
	require.NotNil(t, o.DriverID())
	assert.True(t, driverID.IsEqual(*o.DriverID()))
	assert.InDelta(t, 850.0, *o.Cost(), 1e-9)
	assert.Equal(t, 6, *o.Time())

	require.NoError(t, o.ConfirmAgreement(createdAt))
	assert.Equal(t, order.WaitPayments, o.Status())

	require.NoError(t, o.ConfirmPayment(paidAt))
	assert.Equal(t, order.InProgress, o.Status())
	require.NotNil(t, o.ExpectedDate())
	assert.Equal(t, paidAt.Add(6*time.Hour), *o.ExpectedDate())

	require.NoError(t, o.Complete(readyAt))
	assert.Equal(t, order.Ready, o.Status())
	assert.Equal(t, readyAt, *o.ReadyDate())

	events := o.PullEvents()
	require.Len(t, events, 5)
	last, ok := events[4].(order.StatusChanged)
	require.True(t, ok)
	assert.Equal(t, order.EventComplete, last.Event)
	assert.Equal(t, "in_progress", last.From)
	assert.Equal(t, "ready", last.To)
	assert.Equal(t, o.ID().String(), last.AggregateID())
	assert.Equal(t, order.StatusChangedEventName, last.EventName())
	assert.Equal(t, readyAt, last.OccurredAt())
	assert.Empty(t, o.PullEvents())

	expectation, err := o.Expectation()
	require.NoError(t, err)
	assert.True(t, expectation.Early)
	assert.Equal(t, 0, expectation.Hours())
	assert.Equal(t, 30, expectation.Minutes())
	assert.Equal(t, "delivered early by 0 hours and 30 minutes", expectation.String())
}

func TestOrder_RepeatedTransitionsAreRejected(t *testing.T) {
	o := newOrder(t)
	require.NoError(t, o.Match(createdAt))

	err := o.Match(createdAt)

	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	assert.Equal(t, order.WaitDecision, o.Status())
	assert.Len(t, o.PullEvents(), 1)
}

func TestOrder_ConfirmSolution(t *testing.T) {
	t.Run("should fail before matching without side effects", func(t *testing.T) {
		o := newOrder(t)

		err := o.ConfirmSolution(kernel.NewUUID(), 700, 3, createdAt)

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Nil(t, o.DriverID())
		assert.Nil(t, o.Cost())
	})

	t.Run("should reject invalid params", func(t *testing.T) {
		o := newOrder(t)
		require.NoError(t, o.Match(createdAt))

		require.ErrorIs(t, o.ConfirmSolution(kernel.NewUUID(), 0, 3, createdAt), errs.ErrValueIsInvalid)
		require.ErrorIs(t, o.ConfirmSolution(kernel.NewUUID(), 700, 0, createdAt), errs.ErrValueIsInvalid)
		require.ErrorIs(t, o.ConfirmSolution(kernel.UUID{}, 700, 3, createdAt), errs.ErrValueIsRequired)
		assert.Equal(t, order.WaitDecision, o.Status())
	})
}

func TestOrder_CompleteBeforePayment(t *testing.T) {
	o := newOrder(t)
	require.NoError(t, o.Match(createdAt))
	require.NoError(t, o.ConfirmSolution(kernel.NewUUID(), 700, 3, createdAt))

	err := o.Complete(createdAt)

	var transitionErr *errs.InvalidTransitionError
	require.ErrorAs(t, err, &transitionErr)
	assert.Equal(t, "wait_contract_signing", transitionErr.From)
	assert.Equal(t, "complete", transitionErr.Event)
	assert.Nil(t, o.ReadyDate())
}

func TestOrder_Expectation(t *testing.T) {
	t.Run("should report late delivery", func(t *testing.T) {
		o := newOrder(t)
		require.NoError(t, o.Match(createdAt))
		require.NoError(t, o.ConfirmSolution(kernel.NewUUID(), 700, 2, createdAt))
		require.NoError(t, o.ConfirmAgreement(createdAt))
		require.NoError(t, o.ConfirmPayment(createdAt))
		require.NoError(t, o.Complete(createdAt.Add(27*time.Hour+15*time.Minute)))

		e, err := o.Expectation()

		require.NoError(t, err)
		assert.False(t, e.Early)
		assert.Equal(t, 25, e.Hours())
		assert.Equal(t, 15, e.Minutes())
		assert.Equal(t, "delivered late by 25 hours and 15 minutes", e.String())
	})

	t.Run("should fail before completion", func(t *testing.T) {
		_, err := newOrder(t).Expectation()
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestOrder_Texts(t *testing.T) {
	o := newOrder(t)
	person, err := kernel.NewPerson("Ivan", "Petrov", "Sergeevich")
	require.NoError(t, err)

	assert.Equal(t,
		"I, Ivan Sergeevich Petrov, agree to the terms of carriage of order "+o.ID().String(),
		o.AgreementText(person))

	_, err = o.PaymentDetails()
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	require.NoError(t, o.Match(createdAt))
	require.NoError(t, o.ConfirmSolution(kernel.NewUUID(), 962.5, 4, createdAt))
	details, err := o.PaymentDetails()
	require.NoError(t, err)
	assert.Equal(t, "Payment for order "+o.ID().String()+": 962.50", details)
}

func TestRestoreOrder(t *testing.T) {
	t.Run("should round trip snapshot", func(t *testing.T) {
		o := newOrder(t)
		require.NoError(t, o.Match(createdAt))
		require.NoError(t, o.ConfirmSolution(kernel.NewUUID(), 700, 3, createdAt))
		o.IncrementVersion()

		restored, err := order.RestoreOrder(o.Snapshot())

		require.NoError(t, err)
		assert.True(t, o.IsEqual(restored))
		assert.Equal(t, o.Snapshot(), restored.Snapshot())
		assert.Equal(t, 1, restored.Version())
		assert.Empty(t, restored.PullEvents())
	})

	t.Run("should reject status without driver", func(t *testing.T) {
		s := newOrder(t).Snapshot()
		s.Status = order.InProgress

		_, err := order.RestoreOrder(s)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject partial solution params", func(t *testing.T) {
		s := newOrder(t).Snapshot()
		driverID := kernel.NewUUID()
		s.Status = order.WaitPayments
		s.DriverID = &driverID

		_, err := order.RestoreOrder(s)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

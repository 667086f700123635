package order

import (
	"errors"
	"fmt"
	"math"
	"time"

	"freight/internal/core/domain/model/cargo"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

// DateLayout renders order dates for customers, e.g. "14:05 21-03-2026".
const DateLayout = "15:04 02-01-2006"

// ErrOrderIsNotConstructed is returned when an Order was not created through
// NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Order is the aggregate root of a cargo shipment. It references its customer
// and its driver by id, owns its Cargo, and moves through the lifecycle
// described by Status.
//
// Order follows these invariants:
//   - A driver, cost and time are set together, by ConfirmSolution, and never cleared
//   - The status and the driver assignment are consistent (see Status.RequiresDriver)
//   - expected_date is set only when the payment is confirmed
//   - ready_date is set only when the order is completed
//
// Every transition records a StatusChanged event retrievable with PullEvents.
type Order struct {
	id           kernel.UUID
	customerID   kernel.UUID
	createdAt    time.Time
	cargo        cargo.Cargo
	driverID     *kernel.UUID
	addressFrom  kernel.Address
	addressTo    kernel.Address
	status       Status
	cost         *float64
	hours        *int
	expectedDate *time.Time
	readyDate    *time.Time
	endDate      *time.Time
	version      int

	events []kernel.DomainEvent
	guard  guard.ConstructorGuard
}

// NewOrder creates an order in InProcess status with no driver.
//
// endDate is the optional delivery deadline requested by the customer; when
// given it must not precede createdAt.
//
// Example:
//
//	c, _ := cargo.NewCargo(cargo.Fragile, cargo.Dimensions{Width: 1, Length: 2, Height: 1}, 40)
//	from, _ := kernel.NewAddress("Moscow, Tverskaya 1")
//	to, _ := kernel.NewAddress("Kazan, Baumana 5")
//	o, err := order.NewOrder(kernel.NewUUID(), customerID, c, from, to, nil, clock.Now())
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	c cargo.Cargo,
	from kernel.Address,
	to kernel.Address,
	endDate *time.Time,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		status: InProcess,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setCreatedAt(createdAt),
		o.setCargo(c),
		o.setAddressFrom(from),
		o.setAddressTo(to),
	); err != nil {
		return nil, err
	}
	if err := o.setEndDate(endDate); err != nil {
		return nil, err
	}

	return o, nil
}

// Snapshot is the full persisted state of an order, used by repositories to
// rebuild the aggregate.
type Snapshot struct {
	ID           kernel.UUID
	CustomerID   kernel.UUID
	CreatedAt    time.Time
	Cargo        cargo.Cargo
	DriverID     *kernel.UUID
	AddressFrom  kernel.Address
	AddressTo    kernel.Address
	Status       Status
	Cost         *float64
	Time         *int
	ExpectedDate *time.Time
	ReadyDate    *time.Time
	EndDate      *time.Time
	Version      int
}

// RestoreOrder rebuilds an order from storage. The snapshot is validated as a
// whole: status and driver assignment must agree.
func RestoreOrder(s Snapshot) (*Order, error) {
	o := &Order{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(s.ID),
		o.setCustomerID(s.CustomerID),
		o.setCreatedAt(s.CreatedAt),
		o.setCargo(s.Cargo),
		o.setAddressFrom(s.AddressFrom),
		o.setAddressTo(s.AddressTo),
		o.setStatus(s.Status),
		o.setVersion(s.Version),
		o.setSolutionParams(s.DriverID, s.Cost, s.Time),
	); err != nil {
		return nil, err
	}
	if err := o.status.ValidateCanHaveDriver(o.driverID != nil); err != nil {
		return nil, err
	}

	o.expectedDate = s.ExpectedDate
	o.readyDate = s.ReadyDate
	o.endDate = s.EndDate
	return o, nil
}

// Snapshot exports the current state for persistence.
func (o *Order) Snapshot() Snapshot {
	return Snapshot{
		ID:           o.id,
		CustomerID:   o.customerID,
		CreatedAt:    o.createdAt,
		Cargo:        o.cargo,
		DriverID:     o.driverID,
		AddressFrom:  o.addressFrom,
		AddressTo:    o.addressTo,
		Status:       o.status,
		Cost:         o.cost,
		Time:         o.hours,
		ExpectedDate: o.expectedDate,
		ReadyDate:    o.readyDate,
		EndDate:      o.endDate,
		Version:      o.version,
	}
}

func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// BelongsTo reports whether the order was placed by the given customer.
func (o *Order) BelongsTo(customerID kernel.UUID) bool {
	return o.customerID.IsEqual(customerID)
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) Cargo() cargo.Cargo {
	return o.cargo
}

// DriverID returns nil until a solution is confirmed.
func (o *Order) DriverID() *kernel.UUID {
	return o.driverID
}

func (o *Order) AddressFrom() kernel.Address {
	return o.addressFrom
}

func (o *Order) AddressTo() kernel.Address {
	return o.addressTo
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) Cost() *float64 {
	return o.cost
}

// Time is the estimated delivery duration in hours of the confirmed solution.
func (o *Order) Time() *int {
	return o.hours
}

func (o *Order) ExpectedDate() *time.Time {
	return o.expectedDate
}

func (o *Order) ReadyDate() *time.Time {
	return o.readyDate
}

func (o *Order) EndDate() *time.Time {
	return o.endDate
}

func (o *Order) Version() int {
	return o.version
}

func (o *Order) IncrementVersion() {
	o.version++
}

// PullEvents returns the recorded events and clears them.
func (o *Order) PullEvents() []kernel.DomainEvent {
	events := o.events
	o.events = nil
	return events
}

// Match moves the order to WaitDecision once solutions have been generated.
func (o *Order) Match(now time.Time) error {
	return o.fire(EventMatch, now)
}

// ConfirmSolution assigns the driver, cost and time of the chosen solution and
// moves the order to WaitContractSigning.
func (o *Order) ConfirmSolution(driverID kernel.UUID, cost float64, hours int, now time.Time) error {
	if !o.status.CanHandle(EventConfirmSolution) {
		return errs.NewInvalidTransitionError("order", o.status.String(), string(EventConfirmSolution))
	}
	if err := o.setSolutionParams(&driverID, &cost, &hours); err != nil {
		return err
	}
	return o.fire(EventConfirmSolution, now)
}

// ConfirmAgreement moves the order to WaitPayments.
func (o *Order) ConfirmAgreement(now time.Time) error {
	return o.fire(EventConfirmAgreement, now)
}

// ConfirmPayment moves the order to InProgress and sets the expected date to
// now plus the solution time.
func (o *Order) ConfirmPayment(now time.Time) error {
	if err := o.fire(EventConfirmPayment, now); err != nil {
		return err
	}
	expected := now.Add(time.Duration(*o.hours) * time.Hour)
	o.expectedDate = &expected
	return nil
}

// Complete moves the order to Ready and stamps the ready date.
func (o *Order) Complete(now time.Time) error {
	if err := o.fire(EventComplete, now); err != nil {
		return err
	}
	ready := now
	o.readyDate = &ready
	return nil
}

// AgreementText is the contract the customer signs before paying.
func (o *Order) AgreementText(customer kernel.Person) string {
	return fmt.Sprintf("I, %s, agree to the terms of carriage of order %s", customer.FullName(), o.id)
}

// PaymentDetails describes the amount due. It fails while no solution is confirmed.
func (o *Order) PaymentDetails() (string, error) {
	if o.cost == nil {
		return "", errs.NewValueIsRequiredErrorWithCause("cost",
			fmt.Errorf("order %s in status %s has no confirmed solution", o.id, o.status))
	}
	return fmt.Sprintf("Payment for order %s: %.2f", o.id, *o.cost), nil
}

// Expectation compares the ready date with the expected date. It is only
// defined for orders that reached Ready.
func (o *Order) Expectation() (Expectation, error) {
	if o.readyDate == nil || o.expectedDate == nil {
		return Expectation{}, errs.NewValueIsRequiredErrorWithCause("ready date",
			fmt.Errorf("order %s in status %s is not delivered yet", o.id, o.status))
	}
	delta := o.readyDate.Sub(*o.expectedDate)
	return Expectation{
		Early: delta < 0,
		Delta: time.Duration(math.Abs(float64(delta))),
	}, nil
}

// Expectation is how much earlier or later than expected an order was delivered.
type Expectation struct {
	Early bool
	Delta time.Duration
}

func (e Expectation) Hours() int {
	return int(e.Delta / time.Hour)
}

func (e Expectation) Minutes() int {
	return int(e.Delta/time.Minute) % 60
}

func (e Expectation) String() string {
	if e.Early {
		return fmt.Sprintf("delivered early by %d hours and %d minutes", e.Hours(), e.Minutes())
	}
	return fmt.Sprintf("delivered late by %d hours and %d minutes", e.Hours(), e.Minutes())
}

func (o *Order) fire(event Event, now time.Time) error {
	from := o.status
	to, err := from.Fire(event)
	if err != nil {
		return err
	}
	o.status = to
	o.events = append(o.events, StatusChanged{
		OrderID:    o.id.String(),
		CustomerID: o.customerID.String(),
		Event:      event,
		From:       from.String(),
		To:         to.String(),
		At:         now,
	})
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customer id", err)
	}
	o.customerID = id
	return nil
}

func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("created at")
	}
	o.createdAt = createdAt
	return nil
}

func (o *Order) setCargo(c cargo.Cargo) error {
	if err := c.Validate(); err != nil {
		return err
	}
	o.cargo = c
	return nil
}

func (o *Order) setAddressFrom(a kernel.Address) error {
	if err := a.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("address from", err)
	}
	o.addressFrom = a
	return nil
}

func (o *Order) setAddressTo(a kernel.Address) error {
	if err := a.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("address to", err)
	}
	o.addressTo = a
	return nil
}

func (o *Order) setEndDate(endDate *time.Time) error {
	if endDate == nil {
		return nil
	}
	if endDate.Before(o.createdAt) {
		return errs.NewValueIsInvalidErrorWithCause("end date",
			fmt.Errorf("%s is before the order creation", endDate.Format(DateLayout)))
	}
	o.endDate = endDate
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setVersion(version int) error {
	if version < 0 {
		return errs.NewValueIsOutOfRangeError("version", version, 0, "unbounded")
	}
	o.version = version
	return nil
}

// setSolutionParams accepts either all three parameters or none of them.
func (o *Order) setSolutionParams(driverID *kernel.UUID, cost *float64, hours *int) error {
	if driverID == nil && cost == nil && hours == nil {
		return nil
	}
	if driverID == nil || cost == nil || hours == nil {
		return errs.NewValueIsInvalidErrorWithCause("solution params",
			errors.New("driver id is set without its cost or time"))
	}
	if err := driverID.Validate(); err != nil {
		return err
	}
	if *cost <= 0 || math.IsNaN(*cost) {
		return errs.NewValueIsInvalidErrorWithCause("cost", fmt.Errorf("%v is not greater than 0", *cost))
	}
	if *hours <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("time", fmt.Errorf("%d is not greater than 0", *hours))
	}
	o.driverID = driverID
	o.cost = cost
	o.hours = hours
	return nil
}

// Package solution holds the Solution entity: a priced proposal of one driver
// for one order. Solutions live only while their order waits for a decision.
package solution

import (
	"errors"
	"fmt"
	"math"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

var ErrSolutionIsNotConstructed = errors.New("Solution must be created via NewSolution constructor")

type Solution struct {
	id        kernel.UUID
	orderID   kernel.UUID
	driverID  kernel.UUID
	cost      float64
	hours     int
	createdAt time.Time

	guard guard.ConstructorGuard
}

func NewSolution(
	id kernel.UUID,
	orderID kernel.UUID,
	driverID kernel.UUID,
	cost float64,
	hours int,
	createdAt time.Time,
) (*Solution, error) {
	s := &Solution{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		s.setID(id),
		s.setOrderID(orderID),
		s.setDriverID(driverID),
		s.setCost(cost),
		s.setHours(hours),
		s.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *Solution) Validate() error {
	if s == nil {
		return ErrSolutionIsNotConstructed
	}
	return s.guard.Validate(ErrSolutionIsNotConstructed)
}

func (s *Solution) ID() kernel.UUID {
	return s.id
}

func (s *Solution) OrderID() kernel.UUID {
	return s.orderID
}

func (s *Solution) DriverID() kernel.UUID {
	return s.driverID
}

func (s *Solution) Cost() float64 {
	return s.cost
}

// Time is the estimated delivery duration in hours.
func (s *Solution) Time() int {
	return s.hours
}

func (s *Solution) CreatedAt() time.Time {
	return s.createdAt
}

// IsFor reports whether the solution was generated for the order.
func (s *Solution) IsFor(orderID kernel.UUID) bool {
	return s.orderID.IsEqual(orderID)
}

func (s *Solution) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Solution) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("order id", err)
	}
	s.orderID = id
	return nil
}

func (s *Solution) setDriverID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("driver id", err)
	}
	s.driverID = id
	return nil
}

func (s *Solution) setCost(cost float64) error {
	if cost <= 0 || math.IsNaN(cost) || math.IsInf(cost, 0) {
		return errs.NewValueIsInvalidErrorWithCause("cost", fmt.Errorf("%v is not a positive amount", cost))
	}
	s.cost = cost
	return nil
}

func (s *Solution) setHours(hours int) error {
	if hours <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("time", fmt.Errorf("%d is not greater than 0", hours))
	}
	s.hours = hours
	return nil
}

func (s *Solution) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("created at")
	}
	s.createdAt = createdAt
	return nil
}

package services

import (
	"errors"
	"time"

	"freight/internal/core/domain/model/driver"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/order"
	"freight/internal/core/domain/model/solution"
	"freight/internal/pkg/errs"
)

// Matching is the outcome of one matching round.
type Matching struct {
	// Solutions are the priced proposals, one per proposed driver, in input order.
	Solutions []*solution.Solution
	// Reserved are the proposed drivers, all candidates now. Every one has to
	// be persisted, including drivers that already were candidates, so that a
	// concurrent dismissal conflicts with the round.
	Reserved []*driver.Driver
}

// MatchingEngine turns the vacant drivers of an order into priced solutions.
//
// Rules:
//   - Only an order in InProcess can be matched
//   - Busy drivers are never proposed, even if the caller passed them in
//   - Every proposed driver becomes a candidate
//   - When at least one solution exists the order moves to WaitDecision;
//     otherwise it stays InProcess and the result is empty
//
// Example usage:
//
//	engine := services.NewMatchingEngine(services.NewPricingEngine(), services.FixedTimeEstimator{Hours: 8})
//	m, err := engine.FindCandidates(o, vacantDrivers, clock.Now())
type MatchingEngine struct {
	pricing   PricingEngine
	estimator TimeEstimator
}

func NewMatchingEngine(pricing PricingEngine, estimator TimeEstimator) MatchingEngine {
	return MatchingEngine{pricing: pricing, estimator: estimator}
}

func (m MatchingEngine) FindCandidates(o *order.Order, drivers []*driver.Driver, now time.Time) (Matching, error) {
	if err := o.Validate(); err != nil {
		return Matching{}, err
	}
	if m.estimator == nil {
		return Matching{}, errs.NewValueIsRequiredError("time estimator")
	}
	if !o.Status().CanHandle(order.EventMatch) {
		return Matching{}, errs.NewInvalidTransitionError("order", o.Status().String(), string(order.EventMatch))
	}

	var result Matching
	for _, d := range drivers {
		if err := d.Validate(); err != nil {
			return Matching{}, err
		}
		if !d.Status().IsMatchable() {
			continue
		}

		s, err := m.propose(o, d, now)
		if err != nil {
			return Matching{}, err
		}
		result.Solutions = append(result.Solutions, s)

		if err = d.Reserve(); err != nil {
			return Matching{}, err
		}
		result.Reserved = append(result.Reserved, d)
	}

	if len(result.Solutions) == 0 {
		return Matching{}, nil
	}
	if err := o.Match(now); err != nil {
		return Matching{}, err
	}
	return result, nil
}

func (m MatchingEngine) propose(o *order.Order, d *driver.Driver, now time.Time) (*solution.Solution, error) {
	cost, err := m.pricing.CalculateCost(d, o.Cargo())
	if err != nil {
		return nil, err
	}
	hours := m.estimator.EstimateHours(d, o)
	s, err := solution.NewSolution(kernel.NewUUID(), o.ID(), d.ID(), cost, hours, now)
	if err != nil {
		return nil, errors.Join(errs.NewValueIsInvalidError("solution"), err)
	}
	return s, nil
}

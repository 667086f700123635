package services

import (
	"math/rand/v2"
	"sync"

	"freight/internal/core/domain/model/driver"
	"freight/internal/core/domain/model/order"
)

const (
	MinSolutionHours = 1
	MaxSolutionHours = 48
)

// TimeEstimator predicts the delivery duration, in whole hours, of an order
// carried by a driver.
type TimeEstimator interface {
	EstimateHours(d *driver.Driver, o *order.Order) int
}

// RandomTimeEstimator draws a duration uniformly from [MinSolutionHours, MaxSolutionHours].
// It stands in until route-based estimation exists.
type RandomTimeEstimator struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func NewRandomTimeEstimator(seed uint64) *RandomTimeEstimator {
	return &RandomTimeEstimator{rnd: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (e *RandomTimeEstimator) EstimateHours(*driver.Driver, *order.Order) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return MinSolutionHours + e.rnd.IntN(MaxSolutionHours-MinSolutionHours+1)
}

// FixedTimeEstimator always predicts the same duration.
type FixedTimeEstimator struct {
	Hours int
}

func (e FixedTimeEstimator) EstimateHours(*driver.Driver, *order.Order) int {
	return e.Hours
}

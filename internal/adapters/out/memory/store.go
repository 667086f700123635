// Package memory keeps customers, drivers, orders and solutions in process
// memory. It backs STORAGE=memory and the end-to-end use case tests.
//
// A unit of work stages its writes in a change set and applies them atomically
// on Commit. Driver and order updates carry the version they were loaded with;
// Commit fails with errs.ErrConcurrentModification if another unit of work
// committed a newer version in the meantime.
package memory

import (
	"sync"
	"sync/atomic"

	"freight/internal/core/domain/model/customer"
	"freight/internal/core/domain/model/driver"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/order"
	"freight/internal/core/domain/model/solution"
	"freight/internal/pkg/errs"
)

type driverRecord struct {
	id            kernel.UUID
	person        kernel.Person
	qualification driver.Qualification
	experience    int
	status        driver.Status
	version       int
	seq           int64
}

func newDriverRecord(d *driver.Driver, seq int64) driverRecord {
	return driverRecord{
		id:            d.ID(),
		person:        d.Person(),
		qualification: d.Qualification(),
		experience:    d.Experience(),
		status:        d.Status(),
		version:       d.Version(),
		seq:           seq,
	}
}

func (r driverRecord) toDomain() (*driver.Driver, error) {
	return driver.RestoreDriver(r.id, r.person, r.qualification, r.experience, r.status, r.version)
}

type orderRecord struct {
	snapshot order.Snapshot
	seq      int64
}

type solutionRecord struct {
	solution *solution.Solution
	seq      int64
}

// Store is the committed state shared by every unit of work.
type Store struct {
	mu        sync.RWMutex
	seq       atomic.Int64
	customers map[kernel.UUID]*customer.Customer
	drivers   map[kernel.UUID]driverRecord
	orders    map[kernel.UUID]orderRecord
	solutions map[kernel.UUID]solutionRecord
}

func NewStore() *Store {
	return &Store{
		customers: make(map[kernel.UUID]*customer.Customer),
		drivers:   make(map[kernel.UUID]driverRecord),
		orders:    make(map[kernel.UUID]orderRecord),
		solutions: make(map[kernel.UUID]solutionRecord),
	}
}

func (s *Store) nextSeq() int64 {
	return s.seq.Add(1)
}

type driverChange struct {
	record driverRecord
	base   int
	isNew  bool
}

type orderChange struct {
	record orderRecord
	base   int
	isNew  bool
}

// changeSet is the pending state of one unit of work.
type changeSet struct {
	customers     map[kernel.UUID]*customer.Customer
	drivers       map[kernel.UUID]driverChange
	orders        map[kernel.UUID]orderChange
	solutions     map[kernel.UUID]solutionRecord
	clearedOrders map[kernel.UUID]bool
}

func newChangeSet() *changeSet {
	return &changeSet{
		customers:     make(map[kernel.UUID]*customer.Customer),
		drivers:       make(map[kernel.UUID]driverChange),
		orders:        make(map[kernel.UUID]orderChange),
		solutions:     make(map[kernel.UUID]solutionRecord),
		clearedOrders: make(map[kernel.UUID]bool),
	}
}

// apply validates the change set against the committed state and applies it
// as a whole, or not at all.
func (s *Store) apply(cs *changeSet) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.check(cs); err != nil {
		return err
	}

	for id, c := range cs.customers {
		s.customers[id] = c
	}
	for id, ch := range cs.drivers {
		s.drivers[id] = ch.record
	}
	for id, ch := range cs.orders {
		s.orders[id] = ch.record
	}
	for id, rec := range s.solutions {
		if cs.clearedOrders[rec.solution.OrderID()] {
			delete(s.solutions, id)
		}
	}
	for id, rec := range cs.solutions {
		s.solutions[id] = rec
	}
	return nil
}

func (s *Store) check(cs *changeSet) error {
	for id, c := range cs.customers {
		if _, ok := s.customers[id]; ok {
			return errs.NewObjectAlreadyExistsError("customer", id)
		}
		for _, existing := range s.customers {
			if existing.Email() == c.Email() {
				return customer.NewDuplicateCustomerError("email", c.Email())
			}
			if existing.Phone() == c.Phone() {
				return customer.NewDuplicateCustomerError("phone", c.Phone())
			}
		}
	}

	for id, ch := range cs.drivers {
		current, ok := s.drivers[id]
		switch {
		case ch.isNew && ok:
			return errs.NewObjectAlreadyExistsError("driver", id)
		case !ch.isNew && !ok:
			return errs.NewObjectNotFoundError("driver", id)
		case !ch.isNew && current.version != ch.base:
			return errs.NewConcurrentModificationError("driver", id, ch.base)
		}
	}

	for id, ch := range cs.orders {
		current, ok := s.orders[id]
		switch {
		case ch.isNew && ok:
			return errs.NewObjectAlreadyExistsError("order", id)
		case !ch.isNew && !ok:
			return errs.NewObjectNotFoundError("order", id)
		case !ch.isNew && current.snapshot.Version != ch.base:
			return errs.NewConcurrentModificationError("order", id, ch.base)
		}
	}

	for id := range cs.solutions {
		if _, ok := s.solutions[id]; ok {
			return errs.NewObjectAlreadyExistsError("solution", id)
		}
	}
	return nil
}

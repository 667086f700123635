package memory

import (
	"context"
	"slices"

	"freight/internal/core/domain/model/customer"
	"freight/internal/core/domain/model/driver"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/order"
	"freight/internal/core/domain/model/solution"
	"freight/internal/pkg/errs"
)

// CustomerRepository implements ports.CustomerRepository.
type CustomerRepository struct {
	uow *UnitOfWork
}

func (r *CustomerRepository) Add(ctx context.Context, aggregate *customer.Customer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	return r.uow.stage(ctx, aggregate, func(cs *changeSet) error {
		for _, c := range r.visible(cs) {
			switch {
			case c.ID().IsEqual(aggregate.ID()):
				return errs.NewObjectAlreadyExistsError("customer", aggregate.ID())
			case c.Email() == aggregate.Email():
				return customer.NewDuplicateCustomerError("email", aggregate.Email())
			case c.Phone() == aggregate.Phone():
				return customer.NewDuplicateCustomerError("phone", aggregate.Phone())
			}
		}
		cs.customers[aggregate.ID()] = aggregate
		return nil
	})
}

func (r *CustomerRepository) Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error) {
	return r.find(ctx, "customer", id, func(c *customer.Customer) bool { return c.ID().IsEqual(id) })
}

func (r *CustomerRepository) GetByEmail(ctx context.Context, email string) (*customer.Customer, error) {
	return r.find(ctx, "customer email", email, func(c *customer.Customer) bool { return c.Email() == email })
}

func (r *CustomerRepository) GetByPhone(ctx context.Context, phone string) (*customer.Customer, error) {
	return r.find(ctx, "customer phone", phone, func(c *customer.Customer) bool { return c.Phone() == phone })
}

func (r *CustomerRepository) find(
	ctx context.Context,
	param string,
	key any,
	match func(*customer.Customer) bool,
) (*customer.Customer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for _, c := range r.visible(r.uow.tx) {
		if match(c) {
			return c, nil
		}
	}
	return nil, errs.NewObjectNotFoundError(param, key)
}

func (r *CustomerRepository) visible(cs *changeSet) []*customer.Customer {
	r.uow.store.mu.RLock()
	result := make([]*customer.Customer, 0, len(r.uow.store.customers))
	for _, c := range r.uow.store.customers {
		result = append(result, c)
	}
	r.uow.store.mu.RUnlock()

	if cs != nil {
		for _, c := range cs.customers {
			result = append(result, c)
		}
	}
	return result
}

// DriverRepository implements ports.DriverRepository.
type DriverRepository struct {
	uow *UnitOfWork
}

func (r *DriverRepository) Add(ctx context.Context, aggregate *driver.Driver) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	return r.uow.stage(ctx, aggregate, func(cs *changeSet) error {
		if _, ok := r.lookup(cs, aggregate.ID()); ok {
			return errs.NewObjectAlreadyExistsError("driver", aggregate.ID())
		}
		cs.drivers[aggregate.ID()] = driverChange{
			record: newDriverRecord(aggregate, r.uow.store.nextSeq()),
			isNew:  true,
		}
		return nil
	})
}

func (r *DriverRepository) Update(ctx context.Context, aggregate *driver.Driver) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	err := r.uow.stage(ctx, aggregate, func(cs *changeSet) error {
		current, ok := r.lookup(cs, aggregate.ID())
		if !ok {
			return errs.NewObjectNotFoundError("driver", aggregate.ID())
		}
		if current.version != aggregate.Version() {
			return errs.NewConcurrentModificationError("driver", aggregate.ID(), aggregate.Version())
		}

		change, staged := cs.drivers[aggregate.ID()]
		if !staged {
			change = driverChange{base: current.version}
		}
		change.record = newDriverRecord(aggregate, current.seq)
		change.record.version++
		cs.drivers[aggregate.ID()] = change
		return nil
	})
	if err != nil {
		return err
	}
	aggregate.IncrementVersion()
	return nil
}

func (r *DriverRepository) Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	rec, ok := r.lookup(r.uow.tx, id)
	if !ok {
		return nil, errs.NewObjectNotFoundError("driver", id)
	}
	return rec.toDomain()
}

func (r *DriverRepository) FindByStatuses(
	ctx context.Context,
	statuses []driver.Status,
	limit int,
) ([]*driver.Driver, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return r.find(func(rec driverRecord) bool { return slices.Contains(statuses, rec.status) }, limit)
}

func (r *DriverRepository) FindUnproposedCandidates(ctx context.Context, limit int) ([]*driver.Driver, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	proposed := make(map[kernel.UUID]bool)
	solutions := &SolutionRepository{uow: r.uow}
	for _, rec := range solutions.visible(r.uow.tx) {
		proposed[rec.solution.DriverID()] = true
	}
	return r.find(func(rec driverRecord) bool {
		return rec.status == driver.Candidate && !proposed[rec.id]
	}, limit)
}

// find returns the visible drivers accepted by match in registration order.
func (r *DriverRepository) find(match func(driverRecord) bool, limit int) ([]*driver.Driver, error) {
	var matched []driverRecord
	for _, rec := range r.visible(r.uow.tx) {
		if match(rec) {
			matched = append(matched, rec)
		}
	}
	slices.SortFunc(matched, func(a, b driverRecord) int { return int(a.seq - b.seq) })
	if limit > 0 && len(matched) > limit {
		matched = matched[:limit]
	}

	result := make([]*driver.Driver, 0, len(matched))
	for _, rec := range matched {
		d, err := rec.toDomain()
		if err != nil {
			return nil, err
		}
		result = append(result, d)
	}
	return result, nil
}

func (r *DriverRepository) lookup(cs *changeSet, id kernel.UUID) (driverRecord, bool) {
	if cs != nil {
		if ch, ok := cs.drivers[id]; ok {
			return ch.record, true
		}
	}
	r.uow.store.mu.RLock()
	defer r.uow.store.mu.RUnlock()
	rec, ok := r.uow.store.drivers[id]
	return rec, ok
}

func (r *DriverRepository) visible(cs *changeSet) map[kernel.UUID]driverRecord {
	r.uow.store.mu.RLock()
	result := make(map[kernel.UUID]driverRecord, len(r.uow.store.drivers))
	for id, rec := range r.uow.store.drivers {
		result[id] = rec
	}
	r.uow.store.mu.RUnlock()

	if cs != nil {
		for id, ch := range cs.drivers {
			result[id] = ch.record
		}
	}
	return result
}

// OrderRepository implements ports.OrderRepository.
type OrderRepository struct {
	uow *UnitOfWork
}

func (r *OrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	return r.uow.stage(ctx, aggregate, func(cs *changeSet) error {
		if _, ok := r.lookup(cs, aggregate.ID()); ok {
			return errs.NewObjectAlreadyExistsError("order", aggregate.ID())
		}
		cs.orders[aggregate.ID()] = orderChange{
			record: orderRecord{snapshot: aggregate.Snapshot(), seq: r.uow.store.nextSeq()},
			isNew:  true,
		}
		return nil
	})
}

func (r *OrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	err := r.uow.stage(ctx, aggregate, func(cs *changeSet) error {
		current, ok := r.lookup(cs, aggregate.ID())
		if !ok {
			return errs.NewObjectNotFoundError("order", aggregate.ID())
		}
		if current.snapshot.Version != aggregate.Version() {
			return errs.NewConcurrentModificationError("order", aggregate.ID(), aggregate.Version())
		}

		change, staged := cs.orders[aggregate.ID()]
		if !staged {
			change = orderChange{base: current.snapshot.Version}
		}
		change.record = orderRecord{snapshot: aggregate.Snapshot(), seq: current.seq}
		change.record.snapshot.Version++
		cs.orders[aggregate.ID()] = change
		return nil
	})
	if err != nil {
		return err
	}
	aggregate.IncrementVersion()
	return nil
}

func (r *OrderRepository) Get(ctx context.Context, customerID, orderID kernel.UUID) (*order.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	rec, ok := r.lookup(r.uow.tx, orderID)
	if !ok || !rec.snapshot.CustomerID.IsEqual(customerID) {
		return nil, errs.NewObjectNotFoundError("order", orderID)
	}
	return order.RestoreOrder(rec.snapshot)
}

func (r *OrderRepository) GetAllByCustomer(ctx context.Context, customerID kernel.UUID) ([]*order.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var matched []orderRecord
	for _, rec := range r.visible(r.uow.tx) {
		if rec.snapshot.CustomerID.IsEqual(customerID) {
			matched = append(matched, rec)
		}
	}
	slices.SortFunc(matched, func(a, b orderRecord) int {
		if c := b.snapshot.CreatedAt.Compare(a.snapshot.CreatedAt); c != 0 {
			return c
		}
		return int(b.seq - a.seq)
	})

	result := make([]*order.Order, 0, len(matched))
	for _, rec := range matched {
		o, err := order.RestoreOrder(rec.snapshot)
		if err != nil {
			return nil, err
		}
		result = append(result, o)
	}
	return result, nil
}

func (r *OrderRepository) lookup(cs *changeSet, id kernel.UUID) (orderRecord, bool) {
	if cs != nil {
		if ch, ok := cs.orders[id]; ok {
			return ch.record, true
		}
	}
	r.uow.store.mu.RLock()
	defer r.uow.store.mu.RUnlock()
	rec, ok := r.uow.store.orders[id]
	return rec, ok
}

func (r *OrderRepository) visible(cs *changeSet) map[kernel.UUID]orderRecord {
	r.uow.store.mu.RLock()
	result := make(map[kernel.UUID]orderRecord, len(r.uow.store.orders))
	for id, rec := range r.uow.store.orders {
		result[id] = rec
	}
	r.uow.store.mu.RUnlock()

	if cs != nil {
		for id, ch := range cs.orders {
			result[id] = ch.record
		}
	}
	return result
}

// SolutionRepository implements ports.SolutionRepository.
type SolutionRepository struct {
	uow *UnitOfWork
}

func (r *SolutionRepository) AddAll(ctx context.Context, solutions []*solution.Solution) error {
	for _, s := range solutions {
		if err := s.Validate(); err != nil {
			return err
		}
	}
	return r.uow.stage(ctx, nil, func(cs *changeSet) error {
		visible := r.visible(cs)
		for _, s := range solutions {
			if _, ok := visible[s.ID()]; ok {
				return errs.NewObjectAlreadyExistsError("solution", s.ID())
			}
		}
		for _, s := range solutions {
			cs.solutions[s.ID()] = solutionRecord{solution: s, seq: r.uow.store.nextSeq()}
		}
		return nil
	})
}

func (r *SolutionRepository) Get(ctx context.Context, id kernel.UUID) (*solution.Solution, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	rec, ok := r.visible(r.uow.tx)[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("solution", id)
	}
	return rec.solution, nil
}

func (r *SolutionRepository) GetAllByOrder(ctx context.Context, orderID kernel.UUID) ([]*solution.Solution, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var matched []solutionRecord
	for _, rec := range r.visible(r.uow.tx) {
		if rec.solution.IsFor(orderID) {
			matched = append(matched, rec)
		}
	}
	slices.SortFunc(matched, func(a, b solutionRecord) int {
		switch {
		case a.solution.Cost() < b.solution.Cost():
			return -1
		case a.solution.Cost() > b.solution.Cost():
			return 1
		}
		return int(a.seq - b.seq)
	})

	result := make([]*solution.Solution, 0, len(matched))
	for _, rec := range matched {
		result = append(result, rec.solution)
	}
	return result, nil
}

func (r *SolutionRepository) DeleteAllByOrder(ctx context.Context, orderID kernel.UUID) error {
	return r.uow.stage(ctx, nil, func(cs *changeSet) error {
		cs.clearedOrders[orderID] = true
		for id, rec := range cs.solutions {
			if rec.solution.IsFor(orderID) {
				delete(cs.solutions, id)
			}
		}
		return nil
	})
}

func (r *SolutionRepository) CountByDriver(ctx context.Context, driverID kernel.UUID) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	var count int64
	for _, rec := range r.visible(r.uow.tx) {
		if rec.solution.DriverID().IsEqual(driverID) {
			count++
		}
	}
	return count, nil
}

// visible merges committed and staged solutions, without the ones of cleared orders.
func (r *SolutionRepository) visible(cs *changeSet) map[kernel.UUID]solutionRecord {
	r.uow.store.mu.RLock()
	result := make(map[kernel.UUID]solutionRecord, len(r.uow.store.solutions))
	for id, rec := range r.uow.store.solutions {
		if cs != nil && cs.clearedOrders[rec.solution.OrderID()] {
			continue
		}
		result[id] = rec
	}
	r.uow.store.mu.RUnlock()

	if cs != nil {
		for id, rec := range cs.solutions {
			result[id] = rec
		}
	}
	return result
}

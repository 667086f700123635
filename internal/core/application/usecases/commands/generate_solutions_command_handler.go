package commands

import (
	"context"
	"fmt"

	"freight/internal/core/domain/model/driver"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/services"
)

// DefaultMatchingDriverLimit caps how many vacant drivers one matching round considers.
const DefaultMatchingDriverLimit = 10

// GenerateSolutionsCommandHandler runs one matching round for an order in
// InProcess. Vacant drivers (waiting or candidate) are priced and become
// candidates, solutions are stored and the order moves to WaitDecision. With
// no vacant driver nothing changes.
//
// Every proposed driver is written with compare-and-swap, candidates
// included: two rounds reserving the same driver concurrently cannot both
// commit, and neither can a round racing the dismissal of its candidate.
type GenerateSolutionsCommandHandler struct {
	uowFactory UoWFactory
	engine     services.MatchingEngine
	clock      kernel.Clock
	limit      int
}

func NewGenerateSolutionsCommandHandler(
	uowFactory UoWFactory,
	engine services.MatchingEngine,
	clock kernel.Clock,
	limit int,
) GenerateSolutionsCommandHandler {
	if limit <= 0 {
		limit = DefaultMatchingDriverLimit
	}
	return GenerateSolutionsCommandHandler{
		uowFactory: uowFactory,
		engine:     engine,
		clock:      clock,
		limit:      limit,
	}
}

func (h *GenerateSolutionsCommandHandler) Handle(ctx context.Context, cmd OrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	driverRepo := uow.DriverRepository()

	o, err := loadOrder(ctx, orderRepo, cmd.CustomerID(), cmd.OrderID())
	if err != nil {
		return err
	}

	vacant, err := driverRepo.FindByStatuses(ctx, driver.MatchableStatuses(), h.limit)
	if err != nil {
		return fmt.Errorf("find vacant drivers: %w", err)
	}

	matching, err := h.engine.FindCandidates(o, vacant, h.clock.Now())
	if err != nil {
		return err
	}
	if len(matching.Solutions) == 0 {
		return uow.Commit(ctx)
	}

	for _, d := range matching.Reserved {
		if err = driverRepo.Update(ctx, d); err != nil {
			return err
		}
	}

	if err = uow.SolutionRepository().AddAll(ctx, matching.Solutions); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

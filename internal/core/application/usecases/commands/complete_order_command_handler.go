package commands

import (
	"context"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
)

// CompleteOrderCommandHandler marks a delivered order as ready and returns its
// driver to the waiting pool. A driver still proposed by open solutions of
// other orders goes back to candidate instead.
type CompleteOrderCommandHandler struct {
	uowFactory UoWFactory
	clock      kernel.Clock
}

func NewCompleteOrderCommandHandler(uowFactory UoWFactory, clock kernel.Clock) CompleteOrderCommandHandler {
	return CompleteOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h *CompleteOrderCommandHandler) Handle(ctx context.Context, cmd OrderCommand) error {
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

	if err = o.Complete(h.clock.Now()); err != nil {
		return err
	}

	driverID := o.DriverID()
	if driverID == nil {
		return errs.NewValueIsRequiredError("order driver")
	}
	d, err := driverRepo.Get(ctx, *driverID)
	if err != nil {
		return err
	}
	if err = d.Release(); err != nil {
		return err
	}
	open, err := uow.SolutionRepository().CountByDriver(ctx, d.ID())
	if err != nil {
		return err
	}
	if open > 0 {
		if err = d.Reserve(); err != nil {
			return err
		}
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}
	if err = driverRepo.Update(ctx, d); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

package commands

import (
	"context"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/order"
	"freight/internal/pkg/errs"
)

// ConfirmSolutionCommandHandler assigns the driver, cost and time of the chosen
// solution to the order, occupies the driver and discards every solution of
// the order. The other proposed drivers stay candidates until the stale
// candidate job releases them.
type ConfirmSolutionCommandHandler struct {
	uowFactory UoWFactory
	clock      kernel.Clock
}

func NewConfirmSolutionCommandHandler(uowFactory UoWFactory, clock kernel.Clock) ConfirmSolutionCommandHandler {
	return ConfirmSolutionCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h *ConfirmSolutionCommandHandler) Handle(ctx context.Context, cmd ConfirmSolutionCommand) error {
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
	solutionRepo := uow.SolutionRepository()

	o, err := loadOrder(ctx, orderRepo, cmd.CustomerID(), cmd.OrderID())
	if err != nil {
		return err
	}
	// Solutions are gone once the order left WaitDecision.
	if !o.Status().CanHandle(order.EventConfirmSolution) {
		return errs.NewInvalidTransitionError("order", o.Status().String(), string(order.EventConfirmSolution))
	}

	s, err := solutionRepo.Get(ctx, cmd.SolutionID())
	if err != nil {
		return err
	}
	if !s.IsFor(o.ID()) {
		return errs.NewObjectNotFoundError("solution", cmd.SolutionID())
	}

	d, err := driverRepo.Get(ctx, s.DriverID())
	if err != nil {
		return err
	}

	if err = o.ConfirmSolution(d.ID(), s.Cost(), s.Time(), h.clock.Now()); err != nil {
		return err
	}
	if err = d.Occupy(); err != nil {
		return err
	}

	if err = driverRepo.Update(ctx, d); err != nil {
		return err
	}
	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}
	if err = solutionRepo.DeleteAllByOrder(ctx, o.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

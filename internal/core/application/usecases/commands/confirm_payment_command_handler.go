package commands

import (
	"context"

	"freight/internal/core/domain/model/kernel"
)

// ConfirmPaymentCommandHandler starts the delivery of a paid order. The
// expected delivery date is the payment time plus the solution time.
type ConfirmPaymentCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      kernel.Clock
}

func NewConfirmPaymentCommandHandler(uowFactory OrderUoWFactory, clock kernel.Clock) ConfirmPaymentCommandHandler {
	return ConfirmPaymentCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h *ConfirmPaymentCommandHandler) Handle(ctx context.Context, cmd OrderCommand) error {
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
	o, err := loadOrder(ctx, orderRepo, cmd.CustomerID(), cmd.OrderID())
	if err != nil {
		return err
	}

	if err = o.ConfirmPayment(h.clock.Now()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

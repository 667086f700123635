package commands

import (
	"context"

	"freight/internal/core/domain/model/kernel"
)

// ConfirmAgreementCommandHandler records that the customer signed the agreement.
type ConfirmAgreementCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      kernel.Clock
}

func NewConfirmAgreementCommandHandler(uowFactory OrderUoWFactory, clock kernel.Clock) ConfirmAgreementCommandHandler {
	return ConfirmAgreementCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h *ConfirmAgreementCommandHandler) Handle(ctx context.Context, cmd OrderCommand) error {
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

	if err = o.ConfirmAgreement(h.clock.Now()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

package commands

import (
	"context"
	"errors"
	"fmt"

	"freight/internal/core/domain/model/customer"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/ports"
	"freight/internal/pkg/errs"
)

// SignUpCommandHandler registers a customer. The email and the phone must both
// be unused; the password is stored only as a hash.
type SignUpCommandHandler struct {
	uowFactory CustomerUoWFactory
	hasher     ports.PasswordHasher
	clock      kernel.Clock
}

func NewSignUpCommandHandler(
	uowFactory CustomerUoWFactory,
	hasher ports.PasswordHasher,
	clock kernel.Clock,
) SignUpCommandHandler {
	return SignUpCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
		clock:      clock,
	}
}

func (h *SignUpCommandHandler) Handle(ctx context.Context, cmd SignUpCommand) error {
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

	repo := uow.CustomerRepository()
	taken, err := isTaken(repo.GetByEmail(ctx, cmd.Email()))
	if err != nil {
		return err
	}
	if taken {
		return customer.NewDuplicateCustomerError("email", cmd.Email())
	}

	taken, err = isTaken(repo.GetByPhone(ctx, cmd.Phone()))
	if err != nil {
		return err
	}
	if taken {
		return customer.NewDuplicateCustomerError("phone", cmd.Phone())
	}

	hash, err := h.hasher.Hash(ctx, cmd.Password())
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	c, err := customer.NewCustomer(cmd.CustomerID(), cmd.Person(), cmd.Email(), cmd.Phone(), hash, h.clock.Now())
	if err != nil {
		return err
	}

	if err = repo.Add(ctx, c); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// isTaken interprets a lookup by a unique contact.
func isTaken(_ *customer.Customer, err error) (bool, error) {
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, errs.ErrObjectNotFound):
		return false, nil
	default:
		return false, err
	}
}

package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrConfirmSolutionCommandIsNotConstructed = errors.New(
	"ConfirmSolutionCommand must be created via NewConfirmSolutionCommand constructor",
)

// ConfirmSolutionCommand picks one solution of an order waiting for a decision.
type ConfirmSolutionCommand struct { //nolint:recvcheck //using for validation
	OrderCommand

	solutionID kernel.UUID
	guard      guard.ConstructorGuard
}

func NewConfirmSolutionCommand(customerID, orderID, solutionID kernel.UUID) (ConfirmSolutionCommand, error) {
	orderCmd, orderErr := NewOrderCommand(customerID, orderID)
	solutionErr := solutionID.Validate()
	if err := errors.Join(orderErr, solutionErr); err != nil {
		return ConfirmSolutionCommand{}, err
	}

	return ConfirmSolutionCommand{
		OrderCommand: orderCmd,
		solutionID:   solutionID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c ConfirmSolutionCommand) Validate() error {
	return c.guard.Validate(ErrConfirmSolutionCommandIsNotConstructed)
}

func (c ConfirmSolutionCommand) SolutionID() kernel.UUID {
	return c.solutionID
}

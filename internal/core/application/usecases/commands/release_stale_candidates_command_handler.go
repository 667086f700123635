package commands

import (
	"context"
	"errors"
	"fmt"

	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

var ErrReleaseStaleCandidatesCommandIsNotConstructed = errors.New(
	"ReleaseStaleCandidatesCommand must be created via NewReleaseStaleCandidatesCommand constructor",
)

// ReleaseStaleCandidatesCommand has no parameters.
type ReleaseStaleCandidatesCommand struct {
	guard guard.ConstructorGuard
}

func NewReleaseStaleCandidatesCommand() ReleaseStaleCandidatesCommand {
	return ReleaseStaleCandidatesCommand{guard: guard.NewConstructorGuard()}
}

func (c ReleaseStaleCandidatesCommand) Validate() error {
	return c.guard.Validate(ErrReleaseStaleCandidatesCommandIsNotConstructed)
}

// ReleaseStaleCandidatesCommandHandler returns to the waiting pool up to batch
// candidate drivers that no open solution proposes anymore, which happens once
// a competing solution of the same order was confirmed. Candidates still
// proposed never count against the batch.
type ReleaseStaleCandidatesCommandHandler struct {
	uowFactory UoWFactory
	batch      int
}

func NewReleaseStaleCandidatesCommandHandler(uowFactory UoWFactory, batch int) ReleaseStaleCandidatesCommandHandler {
	return ReleaseStaleCandidatesCommandHandler{uowFactory: uowFactory, batch: batch}
}

// Handle returns the number of released drivers. A driver concurrently reserved
// by a matching round is skipped, not reported as a failure.
func (h *ReleaseStaleCandidatesCommandHandler) Handle(ctx context.Context, cmd ReleaseStaleCandidatesCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	driverRepo := uow.DriverRepository()

	stale, err := driverRepo.FindUnproposedCandidates(ctx, h.batch)
	if err != nil {
		return 0, fmt.Errorf("find stale candidates: %w", err)
	}

	released := 0
	for _, d := range stale {
		if err = d.Dismiss(); err != nil {
			return 0, err
		}
		err = driverRepo.Update(ctx, d)
		if errors.Is(err, errs.ErrConcurrentModification) {
			continue
		}
		if err != nil {
			return 0, err
		}
		released++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}
	return released, nil
}

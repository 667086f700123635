package order

import (
	"fmt"

	"freight/internal/pkg/errs"
)

// Status is the lifecycle state of an order.
//
//	InProcess ─match─> WaitDecision ─confirm_solution─> WaitContractSigning
//	    ─confirm_agreement─> WaitPayments ─confirm_payment─> InProgress ─complete─> Ready
//
// WaitConfirmation is a valid, storable status that no event enters or leaves.
// Ready is terminal.
type Status int

const (
	// Unknown catches uninitialized Status values.
	Unknown Status = iota

	// InProcess is the initial status: the order is created but not matched yet.
	InProcess

	// WaitDecision: solutions were generated and the customer has to pick one.
	WaitDecision

	// WaitContractSigning: a solution is confirmed, the agreement is pending.
	WaitContractSigning

	// WaitPayments: the agreement is signed, the payment is pending.
	WaitPayments

	// InProgress: paid and being delivered.
	InProgress

	// WaitConfirmation is reserved for a delivery acknowledgement step.
	WaitConfirmation

	// Ready: delivered. Final.
	Ready
)

// Event is a lifecycle event applied to an order.
type Event string

const (
	EventMatch            Event = "match"
	EventConfirmSolution  Event = "confirm_solution"
	EventConfirmAgreement Event = "confirm_agreement"
	EventConfirmPayment   Event = "confirm_payment"
	EventComplete         Event = "complete"
)

type transition struct {
	from Status
	to   Status
}

// transitions is the complete table of legal events. Re-applying an event to an
// order that already left its source status is rejected like any other illegal event.
func transitions() map[Event]transition {
	return map[Event]transition{
		EventMatch:            {from: InProcess, to: WaitDecision},
		EventConfirmSolution:  {from: WaitDecision, to: WaitContractSigning},
		EventConfirmAgreement: {from: WaitContractSigning, to: WaitPayments},
		EventConfirmPayment:   {from: WaitPayments, to: InProgress},
		EventComplete:         {from: InProgress, to: Ready},
	}
}

func statusCodes() map[Status]string {
	//nolint:exhaustive // Unknown has no code
	return map[Status]string{
		InProcess:           "in_process",
		WaitDecision:        "wait_decision",
		WaitContractSigning: "wait_contract_signing",
		WaitPayments:        "wait_payments",
		InProgress:          "in_progress",
		WaitConfirmation:    "wait_confirmation",
		Ready:               "ready",
	}
}

func ParseStatus(code string) (Status, error) {
	for s, c := range statusCodes() {
		if c == code {
			return s, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a known status", code))
}

// Validate accepts every declared status, WaitConfirmation included.
func (s Status) Validate() error {
	if _, ok := statusCodes()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if code, ok := statusCodes()[s]; ok {
		return code
	}
	return "unknown"
}

// IsFinal reports whether no event can leave the status.
func (s Status) IsFinal() bool {
	return s == Ready
}

// CanHandle reports whether the event is legal from s, without side effects.
func (s Status) CanHandle(e Event) bool {
	t, ok := transitions()[e]
	return ok && t.from == s
}

// Fire returns the status reached by applying e, or an InvalidTransitionError
// naming the current status and the event.
func (s Status) Fire(e Event) (Status, error) {
	if !s.CanHandle(e) {
		return Unknown, errs.NewInvalidTransitionError("order", s.String(), string(e))
	}
	return transitions()[e].to, nil
}

// RequiresDriver reports whether an order in this status must have a driver assigned.
func (s Status) RequiresDriver() bool {
	switch s {
	case WaitContractSigning, WaitPayments, InProgress, WaitConfirmation, Ready:
		return true
	case Unknown, InProcess, WaitDecision:
	}
	return false
}

// ValidateCanHaveDriver checks the consistency between the status and driver assignment.
func (s Status) ValidateCanHaveDriver(hasDriver bool) error {
	if hasDriver && !s.RequiresDriver() {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have a driver", s),
		)
	}
	if !hasDriver && s.RequiresDriver() {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have no driver", s),
		)
	}
	return nil
}

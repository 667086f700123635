package driver

import (
	"fmt"

	"freight/internal/pkg/errs"
)

// Status is the availability of a driver.
//
//	Waiting ──reserve──> Candidate ──occupy──> Busy
//	   ^                  │    ^                 │
//	   └────dismiss───────┘    └─reserve         │
//	   ^                                         │
//	   └──────────────release────────────────────┘
type Status int

const (
	UnknownStatus Status = iota

	// Waiting drivers are free and may be proposed in solutions.
	Waiting

	// Candidate drivers appear in at least one open solution. They may still be
	// proposed for other orders.
	Candidate

	// Busy drivers execute a confirmed order and are never proposed.
	Busy
)

const (
	eventReserve = "reserve"
	eventOccupy  = "occupy"
	eventRelease = "release"
	eventDismiss = "dismiss"
)

func statusCodes() map[Status]string {
	//nolint:exhaustive // UnknownStatus has no code
	return map[Status]string{
		Waiting:   "waiting",
		Candidate: "candidate",
		Busy:      "busy",
	}
}

// MatchableStatuses are the statuses of drivers eligible for new solutions.
func MatchableStatuses() []Status {
	return []Status{Waiting, Candidate}
}

func ParseStatus(code string) (Status, error) {
	for s, c := range statusCodes() {
		if c == code {
			return s, nil
		}
	}
	return UnknownStatus, errs.NewValueIsInvalidErrorWithCause("driver status", fmt.Errorf("%q is not a known status", code))
}

func (s Status) Validate() error {
	if _, ok := statusCodes()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("driver status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if code, ok := statusCodes()[s]; ok {
		return code
	}
	return "unknown"
}

// IsMatchable reports whether a driver in this status may appear in a new solution.
func (s Status) IsMatchable() bool {
	return s == Waiting || s == Candidate
}

// Reserve: Waiting -> Candidate, Candidate -> Candidate.
func (s Status) Reserve() (Status, error) {
	if !s.IsMatchable() {
		return UnknownStatus, s.invalid(eventReserve)
	}
	return Candidate, nil
}

// Occupy: Candidate -> Busy.
func (s Status) Occupy() (Status, error) {
	if s != Candidate {
		return UnknownStatus, s.invalid(eventOccupy)
	}
	return Busy, nil
}

// Release: Busy -> Waiting.
func (s Status) Release() (Status, error) {
	if s != Busy {
		return UnknownStatus, s.invalid(eventRelease)
	}
	return Waiting, nil
}

// Dismiss: Candidate -> Waiting, for candidates left without open solutions.
func (s Status) Dismiss() (Status, error) {
	if s != Candidate {
		return UnknownStatus, s.invalid(eventDismiss)
	}
	return Waiting, nil
}

func (s Status) invalid(event string) error {
	return errs.NewInvalidTransitionError("driver", s.String(), event)
}

// Package driver models the drivers the brokerage proposes for orders.
//
// A Driver carries a qualification (which sets its pricing rate), years of
// experience within [2, 60] and an availability Status:
//   - Waiting: free, may be proposed
//   - Candidate: proposed in at least one open solution, may be proposed again
//   - Busy: executing a confirmed order, never proposed
//
// Status changes go through Reserve, Occupy, Release and Dismiss; any other
// change fails with an errs.InvalidTransitionError.
package driver

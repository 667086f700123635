// Package order provides the Order aggregate root of the freight brokerage and
// its lifecycle state machine.
//
// The package includes:
//   - Order: identity, cargo, route, confirmed solution parameters and dates
//   - Status and Event: the transition table every lifecycle change goes through
//   - StatusChanged: the domain event recorded by each transition
//   - Expectation: the delivery punctuality of a completed order
//
// Key business rules:
//   - Orders start in InProcess and end in Ready; Ready is final
//   - Events are accepted only from their single source status, so a repeated
//     event fails with errs.ErrInvalidTransition
//   - The driver, cost and time of an order come from exactly one confirmed solution
//   - Orders belong to one customer and are never visible to others
package order

// Package errs provides the error taxonomy shared by the domain, the use cases and
// the adapters of the freight brokerage.
//
// Every error kind follows the same shape:
//   - a sentinel (ErrObjectNotFound, ErrInvalidTransition, ...) for errors.Is checks
//   - a struct carrying the details (ObjectNotFoundError, InvalidTransitionError, ...)
//   - constructors, with a WithCause variant where a cause makes sense
//   - Unwrap returning the sentinel
//
// The kinds map onto the failures the use cases report:
//   - validation: ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError
//   - lookups: ObjectNotFoundError
//   - uniqueness: ObjectAlreadyExistsError
//   - lifecycle: InvalidTransitionError
//   - optimistic locking: ConcurrentModificationError
//   - static tables: ConfigurationError
package errs

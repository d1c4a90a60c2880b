// Package errs provides standardized error types for the marketplace application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// Each error type follows the same shape:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details and an optional Cause
//   - Constructor functions with and without cause
//   - Error() for formatting and Unwrap() for errors.Is classification
//
// The application maps these onto its failure kinds: ObjectNotFoundError for
// missing orders/carriers/items/users, ValueIsInvalidError and
// ValueIsOutOfRangeError for malformed arguments, and ValueIsRequiredError for
// missing mandatory input. State-machine violations carry their own sentinel
// errors inside the owning domain package.
package errs

// Package errs provides standardized error types for the fulfillment application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes error types for the failure modes of the order core:
//   - ValueIsRequiredError / ValueIsInvalidError: validation failures on input
//   - ObjectNotFoundError: lookups that matched nothing
//   - InvalidTransitionError: disallowed order status edges
//   - InvalidStateError: operations against already-resolved objects
//   - ConcurrentUpdateError: optimistic concurrency conflicts
//   - DispatchError: notification delivery failures
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// Callers classify failures with errors.Is against the sentinels, never by
// string matching.
package errs

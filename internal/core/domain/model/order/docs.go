// Package order contains the Order aggregate and its value objects.
//
// The Order aggregate is the heart of the fulfillment core. It owns:
//   - the status state machine (received through delivered, with cancellation
//     reachable from every non-terminal state)
//   - the immutable totals snapshot computed once at creation from the line
//     items and the VAT jurisdiction
//   - the typed per-notification email flags that guard against duplicate sends
//   - the weekend-hello flag and the next scheduled status timestamp consumed
//     by the status scheduler
//
// All money amounts are integer minor currency units (cents); no floating-point
// arithmetic is used anywhere in this package.
//
// Orders are never hard-deleted. Cancellation is a terminal status, not a
// removal, so the audit trail stays intact.
//
// Order state may only be mutated through the aggregate's methods, and the
// aggregate itself is only mutated by the command handlers in
// internal/core/application/usecases/commands.
package order

// Package ports defines the contracts between the fulfillment core and its
// collaborators: persistence, notification dispatch and sequence generation.
// These interfaces establish the boundary for dependency inversion and
// testability; no other externally observable surface belongs to the core.
package ports

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
//
// Update takes the status the caller read before deciding, and implementations
// must apply the write only if the stored status still matches
// (UPDATE ... WHERE id = ? AND status = ?). A failed check surfaces as
// errs.ErrConcurrentUpdate, which is how overlapping scheduler runs are kept
// from double-processing an order.
type OrderRepository interface {
	// Add persists a new order aggregate with its items.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate, guarded by the
	// status the caller read. Returns errs.ErrConcurrentUpdate if another
	// writer changed the order's status in between.
	Update(ctx context.Context, aggregate *order.Order, expectedStatus order.Status) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetBySeq retrieves an order by its monotonic sequence.
	GetBySeq(ctx context.Context, seq int64) (*order.Order, error)

	// GetByOrderNo retrieves an order by its human-readable order number.
	GetByOrderNo(ctx context.Context, orderNo string) (*order.Order, error)

	// GetAllDue retrieves orders whose next_status_at is at or before now and
	// whose status is not terminal. This is the scheduler's work queue.
	GetAllDue(ctx context.Context, now time.Time) ([]*order.Order, error)

	// GetAllNeedingWeekendHello retrieves orders flagged for the weekend
	// acknowledgement that have not had it sent yet.
	GetAllNeedingWeekendHello(ctx context.Context) ([]*order.Order, error)
}

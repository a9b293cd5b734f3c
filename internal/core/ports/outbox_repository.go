package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/outbox"
)

// OutboxRepository defines the persistence contract for notification intents.
// Entries are insert-then-resolve: an insert creates a pending row, exactly
// one of the resolution writes may follow, and a retry is a new row.
type OutboxRepository interface {
	// Add persists a new pending entry with its payload snapshot.
	Add(ctx context.Context, entry *outbox.Entry) error

	// Update persists the resolution of an entry. The aggregate enforces the
	// single-resolution rule before the write.
	Update(ctx context.Context, entry *outbox.Entry) error

	// Get retrieves an entry by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*outbox.Entry, error)

	// GetAllPending retrieves unresolved entries, oldest first, up to limit.
	// Ops tooling uses this to find intents stranded by a crash.
	GetAllPending(ctx context.Context, limit int) ([]*outbox.Entry, error)

	// ListByOrder retrieves the full attempt history for an order, in
	// creation order.
	ListByOrder(ctx context.Context, orderID kernel.UUID) ([]*outbox.Entry, error)
}

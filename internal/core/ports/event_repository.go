package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// EventRepository defines the persistence contract for the audit trail.
// The log is insert-only and ordered per order; rows are never updated.
type EventRepository interface {
	// Append inserts one audit record.
	Append(ctx context.Context, event order.Event) error

	// ListByOrder retrieves the audit trail of an order in append order.
	ListByOrder(ctx context.Context, orderID kernel.UUID) ([]order.Event, error)
}

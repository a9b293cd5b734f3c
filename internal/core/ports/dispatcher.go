package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/outbox"
)

// NotificationDispatcher is the external collaborator that delivers
// transactional notifications. Template identifiers are opaque to the core;
// composition and rendering happen behind this interface.
//
// Send blocks until the provider accepts or rejects the notification; callers
// bound it with a context deadline so one slow dispatch cannot starve the
// processing of other orders. On success it returns the provider's message
// id. A failure is recorded on the outbox entry and never affects the order's
// status transition.
type NotificationDispatcher interface {
	Send(ctx context.Context, templateID string, snapshot outbox.Snapshot) (providerMessageID string, err error)
}

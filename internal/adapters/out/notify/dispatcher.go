// Package notify contains the outbound notification adapter. The production
// system hands templates to an external rendering and SMTP collaborator; the
// adapter here logs the send and fabricates a provider message id, which is
// enough for development and for exercising the outbox resolution flow.
package notify

import (
	"context"
	"log/slog"

	"fulfillment/internal/core/domain/model/outbox"

	"github.com/google/uuid"
)

// LogDispatcher implements NotificationDispatcher by logging the notification
// instead of sending it.
type LogDispatcher struct {
	logger *slog.Logger
}

// NewLogDispatcher creates a dispatcher that logs sends.
func NewLogDispatcher(logger *slog.Logger) *LogDispatcher {
	return &LogDispatcher{logger: logger.With("component", "dispatcher")}
}

// Send logs the notification and returns a generated provider message id.
func (d *LogDispatcher) Send(ctx context.Context, templateID string, snapshot outbox.Snapshot) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	providerMessageID := uuid.NewString()
	d.logger.InfoContext(ctx, "Notification dispatched",
		"template_id", templateID,
		"order_no", snapshot.OrderNo,
		"recipient", snapshot.CustomerEmail,
		"provider_message_id", providerMessageID,
	)

	return providerMessageID, nil
}

package queries

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListPendingNotificationsQueryResponse is one unresolved outbox entry.
type ListPendingNotificationsQueryResponse struct {
	ID         kernel.UUID
	OrderID    kernel.UUID
	TemplateID string
	CreatedAt  time.Time
}

// ListPendingNotificationsQueryHandler reads unresolved outbox entries for
// operational inspection.
type ListPendingNotificationsQueryHandler struct {
	db *gorm.DB
}

// NewListPendingNotificationsQueryHandler creates a handler for outbox
// inspection.
func NewListPendingNotificationsQueryHandler(db *gorm.DB) ListPendingNotificationsQueryHandler {
	return ListPendingNotificationsQueryHandler{db: db}
}

// Handle returns pending entries, oldest first.
func (h ListPendingNotificationsQueryHandler) Handle(
	ctx context.Context,
	query ListPendingNotificationsQuery,
) ([]ListPendingNotificationsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	stmt := `
		SELECT id, order_id, template_id, created_at
		FROM outbox_entries
		WHERE status = 'pending'
		ORDER BY created_at
		LIMIT ?
	`

	rows, err := h.db.WithContext(ctx).Raw(stmt, query.Limit()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]ListPendingNotificationsQueryResponse, 0)
	for rows.Next() {
		var (
			id      uuid.UUID
			orderID uuid.UUID
			resp    ListPendingNotificationsQueryResponse
		)

		if err = rows.Scan(&id, &orderID, &resp.TemplateID, &resp.CreatedAt); err != nil {
			return nil, err
		}

		entryID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		entryOrderID, idErr := kernel.UUIDFromBytes(orderID[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = entryID
		resp.OrderID = entryOrderID

		entries = append(entries, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

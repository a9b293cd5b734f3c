package queries

import (
	"context"
	"database/sql"
	"time"

	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderEventsQueryResponse is one audit trail record, oldest first.
type GetOrderEventsQueryResponse struct {
	ID         kernel.UUID
	Kind       string
	FromStatus string
	ToStatus   string
	Actor      string
	Detail     string
	At         time.Time
}

// GetOrderEventsQueryHandler reads the append-only event rows of one order.
type GetOrderEventsQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderEventsQueryHandler creates a handler for audit trail reads.
func NewGetOrderEventsQueryHandler(db *gorm.DB) GetOrderEventsQueryHandler {
	return GetOrderEventsQueryHandler{db: db}
}

// Handle returns the order's events in insertion order.
func (h GetOrderEventsQueryHandler) Handle(
	ctx context.Context,
	query GetOrderEventsQuery,
) ([]GetOrderEventsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	stmt := `
		SELECT id, kind, from_status, to_status, actor, detail, at
		FROM order_events
		WHERE order_id = ?
		ORDER BY at, id
	`

	rows, err := h.db.WithContext(ctx).Raw(stmt, query.OrderID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]GetOrderEventsQueryResponse, 0)
	for rows.Next() {
		var (
			id         uuid.UUID
			fromStatus sql.NullString
			toStatus   sql.NullString
			resp       GetOrderEventsQueryResponse
		)

		if err = rows.Scan(
			&id,
			&resp.Kind,
			&fromStatus,
			&toStatus,
			&resp.Actor,
			&resp.Detail,
			&resp.At,
		); err != nil {
			return nil, err
		}

		eventID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = eventID
		resp.FromStatus = fromStatus.String
		resp.ToStatus = toStatus.String

		events = append(events, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}

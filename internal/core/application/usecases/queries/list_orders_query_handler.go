package queries

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListOrdersQueryResponse is one row of the order listing projection.
type ListOrdersQueryResponse struct {
	ID            kernel.UUID
	OrderNo       string
	Status        string
	PaymentStatus string
	Country       string
	OrderType     string
	TotalGross    int64
	CreatedAt     time.Time
}

// ListOrdersQueryHandler reads the order listing straight from the database,
// newest first.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersQueryHandler creates a handler for order listings.
func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle executes the listing query with the requested filters.
func (h ListOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListOrdersQuery,
) ([]ListOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			seq,
			status,
			payment_status,
			country,
			order_type,
			totals_total_gross,
			created_at
		FROM orders
		WHERE 1=1
	`
	args := make([]any, 0, 4)

	if query.Status() != 0 {
		sql += " AND status = ?"
		args = append(args, query.Status().String())
	}
	if query.Country() != "" {
		sql += " AND country = ?"
		args = append(args, query.Country().String())
	}

	sql += " ORDER BY seq DESC LIMIT ? OFFSET ?"
	args = append(args, query.Limit(), query.Offset())

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]ListOrdersQueryResponse, 0)
	for rows.Next() {
		var (
			id   uuid.UUID
			seq  int64
			resp ListOrdersQueryResponse
		)

		if err = rows.Scan(
			&id,
			&seq,
			&resp.Status,
			&resp.PaymentStatus,
			&resp.Country,
			&resp.OrderType,
			&resp.TotalGross,
			&resp.CreatedAt,
		); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = orderID
		resp.OrderNo = kernel.FormatOrderNo(seq)

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

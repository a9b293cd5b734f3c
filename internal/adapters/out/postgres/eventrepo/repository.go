package eventrepo

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GormEventRepository implements EventRepository using GORM.
type GormEventRepository struct {
	db *gorm.DB
}

// NewGormEventRepository creates a new GORM event repository.
func NewGormEventRepository(db *gorm.DB) *GormEventRepository {
	return &GormEventRepository{db: db}
}

// Append inserts one audit record.
func (r *GormEventRepository) Append(ctx context.Context, event order.Event) error {
	dto := fromDomain(event)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// ListByOrder retrieves the audit trail of an order in append order.
func (r *GormEventRepository) ListByOrder(ctx context.Context, orderID kernel.UUID) ([]order.Event, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []EventDTO
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID.Bytes()).
		Order("at, id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	events := make([]order.Event, 0, len(dtos))
	for _, dto := range dtos {
		event, dtoErr := toDomain(dto)
		if dtoErr != nil {
			return nil, dtoErr
		}
		events = append(events, event)
	}

	return events, nil
}

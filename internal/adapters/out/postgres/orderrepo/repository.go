package orderrepo

import (
	"context"
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order with its lines to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}
	if err = r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves the mutable state of an existing order, guarded by the status
// the caller read. The guard turns lost races between overlapping scheduler
// runs into errs.ErrConcurrentUpdate instead of double-applied transitions.
// Items, seq and created_at are write-once and deliberately not in the column
// set.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order, expectedStatus order.Status) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if err := expectedStatus.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ? AND status = ?", dto.ID, expectedStatus.String()).
		Updates(map[string]any{
			"status":                dto.Status,
			"payment_status":        dto.PaymentStatus,
			"confirmation_sent_at":  dto.ConfirmationSentAt,
			"shipped_sent_at":       dto.ShippedSentAt,
			"delivered_sent_at":     dto.DeliveredSentAt,
			"cancelled_sent_at":     dto.CancelledSentAt,
			"weekend_hello_sent_at": dto.WeekendHelloSentAt,
			"needs_weekend_hello":   dto.NeedsWeekendHello,
			"next_status_at":        dto.NextStatusAt,
			"notes":                 dto.Notes,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewConcurrentUpdateError("order", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).Preload("Items").First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetBySeq retrieves an order by its monotonic sequence.
func (r *GormOrderRepository) GetBySeq(ctx context.Context, seq int64) (*order.Order, error) {
	var dto OrderDTO
	if err := r.db.WithContext(ctx).Preload("Items").First(&dto, "seq = ?", seq).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", seq)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByOrderNo retrieves an order by its human-readable order number.
func (r *GormOrderRepository) GetByOrderNo(ctx context.Context, orderNo string) (*order.Order, error) {
	seq, err := kernel.ParseOrderNo(orderNo)
	if err != nil {
		return nil, err
	}

	return r.GetBySeq(ctx, seq)
}

// GetAllDue retrieves orders whose scheduled advance is at or before now.
// Terminal orders never match: TransitionTo and Cancel clear next_status_at.
func (r *GormOrderRepository) GetAllDue(ctx context.Context, now time.Time) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).Preload("Items").
		Where("next_status_at IS NOT NULL AND next_status_at <= ?", now).
		Where("status NOT IN ?", []string{order.StatusDelivered.String(), order.StatusCancelled.String()}).
		Order("next_status_at").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

// GetAllNeedingWeekendHello retrieves orders still owing the weekend
// acknowledgement.
func (r *GormOrderRepository) GetAllNeedingWeekendHello(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).Preload("Items").
		Where("needs_weekend_hello").
		Where("weekend_hello_sent_at IS NULL").
		Order("created_at").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

func toDomainAll(dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

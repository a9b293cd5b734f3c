package outboxrepo

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/outbox"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOutboxRepository implements OutboxRepository using GORM.
type GormOutboxRepository struct {
	db *gorm.DB
}

// NewGormOutboxRepository creates a new GORM outbox repository.
func NewGormOutboxRepository(db *gorm.DB) *GormOutboxRepository {
	return &GormOutboxRepository{db: db}
}

// Add inserts a new pending entry.
func (r *GormOutboxRepository) Add(ctx context.Context, entry *outbox.Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto := fromDomain(entry)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update persists the resolution of an entry. Only the resolution columns are
// written; the payload and intent identity are immutable after Add.
func (r *GormOutboxRepository) Update(ctx context.Context, entry *outbox.Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto := fromDomain(entry)
	result := r.db.WithContext(ctx).Model(&EntryDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"status":              dto.Status,
			"provider_message_id": dto.ProviderMessageID,
			"error_message":       dto.ErrorMessage,
			"resolved_at":         dto.ResolvedAt,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("outbox entry", entry.ID().String())
	}

	return nil
}

// Get retrieves an entry by ID.
func (r *GormOutboxRepository) Get(ctx context.Context, id kernel.UUID) (*outbox.Entry, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto EntryDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("outbox entry", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllPending retrieves unresolved entries, oldest first, up to limit.
func (r *GormOutboxRepository) GetAllPending(ctx context.Context, limit int) ([]*outbox.Entry, error) {
	var dtos []EntryDTO
	err := r.db.WithContext(ctx).
		Where("status = ?", outbox.EntryPending.String()).
		Order("created_at").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

// ListByOrder retrieves the full attempt history for an order.
func (r *GormOutboxRepository) ListByOrder(ctx context.Context, orderID kernel.UUID) ([]*outbox.Entry, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []EntryDTO
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID.Bytes()).
		Order("created_at").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

func toDomainAll(dtos []EntryDTO) ([]*outbox.Entry, error) {
	entries := make([]*outbox.Entry, 0, len(dtos))
	for _, dto := range dtos {
		entry, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

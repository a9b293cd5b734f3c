// Package outboxrepo persists notification intents. One row per send attempt:
// inserted pending, resolved at most once, retries are new rows.
package outboxrepo

import (
	"encoding/json"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/outbox"

	"github.com/google/uuid"
)

// EntryDTO represents the database structure for persisting outbox entries.
// The payload column carries the denormalized order snapshot captured at
// intent creation; the sender never re-reads the order.
type EntryDTO struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID           uuid.UUID `gorm:"type:uuid;index"`
	Notification      string
	TemplateID        string
	Payload           []byte `gorm:"type:jsonb"`
	Status            string `gorm:"index"`
	ProviderMessageID string
	ErrorMessage      string
	CreatedAt         time.Time `gorm:"index"`
	ResolvedAt        *time.Time
}

// TableName specifies the database table name for outbox entries.
func (EntryDTO) TableName() string {
	return "outbox_entries"
}

// fromDomain converts an outbox entry to its database representation.
func fromDomain(entry *outbox.Entry) EntryDTO {
	return EntryDTO{
		ID:                entry.ID().Bytes(),
		OrderID:           entry.OrderID().Bytes(),
		Notification:      entry.Notification().String(),
		TemplateID:        entry.TemplateID(),
		Payload:           entry.Payload(),
		Status:            entry.Status().String(),
		ProviderMessageID: entry.ProviderMessageID(),
		ErrorMessage:      entry.ErrorMessage(),
		CreatedAt:         entry.CreatedAt(),
		ResolvedAt:        entry.ResolvedAt(),
	}
}

// toDomain converts a database DTO to an outbox entry using RestoreEntry.
func toDomain(dto EntryDTO) (*outbox.Entry, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	notification, err := order.NotificationTypeFromString(dto.Notification)
	if err != nil {
		return nil, err
	}

	status, err := outbox.EntryStatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return outbox.RestoreEntry(
		id,
		orderID,
		notification,
		dto.TemplateID,
		json.RawMessage(dto.Payload),
		status,
		dto.ProviderMessageID,
		dto.ErrorMessage,
		dto.CreatedAt,
		dto.ResolvedAt,
	)
}

// Package eventrepo persists the append-only audit trail. Rows are inserted
// once and never updated or deleted.
package eventrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// EventDTO represents the database structure for one audit record.
// from_status/to_status are empty for kinds without a status edge.
type EventDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID `gorm:"type:uuid;index"`
	Kind       string
	FromStatus string
	ToStatus   string
	Actor      string
	Detail     string
	At         time.Time `gorm:"index"`
}

// TableName specifies the database table name for audit records.
func (EventDTO) TableName() string {
	return "order_events"
}

// fromDomain converts an audit record to its database representation.
func fromDomain(event order.Event) EventDTO {
	var fromStatus, toStatus string
	if event.FromStatus != order.StatusUnknown {
		fromStatus = event.FromStatus.String()
	}
	if event.ToStatus != order.StatusUnknown {
		toStatus = event.ToStatus.String()
	}

	return EventDTO{
		ID:         event.ID.Bytes(),
		OrderID:    event.OrderID.Bytes(),
		Kind:       string(event.Kind),
		FromStatus: fromStatus,
		ToStatus:   toStatus,
		Actor:      event.Actor,
		Detail:     event.Detail,
		At:         event.At,
	}
}

// toDomain converts a database DTO to an audit record.
func toDomain(dto EventDTO) (order.Event, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return order.Event{}, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return order.Event{}, err
	}

	event := order.Event{
		ID:      id,
		OrderID: orderID,
		Kind:    order.EventKind(dto.Kind),
		Actor:   dto.Actor,
		Detail:  dto.Detail,
		At:      dto.At,
	}

	if dto.FromStatus != "" {
		event.FromStatus, err = order.StatusFromString(dto.FromStatus)
		if err != nil {
			return order.Event{}, err
		}
	}
	if dto.ToStatus != "" {
		event.ToStatus, err = order.StatusFromString(dto.ToStatus)
		if err != nil {
			return order.Event{}, err
		}
	}

	return event, nil
}

package order

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
)

// EventKind classifies the state-affecting actions recorded in the audit trail.
type EventKind string

const (
	EventOrderCreated   EventKind = "order_created"
	EventStatusChanged  EventKind = "status_changed"
	EventOrderCancelled EventKind = "order_cancelled"
	EventEmailSent      EventKind = "email_sent"
	EventNoteAdded      EventKind = "note_added"
)

// Event is one append-only audit record. One row is written per
// state-affecting action and never updated afterwards; together the rows per
// order form the complete audit trail.
//
// Events are plain records rather than an aggregate: they carry no behavior
// and no invariants beyond their insert-only handling in the repository.
type Event struct {
	ID      kernel.UUID
	OrderID kernel.UUID
	Kind    EventKind

	// FromStatus/ToStatus are set for status_changed and order_cancelled events.
	FromStatus Status
	ToStatus   Status

	// Actor identifies who or what triggered the action ("scheduler", an
	// operator login, "shop").
	Actor string

	// Detail carries kind-specific context: the cancellation reason, the
	// notification type of an email_sent event, or the note text.
	Detail string

	At time.Time
}

// NewOrderCreatedEvent records the creation of an order.
func NewOrderCreatedEvent(orderID kernel.UUID, actor string, at time.Time) Event {
	return Event{
		ID:      kernel.NewUUID(),
		OrderID: orderID,
		Kind:    EventOrderCreated,
		Actor:   actor,
		At:      at,
	}
}

// NewStatusChangedEvent records a status transition with its edge.
func NewStatusChangedEvent(orderID kernel.UUID, from, to Status, actor string, at time.Time) Event {
	return Event{
		ID:         kernel.NewUUID(),
		OrderID:    orderID,
		Kind:       EventStatusChanged,
		FromStatus: from,
		ToStatus:   to,
		Actor:      actor,
		At:         at,
	}
}

// NewOrderCancelledEvent records a cancellation with its reason.
func NewOrderCancelledEvent(orderID kernel.UUID, from Status, reason, actor string, at time.Time) Event {
	return Event{
		ID:         kernel.NewUUID(),
		OrderID:    orderID,
		Kind:       EventOrderCancelled,
		FromStatus: from,
		ToStatus:   StatusCancelled,
		Actor:      actor,
		Detail:     reason,
		At:         at,
	}
}

// NewEmailSentEvent records that a notification send was acknowledged.
// It is appended even when the flag was already set, for traceability.
func NewEmailSentEvent(orderID kernel.UUID, notification NotificationType, providerMessageID, actor string, at time.Time) Event {
	detail := notification.String()
	if providerMessageID != "" {
		detail += " provider_message_id=" + providerMessageID
	}

	return Event{
		ID:      kernel.NewUUID(),
		OrderID: orderID,
		Kind:    EventEmailSent,
		Actor:   actor,
		Detail:  detail,
		At:      at,
	}
}

// NewNoteAddedEvent records an internal note being appended.
func NewNoteAddedEvent(orderID kernel.UUID, text, actor string, at time.Time) Event {
	return Event{
		ID:      kernel.NewUUID(),
		OrderID: orderID,
		Kind:    EventNoteAdded,
		Actor:   actor,
		Detail:  text,
		At:      at,
	}
}

package outbox

import (
	"encoding/json"
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
)

// ErrEntryIsNotConstructed is returned when an Entry was not created through
// NewEntry or RestoreEntry.
var ErrEntryIsNotConstructed = errors.New("Entry must be created via NewEntry or RestoreEntry")

// EntryStatus is the three-state lifecycle of a notification intent.
type EntryStatus int

const (
	// EntryStatusUnknown catches uninitialized values.
	EntryStatusUnknown EntryStatus = iota

	// EntryPending means the intent is persisted but the send outcome is not.
	EntryPending

	// EntrySent means the dispatcher accepted the notification.
	EntrySent

	// EntryFailed means the send attempt failed. A retry is a new entry.
	EntryFailed
)

func entryStatusStrings() map[EntryStatus]string {
	return map[EntryStatus]string{
		EntryStatusUnknown: "unknown",
		EntryPending:       "pending",
		EntrySent:          "sent",
		EntryFailed:        "failed",
	}
}

// EntryStatusFromString parses a persisted entry status name.
func EntryStatusFromString(s string) (EntryStatus, error) {
	for status, name := range entryStatusStrings() {
		if name == s && status != EntryStatusUnknown {
			return status, nil
		}
	}
	return EntryStatusUnknown, errs.NewValueIsInvalidError("outbox entry status " + s)
}

// String returns the lowercase name of the entry status.
func (s EntryStatus) String() string {
	if str, ok := entryStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Validate checks the entry status is one of the defined states.
func (s EntryStatus) Validate() error {
	if _, ok := entryStatusStrings()[s]; !ok || s == EntryStatusUnknown {
		return errs.NewValueIsInvalidError("outbox entry status")
	}
	return nil
}

// Entry is one notification send attempt intent. It is created pending and
// resolves exactly once to sent or failed; resolving an already-resolved
// entry fails with an InvalidStateError, which indicates a concurrency bug
// and is logged loudly by callers.
type Entry struct {
	id                kernel.UUID
	orderID           kernel.UUID
	notification      order.NotificationType
	templateID        string
	payload           json.RawMessage
	status            EntryStatus
	providerMessageID string
	errorMessage      string
	createdAt         time.Time
	resolvedAt        *time.Time

	isConstructed bool
}

// NewEntry creates a pending intent for the given notification, capturing the
// payload snapshot at creation time.
func NewEntry(
	id kernel.UUID,
	orderID kernel.UUID,
	notification order.NotificationType,
	snapshot Snapshot,
	createdAt time.Time,
) (*Entry, error) {
	if err := errors.Join(
		id.Validate(),
		orderID.Validate(),
		notification.Validate(),
	); err != nil {
		return nil, err
	}
	if createdAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("created at")
	}

	payload, err := snapshot.Marshal()
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("outbox payload", err)
	}

	return &Entry{
		id:            id,
		orderID:       orderID,
		notification:  notification,
		templateID:    notification.TemplateID(),
		payload:       payload,
		status:        EntryPending,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

// RestoreEntry reconstructs an entry from persistence as recorded.
func RestoreEntry(
	id kernel.UUID,
	orderID kernel.UUID,
	notification order.NotificationType,
	templateID string,
	payload json.RawMessage,
	status EntryStatus,
	providerMessageID string,
	errorMessage string,
	createdAt time.Time,
	resolvedAt *time.Time,
) (*Entry, error) {
	if err := errors.Join(
		id.Validate(),
		orderID.Validate(),
		notification.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	return &Entry{
		id:                id,
		orderID:           orderID,
		notification:      notification,
		templateID:        templateID,
		payload:           payload,
		status:            status,
		providerMessageID: providerMessageID,
		errorMessage:      errorMessage,
		createdAt:         createdAt,
		resolvedAt:        resolvedAt,
		isConstructed:     true,
	}, nil
}

// Validate ensures the entry was created via one of its factories.
func (e *Entry) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrEntryIsNotConstructed
	}
	return nil
}

// ID returns the entry's unique identifier.
func (e *Entry) ID() kernel.UUID {
	return e.id
}

// OrderID returns the order this intent belongs to.
func (e *Entry) OrderID() kernel.UUID {
	return e.orderID
}

// Notification returns the notification type of the intent.
func (e *Entry) Notification() order.NotificationType {
	return e.notification
}

// TemplateID returns the opaque template identifier for the dispatcher.
func (e *Entry) TemplateID() string {
	return e.templateID
}

// Payload returns the denormalized snapshot captured at intent creation.
func (e *Entry) Payload() json.RawMessage {
	return e.payload
}

// Status returns the current entry status.
func (e *Entry) Status() EntryStatus {
	return e.status
}

// ProviderMessageID returns the dispatcher's message id once sent.
func (e *Entry) ProviderMessageID() string {
	return e.providerMessageID
}

// ErrorMessage returns the recorded failure once failed.
func (e *Entry) ErrorMessage() string {
	return e.errorMessage
}

// CreatedAt returns when the intent was persisted.
func (e *Entry) CreatedAt() time.Time {
	return e.createdAt
}

// ResolvedAt returns when the entry resolved, or nil while pending.
func (e *Entry) ResolvedAt() *time.Time {
	return e.resolvedAt
}

// MarkSent resolves the entry as successfully dispatched.
// Fails with an InvalidStateError if the entry is already resolved.
func (e *Entry) MarkSent(providerMessageID string, at time.Time) error {
	if err := e.ensurePending(); err != nil {
		return err
	}

	e.status = EntrySent
	e.providerMessageID = providerMessageID
	e.resolvedAt = &at
	return nil
}

// MarkFailed resolves the entry as failed with the recorded error message.
// Fails with an InvalidStateError if the entry is already resolved.
func (e *Entry) MarkFailed(errorMessage string, at time.Time) error {
	if err := e.ensurePending(); err != nil {
		return err
	}

	e.status = EntryFailed
	e.errorMessage = errorMessage
	e.resolvedAt = &at
	return nil
}

func (e *Entry) ensurePending() error {
	if e.status != EntryPending {
		return errs.NewInvalidStateError("outbox entry "+e.id.String(),
			"is already resolved as "+e.status.String())
	}
	return nil
}

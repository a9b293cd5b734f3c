package order

import "time"

// EmailFlags records, per notification type, when that notification was
// successfully sent for the order. A nil timestamp means not sent.
//
// The flags are the idempotency guard for notification sends: a flag may only
// become true when a matching "sent" outbox row exists, and re-marking an
// already-sent type is a no-op.
//
// The set of fields is closed: adding a notification means adding a field
// here and a NotificationType constant, so an unchecked string key can never
// create a phantom flag.
type EmailFlags struct {
	confirmationSentAt *time.Time
	shippedSentAt      *time.Time
	deliveredSentAt    *time.Time
	cancelledSentAt    *time.Time
	weekendHelloSentAt *time.Time
}

// RestoreEmailFlags reconstructs the flags from persistence.
func RestoreEmailFlags(confirmation, shipped, delivered, cancelled, weekendHello *time.Time) EmailFlags {
	return EmailFlags{
		confirmationSentAt: confirmation,
		shippedSentAt:      shipped,
		deliveredSentAt:    delivered,
		cancelledSentAt:    cancelled,
		weekendHelloSentAt: weekendHello,
	}
}

// IsSent reports whether the given notification type was already sent.
func (f EmailFlags) IsSent(t NotificationType) bool {
	return f.SentAt(t) != nil
}

// SentAt returns the send timestamp for the given type, or nil.
func (f EmailFlags) SentAt(t NotificationType) *time.Time {
	switch t {
	case NotificationConfirmation:
		return f.confirmationSentAt
	case NotificationShipped:
		return f.shippedSentAt
	case NotificationDelivered:
		return f.deliveredSentAt
	case NotificationCancelled:
		return f.cancelledSentAt
	case NotificationWeekendHello:
		return f.weekendHelloSentAt
	default:
		return nil
	}
}

// markSent sets the flag for the given type and reports whether it changed.
// Marking an already-sent type is a no-op returning false.
func (f *EmailFlags) markSent(t NotificationType, at time.Time) bool {
	if f.IsSent(t) {
		return false
	}

	switch t {
	case NotificationConfirmation:
		f.confirmationSentAt = &at
	case NotificationShipped:
		f.shippedSentAt = &at
	case NotificationDelivered:
		f.deliveredSentAt = &at
	case NotificationCancelled:
		f.cancelledSentAt = &at
	case NotificationWeekendHello:
		f.weekendHelloSentAt = &at
	default:
		return false
	}
	return true
}

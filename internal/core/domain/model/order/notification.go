package order

import "fulfillment/internal/pkg/errs"

// NotificationType is the closed enumeration of transactional notifications
// the core can emit. Each type maps to exactly one typed email flag on the
// order and one opaque template identifier, so there is no string-keyed flag
// map that a typo could silently extend.
type NotificationType int

const (
	// NotificationUnknown catches uninitialized values.
	NotificationUnknown NotificationType = iota

	// NotificationConfirmation acknowledges a newly created order.
	NotificationConfirmation

	// NotificationShipped tells the customer the goods left the warehouse.
	NotificationShipped

	// NotificationDelivered tells the customer the goods arrived.
	NotificationDelivered

	// NotificationCancelled tells the customer the order was cancelled.
	NotificationCancelled

	// NotificationWeekendHello acknowledges orders received outside business
	// days, promising processing on the next working day.
	NotificationWeekendHello
)

func notificationStrings() map[NotificationType]string {
	return map[NotificationType]string{
		NotificationUnknown:      "unknown",
		NotificationConfirmation: "confirmation",
		NotificationShipped:      "shipped",
		NotificationDelivered:    "delivered",
		NotificationCancelled:    "cancelled",
		NotificationWeekendHello: "weekend_hello",
	}
}

// templateIDs maps each notification type to the opaque template identifier
// handed to the dispatcher. Composition and rendering are external.
func templateIDs() map[NotificationType]string {
	return map[NotificationType]string{
		NotificationConfirmation: "order_confirmation",
		NotificationShipped:      "order_shipped",
		NotificationDelivered:    "order_delivered",
		NotificationCancelled:    "order_cancelled",
		NotificationWeekendHello: "weekend_hello",
	}
}

// NotificationForStatus returns the notification associated with entering the
// given status during a scheduler-driven transition. ok is false for states
// without one.
func NotificationForStatus(s Status) (NotificationType, bool) {
	switch s {
	case StatusShipped:
		return NotificationShipped, true
	case StatusDelivered:
		return NotificationDelivered, true
	default:
		return NotificationUnknown, false
	}
}

// NotificationTypeFromString parses a persisted notification type name.
func NotificationTypeFromString(s string) (NotificationType, error) {
	for t, name := range notificationStrings() {
		if name == s && t != NotificationUnknown {
			return t, nil
		}
	}
	return NotificationUnknown, errs.NewValueIsInvalidError("notification type " + s)
}

// String returns the lowercase name of the notification type.
func (n NotificationType) String() string {
	if str, ok := notificationStrings()[n]; ok {
		return str
	}
	return "unknown"
}

// Validate checks the notification type is one of the defined values.
func (n NotificationType) Validate() error {
	if _, ok := notificationStrings()[n]; !ok || n == NotificationUnknown {
		return errs.NewValueIsInvalidError("notification type")
	}
	return nil
}

// TemplateID returns the opaque template identifier for the dispatcher.
func (n NotificationType) TemplateID() string {
	return templateIDs()[n]
}

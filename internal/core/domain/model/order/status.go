package order

import (
	"fulfillment/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct fulfillment workflow.
//
// State transitions:
//
//	received -> confirmed -> planning_delivery -> shipped -> in_transit -> delivered
//	    │           │                │               │           │
//	    └───────────┴────────────────┴───────────────┴───────────┴──> cancelled
//
// delivered and cancelled are terminal; a delivered order can not be cancelled.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusReceived is the initial status when an order is first created.
	StatusReceived

	// StatusConfirmed indicates the order has been acknowledged and accepted.
	StatusConfirmed

	// StatusPlanningDelivery indicates the shipment is being planned.
	StatusPlanningDelivery

	// StatusShipped indicates the goods have left the warehouse.
	StatusShipped

	// StatusInTransit indicates the carrier has the goods on the road.
	StatusInTransit

	// StatusDelivered indicates the goods arrived. Terminal.
	StatusDelivered

	// StatusCancelled indicates the order was cancelled before delivery. Terminal.
	StatusCancelled
)

func statusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:          "unknown",
		StatusReceived:         "received",
		StatusConfirmed:        "confirmed",
		StatusPlanningDelivery: "planning_delivery",
		StatusShipped:          "shipped",
		StatusInTransit:        "in_transit",
		StatusDelivered:        "delivered",
		StatusCancelled:        "cancelled",
	}
}

// transitionTable defines every allowed status edge. Cancellation edges are
// handled separately by CanCancel so the forward chain stays readable.
func transitionTable() map[Status]Status {
	return map[Status]Status{
		StatusReceived:         StatusConfirmed,
		StatusConfirmed:        StatusPlanningDelivery,
		StatusPlanningDelivery: StatusShipped,
		StatusShipped:          StatusInTransit,
		StatusInTransit:        StatusDelivered,
	}
}

// StatusFromString parses a persisted status name back into a Status.
func StatusFromString(s string) (Status, error) {
	for status, name := range statusStrings() {
		if name == s && status != StatusUnknown {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidError("status " + s)
}

// String returns the lowercase snake_case name of the status.
// It implements fmt.Stringer and is safe on any value.
func (s Status) String() string {
	if str, ok := statusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Validate checks the status is one of the defined lifecycle states.
func (s Status) Validate() error {
	if _, ok := statusStrings()[s]; !ok || s == StatusUnknown {
		return errs.NewValueIsInvalidError("status")
	}
	return nil
}

// IsTerminal reports whether no further transitions are allowed.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// Next returns the scheduler-driven successor of the status according to the
// fixed forward chain. ok is false for terminal and unknown states.
func (s Status) Next() (next Status, ok bool) {
	next, ok = transitionTable()[s]
	return next, ok
}

// CanTransitionTo reports whether the edge from s to target exists in the
// state machine, including cancellation edges.
func (s Status) CanTransitionTo(target Status) bool {
	if target == StatusCancelled {
		return s.CanCancel()
	}
	next, ok := transitionTable()[s]
	return ok && next == target
}

// CanCancel reports whether the order may still be cancelled. Every
// non-terminal state may be cancelled; delivered and cancelled may not.
func (s Status) CanCancel() bool {
	return s.Validate() == nil && !s.IsTerminal()
}

// TransitionTo validates the edge and returns the new status.
// Returns an InvalidTransitionError for any edge outside the table.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return StatusUnknown, err
	}
	if !s.CanTransitionTo(target) {
		return StatusUnknown, errs.NewInvalidTransitionError(s.String(), target.String())
	}
	return target, nil
}

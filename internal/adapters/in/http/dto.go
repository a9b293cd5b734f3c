package http

import "time"

// Error is the JSON error body returned by every endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewOrderItem is one submitted order line.
type NewOrderItem struct {
	Name         string `json:"name"`
	SKU          string `json:"sku,omitempty"`
	Quantity     int    `json:"quantity"`
	UnitPriceNet int64  `json:"unit_price_net"`
}

// NewOrder is the request body for creating an order. Amounts are integer
// cents.
type NewOrder struct {
	Country         string         `json:"country"`
	OrderType       string         `json:"order_type,omitempty"`
	CustomerName    string         `json:"customer_name"`
	CustomerEmail   string         `json:"customer_email"`
	Items           []NewOrderItem `json:"items"`
	ShippingNet     int64          `json:"shipping_net"`
	SurchargesNet   int64          `json:"surcharges_net"`
	IsReverseCharge bool           `json:"is_reverse_charge"`
}

// OrderCreated is the response body after a successful creation.
type OrderCreated struct {
	ID               string `json:"id"`
	OrderNo          string `json:"order_no"`
	ConfirmationSent bool   `json:"confirmation_sent"`
}

// OrderSummary is one row of the order listing.
type OrderSummary struct {
	ID            string    `json:"id"`
	OrderNo       string    `json:"order_no"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"payment_status"`
	Country       string    `json:"country"`
	OrderType     string    `json:"order_type"`
	TotalGross    int64     `json:"total_gross"`
	CreatedAt     time.Time `json:"created_at"`
}

// TransitionRequest is the body for a manual status transition.
type TransitionRequest struct {
	Target       string     `json:"target"`
	Actor        string     `json:"actor"`
	NextStatusAt *time.Time `json:"next_status_at,omitempty"`
}

// CancelRequest is the body for cancelling an order.
type CancelRequest struct {
	Reason string `json:"reason"`
	Actor  string `json:"actor"`
}

// OrderEvent is one audit trail record.
type OrderEvent struct {
	ID         string    `json:"id"`
	Kind       string    `json:"kind"`
	FromStatus string    `json:"from_status,omitempty"`
	ToStatus   string    `json:"to_status,omitempty"`
	Actor      string    `json:"actor"`
	Detail     string    `json:"detail,omitempty"`
	At         time.Time `json:"at"`
}

// PendingNotification is one unresolved outbox entry.
type PendingNotification struct {
	ID         string    `json:"id"`
	OrderID    string    `json:"order_id"`
	TemplateID string    `json:"template_id"`
	CreatedAt  time.Time `json:"created_at"`
}

// PhaseResult is one scheduler phase outcome.
type PhaseResult struct {
	Processed int `json:"processed"`
	Errors    int `json:"errors"`
}

// SchedulerRunResult is the response of a manual scheduler trigger.
type SchedulerRunResult struct {
	Transitions   PhaseResult `json:"transitions"`
	WeekendHellos PhaseResult `json:"weekendHellos"`
}

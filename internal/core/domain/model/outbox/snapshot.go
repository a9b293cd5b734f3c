package outbox

import (
	"encoding/json"

	"fulfillment/internal/core/domain/model/order"
)

// Snapshot is the denormalized order payload captured when a notification
// intent is created. It is marshaled once into the entry and never refreshed,
// decoupling the audit history from subsequent order mutation.
//
// Template rendering is external; the snapshot carries everything a template
// needs without reaching back into the order tables.
type Snapshot struct {
	OrderNo       string `json:"order_no"`
	Country       string `json:"country"`
	OrderType     string `json:"order_type"`
	Status        string `json:"status"`
	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email"`

	SubtotalNet     int64  `json:"subtotal_net"`
	ShippingNet     int64  `json:"shipping_net"`
	SurchargesNet   int64  `json:"surcharges_net"`
	VATRateBps      int64  `json:"vat_rate_bps"`
	VATLabel        string `json:"vat_label"`
	VATAmount       int64  `json:"vat_amount"`
	TotalGross      int64  `json:"total_gross"`
	IsReverseCharge bool   `json:"is_reverse_charge"`

	Items []SnapshotItem `json:"items"`

	// Reason is set on cancellation snapshots.
	Reason string `json:"reason,omitempty"`
}

// SnapshotItem is one order line as captured in the payload.
type SnapshotItem struct {
	Name         string `json:"name"`
	SKU          string `json:"sku,omitempty"`
	Quantity     int    `json:"quantity"`
	UnitPriceNet int64  `json:"unit_price_net"`
	LineTotalNet int64  `json:"line_total_net"`
}

// SnapshotFromOrder captures the order's current state into a payload snapshot.
func SnapshotFromOrder(o *order.Order) Snapshot {
	totals := o.Totals()

	items := make([]SnapshotItem, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, SnapshotItem{
			Name:         item.Name(),
			SKU:          item.SKU(),
			Quantity:     item.Quantity(),
			UnitPriceNet: item.UnitPriceNet(),
			LineTotalNet: item.LineTotalNet(),
		})
	}

	return Snapshot{
		OrderNo:         o.OrderNo(),
		Country:         o.Country().String(),
		OrderType:       o.OrderType().String(),
		Status:          o.Status().String(),
		CustomerName:    o.CustomerName(),
		CustomerEmail:   o.CustomerEmail(),
		SubtotalNet:     totals.SubtotalNet(),
		ShippingNet:     totals.ShippingNet(),
		SurchargesNet:   totals.SurchargesNet(),
		VATRateBps:      totals.VATRateBps(),
		VATLabel:        totals.VATLabel(),
		VATAmount:       totals.VATAmount(),
		TotalGross:      totals.TotalGross(),
		IsReverseCharge: totals.IsReverseCharge(),
		Items:           items,
	}
}

// Marshal renders the snapshot into the JSON payload stored on the entry.
func (s Snapshot) Marshal() (json.RawMessage, error) {
	return json.Marshal(s)
}

package order

import "time"

// Note is one entry of the append-only internal notes on an order. Notes are
// operator-facing context, never shown to the customer.
type Note struct {
	At     time.Time
	Author string
	Text   string
}

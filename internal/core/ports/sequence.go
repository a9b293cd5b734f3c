package ports

import "context"

// SequenceGenerator hands out the monotonic order sequence. Values are unique
// and strictly increasing across concurrent callers and are never reused,
// even when the order creation that consumed one rolls back: a gap in the
// order numbers is fine, a duplicate is not.
type SequenceGenerator interface {
	Next(ctx context.Context) (int64, error)
}

package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var ErrListPendingNotificationsQueryIsNotConstructed = errors.New(
	"ListPendingNotificationsQuery must be created via NewListPendingNotificationsQuery constructor",
)

// ListPendingNotificationsQuery requests the oldest unresolved outbox entries.
// Pending entries normally resolve within one request; anything showing up
// here for long indicates a crashed dispatch and needs operator attention.
type ListPendingNotificationsQuery struct {
	limit int

	guard kernel.ConstructorGuard
}

// NewListPendingNotificationsQuery creates a pending-entry listing request.
// limit falls back to the default page size and is capped.
func NewListPendingNotificationsQuery(limit int) (ListPendingNotificationsQuery, error) {
	if limit < 0 {
		return ListPendingNotificationsQuery{}, errs.NewValueIsInvalidError("limit")
	}

	if limit == 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	return ListPendingNotificationsQuery{
		limit: limit,
		guard: kernel.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListPendingNotificationsQuery) Validate() error {
	return q.guard.Validate(ErrListPendingNotificationsQueryIsNotConstructed)
}

// Limit returns the maximum number of entries to return.
func (q ListPendingNotificationsQuery) Limit() int {
	return q.limit
}

// Package queries contains read-only operations over the order store.
// Query handlers bypass the domain aggregates and read projections straight
// from the database, as reads have no invariants to enforce.
package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

const (
	defaultPageSize = 50
	maxPageSize     = 500
)

// ListOrdersQuery requests a filtered, paginated order listing.
// Zero-valued filters are ignored.
type ListOrdersQuery struct {
	status  order.Status
	country kernel.Country
	limit   int
	offset  int

	guard kernel.ConstructorGuard
}

// NewListOrdersQuery creates a listing request. status and country may be
// their zero values to skip the filter; limit falls back to the default page
// size and is capped.
func NewListOrdersQuery(status order.Status, country kernel.Country, limit, offset int) (ListOrdersQuery, error) {
	if status != order.StatusUnknown {
		if err := status.Validate(); err != nil {
			return ListOrdersQuery{}, err
		}
	}
	if country != "" {
		if err := country.Validate(); err != nil {
			return ListOrdersQuery{}, err
		}
	}
	if offset < 0 {
		return ListOrdersQuery{}, errs.NewValueIsInvalidError("offset")
	}

	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	return ListOrdersQuery{
		status:  status,
		country: country,
		limit:   limit,
		offset:  offset,
		guard:   kernel.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// Status returns the status filter, StatusUnknown when unset.
func (q ListOrdersQuery) Status() order.Status {
	return q.status
}

// Country returns the country filter, empty when unset.
func (q ListOrdersQuery) Country() kernel.Country {
	return q.country
}

// Limit returns the page size.
func (q ListOrdersQuery) Limit() int {
	return q.limit
}

// Offset returns the page offset.
func (q ListOrdersQuery) Offset() int {
	return q.offset
}

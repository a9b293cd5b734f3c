package queries_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewListOrdersQuery(t *testing.T) {
	t.Run("should accept zero-valued filters", func(t *testing.T) {
		q, err := queries.NewListOrdersQuery(order.StatusUnknown, "", 0, 0)

		require.NoError(t, err)
		require.NoError(t, q.Validate())
		assert.Equal(t, order.StatusUnknown, q.Status())
		assert.Equal(t, kernel.Country(""), q.Country())
	})

	t.Run("should default and cap the limit", func(t *testing.T) {
		q, err := queries.NewListOrdersQuery(order.StatusUnknown, "", 0, 0)
		require.NoError(t, err)
		assert.Equal(t, 50, q.Limit())

		q, err = queries.NewListOrdersQuery(order.StatusUnknown, "", 10000, 0)
		require.NoError(t, err)
		assert.Equal(t, 500, q.Limit())
	})

	t.Run("should keep explicit filters", func(t *testing.T) {
		q, err := queries.NewListOrdersQuery(order.StatusShipped, kernel.Austria, 20, 40)

		require.NoError(t, err)
		assert.Equal(t, order.StatusShipped, q.Status())
		assert.Equal(t, kernel.Austria, q.Country())
		assert.Equal(t, 20, q.Limit())
		assert.Equal(t, 40, q.Offset())
	})

	t.Run("should reject an unsupported country filter", func(t *testing.T) {
		_, err := queries.NewListOrdersQuery(order.StatusUnknown, kernel.Country("FR"), 0, 0)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject a negative offset", func(t *testing.T) {
		_, err := queries.NewListOrdersQuery(order.StatusUnknown, "", 0, -1)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should fail validation when not constructed", func(t *testing.T) {
		var q queries.ListOrdersQuery

		require.ErrorIs(t, q.Validate(), queries.ErrListOrdersQueryIsNotConstructed)
	})
}

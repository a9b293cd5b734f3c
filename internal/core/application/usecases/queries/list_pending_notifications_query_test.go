package queries_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewListPendingNotificationsQuery(t *testing.T) {
	t.Run("should default and cap the limit", func(t *testing.T) {
		q, err := queries.NewListPendingNotificationsQuery(0)
		require.NoError(t, err)
		assert.Equal(t, 50, q.Limit())

		q, err = queries.NewListPendingNotificationsQuery(10000)
		require.NoError(t, err)
		assert.Equal(t, 500, q.Limit())
	})

	t.Run("should reject a negative limit", func(t *testing.T) {
		_, err := queries.NewListPendingNotificationsQuery(-1)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestNewGetOrderEventsQuery(t *testing.T) {
	t.Run("should keep the order id", func(t *testing.T) {
		id := kernel.NewUUID()

		q, err := queries.NewGetOrderEventsQuery(id)

		require.NoError(t, err)
		assert.Equal(t, id, q.OrderID())
	})

	t.Run("should reject a zero order id", func(t *testing.T) {
		_, err := queries.NewGetOrderEventsQuery(kernel.UUID{})

		require.Error(t, err)
	})
}

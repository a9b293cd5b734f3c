package order_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Next(t *testing.T) {
	t.Run("should follow the forward chain", func(t *testing.T) {
		chain := []order.Status{
			order.StatusReceived,
			order.StatusConfirmed,
			order.StatusPlanningDelivery,
			order.StatusShipped,
			order.StatusInTransit,
			order.StatusDelivered,
		}

		for i := 0; i < len(chain)-1; i++ {
			next, ok := chain[i].Next()
			require.True(t, ok, "%s should have a successor", chain[i])
			assert.Equal(t, chain[i+1], next)
		}
	})

	t.Run("should have no successor for terminal states", func(t *testing.T) {
		for _, s := range []order.Status{order.StatusDelivered, order.StatusCancelled} {
			_, ok := s.Next()
			assert.False(t, ok, "%s is terminal", s)
		}
	})
}

func TestStatus_TransitionTo(t *testing.T) {
	t.Run("should allow each forward edge", func(t *testing.T) {
		got, err := order.StatusReceived.TransitionTo(order.StatusConfirmed)

		require.NoError(t, err)
		assert.Equal(t, order.StatusConfirmed, got)
	})

	t.Run("should reject skipping a state", func(t *testing.T) {
		_, err := order.StatusReceived.TransitionTo(order.StatusShipped)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Contains(t, err.Error(), "received")
		assert.Contains(t, err.Error(), "shipped")
	})

	t.Run("should reject moving backwards", func(t *testing.T) {
		_, err := order.StatusShipped.TransitionTo(order.StatusConfirmed)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
	})

	t.Run("should reject transitions out of terminal states", func(t *testing.T) {
		_, err := order.StatusDelivered.TransitionTo(order.StatusCancelled)
		require.ErrorIs(t, err, errs.ErrInvalidTransition)

		_, err = order.StatusCancelled.TransitionTo(order.StatusReceived)
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
	})

	t.Run("should reject unknown target", func(t *testing.T) {
		_, err := order.StatusReceived.TransitionTo(order.StatusUnknown)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should allow cancellation from every non-terminal state", func(t *testing.T) {
		nonTerminal := []order.Status{
			order.StatusReceived,
			order.StatusConfirmed,
			order.StatusPlanningDelivery,
			order.StatusShipped,
			order.StatusInTransit,
		}

		for _, s := range nonTerminal {
			got, err := s.TransitionTo(order.StatusCancelled)
			require.NoError(t, err, "cancel from %s", s)
			assert.Equal(t, order.StatusCancelled, got)
		}
	})
}

func TestStatus_CanCancel(t *testing.T) {
	assert.True(t, order.StatusInTransit.CanCancel())
	assert.False(t, order.StatusDelivered.CanCancel())
	assert.False(t, order.StatusCancelled.CanCancel())
	assert.False(t, order.StatusUnknown.CanCancel())
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, order.StatusDelivered.IsTerminal())
	assert.True(t, order.StatusCancelled.IsTerminal())
	assert.False(t, order.StatusReceived.IsTerminal())
	assert.False(t, order.StatusInTransit.IsTerminal())
}

func TestStatusFromString(t *testing.T) {
	t.Run("should round trip every defined status", func(t *testing.T) {
		statuses := []order.Status{
			order.StatusReceived,
			order.StatusConfirmed,
			order.StatusPlanningDelivery,
			order.StatusShipped,
			order.StatusInTransit,
			order.StatusDelivered,
			order.StatusCancelled,
		}

		for _, s := range statuses {
			parsed, err := order.StatusFromString(s.String())
			require.NoError(t, err)
			assert.Equal(t, s, parsed)
		}
	})

	t.Run("should fail on unknown name", func(t *testing.T) {
		_, err := order.StatusFromString("refunded")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

// Package commands contains the business operations that modify order state.
// It is the Order Service of the fulfillment core: the only code that mutates
// the Order aggregate, the outbox and the event log. All commands follow a
// consistent pattern: guard-validated construction, transaction management
// through a unit of work, and typed errors for invariant violations.
package commands

import (
	"context"

	"fulfillment/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// OutboxRepoFactory provides access to the outbox repository within a transaction.
	OutboxRepoFactory interface {
		OutboxRepository() ports.OutboxRepository
	}

	// EventRepoFactory provides access to the event repository within a transaction.
	EventRepoFactory interface {
		EventRepository() ports.EventRepository
	}

	// OrderUoW manages transactions for operations touching only the order
	// and its audit trail (status transitions, email flag updates).
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		EventRepoFactory
	}

	// OrderUoWFactory creates new OrderUoW instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// UoW manages transactions spanning order, outbox and event log. Used by
	// commands that persist a notification intent alongside an order change,
	// which must land as one atomic unit.
	UoW interface {
		TxManager
		OrderRepoFactory
		OutboxRepoFactory
		EventRepoFactory
	}

	// UoWFactory creates new UoW instances.
	UoWFactory interface {
		Create() UoW
	}
)

// Package outbox contains the notification outbox entry and its payload
// snapshot.
//
// The outbox pattern persists the intent to send a notification before any
// delivery is attempted: an entry is written as pending in the same
// transaction as the order change that caused it, the send is attempted
// afterwards, and the outcome is persisted as sent or failed. A crash between
// the steps leaves a recoverable pending record rather than a silently
// dropped notification, giving at-least-once delivery.
//
// One entry represents one send attempt intent and resolves exactly once. A
// retry creates a new entry, preserving the full attempt history. The payload
// is a denormalized snapshot captured at intent creation, so later order
// mutation never changes what was recorded as sent.
package outbox

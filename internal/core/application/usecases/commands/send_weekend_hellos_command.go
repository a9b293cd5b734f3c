package commands

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var ErrSendWeekendHellosCommandIsNotConstructed = errors.New(
	"SendWeekendHellosCommand must be created via NewSendWeekendHellosCommand constructor",
)

// SendWeekendHellosCommand requests one pass over all orders still owing the
// weekend acknowledgement.
type SendWeekendHellosCommand struct { //nolint:recvcheck //using for validation
	now time.Time

	guard kernel.ConstructorGuard
}

// NewSendWeekendHellosCommand creates a pass request for the given time.
func NewSendWeekendHellosCommand(now time.Time) (SendWeekendHellosCommand, error) {
	if now.IsZero() {
		return SendWeekendHellosCommand{}, errs.NewValueIsRequiredError("now")
	}

	return SendWeekendHellosCommand{
		now:   now,
		guard: kernel.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SendWeekendHellosCommand) Validate() error {
	return c.guard.Validate(ErrSendWeekendHellosCommandIsNotConstructed)
}

// Now returns the reference time of the pass.
func (c SendWeekendHellosCommand) Now() time.Time {
	return c.now
}

package commands

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var ErrProcessDueTransitionsCommandIsNotConstructed = errors.New(
	"ProcessDueTransitionsCommand must be created via NewProcessDueTransitionsCommand constructor",
)

// ProcessDueTransitionsCommand requests one pass over all orders whose
// scheduled transition time has arrived. The reference time is carried in the
// command so runs are reproducible in tests.
type ProcessDueTransitionsCommand struct { //nolint:recvcheck //using for validation
	now time.Time

	guard kernel.ConstructorGuard
}

// NewProcessDueTransitionsCommand creates a pass request for the given time.
func NewProcessDueTransitionsCommand(now time.Time) (ProcessDueTransitionsCommand, error) {
	if now.IsZero() {
		return ProcessDueTransitionsCommand{}, errs.NewValueIsRequiredError("now")
	}

	return ProcessDueTransitionsCommand{
		now:   now,
		guard: kernel.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ProcessDueTransitionsCommand) Validate() error {
	return c.guard.Validate(ErrProcessDueTransitionsCommandIsNotConstructed)
}

// Now returns the reference time of the pass.
func (c ProcessDueTransitionsCommand) Now() time.Time {
	return c.now
}

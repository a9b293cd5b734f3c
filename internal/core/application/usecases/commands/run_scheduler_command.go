package commands

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var ErrRunSchedulerCommandIsNotConstructed = errors.New(
	"RunSchedulerCommand must be created via NewRunSchedulerCommand constructor",
)

// RunSchedulerCommand requests one full scheduler run: the due-transition
// phase followed by the weekend-hello phase.
type RunSchedulerCommand struct { //nolint:recvcheck //using for validation
	now time.Time

	guard kernel.ConstructorGuard
}

// NewRunSchedulerCommand creates a run request for the given time.
func NewRunSchedulerCommand(now time.Time) (RunSchedulerCommand, error) {
	if now.IsZero() {
		return RunSchedulerCommand{}, errs.NewValueIsRequiredError("now")
	}

	return RunSchedulerCommand{
		now:   now,
		guard: kernel.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RunSchedulerCommand) Validate() error {
	return c.guard.Validate(ErrRunSchedulerCommandIsNotConstructed)
}

// Now returns the reference time of the run.
func (c RunSchedulerCommand) Now() time.Time {
	return c.now
}

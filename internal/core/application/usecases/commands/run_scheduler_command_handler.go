package commands

import (
	"context"
)

// SchedulerSummary is the structured outcome of one scheduler run.
type SchedulerSummary struct {
	Transitions   BatchResult
	WeekendHellos BatchResult
}

// RunSchedulerCommandHandler is the single scheduler entry point: one
// idempotent operation, safe to invoke repeatedly and concurrently, composing
// the due-transition and weekend-hello phases.
//
// The two phases act on disjoint order sets. They run sequentially within one
// invocation; overlap safety across invocations comes from the per-order
// optimistic guard, not from any scheduling discipline here.
type RunSchedulerCommandHandler struct {
	transitions   ProcessDueTransitionsCommandHandler
	weekendHellos SendWeekendHellosCommandHandler
}

// NewRunSchedulerCommandHandler composes the two phase handlers.
func NewRunSchedulerCommandHandler(
	transitions ProcessDueTransitionsCommandHandler,
	weekendHellos SendWeekendHellosCommandHandler,
) RunSchedulerCommandHandler {
	return RunSchedulerCommandHandler{
		transitions:   transitions,
		weekendHellos: weekendHellos,
	}
}

// Handle runs both phases and aggregates their outcomes. A phase-level error
// (the listing query failed) aborts the run; per-order failures are already
// folded into the batch results.
func (h RunSchedulerCommandHandler) Handle(ctx context.Context, cmd RunSchedulerCommand) (SchedulerSummary, error) {
	if err := cmd.Validate(); err != nil {
		return SchedulerSummary{}, err
	}

	transitionsCmd, err := NewProcessDueTransitionsCommand(cmd.Now())
	if err != nil {
		return SchedulerSummary{}, err
	}

	transitions, err := h.transitions.Handle(ctx, transitionsCmd)
	if err != nil {
		return SchedulerSummary{}, err
	}

	weekendCmd, err := NewSendWeekendHellosCommand(cmd.Now())
	if err != nil {
		return SchedulerSummary{}, err
	}

	weekendHellos, err := h.weekendHellos.Handle(ctx, weekendCmd)
	if err != nil {
		return SchedulerSummary{Transitions: transitions}, err
	}

	return SchedulerSummary{
		Transitions:   transitions,
		WeekendHellos: weekendHellos,
	}, nil
}

package jobs

import (
	"context"
	"log/slog"
	"time"

	"fulfillment/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// SchedulerJob periodically runs the order scheduler. Each tick advances all
// due status transitions and sends outstanding weekend acknowledgements.
type SchedulerJob struct {
	handler commands.RunSchedulerCommandHandler
	spec    string
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewSchedulerJob creates the scheduler job with the given cron spec
// (six-field, with seconds).
func NewSchedulerJob(handler commands.RunSchedulerCommandHandler, spec string, logger *slog.Logger) *SchedulerJob {
	return &SchedulerJob{
		handler: handler,
		spec:    spec,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "scheduler_job"),
	}
}

// Start begins the scheduler job on its configured cadence.
func (j *SchedulerJob) Start() error {
	_, err := j.cron.AddFunc(j.spec, func() {
		ctx := context.Background()

		cmd, err := commands.NewRunSchedulerCommand(time.Now())
		if err != nil {
			j.logger.ErrorContext(ctx, "Scheduler job failed to build command", "error", err)
			return
		}

		summary, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Scheduler run failed", "error", err)
			return
		}

		if summary.Transitions != (commands.BatchResult{}) || summary.WeekendHellos != (commands.BatchResult{}) {
			j.logger.InfoContext(ctx, "Scheduler run completed",
				"transitions_processed", summary.Transitions.Processed,
				"transitions_errors", summary.Transitions.Errors,
				"weekend_hellos_processed", summary.WeekendHellos.Processed,
				"weekend_hellos_errors", summary.WeekendHellos.Errors,
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Scheduler job started", "spec", j.spec)
	return nil
}

// Stop stops the scheduler job.
func (j *SchedulerJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Scheduler job stopped")
}

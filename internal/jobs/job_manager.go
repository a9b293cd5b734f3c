package jobs

import (
	"fmt"
	"log/slog"

	"fulfillment/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	schedulerJob *SchedulerJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	runSchedulerHandler commands.RunSchedulerCommandHandler,
	schedulerSpec string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		schedulerJob: NewSchedulerJob(runSchedulerHandler, schedulerSpec, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.schedulerJob.Start(); err != nil {
		return fmt.Errorf("failed to start scheduler job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.schedulerJob.Stop()
}

// Package jobs provides the scheduled background tasks of the fulfillment
// core, implemented with github.com/robfig/cron/v3.
//
// # Available Jobs
//
// SchedulerJob - periodically runs the order scheduler: due status
// transitions first, then weekend acknowledgements. The cadence is
// configurable; every run is idempotent and safe to overlap with manual
// trigger requests, because conflicting writes are resolved per order by the
// optimistic status guard.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(runSchedulerHandler, cadence, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
package jobs

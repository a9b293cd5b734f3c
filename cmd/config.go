package cmd

import "time"

// Config carries the process configuration loaded from the environment.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// SchedulerCron is a six-field cron spec (with seconds) for the
	// background scheduler runs.
	SchedulerCron string

	// DispatchTimeout bounds a single notification send attempt.
	DispatchTimeout time.Duration
}

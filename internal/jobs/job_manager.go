package jobs

import (
	"fmt"
	"log/slog"

	"vintage/internal/core/application/usecases/commands"
	"vintage/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	dayTickJob *DayTickJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command and query handlers as dependencies to wire up job execution.
func NewJobManager(
	advanceClockHandler commands.AdvanceClockCommandHandler,
	platformStatusHandler queries.GetPlatformStatusQueryHandler,
	dayTickSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		dayTickJob: NewDayTickJob(advanceClockHandler, platformStatusHandler, dayTickSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.dayTickJob.Start(); err != nil {
		return fmt.Errorf("failed to start day tick job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.dayTickJob.Stop()
}

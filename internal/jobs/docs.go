// Package jobs provides scheduled background tasks for the marketplace.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to drive the simulation clock without manual API calls.
//
// # Available Jobs
//
// 1. DayTickJob - Advances the marketplace day on a configurable cron
// schedule (midnight by default), finishing pending orders and settling
// finished ones whose delay has elapsed.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(advanceClockHandler, platformStatusHandler, jobs.DefaultDayTickSchedule, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The day tick job logs every failure: a tick that cannot read the clock or
// commit its day leaves the marketplace exactly as it was, and the next tick
// will catch up because the clock advances one day per run.
package jobs

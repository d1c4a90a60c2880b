package jobs

import (
	"context"
	"log/slog"

	"vintage/internal/core/application/usecases/commands"
	"vintage/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// DefaultDayTickSchedule runs the tick at midnight every day.
const DefaultDayTickSchedule = "0 0 0 * * *"

// DayTickJob advances the simulation clock by one day on a cron schedule.
// Each tick finishes the orders placed before the new day and settles the
// finished ones whose settlement delay has elapsed.
type DayTickJob struct {
	advanceHandler commands.AdvanceClockCommandHandler
	statusHandler  queries.GetPlatformStatusQueryHandler
	schedule       string
	cron           *cron.Cron
	logger         *slog.Logger
}

// NewDayTickJob creates a new job that ticks the marketplace day on the
// given six-field cron schedule.
func NewDayTickJob(
	advanceHandler commands.AdvanceClockCommandHandler,
	statusHandler queries.GetPlatformStatusQueryHandler,
	schedule string,
	logger *slog.Logger,
) *DayTickJob {
	return &DayTickJob{
		advanceHandler: advanceHandler,
		statusHandler:  statusHandler,
		schedule:       schedule,
		cron:           cron.New(cron.WithSeconds()),
		logger:         logger.With("component", "day_tick_job"),
	}
}

// Start begins the day tick job on its schedule.
func (j *DayTickJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		status, err := j.statusHandler.Handle(ctx, queries.NewGetPlatformStatusQuery())
		if err != nil {
			j.logger.ErrorContext(ctx, "Day tick job failed to read the clock", "error", err)
			return
		}

		cmd, err := commands.NewAdvanceClockCommand(status.CurrentDate.Next())
		if err != nil {
			j.logger.ErrorContext(ctx, "Day tick job failed to build the command", "error", err)
			return
		}

		if err = j.advanceHandler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Day tick job failed", "error", err)
			return
		}

		j.logger.InfoContext(ctx, "Marketplace day advanced", "day", cmd.Target().String())
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Day tick job started", "schedule", j.schedule)
	return nil
}

// Stop stops the day tick job.
func (j *DayTickJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Day tick job stopped")
}

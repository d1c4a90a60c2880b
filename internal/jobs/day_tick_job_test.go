package jobs_test

import (
	"io"
	"log/slog"
	"testing"

	"vintage/internal/core/application/usecases/commands"
	"vintage/internal/core/application/usecases/queries"
	"vintage/internal/jobs"

	"github.com/stretchr/testify/require"
)

func TestDayTickJob_Start(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("starts on the default schedule", func(t *testing.T) {
		job := jobs.NewDayTickJob(
			commands.AdvanceClockCommandHandler{},
			queries.GetPlatformStatusQueryHandler{},
			jobs.DefaultDayTickSchedule,
			logger,
		)

		require.NoError(t, job.Start())
		job.Stop()
	})

	t.Run("starts on a schedule from configuration", func(t *testing.T) {
		job := jobs.NewDayTickJob(
			commands.AdvanceClockCommandHandler{},
			queries.GetPlatformStatusQueryHandler{},
			"0 */5 * * * *",
			logger,
		)

		require.NoError(t, job.Start())
		job.Stop()
	})

	t.Run("rejects a malformed schedule", func(t *testing.T) {
		job := jobs.NewDayTickJob(
			commands.AdvanceClockCommandHandler{},
			queries.GetPlatformStatusQueryHandler{},
			"every midnight",
			logger,
		)

		require.Error(t, job.Start())
	})
}

func TestJobManager_StartAllRejectsMalformedSchedule(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	manager := jobs.NewJobManager(
		commands.AdvanceClockCommandHandler{},
		queries.GetPlatformStatusQueryHandler{},
		"not a cron spec",
		logger,
	)

	err := manager.StartAll()
	require.Error(t, err)
	require.Contains(t, err.Error(), "day tick job")
}

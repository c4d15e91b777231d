package tasks

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/cinedaily/cinedaily/internal/discovery"
	"github.com/cinedaily/cinedaily/internal/scheduler"
)

// DailyRefreshTask warms today's movie batch so the first request of the day
// does not pay for the upstream fetch.
type DailyRefreshTask struct {
	discoveryService *discovery.Service
	logger           zerolog.Logger
}

// NewDailyRefreshTask creates a new daily refresh task.
func NewDailyRefreshTask(ds *discovery.Service, logger zerolog.Logger) *DailyRefreshTask {
	return &DailyRefreshTask{
		discoveryService: ds,
		logger:           logger.With().Str("task", "daily-refresh").Logger(),
	}
}

// Config returns the scheduler registration for this task.
func (t *DailyRefreshTask) Config() scheduler.TaskConfig {
	return scheduler.TaskConfig{
		ID:         "daily-refresh",
		Name:       "Daily Batch Refresh",
		Cron:       "0 0 * * *",
		Func:       t.Run,
		RunOnStart: true,
	}
}

// Run executes the daily refresh.
func (t *DailyRefreshTask) Run(ctx context.Context) error {
	entries, err := t.discoveryService.DailyBatch(ctx, nil)
	if err != nil {
		return err
	}

	t.logger.Info().Int("entries", len(entries)).Msg("Warmed daily batch")
	return nil
}

package jobs

import (
	"context"
	"log/slog"
	"time"

	"orderbot/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultEvictionSchedule runs the eviction once a minute.
const DefaultEvictionSchedule = "@every 1m"

// SessionEvictionJob drops conversations that went idle past the session TTL.
type SessionEvictionJob struct {
	handler  commands.EvictExpiredSessionsCommandHandler
	schedule string
	cron     *cron.Cron
	now      func() time.Time
	logger   *slog.Logger
}

// NewSessionEvictionJob creates the job. schedule is a cron expression with a
// seconds field or a descriptor such as "@every 1m"; empty means
// DefaultEvictionSchedule.
func NewSessionEvictionJob(
	handler commands.EvictExpiredSessionsCommandHandler,
	schedule string,
	logger *slog.Logger,
) *SessionEvictionJob {
	if schedule == "" {
		schedule = DefaultEvictionSchedule
	}
	return &SessionEvictionJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		now:      time.Now,
		logger:   logger.With("component", "session_eviction_job"),
	}
}

// Start schedules the job. It fails on an invalid schedule.
func (j *SessionEvictionJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, j.run); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Session eviction job started", "schedule", j.schedule)
	return nil
}

// Stop stops the scheduler and waits for a running eviction to finish.
func (j *SessionEvictionJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Session eviction job stopped")
}

func (j *SessionEvictionJob) run() {
	ctx := context.Background()
	cmd := commands.NewEvictExpiredSessionsCommand(j.now())

	if _, err := j.handler.Handle(ctx, cmd); err != nil {
		j.logger.ErrorContext(ctx, "Session eviction job failed", "error", err)
	}
}

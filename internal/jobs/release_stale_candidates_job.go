package jobs

import (
	"context"
	"log/slog"
	"time"

	"freight/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultReleaseSchedule runs the release every minute. Schedules are parsed
// with seconds, so descriptors like "@every 30s" work too.
const DefaultReleaseSchedule = "0 * * * * *"

// StaleCandidatesReleaser is satisfied by *commands.ReleaseStaleCandidatesCommandHandler.
type StaleCandidatesReleaser interface {
	Handle(ctx context.Context, cmd commands.ReleaseStaleCandidatesCommand) (int, error)
}

// ReleaseStaleCandidatesJob periodically returns candidate drivers that no
// open solution proposes anymore to the waiting pool.
type ReleaseStaleCandidatesJob struct {
	releaser StaleCandidatesReleaser
	schedule string
	timeout  time.Duration
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewReleaseStaleCandidatesJob(
	releaser StaleCandidatesReleaser,
	schedule string,
	timeout time.Duration,
	logger *slog.Logger,
) *ReleaseStaleCandidatesJob {
	if schedule == "" {
		schedule = DefaultReleaseSchedule
	}
	return &ReleaseStaleCandidatesJob{
		releaser: releaser,
		schedule: schedule,
		timeout:  timeout,
		cron:     cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:   logger.With("component", "release_stale_candidates_job"),
	}
}

func (j *ReleaseStaleCandidatesJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.Run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("Release stale candidates job started", "schedule", j.schedule)
	return nil
}

// Run performs one release round.
func (j *ReleaseStaleCandidatesJob) Run(ctx context.Context) {
	if j.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, j.timeout)
		defer cancel()
	}

	released, err := j.releaser.Handle(ctx, commands.NewReleaseStaleCandidatesCommand())
	if err != nil {
		j.logger.ErrorContext(ctx, "Release stale candidates job failed", "error", err)
		return
	}
	if released > 0 {
		j.logger.InfoContext(ctx, "Released stale candidates", "drivers", released)
	}
}

// Stop waits for a running round to finish.
func (j *ReleaseStaleCandidatesJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("Release stale candidates job stopped")
}

package jobs

import (
	"fmt"
	"log/slog"
	"time"
)

// JobManager starts and stops the scheduled jobs of the brokerage.
type JobManager struct {
	releaseStaleCandidatesJob *ReleaseStaleCandidatesJob
}

func NewJobManager(
	releaser StaleCandidatesReleaser,
	schedule string,
	timeout time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		releaseStaleCandidatesJob: NewReleaseStaleCandidatesJob(releaser, schedule, timeout, logger),
	}
}

// StartAll returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.releaseStaleCandidatesJob.Start(); err != nil {
		return fmt.Errorf("failed to start release stale candidates job: %w", err)
	}
	return nil
}

func (jm *JobManager) StopAll() {
	jm.releaseStaleCandidatesJob.Stop()
}

// Package jobs provides scheduled background tasks for the brokerage.
//
// Jobs are cron based (github.com/robfig/cron/v3, seconds enabled) and run
// command handlers with a per-round timeout.
//
// # Available Jobs
//
// ReleaseStaleCandidatesJob returns to the waiting pool the candidate drivers
// whose solutions were discarded when a competing solution was confirmed.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(&releaseHandler, "@every 30s", 10*time.Second, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed round is logged and retried on the next tick. Overlapping rounds
// are skipped.
package jobs

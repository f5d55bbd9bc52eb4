// Package jobs provides scheduled background tasks for the production panel.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations around the production pipeline.
//
// # Available Jobs
//
// 1. OverdueDigestJob - Runs daily at 07:00 to log a summary of overdue orders
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(getAllOrdersHandler, logger)
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
// A failed digest run is logged and retried on the next schedule; it never
// stops the scheduler.
package jobs

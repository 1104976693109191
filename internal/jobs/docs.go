// Package jobs provides scheduled background tasks for the tracking service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. StatisticsReportJob - Logs the total number of shipments and the count per
// status, read through the statistics query as the system principal
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(statisticsHandler, "@every 1m", logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules are standard five-field cron expressions or descriptors such as
// "@every 1m" and "@hourly". An empty schedule disables the job.
//
// # Error Handling
//
// - A failed report is logged and the next run proceeds as scheduled
// - An invalid schedule fails StartAll
package jobs

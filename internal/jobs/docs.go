// Package jobs provides scheduled background tasks for the order bot.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. SessionEvictionJob - drops conversations whose pending order has been
// idle longer than the session TTL, so abandoned drafts do not pile up in
// memory.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(evictSessionsHandler, "@every 1m", logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules are parsed with a seconds field ("0 */5 * * * *") and also
// accept descriptors such as "@every 30s". The default is "@every 1m".
//
// # Error Handling
//
// A failed run is logged and the next run proceeds as scheduled. A job that
// fails to start makes StartAll return an error.
package jobs

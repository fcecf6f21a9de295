// Package jobs provides scheduled background tasks for the restaurant system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the service.
//
// # Available Jobs
//
// 1. OutboxRelayJob - Runs every second to deliver committed integration events
// from the transactional outbox to the message broker
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required dependencies
//	jobManager := jobs.NewJobManager(outboxRepository, publisher, logger)
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
// The relay uses the cron expression "* * * * * *" which means it runs every
// second, keeping end-to-end event latency low without coupling command
// handlers to the broker.
//
// # Error Handling
//
// - The relay stops a tick at the first failed publish so event order is kept
// - Failed events stay unpublished and are retried on the next tick
package jobs

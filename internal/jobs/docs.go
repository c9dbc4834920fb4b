// Package jobs provides scheduled background tasks for the matching engine.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the service.
//
// # Available Jobs
//
// 1. ContractorAssignmentJob - Runs every ten seconds to assign open jobs to available contractors
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(assignContractorHandler, logger)
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
// The assignment job uses the cron expression "*/10 * * * * *", one open
// job is matched per tick. A queue of open jobs drains at a steady pace
// rather than in one burst.
//
// # Error Handling
//
// - The assignment job ignores expected business errors (no open jobs, nobody available, nobody eligible)
// - Any other error is logged, it indicates a system issue
// - Failed job starts will stop any already running jobs
package jobs

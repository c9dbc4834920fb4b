package ports

import (
	"context"

	"jobmatch/internal/core/domain/model/job"
	"jobmatch/internal/core/domain/model/kernel"
)

// JobRepository defines the persistence contract for job aggregates.
// Provides methods for storing, retrieving, and querying job entities
// based on their status and assignment state.
type JobRepository interface {
	// Add persists a new job aggregate to storage.
	// The job must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *job.Job) error

	// Update persists changes to an existing job aggregate.
	// The job must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *job.Job) error

	// Get retrieves a job aggregate by its unique identifier.
	// Returns the complete job with its current status and assignment.
	Get(ctx context.Context, id kernel.UUID) (*job.Job, error)

	// GetFirstOpen retrieves the first job in Open status.
	// Used by assignment workflows to find pending work.
	GetFirstOpen(ctx context.Context) (*job.Job, error)

	// GetAllAssigned retrieves all jobs currently assigned to contractors.
	// Returns jobs that are in progress but not yet completed.
	GetAllAssigned(ctx context.Context) ([]*job.Job, error)

	// GetAllAssignedTo retrieves the assigned jobs of one contractor,
	// for schedule building.
	GetAllAssignedTo(ctx context.Context, contractorID kernel.UUID) ([]*job.Job, error)
}

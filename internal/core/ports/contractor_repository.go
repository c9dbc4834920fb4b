// Package ports defines repository interfaces for the job marketplace domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"jobmatch/internal/core/domain/model/contractor"
	"jobmatch/internal/core/domain/model/kernel"
)

// ContractorRepository defines the persistence contract for contractor aggregates.
// Provides methods for storing, retrieving, and querying contractor entities
// with their complete state including skills and location.
type ContractorRepository interface {
	// Add persists a new contractor aggregate to storage.
	// The contractor must be valid and not already exist in the repository.
	Add(ctx context.Context, contractor *contractor.Contractor) error

	// Update persists changes to an existing contractor aggregate.
	// The contractor must exist in the repository and be valid.
	Update(ctx context.Context, contractor *contractor.Contractor) error

	// Get retrieves a contractor aggregate by its unique identifier.
	// Returns the complete contractor with skills, location, and flags.
	Get(ctx context.Context, id kernel.UUID) (*contractor.Contractor, error)

	// GetAllAvailable retrieves all contractors that can take new work.
	// A contractor qualifies when active and not currently tied up on an
	// assigned job.
	//
	// Business Rules:
	//   - Deactivated contractors: Never returned
	//   - Available contractors without jobs: Returned
	//   - Contractors on an Assigned job: Not returned (actively working)
	//   - Contractors whose jobs are Completed: Returned (work finished)
	//
	// Example:
	//   pool, err := repo.GetAllAvailable(ctx)
	//   if err != nil {
	//       return fmt.Errorf("failed to get available contractors: %w", err)
	//   }
	//   for _, c := range pool {
	//       fmt.Printf("Available: %s\n", c.Name())
	//   }
	GetAllAvailable(ctx context.Context) ([]*contractor.Contractor, error)
}

package queries

import (
	"errors"

	"jobmatch/internal/core/domain/model/kernel"
	"jobmatch/internal/pkg/guard"
)

var (
	ErrGetOpenJobsQueryIsNotConstructed = errors.New(
		"GetOpenJobsQuery must be created via NewGetOpenJobsQuery constructor",
	)
)

// GetOpenJobsQuery retrieves all jobs awaiting a contractor.
// Returns jobs in "open" status for monitoring and matching.
//
// Example:
//
//	query := NewGetOpenJobsQuery()
//	handler := NewGetOpenJobsQueryHandler(db)
//
//	jobs, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get open jobs: %w", err)
//	}
//
//	fmt.Printf("Found %d jobs awaiting a contractor\n", len(jobs))
type GetOpenJobsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOpenJobsQuery creates a query to retrieve open jobs.
// This is a parameterless query that fetches all jobs without a contractor.
func NewGetOpenJobsQuery() GetOpenJobsQuery {
	return GetOpenJobsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOpenJobsQueryIsNotConstructed if validation fails.
func (q GetOpenJobsQuery) Validate() error {
	return q.guard.Validate(ErrGetOpenJobsQueryIsNotConstructed)
}

// GetOpenJobsQueryResponse represents open job information.
// Contains essential data for job tracking and contractor assignment.
type GetOpenJobsQueryResponse struct {
	ID        kernel.UUID
	Title     string
	Budget    float64
	MinRating float64
	Location  kernel.GeoLocation
}

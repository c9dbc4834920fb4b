package queries

import (
	"errors"

	"jobmatch/internal/core/domain/model/kernel"
	"jobmatch/internal/core/domain/services"
	"jobmatch/internal/pkg/guard"
)

var (
	ErrGetRankedCandidatesQueryIsNotConstructed = errors.New(
		"GetRankedCandidatesQuery must be created via NewGetRankedCandidatesQuery constructor",
	)
)

// GetRankedCandidatesQuery ranks the available contractors for a single job.
// The job and the current contractor pool are read from the database, then
// the ranking runs in memory with the supplied matching options.
//
// Example:
//
//	options := services.DefaultAssignmentOptions()
//	options.Priority = services.PriorityDistance
//
//	query, err := NewGetRankedCandidatesQuery(jobID, options)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewGetRankedCandidatesQueryHandler(db)
//	result, err := handler.Handle(ctx, query)
type GetRankedCandidatesQuery struct {
	guard   guard.ConstructorGuard
	jobID   kernel.UUID
	options services.AssignmentOptions
}

// NewGetRankedCandidatesQuery creates a query to rank candidates for the given job.
// The options control distance and rating floors, the ranking priority, and
// the size of the returned list.
func NewGetRankedCandidatesQuery(
	jobID kernel.UUID,
	options services.AssignmentOptions,
) (GetRankedCandidatesQuery, error) {
	if err := jobID.Validate(); err != nil {
		return GetRankedCandidatesQuery{}, err
	}
	if err := options.Validate(); err != nil {
		return GetRankedCandidatesQuery{}, err
	}

	return GetRankedCandidatesQuery{
		guard:   guard.NewConstructorGuard(),
		jobID:   jobID,
		options: options,
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetRankedCandidatesQueryIsNotConstructed if validation fails.
func (q GetRankedCandidatesQuery) Validate() error {
	return q.guard.Validate(ErrGetRankedCandidatesQueryIsNotConstructed)
}

// JobID returns the job the candidates are ranked for.
func (q GetRankedCandidatesQuery) JobID() kernel.UUID {
	return q.jobID
}

// Options returns the matching options used for the ranking.
func (q GetRankedCandidatesQuery) Options() services.AssignmentOptions {
	return q.options
}

// RankedCandidateResponse represents one ranked contractor in the read model.
type RankedCandidateResponse struct {
	ID             kernel.UUID
	Name           string
	Grade          string
	Rating         float64
	DistanceKm     float64
	CompositeScore float64
	Rank           int
}

// GetRankedCandidatesQueryResponse is the outcome of a ranking run.
// Candidates are ordered best first; Stats summarizes the ranked list.
type GetRankedCandidatesQueryResponse struct {
	Success    bool
	Message    string
	Candidates []RankedCandidateResponse
	Stats      services.AssignmentStats
	Assignment *services.Assignment
}

package queries

import (
	"context"

	"jobmatch/internal/core/domain/services"

	"gorm.io/gorm"
)

// GetRankedCandidatesQueryHandler ranks available contractors for a job.
// Loads the job and the free contractor pool from the database and runs the
// domain ranking on the loaded aggregates.
//
// Example:
//
//	handler := NewGetRankedCandidatesQueryHandler(db)
//	query, _ := NewGetRankedCandidatesQuery(jobID, services.DefaultAssignmentOptions())
//
//	result, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//
//	for _, c := range result.Candidates {
//	    fmt.Printf("#%d %s (%.3f)\n", c.Rank, c.Name, c.CompositeScore)
//	}
type GetRankedCandidatesQueryHandler struct {
	db       *gorm.DB
	selector services.AssignmentSelector
}

// NewGetRankedCandidatesQueryHandler creates a handler for candidate ranking queries.
// Requires a GORM database connection for query execution.
func NewGetRankedCandidatesQueryHandler(db *gorm.DB) GetRankedCandidatesQueryHandler {
	return GetRankedCandidatesQueryHandler{
		db:       db,
		selector: services.NewAssignmentSelector(),
	}
}

// Handle executes the ranking for the queried job.
// Returns ObjectNotFoundError when the job does not exist. A job with no
// eligible contractors yields an unsuccessful response, not an error.
func (h GetRankedCandidatesQueryHandler) Handle(
	ctx context.Context,
	query GetRankedCandidatesQuery,
) (GetRankedCandidatesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetRankedCandidatesQueryResponse{}, err
	}

	rankedJob, err := loadJob(ctx, h.db, query.JobID())
	if err != nil {
		return GetRankedCandidatesQueryResponse{}, err
	}

	pool, err := loadAvailableContractors(ctx, h.db)
	if err != nil {
		return GetRankedCandidatesQueryResponse{}, err
	}

	result, err := h.selector.AssignContractor(pool, rankedJob, query.Options())
	if err != nil {
		return GetRankedCandidatesQueryResponse{}, err
	}

	candidates := make([]RankedCandidateResponse, 0, len(result.Candidates))
	for _, c := range result.Candidates {
		candidates = append(candidates, RankedCandidateResponse{
			ID:             c.Contractor.ID(),
			Name:           c.Contractor.Name(),
			Grade:          c.Contractor.Grade().String(),
			Rating:         c.Contractor.Rating(),
			DistanceKm:     c.DistanceKm,
			CompositeScore: c.CompositeScore,
			Rank:           c.Rank,
		})
	}

	return GetRankedCandidatesQueryResponse{
		Success:    result.Success,
		Message:    result.Message,
		Candidates: candidates,
		Stats:      result.Stats,
		Assignment: result.Assignment,
	}, nil
}

package queries

import (
	"context"

	"jobmatch/internal/core/domain/model/job"
	"jobmatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOpenJobsQueryHandler retrieves jobs awaiting a contractor from the database.
// Filters out assigned and completed jobs to provide the open workload.
//
// Example:
//
//	handler := NewGetOpenJobsQueryHandler(db)
//	query := NewGetOpenJobsQuery()
//
//	openJobs, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get open jobs: %v", err)
//	    return err
//	}
//
//	if len(openJobs) > 0 {
//	    fmt.Printf("%d jobs awaiting a contractor\n", len(openJobs))
//	}
type GetOpenJobsQueryHandler struct {
	db *gorm.DB
}

// NewGetOpenJobsQueryHandler creates a handler for open job queries.
// Requires a GORM database connection for query execution.
func NewGetOpenJobsQueryHandler(db *gorm.DB) GetOpenJobsQueryHandler {
	return GetOpenJobsQueryHandler{db: db}
}

// Handle executes the query to retrieve all open jobs.
// Results are sorted by job ID for consistent output.
func (h GetOpenJobsQueryHandler) Handle(
	ctx context.Context,
	query GetOpenJobsQuery,
) ([]GetOpenJobsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	jobs := make([]GetOpenJobsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			title,
			budget,
			min_rating,
			location_latitude,
			location_longitude
		FROM jobs
		WHERE status = ?
		ORDER BY id
	`, int(job.Open)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetOpenJobsQueryResponse
		var id uuid.UUID
		var latitude, longitude float64

		err = rows.Scan(
			&id,
			&resp.Title,
			&resp.Budget,
			&resp.MinRating,
			&latitude,
			&longitude,
		)
		if err != nil {
			return nil, err
		}

		jobID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = jobID

		location, locErr := kernel.NewGeoLocation(latitude, longitude)
		if locErr != nil {
			return nil, locErr
		}
		resp.Location = location
		jobs = append(jobs, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return jobs, nil
}

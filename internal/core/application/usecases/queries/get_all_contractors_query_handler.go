package queries

import (
	"context"

	"jobmatch/internal/core/domain/model/contractor"
	"jobmatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllContractorsQueryHandler retrieves all contractor information from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
//
// Example:
//
//	handler := NewGetAllContractorsQueryHandler(db)
//	query := NewGetAllContractorsQuery()
//
//	contractors, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get contractors: %v", err)
//	    return err
//	}
//
//	fmt.Printf("Found %d contractors\n", len(contractors))
type GetAllContractorsQueryHandler struct {
	db *gorm.DB
}

// NewGetAllContractorsQueryHandler creates a handler for contractor retrieval queries.
// Requires a GORM database connection for query execution.
func NewGetAllContractorsQueryHandler(db *gorm.DB) GetAllContractorsQueryHandler {
	return GetAllContractorsQueryHandler{db: db}
}

// Handle executes the query to retrieve all contractors.
// Returns a slice of contractor read models sorted by name.
// Converts database types to domain types for consistency.
func (h GetAllContractorsQueryHandler) Handle(
	ctx context.Context,
	query GetAllContractorsQuery,
) ([]GetAllContractorsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	contractors := make([]GetAllContractorsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			grade,
			rating,
			active,
			available,
			location_latitude,
			location_longitude
		FROM contractors
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetAllContractorsQueryResponse
		var id uuid.UUID
		var grade int
		var latitude, longitude float64

		err = rows.Scan(
			&id,
			&resp.Name,
			&grade,
			&resp.Rating,
			&resp.Active,
			&resp.Available,
			&latitude,
			&longitude,
		)
		if err != nil {
			return nil, err
		}

		contractorID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = contractorID
		resp.Grade = contractor.Grade(grade).String()

		location, locErr := kernel.NewGeoLocation(latitude, longitude)
		if locErr != nil {
			return nil, locErr
		}
		resp.Location = location
		contractors = append(contractors, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return contractors, nil
}

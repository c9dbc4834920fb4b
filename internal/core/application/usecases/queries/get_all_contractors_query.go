// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"jobmatch/internal/core/domain/model/kernel"
	"jobmatch/internal/pkg/guard"
)

var (
	ErrGetAllContractorsQueryIsNotConstructed = errors.New(
		"GetAllContractorsQuery must be created via NewGetAllContractorsQuery constructor",
	)
)

// GetAllContractorsQuery retrieves information about all contractors in the system.
// Returns contractor identities, tiers, and locations for monitoring and matching.
//
// Example:
//
//	query := NewGetAllContractorsQuery()
//	handler := NewGetAllContractorsQueryHandler(db)
//
//	contractors, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve contractors: %w", err)
//	}
//
//	for _, c := range contractors {
//	    fmt.Printf("Contractor %s (%s) rated %.1f\n", c.Name, c.Grade, c.Rating)
//	}
type GetAllContractorsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllContractorsQuery creates a query to retrieve all contractors.
// This is a parameterless query that fetches the complete contractor list.
func NewGetAllContractorsQuery() GetAllContractorsQuery {
	return GetAllContractorsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAllContractorsQueryIsNotConstructed if validation fails.
func (q GetAllContractorsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllContractorsQueryIsNotConstructed)
}

// GetAllContractorsQueryResponse represents contractor information in the read model.
// Contains essential contractor data for display and decision-making.
type GetAllContractorsQueryResponse struct {
	ID        kernel.UUID
	Name      string
	Grade     string
	Rating    float64
	Active    bool
	Available bool
	Location  kernel.GeoLocation
}

package queries

import (
	"errors"
	"time"

	"jobmatch/internal/core/domain/model/kernel"
	"jobmatch/internal/core/domain/services"
	"jobmatch/internal/pkg/guard"
)

var (
	ErrGetContractorScheduleQueryIsNotConstructed = errors.New(
		"GetContractorScheduleQuery must be created via NewGetContractorScheduleQuery constructor",
	)
)

// GetContractorScheduleQuery computes the optimized multi-day route for a
// contractor's assigned jobs, starting from the contractor's current
// position. When pickup mode is on, jobs that need a material pickup are
// approached through their pickup point.
//
// Example:
//
//	query, err := NewGetContractorScheduleQuery(contractorID, current, true)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewGetContractorScheduleQueryHandler(db)
//	schedule, err := handler.Handle(ctx, query)
type GetContractorScheduleQuery struct {
	guard        guard.ConstructorGuard
	contractorID kernel.UUID
	current      kernel.GeoLocation
	pickupMode   bool
}

// NewGetContractorScheduleQuery creates a query for a contractor's route.
// The current position is where the first day's travel starts from.
func NewGetContractorScheduleQuery(
	contractorID kernel.UUID,
	current kernel.GeoLocation,
	pickupMode bool,
) (GetContractorScheduleQuery, error) {
	if err := contractorID.Validate(); err != nil {
		return GetContractorScheduleQuery{}, err
	}
	if err := current.Validate(); err != nil {
		return GetContractorScheduleQuery{}, err
	}

	return GetContractorScheduleQuery{
		guard:        guard.NewConstructorGuard(),
		contractorID: contractorID,
		current:      current,
		pickupMode:   pickupMode,
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetContractorScheduleQueryIsNotConstructed if validation fails.
func (q GetContractorScheduleQuery) Validate() error {
	return q.guard.Validate(ErrGetContractorScheduleQueryIsNotConstructed)
}

// ContractorID returns the contractor whose schedule is computed.
func (q GetContractorScheduleQuery) ContractorID() kernel.UUID {
	return q.contractorID
}

// Current returns the contractor's starting position.
func (q GetContractorScheduleQuery) Current() kernel.GeoLocation {
	return q.current
}

// PickupMode reports whether pickup detours are routed.
func (q GetContractorScheduleQuery) PickupMode() bool {
	return q.pickupMode
}

// ScheduleStopResponse is one routed stop in the read model, in visit
// order, with the travel leg to the following stop and the pickup detour
// breakdown when one applies.
type ScheduleStopResponse struct {
	JobID        kernel.UUID
	Title        string
	ScheduledAt  time.Time
	Location     kernel.GeoLocation
	TravelToNext *services.TravelLeg
	Pickup       *services.PickupLeg
}

// ExcludedStopResponse is a job the optimizer could not route.
type ExcludedStopResponse struct {
	JobID  kernel.UUID
	Title  string
	Reason string
}

// GetContractorScheduleQueryResponse is the optimized route for a
// contractor: the ordered stops, the jobs left out with reasons, and the
// travel totals from the starting position through the last stop.
type GetContractorScheduleQueryResponse struct {
	ContractorID kernel.UUID
	Stops        []ScheduleStopResponse
	Excluded     []ExcludedStopResponse
	Summary      services.TravelSummary
}

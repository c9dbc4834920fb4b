package queries

import (
	"context"

	"jobmatch/internal/core/domain/services"

	"gorm.io/gorm"
)

// GetContractorScheduleQueryHandler computes a contractor's optimized route.
// Loads the contractor's assigned jobs from the database and runs the domain
// schedule optimizer on the loaded aggregates.
//
// Example:
//
//	handler := NewGetContractorScheduleQueryHandler(db)
//	query, _ := NewGetContractorScheduleQuery(contractorID, current, false)
//
//	schedule, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//
//	fmt.Printf("%d stops, %.1f km\n", schedule.Summary.StopCount, schedule.Summary.TotalDistanceKm)
type GetContractorScheduleQueryHandler struct {
	db        *gorm.DB
	optimizer services.ScheduleOptimizer
}

// NewGetContractorScheduleQueryHandler creates a handler for schedule queries.
// Requires a GORM database connection for query execution.
func NewGetContractorScheduleQueryHandler(db *gorm.DB) GetContractorScheduleQueryHandler {
	return GetContractorScheduleQueryHandler{
		db:        db,
		optimizer: services.NewScheduleOptimizer(),
	}
}

// Handle executes the route computation for the queried contractor.
// Jobs without a scheduled date are reported as excluded, not dropped
// silently. A contractor with no assigned jobs yields an empty schedule.
func (h GetContractorScheduleQueryHandler) Handle(
	ctx context.Context,
	query GetContractorScheduleQuery,
) (GetContractorScheduleQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetContractorScheduleQueryResponse{}, err
	}

	assignedJobs, err := loadAssignedJobs(ctx, h.db, query.ContractorID())
	if err != nil {
		return GetContractorScheduleQueryResponse{}, err
	}

	stops := make([]services.ScheduleStop, 0, len(assignedJobs))
	for _, assignedJob := range assignedJobs {
		if assignedJob.ScheduledAt() == nil {
			// Unscheduled jobs go through the optimizer so they come
			// back as excluded stops with a reason.
			stops = append(stops, services.ScheduleStop{Job: assignedJob})
			continue
		}

		stop, stopErr := services.NewScheduleStop(assignedJob)
		if stopErr != nil {
			return GetContractorScheduleQueryResponse{}, stopErr
		}
		stops = append(stops, stop)
	}

	schedule, err := h.optimizer.Optimize(stops, query.Current(), query.PickupMode())
	if err != nil {
		return GetContractorScheduleQueryResponse{}, err
	}

	response := GetContractorScheduleQueryResponse{
		ContractorID: query.ContractorID(),
		Stops:        make([]ScheduleStopResponse, 0, len(schedule.Stops)),
		Excluded:     make([]ExcludedStopResponse, 0, len(schedule.Excluded)),
		Summary:      schedule.Summary,
	}

	for _, stop := range schedule.Stops {
		response.Stops = append(response.Stops, ScheduleStopResponse{
			JobID:        stop.Job.ID(),
			Title:        stop.Job.Title(),
			ScheduledAt:  stop.ScheduledDate,
			Location:     stop.Job.Location(),
			TravelToNext: stop.TravelToNext,
			Pickup:       stop.Pickup,
		})
	}

	for _, excluded := range schedule.Excluded {
		resp := ExcludedStopResponse{Reason: excluded.Reason}
		if excluded.Stop.Job != nil && excluded.Stop.Job.Validate() == nil {
			resp.JobID = excluded.Stop.Job.ID()
			resp.Title = excluded.Stop.Job.Title()
		}
		response.Excluded = append(response.Excluded, resp)
	}

	return response, nil
}

// Package http exposes the application's commands and queries over a REST
// API. Request and response shapes are plain transport structs; domain
// objects never cross the HTTP boundary directly.
package http

import (
	"errors"
	"net/http"
	"time"

	"jobmatch/internal/core/application/usecases/commands"
	"jobmatch/internal/core/application/usecases/queries"
	"jobmatch/internal/core/domain/model/kernel"
	"jobmatch/internal/core/domain/services"
	"jobmatch/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Location is the coordinate pair used in request and response bodies.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Error is the uniform error body returned for failed requests.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewContractor is the request body for contractor registration.
type NewContractor struct {
	Name     string   `json:"name"`
	Grade    string   `json:"grade"`
	Rating   float64  `json:"rating"`
	Skills   []string `json:"skills"`
	Location Location `json:"location"`
}

// Contractor is the read model returned by the contractor listing.
type Contractor struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Grade     string   `json:"grade"`
	Rating    float64  `json:"rating"`
	Active    bool     `json:"active"`
	Available bool     `json:"available"`
	Location  Location `json:"location"`
}

// NewJob is the request body for posting a job.
type NewJob struct {
	Title          string   `json:"title"`
	Budget         float64  `json:"budget"`
	RequiredSkills []string `json:"required_skills"`
	MinRating      float64  `json:"min_rating"`
	Location       Location `json:"location"`
}

// Job is the read model returned by the open-jobs listing.
type Job struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Budget    float64  `json:"budget"`
	MinRating float64  `json:"min_rating"`
	Location  Location `json:"location"`
}

// RankedCandidate is one contractor in a candidate ranking, best first.
type RankedCandidate struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Grade          string  `json:"grade"`
	Rating         float64 `json:"rating"`
	DistanceKm     float64 `json:"distance_km"`
	CompositeScore float64 `json:"composite_score"`
	Rank           int     `json:"rank"`
}

// Assignment reports a materialized job-to-contractor match.
type Assignment struct {
	JobID        string `json:"job_id"`
	ContractorID string `json:"contractor_id"`
}

// CandidatesResponse is the outcome of a candidate ranking request.
type CandidatesResponse struct {
	Success    bool              `json:"success"`
	Message    string            `json:"message,omitempty"`
	Candidates []RankedCandidate `json:"candidates"`
	Assignment *Assignment       `json:"assignment,omitempty"`
}

// TravelLeg mirrors the optimizer's travel annotation.
type TravelLeg struct {
	DistanceKm        float64 `json:"distance_km"`
	TravelTimeMinutes float64 `json:"travel_time_minutes"`
}

// PickupLeg mirrors the optimizer's pickup detour breakdown.
type PickupLeg struct {
	PickupDistanceKm        float64 `json:"pickup_distance_km"`
	PickupTravelTimeMinutes float64 `json:"pickup_travel_time_minutes"`
	TotalDistanceKm         float64 `json:"total_distance_km"`
	TotalTravelTimeMinutes  float64 `json:"total_travel_time_minutes"`
}

// ScheduleStop is one routed visit in a contractor's day.
type ScheduleStop struct {
	JobID        string     `json:"job_id"`
	Title        string     `json:"title"`
	ScheduledAt  time.Time  `json:"scheduled_at"`
	Location     Location   `json:"location"`
	TravelToNext *TravelLeg `json:"travel_to_next,omitempty"`
	Pickup       *PickupLeg `json:"pickup,omitempty"`
}

// ExcludedStop is a job the optimizer could not route.
type ExcludedStop struct {
	JobID  string `json:"job_id"`
	Title  string `json:"title"`
	Reason string `json:"reason"`
}

// Schedule is the optimized route for a contractor.
type Schedule struct {
	ContractorID           string         `json:"contractor_id"`
	Stops                  []ScheduleStop `json:"stops"`
	Excluded               []ExcludedStop `json:"excluded"`
	TotalDistanceKm        float64        `json:"total_distance_km"`
	TotalTravelTimeMinutes float64        `json:"total_travel_time_minutes"`
	PickupCount            int            `json:"pickup_count"`
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createContractorHandler commands.CreateContractorCommandHandler
	createJobHandler        commands.CreateJobCommandHandler
	completeJobHandler      commands.CompleteJobCommandHandler

	// Query handlers
	getAllContractorsHandler     queries.GetAllContractorsQueryHandler
	getOpenJobsHandler           queries.GetOpenJobsQueryHandler
	getRankedCandidatesHandler   queries.GetRankedCandidatesQueryHandler
	getContractorScheduleHandler queries.GetContractorScheduleQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createContractorHandler commands.CreateContractorCommandHandler,
	createJobHandler commands.CreateJobCommandHandler,
	completeJobHandler commands.CompleteJobCommandHandler,
	getAllContractorsHandler queries.GetAllContractorsQueryHandler,
	getOpenJobsHandler queries.GetOpenJobsQueryHandler,
	getRankedCandidatesHandler queries.GetRankedCandidatesQueryHandler,
	getContractorScheduleHandler queries.GetContractorScheduleQueryHandler,
) *Server {
	return &Server{
		createContractorHandler:      createContractorHandler,
		createJobHandler:             createJobHandler,
		completeJobHandler:           completeJobHandler,
		getAllContractorsHandler:     getAllContractorsHandler,
		getOpenJobsHandler:           getOpenJobsHandler,
		getRankedCandidatesHandler:   getRankedCandidatesHandler,
		getContractorScheduleHandler: getContractorScheduleHandler,
	}
}

// RegisterRoutes attaches the server's handlers to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.GET("/contractors", s.GetContractors)
	api.POST("/contractors", s.CreateContractor)
	api.GET("/contractors/:id/schedule", s.GetContractorSchedule)

	api.GET("/jobs/open", s.GetOpenJobs)
	api.POST("/jobs", s.CreateJob)
	api.POST("/jobs/:id/complete", s.CompleteJob)
	api.GET("/jobs/:id/candidates", s.GetRankedCandidates)
}

// GetContractors handles GET /api/v1/contractors - retrieves all contractors.
func (s *Server) GetContractors(ctx echo.Context) error {
	query := queries.NewGetAllContractorsQuery()

	contractors, err := s.getAllContractorsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve contractors",
		})
	}

	response := make([]Contractor, len(contractors))
	for i, c := range contractors {
		response[i] = Contractor{
			ID:        c.ID.String(),
			Name:      c.Name,
			Grade:     c.Grade,
			Rating:    c.Rating,
			Active:    c.Active,
			Available: c.Available,
			Location: Location{
				Latitude:  c.Location.Latitude(),
				Longitude: c.Location.Longitude(),
			},
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateContractor handles POST /api/v1/contractors - registers a contractor.
func (s *Server) CreateContractor(ctx echo.Context) error {
	var newContractor NewContractor
	if err := ctx.Bind(&newContractor); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	location, err := kernel.NewGeoLocation(
		newContractor.Location.Latitude,
		newContractor.Location.Longitude,
	)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid contractor location: " + err.Error(),
		})
	}

	cmd, err := commands.NewCreateContractorCommand(
		newContractor.Name,
		newContractor.Grade,
		newContractor.Rating,
		newContractor.Skills,
		location,
	)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid contractor data: " + err.Error(),
		})
	}

	if handleErr := s.createContractorHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return ctx.JSON(http.StatusConflict, Error{
			Code:    http.StatusConflict,
			Message: "Failed to create contractor",
		})
	}

	return ctx.NoContent(http.StatusCreated)
}

// GetOpenJobs handles GET /api/v1/jobs/open - retrieves jobs awaiting assignment.
func (s *Server) GetOpenJobs(ctx echo.Context) error {
	query := queries.NewGetOpenJobsQuery()

	jobs, err := s.getOpenJobsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve jobs",
		})
	}

	response := make([]Job, len(jobs))
	for i, j := range jobs {
		response[i] = Job{
			ID:        j.ID.String(),
			Title:     j.Title,
			Budget:    j.Budget,
			MinRating: j.MinRating,
			Location: Location{
				Latitude:  j.Location.Latitude(),
				Longitude: j.Location.Longitude(),
			},
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateJob handles POST /api/v1/jobs - posts a new job.
func (s *Server) CreateJob(ctx echo.Context) error {
	var newJob NewJob
	if err := ctx.Bind(&newJob); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	location, err := kernel.NewGeoLocation(newJob.Location.Latitude, newJob.Location.Longitude)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid job location: " + err.Error(),
		})
	}

	cmd, err := commands.NewCreateJobCommand(
		kernel.NewUUID(),
		newJob.Title,
		newJob.Budget,
		newJob.RequiredSkills,
		newJob.MinRating,
		location,
	)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid job data: " + err.Error(),
		})
	}

	if handleErr := s.createJobHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to create job",
		})
	}

	return ctx.NoContent(http.StatusCreated)
}

// CompleteJob handles POST /api/v1/jobs/:id/complete - marks an assigned
// job as done.
func (s *Server) CompleteJob(ctx echo.Context) error {
	jobID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid job ID",
		})
	}

	cmd, err := commands.NewCompleteJobCommand(jobID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid completion request: " + err.Error(),
		})
	}

	if handleErr := s.completeJobHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		if errors.Is(handleErr, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, Error{
				Code:    http.StatusNotFound,
				Message: "Job not found",
			})
		}

		return ctx.JSON(http.StatusConflict, Error{
			Code:    http.StatusConflict,
			Message: "Failed to complete job: " + handleErr.Error(),
		})
	}

	return ctx.NoContent(http.StatusOK)
}

// GetRankedCandidates handles GET /api/v1/jobs/:id/candidates - ranks the
// available contractors for a job. Optional query parameters: priority
// (composite, grade, distance, rating), max_distance_km, min_rating,
// max_candidates, auto_assign.
func (s *Server) GetRankedCandidates(ctx echo.Context) error {
	jobID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid job ID",
		})
	}

	options, err := assignmentOptionsFromParams(ctx)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid ranking options: " + err.Error(),
		})
	}

	query, err := queries.NewGetRankedCandidatesQuery(jobID, options)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid ranking request: " + err.Error(),
		})
	}

	result, err := s.getRankedCandidatesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, Error{
				Code:    http.StatusNotFound,
				Message: "Job not found",
			})
		}

		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to rank candidates",
		})
	}

	response := CandidatesResponse{
		Success:    result.Success,
		Message:    result.Message,
		Candidates: make([]RankedCandidate, len(result.Candidates)),
	}
	for i, candidate := range result.Candidates {
		response.Candidates[i] = RankedCandidate{
			ID:             candidate.ID.String(),
			Name:           candidate.Name,
			Grade:          candidate.Grade,
			Rating:         candidate.Rating,
			DistanceKm:     candidate.DistanceKm,
			CompositeScore: candidate.CompositeScore,
			Rank:           candidate.Rank,
		}
	}
	if result.Assignment != nil {
		response.Assignment = &Assignment{
			JobID:        result.Assignment.JobID.String(),
			ContractorID: result.Assignment.ContractorID.String(),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetContractorSchedule handles GET /api/v1/contractors/:id/schedule -
// computes the contractor's optimized route. Query parameters: latitude
// and longitude for the starting position, pickup to route material
// pickups.
func (s *Server) GetContractorSchedule(ctx echo.Context) error {
	contractorID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid contractor ID",
		})
	}

	var params struct {
		Latitude  float64 `query:"latitude"`
		Longitude float64 `query:"longitude"`
		Pickup    bool    `query:"pickup"`
	}
	if err := ctx.Bind(&params); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid schedule parameters",
		})
	}

	current, err := kernel.NewGeoLocation(params.Latitude, params.Longitude)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid starting position: " + err.Error(),
		})
	}

	query, err := queries.NewGetContractorScheduleQuery(contractorID, current, params.Pickup)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid schedule request: " + err.Error(),
		})
	}

	schedule, err := s.getContractorScheduleHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to compute schedule",
		})
	}

	response := Schedule{
		ContractorID:           schedule.ContractorID.String(),
		Stops:                  make([]ScheduleStop, len(schedule.Stops)),
		Excluded:               make([]ExcludedStop, len(schedule.Excluded)),
		TotalDistanceKm:        schedule.Summary.TotalDistanceKm,
		TotalTravelTimeMinutes: schedule.Summary.TotalTravelTimeMinutes,
		PickupCount:            schedule.Summary.PickupCount,
	}
	for i, stop := range schedule.Stops {
		response.Stops[i] = ScheduleStop{
			JobID:       stop.JobID.String(),
			Title:       stop.Title,
			ScheduledAt: stop.ScheduledAt,
			Location: Location{
				Latitude:  stop.Location.Latitude(),
				Longitude: stop.Location.Longitude(),
			},
			TravelToNext: travelLegFromDomain(stop.TravelToNext),
			Pickup:       pickupLegFromDomain(stop.Pickup),
		}
	}
	for i, excluded := range schedule.Excluded {
		response.Excluded[i] = ExcludedStop{
			JobID:  excluded.JobID.String(),
			Title:  excluded.Title,
			Reason: excluded.Reason,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// assignmentOptionsFromParams builds ranking options from the request's
// query parameters, starting from the defaults.
func assignmentOptionsFromParams(ctx echo.Context) (services.AssignmentOptions, error) {
	options := services.DefaultAssignmentOptions()

	var params struct {
		Priority      string   `query:"priority"`
		MaxDistanceKm *float64 `query:"max_distance_km"`
		MinRating     *float64 `query:"min_rating"`
		MaxCandidates *int     `query:"max_candidates"`
		AutoAssign    bool     `query:"auto_assign"`
	}
	if err := ctx.Bind(&params); err != nil {
		return services.AssignmentOptions{}, err
	}

	if params.Priority != "" {
		priority, err := services.ParsePriority(params.Priority)
		if err != nil {
			return services.AssignmentOptions{}, err
		}
		options.Priority = priority
	}
	if params.MaxDistanceKm != nil {
		options.MaxDistanceKm = *params.MaxDistanceKm
	}
	if params.MinRating != nil {
		options.MinRating = *params.MinRating
	}
	if params.MaxCandidates != nil {
		options.MaxCandidates = *params.MaxCandidates
	}
	options.AutoAssign = params.AutoAssign

	return options, nil
}

func travelLegFromDomain(leg *services.TravelLeg) *TravelLeg {
	if leg == nil {
		return nil
	}
	return &TravelLeg{
		DistanceKm:        leg.DistanceKm,
		TravelTimeMinutes: leg.TravelTimeMinutes,
	}
}

func pickupLegFromDomain(leg *services.PickupLeg) *PickupLeg {
	if leg == nil {
		return nil
	}
	return &PickupLeg{
		PickupDistanceKm:        leg.PickupDistanceKm,
		PickupTravelTimeMinutes: leg.PickupTravelTimeMinutes,
		TotalDistanceKm:         leg.TotalDistanceKm,
		TotalTravelTimeMinutes:  leg.TotalTravelTimeMinutes,
	}
}

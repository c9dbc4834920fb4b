package commands

import (
	"errors"
	"math"

	"jobmatch/internal/core/domain/model/kernel"
	"jobmatch/internal/pkg/guard"
)

var (
	ErrCreateJobCommandIsNotConstructed = errors.New(
		"CreateJobCommand must be created via NewCreateJobCommand constructor",
	)
	ErrTitleIsRequired = errors.New("title is required")
	ErrBudgetIsInvalid = errors.New("budget must be a non-negative finite number")
)

// CreateJobCommand represents a request to post a new job.
// Encapsulates the work description, skill requirements, and the job site.
//
// Example:
//
//	jobID := kernel.NewUUID()
//	site, _ := kernel.NewGeoLocation(40.7128, -74.0060)
//	cmd, err := NewCreateJobCommand(jobID, "Fix kitchen sink", 350, []string{"plumbing"}, 3.5, site)
//	if err != nil {
//	    return fmt.Errorf("invalid job data: %w", err)
//	}
//
//	handler := NewCreateJobCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create job: %w", err)
//	}
//	fmt.Printf("Job %s posted and awaiting assignment", jobID)
type CreateJobCommand struct { //nolint:recvcheck //using for validation
	jobID          kernel.UUID
	title          string
	budget         float64
	requiredSkills []string
	minRating      float64
	location       kernel.GeoLocation

	guard guard.ConstructorGuard
}

// NewCreateJobCommand creates a command to post a new job.
// Validates that the job ID is valid, the title is not empty, the budget
// is a non-negative finite number, the rating floor is within 0..5, and
// the job site coordinate is valid.
func NewCreateJobCommand(
	jobID kernel.UUID,
	title string,
	budget float64,
	requiredSkills []string,
	minRating float64,
	location kernel.GeoLocation,
) (CreateJobCommand, error) {
	jobCommand := CreateJobCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		jobCommand.setJobID(jobID),
		jobCommand.setTitle(title),
		jobCommand.setBudget(budget),
		jobCommand.setMinRating(minRating),
		jobCommand.setLocation(location),
	); err != nil {
		return CreateJobCommand{}, err
	}

	jobCommand.requiredSkills = requiredSkills
	return jobCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateJobCommandIsNotConstructed if validation fails.
func (c CreateJobCommand) Validate() error {
	return c.guard.Validate(ErrCreateJobCommandIsNotConstructed)
}

// JobID returns the unique identifier for the job.
func (c CreateJobCommand) JobID() kernel.UUID {
	return c.jobID
}

// Title returns the job title.
func (c CreateJobCommand) Title() string {
	return c.title
}

// Budget returns the customer's budget for the job.
func (c CreateJobCommand) Budget() float64 {
	return c.budget
}

// RequiredSkills returns the skills the job demands.
func (c CreateJobCommand) RequiredSkills() []string {
	return c.requiredSkills
}

// MinRating returns the contractor rating floor for the job.
func (c CreateJobCommand) MinRating() float64 {
	return c.minRating
}

// Location returns the job site coordinate.
func (c CreateJobCommand) Location() kernel.GeoLocation {
	return c.location
}

func (c *CreateJobCommand) setJobID(jobID kernel.UUID) error {
	if err := jobID.Validate(); err != nil {
		return err
	}

	c.jobID = jobID
	return nil
}

func (c *CreateJobCommand) setTitle(title string) error {
	if title == "" {
		return ErrTitleIsRequired
	}

	c.title = title
	return nil
}

func (c *CreateJobCommand) setBudget(budget float64) error {
	if math.IsNaN(budget) || math.IsInf(budget, 0) || budget < 0 {
		return ErrBudgetIsInvalid
	}

	c.budget = budget
	return nil
}

func (c *CreateJobCommand) setMinRating(minRating float64) error {
	if minRating < 0 || minRating > 5 {
		return ErrRatingIsInvalid
	}

	c.minRating = minRating
	return nil
}

func (c *CreateJobCommand) setLocation(location kernel.GeoLocation) error {
	if err := location.Validate(); err != nil {
		return err
	}

	c.location = location
	return nil
}

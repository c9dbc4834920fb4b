package job

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"
	"time"

	"jobmatch/internal/core/domain/model/kernel"
	"jobmatch/internal/pkg/errs"
)

var (
	// ErrJobIsNotConstructed is returned when a Job instance was not created through
	// the NewJob factory method. This ensures all jobs are properly validated.
	ErrJobIsNotConstructed = errors.New("Job must be created via NewJob constructor")

	// ErrTitleIsRequired is returned when attempting to create a job without a title.
	ErrTitleIsRequired = errs.NewValueIsRequiredError("title")
)

// Job represents a unit of work posted in the marketplace. It is the aggregate
// root that manages the job lifecycle from posting through assignment to completion.
//
// Job follows these invariants:
//   - Must have a valid unique identifier, non-empty title, and valid location
//   - Budget must be a finite, non-negative amount
//   - Minimum acceptable rating is bounded to [0, 5]
//   - A job requiring pickup must carry a valid pickup location
//   - Status transitions follow defined business rules
//   - Can only be created through the NewJob constructor
//
// The Job struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Job struct {
	// id is the unique identifier for the job
	id kernel.UUID

	// contractorID is the assigned contractor's ID (nil if unassigned)
	contractorID *kernel.UUID

	// title describes the work to be done
	title string

	// budget is the maximum amount the requester will pay
	budget float64

	// requiredSkills are the skill tags a contractor must cover
	requiredSkills []string

	// minRating is the lowest acceptable contractor rating
	minRating float64

	// location is the job site position
	location kernel.GeoLocation

	// scheduledAt is the optional planned start time
	scheduledAt *time.Time

	// durationMinutes is the estimated work duration (0 when unknown)
	durationMinutes int

	// pickupRequired indicates whether supplies must be collected before the job
	pickupRequired bool

	// pickupLocation is the supply pickup point (set only when pickupRequired)
	pickupLocation *kernel.GeoLocation

	// status represents the current state in the job lifecycle
	status Status

	// isConstructed ensures the job was created via NewJob
	isConstructed bool
}

// NewJob creates a new Job instance with validation. This is the only way to
// create a valid Job, ensuring all business invariants are maintained.
//
// The job starts in Open status with no contractor assigned. Optional
// scheduling and pickup details are attached afterwards via Schedule and
// RequirePickup.
//
// Parameters:
//   - id: Unique identifier for the job (must be a valid UUID)
//   - title: Description of the work (must be non-empty)
//   - budget: Maximum payable amount (finite, >= 0)
//   - requiredSkills: Skill tags a contractor must cover (may be empty)
//   - minRating: Lowest acceptable contractor rating in [0, 5]
//   - location: Job site position (must be a valid GeoLocation)
//
// Example:
//
//	jobID := kernel.NewUUID()
//	site, _ := kernel.NewGeoLocation(51.5, -0.12)
//	j, err := NewJob(jobID, "Install venetian blinds", 300, []string{"blind-install"}, 4.0, site)
//	if err != nil {
//	    // Handle validation error
//	}
func NewJob(
	id kernel.UUID,
	title string,
	budget float64,
	requiredSkills []string,
	minRating float64,
	location kernel.GeoLocation,
) (*Job, error) {
	j := &Job{
		status:        Open,
		isConstructed: true,
	}

	if err := errors.Join(
		j.setID(id),
		j.setTitle(title),
		j.setBudget(budget),
		j.setRequiredSkills(requiredSkills),
		j.setMinRating(minRating),
		j.setLocation(location),
	); err != nil {
		return nil, err
	}

	return j, nil
}

// RestoreJob reconstructs a Job aggregate from persistent storage, including
// its lifecycle status, contractor assignment, and optional schedule and
// pickup details. The restored job behaves identically to one created through
// normal domain operations.
//
// Business Rules:
//   - Status must be valid and consistent with the contractor assignment
//   - All regular construction invariants apply
func RestoreJob(
	id kernel.UUID,
	title string,
	budget float64,
	requiredSkills []string,
	minRating float64,
	location kernel.GeoLocation,
	scheduledAt *time.Time,
	durationMinutes int,
	pickupRequired bool,
	pickupLocation *kernel.GeoLocation,
	status Status,
	contractorID *kernel.UUID,
) (*Job, error) {
	j := &Job{
		status:        status,
		isConstructed: true,
	}

	if err := errors.Join(
		j.setID(id),
		j.setTitle(title),
		j.setBudget(budget),
		j.setRequiredSkills(requiredSkills),
		j.setMinRating(minRating),
		j.setLocation(location),
		status.Validate(),
		status.ValidateCanHaveContractor(contractorID != nil),
	); err != nil {
		return nil, err
	}

	if scheduledAt != nil {
		if err := j.Schedule(*scheduledAt, durationMinutes); err != nil {
			return nil, err
		}
	}

	if pickupRequired {
		if pickupLocation == nil {
			return nil, errs.NewValueIsRequiredError("pickupLocation")
		}
		if err := j.RequirePickup(*pickupLocation); err != nil {
			return nil, err
		}
	}

	if contractorID != nil {
		j.contractorID = contractorID
	}

	return j, nil
}

// Validate ensures the Job instance was properly constructed through NewJob.
// This prevents bypassing validation by directly instantiating the struct.
func (j *Job) Validate() error {
	if j == nil || !j.isConstructed {
		return ErrJobIsNotConstructed
	}

	return nil
}

// IsEqual compares two jobs by their unique identifiers.
// Jobs are considered equal if they have the same ID.
func (j *Job) IsEqual(other *Job) bool {
	return other != nil && j.id.IsEqual(other.id)
}

// ID returns the job's unique identifier.
func (j *Job) ID() kernel.UUID {
	return j.id
}

// Title returns the job's title.
func (j *Job) Title() string {
	return j.title
}

// Budget returns the maximum payable amount for the job.
func (j *Job) Budget() float64 {
	return j.budget
}

// RequiredSkills returns a copy of the skill tags a contractor must cover.
func (j *Job) RequiredSkills() []string {
	return slices.Clone(j.requiredSkills)
}

// MinRating returns the lowest acceptable contractor rating.
func (j *Job) MinRating() float64 {
	return j.minRating
}

// Location returns the job site position.
func (j *Job) Location() kernel.GeoLocation {
	return j.location
}

// ScheduledAt returns the planned start time, or nil when unscheduled.
func (j *Job) ScheduledAt() *time.Time {
	return j.scheduledAt
}

// DurationMinutes returns the estimated work duration in minutes (0 when unknown).
func (j *Job) DurationMinutes() int {
	return j.durationMinutes
}

// PickupRequired reports whether supplies must be collected before the job.
func (j *Job) PickupRequired() bool {
	return j.pickupRequired
}

// PickupLocation returns the supply pickup point, or nil when no pickup is required.
func (j *Job) PickupLocation() *kernel.GeoLocation {
	return j.pickupLocation
}

// Status returns the current status of the job.
func (j *Job) Status() Status {
	return j.status
}

// Contractor returns the assigned contractor's ID.
// Returns nil if no contractor is assigned.
func (j *Job) Contractor() *kernel.UUID {
	return j.contractorID
}

// Schedule attaches a planned start time and estimated duration to the job.
// Duration must be non-negative; zero means the duration is unknown.
func (j *Job) Schedule(at time.Time, durationMinutes int) error {
	if at.IsZero() {
		return errs.NewValueIsRequiredError("scheduledAt")
	}

	if durationMinutes < 0 {
		return errs.NewValueIsInvalidErrorWithCause("durationMinutes",
			fmt.Errorf("%d is not a valid duration", durationMinutes))
	}

	j.scheduledAt = &at
	j.durationMinutes = durationMinutes
	return nil
}

// RequirePickup marks the job as requiring a supply pickup at the given location
// before work can start at the job site.
func (j *Job) RequirePickup(pickup kernel.GeoLocation) error {
	if err := pickup.Validate(); err != nil {
		return err
	}

	j.pickupRequired = true
	j.pickupLocation = &pickup
	return nil
}

// Assign assigns the job to a contractor and updates the status to Assigned.
//
// This method enforces the following business rules:
//   - The contractor ID must be valid
//   - The job must be in Open or Assigned status
//   - Reassignment is allowed (from Assigned to Assigned)
//
// After successful assignment, the job's status becomes Assigned and
// Contractor() returns the assigned contractor's ID.
func (j *Job) Assign(contractorID kernel.UUID) error {
	if err := contractorID.Validate(); err != nil {
		return err
	}

	newStatus, err := j.status.Assign()
	if err != nil {
		return err
	}

	j.status = newStatus
	j.contractorID = &contractorID
	return nil
}

// ValidateAssign checks whether the job can currently be assigned
// without performing the transition.
func (j *Job) ValidateAssign() error {
	return j.status.ValidateAssign()
}

// Complete marks the job as completed.
//
// This method enforces the following business rules:
//   - The job must be in Assigned status
//   - Completed is a final state with no further transitions
func (j *Job) Complete() error {
	newStatus, err := j.status.Complete()
	if err != nil {
		return err
	}

	j.status = newStatus
	return nil
}

// setID validates and sets the job's unique identifier.
// This is a private method used only during construction.
func (j *Job) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	j.id = id
	return nil
}

// setTitle validates and sets the job's title.
// This is a private method used only during construction.
func (j *Job) setTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return ErrTitleIsRequired
	}
	j.title = title
	return nil
}

// setBudget validates and sets the job's budget.
// Budget must be a finite, non-negative amount.
// This is a private method used only during construction.
func (j *Job) setBudget(budget float64) error {
	if math.IsNaN(budget) || math.IsInf(budget, 0) || budget < 0 {
		return errs.NewValueIsInvalidErrorWithCause("budget",
			fmt.Errorf("%v is not a valid budget", budget))
	}
	j.budget = budget
	return nil
}

// setRequiredSkills normalizes and sets the required skill tags.
// This is a private method used only during construction.
func (j *Job) setRequiredSkills(skills []string) error {
	normalized := make([]string, 0, len(skills))
	for _, skill := range skills {
		if s := strings.ToLower(strings.TrimSpace(skill)); s != "" && !slices.Contains(normalized, s) {
			normalized = append(normalized, s)
		}
	}

	j.requiredSkills = normalized
	return nil
}

// setMinRating validates and sets the minimum acceptable rating.
// This is a private method used only during construction.
func (j *Job) setMinRating(minRating float64) error {
	if math.IsNaN(minRating) || minRating < 0 || minRating > 5 {
		return errs.NewValueIsOutOfRangeError("minRating", minRating, 0.0, 5.0)
	}
	j.minRating = minRating
	return nil
}

// setLocation validates and sets the job site position.
// This is a private method used only during construction.
func (j *Job) setLocation(location kernel.GeoLocation) error {
	if err := location.Validate(); err != nil {
		return err
	}
	j.location = location
	return nil
}

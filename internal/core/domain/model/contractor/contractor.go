package contractor

import (
	"errors"
	"math"
	"slices"
	"strings"

	"jobmatch/internal/core/domain/model/kernel"
	"jobmatch/internal/pkg/errs"
	"jobmatch/internal/pkg/guard"
)

const (
	// MinRating is the lowest possible average rating.
	MinRating = 0.0
	// MaxRating is the highest possible average rating.
	MaxRating = 5.0
)

// Domain errors for contractor operations.
var (
	// ErrNameIsRequired is returned when attempting to create a contractor without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrContractorIsNotConstructed is returned when using an improperly initialized Contractor.
	ErrContractorIsNotConstructed = errors.New("Contractor must be created via NewContractor constructor")
)

// Contractor represents a service provider in the marketplace.
// It is an aggregate root that manages contractor identity, qualification
// data (grade, rating, skills), and work-acceptance state.
//
// Key responsibilities:
//   - Managing contractor identity (ID, name)
//   - Holding qualification data used by the assignment engine
//   - Tracking account state (active) and work-acceptance state (available)
//   - Exposing skill-coverage checks for job matching
//
// Business rules:
//   - Contractor must have a valid UUID, non-empty name, and a valid location
//   - Rating is bounded to [0, 5]
//   - An unknown grade is valid but ranks below every known grade
//   - The assignment engine treats contractors as immutable snapshots;
//     state changes happen only through aggregate methods between engine calls
//
// Example usage:
//
//	location, _ := kernel.NewGeoLocation(51.5074, -0.1278)
//	c, err := NewContractor(kernel.NewUUID(), "Jane Doe", GradeA, 4.8,
//	    []string{"blind-install"}, location)
//	if err != nil {
//	    // Handle construction error
//	}
//	// Contractor is active, available, and ready for matching
type Contractor struct {
	// id uniquely identifies the contractor
	id kernel.UUID
	// name is the human-readable name of the contractor
	name string
	// grade is the quality tier assigned to the contractor
	grade Grade
	// rating is the average customer rating in [0, 5]
	rating float64
	// active reports whether the account is enabled
	active bool
	// available reports whether the contractor currently accepts work
	available bool
	// skills are the contractor's skill tags (set semantics, case-insensitive)
	skills []string
	// location is the contractor's current position
	location kernel.GeoLocation
	// estimatedCost is the contractor's quote for the job under consideration
	estimatedCost float64
	// guard ensures the contractor was properly constructed
	guard guard.ConstructorGuard
}

// NewContractor creates a new Contractor with the specified parameters.
// This is the only way to create a fresh Contractor instance; contractors
// loaded from persistence use RestoreContractor.
//
// New contractors start active and available with a zero cost estimate.
//
// Parameters:
//   - id: Unique identifier (must be a valid UUID)
//   - name: Human-readable name (must be non-empty)
//   - grade: Quality tier (GradeUnknown is allowed)
//   - rating: Average rating in [0, 5]
//   - skills: Skill tags (may be empty)
//   - location: Current position (must be a valid GeoLocation)
//
// Returns:
//   - *Contractor: A fully initialized contractor ready for matching
//   - error: Validation error if any parameter is invalid (aggregated for multiple issues)
func NewContractor(
	id kernel.UUID,
	name string,
	grade Grade,
	rating float64,
	skills []string,
	location kernel.GeoLocation,
) (*Contractor, error) {
	contractor := &Contractor{
		active:    true,
		available: true,
		grade:     grade,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		contractor.setID(id),
		contractor.setName(name),
		contractor.setRating(rating),
		contractor.setSkills(skills),
		contractor.setLocation(location),
	); err != nil {
		return nil, err
	}

	return contractor, nil
}

// RestoreContractor reconstructs a Contractor aggregate from persistent storage.
// Unlike NewContractor, which creates fresh active/available contractors, this
// constructor restores the persisted account and availability state along with
// the stored cost estimate.
//
// Returns:
//   - *Contractor: Restored contractor aggregate
//   - error: Validation error if any parameter is invalid
func RestoreContractor(
	id kernel.UUID,
	name string,
	grade Grade,
	rating float64,
	active bool,
	available bool,
	skills []string,
	location kernel.GeoLocation,
	estimatedCost float64,
) (*Contractor, error) {
	contractor := &Contractor{
		active:    active,
		available: available,
		grade:     grade,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		contractor.setID(id),
		contractor.setName(name),
		contractor.setRating(rating),
		contractor.setSkills(skills),
		contractor.setLocation(location),
		contractor.SetEstimatedCost(estimatedCost),
	); err != nil {
		return nil, err
	}

	return contractor, nil
}

// Validate ensures the Contractor was properly constructed.
// Returns ErrContractorIsNotConstructed for nil or zero-value instances.
func (c *Contractor) Validate() error {
	if c == nil {
		return ErrContractorIsNotConstructed
	}
	return c.guard.Validate(ErrContractorIsNotConstructed)
}

// IsEqual compares two contractors by their unique identifiers.
// Contractors are considered equal if they have the same ID,
// regardless of other attributes.
func (c *Contractor) IsEqual(other *Contractor) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the contractor's unique identifier.
func (c *Contractor) ID() kernel.UUID {
	return c.id
}

// Name returns the contractor's display name.
func (c *Contractor) Name() string {
	return c.name
}

// Grade returns the contractor's quality tier.
func (c *Contractor) Grade() Grade {
	return c.grade
}

// Rating returns the contractor's average rating in [0, 5].
func (c *Contractor) Rating() float64 {
	return c.rating
}

// IsActive reports whether the contractor's account is enabled.
func (c *Contractor) IsActive() bool {
	return c.active
}

// IsAvailable reports whether the contractor currently accepts work.
func (c *Contractor) IsAvailable() bool {
	return c.available
}

// Skills returns a copy of the contractor's skill tags.
// The copy keeps callers from mutating aggregate state.
func (c *Contractor) Skills() []string {
	return slices.Clone(c.skills)
}

// Location returns the contractor's current position.
func (c *Contractor) Location() kernel.GeoLocation {
	return c.location
}

// EstimatedCost returns the contractor's quote for the job under consideration.
func (c *Contractor) EstimatedCost() float64 {
	return c.estimatedCost
}

// HasSkill reports whether the contractor has the given skill tag.
// Matching is case-insensitive and ignores surrounding whitespace.
func (c *Contractor) HasSkill(skill string) bool {
	return slices.Contains(c.skills, normalizeSkill(skill))
}

// HasAllSkills reports whether the contractor covers every required skill.
// An empty requirement set is covered by any contractor.
func (c *Contractor) HasAllSkills(required []string) bool {
	for _, skill := range required {
		if !c.HasSkill(skill) {
			return false
		}
	}
	return true
}

// MarkUnavailable records that the contractor has stopped accepting work,
// for example after being assigned to a job.
func (c *Contractor) MarkUnavailable() {
	c.available = false
}

// MarkAvailable records that the contractor accepts work again,
// for example after completing a job.
func (c *Contractor) MarkAvailable() {
	c.available = true
}

// Deactivate disables the contractor's account. Inactive contractors are
// excluded from matching regardless of availability.
func (c *Contractor) Deactivate() {
	c.active = false
}

// Activate enables the contractor's account.
func (c *Contractor) Activate() {
	c.active = true
}

// SetEstimatedCost records the contractor's quote for the job under
// consideration. Cost must be a finite, non-negative amount.
func (c *Contractor) SetEstimatedCost(cost float64) error {
	if math.IsNaN(cost) || math.IsInf(cost, 0) || cost < 0 {
		return errs.NewValueIsInvalidError("estimatedCost")
	}

	c.estimatedCost = cost
	return nil
}

func (c *Contractor) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.id = id
	return nil
}

func (c *Contractor) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *Contractor) setRating(rating float64) error {
	if math.IsNaN(rating) || rating < MinRating || rating > MaxRating {
		return errs.NewValueIsOutOfRangeError("rating", rating, MinRating, MaxRating)
	}

	c.rating = rating
	return nil
}

func (c *Contractor) setSkills(skills []string) error {
	normalized := make([]string, 0, len(skills))
	for _, skill := range skills {
		if s := normalizeSkill(skill); s != "" && !slices.Contains(normalized, s) {
			normalized = append(normalized, s)
		}
	}

	c.skills = normalized
	return nil
}

func (c *Contractor) setLocation(location kernel.GeoLocation) error {
	if err := location.Validate(); err != nil {
		return err
	}

	c.location = location
	return nil
}

func normalizeSkill(skill string) string {
	return strings.ToLower(strings.TrimSpace(skill))
}

package services

import (
	"fmt"
	"math"

	"jobmatch/internal/pkg/errs"
)

const (
	// DefaultMaxDistanceKm is the default travel ceiling applied when the
	// caller does not narrow the search radius.
	DefaultMaxDistanceKm = 100.0

	// DefaultMaxCandidates is the default cap on the ranked candidate list.
	DefaultMaxCandidates = 10
)

// Priority selects the primary sort key for ranked candidate lists.
// Each priority dispatches to a dedicated comparator; the secondary
// tie-break chain is identical in every mode, keeping the final order
// deterministic regardless of the chosen key.
type Priority int

const (
	// PriorityComposite sorts by composite score, highest first.
	// This is the default priority.
	PriorityComposite Priority = iota

	// PriorityGrade sorts by grade rank, best grade first.
	PriorityGrade

	// PriorityDistance sorts by distance to the job site, closest first.
	PriorityDistance

	// PriorityRating sorts by average rating, highest first.
	PriorityRating
)

// getPriorityStrings returns a map of Priority values to their string labels.
func getPriorityStrings() map[Priority]string {
	return map[Priority]string{
		PriorityComposite: "composite",
		PriorityGrade:     "grade",
		PriorityDistance:  "distance",
		PriorityRating:    "rating",
	}
}

// ParsePriority converts a priority label into a Priority value.
// Unlike grades, an unknown priority label is a caller mistake and
// fails with a validation error rather than degrading silently.
func ParsePriority(label string) (Priority, error) {
	for priority, str := range getPriorityStrings() {
		if str == label {
			return priority, nil
		}
	}

	return 0, errs.NewValueIsInvalidErrorWithCause("priority",
		fmt.Errorf("%q is not one of grade, distance, rating, composite", label))
}

// Validate checks if the Priority value is one of the defined modes.
func (p Priority) Validate() error {
	if _, ok := getPriorityStrings()[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("priority",
			fmt.Errorf("%d is not a valid priority", p))
	}
	return nil
}

// String returns the priority label. Implements fmt.Stringer.
func (p Priority) String() string {
	if str, ok := getPriorityStrings()[p]; ok {
		return str
	}
	return "unknown"
}

// AssignmentOptions is the explicit per-call configuration for candidate
// filtering and ranking. There is no shared engine configuration: every
// call carries its own options, so concurrent calls never interfere.
//
// The zero value is not useful (zero MaxDistanceKm excludes everyone);
// start from DefaultAssignmentOptions and override what the caller needs.
//
// Example:
//
//	opts := services.DefaultAssignmentOptions()
//	opts.Priority = services.PriorityGrade
//	opts.MaxDistanceKm = 25
//	result, err := selector.AssignContractor(pool, j, opts)
type AssignmentOptions struct {
	// MaxDistanceKm is the travel ceiling; contractors farther from the
	// job site are excluded.
	MaxDistanceKm float64

	// MinRating is the rating floor applied in addition to the job's own
	// minimum; the stricter of the two wins.
	MinRating float64

	// RequireExperience is reserved for a future filter on completed-job
	// history; it is carried through validation but not yet applied.
	RequireExperience bool

	// Priority selects the primary sort key for the ranked list.
	Priority Priority

	// MaxCandidates caps the ranked list length. Zero means DefaultMaxCandidates.
	MaxCandidates int

	// AutoAssign, when set, materializes a concrete Assignment from the
	// top-ranked candidate instead of leaving the choice to the caller.
	AutoAssign bool
}

// DefaultAssignmentOptions returns the options applied when the caller has
// no special requirements: composite priority, a wide distance ceiling,
// no extra rating floor, and no auto-assignment.
func DefaultAssignmentOptions() AssignmentOptions {
	return AssignmentOptions{
		MaxDistanceKm: DefaultMaxDistanceKm,
		MinRating:     0,
		Priority:      PriorityComposite,
		MaxCandidates: DefaultMaxCandidates,
	}
}

// Validate checks the options for malformed values. Malformed options fail
// fast with a validation error instead of silently producing an empty or
// corrupted ranking.
func (o AssignmentOptions) Validate() error {
	if math.IsNaN(o.MaxDistanceKm) || o.MaxDistanceKm < 0 {
		return errs.NewValueIsOutOfRangeError("maxDistanceKm", o.MaxDistanceKm, 0.0, math.MaxFloat64)
	}

	if math.IsNaN(o.MinRating) || o.MinRating < 0 || o.MinRating > 5 {
		return errs.NewValueIsOutOfRangeError("minRating", o.MinRating, 0.0, 5.0)
	}

	if o.MaxCandidates < 0 {
		return errs.NewValueIsInvalidErrorWithCause("maxCandidates",
			fmt.Errorf("%d is not a valid candidate cap", o.MaxCandidates))
	}

	return o.Priority.Validate()
}

// maxCandidatesOrDefault resolves the zero value to the default cap.
func (o AssignmentOptions) maxCandidatesOrDefault() int {
	if o.MaxCandidates == 0 {
		return DefaultMaxCandidates
	}
	return o.MaxCandidates
}

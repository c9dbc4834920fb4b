package job

import (
	"fmt"

	"jobmatch/internal/pkg/errs"
)

// Status represents the lifecycle state of a job.
// It implements a state machine with defined transitions to ensure
// jobs follow the correct business workflow.
//
// State transitions:
//
//	Open ──┬──> Assigned ──> Completed
//	       │        │
//	       └────────┘
//	  (reassignment allowed)
//
// Status is a value object that validates state transitions
// and provides string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Open is the initial status when a job is first posted.
	// Jobs in this status are waiting to be assigned to a contractor.
	Open

	// Assigned indicates the job has been assigned to a contractor.
	// Jobs can be reassigned while in this status.
	Assigned

	// Completed indicates the job has been finished.
	// This is a final state with no further transitions allowed.
	Completed
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Open:      "Open",
		Assigned:  "Assigned",
		Completed: "Completed",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Open:      "Open",
		Assigned:  "Assigned",
		Completed: "Completed",
	}
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Open, Assigned, Completed.
// Unknown (0) and any other values are invalid.
//
// This method is used to ensure Status values from external sources
// (e.g., database, API) are valid before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
//
// Returns:
//   - "Open", "Assigned", or "Completed" for valid statuses
//   - "Unknown" for invalid status values
//
// This method implements the fmt.Stringer interface and is safe
// to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// ValidateAssign checks if the status allows assignment without performing the transition.
//
// Valid statuses for assignment:
//   - Open (can be initially assigned)
//   - Assigned (can be reassigned)
//
// Invalid statuses for assignment:
//   - Completed (cannot assign completed jobs)
//   - Unknown (invalid status)
//
// This method provides assignability validation without side effects,
// useful for pre-validation and business logic checks.
func (s Status) ValidateAssign() error {
	if s != Open && s != Assigned {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to assign", s.String()),
		)
	}
	return nil
}

// ValidateCanHaveContractor validates the consistency between job status and
// contractor assignment.
//
// Business Rules:
//   - Open jobs must not have a contractor assigned
//   - Assigned and Completed jobs must have a contractor assigned
func (s Status) ValidateCanHaveContractor(hasContractor bool) error {
	if hasContractor && s != Assigned && s != Completed {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have a contractor", s.String()),
		)
	}

	if !hasContractor && (s == Assigned || s == Completed) {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have no contractor", s.String()),
		)
	}

	return nil
}

// Assign transitions the status to Assigned.
//
// Valid transitions:
//   - Open -> Assigned (initial assignment)
//   - Assigned -> Assigned (reassignment to a different contractor)
//
// Returns:
//   - (Assigned, nil) on valid transition
//   - (0, error) if transition is not allowed from current status
func (s Status) Assign() (Status, error) {
	if err := s.ValidateAssign(); err != nil {
		return 0, err
	}

	return Assigned, nil
}

// Complete transitions the status to Completed.
//
// Valid transitions:
//   - Assigned -> Completed (work finished)
//
// Returns:
//   - (Completed, nil) on valid transition
//   - (0, error) if the job is not in Assigned status
func (s Status) Complete() (Status, error) {
	if s != Assigned {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to complete", s.String()),
		)
	}

	return Completed, nil
}

package services

import (
	"fmt"

	"jobmatch/internal/core/domain/model/contractor"
	"jobmatch/internal/core/domain/model/job"
	"jobmatch/internal/pkg/errs"
)

// ValidationResult is the outcome of checking a proposed assignment.
// Errors make the assignment invalid; warnings flag conditions the
// caller may accept, such as a budget overrun when the validator is
// configured leniently.
type ValidationResult struct {
	IsValid  bool
	Errors   []string
	Warnings []string
}

// AssignmentValidator checks a proposed assignment for consistency
// before it is acted on: the contractor must exist and be active, the
// assignment must reference the right job, and the estimated cost is
// checked against the job's budget.
type AssignmentValidator struct {
	// budgetOverrunIsWarning downgrades a cost-over-budget finding from
	// an error to a warning.
	budgetOverrunIsWarning bool
}

// NewAssignmentValidator creates an AssignmentValidator. When
// budgetOverrunIsWarning is set, an estimated cost above the job's
// budget is reported as a warning instead of invalidating the
// assignment.
func NewAssignmentValidator(budgetOverrunIsWarning bool) AssignmentValidator {
	return AssignmentValidator{budgetOverrunIsWarning: budgetOverrunIsWarning}
}

// Validate checks the proposed assignment against the job and the known
// contractor pool. Malformed input fails with an error; business
// findings are collected into the result so the caller sees all of them
// at once rather than the first one only.
func (v AssignmentValidator) Validate(
	assignment *Assignment,
	aJob *job.Job,
	pool []*contractor.Contractor,
) (ValidationResult, error) {
	if assignment == nil {
		return ValidationResult{}, errs.NewValueIsRequiredError("assignment")
	}
	if err := assignment.ContractorID.Validate(); err != nil {
		return ValidationResult{}, errs.NewValueIsInvalidErrorWithCause("contractorID", err)
	}
	if err := aJob.Validate(); err != nil {
		return ValidationResult{}, err
	}

	result := ValidationResult{IsValid: true}

	if !assignment.JobID.IsEqual(aJob.ID()) {
		result.addError(fmt.Sprintf("assignment references job %s, expected %s",
			assignment.JobID, aJob.ID()))
	}

	assignee := findContractor(pool, assignment)
	if assignee == nil {
		result.addError(fmt.Sprintf("contractor %s is not in the pool", assignment.ContractorID))
	} else {
		if err := assignee.Validate(); err != nil {
			return ValidationResult{}, errs.NewValueIsInvalidErrorWithCause("contractor", err)
		}
		if !assignee.IsActive() {
			result.addError(fmt.Sprintf("contractor %q is deactivated", assignee.Name()))
		}
		if !assignee.IsAvailable() {
			result.addWarning(fmt.Sprintf("contractor %q is currently unavailable", assignee.Name()))
		}
	}

	if aJob.Budget() > 0 && assignment.EstimatedCost > aJob.Budget() {
		finding := fmt.Sprintf("estimated cost %.2f exceeds budget %.2f",
			assignment.EstimatedCost, aJob.Budget())
		if v.budgetOverrunIsWarning {
			result.addWarning(finding)
		} else {
			result.addError(finding)
		}
	}

	return result, nil
}

func findContractor(pool []*contractor.Contractor, assignment *Assignment) *contractor.Contractor {
	for _, aContractor := range pool {
		if aContractor != nil && aContractor.ID().IsEqual(assignment.ContractorID) {
			return aContractor
		}
	}
	return nil
}

func (r *ValidationResult) addError(finding string) {
	r.IsValid = false
	r.Errors = append(r.Errors, finding)
}

func (r *ValidationResult) addWarning(finding string) {
	r.Warnings = append(r.Warnings, finding)
}

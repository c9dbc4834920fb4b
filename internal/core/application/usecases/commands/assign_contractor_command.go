package commands

import (
	"errors"

	"jobmatch/internal/pkg/guard"
)

var ErrAssignContractorCommandIsNotConstructed = errors.New(
	"AssignContractorCommand must be created via NewAssignContractorCommand constructor",
)

// AssignContractorCommand triggers the assignment of an available contractor
// to a pending job. This command represents the business operation of
// matching workforce with posted work. It finds the first job in Open
// status and assigns the most suitable contractor.
//
// Example:
//
//	cmd := NewAssignContractorCommand()
//	handler := NewAssignContractorCommandHandler(uowFactory)
//	err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    log.Printf("No jobs to assign or no available contractors: %v", err)
//	}
type AssignContractorCommand struct {
	guard guard.ConstructorGuard
}

// NewAssignContractorCommand creates a new command to trigger contractor assignment.
// This is a parameterless command that initiates the contractor-job matching process.
func NewAssignContractorCommand() AssignContractorCommand {
	return AssignContractorCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrAssignContractorCommandIsNotConstructed if validation fails.
func (c *AssignContractorCommand) Validate() error {
	return c.guard.Validate(
		ErrAssignContractorCommandIsNotConstructed,
	)
}

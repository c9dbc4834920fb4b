package commands

import (
	"errors"

	"jobmatch/internal/core/domain/model/kernel"
	"jobmatch/internal/pkg/guard"
)

var ErrCompleteJobCommandIsNotConstructed = errors.New(
	"CompleteJobCommand must be created via NewCompleteJobCommand constructor",
)

// CompleteJobCommand represents a request to mark an assigned job as done
// and release its contractor back into the available pool.
//
// Example:
//
//	cmd, err := NewCompleteJobCommand(jobID)
//	if err != nil {
//	    return fmt.Errorf("invalid job ID: %w", err)
//	}
//
//	handler := NewCompleteJobCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to complete job: %w", err)
//	}
type CompleteJobCommand struct { //nolint:recvcheck //using for validation
	jobID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCompleteJobCommand creates a command to complete the given job.
// Validates that the job ID is a valid identifier.
func NewCompleteJobCommand(jobID kernel.UUID) (CompleteJobCommand, error) {
	command := CompleteJobCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setJobID(jobID); err != nil {
		return CompleteJobCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCompleteJobCommandIsNotConstructed if validation fails.
func (c CompleteJobCommand) Validate() error {
	return c.guard.Validate(ErrCompleteJobCommandIsNotConstructed)
}

// JobID returns the identifier of the job to complete.
func (c CompleteJobCommand) JobID() kernel.UUID {
	return c.jobID
}

func (c *CompleteJobCommand) setJobID(jobID kernel.UUID) error {
	if err := jobID.Validate(); err != nil {
		return err
	}

	c.jobID = jobID
	return nil
}

package commands

import (
	"context"
)

// CompleteJobCommandHandler handles the business logic for finishing work.
// Marks the job completed and releases its contractor for new assignments,
// keeping both updates in one transaction.
//
// Example:
//
//	handler := NewCompleteJobCommandHandler(uowFactory)
//	cmd, _ := NewCompleteJobCommand(jobID)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("job completion failed: %w", err)
//	}
type CompleteJobCommandHandler struct {
	uowFactory UoWFactory
}

// NewCompleteJobCommandHandler creates a handler for job completion.
// Requires a UoWFactory for coordinating transactional updates across repositories.
func NewCompleteJobCommandHandler(uowFactory UoWFactory) CompleteJobCommandHandler {
	return CompleteJobCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the job completion command.
// Loads the job, transitions it to Completed, marks its contractor
// available again, and persists both within a single transaction.
func (h CompleteJobCommandHandler) Handle(ctx context.Context, command CompleteJobCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	jobRepo := uow.JobRepository()
	contractorRepo := uow.ContractorRepository()

	finishedJob, err := jobRepo.Get(ctx, command.JobID())
	if err != nil {
		return err
	}

	contractorID := finishedJob.Contractor()

	if err = finishedJob.Complete(); err != nil {
		return err
	}

	if err = jobRepo.Update(ctx, finishedJob); err != nil {
		return err
	}

	if contractorID != nil {
		assignee, err := contractorRepo.Get(ctx, *contractorID)
		if err != nil {
			return err
		}

		assignee.MarkAvailable()
		if err = contractorRepo.Update(ctx, assignee); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

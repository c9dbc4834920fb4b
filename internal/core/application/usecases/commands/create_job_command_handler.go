package commands

import (
	"context"

	"jobmatch/internal/core/domain/model/job"
)

// CreateJobCommandHandler handles the business logic for job posting.
// Creates and persists new job entities in Open status, ready for
// contractor assignment.
//
// Example:
//
//	handler := NewCreateJobCommandHandler(uowFactory)
//	site, _ := kernel.NewGeoLocation(40.7128, -74.0060)
//	cmd, _ := NewCreateJobCommand(kernel.NewUUID(), "Fix kitchen sink", 350, []string{"plumbing"}, 0, site)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("job posting failed: %w", err)
//	}
type CreateJobCommandHandler struct {
	uowFactory JobUoWFactory
}

// NewCreateJobCommandHandler creates a handler for job posting.
// Requires a JobUoWFactory for transactional persistence operations.
func NewCreateJobCommandHandler(uowFactory JobUoWFactory) CreateJobCommandHandler {
	return CreateJobCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the job creation command.
// Creates a new job entity and persists it within a transaction.
// Automatically rolls back on any error to prevent partial data.
func (h *CreateJobCommandHandler) Handle(ctx context.Context, cmd CreateJobCommand) error {
	if err := cmd.Validate(); err != nil {
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
	jobEntity, err := job.NewJob(
		cmd.JobID(), cmd.Title(), cmd.Budget(), cmd.RequiredSkills(), cmd.MinRating(), cmd.Location())
	if err != nil {
		return err
	}

	if err = jobRepo.Add(ctx, jobEntity); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

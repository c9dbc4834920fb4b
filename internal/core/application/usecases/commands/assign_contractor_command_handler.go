package commands

import (
	"context"
	"errors"

	"jobmatch/internal/core/domain/services"
	"jobmatch/internal/pkg/errs"
)

var (
	ErrNoAvailableContractorsFound = errors.New("no available contractors found")
	ErrNoEligibleContractorsFound  = errors.New("no eligible contractors found")
	ErrNoJobFound                  = errors.New("no job found")
)

// AssignContractorCommandHandler orchestrates the contractor assignment process.
// Finds pending jobs and matches them with available contractors using business rules.
// Ensures transactional consistency when updating both job and contractor states.
//
// Example:
//
//	handler := NewAssignContractorCommandHandler(uowFactory)
//	cmd := NewAssignContractorCommand()
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrNoJobFound):
//	    log.Println("No pending jobs")
//	case errors.Is(err, ErrNoAvailableContractorsFound):
//	    log.Println("All contractors are busy")
//	case errors.Is(err, ErrNoEligibleContractorsFound):
//	    log.Println("Nobody qualifies for the job")
//	case err != nil:
//	    log.Printf("Assignment failed: %v", err)
//	default:
//	    log.Println("Contractor assigned successfully")
//	}
type AssignContractorCommandHandler struct {
	uowFactory UoWFactory
}

// NewAssignContractorCommandHandler creates a handler for contractor assignment operations.
// Requires a UoWFactory for coordinating transactional updates across repositories.
func NewAssignContractorCommandHandler(uowFactory UoWFactory) AssignContractorCommandHandler {
	return AssignContractorCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the contractor assignment command.
// Retrieves the first open job, finds available contractors, and uses
// AssignmentSelector to pick the best match. Updates both entities within
// a single transaction. Returns specific errors for no jobs (ErrNoJobFound),
// no available contractors (ErrNoAvailableContractorsFound), or no eligible
// candidates (ErrNoEligibleContractorsFound).
func (h AssignContractorCommandHandler) Handle(ctx context.Context, command AssignContractorCommand) error {
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

	contractorRepo := uow.ContractorRepository()
	jobRepo := uow.JobRepository()

	pendingJob, err := jobRepo.GetFirstOpen(ctx)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrNoJobFound
	}
	if err != nil {
		return err
	}

	pool, err := contractorRepo.GetAllAvailable(ctx)
	if err != nil {
		return err
	}
	if len(pool) == 0 {
		return ErrNoAvailableContractorsFound
	}

	assignedContractor, err := services.NewAssignmentSelector().AssignJob(pendingJob, pool)
	if err != nil {
		return err
	}
	if assignedContractor == nil {
		return ErrNoEligibleContractorsFound
	}

	if err = jobRepo.Update(ctx, pendingJob); err != nil {
		return err
	}

	if err = contractorRepo.Update(ctx, assignedContractor); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

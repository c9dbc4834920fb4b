package commands

import (
	"context"

	"jobmatch/internal/core/domain/model/contractor"
)

// CreateContractorCommandHandler handles the business logic for contractor
// registration. Creates and persists new contractor entities with their
// skills and base location.
//
// Example:
//
//	handler := NewCreateContractorCommandHandler(uowFactory)
//	location, _ := kernel.NewGeoLocation(40.7128, -74.0060)
//	cmd, _ := NewCreateContractorCommand("Ace Plumbing", "A", 4.8, []string{"plumbing"}, location)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("contractor registration failed: %w", err)
//	}
type CreateContractorCommandHandler struct {
	uowFactory ContractorUoWFactory
}

// NewCreateContractorCommandHandler creates a handler for contractor registration.
// Requires a ContractorUoWFactory for transactional persistence operations.
func NewCreateContractorCommandHandler(uowFactory ContractorUoWFactory) CreateContractorCommandHandler {
	return CreateContractorCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the contractor creation command.
// Creates a new contractor entity and persists it within a transaction.
// Automatically rolls back on any error to prevent partial data.
func (h *CreateContractorCommandHandler) Handle(ctx context.Context, cmd CreateContractorCommand) error {
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

	contractorRepo := uow.ContractorRepository()
	contractorEntity, err := contractor.NewContractor(
		cmd.ContractorID(), cmd.Name(), cmd.Grade(), cmd.Rating(), cmd.Skills(), cmd.Location())
	if err != nil {
		return err
	}

	if err = contractorRepo.Add(ctx, contractorEntity); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

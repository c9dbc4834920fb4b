// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"jobmatch/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// JobRepoFactory provides access to job repository within a transaction.
	JobRepoFactory interface {
		JobRepository() ports.JobRepository
	}

	// ContractorRepoFactory provides access to contractor repository within a transaction.
	ContractorRepoFactory interface {
		ContractorRepository() ports.ContractorRepository
	}

	// JobUoW manages transactions for job-only operations.
	// Used when commands only modify job aggregates.
	JobUoW interface {
		TxManager
		JobRepoFactory
	}

	// JobUoWFactory creates new job unit of work instances.
	JobUoWFactory interface {
		Create() JobUoW
	}

	// ContractorUoW manages transactions for contractor-only operations.
	// Used when commands only modify contractor aggregates.
	ContractorUoW interface {
		TxManager
		ContractorRepoFactory
	}

	// ContractorUoWFactory creates new contractor unit of work instances.
	ContractorUoWFactory interface {
		Create() ContractorUoW
	}

	// UoW manages transactions across both job and contractor aggregates.
	// Used for commands that coordinate changes between multiple aggregate types.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   jobRepo := uow.JobRepository()
	//   contractorRepo := uow.ContractorRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		ContractorRepoFactory
		JobRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)

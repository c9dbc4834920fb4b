package jobs

import (
	"context"
	"errors"
	"log/slog"

	"jobmatch/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// ContractorAssignmentJob manages the scheduled assignment of contractors to jobs.
// Runs every ten seconds to match open jobs with available contractors.
type ContractorAssignmentJob struct {
	handler commands.AssignContractorCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewContractorAssignmentJob creates a new job for assigning contractors.
// Uses AssignContractorCommandHandler to process one open job per tick.
func NewContractorAssignmentJob(handler commands.AssignContractorCommandHandler, logger *slog.Logger) *ContractorAssignmentJob {
	return &ContractorAssignmentJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "contractor_assignment_job"),
	}
}

// Start begins the contractor assignment job to run every ten seconds.
func (j *ContractorAssignmentJob) Start() error {
	_, err := j.cron.AddFunc("*/10 * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewAssignContractorCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			// Only log errors that are not expected business scenarios
			if !errors.Is(err, commands.ErrNoJobFound) &&
				!errors.Is(err, commands.ErrNoAvailableContractorsFound) &&
				!errors.Is(err, commands.ErrNoEligibleContractorsFound) {
				j.logger.ErrorContext(ctx, "Contractor assignment job failed", "error", err)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Contractor assignment job started (running every ten seconds)")
	return nil
}

// Stop stops the contractor assignment job.
func (j *ContractorAssignmentJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Contractor assignment job stopped")
}

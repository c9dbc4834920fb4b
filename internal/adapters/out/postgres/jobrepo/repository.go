package jobrepo

import (
	"context"
	"errors"

	"jobmatch/internal/core/domain/model/job"
	"jobmatch/internal/core/domain/model/kernel"
	"jobmatch/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormJobRepository implements JobRepository using GORM.
type GormJobRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormJobRepository creates a new GORM job repository.
func NewGormJobRepository(db *gorm.DB, tracker aggregateTracker) *GormJobRepository {
	return &GormJobRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new job to the database.
func (r *GormJobRepository) Add(ctx context.Context, aggregate *job.Job) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing job to the database.
func (r *GormJobRepository) Update(ctx context.Context, aggregate *job.Job) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	// Use Session with FullSaveAssociations to properly update the skills association
	result := r.db.WithContext(ctx).Session(&gorm.Session{FullSaveAssociations: true}).Save(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a job by ID.
func (r *GormJobRepository) Get(ctx context.Context, id kernel.UUID) (*job.Job, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto JobDTO
	if err := r.db.WithContext(ctx).Preload("RequiredSkills").First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("job", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetFirstOpen retrieves the first job with Open status.
func (r *GormJobRepository) GetFirstOpen(ctx context.Context) (*job.Job, error) {
	var dto JobDTO
	if err := r.db.WithContext(ctx).Preload("RequiredSkills").First(&dto, "status = ?", int(job.Open)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("job", "first in open status")
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllAssigned retrieves all jobs with Assigned status.
func (r *GormJobRepository) GetAllAssigned(ctx context.Context) ([]*job.Job, error) {
	var dtos []JobDTO
	if err := r.db.WithContext(ctx).Preload("RequiredSkills").Find(&dtos, "status = ?", int(job.Assigned)).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetAllAssignedTo retrieves all jobs assigned to the given contractor.
func (r *GormJobRepository) GetAllAssignedTo(ctx context.Context, contractorID kernel.UUID) ([]*job.Job, error) {
	if err := contractorID.Validate(); err != nil {
		return nil, err
	}

	var dtos []JobDTO
	if err := r.db.WithContext(ctx).
		Preload("RequiredSkills").
		Find(&dtos, "status = ? AND contractor_id = ?", int(job.Assigned), contractorID.Bytes()).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

func toDomainSlice(dtos []JobDTO) ([]*job.Job, error) {
	jobs := make([]*job.Job, 0, len(dtos))
	for _, dto := range dtos {
		j, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, j)
	}

	return jobs, nil
}

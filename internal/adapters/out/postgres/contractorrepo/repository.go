package contractorrepo

import (
	"context"
	"errors"

	"jobmatch/internal/core/domain/model/contractor"
	"jobmatch/internal/core/domain/model/job"
	"jobmatch/internal/core/domain/model/kernel"
	"jobmatch/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormContractorRepository implements ContractorRepository using GORM.
type GormContractorRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormContractorRepository creates a new GORM contractor repository.
func NewGormContractorRepository(db *gorm.DB, tracker aggregateTracker) *GormContractorRepository {
	return &GormContractorRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new contractor to the database.
func (r *GormContractorRepository) Add(ctx context.Context, aggregate *contractor.Contractor) error {
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

// Update saves an existing contractor to the database.
func (r *GormContractorRepository) Update(ctx context.Context, aggregate *contractor.Contractor) error {
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

// Get retrieves a contractor by ID.
func (r *GormContractorRepository) Get(ctx context.Context, id kernel.UUID) (*contractor.Contractor, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ContractorDTO
	if err := r.db.WithContext(ctx).Preload("Skills").First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("contractor", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllAvailable retrieves all active contractors that can take on new work.
// A contractor qualifies if they are marked available and hold no job in
// Assigned status. Jobs in Open status have no contractor yet, and jobs in
// Completed status have finished, so their contractors are free again.
//
// Example:
//
//	pool, err := repo.GetAllAvailable(ctx)
//	if err != nil {
//		return fmt.Errorf("failed to get available contractors: %w", err)
//	}
//	for _, c := range pool {
//		fmt.Printf("Available contractor: %s\n", c.Name())
//	}
func (r *GormContractorRepository) GetAllAvailable(ctx context.Context) ([]*contractor.Contractor, error) {
	var dtos []ContractorDTO
	// Join with jobs table to find contractors not tied up on a job in Assigned status
	if err := r.db.WithContext(ctx).
		Preload("Skills").
		Table("contractors").
		Select("contractors.*").
		Joins("LEFT JOIN jobs ON contractors.id = jobs.contractor_id AND jobs.status = ?", int(job.Assigned)).
		Where("jobs.contractor_id IS NULL").
		Where("contractors.active = ?", true).
		Where("contractors.available = ?", true).
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	contractors := make([]*contractor.Contractor, 0, len(dtos))
	for _, dto := range dtos {
		c, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		contractors = append(contractors, c)
	}

	return contractors, nil
}

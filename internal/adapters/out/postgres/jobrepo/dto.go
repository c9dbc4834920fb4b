// Package jobrepo provides data transfer objects and mapping functions for job persistence.
// This package implements the repository pattern for the job domain aggregate, handling
// the conversion between domain entities and database representations.
package jobrepo

import (
	"time"

	"jobmatch/internal/core/domain/model/job"
	"jobmatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// JobDTO represents the database structure for persisting job aggregates.
// Required skills live in a child table, the pickup coordinates are nullable
// columns that are only populated when the job needs a material pickup.
type JobDTO struct {
	ID              uuid.UUID     `gorm:"type:uuid;primaryKey"`
	ContractorID    *uuid.UUID    `gorm:"type:uuid;index"`
	Title           string        `gorm:"type:varchar(255);not null"`
	Budget          float64       `gorm:"type:double precision;not null"`
	MinRating       float64       `gorm:"type:double precision;not null"`
	Location        LocationDTO   `gorm:"embedded;embeddedPrefix:location_"`
	ScheduledAt     *time.Time    `gorm:"type:timestamptz"`
	DurationMinutes int           `gorm:"type:int;not null"`
	PickupRequired  bool          `gorm:"type:boolean;not null"`
	PickupLatitude  *float64      `gorm:"type:double precision"`
	PickupLongitude *float64      `gorm:"type:double precision"`
	Status          int           `gorm:"type:smallint;not null"`
	RequiredSkills  []JobSkillDTO `gorm:"foreignKey:JobID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for job entities.
// Overrides GORM's default naming convention to use "jobs" instead of "job_dtos".
func (JobDTO) TableName() string {
	return "jobs"
}

// LocationDTO represents embedded geographic coordinates within the jobs table.
// Stores latitude and longitude in decimal degrees.
type LocationDTO struct {
	Latitude  float64 `gorm:"type:double precision"`
	Longitude float64 `gorm:"type:double precision"`
}

// JobSkillDTO represents a single skill required by a job.
// The job ID and skill name together form the primary key.
type JobSkillDTO struct {
	JobID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name  string    `gorm:"type:varchar(100);primaryKey"`
}

// TableName specifies the database table name for job skills.
// Overrides GORM's default naming convention to use "job_skills" instead of "job_skill_dtos".
func (JobSkillDTO) TableName() string {
	return "job_skills"
}

// fromDomain converts a job domain aggregate to its database representation.
func fromDomain(aggregate *job.Job) JobDTO {
	jobID := aggregate.ID().Bytes()

	var contractorID *uuid.UUID
	if aggregate.Contractor() != nil {
		raw := aggregate.Contractor().Bytes()
		contractorID = &raw
	}

	var pickupLat, pickupLng *float64
	if aggregate.PickupLocation() != nil {
		lat := aggregate.PickupLocation().Latitude()
		lng := aggregate.PickupLocation().Longitude()
		pickupLat = &lat
		pickupLng = &lng
	}

	skills := make([]JobSkillDTO, 0, len(aggregate.RequiredSkills()))
	for _, skill := range aggregate.RequiredSkills() {
		skills = append(skills, JobSkillDTO{
			JobID: jobID,
			Name:  skill,
		})
	}

	return JobDTO{
		ID:           jobID,
		ContractorID: contractorID,
		Title:        aggregate.Title(),
		Budget:       aggregate.Budget(),
		MinRating:    aggregate.MinRating(),
		Location: LocationDTO{
			Latitude:  aggregate.Location().Latitude(),
			Longitude: aggregate.Location().Longitude(),
		},
		ScheduledAt:     aggregate.ScheduledAt(),
		DurationMinutes: aggregate.DurationMinutes(),
		PickupRequired:  aggregate.PickupRequired(),
		PickupLatitude:  pickupLat,
		PickupLongitude: pickupLng,
		Status:          int(aggregate.Status()),
		RequiredSkills:  skills,
	}
}

// toDomain converts a database DTO to a job domain aggregate.
// Reconstructs the complete aggregate state using RestoreJob.
func toDomain(dto JobDTO) (*job.Job, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	loc, err := kernel.NewGeoLocation(dto.Location.Latitude, dto.Location.Longitude)
	if err != nil {
		return nil, err
	}

	var contractorID *kernel.UUID
	if dto.ContractorID != nil {
		cID, contractorErr := kernel.UUIDFromBytes((*dto.ContractorID)[:])
		if contractorErr != nil {
			return nil, contractorErr
		}
		contractorID = &cID
	}

	var pickup *kernel.GeoLocation
	if dto.PickupLatitude != nil && dto.PickupLongitude != nil {
		p, pickupErr := kernel.NewGeoLocation(*dto.PickupLatitude, *dto.PickupLongitude)
		if pickupErr != nil {
			return nil, pickupErr
		}
		pickup = &p
	}

	skills := make([]string, 0, len(dto.RequiredSkills))
	for _, skill := range dto.RequiredSkills {
		skills = append(skills, skill.Name)
	}

	return job.RestoreJob(
		id,
		dto.Title,
		dto.Budget,
		skills,
		dto.MinRating,
		loc,
		dto.ScheduledAt,
		dto.DurationMinutes,
		dto.PickupRequired,
		pickup,
		job.Status(dto.Status),
		contractorID,
	)
}

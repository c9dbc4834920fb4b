// Package contractorrepo provides data transfer objects and mapping functions for contractor persistence.
// This package implements the repository pattern for the contractor domain aggregate, handling
// the conversion between domain entities and database representations.
package contractorrepo

import (
	"jobmatch/internal/core/domain/model/contractor"
	"jobmatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// ContractorDTO represents the database structure for persisting contractor aggregates.
// Maps contractor domain entities to relational database tables with skills stored
// in a child table linked by foreign key.
type ContractorDTO struct {
	ID            uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Name          string         `gorm:"type:varchar(255);not null"`
	Grade         int            `gorm:"type:smallint;not null"`
	Rating        float64        `gorm:"type:double precision;not null"`
	Active        bool           `gorm:"type:boolean;not null"`
	Available     bool           `gorm:"type:boolean;not null"`
	Location      GeoLocationDTO `gorm:"embedded;embeddedPrefix:location_"`
	EstimatedCost float64        `gorm:"type:double precision;not null"`
	Skills        []SkillDTO     `gorm:"foreignKey:ContractorID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for contractor entities.
// Overrides GORM's default naming convention to use "contractors" instead of "contractor_dtos".
func (ContractorDTO) TableName() string {
	return "contractors"
}

// GeoLocationDTO represents embedded geographic coordinates within a parent table.
// Stores latitude and longitude in decimal degrees.
type GeoLocationDTO struct {
	Latitude  float64 `gorm:"type:double precision"`
	Longitude float64 `gorm:"type:double precision"`
}

// SkillDTO represents a single skill offered by a contractor.
// The contractor ID and skill name together form the primary key, so a
// contractor can hold each skill at most once.
type SkillDTO struct {
	ContractorID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"type:varchar(100);primaryKey"`
}

// TableName specifies the database table name for contractor skills.
// Overrides GORM's default naming convention to use "contractor_skills" instead of "skill_dtos".
func (SkillDTO) TableName() string {
	return "contractor_skills"
}

// fromDomain converts a contractor domain aggregate to its database representation.
// Maps the aggregate state including its skill set.
func fromDomain(aggregate *contractor.Contractor) ContractorDTO {
	contractorID := aggregate.ID().Bytes()
	skills := make([]SkillDTO, 0, len(aggregate.Skills()))

	for _, skill := range aggregate.Skills() {
		skills = append(skills, SkillDTO{
			ContractorID: contractorID,
			Name:         skill,
		})
	}

	return ContractorDTO{
		ID:        contractorID,
		Name:      aggregate.Name(),
		Grade:     int(aggregate.Grade()),
		Rating:    aggregate.Rating(),
		Active:    aggregate.IsActive(),
		Available: aggregate.IsAvailable(),
		Location: GeoLocationDTO{
			Latitude:  aggregate.Location().Latitude(),
			Longitude: aggregate.Location().Longitude(),
		},
		EstimatedCost: aggregate.EstimatedCost(),
		Skills:        skills,
	}
}

// toDomain converts a database DTO to a contractor domain aggregate.
// Reconstructs the complete aggregate including its skill set using RestoreContractor.
func toDomain(dto ContractorDTO) (*contractor.Contractor, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	loc, err := kernel.NewGeoLocation(dto.Location.Latitude, dto.Location.Longitude)
	if err != nil {
		return nil, err
	}

	skills := make([]string, 0, len(dto.Skills))
	for _, skill := range dto.Skills {
		skills = append(skills, skill.Name)
	}

	return contractor.RestoreContractor(
		id,
		dto.Name,
		contractor.Grade(dto.Grade),
		dto.Rating,
		dto.Active,
		dto.Available,
		skills,
		loc,
		dto.EstimatedCost,
	)
}

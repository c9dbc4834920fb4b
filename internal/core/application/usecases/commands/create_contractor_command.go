package commands

import (
	"errors"

	"jobmatch/internal/core/domain/model/contractor"
	"jobmatch/internal/core/domain/model/kernel"
	"jobmatch/internal/pkg/guard"
)

var (
	ErrCreateContractorCommandIsNotConstructed = errors.New(
		"CreateContractorCommand must be created via NewCreateContractorCommand constructor",
	)
	ErrNameIsRequired  = errors.New("name is required")
	ErrRatingIsInvalid = errors.New("rating must be between 0 and 5")
)

// CreateContractorCommand represents a request to register a new contractor
// in the marketplace. Encapsulates all data needed to create a contractor
// entity ready to take work.
//
// Example:
//
//	location, _ := kernel.NewGeoLocation(40.7128, -74.0060) // New York
//	cmd, err := NewCreateContractorCommand("Ace Plumbing", "A", 4.8, []string{"plumbing"}, location)
//	if err != nil {
//	    return fmt.Errorf("invalid contractor data: %w", err)
//	}
//
//	handler := NewCreateContractorCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create contractor: %w", err)
//	}
//	fmt.Printf("Created contractor with ID: %s", cmd.ContractorID())
type CreateContractorCommand struct { //nolint:recvcheck //using for validation
	contractorID kernel.UUID
	name         string
	grade        contractor.Grade
	rating       float64
	skills       []string
	location     kernel.GeoLocation

	guard guard.ConstructorGuard
}

// NewCreateContractorCommand creates a command to register a new contractor.
// Automatically generates a unique ID for the contractor. The grade label is
// parsed leniently: an unrecognized label degrades to the unknown grade
// rather than failing the whole registration.
func NewCreateContractorCommand(
	name string,
	gradeLabel string,
	rating float64,
	skills []string,
	location kernel.GeoLocation,
) (CreateContractorCommand, error) {
	command := CreateContractorCommand{
		grade: contractor.ParseGrade(gradeLabel),
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setContractorID(kernel.NewUUID()),
		command.setName(name),
		command.setRating(rating),
		command.setLocation(location),
	); err != nil {
		return CreateContractorCommand{}, err
	}

	command.skills = skills
	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateContractorCommandIsNotConstructed if validation fails.
func (c CreateContractorCommand) Validate() error {
	return c.guard.Validate(ErrCreateContractorCommandIsNotConstructed)
}

// ContractorID returns the contractor ID from the command.
func (c CreateContractorCommand) ContractorID() kernel.UUID {
	return c.contractorID
}

// Name returns the contractor name from the command.
func (c CreateContractorCommand) Name() string {
	return c.name
}

// Grade returns the parsed contractor grade from the command.
func (c CreateContractorCommand) Grade() contractor.Grade {
	return c.grade
}

// Rating returns the contractor rating from the command.
func (c CreateContractorCommand) Rating() float64 {
	return c.rating
}

// Skills returns the declared skills from the command.
func (c CreateContractorCommand) Skills() []string {
	return c.skills
}

// Location returns the contractor base location from the command.
func (c CreateContractorCommand) Location() kernel.GeoLocation {
	return c.location
}

func (c *CreateContractorCommand) setContractorID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.contractorID = id
	return nil
}

func (c *CreateContractorCommand) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateContractorCommand) setRating(rating float64) error {
	if rating < contractor.MinRating || rating > contractor.MaxRating {
		return ErrRatingIsInvalid
	}

	c.rating = rating
	return nil
}

func (c *CreateContractorCommand) setLocation(location kernel.GeoLocation) error {
	if err := location.Validate(); err != nil {
		return err
	}

	c.location = location
	return nil
}

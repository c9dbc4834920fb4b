package contractor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobmatch/internal/core/domain/model/contractor"
	"jobmatch/internal/core/domain/model/kernel"
)

func validLocation(t *testing.T) kernel.GeoLocation {
	t.Helper()
	location, err := kernel.NewGeoLocation(51.5074, -0.1278)
	require.NoError(t, err)
	return location
}

func TestNewContractor(t *testing.T) {
	t.Run("creates active available contractor", func(t *testing.T) {
		id := kernel.NewUUID()
		location := validLocation(t)

		c, err := contractor.NewContractor(id, "Jane Doe", contractor.GradeA, 4.8,
			[]string{"blind-install", "measurement"}, location)

		require.NoError(t, err)
		assert.True(t, c.ID().IsEqual(id))
		assert.Equal(t, "Jane Doe", c.Name())
		assert.Equal(t, contractor.GradeA, c.Grade())
		assert.InDelta(t, 4.8, c.Rating(), 1e-9)
		assert.True(t, c.IsActive())
		assert.True(t, c.IsAvailable())
		assert.Zero(t, c.EstimatedCost())
		assert.NoError(t, c.Validate())
	})

	t.Run("fails with empty name", func(t *testing.T) {
		_, err := contractor.NewContractor(kernel.NewUUID(), "", contractor.GradeB, 4.0,
			nil, validLocation(t))

		require.Error(t, err)
		assert.ErrorIs(t, err, contractor.ErrNameIsRequired)
	})

	t.Run("fails with rating above five", func(t *testing.T) {
		_, err := contractor.NewContractor(kernel.NewUUID(), "Jane", contractor.GradeB, 5.1,
			nil, validLocation(t))

		require.Error(t, err)
	})

	t.Run("fails with negative rating", func(t *testing.T) {
		_, err := contractor.NewContractor(kernel.NewUUID(), "Jane", contractor.GradeB, -0.1,
			nil, validLocation(t))

		require.Error(t, err)
	})

	t.Run("fails with unconstructed location", func(t *testing.T) {
		var location kernel.GeoLocation
		_, err := contractor.NewContractor(kernel.NewUUID(), "Jane", contractor.GradeB, 4.0,
			nil, location)

		require.Error(t, err)
	})

	t.Run("allows unknown grade", func(t *testing.T) {
		c, err := contractor.NewContractor(kernel.NewUUID(), "Jane", contractor.GradeUnknown, 4.0,
			nil, validLocation(t))

		require.NoError(t, err)
		assert.Equal(t, contractor.GradeUnknown, c.Grade())
	})

	t.Run("aggregates multiple validation errors", func(t *testing.T) {
		var location kernel.GeoLocation
		_, err := contractor.NewContractor(kernel.UUID{}, "", contractor.GradeA, 9.9, nil, location)

		require.Error(t, err)
		assert.ErrorIs(t, err, contractor.ErrNameIsRequired)
	})
}

func TestRestoreContractor(t *testing.T) {
	t.Run("restores persisted state", func(t *testing.T) {
		id := kernel.NewUUID()

		c, err := contractor.RestoreContractor(id, "Bob", contractor.GradeC, 3.5,
			false, false, []string{"painting"}, validLocation(t), 120.50)

		require.NoError(t, err)
		assert.False(t, c.IsActive())
		assert.False(t, c.IsAvailable())
		assert.InDelta(t, 120.50, c.EstimatedCost(), 1e-9)
		assert.NoError(t, c.Validate())
	})

	t.Run("fails with negative estimated cost", func(t *testing.T) {
		_, err := contractor.RestoreContractor(kernel.NewUUID(), "Bob", contractor.GradeC, 3.5,
			true, true, nil, validLocation(t), -1)

		require.Error(t, err)
	})
}

func TestContractor_Validate(t *testing.T) {
	t.Run("nil contractor is invalid", func(t *testing.T) {
		var c *contractor.Contractor
		assert.ErrorIs(t, c.Validate(), contractor.ErrContractorIsNotConstructed)
	})

	t.Run("zero value contractor is invalid", func(t *testing.T) {
		c := &contractor.Contractor{}
		assert.ErrorIs(t, c.Validate(), contractor.ErrContractorIsNotConstructed)
	})
}

func TestContractor_Skills(t *testing.T) {
	t.Run("skills are normalized and deduplicated", func(t *testing.T) {
		c, err := contractor.NewContractor(kernel.NewUUID(), "Jane", contractor.GradeA, 4.5,
			[]string{"Blind-Install", " blind-install ", "", "Measurement"}, validLocation(t))

		require.NoError(t, err)
		assert.Equal(t, []string{"blind-install", "measurement"}, c.Skills())
	})

	t.Run("HasSkill matches case-insensitively", func(t *testing.T) {
		c, _ := contractor.NewContractor(kernel.NewUUID(), "Jane", contractor.GradeA, 4.5,
			[]string{"blind-install"}, validLocation(t))

		assert.True(t, c.HasSkill("BLIND-INSTALL"))
		assert.False(t, c.HasSkill("plumbing"))
	})

	t.Run("HasAllSkills with empty requirement is always true", func(t *testing.T) {
		c, _ := contractor.NewContractor(kernel.NewUUID(), "Jane", contractor.GradeA, 4.5,
			nil, validLocation(t))

		assert.True(t, c.HasAllSkills(nil))
		assert.True(t, c.HasAllSkills([]string{}))
	})

	t.Run("HasAllSkills requires full coverage", func(t *testing.T) {
		c, _ := contractor.NewContractor(kernel.NewUUID(), "Jane", contractor.GradeA, 4.5,
			[]string{"blind-install", "measurement"}, validLocation(t))

		assert.True(t, c.HasAllSkills([]string{"blind-install"}))
		assert.True(t, c.HasAllSkills([]string{"blind-install", "measurement"}))
		assert.False(t, c.HasAllSkills([]string{"blind-install", "plumbing"}))
	})

	t.Run("mutating the returned slice does not affect the aggregate", func(t *testing.T) {
		c, _ := contractor.NewContractor(kernel.NewUUID(), "Jane", contractor.GradeA, 4.5,
			[]string{"blind-install"}, validLocation(t))

		skills := c.Skills()
		skills[0] = "mutated"

		assert.True(t, c.HasSkill("blind-install"))
	})
}

func TestContractor_AvailabilityTransitions(t *testing.T) {
	c, _ := contractor.NewContractor(kernel.NewUUID(), "Jane", contractor.GradeA, 4.5,
		nil, validLocation(t))

	c.MarkUnavailable()
	assert.False(t, c.IsAvailable())

	c.MarkAvailable()
	assert.True(t, c.IsAvailable())

	c.Deactivate()
	assert.False(t, c.IsActive())
	assert.True(t, c.IsAvailable(), "availability is independent of account state")

	c.Activate()
	assert.True(t, c.IsActive())
}

func TestContractor_IsEqual(t *testing.T) {
	id := kernel.NewUUID()
	location, _ := kernel.NewGeoLocation(1, 1)

	first, _ := contractor.NewContractor(id, "Jane", contractor.GradeA, 4.5, nil, location)
	second, _ := contractor.NewContractor(id, "Different Name", contractor.GradeD, 1.0, nil, location)
	third, _ := contractor.NewContractor(kernel.NewUUID(), "Jane", contractor.GradeA, 4.5, nil, location)

	assert.True(t, first.IsEqual(second), "same ID means equal")
	assert.False(t, first.IsEqual(third))
	assert.False(t, first.IsEqual(nil))
}

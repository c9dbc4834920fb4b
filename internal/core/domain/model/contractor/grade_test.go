package contractor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"jobmatch/internal/core/domain/model/contractor"
)

func TestParseGrade(t *testing.T) {
	tests := []struct {
		name  string
		label string
		want  contractor.Grade
	}{
		{name: "upper case A", label: "A", want: contractor.GradeA},
		{name: "lower case b", label: "b", want: contractor.GradeB},
		{name: "padded label", label: " C ", want: contractor.GradeC},
		{name: "grade D", label: "D", want: contractor.GradeD},
		{name: "unknown label", label: "X", want: contractor.GradeUnknown},
		{name: "empty label", label: "", want: contractor.GradeUnknown},
		{name: "multi-character label", label: "AA", want: contractor.GradeUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, contractor.ParseGrade(tt.label))
		})
	}
}

func TestGrade_Rank(t *testing.T) {
	t.Run("ranks form a strict total order best to worst", func(t *testing.T) {
		assert.Less(t, contractor.GradeA.Rank(), contractor.GradeB.Rank())
		assert.Less(t, contractor.GradeB.Rank(), contractor.GradeC.Rank())
		assert.Less(t, contractor.GradeC.Rank(), contractor.GradeD.Rank())
	})

	t.Run("unknown grade ranks worse than D", func(t *testing.T) {
		assert.Greater(t, contractor.GradeUnknown.Rank(), contractor.GradeD.Rank())
	})

	t.Run("out of range value ranks like unknown", func(t *testing.T) {
		assert.Equal(t, contractor.GradeUnknown.Rank(), contractor.Grade(42).Rank())
	})
}

func TestGrade_BetterThan(t *testing.T) {
	assert.True(t, contractor.GradeA.BetterThan(contractor.GradeB))
	assert.False(t, contractor.GradeD.BetterThan(contractor.GradeA))
	assert.False(t, contractor.GradeA.BetterThan(contractor.GradeA))
	assert.True(t, contractor.GradeD.BetterThan(contractor.GradeUnknown))
}

func TestGrade_String(t *testing.T) {
	assert.Equal(t, "A", contractor.GradeA.String())
	assert.Equal(t, "D", contractor.GradeD.String())
	assert.Equal(t, "Unknown", contractor.GradeUnknown.String())
	assert.Equal(t, "Unknown", contractor.Grade(42).String())
}

func TestGrade_IsKnown(t *testing.T) {
	assert.True(t, contractor.GradeA.IsKnown())
	assert.True(t, contractor.GradeD.IsKnown())
	assert.False(t, contractor.GradeUnknown.IsKnown())
}

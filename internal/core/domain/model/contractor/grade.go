package contractor

import "strings"

// Grade represents the ordinal quality tier assigned to a contractor.
// Grades are totally ordered from A (best) to D (worst); an unknown or
// unspecified grade is valid but always ranks below every known grade.
//
// Grade is a value object used both for sorting candidates and as a
// scoring input. Parsing never fails: labels outside A..D degrade
// gracefully to GradeUnknown instead of raising an error.
type Grade int

const (
	// GradeUnknown represents a missing or unrecognized grade label.
	// This value (0) also catches uninitialized Grade values. It is valid
	// but ranks worse than every known grade.
	GradeUnknown Grade = iota

	// GradeA is the best contractor tier.
	GradeA

	// GradeB is the second tier.
	GradeB

	// GradeC is the third tier.
	GradeC

	// GradeD is the worst known tier.
	GradeD
)

// worstKnownRank is the rank of GradeD; GradeUnknown ranks one below it.
const worstKnownRank = 4

// getGradeStrings returns a map of Grade values to their string labels.
func getGradeStrings() map[Grade]string {
	return map[Grade]string{
		GradeUnknown: "Unknown",
		GradeA:       "A",
		GradeB:       "B",
		GradeC:       "C",
		GradeD:       "D",
	}
}

// getGradeRanks returns a map of known Grade values to their rank,
// where a lower rank is strictly better.
func getGradeRanks() map[Grade]int {
	//nolint:exhaustive // GradeUnknown is intentionally excluded; it ranks below every known grade
	return map[Grade]int{
		GradeA: 1,
		GradeB: 2,
		GradeC: 3,
		GradeD: 4,
	}
}

// ParseGrade converts a grade label into a Grade value.
// Matching is case-insensitive and ignores surrounding whitespace.
// Unknown labels return GradeUnknown rather than an error, so a
// contractor with a malformed grade still participates in matching
// at the lowest priority.
//
// Example:
//
//	contractor.ParseGrade("A")  // GradeA
//	contractor.ParseGrade(" b") // GradeB
//	contractor.ParseGrade("X")  // GradeUnknown
func ParseGrade(label string) Grade {
	switch strings.ToUpper(strings.TrimSpace(label)) {
	case "A":
		return GradeA
	case "B":
		return GradeB
	case "C":
		return GradeC
	case "D":
		return GradeD
	default:
		return GradeUnknown
	}
}

// Rank returns the total-order position of the grade where a lower number
// is strictly better: A=1, B=2, C=3, D=4. GradeUnknown (and any other
// out-of-range value) ranks one position below the worst known grade.
//
// Rank is pure and deterministic; it is used both as a sort key and as a
// scoring input.
func (g Grade) Rank() int {
	if rank, ok := getGradeRanks()[g]; ok {
		return rank
	}
	return worstKnownRank + 1
}

// IsKnown reports whether the grade is one of the recognized tiers A..D.
func (g Grade) IsKnown() bool {
	_, ok := getGradeRanks()[g]
	return ok
}

// BetterThan reports whether this grade strictly outranks another.
func (g Grade) BetterThan(other Grade) bool {
	return g.Rank() < other.Rank()
}

// String returns the grade label.
//
// Returns:
//   - "A", "B", "C", or "D" for known grades
//   - "Unknown" for GradeUnknown or any invalid value
//
// This method implements the fmt.Stringer interface and is safe
// to call on any Grade value.
func (g Grade) String() string {
	if str, ok := getGradeStrings()[g]; ok {
		return str
	}
	return "Unknown"
}

package services

import (
	"jobmatch/internal/core/domain/model/contractor"
	"jobmatch/internal/core/domain/model/job"
	"jobmatch/internal/pkg/errs"
)

// Candidate is a contractor that passed eligibility filtering for a job,
// enriched with the measurements the ranking stage works on.
type Candidate struct {
	// Contractor is the eligible contractor.
	Contractor *contractor.Contractor

	// DistanceKm is the great-circle distance from the contractor to the
	// job site.
	DistanceKm float64

	// CompositeScore is the weighted quality score, filled in by the
	// scorer after filtering. Higher is better.
	CompositeScore float64

	// Rank is the 1-based position in the final ranked list, filled in
	// after sorting.
	Rank int
}

// CandidateFilter narrows a contractor pool to the contractors eligible
// for a job: active, available, skilled for the work, rated at or above
// the floor, and within travel range.
type CandidateFilter struct{}

// NewCandidateFilter creates a CandidateFilter.
func NewCandidateFilter() CandidateFilter {
	return CandidateFilter{}
}

// Filter returns the eligible candidates for aJob from the pool, each with
// its measured distance to the job site. Filtering alone never errors on
// an empty result; an empty slice means nobody qualified. An invalid
// contractor or an unusable coordinate in the pool fails the whole call
// rather than being skipped silently.
func (f CandidateFilter) Filter(
	pool []*contractor.Contractor,
	aJob *job.Job,
	options AssignmentOptions,
) ([]Candidate, error) {
	if err := aJob.Validate(); err != nil {
		return nil, err
	}
	if err := options.Validate(); err != nil {
		return nil, err
	}

	candidates := make([]Candidate, 0, len(pool))
	for _, aContractor := range pool {
		eligible, distanceKm, err := f.match(aContractor, aJob, options)
		if err != nil {
			return nil, err
		}
		if !eligible {
			continue
		}

		candidates = append(candidates, Candidate{
			Contractor: aContractor,
			DistanceKm: distanceKm,
		})
	}

	return candidates, nil
}

// MatchJob reports whether a single contractor is eligible for a job under
// the default options. It is the same test Filter applies to the pool,
// exposed for one-off checks.
func (f CandidateFilter) MatchJob(aContractor *contractor.Contractor, aJob *job.Job) (bool, error) {
	if err := aJob.Validate(); err != nil {
		return false, err
	}

	eligible, _, err := f.match(aContractor, aJob, DefaultAssignmentOptions())
	return eligible, err
}

// match applies the eligibility rules to one contractor and measures the
// distance to the job site. The rating floor is the stricter of the
// job's own minimum and the options' minimum.
func (f CandidateFilter) match(
	aContractor *contractor.Contractor,
	aJob *job.Job,
	options AssignmentOptions,
) (bool, float64, error) {
	if err := aContractor.Validate(); err != nil {
		return false, 0, errs.NewValueIsInvalidErrorWithCause("contractor", err)
	}

	if !aContractor.IsActive() || !aContractor.IsAvailable() {
		return false, 0, nil
	}

	if !aContractor.HasAllSkills(aJob.RequiredSkills()) {
		return false, 0, nil
	}

	minRating := aJob.MinRating()
	if options.MinRating > minRating {
		minRating = options.MinRating
	}
	if aContractor.Rating() < minRating {
		return false, 0, nil
	}

	distanceKm, err := aContractor.Location().DistanceTo(aJob.Location())
	if err != nil {
		return false, 0, err
	}
	if distanceKm > options.MaxDistanceKm {
		return false, 0, nil
	}

	return true, distanceKm, nil
}

package services

import (
	"cmp"
	"fmt"
	"slices"
	"time"

	"jobmatch/internal/core/domain/model/contractor"
	"jobmatch/internal/core/domain/model/job"
	"jobmatch/internal/core/domain/model/kernel"
)

// Assignment is a materialized pairing of a contractor and a job,
// produced when auto-assignment is requested or composed by the caller
// from a ranked candidate.
type Assignment struct {
	ContractorID             kernel.UUID
	ContractorName           string
	JobID                    kernel.UUID
	AssignedAt               time.Time
	EstimatedCost            float64
	EstimatedDurationMinutes int
	Note                     string
}

// AssignmentStats summarizes a ranked candidate list.
type AssignmentStats struct {
	// Count is the number of ranked candidates.
	Count int

	// AverageRating is the mean rating across the ranked candidates.
	AverageRating float64

	// AverageDistanceKm is the mean distance to the job site across the
	// ranked candidates.
	AverageDistanceKm float64

	// BestGrade is the best grade present among the ranked candidates.
	BestGrade contractor.Grade
}

// AssignmentResult is the outcome of a ranked assignment request. An
// empty candidate pool is a normal business outcome reported through
// Success and Message, not an error.
type AssignmentResult struct {
	// Success reports whether at least one eligible candidate was found.
	Success bool

	// Message describes the outcome in human-readable form.
	Message string

	// Candidates is the ranked list, best first, capped by the options.
	Candidates []Candidate

	// Assignment is the materialized pairing when auto-assignment was
	// requested and a candidate was available, nil otherwise.
	Assignment *Assignment

	// Stats summarizes the ranked list. Zero value when no candidates.
	Stats AssignmentStats
}

// AssignmentSelector ranks eligible contractors for a job and picks the
// best one. Selection is deterministic: identical inputs always produce
// the same ranking and the same winner, because every comparison chain
// terminates at the contractor's unique ID.
type AssignmentSelector struct {
	filter CandidateFilter
	scorer CompositeScorer
	now    func() time.Time
}

// NewAssignmentSelector creates an AssignmentSelector.
func NewAssignmentSelector() AssignmentSelector {
	return AssignmentSelector{
		filter: NewCandidateFilter(),
		scorer: NewCompositeScorer(),
		now:    time.Now,
	}
}

// AssignJob picks the best contractor for a job under the default
// options, preferring grade, then rating, then proximity, and assigns
// the job to the winner. A nil contractor with a nil error means nobody
// in the pool qualified; the job is left untouched.
func (s AssignmentSelector) AssignJob(
	aJob *job.Job,
	pool []*contractor.Contractor,
) (*contractor.Contractor, error) {
	if err := aJob.Validate(); err != nil {
		return nil, err
	}
	if err := aJob.ValidateAssign(); err != nil {
		return nil, err
	}

	candidates, err := s.filter.Filter(pool, aJob, DefaultAssignmentOptions())
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, nil
	}

	best := slices.MinFunc(candidates, func(a, b Candidate) int {
		return cmp.Or(
			cmp.Compare(a.Contractor.Grade().Rank(), b.Contractor.Grade().Rank()),
			cmp.Compare(b.Contractor.Rating(), a.Contractor.Rating()),
			cmp.Compare(a.DistanceKm, b.DistanceKm),
			cmp.Compare(a.Contractor.ID().String(), b.Contractor.ID().String()),
		)
	})

	if err := aJob.Assign(best.Contractor.ID()); err != nil {
		return nil, err
	}
	best.Contractor.MarkUnavailable()

	return best.Contractor, nil
}

// AssignContractor filters, scores, and ranks the pool for a job under
// the given options. The ranked list is capped by MaxCandidates; when
// AutoAssign is set the top-ranked candidate is materialized into a
// concrete Assignment.
func (s AssignmentSelector) AssignContractor(
	pool []*contractor.Contractor,
	aJob *job.Job,
	options AssignmentOptions,
) (AssignmentResult, error) {
	if err := options.Validate(); err != nil {
		return AssignmentResult{}, err
	}

	candidates, err := s.filter.Filter(pool, aJob, options)
	if err != nil {
		return AssignmentResult{}, err
	}

	if len(candidates) == 0 {
		return AssignmentResult{
			Success: false,
			Message: fmt.Sprintf("no eligible contractors for job %q", aJob.Title()),
		}, nil
	}

	for i := range candidates {
		candidates[i].CompositeScore = s.scorer.Score(candidates[i], options)
	}

	slices.SortFunc(candidates, rankComparator(options.Priority))

	if limit := options.maxCandidatesOrDefault(); len(candidates) > limit {
		candidates = candidates[:limit]
	}
	for i := range candidates {
		candidates[i].Rank = i + 1
	}

	result := AssignmentResult{
		Success:    true,
		Message:    fmt.Sprintf("ranked %d candidate(s) for job %q", len(candidates), aJob.Title()),
		Candidates: candidates,
		Stats:      summarize(candidates),
	}

	if options.AutoAssign {
		result.Assignment = s.materialize(candidates[0], aJob)
	}

	return result, nil
}

// materialize builds a concrete Assignment from the top-ranked candidate.
func (s AssignmentSelector) materialize(top Candidate, aJob *job.Job) *Assignment {
	return &Assignment{
		ContractorID:             top.Contractor.ID(),
		ContractorName:           top.Contractor.Name(),
		JobID:                    aJob.ID(),
		AssignedAt:               s.now(),
		EstimatedCost:            top.Contractor.EstimatedCost(),
		EstimatedDurationMinutes: aJob.DurationMinutes(),
		Note: fmt.Sprintf("auto-assigned: best of %s priority ranking",
			top.Contractor.Grade()),
	}
}

// rankComparator returns the full comparison chain for a priority mode:
// the mode's primary key first, then composite score, rating, distance,
// and finally the contractor ID so equal candidates still order
// deterministically.
func rankComparator(priority Priority) func(a, b Candidate) int {
	primary := getPrimaryComparators()[priority]

	return func(a, b Candidate) int {
		return cmp.Or(
			primary(a, b),
			cmp.Compare(b.CompositeScore, a.CompositeScore),
			cmp.Compare(b.Contractor.Rating(), a.Contractor.Rating()),
			cmp.Compare(a.DistanceKm, b.DistanceKm),
			cmp.Compare(a.Contractor.ID().String(), b.Contractor.ID().String()),
		)
	}
}

// getPrimaryComparators returns a map of Priority values to their primary
// sort comparators. Better candidates compare as smaller.
func getPrimaryComparators() map[Priority]func(a, b Candidate) int {
	return map[Priority]func(a, b Candidate) int{
		PriorityComposite: func(a, b Candidate) int {
			return cmp.Compare(b.CompositeScore, a.CompositeScore)
		},
		PriorityGrade: func(a, b Candidate) int {
			return cmp.Compare(a.Contractor.Grade().Rank(), b.Contractor.Grade().Rank())
		},
		PriorityDistance: func(a, b Candidate) int {
			return cmp.Compare(a.DistanceKm, b.DistanceKm)
		},
		PriorityRating: func(a, b Candidate) int {
			return cmp.Compare(b.Contractor.Rating(), a.Contractor.Rating())
		},
	}
}

// summarize computes aggregate stats over a ranked candidate list.
func summarize(candidates []Candidate) AssignmentStats {
	if len(candidates) == 0 {
		return AssignmentStats{}
	}

	var ratingSum, distanceSum float64
	bestGrade := candidates[0].Contractor.Grade()
	for _, candidate := range candidates {
		ratingSum += candidate.Contractor.Rating()
		distanceSum += candidate.DistanceKm
		if candidate.Contractor.Grade().BetterThan(bestGrade) {
			bestGrade = candidate.Contractor.Grade()
		}
	}

	return AssignmentStats{
		Count:             len(candidates),
		AverageRating:     ratingSum / float64(len(candidates)),
		AverageDistanceKm: distanceSum / float64(len(candidates)),
		BestGrade:         bestGrade,
	}
}

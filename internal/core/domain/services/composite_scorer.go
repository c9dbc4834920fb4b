package services

import (
	"jobmatch/internal/core/domain/model/contractor"
)

const (
	gradeWeight     = 0.5
	ratingWeight    = 0.3
	proximityWeight = 0.2
)

// CompositeScorer blends grade, rating, and proximity into a single
// quality score in [0, 1]. Grade dominates, rating refines, proximity
// breaks near-ties between contractors of comparable quality.
type CompositeScorer struct{}

// NewCompositeScorer creates a CompositeScorer.
func NewCompositeScorer() CompositeScorer {
	return CompositeScorer{}
}

// Score computes the weighted composite score for a filtered candidate.
// The candidate's distance must already be measured; the options supply
// the distance ceiling the proximity component is normalized against.
func (s CompositeScorer) Score(candidate Candidate, options AssignmentOptions) float64 {
	grade := s.gradeComponent(candidate.Contractor.Grade())
	rating := candidate.Contractor.Rating() / contractor.MaxRating
	proximity := s.proximityComponent(candidate.DistanceKm, options.MaxDistanceKm)

	return gradeWeight*grade + ratingWeight*rating + proximityWeight*proximity
}

// gradeComponent maps a grade to [0, 1]: the best rank scores 1, the
// unknown rank scores 0, letters in between fall linearly.
func (s CompositeScorer) gradeComponent(grade contractor.Grade) float64 {
	worstRank := contractor.GradeUnknown.Rank()
	return float64(worstRank-grade.Rank()) / float64(worstRank-1)
}

// proximityComponent maps a distance to [0, 1]: on top of the job site
// scores 1, at the distance ceiling scores 0. A zero ceiling cannot
// reach here since filtering excludes everyone first.
func (s CompositeScorer) proximityComponent(distanceKm float64, maxDistanceKm float64) float64 {
	if maxDistanceKm <= 0 {
		return 0
	}

	proximity := 1 - distanceKm/maxDistanceKm
	if proximity < 0 {
		return 0
	}
	return proximity
}

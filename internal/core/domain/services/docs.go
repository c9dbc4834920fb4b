// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the job marketplace. It implements complex
// business workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - CandidateFilter: Eligibility filtering of contractors for a job
//   - CompositeScorer: Weighted scoring of filtered candidates
//   - AssignmentSelector: Deterministic ranking and selection of the best contractor
//   - AssignmentValidator: Consistency checks on a proposed assignment
//   - ScheduleOptimizer: Greedy nearest-neighbor ordering of a contractor's stops
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services

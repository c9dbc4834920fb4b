// Package job provides domain entities and business logic for job management
// in the jobmatch system. It implements the Job aggregate root with lifecycle
// management and state transitions.
//
// The package includes:
//   - Job: The aggregate root that manages job identity, matching constraints,
//     optional schedule and pickup details, and lifecycle
//   - Status: A state machine that enforces valid job status transitions
//
// Key business rules:
//   - Jobs must have a valid unique identifier, title, and location
//   - Job status follows a defined workflow: Open -> Assigned -> Completed
//   - Jobs can be reassigned while in the Assigned status
//   - Jobs can only be completed when in the Assigned status
//   - A job requiring pickup must carry a valid pickup location
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package job

// Package contractor provides domain entities and business logic for service
// provider management in the jobmatch system. It implements the Contractor
// aggregate root with qualification data and work-acceptance state.
//
// The package includes:
//   - Contractor: The aggregate root that manages contractor identity, grade,
//     rating, skills, location, and availability
//   - Grade: A totally ordered quality tier (A best .. D worst) with graceful
//     handling of unknown labels
//
// Key business rules:
//   - Contractors must have a valid unique identifier, name, and location
//   - Ratings are bounded to [0, 5]
//   - Unknown grades are valid but rank below every known grade
//   - Only active and available contractors participate in job matching
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package contractor

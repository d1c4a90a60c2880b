// Package kernel provides core domain primitives for the marketplace system.
// It implements fundamental building blocks following Domain-Driven Design
// principles that are used throughout the domain model.
//
// The package includes:
//   - UUID: A value object for aggregate identifiers with validation and comparison capabilities
//   - Date: A value object for one simulated calendar day, the unit the marketplace clock runs on
//
// These primitives enforce domain invariants and validation rules, ensuring
// that domain objects are always in a valid state. They are immutable and
// safe for concurrent reads.
package kernel

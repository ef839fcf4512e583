// Package core provides the fundamental interfaces and types shared across
// the engine: entity identity and the Ref identifier used to name cards,
// effects, and listeners without magic strings.
//
// Scope:
//   - Entity interface: basic identity contract (GetID, GetType)
//   - Ref: a validated, parseable module:type:value identifier
//   - No game logic, stats, or behaviors — those live in the battle package.
package core

// Package conditions tracks turn- and round-scoped status on entities
// (vulnerable, weak, frail) without defining what any status
// does mechanically — that belongs to the battle package's damage
// pipeline and effect interpreter.
//
// Scope:
//   - Duration: when a tracked status expires (permanent, N turns, N rounds,
//     until a matching event)
//   - Condition: a named status with a duration, attached to an entity
//   - Manager: per-entity condition storage with expiration sweeping
//
// Non-Goals:
//   - What a condition does to damage, block, or card play: that's the
//     battle package's concern
//   - Persistence or serialization of condition state
package conditions

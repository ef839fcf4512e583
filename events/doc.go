// Package events provides a synchronous, priority-ordered event bus used to
// let battle components react to things happening elsewhere in the engine
// (a card being played, damage landing, a turn starting) without those
// components depending on each other directly.
//
// Scope:
//   - Event/Context/Modifier interfaces
//   - GameEvent/EventContext, the standard implementations
//   - Bus: priority-ordered, synchronous pub/sub with cascade-depth limiting
//   - No game-specific event types: those are defined in the battle package
//
// Non-Goals:
//   - Event persistence or replay
//   - Network transport or cross-process delivery
//   - Asynchronous delivery: handlers run on the publishing goroutine
package events

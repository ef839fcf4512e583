// Package resources provides small, reusable counters for tracking
// per-card and per-turn usage counts (Rampage's per-source play count)
// without encoding what the count represents.
//
// Scope:
//   - Counter: a bounded or unbounded count with increment/decrement/reset
//
// Non-Goals:
//   - What a counter tracks or what happens at its limit: that's the
//     listener or effect's concern
package resources

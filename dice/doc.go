// Package dice provides the sources of randomness a battle engine needs
// without implementing any game-specific rules: rolling individual dice,
// and sampling from a weighted set of discrete outcomes.
//
// Scope:
//   - Roller: 1-to-N die rolls, backed by crypto/rand (CryptoRoller) or a
//     reproducible PCG sequence (SeededRoller)
//   - Sampler: weighted discrete sampling over named outcomes, used for
//     enemy move selection
//
// Non-Goals:
//   - Dice notation parsing ("3d6+2"): no battle mechanic here expresses
//     itself that way
//   - Modifier-at-roll-time arithmetic: bonuses and penalties are applied
//     by the caller, not baked into a roll result
//   - Roll result interpretation: critical hits, thresholds, and success
//     counting are the caller's concern
//
// The dice package provides the randomness foundation but makes no
// assumptions about how rolls or samples are used.
package dice

// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package dice

import (
	"fmt"
	"math/rand/v2"
)

// SeededRoller implements Roller using a PCG generator seeded from a fixed
// seed pair, making every roll it produces reproducible: the same seed and
// the same sequence of calls always yields the same rolls. Unlike
// CryptoRoller, SeededRoller is NOT safe for concurrent use — a battle's
// roller is owned by a single goroutine.
type SeededRoller struct {
	rng *rand.Rand
}

// NewSeededRoller creates a SeededRoller whose output is fully determined by
// seed.
func NewSeededRoller(seed uint64) *SeededRoller {
	return &SeededRoller{rng: rand.New(rand.NewPCG(seed, seed))}
}

// Roll returns a deterministic pseudo-random number from 1 to size
// (inclusive). Returns an error if size <= 0.
func (s *SeededRoller) Roll(size int) (int, error) {
	if size <= 0 {
		return 0, fmt.Errorf("dice: invalid die size %d", size)
	}
	return s.rng.IntN(size) + 1, nil
}

// RollN rolls count dice of the given size, consuming the generator in
// order so replays with the same seed reproduce the exact same sequence.
func (s *SeededRoller) RollN(count, size int) ([]int, error) {
	if size <= 0 {
		return nil, fmt.Errorf("dice: invalid die size %d", size)
	}
	if count < 0 {
		return nil, fmt.Errorf("dice: invalid die count %d", count)
	}

	results := make([]int, count)
	for i := 0; i < count; i++ {
		roll, err := s.Roll(size)
		if err != nil {
			return nil, err
		}
		results[i] = roll
	}
	return results, nil
}

// IntN returns a deterministic pseudo-random integer in [0, n), without
// going through the 1-indexed Roll API.
func (s *SeededRoller) IntN(n int) int {
	return s.rng.IntN(n)
}

// Float64 returns a deterministic pseudo-random float64 in [0, 1).
func (s *SeededRoller) Float64() float64 {
	return s.rng.Float64()
}

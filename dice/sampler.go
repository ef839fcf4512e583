// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package dice

import "sort"

// weightedSource is the subset of *SeededRoller a Sampler needs. Kept as an
// interface so tests can supply a fixed-sequence stub.
type weightedSource interface {
	Float64() float64
}

// Sampler draws from a discrete weighted distribution: enemy AI move
// selection ("40% attack, 30% buff, 30% defend") and any other
// pick-one-of-N-with-weights decision. It mirrors a categorical
// distribution: outcome i is a name, weighted by weights[i].
type Sampler struct {
	outcomes    []string
	cumulative  []float64
	totalWeight float64
}

// NewSampler builds a Sampler from parallel outcome/weight slices. Weights
// need not sum to 1; they are normalized internally. Panics if outcomes and
// weights differ in length, if either is empty, or if any weight is <= 0.
func NewSampler(outcomes []string, weights []float64) *Sampler {
	if len(outcomes) == 0 {
		panic("dice: sampler requires at least one outcome")
	}
	if len(outcomes) != len(weights) {
		panic("dice: sampler outcomes and weights must be the same length")
	}

	cumulative := make([]float64, len(weights))
	running := 0.0
	for i, w := range weights {
		if w <= 0 {
			panic("dice: sampler weights must be positive")
		}
		running += w
		cumulative[i] = running
	}

	return &Sampler{
		outcomes:    append([]string(nil), outcomes...),
		cumulative:  cumulative,
		totalWeight: running,
	}
}

// NewUniformSampler builds a Sampler that weights every outcome equally.
func NewUniformSampler(outcomes []string) *Sampler {
	weights := make([]float64, len(outcomes))
	for i := range weights {
		weights[i] = 1
	}
	return NewSampler(outcomes, weights)
}

// Sample draws one outcome using src as the source of randomness.
func (s *Sampler) Sample(src weightedSource) string {
	target := src.Float64() * s.totalWeight

	idx := sort.Search(len(s.cumulative), func(i int) bool {
		return s.cumulative[i] > target
	})
	if idx == len(s.cumulative) {
		idx = len(s.cumulative) - 1
	}
	return s.outcomes[idx]
}

// Probabilities returns each outcome's normalized selection probability,
// keyed by outcome name.
func (s *Sampler) Probabilities() map[string]float64 {
	probs := make(map[string]float64, len(s.outcomes))
	prev := 0.0
	for i, outcome := range s.outcomes {
		probs[outcome] = (s.cumulative[i] - prev) / s.totalWeight
		prev = s.cumulative[i]
	}
	return probs
}

// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package dice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedSource struct{ values []float64 }

func (f *fixedSource) Float64() float64 {
	v := f.values[0]
	f.values = f.values[1:]
	return v
}

func TestSampler_Sample(t *testing.T) {
	s := NewSampler([]string{"attack", "buff", "defend"}, []float64{0.5, 0.3, 0.2})

	src := &fixedSource{values: []float64{0.0, 0.49, 0.5, 0.79, 0.8, 0.99}}
	assert.Equal(t, "attack", s.Sample(src))
	assert.Equal(t, "attack", s.Sample(src))
	assert.Equal(t, "buff", s.Sample(src))
	assert.Equal(t, "buff", s.Sample(src))
	assert.Equal(t, "defend", s.Sample(src))
	assert.Equal(t, "defend", s.Sample(src))
}

func TestSampler_Probabilities(t *testing.T) {
	s := NewSampler([]string{"a", "b"}, []float64{1, 3})
	probs := s.Probabilities()
	assert.InDelta(t, 0.25, probs["a"], 0.0001)
	assert.InDelta(t, 0.75, probs["b"], 0.0001)
}

func TestNewUniformSampler(t *testing.T) {
	s := NewUniformSampler([]string{"x", "y", "z"})
	probs := s.Probabilities()
	for _, outcome := range []string{"x", "y", "z"} {
		assert.InDelta(t, 1.0/3.0, probs[outcome], 0.0001)
	}
}

func TestNewSampler_PanicsOnMismatchedLengths(t *testing.T) {
	assert.Panics(t, func() {
		NewSampler([]string{"a", "b"}, []float64{1})
	})
}

func TestNewSampler_PanicsOnEmpty(t *testing.T) {
	assert.Panics(t, func() {
		NewSampler(nil, nil)
	})
}

func TestNewSampler_PanicsOnNonPositiveWeight(t *testing.T) {
	assert.Panics(t, func() {
		NewSampler([]string{"a", "b"}, []float64{1, 0})
	})
}

func TestSampler_DeterministicWithSeededRoller(t *testing.T) {
	s := NewSampler([]string{"attack", "defend"}, []float64{1, 1})

	a := NewSeededRoller(7)
	b := NewSeededRoller(7)

	for i := 0; i < 20; i++ {
		outA := s.Sample(a)
		outB := s.Sample(b)
		require.Equal(t, outA, outB, "same seed must produce identical sample sequence")
	}
}

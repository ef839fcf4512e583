// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package conditions_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/castlekeep/spireforge/mechanics/conditions"
)

func TestNew(t *testing.T) {
	c := conditions.New("vulnerable", "enemy-1", 2, conditions.NewTurnsDuration(2, "enemy-1"))

	assert.Equal(t, "vulnerable", c.Name)
	assert.Equal(t, "enemy-1", c.EntityID)
	assert.Equal(t, 2, c.Stacks)
	assert.NotNil(t, c.Duration)
}

func TestCondition_AddStacks(t *testing.T) {
	c := conditions.New("weak", "player", 3, conditions.PermanentDuration{})

	c.AddStacks(2)
	assert.Equal(t, 5, c.Stacks)

	c.AddStacks(-10)
	assert.Equal(t, 0, c.Stacks, "stacks should floor at zero")
}

// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package conditions_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/castlekeep/spireforge/events"
	"github.com/castlekeep/spireforge/mechanics/conditions"
)

type stubEntity struct{ id string }

func (s *stubEntity) GetID() string   { return s.id }
func (s *stubEntity) GetType() string { return "stub" }

func TestTurnsDuration_ExpiresAfterOwnTurns(t *testing.T) {
	d := conditions.NewTurnsDuration(2, "enemy-1")
	enemy := &stubEntity{id: "enemy-1"}
	other := &stubEntity{id: "enemy-2"}

	assert.False(t, d.IsExpired(events.NewGameEvent(conditions.EventTurnEnd, other, nil)), "other entity's turn should not count")
	assert.False(t, d.IsExpired(events.NewGameEvent(conditions.EventTurnEnd, enemy, nil)))
	assert.True(t, d.IsExpired(events.NewGameEvent(conditions.EventTurnEnd, enemy, nil)))
}

func TestRoundsDuration_ExpiresAfterNRounds(t *testing.T) {
	d := conditions.NewRoundsDuration(2)

	startEvt := events.NewGameEvent(conditions.EventRoundEnd, nil, nil)
	startEvt.Context().Set("round", 1)
	assert.False(t, d.IsExpired(startEvt), "first sighting establishes the baseline round")

	midEvt := events.NewGameEvent(conditions.EventRoundEnd, nil, nil)
	midEvt.Context().Set("round", 2)
	assert.False(t, d.IsExpired(midEvt))

	endEvt := events.NewGameEvent(conditions.EventRoundEnd, nil, nil)
	endEvt.Context().Set("round", 3)
	assert.True(t, d.IsExpired(endEvt))
}

func TestUntilDamagedDuration(t *testing.T) {
	target := &stubEntity{id: "player"}
	d := conditions.NewUntilDamagedDuration("player")

	assert.False(t, d.IsExpired(events.NewGameEvent(conditions.EventTurnEnd, nil, target)))
	assert.True(t, d.IsExpired(events.NewGameEvent(conditions.EventDamaged, nil, target)))
}

func TestPermanentDuration_NeverExpires(t *testing.T) {
	d := conditions.PermanentDuration{}
	assert.False(t, d.IsExpired(events.NewGameEvent(conditions.EventRoundEnd, nil, nil)))
	assert.Equal(t, "Permanent", d.Description())
}

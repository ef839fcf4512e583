// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package battle

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/castlekeep/spireforge/events"
)

// reflectListener answers every hit on its owner with a 1-damage attack.
// dispatch evaluates a listener's effects against the listener's own owner,
// so that attack lands on the owner again and re-triggers the same
// listener, forever. This would recurse without end if dispatch didn't
// bound it itself: the bus's own cascade guard only counts nested
// Bus.Publish calls, and a listener's reaction runs before dispatch ever
// reaches Publish.
type reflectListener struct {
	owner Target
	back  Target
}

func (l *reflectListener) OnEvent(b *Battle, event events.Event) []Effect {
	if event.Type() != EventDamageTaken {
		return nil
	}
	if event.Target() == nil || event.Target().GetID() != l.owner.GetID() {
		return nil
	}
	return []Effect{AttackToTarget(1, 1, 0)}
}

func (l *reflectListener) IsActive() bool { return true }
func (l *reflectListener) Owner() Target  { return l.owner }

func TestDispatch_BoundsReflectListenerRecursion(t *testing.T) {
	b := NewBattleBuilder().
		WithSeed(1).
		WithHP(9999, 9999).
		AddEnemy(NewEnemy("Target Dummy", 9999), NewFixedCycleAI("Wait", "Wait", 1, 0, func(int) int { return 0 })).
		Build()

	player := PlayerTarget()
	enemy := EnemyTarget(0)
	b.Listeners = append(b.Listeners,
		&reflectListener{owner: player, back: enemy},
		&reflectListener{owner: enemy, back: player},
	)

	assert.NotPanics(t, func() {
		b.ResolveDamage(enemy, player, 1, 0)
	})
	assert.LessOrEqual(t, b.dispatchDepth, 0)
}

// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package battle

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/castlekeep/spireforge/events"
)

func TestResolveDamage_PipelineOrder_StrengthWeakVulnerableBlock(t *testing.T) {
	b := newTestBattle()
	attacker := b.Player
	attacker.Strength = 4

	defender := b.Enemies[0].Combatant
	defender.Block = 5
	b.applyDebuff(EnemyTarget(0), conditionVulnerable, 1)

	b.applyDebuff(PlayerTarget(), conditionWeak, 1) // source is weak: its outgoing damage is reduced

	before := defender.HP
	lost := b.ResolveDamage(PlayerTarget(), EnemyTarget(0), 10, 1)

	// (10 + 4) * 3/4 [weak] = 10; * 3/2 [vulnerable] = 15; - 5 block = 10 HP lost.
	assert.Equal(t, 10, lost)
	assert.Equal(t, before-10, defender.HP)
	assert.Equal(t, 0, defender.Block)
}

func TestResolveDamage_BlockAbsorbsBeforeHP(t *testing.T) {
	b := newTestBattle()
	defender := b.Enemies[0].Combatant
	defender.Block = 100
	before := defender.HP

	lost := b.ResolveDamage(PlayerTarget(), EnemyTarget(0), 10, 1)
	assert.Equal(t, 0, lost)
	assert.Equal(t, before, defender.HP)
	assert.Equal(t, 90, defender.Block)
}

func TestResolveDamage_PostsDamageTakenAndEnemyDeath(t *testing.T) {
	b := newTestBattle()
	var types []string
	b.Bus.Subscribe(EventDamageTaken, 0, func(e events.Event) error { types = append(types, e.Type()); return nil })
	b.Bus.Subscribe(EventEnemyDeath, 0, func(e events.Event) error { types = append(types, e.Type()); return nil })

	defender := b.Enemies[0].Combatant
	b.ResolveDamage(PlayerTarget(), EnemyTarget(0), defender.HP+100, 1)

	assert.Equal(t, []string{EventDamageTaken, EventEnemyDeath}, types)
}

func TestResolveDamage_DeadTargetIsNoOp(t *testing.T) {
	b := newTestBattle()
	b.Enemies[0].Combatant.HP = 0
	lost := b.ResolveDamage(PlayerTarget(), EnemyTarget(0), 10, 1)
	assert.Equal(t, 0, lost)
}

func TestAttackToTargetWithBlock_UsesSourceBlock(t *testing.T) {
	b := newTestBattle()
	b.Player.Block = 12
	before := b.Enemies[0].Combatant.HP

	lost := b.AttackToTargetWithBlock(PlayerTarget(), EnemyTarget(0))
	assert.Equal(t, 12, lost)
	assert.Equal(t, before-12, b.Enemies[0].Combatant.HP)
}

func TestAttackToTargetWithScaling_IncreasesPerUse(t *testing.T) {
	b := newTestBattle()
	first := b.AttackToTargetWithScaling(PlayerTarget(), EnemyTarget(0), 8, 5)
	second := b.AttackToTargetWithScaling(PlayerTarget(), EnemyTarget(0), 8, 5)
	assert.Equal(t, 8, first)
	assert.Equal(t, 13, second)
}

func TestPerfectedStrike_CountsStrikeNamedCardsAcrossPiles(t *testing.T) {
	b := newTestBattle()
	b.Piles.Draw = []*CardInstance{{Card: NewCard("Strike", 1, Attack)}}
	b.Piles.Hand = []*CardInstance{{Card: NewCard("Perfected Strike", 2, Attack)}}
	b.Piles.Discard = []*CardInstance{{Card: NewCard("Strike", 1, Attack)}}
	b.Piles.Exhaust = []*CardInstance{{Card: NewCard("Defend", 1, Skill)}}

	lost := b.PerfectedStrike(PlayerTarget(), EnemyTarget(0), 6, 2)
	// 3 cards whose name contains "Strike": Strike, Perfected Strike, Strike.
	assert.Equal(t, 6+2*3, lost)
}

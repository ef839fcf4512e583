// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package battle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newAIBattle(ai EnemyAI, ascension int) (*Battle, *EnemySlot) {
	b := NewBattleBuilder().
		WithSeed(7).
		WithAscension(ascension).
		AddEnemy(NewEnemy("Target", 999), ai).
		Build()
	return b, b.Enemies[0]
}

func TestFixedCycleAI_ChargesTwiceThenBlastsFirstCycle(t *testing.T) {
	ai := NewFixedCycleAI("Charging", "Ultimate Blast", 2, 3, func(int) int { return 25 })
	b, slot := newAIBattle(ai, 0)

	var names []string
	for i := 0; i < 3; i++ {
		names = append(names, slot.Intent.Name)
		ai.Act(b, slot)
		slot.Intent = ai.NextIntent(b, slot)
	}
	assert.Equal(t, []string{"Charging", "Charging", "Ultimate Blast"}, names)
}

func TestFixedCycleAI_ChargesThriceOnLaterCycles(t *testing.T) {
	ai := NewFixedCycleAI("Charging", "Ultimate Blast", 2, 3, func(int) int { return 25 })
	b, slot := newAIBattle(ai, 0)

	// Burn through the first cycle (2 charges + 1 blast).
	for i := 0; i < 3; i++ {
		ai.Act(b, slot)
		slot.Intent = ai.NextIntent(b, slot)
	}

	var names []string
	for i := 0; i < 4; i++ {
		names = append(names, slot.Intent.Name)
		ai.Act(b, slot)
		slot.Intent = ai.NextIntent(b, slot)
	}
	assert.Equal(t, []string{"Charging", "Charging", "Charging", "Ultimate Blast"}, names)
}

func TestFixedCycleAI_Ascension17BlastsEveryTurnAfterFirst(t *testing.T) {
	ai := NewFixedCycleAI("Charging", "Ultimate Blast", 2, 3, func(ascension int) int {
		if ascension >= 2 {
			return 30
		}
		return 25
	})
	b, slot := newAIBattle(ai, 17)

	for i := 0; i < 3; i++ {
		ai.Act(b, slot)
		slot.Intent = ai.NextIntent(b, slot)
	}
	assert.Equal(t, "Ultimate Blast", slot.Intent.Name)
	assert.Equal(t, 30, slot.Intent.Damage)

	ai.Act(b, slot)
	slot.Intent = ai.NextIntent(b, slot)
	assert.Equal(t, "Ultimate Blast", slot.Intent.Name)
}

func buildSlaverAI(extraBan func(int, string, []string) bool) *ConstrainedWeightedAI {
	return NewConstrainedWeightedAI([]WeightedMove{
		{Name: "Stab", Weight: 0.6, Build: func(int) Intent { return Intent{Name: "Stab", DealsDamage: true, Damage: 12, NumAttacks: 1} }},
		{Name: "Rake", Weight: 0.4, Build: func(int) Intent { return Intent{Name: "Rake", DealsDamage: true, Damage: 7, Debuff: true, WeakDuration: 1} }},
	}, extraBan)
}

func TestConstrainedWeightedAI_NeverThreeInARow(t *testing.T) {
	ai := buildSlaverAI(nil)
	b, slot := newAIBattle(ai, 0)

	for i := 0; i < 40; i++ {
		slot.Intent = ai.NextIntent(b, slot)
		slot.History = append(slot.History, slot.Intent.Name)
		if len(slot.History) >= 3 {
			last3 := slot.History[len(slot.History)-3:]
			sameAll := last3[0] == last3[1] && last3[1] == last3[2]
			assert.False(t, sameAll, "three in a row at %d: %v", i, last3)
		}
	}
}

func TestConstrainedWeightedAI_ExtraBanAtAscension17(t *testing.T) {
	extraBan := func(ascension int, name string, history []string) bool {
		return ascension >= 17 && name == "Rake" && len(history) >= 1 && history[len(history)-1] == "Rake"
	}
	ai := buildSlaverAI(extraBan)
	b, slot := newAIBattle(ai, 17)

	slot.History = []string{"Rake"}
	for i := 0; i < 20; i++ {
		intent := ai.NextIntent(b, slot)
		if slot.History[len(slot.History)-1] == "Rake" {
			assert.NotEqual(t, "Rake", intent.Name)
		}
		slot.History = append(slot.History, intent.Name)
	}
}

func TestConstrainedWeightedAI_Act_AppliesDamageAndDebuff(t *testing.T) {
	ai := buildSlaverAI(nil)
	b, slot := newAIBattle(ai, 0)
	slot.Intent = Intent{Name: "Rake", DealsDamage: true, Damage: 7, NumAttacks: 1, Debuff: true, WeakDuration: 2}

	before := b.Player.HP
	ai.Act(b, slot)
	assert.Equal(t, before-7, b.Player.HP)
	assert.True(t, b.IsWeak(PlayerTarget()))
}

func TestAlternatingAI_StrictlyAlternates(t *testing.T) {
	lick := WeightedMove{Name: "Lick", Build: func(int) Intent { return Intent{Name: "Lick", Debuff: true, WeakDuration: 1} }}
	tackle := WeightedMove{Name: "Tackle", Build: func(int) Intent { return Intent{Name: "Tackle", DealsDamage: true, Damage: 3, NumAttacks: 1} }}
	ai := NewAlternatingAI(lick, tackle)
	b, slot := newAIBattle(ai, 0)

	var names []string
	for i := 0; i < 4; i++ {
		slot.Intent = ai.NextIntent(b, slot)
		names = append(names, slot.Intent.Name)
		ai.Act(b, slot)
	}
	assert.Equal(t, []string{"Lick", "Tackle", "Lick", "Tackle"}, names)
}

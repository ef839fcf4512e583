// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package battle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEndTurn_DiscardsHandAndDrawsFresh(t *testing.T) {
	b := newTestBattle()
	b.Piles.Hand = []*CardInstance{{Card: NewCard("Strike", 1, Attack)}}
	for i := 0; i < 20; i++ {
		b.Piles.Draw = append(b.Piles.Draw, &CardInstance{Card: NewCard("Defend", 1, Skill)})
	}

	err := b.EndTurn()
	require.NoError(t, err)
	assert.Equal(t, 2, b.Turn)
	assert.Equal(t, 2, b.Round)
	assert.Len(t, b.Piles.Hand, StartingHandSize)
}

func TestEndTurn_EtherealHandCardsExhaustInstead(t *testing.T) {
	b := newTestBattle()
	b.Piles.Hand = []*CardInstance{{Card: &Card{Name: "Apparition", Ethereal: true}}}
	for i := 0; i < StartingHandSize; i++ {
		b.Piles.Draw = append(b.Piles.Draw, &CardInstance{Card: NewCard("Defend", 1, Skill)})
	}

	err := b.EndTurn()
	require.NoError(t, err)
	assert.Len(t, b.Piles.Exhaust, 1)
}

func TestEndTurn_RefusesDuringSelection(t *testing.T) {
	b := newTestBattle()
	b.State = StateAwaitingSelection
	err := b.EndTurn()
	assert.Error(t, err)
}

func TestEndTurn_RefusesAfterBattleOver(t *testing.T) {
	b := newTestBattle()
	b.State = StateDefeat
	b.Lost = true
	err := b.EndTurn()
	assert.Error(t, err)
}

func TestEndTurn_EnemyPhaseTelegraphsNextIntentAfterActing(t *testing.T) {
	b := newTestBattle()
	for i := 0; i < StartingHandSize; i++ {
		b.Piles.Draw = append(b.Piles.Draw, &CardInstance{Card: NewCard("Defend", 1, Skill)})
	}
	firstIntent := b.Enemies[0].Intent

	err := b.EndTurn()
	require.NoError(t, err)
	assert.Equal(t, StatePlayerTurn, b.State)
	assert.Contains(t, b.Enemies[0].History, firstIntent.Name)
}

func TestEndTurn_DefeatStopsEnemyPhaseEarly(t *testing.T) {
	b := NewBattleBuilder().
		WithHP(1, 1).
		WithSeed(1).
		AddEnemy(NewEnemy("Brute", 50), NewFixedCycleAI("Wind Up", "Smash", 0, 0, func(int) int { return 99 })).
		AddEnemy(NewEnemy("Second", 50), NewFixedCycleAI("Wind Up", "Smash", 0, 0, func(int) int { return 99 })).
		Build()

	err := b.EndTurn()
	require.NoError(t, err)
	assert.True(t, b.Lost)
	assert.Equal(t, StateDefeat, b.State)
}

func TestCheckVictoryOrDefeat_Idempotent(t *testing.T) {
	b := newTestBattle()
	b.Enemies[0].Combatant.HP = 0
	b.checkVictoryOrDefeat()
	assert.True(t, b.Won)
	b.Lost = false
	b.checkVictoryOrDefeat()
	assert.False(t, b.Lost)
}

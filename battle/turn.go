// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package battle

import (
	"github.com/castlekeep/spireforge/events"
	"github.com/castlekeep/spireforge/rpgerr"
)

// StartingHandSize is how many cards the player draws at the start of
// every turn, including the first.
const StartingHandSize = 5

// EndTurn closes out the player's turn and runs the full enemy phase,
// returning control to the player once every living enemy has acted (or
// ending the battle if that phase kills the player). It is a no-op error if
// a selection is still pending or the battle is already over.
func (b *Battle) EndTurn() error {
	if b.State == StateVictory || b.State == StateDefeat {
		return rpgerr.New(rpgerr.CodeGameAlreadyOver, "battle already over")
	}
	if b.State != StatePlayerTurn {
		return rpgerr.New(rpgerr.CodeInvalidAction, "cannot end turn with a selection pending")
	}

	b.endPlayerTurn()
	if b.State == StateVictory || b.State == StateDefeat {
		return nil
	}

	b.State = StateEnemyTurn
	b.runEnemyTurn()
	if b.State == StateVictory || b.State == StateDefeat {
		return nil
	}

	b.startPlayerTurn()
	return nil
}

// endPlayerTurn discards the hand (ethereal cards exhaust instead), posts
// EndOfTurn so turn-scoped listeners (Metallicize, Combust, LoseStrength)
// and turn-scoped conditions fire, clears the player's entangled flag, then
// checks for a Combust-induced defeat before the enemy phase ever starts.
func (b *Battle) endPlayerTurn() {
	exhausted := b.Piles.DiscardHand()
	for range exhausted {
		b.dispatch(events.NewGameEvent(EventCardExhausted, PlayerTarget(), PlayerTarget()))
	}

	b.dispatch(events.NewGameEvent(EventEndOfTurn, PlayerTarget(), PlayerTarget()))
	b.Player.Entangled = false
	b.checkVictoryOrDefeat()
}

// runEnemyTurn lets every living enemy resolve the intent it telegraphed at
// the start of the player's previous turn, checking for victory/defeat
// after each action since an enemy's own effect (or a reflect power) can
// end the battle mid-phase.
func (b *Battle) runEnemyTurn() {
	for i, slot := range b.Enemies {
		if !slot.Combatant.IsAlive() {
			continue
		}
		slot.Combatant.StartTurn()
		slot.AI.Act(b, slot)
		slot.History = append(slot.History, slot.Intent.Name)
		b.dispatch(events.NewGameEvent(EventEndOfTurn, EnemyTarget(i), EnemyTarget(i)))

		b.checkVictoryOrDefeat()
		if b.State == StateVictory || b.State == StateDefeat {
			return
		}
	}

	b.dispatch(events.NewGameEvent(EventEndOfEnemyTurn, PlayerTarget(), PlayerTarget()))
	b.dispatch(events.NewGameEvent(EventRoundEnd, PlayerTarget(), PlayerTarget()))
	b.checkVictoryOrDefeat()
}

// startPlayerTurn advances the round/turn counters, resets the player's
// block and energy, posts StartOfTurn, draws a fresh hand, and has every
// living enemy telegraph its next intent so the player can see it before
// acting. Debuff durations tick off endPlayerTurn's EventEndOfTurn, not here.
func (b *Battle) startPlayerTurn() {
	if b.State == StateVictory || b.State == StateDefeat {
		return
	}

	b.Turn++
	b.Round++

	b.Player.StartTurn()

	b.State = StatePlayerTurn
	b.dispatch(events.NewGameEvent(EventStartOfTurn, PlayerTarget(), PlayerTarget()))

	for range b.Piles.Draw(StartingHandSize, b.IntN) {
		b.dispatch(events.NewGameEvent(EventCardDrawn, PlayerTarget(), PlayerTarget()))
	}

	for _, slot := range b.Enemies {
		if slot.Combatant.IsAlive() {
			slot.Intent = slot.AI.NextIntent(b, slot)
		}
	}
}

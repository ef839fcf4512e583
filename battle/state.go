// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package battle

// BattleState is the top-level state machine: which actions are legal right
// now. PlayCard, EndTurn, and ResolveSelection each check State before
// doing anything; PlayCard and EndTurn return an InvalidAction-coded error
// if it doesn't match what they require, and ResolveSelection returns false.
type BattleState int

const (
	// StatePlayerTurn is the default: the player may play cards or end
	// their turn.
	StatePlayerTurn BattleState = iota

	// StateAwaitingSelection means a card's effect list suspended mid-
	// resolution to ask the player to choose a hand card (what the choice
	// does depends on the pending selection's SelectKind) before the
	// remaining effects run.
	// No card may be played and the turn may not end until the selection
	// resolves.
	StateAwaitingSelection

	// StateEnemyTurn means enemy intents are resolving; PlayCard and
	// EndTurn both refuse to act.
	StateEnemyTurn

	// StateVictory and StateDefeat are terminal: every enemy is dead, or
	// the player's HP reached zero. No further action is legal.
	StateVictory
	StateDefeat
)

// SelectKind distinguishes what a suspended card is waiting for the player
// to choose, and what ResolveSelection does with the choice.
type SelectKind int

const (
	// SelectNone means no selection is pending.
	SelectNone SelectKind = iota

	// SelectCardInHandToTopOfDraw asks for one hand card to move to the top
	// of the draw pile (Warcry).
	SelectCardInHandToTopOfDraw

	// SelectCardInHandToDuplicate asks for one hand card to copy Copies
	// times into discard (Dual Wield-style effects).
	SelectCardInHandToDuplicate
)

// selection tracks a suspended card's pending choice and the remainder of
// its effect list, resumed once the player answers via ResolveSelection.
type selection struct {
	kind   SelectKind
	copies int

	pendingEffects []Effect
	source, target Target

	// retireCard is set by PlayCard when a card suspends mid-resolution;
	// ResolveSelection uses it to finish that card's retirement (and
	// Double Tap replay check) once every suspended effect finally runs
	// to completion without re-suspending.
	retireCard *Card
}

// enterSelectCardInHand suspends the currently-resolving card's remaining
// effects and transitions to StateAwaitingSelection, asking for one hand
// card to place on top of the draw pile.
func (b *Battle) enterSelectCardInHand() {
	b.pending.kind = SelectCardInHandToTopOfDraw
	b.State = StateAwaitingSelection
}

// enterSelectCardToDuplicate suspends the currently-resolving card and asks
// for one hand card to duplicate copies times into discard.
func (b *Battle) enterSelectCardToDuplicate(copies int) {
	b.pending.kind = SelectCardInHandToDuplicate
	b.pending.copies = copies
	b.State = StateAwaitingSelection
}

// ResolveSelection answers a pending selection with the hand card at index
// handIndex, applies its effect, resumes any suspended effects from the
// card that triggered the selection, and returns to StatePlayerTurn.
func (b *Battle) ResolveSelection(handIndex int) bool {
	if b.State != StateAwaitingSelection {
		return false
	}

	switch b.pending.kind {
	case SelectCardInHandToTopOfDraw:
		inst, ok := b.Piles.PlayCardFromHand(handIndex)
		if !ok {
			return false
		}
		b.Piles.AddCardToTopOfDraw(inst.Card)

	case SelectCardInHandToDuplicate:
		if handIndex < 0 || handIndex >= len(b.Piles.Hand) {
			return false
		}
		card := b.Piles.Hand[handIndex].Card
		for i := 0; i < b.pending.copies; i++ {
			b.Piles.AddCardToDiscard(card)
		}

	default:
		return false
	}

	resumeEffects := b.pending.pendingEffects
	source, target := b.pending.source, b.pending.target
	retireCard := b.pending.retireCard
	b.pending = selection{}
	b.State = StatePlayerTurn

	for i, eff := range resumeEffects {
		b.evalEffect(source, target, eff)
		if b.State == StateAwaitingSelection {
			b.pending.pendingEffects = append([]Effect(nil), resumeEffects[i+1:]...)
			b.pending.source, b.pending.target = source, target
			b.pending.retireCard = retireCard
			return true
		}
	}

	if retireCard != nil {
		b.finishRetirement(retireCard)
		b.checkVictoryOrDefeat()
		b.tryConsumeDoubleTap(retireCard, target)
	}

	return true
}

// markPendingExhaust records that the card currently resolving should be
// exhausted rather than discarded once its effects finish. Read by PlayCard
// after the effect loop completes.
func (b *Battle) markPendingExhaust() { b.pendingExhaust = true }

// markPendingEthereal records that the card currently resolving is
// ethereal for the rest of combat.
func (b *Battle) markPendingEthereal() { b.pendingEthereal = true }

// checkVictoryOrDefeat latches State to StateVictory/StateDefeat once the
// relevant condition holds. It is idempotent and safe to call after every
// HP-changing effect.
func (b *Battle) checkVictoryOrDefeat() {
	if b.State == StateVictory || b.State == StateDefeat {
		return
	}
	if b.Player.HP <= 0 {
		b.State = StateDefeat
		b.Lost = true
		return
	}
	if b.AllEnemiesDefeated() {
		b.State = StateVictory
		b.Won = true
	}
}

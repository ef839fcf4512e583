// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package battle

import (
	"github.com/castlekeep/spireforge/events"
	"github.com/castlekeep/spireforge/rpgerr"
)

// Action is one thing the player can legally do right now: play a specific
// hand card against a target, end the turn, or answer a pending selection.
type Action struct {
	PlayCardIndex int // -1 when Kind != ActionPlayCard
	Target        Target
	SelectIndex   int // -1 when Kind != ActionResolveSelection
	Kind          ActionKind
}

// ActionKind distinguishes the variants of Action.
type ActionKind int

const (
	ActionPlayCard ActionKind = iota
	ActionEndTurn
	ActionResolveSelection
)

// needsEnemyTarget reports whether card requires an enemy as its target,
// inferred from its effect list the same way list_available_actions does:
// by effect kind rather than an explicit per-card targeting field, so
// authoring a new card doesn't require separately declaring its target
// shape.
func needsEnemyTarget(card *Card) bool {
	for _, eff := range card.Effects {
		switch eff.Kind {
		case EffectAttackToTarget, EffectAttackToTargetWithBlock, EffectAttackToTargetWithScaling,
			EffectPerfectedStrike, EffectApplyVulnerable, EffectApplyWeak:
			return true
		}
	}
	return false
}

func needsSelfTarget(card *Card) bool {
	for _, eff := range card.Effects {
		switch eff.Kind {
		case EffectGainBlock, EffectGainStrength, EffectGainDexterity, EffectGainArtifact, EffectGainRitual:
			return true
		}
	}
	return false
}

// ValidTargetsForCard returns every Target card may legally be played
// against: every living enemy if any effect targets an enemy, the player if
// any effect targets the player's own side, or both if neither kind of
// effect is present (AoE-only and pure-draw cards resolve their own targets
// regardless of what's passed in).
func (b *Battle) ValidTargetsForCard(card *Card) []Target {
	targetsEnemy := needsEnemyTarget(card)
	targetsSelf := needsSelfTarget(card)

	var out []Target
	if targetsEnemy {
		out = append(out, b.LivingEnemyTargets()...)
	}
	if targetsSelf {
		out = append(out, PlayerTarget())
	}
	if len(out) == 0 {
		out = append(out, b.LivingEnemyTargets()...)
		out = append(out, PlayerTarget())
	}
	return out
}

// IsValidTarget reports whether target currently addresses a real, living
// entity (an in-range enemy index whose enemy is alive, or the player).
func (b *Battle) IsValidTarget(target Target) bool {
	switch target.Kind {
	case TargetPlayer:
		return true
	case TargetEnemy:
		return target.Index >= 0 && target.Index < len(b.Enemies) && b.Enemies[target.Index].Combatant.IsAlive()
	default:
		return false
	}
}

// LegalActions enumerates every Action the player may currently take:
// PlayCard for each hand card the player can afford against each valid
// target, plus EndTurn, when in StatePlayerTurn; a single
// ResolveSelection-kind action is implied (not enumerated per index) while
// StateAwaitingSelection, since the valid index range is just the hand
// size at that moment.
func (b *Battle) LegalActions() []Action {
	if b.State != StatePlayerTurn {
		return nil
	}

	var actions []Action
	for i, inst := range b.Piles.Hand {
		if inst.Card.Type == Status || inst.Card.Type == Curse {
			continue
		}
		if b.Player.Energy < inst.Card.EffectiveCost(b) {
			continue
		}
		if inst.Card.Type == Attack && b.Player.Entangled {
			continue
		}
		if !inst.Card.CanPlay(b) {
			continue
		}
		for _, target := range b.ValidTargetsForCard(inst.Card) {
			actions = append(actions, Action{Kind: ActionPlayCard, PlayCardIndex: i, Target: target, SelectIndex: -1})
		}
	}
	actions = append(actions, Action{Kind: ActionEndTurn, PlayCardIndex: -1, SelectIndex: -1})
	return actions
}

// PlayCard plays the hand card at handIndex against target: validates,
// spends energy, removes the card from hand, posts CardPlayed (and
// SkillCardPlayed for Skill cards), runs its effects in order, then retires
// it to discard or exhaust. If an effect suspends resolution (a select-
// state), the remaining effects and the retirement decision wait for
// ResolveSelection.
func (b *Battle) PlayCard(handIndex int, target Target) error {
	if b.State == StateVictory || b.State == StateDefeat {
		return rpgerr.New(rpgerr.CodeGameAlreadyOver, "battle already over")
	}
	if b.State != StatePlayerTurn {
		return rpgerr.New(rpgerr.CodeInvalidAction, "cannot play a card outside the player's turn")
	}
	if handIndex < 0 || handIndex >= len(b.Piles.Hand) {
		return rpgerr.New(rpgerr.CodeCardNotInHand, "no card at that hand index")
	}
	if !b.IsValidTarget(target) {
		return rpgerr.New(rpgerr.CodeInvalidTarget, "target does not resolve to a living entity")
	}

	card := b.Piles.Hand[handIndex].Card
	if card.Type == Attack && b.Player.Entangled {
		return rpgerr.New(rpgerr.CodeConditionNotMet, "entangled: cannot play attack cards this turn")
	}
	if !card.CanPlay(b) {
		return rpgerr.New(rpgerr.CodeConditionNotMet, "card's play condition is not satisfied")
	}
	cost := card.EffectiveCost(b)
	if !b.Player.SpendEnergy(cost) {
		return rpgerr.New(rpgerr.CodeNotEnoughEnergy, "not enough energy to play this card")
	}

	b.Piles.PlayCardFromHand(handIndex)

	b.pendingExhaust = card.InnateExhaust
	b.pendingEthereal = card.Ethereal

	b.dispatch(events.NewGameEvent(EventCardPlayed, PlayerTarget(), target))
	if card.Type == Skill {
		b.dispatch(events.NewGameEvent(EventSkillCardPlayed, PlayerTarget(), target))
	}

	b.runEffects(card.Effects, PlayerTarget(), target)

	if b.State == StateAwaitingSelection {
		// Retirement is decided once the suspended effects finish; stash
		// the card identity on the pending selection so finishRetirement
		// (called from ResolveSelection) can still see it.
		b.pending.retireCard = card
		return nil
	}

	b.finishRetirement(card)
	b.checkVictoryOrDefeat()
	b.tryConsumeDoubleTap(card, target)
	return nil
}

// runEffects applies each effect in order, stopping (without erroring) if
// one of them suspends resolution into StateAwaitingSelection; the
// remainder is stashed on b.pending for ResolveSelection to resume.
func (b *Battle) runEffects(effects []Effect, source, target Target) {
	for i, eff := range effects {
		b.evalEffect(source, target, eff)
		if b.State == StateAwaitingSelection {
			b.pending.pendingEffects = append([]Effect(nil), effects[i+1:]...)
			b.pending.source, b.pending.target = source, target
			return
		}
	}
}

// finishRetirement moves the just-played card to exhaust or discard based
// on the flags its effects set during resolution.
func (b *Battle) finishRetirement(card *Card) {
	if b.pendingExhaust || (b.CorruptionActive && card.Type == Skill) {
		b.Piles.Exhaust = append(b.Piles.Exhaust, &CardInstance{Card: card})
		b.dispatch(events.NewGameEvent(EventCardExhausted, PlayerTarget(), PlayerTarget()))
	} else {
		b.Piles.Discard = append(b.Piles.Discard, &CardInstance{Card: card})
	}
	if b.pendingEthereal {
		card.Ethereal = true
	}
	b.pendingExhaust = false
	b.pendingEthereal = false
}

// tryConsumeDoubleTap checks for an active DoubleTapListener with remaining
// charges; if card is an Attack, it consumes one charge and replays the
// card's effects once more against the same target, without spending
// energy or re-removing it from hand (it has already left hand).
func (b *Battle) tryConsumeDoubleTap(card *Card, target Target) {
	if card.Type != Attack {
		return
	}
	for _, l := range b.Listeners {
		dt, ok := l.(*DoubleTapListener)
		if !ok || dt.remaining <= 0 {
			continue
		}
		dt.remaining--
		b.runEffects(card.Effects, PlayerTarget(), target)
		b.checkVictoryOrDefeat()
		return
	}
}

// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package battle

import "github.com/castlekeep/spireforge/events"

// evalEffect applies one Effect sourced from source and aimed at target,
// posting whatever events the mutation implies. This switch is the only
// place that knows how an EffectKind changes battle state; everything else
// treats Effect as opaque data.
func (b *Battle) evalEffect(source, target Target, eff Effect) {
	switch eff.Kind {
	case EffectAttackToTarget:
		hits := eff.NumAttacks
		if hits <= 0 {
			hits = 1
		}
		for i := 0; i < hits; i++ {
			b.ResolveDamage(source, target, eff.Amount, eff.StrengthMultiplier)
		}

	case EffectAttackToTargetWithBlock:
		b.AttackToTargetWithBlock(source, target)

	case EffectAttackToTargetWithScaling:
		b.AttackToTargetWithScaling(source, target, eff.Amount, eff.Scaling)

	case EffectPerfectedStrike:
		b.PerfectedStrike(source, target, eff.Amount, eff.Scaling)

	case EffectAttackAllEnemies:
		hits := eff.NumAttacks
		if hits <= 0 {
			hits = 1
		}
		for _, enemyTarget := range b.LivingEnemyTargets() {
			for i := 0; i < hits; i++ {
				b.ResolveDamage(source, enemyTarget, eff.Amount, 1)
			}
		}

	case EffectGainBlock:
		if c, ok := b.Resolve(target); ok {
			gained := c.GainBlock(eff.Amount, true, b.IsFrail(target))
			if gained > 0 {
				b.dispatch(events.NewGameEvent(EventBlockGained, source, target))
			}
		}

	case EffectGainStrength:
		if c, ok := b.Resolve(target); ok {
			c.GainStrength(eff.Amount)
		}

	case EffectLoseStrength:
		if c, ok := b.Resolve(target); ok {
			c.GainStrength(-eff.Amount)
		}

	case EffectGainDexterity:
		if c, ok := b.Resolve(target); ok {
			c.GainDexterity(eff.Amount)
		}

	case EffectLoseDexterity:
		if c, ok := b.Resolve(target); ok {
			c.GainDexterity(-eff.Amount)
		}

	case EffectGainArtifact:
		if c, ok := b.Resolve(target); ok {
			c.ArtifactCharges += eff.Amount
		}

	case EffectGainRitual:
		if c, ok := b.Resolve(target); ok {
			c.Ritual += eff.Amount
		}

	case EffectApplyVulnerable:
		b.applyDebuff(target, conditionVulnerable, eff.Duration)

	case EffectApplyWeak:
		b.applyDebuff(target, conditionWeak, eff.Duration)

	case EffectApplyFrail:
		b.applyDebuff(target, conditionFrail, eff.Duration)

	case EffectToPlayer:
		if eff.Inner != nil {
			b.evalEffect(source, PlayerTarget(), *eff.Inner)
		}

	case EffectApplyEntangled:
		if c, ok := b.Resolve(target); ok {
			c.Entangled = true
			_ = eff.Duration // not read: endPlayerTurn clears the flag at the end of the player's turn
		}

	case EffectDrawCard:
		for _, result := range b.Piles.Draw(eff.Amount, b.IntN) {
			_ = result
			b.dispatch(events.NewGameEvent(EventCardDrawn, source, target))
		}

	case EffectGainEnergy:
		if c, ok := b.Resolve(target); ok {
			c.Energy += eff.Amount
		}

	case EffectAddCardToHand:
		if card := b.InstantiateCard(eff.CardName); card != nil {
			b.Piles.AddCardToHand(card)
		}

	case EffectAddCardToDiscard:
		if card := b.InstantiateCard(eff.CardName); card != nil {
			b.Piles.AddCardToDiscard(card)
		}

	case EffectAddCardToTopOfDraw:
		if card := b.InstantiateCard(eff.CardName); card != nil {
			b.Piles.AddCardToTopOfDraw(card)
		}

	case EffectConditional:
		if eff.Condition != nil && eff.Inner != nil && eff.Condition(b) {
			b.evalEffect(source, target, *eff.Inner)
		}

	case EffectActivateCombust:
		b.registerListener(NewCombustListener(source, eff.Amount))

	case EffectActivateMetallicize:
		b.registerListener(NewMetallicizeListener(source, eff.Amount))

	case EffectActivateCorruption:
		b.registerListener(NewCorruptionListener(source))

	case EffectActivateDoubleTap:
		b.registerListener(NewDoubleTapListener(source, eff.Amount))

	case EffectEnterSelectCardInHand:
		b.enterSelectCardInHand()

	case EffectEnterSelectCardToDuplicate:
		b.enterSelectCardToDuplicate(eff.Copies)

	case EffectHeal:
		if c, ok := b.Resolve(target); ok {
			c.HP += eff.Amount
			if c.HP > c.MaxHP {
				c.HP = c.MaxHP
			}
		}

	case EffectLoseHP:
		if c, ok := b.Resolve(target); ok {
			c.HP -= eff.Amount
			if c.HP < 0 {
				c.HP = 0
			}
		}

	case EffectDoubleStrength:
		if c, ok := b.Resolve(target); ok {
			c.GainStrength(c.Strength)
		}

	case EffectExhaust:
		b.markPendingExhaust()

	case EffectEthereal:
		b.markPendingEthereal()
	}
}

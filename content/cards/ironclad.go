// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

// Package cards is a representative Ironclad-flavored card pool: plain
// attacks, block, strength buffs, vulnerable/weak, a play condition (Clash),
// scaling attacks (Perfected Strike, Rampage), select-states (Warcry,
// Armaments' duplication), and the three persistent powers (Metallicize,
// Combust, Corruption) plus Double Tap. Not every Effect the battle
// interpreter understands is used by a card here (e.g. dexterity, frail,
// energy gain and healing are not).
//
// Non-Goals: the full 75-card Ironclad pool, card upgrades (a Card here is
// already in its final numbers), and card rarity/pricing (shop concerns,
// out of scope for a battle engine).
package cards

import "github.com/castlekeep/spireforge/battle"

// Strike deals 6 damage.
func Strike() *battle.Card {
	return battle.NewCard("Strike", 1, battle.Attack, battle.AttackToTarget(6, 1, 1))
}

// Defend grants 5 block.
func Defend() *battle.Card {
	return battle.NewCard("Defend", 1, battle.Skill, battle.GainBlock(5))
}

// Bash deals 8 damage and applies 2 vulnerable.
func Bash() *battle.Card {
	return battle.NewCard("Bash", 2, battle.Attack,
		battle.AttackToTarget(8, 1, 1),
		battle.ApplyVulnerable(2),
	)
}

// Anger deals 6 damage and adds a copy of itself to discard.
func Anger() *battle.Card {
	return battle.NewCard("Anger", 0, battle.Attack,
		battle.AttackToTarget(6, 1, 1),
		battle.AddCardToDiscard("Anger"),
	)
}

// Cleave deals 8 damage to every enemy.
func Cleave() *battle.Card {
	return battle.NewCard("Cleave", 1, battle.Attack, battle.AttackAllEnemies(8, 1))
}

// Uppercut deals 13 damage and applies 1 weak and 1 vulnerable.
func Uppercut() *battle.Card {
	return battle.NewCard("Uppercut", 2, battle.Attack,
		battle.AttackToTarget(13, 1, 1),
		battle.ApplyWeak(1),
		battle.ApplyVulnerable(1),
	)
}

// Clash deals 14 damage; playable only when every other card in hand is an
// Attack.
func Clash() *battle.Card {
	c := battle.NewCard("Clash", 0, battle.Attack, battle.AttackToTarget(14, 1, 1))
	c.PlayCondition = battle.HandAllAttacks
	return c
}

// Iron Wave grants 5 block and deals 5 damage.
func IronWave() *battle.Card {
	return battle.NewCard("Iron Wave", 1, battle.Attack,
		battle.GainBlock(5),
		battle.AttackToTarget(5, 1, 1),
	)
}

// Shrug It Off grants 8 block and draws 1 card.
func ShrugItOff() *battle.Card {
	return battle.NewCard("Shrug It Off", 1, battle.Skill,
		battle.GainBlock(8),
		battle.DrawCard(1),
	)
}

// Armaments grants 5 block, then asks for a hand card to... in this pool,
// duplicates a copy into discard rather than upgrading it (upgrades are a
// run-level concept out of scope for a single battle).
func Armaments() *battle.Card {
	return battle.NewCard("Armaments", 1, battle.Skill,
		battle.GainBlock(5),
		battle.EnterSelectCardToDuplicate(1),
	)
}

// Warcry draws 1 card, then asks for a hand card to place on top of the
// draw pile, and exhausts.
func Warcry() *battle.Card {
	return battle.NewCard("Warcry", 0, battle.Skill,
		battle.DrawCard(1),
		battle.EnterSelectCardInHand(),
		battle.Exhaust(),
	)
}

// Inflame gains 2 strength.
func Inflame() *battle.Card {
	return battle.NewCard("Inflame", 1, battle.Power, battle.GainStrength(2))
}

// Metallicize activates the Metallicize power: 3 block at the end of each
// of the player's turns.
func Metallicize() *battle.Card {
	return battle.NewCard("Metallicize", 1, battle.Power, battle.ActivateMetallicize(3))
}

// Combust activates the Combust power: 5 AoE damage and 1 self HP loss at
// the end of each of the player's turns.
func Combust() *battle.Card {
	return battle.NewCard("Combust", 1, battle.Power, battle.ActivateCombust(5))
}

// Corruption activates the Corruption power: Skills cost 0 and exhaust
// instead of discarding.
func Corruption() *battle.Card {
	return battle.NewCard("Corruption", 3, battle.Power, battle.ActivateCorruption())
}

// DoubleTap activates Double Tap: the next Attack card played resolves
// twice. An unused charge is not cleared at the end of the turn.
func DoubleTap() *battle.Card {
	return battle.NewCard("Double Tap", 1, battle.Power, battle.ActivateDoubleTap(1))
}

// LimitBreak doubles the player's current strength, and exhausts.
func LimitBreak() *battle.Card {
	c := battle.NewCard("Limit Break", 1, battle.Skill, battle.DoubleStrength())
	c.InnateExhaust = true
	return c
}

// Rampage deals 8 damage, increasing by 5 every time it's played this
// combat.
func Rampage() *battle.Card {
	return battle.NewCard("Rampage", 1, battle.Attack, battle.AttackToTargetWithScaling(8, 5))
}

// PerfectedStrike deals 6 damage plus 2 for every card whose name contains
// "Strike", anywhere in any pile.
func PerfectedStrike() *battle.Card {
	return battle.NewCard("Perfected Strike", 2, battle.Attack, battle.PerfectedStrike(6, 2))
}

// Entangle applies entangled to the player for 1 turn (normally an enemy
// move; included here to exercise the effect from card content as well,
// e.g. a cursed item).
func Entangle() *battle.Card {
	return battle.NewCard("Entangle", 1, battle.Skill, battle.ApplyEntangled(1))
}

// Dazed is a Status card: does nothing, unplayable, exhausts if somehow
// played.
func Dazed() *battle.Card {
	c := battle.NewCard("Dazed", 0, battle.Status)
	c.InnateExhaust = true
	return c
}

// AscendersBane is a Curse: unplayable, cannot be exhausted by normal
// means.
func AscendersBane() *battle.Card {
	return battle.NewCard("Ascender's Bane", 0, battle.Curse)
}

// All returns one instance of every card in this pool, for building a
// default starter deck or a CardFactory lookup table.
func All() []*battle.Card {
	return []*battle.Card{
		Strike(), Defend(), Bash(), Anger(), Cleave(), Uppercut(), Clash(),
		IronWave(), ShrugItOff(), Armaments(), Warcry(), Inflame(),
		Metallicize(), Combust(), Corruption(), DoubleTap(), LimitBreak(),
		Rampage(), PerfectedStrike(), Entangle(), Dazed(), AscendersBane(),
	}
}

// ByName builds a CardFactory over All, used to resolve card-insertion
// effects (AddCardToHand/Discard/TopOfDraw) by name.
func ByName(name string) *battle.Card {
	for _, c := range All() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// StarterDeck returns the Ironclad's default 10-card starting deck: 5
// Strikes, 4 Defends, 1 Bash.
func StarterDeck() []*battle.Card {
	deck := make([]*battle.Card, 0, 10)
	for i := 0; i < 5; i++ {
		deck = append(deck, Strike())
	}
	for i := 0; i < 4; i++ {
		deck = append(deck, Defend())
	}
	deck = append(deck, Bash())
	return deck
}

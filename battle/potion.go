// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package battle

import "github.com/castlekeep/spireforge/rpgerr"

// Potion is a single-use item: a name for display and a list of effects run
// through the same interpreter a card's effects run through. The battle
// package owns the slot/consumption mechanism only; potion content (what a
// Fire Potion does, how many slots a run grants) is supplied by the caller,
// the same boundary UsePotion's rules draw in spec: the engine provides
// validation and routing, not a potion catalogue.
type Potion struct {
	Name    string
	Effects []Effect
}

// PotionInventory is a fixed set of slots; a nil entry is an empty slot.
type PotionInventory []*Potion

// UsePotion consumes the potion in slot against target, running its effects
// through the same suspend/resume machinery PlayCard uses (a potion whose
// effects include a select-state is legal, just unusual). Unlike a card,
// potions never occupy a pile and have no retirement decision: the slot is
// simply cleared on use.
func (b *Battle) UsePotion(slot int, target Target) error {
	if b.State == StateVictory || b.State == StateDefeat {
		return rpgerr.New(rpgerr.CodeGameAlreadyOver, "battle already over")
	}
	if b.State != StatePlayerTurn {
		return rpgerr.New(rpgerr.CodeInvalidAction, "cannot use a potion outside the player's turn")
	}
	if slot < 0 || slot >= len(b.Potions) || b.Potions[slot] == nil {
		return rpgerr.New(rpgerr.CodeNotFound, "no potion in that slot")
	}
	if !b.IsValidTarget(target) {
		return rpgerr.New(rpgerr.CodeInvalidTarget, "target does not resolve to a living entity")
	}

	potion := b.Potions[slot]
	b.Potions[slot] = nil

	b.runEffects(potion.Effects, PlayerTarget(), target)
	b.checkVictoryOrDefeat()
	return nil
}

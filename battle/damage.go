// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package battle

import "github.com/castlekeep/spireforge/events"

// ResolveDamage runs amount through the damage pipeline for one hit from
// source to target: strength, then weak, then vulnerable, then block
// absorption, then HP loss. It posts DamageTaken when the hit costs any HP
// (a hit fully absorbed by block posts nothing), and EnemyDeath if this hit
// kills target, and returns the HP actually lost.
//
// Order is fixed (spec section 4.5): a later step never reorders with an
// earlier one, even though every step after 1 operates on an already
// strength-scaled value.
func (b *Battle) ResolveDamage(source, target Target, amount, strengthMultiplier int) int {
	src, srcOK := b.Resolve(source)
	dst, dstOK := b.Resolve(target)
	if !dstOK || !dst.IsAlive() {
		return 0
	}

	a := amount
	if srcOK && src.Strength != 0 {
		a += src.Strength * strengthMultiplier
	}
	if srcOK && b.IsWeak(source) {
		a = (a * 3) / 4
	}
	if b.IsVulnerable(target) {
		a = (a * 3) / 2
	}
	if a < 0 {
		a = 0
	}

	absorbed := a
	if absorbed > dst.Block {
		absorbed = dst.Block
	}
	dst.Block -= absorbed
	a -= absorbed

	before := dst.HP
	dst.HP -= a
	if dst.HP < 0 {
		dst.HP = 0
	}
	lost := before - dst.HP

	if lost > 0 {
		b.dispatch(events.NewGameEvent(EventDamageTaken, target, target))
	}
	if dst.HP == 0 && before > 0 {
		b.dispatch(events.NewGameEvent(EventEnemyDeath, target, target))
	}

	return lost
}

// AttackToTargetWithBlock deals damage to target equal to source's current
// block.
func (b *Battle) AttackToTargetWithBlock(source, target Target) int {
	src, ok := b.Resolve(source)
	if !ok {
		return 0
	}
	return b.ResolveDamage(source, target, src.Block, 1)
}

// AttackToTargetWithScaling deals baseDamage plus scaling times a
// per-source use counter, bumping the counter on each use (Rampage).
func (b *Battle) AttackToTargetWithScaling(source, target Target, baseDamage, scaling int) int {
	counter := b.rampageCounter(source)
	amount := baseDamage + scaling*counter.Count
	counter.Increment()
	return b.ResolveDamage(source, target, amount, 1)
}

// PerfectedStrike deals baseDamage plus damagePerStrike for each card whose
// name contains "Strike" across every pile.
func (b *Battle) PerfectedStrike(source, target Target, baseDamage, damagePerStrike int) int {
	strikes := 0
	countStrikes := func(pile []*CardInstance) {
		for _, inst := range pile {
			if containsStrike(inst.Card.Name) {
				strikes++
			}
		}
	}
	countStrikes(b.Piles.Draw)
	countStrikes(b.Piles.Hand)
	countStrikes(b.Piles.Discard)
	countStrikes(b.Piles.Exhaust)

	amount := baseDamage + damagePerStrike*strikes
	return b.ResolveDamage(source, target, amount, 1)
}

func containsStrike(name string) bool {
	for i := 0; i+len("Strike") <= len(name); i++ {
		if name[i:i+len("Strike")] == "Strike" {
			return true
		}
	}
	return false
}

// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package battle

import "github.com/castlekeep/spireforge/dice"

// battleRandSource adapts Battle's roller to dice.Sampler's float-source
// requirement without exposing Float64 on the Roller interface itself: a
// million-sided die divided down approximates a uniform float closely
// enough for move-selection weighting, and keeps the same roller (and thus
// the same seed) driving every random decision in the battle.
type battleRandSource struct{ b *Battle }

func (s battleRandSource) Float64() float64 {
	const resolution = 1_000_000
	roll, err := s.b.roller.Roll(resolution)
	if err != nil {
		return 0
	}
	return float64(roll-1) / float64(resolution)
}

// FixedCycleAI reproduces Gremlin Wizard's pattern: charge twice then
// blast on the first cycle, charge three times then blast on every cycle
// after that, and (ascension 17+) blast every turn once the first blast has
// happened, skipping charges entirely.
type FixedCycleAI struct {
	chargeCount      int
	hasUsedFirstHit  bool
	chargeName       string
	hitName          string
	hitDamage        func(ascension int) int
	firstCycleCharges int
	laterCycleCharges int
}

// NewFixedCycleAI builds a FixedCycleAI. hitDamage computes the payoff
// move's damage for the battle's ascension level (Gremlin Wizard: 25, or 30
// at A2+).
func NewFixedCycleAI(chargeName, hitName string, firstCycleCharges, laterCycleCharges int, hitDamage func(ascension int) int) *FixedCycleAI {
	return &FixedCycleAI{
		chargeName:        chargeName,
		hitName:           hitName,
		firstCycleCharges: firstCycleCharges,
		laterCycleCharges: laterCycleCharges,
		hitDamage:         hitDamage,
	}
}

// NextIntent implements EnemyAI.
func (ai *FixedCycleAI) NextIntent(b *Battle, self *EnemySlot) Intent {
	a17Plus := b.Ascension >= 17

	if ai.hasUsedFirstHit && a17Plus {
		return Intent{Name: ai.hitName, DealsDamage: true, Damage: ai.hitDamage(b.Ascension), NumAttacks: 1}
	}

	limit := ai.laterCycleCharges
	if !ai.hasUsedFirstHit {
		limit = ai.firstCycleCharges
	}

	if ai.chargeCount < limit {
		return Intent{Name: ai.chargeName}
	}
	return Intent{Name: ai.hitName, DealsDamage: true, Damage: ai.hitDamage(b.Ascension), NumAttacks: 1}
}

// Act implements EnemyAI: applies the telegraphed intent's effect and
// advances the internal cycle counters exactly the way NextIntent read
// them, so the next NextIntent call sees consistent state.
func (ai *FixedCycleAI) Act(b *Battle, self *EnemySlot) {
	source := b.targetOf(self)

	if self.Intent.Name == ai.chargeName {
		ai.chargeCount++
		return
	}

	ai.chargeCount = 0
	ai.hasUsedFirstHit = true
	b.evalEffect(source, PlayerTarget(), AttackToTarget(self.Intent.Damage, self.Intent.NumAttacks, 1))
}

// WeightedMove is one candidate move in a ConstrainedWeightedAI's pattern.
type WeightedMove struct {
	Name   string
	Weight float64
	Build  func(ascension int) Intent
}

// ConstrainedWeightedAI reproduces Blue Slaver's pattern: a weighted choice
// among named moves, banning any move used twice already in a row (no
// 3-in-a-row), with probabilities renormalized over whatever remains
// available. A caller-supplied extraBan can add ascension-gated rules (A17+
// bans repeating Rake at all).
type ConstrainedWeightedAI struct {
	Moves    []WeightedMove
	ExtraBan func(ascension int, name string, history []string) bool
}

// NewConstrainedWeightedAI builds a ConstrainedWeightedAI over moves.
func NewConstrainedWeightedAI(moves []WeightedMove, extraBan func(ascension int, name string, history []string) bool) *ConstrainedWeightedAI {
	return &ConstrainedWeightedAI{Moves: moves, ExtraBan: extraBan}
}

func noRepeatThrice(name string, history []string) bool {
	n := len(history)
	if n < 2 {
		return false
	}
	return history[n-1] == name && history[n-2] == name
}

// NextIntent implements EnemyAI.
func (ai *ConstrainedWeightedAI) NextIntent(b *Battle, self *EnemySlot) Intent {
	var names []string
	var weights []float64
	var moves []WeightedMove

	for _, m := range ai.Moves {
		if noRepeatThrice(m.Name, self.History) {
			continue
		}
		if ai.ExtraBan != nil && ai.ExtraBan(b.Ascension, m.Name, self.History) {
			continue
		}
		names = append(names, m.Name)
		weights = append(weights, m.Weight)
		moves = append(moves, m)
	}

	if len(moves) == 0 {
		// Every move banned is a content bug (the original ruleset always
		// leaves at least one move legal); fall back to the full list so a
		// malformed pattern degrades instead of panicking.
		for _, m := range ai.Moves {
			names = append(names, m.Name)
			weights = append(weights, m.Weight)
			moves = append(moves, m)
		}
	}

	chosen := dice.NewSampler(names, weights).Sample(battleRandSource{b})
	for _, m := range moves {
		if m.Name == chosen {
			return m.Build(b.Ascension)
		}
	}
	return Intent{Name: chosen}
}

// Act implements EnemyAI: applies the telegraphed intent's damage and/or
// debuff.
func (ai *ConstrainedWeightedAI) Act(b *Battle, self *EnemySlot) {
	source := b.targetOf(self)
	intent := self.Intent

	if intent.DealsDamage {
		b.evalEffect(source, PlayerTarget(), AttackToTarget(intent.Damage, intent.NumAttacks, 1))
	}
	if intent.Debuff {
		b.evalEffect(source, PlayerTarget(), ApplyWeak(intent.WeakDuration))
	}
}

// AlternatingAI reproduces Acid Slime (S)'s pattern: two moves, strictly
// alternating every turn starting with the first.
type AlternatingAI struct {
	moves [2]WeightedMove
	next  int
}

// NewAlternatingAI builds an AlternatingAI starting with first.
func NewAlternatingAI(first, second WeightedMove) *AlternatingAI {
	return &AlternatingAI{moves: [2]WeightedMove{first, second}}
}

// NextIntent implements EnemyAI.
func (ai *AlternatingAI) NextIntent(b *Battle, self *EnemySlot) Intent {
	return ai.moves[ai.next].Build(b.Ascension)
}

// Act implements EnemyAI: applies the telegraphed intent and flips to the
// other move for next time.
func (ai *AlternatingAI) Act(b *Battle, self *EnemySlot) {
	source := b.targetOf(self)
	intent := self.Intent

	if intent.DealsDamage {
		b.evalEffect(source, PlayerTarget(), AttackToTarget(intent.Damage, intent.NumAttacks, 1))
	}
	if intent.Debuff {
		b.evalEffect(source, PlayerTarget(), ApplyWeak(intent.WeakDuration))
	}

	ai.next = 1 - ai.next
}

// targetOf returns the Target addressing self within b.Enemies.
func (b *Battle) targetOf(self *EnemySlot) Target {
	for i, slot := range b.Enemies {
		if slot == self {
			return EnemyTarget(i)
		}
	}
	return EnemyTarget(0)
}

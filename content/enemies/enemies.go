// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

// Package enemies is a representative encounter roster covering each of the
// battle package's EnemyAI patterns: a fixed-cycle caster (Gremlin Wizard),
// a constrained-weighted-sample skirmisher (Blue Slaver), and a one-shot
// reactive tank (a Curl Up-bearing Acid Slime stand-in).
//
// Non-Goals: the full Act 1-3 bestiary, elite/boss-specific mechanics
// beyond what's needed to exercise the AI and listener patterns above.
package enemies

import "github.com/castlekeep/spireforge/battle"

// GremlinWizard builds a Gremlin Wizard combatant and its fixed-cycle AI:
// charges twice then blasts on the first cycle, charges three times then
// blasts every cycle after, blast damage 25 (30 at ascension 2+).
func GremlinWizard(hp int) (*battle.Combatant, battle.EnemyAI) {
	c := battle.NewEnemy("Gremlin Wizard", hp)
	ai := battle.NewFixedCycleAI("Charging", "Ultimate Blast", 2, 3, func(ascension int) int {
		if ascension >= 2 {
			return 30
		}
		return 25
	})
	return c, ai
}

// BlueSlaver builds a Blue Slaver combatant and its constrained-weighted AI:
// 60% Stab (12 damage, 13 at A2+), 40% Rake (7 damage plus 1 turn weak, 8
// damage plus 2 turns weak at A2+/A17+ respectively), never the same move
// three times running, and never Rake twice running at ascension 17+.
func BlueSlaver(hp int) (*battle.Combatant, battle.EnemyAI) {
	c := battle.NewEnemy("Blue Slaver", hp)

	stabDamage := func(ascension int) int {
		if ascension >= 2 {
			return 13
		}
		return 12
	}
	rakeDamage := func(ascension int) int {
		if ascension >= 2 {
			return 8
		}
		return 7
	}
	rakeWeak := func(ascension int) int {
		if ascension >= 17 {
			return 2
		}
		return 1
	}

	ai := battle.NewConstrainedWeightedAI(
		[]battle.WeightedMove{
			{
				Name:   "Stab",
				Weight: 0.6,
				Build: func(ascension int) battle.Intent {
					return battle.Intent{Name: "Stab", DealsDamage: true, Damage: stabDamage(ascension), NumAttacks: 1}
				},
			},
			{
				Name:   "Rake",
				Weight: 0.4,
				Build: func(ascension int) battle.Intent {
					return battle.Intent{
						Name: "Rake", DealsDamage: true, NumAttacks: 1,
						Damage: rakeDamage(ascension), Debuff: true, WeakDuration: rakeWeak(ascension),
					}
				},
			},
		},
		func(ascension int, name string, history []string) bool {
			return ascension >= 17 && name == "Rake" && len(history) >= 1 && history[len(history)-1] == "Rake"
		},
	)

	return c, ai
}

// AcidSlimeS builds a small Acid Slime combatant, its two-move alternating
// AI (Lick for 1 turn weak, then Tackle for damage, repeating), and a Curl
// Up listener factory granting 9 block the first time it takes damage. Pass
// the listener factory to BattleBuilder.AddEnemy so it's bound to the
// enemy's actual Target once assigned a slot.
func AcidSlimeS(hp int) (*battle.Combatant, battle.EnemyAI, func(battle.Target) battle.Listener) {
	c := battle.NewEnemy("Acid Slime (S)", hp)
	curlUp := func(owner battle.Target) battle.Listener {
		return battle.NewCurlUpListener(owner, 9)
	}
	ai := battle.NewAlternatingAI(
		battle.WeightedMove{
			Name: "Lick",
			Build: func(ascension int) battle.Intent {
				return battle.Intent{Name: "Lick", Debuff: true, WeakDuration: 1}
			},
		},
		battle.WeightedMove{
			Name: "Tackle",
			Build: func(ascension int) battle.Intent {
				dmg := 3
				if ascension >= 2 {
					dmg = 4
				}
				return battle.Intent{Name: "Tackle", DealsDamage: true, Damage: dmg, NumAttacks: 1}
			},
		},
	)
	return c, ai, curlUp
}

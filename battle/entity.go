// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package battle

import "fmt"

// Target addresses an entity by role: the player, or an enemy by its stable
// index within the battle's enemy slice. The index stays valid even after
// the enemy dies, preserving index stability for listeners and effects that
// reference it later.
type Target struct {
	Kind  TargetKind
	Index int
}

// TargetKind distinguishes the player slot from an enemy slot.
type TargetKind int

const (
	// TargetNone indicates no target (AoE effects resolve their own target list).
	TargetNone TargetKind = iota
	TargetPlayer
	TargetEnemy
)

// PlayerTarget returns the Target referring to the player.
func PlayerTarget() Target { return Target{Kind: TargetPlayer} }

// EnemyTarget returns the Target referring to the enemy at index i.
func EnemyTarget(i int) Target { return Target{Kind: TargetEnemy, Index: i} }

// String renders the target for diagnostics and event metadata.
func (t Target) String() string {
	switch t.Kind {
	case TargetPlayer:
		return "player"
	case TargetEnemy:
		return fmt.Sprintf("enemy[%d]", t.Index)
	default:
		return "none"
	}
}

// GetID satisfies core.Entity so a Target can be threaded through events as
// a source/target without the event package importing battle.
func (t Target) GetID() string { return t.String() }

// GetType satisfies core.Entity.
func (t Target) GetType() string {
	switch t.Kind {
	case TargetPlayer:
		return "player"
	case TargetEnemy:
		return "enemy"
	default:
		return "none"
	}
}

// Combatant is the combat-relevant state shared by the player and every
// enemy: HP, block, and the buff/debuff counters the damage pipeline and
// effect interpreter read and mutate. Beyond a few small state helpers
// (GainBlock, SpendEnergy, StartTurn) it carries no behavior of its own —
// the battle package's functions decide how an effect changes it, and post
// events around those changes. This keeps Combatant a plain value easy to
// snapshot and compare in tests.
type Combatant struct {
	Name string

	HP    int
	MaxHP int

	Block int

	Strength  int
	Dexterity int

	ArtifactCharges int
	Regen           int
	Metallicize     int
	PlatedArmor     int
	Ritual          int
	Poison          int

	Entangled bool

	// Energy and MaxEnergy are meaningful for the player only; enemies
	// leave them at zero.
	Energy    int
	MaxEnergy int

	// Escaped marks an enemy that fled combat (e.g. Looter) rather than
	// dying. An escaped enemy is treated as dead for targeting and victory
	// checks but is distinct for any caller wanting to know why.
	Escaped bool
}

// NewPlayer creates a Combatant representing the player with the given HP
// and energy.
func NewPlayer(hp, maxHP, maxEnergy int) *Combatant {
	return &Combatant{Name: "player", HP: hp, MaxHP: maxHP, Energy: maxEnergy, MaxEnergy: maxEnergy}
}

// NewEnemy creates a Combatant representing an enemy with the given name and
// HP.
func NewEnemy(name string, hp int) *Combatant {
	return &Combatant{Name: name, HP: hp, MaxHP: hp}
}

// IsAlive reports whether this combatant can still act or be targeted.
func (c *Combatant) IsAlive() bool { return c.HP > 0 && !c.Escaped }

// GainBlock adds amount to current block, applying the holder's dexterity
// (signed) and, if frail is set (the holder is frail and the gain is
// card-sourced), a 0.75x reduction. The increment floors at 0 before being
// added; it is not possible for a block gain to reduce current block.
// Vulnerable/weak/frail are tracked through Battle.Conditions rather than on
// Combatant directly, so the caller resolves frail status before calling.
func (c *Combatant) GainBlock(amount int, cardSourced, frail bool) int {
	gain := amount + c.Dexterity
	if gain < 0 {
		gain = 0
	}
	if frail && cardSourced {
		gain = (gain * 3) / 4
	}
	c.Block += gain
	return gain
}

// SpendEnergy deducts amount from Energy if sufficient, reporting success.
func (c *Combatant) SpendEnergy(amount int) bool {
	if c.Energy < amount {
		return false
	}
	c.Energy -= amount
	return true
}

// GainStrength adds amount (may be negative) to Strength.
func (c *Combatant) GainStrength(amount int) { c.Strength += amount }

// GainDexterity adds amount (may be negative) to Dexterity.
func (c *Combatant) GainDexterity(amount int) { c.Dexterity += amount }

// StartTurn resets the player's energy to max and resets block to 0.
// Enemies use the same reset for their own "start of turn" processing
// except energy, which stays at zero for them. Vulnerable/weak/frail
// expire separately, when Battle.dispatch sweeps Battle.Conditions on the
// owner's EventEndOfTurn, since that needs the owner's Target.
func (c *Combatant) StartTurn() {
	if c.MaxEnergy > 0 {
		c.Energy = c.MaxEnergy
	}
	c.Block = 0
}

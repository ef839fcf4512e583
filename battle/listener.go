// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package battle

import "github.com/castlekeep/spireforge/events"

// Listener is a stateful subscriber owned by an entity: a persistent power
// (Corruption, Combust, Metallicize), a one-shot enemy reaction (Curl Up),
// or a relic carrying combat behavior. Listeners reference their owner by
// Target (index/tag), never by pointer, so a dead enemy simply produces no
// effect on the next event rather than dangling.
type Listener interface {
	// OnEvent reacts to event and returns effects to run, sourced from the
	// listener's owner against the owner's default target.
	OnEvent(b *Battle, event events.Event) []Effect

	// IsActive reports whether the listener should remain subscribed.
	// Listeners that return false are swept after the current event burst.
	IsActive() bool

	// Owner returns the entity this listener belongs to.
	Owner() Target
}

// CurlUpListener is a one-shot enemy reaction: the first time its owner
// takes damage, it gains a fixed amount of block, then deactivates.
type CurlUpListener struct {
	owner       Target
	blockAmount int
	used        bool
}

// NewCurlUpListener creates a Curl Up listener granting blockAmount block on
// first damage taken.
func NewCurlUpListener(owner Target, blockAmount int) *CurlUpListener {
	return &CurlUpListener{owner: owner, blockAmount: blockAmount}
}

// OnEvent implements Listener.
func (l *CurlUpListener) OnEvent(b *Battle, event events.Event) []Effect {
	if l.used || event.Type() != EventDamageTaken {
		return nil
	}
	if event.Target() == nil || event.Target().GetID() != l.owner.GetID() {
		return nil
	}
	l.used = true
	return []Effect{GainBlock(l.blockAmount)}
}

// IsActive implements Listener.
func (l *CurlUpListener) IsActive() bool { return !l.used }

// Owner implements Listener.
func (l *CurlUpListener) Owner() Target { return l.owner }

// EnrageListener (Gremlin Nob): whenever the player plays a Skill card, the
// owner gains strength. Always active.
type EnrageListener struct {
	owner  Target
	amount int
}

// NewEnrageListener creates an Enrage listener granting amount strength per
// player skill play.
func NewEnrageListener(owner Target, amount int) *EnrageListener {
	return &EnrageListener{owner: owner, amount: amount}
}

// OnEvent implements Listener.
func (l *EnrageListener) OnEvent(b *Battle, event events.Event) []Effect {
	if event.Type() != EventSkillCardPlayed {
		return nil
	}
	if event.Source() == nil || event.Source().GetID() != PlayerTarget().GetID() {
		return nil
	}
	return []Effect{GainStrength(l.amount)}
}

// IsActive implements Listener; Enrage never deactivates.
func (l *EnrageListener) IsActive() bool { return true }

// Owner implements Listener.
func (l *EnrageListener) Owner() Target { return l.owner }

// LoseStrengthListener fires once, on its owner's own end-of-turn, reducing
// its strength (Gremlin Nob's post-combo comedown, generalized).
type LoseStrengthListener struct {
	owner  Target
	amount int
	active bool
}

// NewLoseStrengthListener creates a one-shot strength-loss listener.
func NewLoseStrengthListener(owner Target, amount int) *LoseStrengthListener {
	return &LoseStrengthListener{owner: owner, amount: amount, active: true}
}

// OnEvent implements Listener.
func (l *LoseStrengthListener) OnEvent(b *Battle, event events.Event) []Effect {
	if !l.active || event.Type() != EventEndOfTurn {
		return nil
	}
	if event.Source() == nil || event.Source().GetID() != l.owner.GetID() {
		return nil
	}
	l.active = false
	return []Effect{LoseStrength(l.amount)}
}

// IsActive implements Listener.
func (l *LoseStrengthListener) IsActive() bool { return l.active }

// Owner implements Listener.
func (l *LoseStrengthListener) Owner() Target { return l.owner }

// CombustListener deals amount AoE damage and 1 self HP loss at the end of
// the player's turn. Always active once registered.
type CombustListener struct {
	owner  Target
	amount int
}

// NewCombustListener creates a Combust listener.
func NewCombustListener(owner Target, amount int) *CombustListener {
	return &CombustListener{owner: owner, amount: amount}
}

// OnEvent implements Listener.
func (l *CombustListener) OnEvent(b *Battle, event events.Event) []Effect {
	if event.Type() != EventEndOfTurn {
		return nil
	}
	if event.Source() == nil || event.Source().GetID() != PlayerTarget().GetID() {
		return nil
	}
	return []Effect{AttackAllEnemies(l.amount, 1), LoseHP(1)}
}

// IsActive implements Listener; Combust never deactivates.
func (l *CombustListener) IsActive() bool { return true }

// Owner implements Listener.
func (l *CombustListener) Owner() Target { return l.owner }

// MetallicizeListener grants amount block to its owner at the end of its
// owner's turn. Always active once registered.
type MetallicizeListener struct {
	owner  Target
	amount int
}

// NewMetallicizeListener creates a Metallicize listener.
func NewMetallicizeListener(owner Target, amount int) *MetallicizeListener {
	return &MetallicizeListener{owner: owner, amount: amount}
}

// OnEvent implements Listener.
func (l *MetallicizeListener) OnEvent(b *Battle, event events.Event) []Effect {
	if event.Type() != EventEndOfTurn {
		return nil
	}
	if event.Source() == nil || event.Source().GetID() != l.owner.GetID() {
		return nil
	}
	return []Effect{GainBlock(l.amount)}
}

// IsActive implements Listener; Metallicize never deactivates.
func (l *MetallicizeListener) IsActive() bool { return true }

// Owner implements Listener.
func (l *MetallicizeListener) Owner() Target { return l.owner }

// CorruptionListener makes Skill cards cost 0 and marks them for exhaust
// instead of discard. It is consulted directly by the card-play engine
// (Battle.CorruptionActive) rather than acting purely through OnEvent,
// since cost modification happens before any event is posted. The
// exhaust-instead-of-discard rule is applied the same way, by
// finishRetirement; OnEvent returns no effects.
type CorruptionListener struct {
	owner Target
}

// NewCorruptionListener creates a Corruption listener.
func NewCorruptionListener(owner Target) *CorruptionListener {
	return &CorruptionListener{owner: owner}
}

// OnEvent implements Listener. Corruption's cost-zero and exhaust-instead-
// of-discard effects are applied directly by the card-play engine checking
// Battle.CorruptionActive; OnEvent contributes no additional effects.
func (l *CorruptionListener) OnEvent(b *Battle, event events.Event) []Effect { return nil }

// IsActive implements Listener; Corruption never deactivates.
func (l *CorruptionListener) IsActive() bool { return true }

// Owner implements Listener.
func (l *CorruptionListener) Owner() Target { return l.owner }

// DoubleTapListener consumes one charge each time the player plays an
// Attack card, signaling the card-play engine to replay that card once it
// finishes resolving. See Battle.tryConsumeDoubleTap, called from PlayCard.
type DoubleTapListener struct {
	owner     Target
	remaining int
}

// NewDoubleTapListener creates a Double Tap listener with the given charge
// count.
func NewDoubleTapListener(owner Target, remaining int) *DoubleTapListener {
	return &DoubleTapListener{owner: owner, remaining: remaining}
}

// OnEvent implements Listener. Double Tap's replay signal is read directly
// by the card-play engine (Battle.tryConsumeDoubleTap) rather than through
// returned effects, since "replay this card" isn't expressible as an
// Effect against a target — it re-enters the play pipeline itself.
func (l *DoubleTapListener) OnEvent(b *Battle, event events.Event) []Effect { return nil }

// IsActive implements Listener; the listener stays subscribed even at zero
// charges in case content later refills it, but tryConsumeDoubleTap only acts
// while remaining > 0.
func (l *DoubleTapListener) IsActive() bool { return true }

// Owner implements Listener.
func (l *DoubleTapListener) Owner() Target { return l.owner }

// SporeCloudListener (Fungi Beast): on this enemy's death, applies
// vulnerable to the player for the given duration.
type SporeCloudListener struct {
	owner    Target
	duration int
	used     bool
}

// NewSporeCloudListener creates a Spore Cloud listener.
func NewSporeCloudListener(owner Target, duration int) *SporeCloudListener {
	return &SporeCloudListener{owner: owner, duration: duration}
}

// OnEvent implements Listener.
func (l *SporeCloudListener) OnEvent(b *Battle, event events.Event) []Effect {
	if l.used || event.Type() != EventEnemyDeath {
		return nil
	}
	if event.Target() == nil || event.Target().GetID() != l.owner.GetID() {
		return nil
	}
	l.used = true
	return []Effect{ToPlayer(ApplyVulnerable(l.duration))}
}

// IsActive implements Listener.
func (l *SporeCloudListener) IsActive() bool { return !l.used }

// Owner implements Listener.
func (l *SporeCloudListener) Owner() Target { return l.owner }

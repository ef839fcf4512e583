// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package battle

import (
	"github.com/castlekeep/spireforge/dice"
	"github.com/castlekeep/spireforge/events"
	"github.com/castlekeep/spireforge/mechanics/conditions"
	"github.com/castlekeep/spireforge/mechanics/resources"
)

// Intent describes what an enemy has telegraphed for its upcoming turn,
// visible to the player before they act and consulted by conditions like
// EnemyIsAttacking.
type Intent struct {
	Name        string
	DealsDamage bool
	Damage      int
	NumAttacks  int
	Block       bool
	Buff        bool
	Debuff      bool
	// WeakDuration is the number of turns of weak this intent applies to
	// the player, when Debuff is set.
	WeakDuration int
}

// EnemyAI chooses the next move for the enemy it's attached to. Move
// selection may depend on move history (Blue Slaver's no-3-in-a-row rule) or
// a fixed internal cycle (Gremlin Wizard), so the interface takes the full
// EnemySlot rather than just the Combatant.
type EnemyAI interface {
	// NextIntent picks the move for this enemy's upcoming turn and returns
	// the telegraphed Intent. It is called once when the battle is built and
	// again at the start of every later player turn, so the player sees the
	// intent before acting on it.
	NextIntent(b *Battle, self *EnemySlot) Intent

	// Act executes the previously telegraphed intent, applying its effects.
	Act(b *Battle, self *EnemySlot)
}

// EnemySlot pairs one enemy's combat state with its AI and move history.
// Index into Battle.Enemies is the stable identity EnemyTarget addresses;
// a dead enemy's slot stays in place so later indices don't shift.
type EnemySlot struct {
	Combatant *Combatant
	AI        EnemyAI
	Intent    Intent

	// History records the name of every move this enemy has used, oldest
	// first, for AI patterns that ban repeats (Blue Slaver).
	History []string
}

// CardFactory instantiates a card by name, used by effects that add cards
// to a pile at eval time (AddCardToHand et al.) without effect.go needing a
// dependency on content/.
type CardFactory func(name string) *Card

// Battle is the aggregate root: everything needed to resolve one combat
// encounter from start to victory or defeat.
type Battle struct {
	Piles  *Piles
	Bus    *events.Bus
	Player *Combatant

	Enemies []*EnemySlot

	Conditions *conditions.Manager
	Listeners  []Listener

	// CorruptionActive mirrors whether a CorruptionListener is registered;
	// checked directly by Card.EffectiveCost and the card-play engine's
	// retirement logic, since both run before any event is posted.
	CorruptionActive bool

	Ascension int
	Turn      int
	Round     int

	roller dice.Roller

	rampageCounters map[string]*resources.Counter

	cardFactory CardFactory

	// Potions holds the player's consumable slots; UsePotion (potion.go)
	// is the only thing that reads or clears them.
	Potions PotionInventory

	// State is the top-level state machine (see state.go). PlayCard and
	// EndTurn both check it before acting.
	State BattleState

	// pending tracks a suspended card's remaining effects while State is
	// StateAwaitingSelection.
	pending selection

	// dispatchDepth counts nested dispatch calls. A listener's effect can
	// itself cause damage that dispatches another event (Curl Up reacting
	// to DamageTaken, Combust's end-of-turn AoE dispatching more
	// DamageTaken) before the outer dispatch ever reaches Bus.Publish, so
	// the bus's own cascade-depth guard never sees this recursion; dispatch
	// bounds it directly instead.
	dispatchDepth int

	// pendingExhaust/pendingEthereal are set by markPendingExhaust/
	// markPendingEthereal while a card's effect list is resolving, and read
	// by PlayCard once it finishes to decide the card's retirement pile.
	pendingExhaust  bool
	pendingEthereal bool

	// Won/Lost latch once combat resolves; PlayCard and EndTurn both refuse
	// to act once either is set (CodeGameAlreadyOver).
	Won  bool
	Lost bool
}

// IntN returns a uniform random index in [0, n) from the battle's roller,
// satisfying the intn signature Piles.Shuffle/Draw expect.
func (b *Battle) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	roll, err := b.roller.Roll(n)
	if err != nil {
		return 0
	}
	return roll - 1
}

// Resolve looks up the Combatant addressed by target. ok is false when
// target names an enemy index outside the current slice or is a TargetNone;
// a dead or escaped combatant still resolves (callers check IsAlive
// themselves).
func (b *Battle) Resolve(target Target) (*Combatant, bool) {
	switch target.Kind {
	case TargetPlayer:
		return b.Player, true
	case TargetEnemy:
		if target.Index < 0 || target.Index >= len(b.Enemies) {
			return nil, false
		}
		return b.Enemies[target.Index].Combatant, true
	default:
		return nil, false
	}
}

// EnemyState looks up the EnemySlot addressed by target. ok is false for
// the player target or an out-of-range index.
func (b *Battle) EnemyState(target Target) (*EnemySlot, bool) {
	if target.Kind != TargetEnemy || target.Index < 0 || target.Index >= len(b.Enemies) {
		return nil, false
	}
	return b.Enemies[target.Index], true
}

// LivingEnemyTargets returns the Target for every enemy slot that is still
// alive, in index order.
func (b *Battle) LivingEnemyTargets() []Target {
	var out []Target
	for i, slot := range b.Enemies {
		if slot.Combatant.IsAlive() {
			out = append(out, EnemyTarget(i))
		}
	}
	return out
}

// AllEnemiesDefeated reports whether every enemy slot is dead or escaped.
func (b *Battle) AllEnemiesDefeated() bool {
	for _, slot := range b.Enemies {
		if slot.Combatant.IsAlive() {
			return false
		}
	}
	return true
}

// rampageCounter returns the per-source hit counter backing
// AttackToTargetWithScaling (Rampage), creating it on first use.
func (b *Battle) rampageCounter(source Target) *resources.Counter {
	if b.rampageCounters == nil {
		b.rampageCounters = make(map[string]*resources.Counter)
	}
	key := source.String()
	counter, ok := b.rampageCounters[key]
	if !ok {
		counter = resources.NewCounter("rampage:"+key, 0)
		b.rampageCounters[key] = counter
	}
	return counter
}

// InstantiateCard builds a *Card for name via the registered CardFactory.
// Returns nil if no factory is registered or name is unknown, in which case
// callers should treat the insertion effect as a no-op rather than panic —
// unknown content names are a caller bug, not a battle-state error.
func (b *Battle) InstantiateCard(name string) *Card {
	if b.cardFactory == nil {
		return nil
	}
	return b.cardFactory(name)
}

// registerListener appends listener and, if it is a CorruptionListener,
// flips CorruptionActive so cost/retirement checks can stay allocation-free.
func (b *Battle) registerListener(l Listener) {
	b.Listeners = append(b.Listeners, l)
	if _, ok := l.(*CorruptionListener); ok {
		b.CorruptionActive = true
	}
}

// Condition names tracked in Battle.Conditions. These are distinct from the
// conditions package's own event-type constants (EventTurnEnd et al.), which
// this battle's EventEndOfTurn/EventRoundEnd intentionally share string
// values with so Sweep expires them without any translation layer.
const (
	conditionVulnerable = "vulnerable"
	conditionWeak       = "weak"
	conditionFrail      = "frail"
)

// hasCondition reports whether target currently carries the named condition.
func (b *Battle) hasCondition(target Target, name string) bool {
	_, ok := b.Conditions.Get(target.GetID(), name)
	return ok
}

// IsVulnerable reports whether target takes 1.5x damage.
func (b *Battle) IsVulnerable(target Target) bool { return b.hasCondition(target, conditionVulnerable) }

// IsWeak reports whether target deals 0.75x damage.
func (b *Battle) IsWeak(target Target) bool { return b.hasCondition(target, conditionWeak) }

// IsFrail reports whether target gains 0.75x block from card-sourced block
// gains.
func (b *Battle) IsFrail(target Target) bool { return b.hasCondition(target, conditionFrail) }

// applyDebuff adds turns of the named debuff to target, through
// Conditions, extending an existing TurnsDuration rather than stacking a
// second condition of the same name. An artifact charge absorbs the
// application entirely instead, reporting false.
func (b *Battle) applyDebuff(target Target, name string, turns int) bool {
	if c, ok := b.Resolve(target); ok && c.ArtifactCharges > 0 {
		c.ArtifactCharges--
		return false
	}

	id := target.GetID()
	if existing, ok := b.Conditions.Get(id, name); ok {
		if td, ok := existing.Duration.(*conditions.TurnsDuration); ok {
			td.Turns += turns
			return true
		}
	}
	b.Conditions.Add(conditions.New(name, id, 1, conditions.NewTurnsDuration(turns, id)))
	return true
}

// maxDispatchDepth bounds listener-effect recursion through dispatch,
// matching events.DefaultMaxDepth. Without it two reflect-style listeners
// could re-trigger each other (via ResolveDamage) forever.
const maxDispatchDepth = 32

// dispatch runs event through every active listener (collecting and
// applying the effects each returns), publishes it on the bus, then sweeps
// conditions and dead listeners. This is the single place battle-domain
// code funnels events through, so listener reactions and condition
// expiry both see every event exactly once.
func (b *Battle) dispatch(event events.Event) {
	b.dispatchDepth++
	defer func() { b.dispatchDepth-- }()
	if b.dispatchDepth > maxDispatchDepth {
		return
	}

	for _, l := range b.Listeners {
		if !l.IsActive() {
			continue
		}
		for _, eff := range l.OnEvent(b, event) {
			b.evalEffect(l.Owner(), l.Owner(), eff)
		}
	}

	_ = b.Bus.Publish(event)
	b.Conditions.Sweep(event)
	b.sweepListeners()
}

func (b *Battle) sweepListeners() {
	kept := b.Listeners[:0]
	for _, l := range b.Listeners {
		if l.IsActive() {
			kept = append(kept, l)
		}
	}
	b.Listeners = kept
}

// BattleBuilder assembles a Battle with fluent defaults, mirroring the
// player-HP/energy and encounter-assembly conveniences a real run's combat
// setup needs without hand-wiring every field.
type BattleBuilder struct {
	playerHP, playerMaxHP int
	maxEnergy              int
	deck                   []*Card
	enemies                []*EnemySlot
	ascension              int
	seed                   uint64
	hasSeed                bool
	cardFactory            CardFactory
	potions                PotionInventory

	pendingListeners []pendingListener
}

// pendingListener defers listener construction until Build knows the
// enemy's final index (and therefore its Target).
type pendingListener struct {
	target  Target
	factory func(Target) Listener
}

// NewBattleBuilder creates a builder with the series defaults: 80/80 HP, 3
// energy, no enemies, no deck, ascension 0.
func NewBattleBuilder() *BattleBuilder {
	return &BattleBuilder{playerHP: 80, playerMaxHP: 80, maxEnergy: 3}
}

// WithHP overrides the player's starting and maximum HP.
func (bb *BattleBuilder) WithHP(hp, maxHP int) *BattleBuilder {
	bb.playerHP, bb.playerMaxHP = hp, maxHP
	return bb
}

// WithEnergy overrides the player's max energy.
func (bb *BattleBuilder) WithEnergy(energy int) *BattleBuilder {
	bb.maxEnergy = energy
	return bb
}

// WithDeck sets the player's starting deck (draw pile, unshuffled until
// Build shuffles it).
func (bb *BattleBuilder) WithDeck(cards ...*Card) *BattleBuilder {
	bb.deck = cards
	return bb
}

// AddEnemy appends one enemy combatant with its AI to the encounter.
// listenerFactories build any persistent reactions the enemy carries (e.g.
// Curl Up) once its final Target is known.
func (bb *BattleBuilder) AddEnemy(combatant *Combatant, ai EnemyAI, listenerFactories ...func(Target) Listener) *BattleBuilder {
	index := len(bb.enemies)
	bb.enemies = append(bb.enemies, &EnemySlot{Combatant: combatant, AI: ai})
	target := EnemyTarget(index)
	for _, factory := range listenerFactories {
		bb.pendingListeners = append(bb.pendingListeners, pendingListener{target: target, factory: factory})
	}
	return bb
}

// WithAscension sets the ascension level, consulted by EnemyAI
// implementations to scale HP/damage and unlock harder move patterns.
func (bb *BattleBuilder) WithAscension(level int) *BattleBuilder {
	bb.ascension = level
	return bb
}

// WithSeed fixes the battle's RNG seed for deterministic replay. Without a
// call to WithSeed, Build uses a non-deterministic CryptoRoller.
func (bb *BattleBuilder) WithSeed(seed uint64) *BattleBuilder {
	bb.seed = seed
	bb.hasSeed = true
	return bb
}

// WithCardFactory registers the lookup used by card-insertion effects
// (AddCardToHand/Discard/TopOfDraw) to instantiate a card by name.
func (bb *BattleBuilder) WithCardFactory(factory CardFactory) *BattleBuilder {
	bb.cardFactory = factory
	return bb
}

// WithPotions sets the player's starting potion slots.
func (bb *BattleBuilder) WithPotions(potions ...*Potion) *BattleBuilder {
	bb.potions = potions
	return bb
}

// Build assembles the Battle: shuffles the starting deck into the draw
// pile, posts CombatStart, and draws the player's opening hand.
func (bb *BattleBuilder) Build() *Battle {
	var roller dice.Roller
	if bb.hasSeed {
		roller = dice.NewSeededRoller(bb.seed)
	} else {
		roller = dice.NewRoller()
	}

	b := &Battle{
		Piles:           NewPiles(bb.deck),
		Bus:             events.NewBus(),
		Player:          NewPlayer(bb.playerHP, bb.playerMaxHP, bb.maxEnergy),
		Enemies:         bb.enemies,
		Conditions:      conditions.NewManager(),
		Ascension:       bb.ascension,
		roller:          roller,
		rampageCounters: make(map[string]*resources.Counter),
		cardFactory:     bb.cardFactory,
		Potions:         bb.potions,
	}

	for _, pl := range bb.pendingListeners {
		b.registerListener(pl.factory(pl.target))
	}

	Shuffle(b.Piles.Draw, b.IntN)
	b.dispatch(events.NewGameEvent(EventCombatStart, PlayerTarget(), PlayerTarget()))

	b.Turn = 1
	b.Round = 1
	b.Player.StartTurn()
	b.dispatch(events.NewGameEvent(EventStartOfTurn, PlayerTarget(), PlayerTarget()))
	for range b.Piles.Draw(StartingHandSize, b.IntN) {
		b.dispatch(events.NewGameEvent(EventCardDrawn, PlayerTarget(), PlayerTarget()))
	}
	for _, slot := range b.Enemies {
		if slot.Combatant.IsAlive() {
			slot.Intent = slot.AI.NextIntent(b, slot)
		}
	}

	return b
}

// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package events

import (
	"time"

	"github.com/castlekeep/spireforge/core"
)

// Event represents something that happened during a battle.
type Event interface {
	// Type returns the event type (e.g. "card_played", "damage_dealt").
	Type() string

	// Source returns the entity that triggered the event, if any.
	Source() core.Entity

	// Target returns the entity affected by the event, if any.
	Target() core.Entity

	// Timestamp returns when the event occurred.
	Timestamp() time.Time

	// Context returns the event-specific data and modifier bag.
	Context() Context

	// IsCancelled returns whether a handler has cancelled the event.
	IsCancelled() bool

	// Cancel marks the event as cancelled, preventing further processing by
	// later handlers. Handlers already invoked are not undone.
	Cancel()
}

// Context holds event-specific data and collects modifiers contributed by
// handlers as the event is processed.
type Context interface {
	// Get retrieves a value by key.
	Get(key string) (interface{}, bool)

	// Set stores a value by key.
	Set(key string, value interface{})

	// AddModifier adds a modifier that later handlers (or the publisher,
	// once Publish returns) can apply.
	AddModifier(modifier Modifier)

	// Modifiers returns all modifiers added to this context so far, in the
	// order they were added.
	Modifiers() []Modifier
}

// Modifier represents a contribution to an event's outcome, added by a
// handler reacting to the event (a status, a relic, a temporary buff).
type Modifier interface {
	// Source identifies what added this modifier (e.g. "strength", "weak").
	Source() string

	// Type categorizes the modifier (e.g. "damage_bonus", "block_bonus").
	Type() string

	// ModifierValue returns the value to apply.
	ModifierValue() ModifierValue

	// Priority determines application order among modifiers of the same
	// type; lower values apply first.
	Priority() int
}

// GameEvent is the standard Event implementation.
type GameEvent struct {
	eventType string
	source    core.Entity
	target    core.Entity
	timestamp time.Time
	context   Context
	cancelled bool
}

// NewGameEvent creates a new game event with a fresh context.
func NewGameEvent(eventType string, source, target core.Entity) *GameEvent {
	return &GameEvent{
		eventType: eventType,
		source:    source,
		target:    target,
		timestamp: time.Now(),
		context:   NewEventContext(),
	}
}

// Type returns the event type.
func (e *GameEvent) Type() string { return e.eventType }

// Source returns the event source.
func (e *GameEvent) Source() core.Entity { return e.source }

// Target returns the event target.
func (e *GameEvent) Target() core.Entity { return e.target }

// Timestamp returns the event timestamp.
func (e *GameEvent) Timestamp() time.Time { return e.timestamp }

// Context returns the event context.
func (e *GameEvent) Context() Context { return e.context }

// IsCancelled returns whether the event has been cancelled.
func (e *GameEvent) IsCancelled() bool { return e.cancelled }

// Cancel marks the event as cancelled.
func (e *GameEvent) Cancel() { e.cancelled = true }

// EventContext is the standard Context implementation.
type EventContext struct {
	data      map[string]interface{}
	modifiers []Modifier
}

// NewEventContext creates a new, empty event context.
func NewEventContext() *EventContext {
	return &EventContext{
		data:      make(map[string]interface{}),
		modifiers: []Modifier{},
	}
}

// Get retrieves a value by key.
func (c *EventContext) Get(key string) (interface{}, bool) {
	val, ok := c.data[key]
	return val, ok
}

// Set stores a value by key.
func (c *EventContext) Set(key string, value interface{}) {
	c.data[key] = value
}

// AddModifier adds a modifier to this context.
func (c *EventContext) AddModifier(modifier Modifier) {
	c.modifiers = append(c.modifiers, modifier)
}

// Modifiers returns all modifiers added to this context.
func (c *EventContext) Modifiers() []Modifier {
	return c.modifiers
}

// BasicModifier is a simple Modifier implementation.
type BasicModifier struct {
	source   string
	modType  string
	modValue ModifierValue
	priority int
}

// NewModifier creates a new basic modifier.
func NewModifier(source, modType string, value ModifierValue, priority int) *BasicModifier {
	return &BasicModifier{
		source:   source,
		modType:  modType,
		modValue: value,
		priority: priority,
	}
}

// Source returns the source of the modifier.
func (m *BasicModifier) Source() string { return m.source }

// Type returns the type of the modifier.
func (m *BasicModifier) Type() string { return m.modType }

// ModifierValue returns the value of the modifier.
func (m *BasicModifier) ModifierValue() ModifierValue { return m.modValue }

// Priority returns the priority of the modifier.
func (m *BasicModifier) Priority() int { return m.priority }

// HandlerFunc handles an event delivered by the Bus.
type HandlerFunc func(event Event) error

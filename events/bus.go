// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package events

import (
	"fmt"
	"sort"
	"sync/atomic"
)

// DefaultMaxDepth is the default cascade-depth limit: how many Publish
// calls may be nested (a handler publishing an event whose handlers publish
// another, and so on) before the bus refuses to go deeper. This guards
// against handler cycles in which each handler publishes an event that
// re-triggers the other forever.
const DefaultMaxDepth = 32

type subscription struct {
	id       string
	priority int
	seq      int
	handler  HandlerFunc
}

// Bus is a synchronous, priority-ordered event bus. Publish delivers an
// event to every handler subscribed to its type, in ascending priority
// order (ties broken by subscription order), then returns.
type Bus struct {
	handlers map[string][]subscription
	nextID   int
	nextSeq  int
	depth    int32
	maxDepth int32
}

// NewBus creates a bus with the default cascade-depth limit.
func NewBus() *Bus {
	return NewBusWithMaxDepth(DefaultMaxDepth)
}

// NewBusWithMaxDepth creates a bus with a custom cascade-depth limit.
func NewBusWithMaxDepth(maxDepth int32) *Bus {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	return &Bus{
		handlers: make(map[string][]subscription),
		maxDepth: maxDepth,
	}
}

// Subscribe registers handler for events of the given type. Handlers with a
// lower priority value run first; ties run in subscription order. Returns a
// subscription ID usable with Unsubscribe.
func (b *Bus) Subscribe(eventType string, priority int, handler HandlerFunc) string {
	b.nextID++
	b.nextSeq++
	id := fmt.Sprintf("sub-%d", b.nextID)

	subs := append(b.handlers[eventType], subscription{
		id:       id,
		priority: priority,
		seq:      b.nextSeq,
		handler:  handler,
	})
	sort.SliceStable(subs, func(i, j int) bool {
		if subs[i].priority != subs[j].priority {
			return subs[i].priority < subs[j].priority
		}
		return subs[i].seq < subs[j].seq
	})
	b.handlers[eventType] = subs

	return id
}

// Unsubscribe removes a subscription by ID. Returns false if the ID was not
// found.
func (b *Bus) Unsubscribe(id string) bool {
	for eventType, subs := range b.handlers {
		for i, s := range subs {
			if s.id == id {
				b.handlers[eventType] = append(subs[:i:i], subs[i+1:]...)
				return true
			}
		}
	}
	return false
}

// Publish delivers event to every handler subscribed to its type, in
// priority order. It stops early if the event is cancelled or a handler
// returns an error. Publish is re-entrant: a handler may publish further
// events, up to the bus's cascade-depth limit.
func (b *Bus) Publish(event Event) error {
	depth := atomic.AddInt32(&b.depth, 1)
	defer atomic.AddInt32(&b.depth, -1)

	if depth > b.maxDepth {
		return fmt.Errorf("events: cascade depth exceeded (max %d) publishing %q", b.maxDepth, event.Type())
	}

	// Snapshot before dispatch: handlers that subscribe or unsubscribe
	// mid-dispatch affect the next Publish, not this one.
	subs := append([]subscription(nil), b.handlers[event.Type()]...)

	for _, s := range subs {
		if event.IsCancelled() {
			break
		}
		if err := s.handler(event); err != nil {
			return fmt.Errorf("events: handler %s failed: %w", s.id, err)
		}
	}

	return nil
}

// Clear removes all subscriptions. Intended for tests.
func (b *Bus) Clear() {
	b.handlers = make(map[string][]subscription)
}

// Depth returns the current publish recursion depth, for diagnostics.
func (b *Bus) Depth() int32 {
	return atomic.LoadInt32(&b.depth)
}

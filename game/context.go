// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package game

import (
	"fmt"

	"github.com/castlekeep/spireforge/events"
)

// Context provides a consistent pattern for loading game entities from data.
// It combines the entity's data with the game infrastructure needed for
// runtime operations.
//
// The generic type T represents the data structure for the specific entity
// being loaded, e.g. Context[*battle.Card] as built by content/cards.Load.
type Context[T any] struct {
	eventBus *events.Bus
	data     T
}

// NewContext creates a Context with the given event bus and data. Returns an
// error if eventBus is nil, since every entity loaded through a Context is
// expected to participate in the event system.
func NewContext[T any](eventBus *events.Bus, data T) (Context[T], error) {
	if eventBus == nil {
		return Context[T]{}, fmt.Errorf("game: eventBus is required")
	}
	return Context[T]{eventBus: eventBus, data: data}, nil
}

// EventBus returns the event bus this context was constructed with.
func (c Context[T]) EventBus() *events.Bus { return c.eventBus }

// Data returns the entity data this context was constructed with.
func (c Context[T]) Data() T { return c.data }

// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package conditions

import (
	"github.com/castlekeep/spireforge/events"
)

// Manager tracks conditions per entity and sweeps expired ones when fed
// battle events.
type Manager struct {
	byEntity map[string]map[string]*Condition // entityID -> name -> Condition
}

// NewManager creates an empty condition manager.
func NewManager() *Manager {
	return &Manager{byEntity: make(map[string]map[string]*Condition)}
}

// Add attaches a condition to an entity, stacking onto an existing
// condition of the same name if present (the existing duration is kept;
// only the incoming stacks are added).
func (m *Manager) Add(c *Condition) {
	entityConditions, ok := m.byEntity[c.EntityID]
	if !ok {
		entityConditions = make(map[string]*Condition)
		m.byEntity[c.EntityID] = entityConditions
	}

	if existing, ok := entityConditions[c.Name]; ok {
		existing.AddStacks(c.Stacks)
		return
	}
	entityConditions[c.Name] = c
}

// Get returns the named condition on entityID, if present.
func (m *Manager) Get(entityID, name string) (*Condition, bool) {
	entityConditions, ok := m.byEntity[entityID]
	if !ok {
		return nil, false
	}
	c, ok := entityConditions[name]
	return c, ok
}

// Remove deletes the named condition from entityID.
func (m *Manager) Remove(entityID, name string) {
	if entityConditions, ok := m.byEntity[entityID]; ok {
		delete(entityConditions, name)
	}
}

// All returns every condition currently tracked on entityID.
func (m *Manager) All(entityID string) []*Condition {
	entityConditions, ok := m.byEntity[entityID]
	if !ok {
		return nil
	}
	result := make([]*Condition, 0, len(entityConditions))
	for _, c := range entityConditions {
		result = append(result, c)
	}
	return result
}

// Sweep removes every condition whose duration has expired given event, and
// returns the removed conditions.
func (m *Manager) Sweep(event events.Event) []*Condition {
	var expired []*Condition

	for _, entityConditions := range m.byEntity {
		for name, c := range entityConditions {
			if c.Duration != nil && c.Duration.IsExpired(event) {
				expired = append(expired, c)
				delete(entityConditions, name)
			}
		}
	}

	return expired
}

// Clear removes every condition from every entity.
func (m *Manager) Clear() {
	m.byEntity = make(map[string]map[string]*Condition)
}

// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package conditions

import (
	"fmt"

	"github.com/castlekeep/spireforge/events"
)

// Event types duration tracking listens for. Battle-domain code publishes
// events under these types at the appropriate phase boundaries.
const (
	EventTurnEnd  = "turn_end"
	EventRoundEnd = "round_end"
	EventDamaged  = "damaged"
)

// Duration decides when a Condition should expire.
type Duration interface {
	// IsExpired reports whether event marks this duration's end.
	IsExpired(event events.Event) bool

	// Description is a short human-readable summary, e.g. "2 turns".
	Description() string
}

// PermanentDuration never expires on its own; it must be removed explicitly.
type PermanentDuration struct{}

// IsExpired always returns false.
func (d PermanentDuration) IsExpired(events.Event) bool { return false }

// Description returns "Permanent".
func (d PermanentDuration) Description() string { return "Permanent" }

// TurnsDuration expires after a specific entity has ended its turn a given
// number of times. This is the duration vulnerable/weak/frail use: "lasts 2
// turns" counts the target's own upcoming turns, not any turn in the battle.
type TurnsDuration struct {
	Turns      int
	TurnsTaken int
	EntityID   string
}

// NewTurnsDuration creates a duration that expires after turns turn-ends for
// entityID.
func NewTurnsDuration(turns int, entityID string) *TurnsDuration {
	return &TurnsDuration{Turns: turns, EntityID: entityID}
}

// IsExpired increments the internal counter on a matching turn-end event and
// reports whether enough turns have now passed.
func (d *TurnsDuration) IsExpired(event events.Event) bool {
	if event.Type() != EventTurnEnd {
		return false
	}
	if event.Source() == nil || event.Source().GetID() != d.EntityID {
		return false
	}

	d.TurnsTaken++
	return d.TurnsTaken >= d.Turns
}

// Description returns e.g. "2 turns".
func (d *TurnsDuration) Description() string {
	return fmt.Sprintf("%d turns", d.Turns)
}

// RoundsDuration expires after a number of full battle rounds have passed,
// independent of whose turn it is.
type RoundsDuration struct {
	Rounds     int
	StartRound int
	started    bool
}

// NewRoundsDuration creates a duration that expires after rounds round-ends.
func NewRoundsDuration(rounds int) *RoundsDuration {
	return &RoundsDuration{Rounds: rounds}
}

// IsExpired tracks the round number from the first round-end event it sees
// and reports whether enough rounds have now passed.
func (d *RoundsDuration) IsExpired(event events.Event) bool {
	if event.Type() != EventRoundEnd {
		return false
	}

	round, ok := event.Context().Get("round")
	roundNum, isInt := round.(int)
	if !ok || !isInt {
		return false
	}

	if !d.started {
		d.StartRound = roundNum
		d.started = true
		return false
	}

	return roundNum >= d.StartRound+d.Rounds
}

// Description returns e.g. "3 rounds".
func (d *RoundsDuration) Description() string {
	return fmt.Sprintf("%d rounds", d.Rounds)
}

// UntilDamagedDuration expires the first time its entity takes damage (used
// by Intangible-style statuses).
type UntilDamagedDuration struct {
	EntityID string
}

// NewUntilDamagedDuration creates a duration that expires when entityID is
// next damaged.
func NewUntilDamagedDuration(entityID string) *UntilDamagedDuration {
	return &UntilDamagedDuration{EntityID: entityID}
}

// IsExpired reports whether event is a damaged event targeting this entity.
func (d *UntilDamagedDuration) IsExpired(event events.Event) bool {
	if event.Type() != EventDamaged {
		return false
	}
	return event.Target() != nil && event.Target().GetID() == d.EntityID
}

// Description returns "Until damaged".
func (d *UntilDamagedDuration) Description() string { return "Until damaged" }

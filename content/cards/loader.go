// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package cards

import (
	"fmt"

	"github.com/castlekeep/spireforge/battle"
	"github.com/castlekeep/spireforge/events"
	"github.com/castlekeep/spireforge/game"
)

// Load resolves name through ByName and wraps the result in a game.Context
// bound to bus ("entity data plus the infrastructure it'll run against"),
// so a caller assembling a deck from a config file gets game.NewContext's
// nil-bus guard. Returns an error if name is unknown,
// since an unresolved card in a deck list is a content bug worth catching
// at load time rather than silently dropping the card.
func Load(bus *events.Bus, name string) (game.Context[*battle.Card], error) {
	card := ByName(name)
	if card == nil {
		return game.Context[*battle.Card]{}, fmt.Errorf("cards: unknown card %q", name)
	}
	return game.NewContext(bus, card)
}

// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

// Package game provides runtime infrastructure for loading game entities
// from static data. It bridges content definitions (card data, enemy data)
// with the event bus they need to participate in at runtime.
//
// This package is rule-agnostic and focuses solely on the loading pattern,
// not on what any entity does once loaded.
//
// Example:
//
//	ctx, err := game.NewContext(bus, cardData)
//	if err != nil {
//	    return err
//	}
//	card := ctx.Data()
package game

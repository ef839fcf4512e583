// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package cards

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/castlekeep/spireforge/events"
)

func TestLoad_KnownCard(t *testing.T) {
	bus := events.NewBus()
	ctx, err := Load(bus, "Strike")
	require.NoError(t, err)
	assert.Equal(t, "Strike", ctx.Data().Name)
	assert.Same(t, bus, ctx.EventBus())
}

func TestLoad_UnknownCard(t *testing.T) {
	bus := events.NewBus()
	_, err := Load(bus, "Not A Card")
	assert.Error(t, err)
}

func TestLoad_NilBus(t *testing.T) {
	_, err := Load(nil, "Strike")
	assert.Error(t, err)
}

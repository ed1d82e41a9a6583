// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package hooks_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/openbattle/engine/battle"
	"github.com/openbattle/engine/hooks"
)

func TestRegistry_RegisterAndLookup(t *testing.T) {
	reg := hooks.NewRegistry()
	handle := battle.EffectHandle{Kind: battle.HandleAbility, ID: "intimidate"}

	_, ok := reg.Lookup(handle)
	assert.False(t, ok)

	want := &hooks.Hooks{}
	reg.Register(handle, want)

	got, ok := reg.Lookup(handle)
	assert.True(t, ok)
	assert.Same(t, want, got)
}

func TestRegistry_ReregisteringReplaces(t *testing.T) {
	reg := hooks.NewRegistry()
	handle := battle.EffectHandle{Kind: battle.HandleCondition, ID: "trickroom"}

	first := &hooks.Hooks{}
	second := &hooks.Hooks{}
	reg.Register(handle, first)
	reg.Register(handle, second)

	got, ok := reg.Lookup(handle)
	assert.True(t, ok)
	assert.Same(t, second, got)
}

func TestRegistry_MonDefaultIsDistinctFromConditionMon(t *testing.T) {
	reg := hooks.NewRegistry()
	// Registering the literal tag "condition:mon" is a distinct entry from
	// the synthetic "mon" default: only RegisterMonDefault installs the one
	// TestDispatcher_MonDefaultRunsForEveryMon exercises.
	literal := &hooks.Hooks{}
	reg.Register(battle.EffectHandle{Kind: battle.HandleCondition, ID: "mon"}, literal)

	got, ok := reg.Lookup(battle.EffectHandle{Kind: battle.HandleCondition, ID: "mon"})
	assert.True(t, ok)
	assert.Same(t, literal, got)
}

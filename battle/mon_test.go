// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package battle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/openbattle/engine/battle"
	"github.com/openbattle/engine/rational"
	"github.com/openbattle/engine/stats"
	"github.com/openbattle/engine/typechart"
)

func newTestMon() *battle.Mon {
	storedStats := map[stats.Stat]rational.Range{
		stats.HP:    rational.Point(rational.Whole(100)),
		stats.Atk:   rational.Point(rational.Whole(100)),
		stats.Def:   rational.Point(rational.Whole(100)),
		stats.SpAtk: rational.Point(rational.Whole(100)),
		stats.SpDef: rational.Point(rational.Whole(100)),
		stats.Spe:   rational.Point(rational.Whole(100)),
	}
	return battle.NewMon("garchomp", 100, 100, storedStats, []typechart.Type{typechart.Dragon, typechart.Ground})
}

func TestMon_ClampHP(t *testing.T) {
	m := newTestMon()
	m.CurrentHP = 150
	m.ClampHP()
	assert.LessOrEqual(t, m.CurrentHP, m.MaxHP)
}

func TestMon_StatRangeAppliesBoost(t *testing.T) {
	m := newTestMon()
	m.Boosts.Set(stats.BoostAtk, 2)

	r := m.StatRange(stats.Atk)
	assert.True(t, r.A.Equal(rational.Whole(200)))
}

func TestMon_TerastallizationOverridesTypes(t *testing.T) {
	m := newTestMon()
	assert.True(t, m.HasType(typechart.Dragon))
	assert.False(t, m.HasType(typechart.Water))

	m.Terastallized = true
	m.TeraType = typechart.Water
	assert.True(t, m.HasType(typechart.Water))
	assert.False(t, m.HasType(typechart.Dragon))
	assert.Equal(t, []typechart.Type{typechart.Water}, m.EffectiveTypes())
}

func TestMon_VolatileLifecycle(t *testing.T) {
	m := newTestMon()
	assert.False(t, m.HasVolatile("confusion"))

	st := m.VolatileState("confusion")
	st.SetDuration(3)
	assert.True(t, m.HasVolatile("confusion"))

	m.RemoveVolatile("confusion")
	assert.False(t, m.HasVolatile("confusion"))
}

func TestMon_ClearVolatilesOnSwitchOutPreservesBatonPassable(t *testing.T) {
	m := newTestMon()
	m.VolatileState("leechseed")
	m.VolatileState("perishsong").SetInt("perish", 2)
	m.Boosts.Set(stats.BoostAtk, 2)

	m.ClearVolatilesOnSwitchOut(map[string]bool{"perishsong": true})

	assert.False(t, m.HasVolatile("leechseed"))
	assert.True(t, m.HasVolatile("perishsong"))
	assert.EqualValues(t, 0, m.Boosts.Get(stats.BoostAtk))
	assert.Nil(t, m.ActivePosition)
}

func TestMon_ActivePositionInvariant(t *testing.T) {
	m := newTestMon()
	assert.False(t, m.IsActive())
	pos := 0
	m.ActivePosition = &pos
	assert.True(t, m.IsActive())
}

// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package stats_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/openbattle/engine/stats"
)

func TestCalculate_ZeroBaseBoundary(t *testing.T) {
	// §8: hp(L, base=0) = L + 10
	for _, level := range []int{1, 50, 100} {
		hp := stats.Calculate(stats.HP, 0, stats.IVEV{}, level, stats.NatureNeutral)
		assert.EqualValues(t, level+10, hp)
	}

	// §8: stat(L, base=0, iv=0, ev=0, nature=neutral) = 5
	for _, s := range []stats.Stat{stats.Atk, stats.Def, stats.SpAtk, stats.SpDef, stats.Spe} {
		v := stats.Calculate(s, 0, stats.IVEV{}, 100, stats.NatureNeutral)
		assert.EqualValues(t, 5, v, s.String())
	}
}

func TestCalculate_GarchompAtkLevel100(t *testing.T) {
	// Garchomp base Atk 130, 31 IV, 252 EV, level 100, Jolly (Atk neutral)
	// per original_source fixture: floor(floor((130*2+31+63)*100/100))+5 = 354+5 = 359
	atk := stats.Calculate(stats.Atk, 130, stats.IVEV{IV: 31, EV: 252}, 100, stats.NatureNeutral)
	assert.EqualValues(t, 359, atk)
}

func TestCalculate_NatureBoostAndDrop(t *testing.T) {
	raw := stats.Calculate(stats.Atk, 100, stats.IVEV{IV: 31, EV: 0}, 100, stats.NatureNeutral)
	boosted := stats.Calculate(stats.Atk, 100, stats.IVEV{IV: 31, EV: 0}, 100, stats.NatureBoost)
	dropped := stats.Calculate(stats.Atk, 100, stats.IVEV{IV: 31, EV: 0}, 100, stats.NatureDrop)

	assert.EqualValues(t, 236, raw)
	assert.Greater(t, boosted, raw)
	assert.Less(t, dropped, raw)

	// raw=236: dropped = floor(236*0.9) = floor(212.4) = 212, not ceil (213).
	assert.EqualValues(t, 212, dropped)
}

func TestCalculateRange_UnknownNatureWidensOnlyNonHP(t *testing.T) {
	hpRange := stats.CalculateRange(stats.HP, 108, stats.IVEV{IV: 31, EV: 252}, 100)
	assert.True(t, hpRange.IsPoint())

	atkRange := stats.CalculateRange(stats.Atk, 130, stats.IVEV{IV: 31, EV: 252}, 100)
	assert.False(t, atkRange.IsPoint())
	assert.Equal(t, 1, atkRange.B.Compare(atkRange.A))
}

func TestBoostMultiplier_Table(t *testing.T) {
	assert.True(t, stats.BoostMultiplier(0).Equal(stats.BoostMultiplier(0)))
	two := stats.BoostMultiplier(2)
	half := stats.BoostMultiplier(-2)
	assert.True(t, two.Equal(half.Inverse()))
}

func TestBoostTable_ClampsToSix(t *testing.T) {
	var bt stats.BoostTable
	applied := bt.Add(stats.BoostAtk, 10)
	assert.Equal(t, 6, applied)
	assert.EqualValues(t, 6, bt.Get(stats.BoostAtk))

	applied = bt.Add(stats.BoostAtk, 3)
	assert.Equal(t, 0, applied)
}

func TestParseBoost_Aliases(t *testing.T) {
	b, ok := stats.ParseBoost("Special Attack")
	assert.True(t, ok)
	assert.Equal(t, stats.BoostSpAtk, b)

	_, ok = stats.ParseBoost("not-a-boost")
	assert.False(t, ok)
}

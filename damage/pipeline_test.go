// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package damage_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openbattle/engine/battle"
	"github.com/openbattle/engine/damage"
	"github.com/openbattle/engine/damagectx"
	"github.com/openbattle/engine/dex"
	"github.com/openbattle/engine/hooks"
	"github.com/openbattle/engine/rational"
	"github.com/openbattle/engine/stats"
	"github.com/openbattle/engine/typechart"
)

// queueRoller is a test double implementing dice.Roller with a fixed
// sequence of results, cycling once exhausted. Unlike dice.MockRoller,
// which returns an error when a scripted result exceeds the die size, it
// clamps such a result to the die size.
type queueRoller struct {
	results []int
	next    int
}

func (q *queueRoller) Roll(size int) (int, error) {
	r := q.results[q.next%len(q.results)]
	q.next++
	if r > size {
		r = size
	}
	return r, nil
}

func (q *queueRoller) RollN(count, size int) ([]int, error) {
	out := make([]int, count)
	for i := range out {
		v, err := q.Roll(size)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func newMon(species string, level int, types ...typechart.Type) *battle.Mon {
	storedStats := map[stats.Stat]rational.Range{
		stats.HP:    rational.Point(rational.Whole(200)),
		stats.Atk:   rational.Point(rational.Whole(100)),
		stats.Def:   rational.Point(rational.Whole(100)),
		stats.SpAtk: rational.Point(rational.Whole(100)),
		stats.SpDef: rational.Point(rational.Whole(100)),
		stats.Spe:   rational.Point(rational.Whole(100)),
	}
	return battle.NewMon(species, level, 200, storedStats, types)
}

func newSingleState(attacker, defender *battle.Mon) *battle.State {
	format := battle.FormatConfig{ID: "singles", ActiveCount: 1, AdjacentReach: 1}
	sideA := battle.NewSide("player-1", 1, nil)
	sideA.Slots[0].Mon = attacker
	pos0 := 0
	attacker.ActivePosition = &pos0
	sideB := battle.NewSide("player-2", 1, nil)
	sideB.Slots[0].Mon = defender
	defender.ActivePosition = &pos0
	return battle.NewState(format, []*battle.Side{sideA, sideB})
}

func TestResolve_TackleNeutralMatchup(t *testing.T) {
	reg := hooks.NewRegistry()
	d := hooks.NewDispatcher(reg)

	attacker := newMon("rattata", 50, typechart.Normal)
	defender := newMon("pidgey", 50, typechart.Normal, typechart.Flying)
	state := newSingleState(attacker, defender)

	move := dex.MoveData{ID: "tackle", Category: "physical", Type: "Normal", BasePower: 40, Accuracy: 100, Multihit: [2]int{1, 1}}
	dc := damagectx.New(state, 0, 0, 1, 0, move)

	roller := &queueRoller{results: []int{100, 24, 16}} // accuracy hit, no crit, max random roll
	result, err := damage.Resolve(context.Background(), dc, damage.Authoritative, roller, d)
	require.NoError(t, err)
	require.Len(t, result.Hits, 1)
	assert.False(t, result.Hits[0].Missed)
	assert.False(t, result.Hits[0].Critical)
	assert.True(t, result.Hits[0].TypeEffectiveness.Equal(rational.Whole(1)))
	assert.Greater(t, result.Hits[0].Damage.Mean().FloorDiv(), uint64(0))
}

func TestResolve_MissedAccuracyProducesNoDamage(t *testing.T) {
	reg := hooks.NewRegistry()
	d := hooks.NewDispatcher(reg)

	attacker := newMon("rattata", 50, typechart.Normal)
	defender := newMon("pidgey", 50, typechart.Normal, typechart.Flying)
	state := newSingleState(attacker, defender)

	move := dex.MoveData{ID: "tackle", Category: "physical", Type: "Normal", BasePower: 40, Accuracy: 50, Multihit: [2]int{1, 1}}
	dc := damagectx.New(state, 0, 0, 1, 0, move)

	roller := &queueRoller{results: []int{99}} // 99 > 50 accuracy, miss
	result, err := damage.Resolve(context.Background(), dc, damage.Authoritative, roller, d)
	require.NoError(t, err)
	require.Len(t, result.Hits, 1)
	assert.True(t, result.Hits[0].Missed)
}

func TestResolve_ImmuneMatchupDealsZero(t *testing.T) {
	reg := hooks.NewRegistry()
	d := hooks.NewDispatcher(reg)

	attacker := newMon("gengar", 50, typechart.Ghost, typechart.Poison)
	defender := newMon("snorlax", 50, typechart.Normal)
	state := newSingleState(attacker, defender)

	move := dex.MoveData{ID: "nightshade", Category: "special", Type: "Ghost", BasePower: 0, Accuracy: 0, Multihit: [2]int{1, 1}}
	dc := damagectx.New(state, 0, 0, 1, 0, move)
	dc.Move.TypeOverride = typeRef(typechart.Ghost)

	roller := &queueRoller{results: []int{1, 24, 16}}
	result, err := damage.Resolve(context.Background(), dc, damage.Authoritative, roller, d)
	require.NoError(t, err)
	require.Len(t, result.Hits, 1)
	assert.True(t, result.Hits[0].TypeEffectiveness.Equal(rational.Whole(0)))
	assert.Equal(t, rational.Whole(0), result.Hits[0].Damage.Mean())
}

func typeRef(t typechart.Type) *typechart.Type {
	return &t
}

func TestResolve_AnalysisModeMeanMatchesAuthoritativeAverage(t *testing.T) {
	reg := hooks.NewRegistry()
	d := hooks.NewDispatcher(reg)

	move := dex.MoveData{ID: "tackle", Category: "physical", Type: "Normal", BasePower: 40, Accuracy: 100, Multihit: [2]int{1, 1}}

	attacker := newMon("rattata", 50, typechart.Normal)
	defender := newMon("pidgey", 50, typechart.Normal, typechart.Flying)
	state := newSingleState(attacker, defender)
	dc := damagectx.New(state, 0, 0, 1, 0, move)

	result, err := damage.Resolve(context.Background(), dc, damage.Analysis, nil, d)
	require.NoError(t, err)
	require.Len(t, result.Hits, 1)
	analysisMean := result.Hits[0].Damage.Mean()

	// Average every equally-weighted authoritative outcome: each of the 24
	// crit rolls (crit ratio 0 crits only on a roll of 1) crossed with each
	// of the 16 random-factor rolls, the same 384 branches analysis mode
	// expands into.
	sum := rational.Whole(0)
	for critRoll := 1; critRoll <= 24; critRoll++ {
		for roll := 1; roll <= 16; roll++ {
			attacker := newMon("rattata", 50, typechart.Normal)
			defender := newMon("pidgey", 50, typechart.Normal, typechart.Flying)
			state := newSingleState(attacker, defender)
			dc := damagectx.New(state, 0, 0, 1, 0, move)
			roller := &queueRoller{results: []int{100, critRoll, roll}}
			r, err := damage.Resolve(context.Background(), dc, damage.Authoritative, roller, d)
			require.NoError(t, err)
			sum = sum.Add(r.Hits[0].Damage.Mean())
		}
	}
	authoritativeMean := sum.Div(rational.Whole(24 * 16))
	assert.True(t, analysisMean.Equal(authoritativeMean), "analysis mean %s != authoritative average %s", analysisMean, authoritativeMean)
}

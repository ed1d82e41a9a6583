// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package typechart_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/openbattle/engine/rational"
	"github.com/openbattle/engine/typechart"
)

func TestLookup_KnownMatchups(t *testing.T) {
	assert.True(t, typechart.Lookup(typechart.Electric, typechart.Water).Equal(rational.Whole(2)))
	assert.True(t, typechart.Lookup(typechart.Electric, typechart.Ground).Equal(rational.Whole(0)))
	assert.True(t, typechart.Lookup(typechart.Fire, typechart.Water).Equal(rational.New(1, 2)))
	assert.True(t, typechart.Lookup(typechart.Normal, typechart.Normal).Equal(rational.Whole(1)))
}

func TestEffectiveness_DualTypeProduct(t *testing.T) {
	// Electric vs Water/Flying (e.g. Gyarados): 2x * 2x = 4x
	mult := typechart.Effectiveness(typechart.Electric, typechart.Water, typechart.Flying)
	assert.True(t, mult.Equal(rational.Whole(4)))
}

func TestLookup_StellarAlwaysNeutral(t *testing.T) {
	assert.True(t, typechart.Lookup(typechart.Stellar, typechart.Steel).Equal(rational.Whole(1)))
	assert.True(t, typechart.Lookup(typechart.Fire, typechart.Stellar).Equal(rational.Whole(1)))
}

func TestMoveTarget_NormalRelativePositionLaw(t *testing.T) {
	// §8: for MoveTarget::Normal, p valid iff p != 0 and
	// (p>0 => p<=reach) and (p<0 => p = -reach+1).
	for _, reach := range []int{1, 2} {
		for p := -3; p <= 3; p++ {
			expect := p != 0 &&
				(p <= 0 || p <= reach) &&
				(p >= 0 || p == -reach+1)
			got := typechart.TargetNormal.IsAffected(p, reach)
			assert.Equal(t, expect, got, "reach=%d p=%d", reach, p)
		}
	}
}

func TestMoveTarget_Predicates(t *testing.T) {
	assert.True(t, typechart.TargetNormal.Choosable())
	assert.False(t, typechart.TargetAllAdjacentFoes.Choosable())
	assert.False(t, typechart.TargetAllySide.AffectsMonsDirectly())
	assert.True(t, typechart.TargetSelf.CanTargetUser())
	assert.False(t, typechart.TargetNormal.CanTargetUser())
	assert.True(t, typechart.TargetAny.CanTargetFoes())
	assert.False(t, typechart.TargetAny.IsAdjacentOnly())
}

// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package stats

import "github.com/openbattle/engine/rational"

// IVEV bundles the individual/effort values used in the stat formula.
type IVEV struct {
	IV uint16
	EV uint16
}

// baseStatValue computes floor(floor(floor((base*2+iv+ev/4)*level/100))) +
// the HP or non-HP additive term, the integer core of the stat formula
// shared by every stat before nature is applied.
func baseStatValue(base uint16, ivev IVEV, level int, isHP bool) uint64 {
	inner := uint64(base)*2 + uint64(ivev.IV) + uint64(ivev.EV)/4
	scaled := inner * uint64(level) / 100
	if isHP {
		return scaled + uint64(level) + 10
	}
	return scaled + 5
}

// NatureModifier is +1 for a boosting nature, -1 for a dropping nature, and
// 0 for neutral (or for a stat the nature doesn't touch).
type NatureModifier int

const (
	NatureNeutral NatureModifier = 0
	NatureBoost   NatureModifier = 1
	NatureDrop    NatureModifier = -1
)

// Calculate returns the exact point stat value for a known nature (HP has
// no nature modifier regardless of what's passed).
func Calculate(s Stat, base uint16, ivev IVEV, level int, mod NatureModifier) uint64 {
	if s == HP {
		return baseStatValue(base, ivev, level, true)
	}
	raw := baseStatValue(base, ivev, level, false)
	return applyNatureDrop(raw, mod)
}

// applyNatureDrop implements the floor-for-drop, floor-for-boost rounding
// named in SPEC_FULL: a dropping nature computes raw - ceil(raw*0.1), which
// for every residue of raw mod 10 equals floor(raw*0.9), and a boosting
// nature multiplies by 1.1 and rounds down.
func applyNatureDrop(raw uint64, mod NatureModifier) uint64 {
	switch mod {
	case NatureBoost:
		return rational.New(raw*11, 10).FloorDiv()
	case NatureDrop:
		// raw - ceil(raw*0.1) == floor(raw*0.9) == floor(raw*9/10)
		return rational.New(raw*9, 10).FloorDiv()
	default:
		return raw
	}
}

// CalculateRange returns a Range for a stat whose nature is not yet known
// (e.g. an opponent's Mon in analysis mode before Nature is revealed): the
// lower bound applies the drop rounding, the upper bound applies the boost
// rounding, producing a true range rather than a point value. HP has no
// nature term and always collapses to a point Range.
func CalculateRange(s Stat, base uint16, ivev IVEV, level int) rational.Range {
	if s == HP {
		v := baseStatValue(base, ivev, level, true)
		return rational.Point(rational.Whole(v))
	}
	raw := baseStatValue(base, ivev, level, false)
	lo := applyNatureDrop(raw, NatureDrop)
	hi := applyNatureDrop(raw, NatureBoost)
	return rational.Range{A: rational.Whole(lo), B: rational.Whole(hi)}
}

// BoostMultiplier returns the multiplier a boost stage n in [-6, 6] applies
// to a stat: 2/(2+n) for a negative stage (n here passed as its absolute
// value through the denominator-growth form) and (2+n)/2 for a non-negative
// stage, per the canonical Pokémon boost formula.
func BoostMultiplier(stage int8) rational.Fraction {
	switch {
	case stage >= 0:
		return rational.New(uint64(2+stage), 2)
	default:
		return rational.New(2, uint64(2-stage))
	}
}

// AccuracyEvasionMultiplier computes the combined accuracy/evasion
// multiplier: accuracy uses the same (2+n)/2 / 2/(2-n) table as other
// boosts, but accuracy and evasion stages are applied as accuracyStage -
// evasionStage before consulting the table (a defender's +1 evasion and an
// attacker's +1 accuracy cancel out).
func AccuracyEvasionMultiplier(accuracyStage, evasionStage int8) rational.Fraction {
	net := int(accuracyStage) - int(evasionStage)
	if net > maxBoost {
		net = maxBoost
	}
	if net < minBoost {
		net = minBoost
	}
	return BoostMultiplier(int8(net))
}

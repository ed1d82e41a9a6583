// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package damage

import (
	"github.com/openbattle/engine/rational"
)

// SingleHit is the outcome of resolving one hit of a (possibly multi-hit)
// move.
type SingleHit struct {
	Missed            bool
	Damage            rational.Distribution
	TypeEffectiveness rational.Fraction
	Critical          bool
}

// MultiHit combines every hit dealt by one move use.
type MultiHit struct {
	Hits []SingleHit
}

// TotalDamage sums the mean of every hit's damage distribution, the
// figure a log line or AI evaluation reports for the whole move use.
func (m MultiHit) TotalDamage() rational.Fraction {
	total := rational.Whole(0)
	for _, hit := range m.Hits {
		if hit.Missed {
			continue
		}
		total = total.Add(hit.Damage.Mean())
	}
	return total
}

// AnyHit reports whether at least one hit connected.
func (m MultiHit) AnyHit() bool {
	for _, hit := range m.Hits {
		if !hit.Missed {
			return true
		}
	}
	return false
}

// critChance returns the crit-roll Fraction (numerator out of denominator)
// for a move's crit_ratio stage, using the standard stage table: 0 is
// 1/24, 1 is 1/8, 2 is 1/2, 3 and above always crit.
func critChance(critRatio int) rational.Fraction {
	switch {
	case critRatio <= 0:
		return rational.New(1, 24)
	case critRatio == 1:
		return rational.New(1, 8)
	case critRatio == 2:
		return rational.New(1, 2)
	default:
		return rational.Whole(1)
	}
}

// stabMultiplier returns the same-type-attack-bonus factor for an
// attacker using a move of moveType, doubling it when adaptability is
// active (expressed by the caller as its own hook in practice; this
// helper only knows the plain 1.5x/2x split).
func stabMultiplier(hasType bool, adaptability bool) rational.Fraction {
	if !hasType {
		return rational.Whole(1)
	}
	if adaptability {
		return rational.Whole(2)
	}
	return rational.New(3, 2)
}

func floorRange(r rational.Range) rational.Range {
	return rational.Range{A: rational.Whole(r.A.FloorDiv()), B: rational.Whole(r.B.FloorDiv())}
}

func floorDistribution(d rational.Distribution) rational.Distribution {
	out := make([]rational.Range, len(d.Outcomes))
	for i, r := range d.Outcomes {
		out[i] = floorRange(r)
	}
	return rational.Distribution{Outcomes: out}
}

// divRanges performs interval division assuming both ranges hold only
// positive Fractions (true of every stat Range the engine constructs):
// the quotient's bounds come from pairing each side's extremes.
func divRanges(numerator, denominator rational.Range) rational.Range {
	return rational.Range{
		A: numerator.A.Div(denominator.B),
		B: numerator.B.Div(denominator.A),
	}
}

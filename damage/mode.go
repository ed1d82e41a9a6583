// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package damage

import (
	"github.com/openbattle/engine/dice"
	"github.com/openbattle/engine/rational"
)

// Mode selects which of the two symmetric resolution strategies Resolve
// runs (§9's "authoritative vs analysis mode symmetry" design note).
type Mode int

const (
	// Authoritative draws from the supplied dice.Roller and collapses
	// every Range/Distribution to a single concrete outcome.
	Authoritative Mode = iota
	// Analysis preserves full Range/Distribution outcomes and never
	// touches the PRNG.
	Analysis
)

// math is the per-mode strategy every random-ish step in the per-hit
// computation is written once against, named DamageMath in the design
// note this implements.
type math interface {
	// expandCrit applies the critical-hit multiplier to base, either by
	// rolling once (authoritative) or by branching into a weighted
	// critical/non-critical pair (analysis).
	expandCrit(base rational.Distribution, critChance rational.Fraction) (out rational.Distribution, rolledCrit bool)

	// expandRandomFactor applies the 85-100% damage roll, either by
	// drawing once (authoritative) or fanning out into 16 equal branches
	// (analysis).
	expandRandomFactor(d rational.Distribution) rational.Distribution

	// rollAccuracy reports whether the move hits, given the accuracy
	// Resolve passes in (the move data's accuracy, with no boost
	// applied; 0 means "never misses").
	// Analysis mode always reports a hit; the caller separately tracks
	// the miss probability when it needs one.
	rollAccuracy(accuracy int) bool

	// rollSecondary reports whether a chance-based secondary effect
	// procs, given its percent-out-of-100 chance.
	rollSecondary(chancePercent int) bool

	// resolveHitCount picks how many hits a multi-hit move deals this
	// resolution.
	resolveHitCount(minHits, maxHits int) int
}

// authoritativeMath draws every random outcome from roller.
type authoritativeMath struct {
	roller dice.Roller
}

func (m authoritativeMath) expandCrit(base rational.Distribution, critChance rational.Fraction) (rational.Distribution, bool) {
	roll, err := m.roller.Roll(int(critChance.Den))
	rolledCrit := err == nil && uint64(roll) <= critChance.Num
	if !rolledCrit {
		return base, false
	}
	return base.Mul(rational.New(3, 2)), true
}

func (m authoritativeMath) expandRandomFactor(d rational.Distribution) rational.Distribution {
	roll, err := m.roller.Roll(16)
	if err != nil {
		roll = 16
	}
	factor := rational.New(uint64(84+roll), 100)
	return d.Mul(factor)
}

func (m authoritativeMath) rollAccuracy(accuracy int) bool {
	if accuracy <= 0 {
		return true
	}
	roll, err := m.roller.Roll(100)
	return err == nil && roll <= accuracy
}

func (m authoritativeMath) rollSecondary(chancePercent int) bool {
	if chancePercent <= 0 {
		return false
	}
	if chancePercent >= 100 {
		return true
	}
	roll, err := m.roller.Roll(100)
	return err == nil && roll <= chancePercent
}

func (m authoritativeMath) resolveHitCount(minHits, maxHits int) int {
	if minHits >= maxHits {
		return minHits
	}
	roll, err := m.roller.Roll(maxHits - minHits + 1)
	if err != nil {
		return minHits
	}
	return minHits + roll - 1
}

// analysisMath preserves distributions and never draws from the PRNG.
type analysisMath struct{}

func (analysisMath) expandCrit(base rational.Distribution, critChance rational.Fraction) (rational.Distribution, bool) {
	noCritWeight := critChance.Den - critChance.Num
	expanded := base.Expand(func(r rational.Range) []rational.Range {
		branches := make([]rational.Range, 0, critChance.Den)
		for i := uint64(0); i < noCritWeight; i++ {
			branches = append(branches, r)
		}
		crit := r.Mul(rational.New(3, 2))
		for i := uint64(0); i < critChance.Num; i++ {
			branches = append(branches, crit)
		}
		return branches
	})
	return expanded, false
}

func (analysisMath) expandRandomFactor(d rational.Distribution) rational.Distribution {
	return d.Expand(func(r rational.Range) []rational.Range {
		branches := make([]rational.Range, 0, 16)
		for roll := 1; roll <= 16; roll++ {
			factor := rational.New(uint64(84+roll), 100)
			branches = append(branches, r.Mul(factor))
		}
		return branches
	})
}

func (analysisMath) rollAccuracy(int) bool { return true }

func (analysisMath) rollSecondary(int) bool { return false }

func (analysisMath) resolveHitCount(minHits, maxHits int) int {
	return (minHits + maxHits) / 2
}

// newMath builds the strategy for mode, which must carry a non-nil roller
// when mode is Authoritative.
func newMath(mode Mode, roller dice.Roller) math {
	if mode == Analysis {
		return analysisMath{}
	}
	return authoritativeMath{roller: roller}
}

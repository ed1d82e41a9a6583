// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package rational

// Range is a closed interval [A, B] with A <= B. It is used everywhere the
// pipeline's analysis mode needs to carry a best/worst pair instead of a
// single value forward through the same hooks the authoritative mode uses.
type Range struct {
	A, B Fraction
}

// Point returns a degenerate Range whose bounds are both v, used when the
// authoritative pipeline collapses an analysis-mode Range to one outcome.
func Point(v Fraction) Range {
	return Range{A: v, B: v}
}

// Avg returns the midpoint of the range as a Fraction: (a+b)/2.
func (r Range) Avg() Fraction {
	return r.A.Add(r.B).Div(Whole(2))
}

// Mul scales both bounds of the range by a scalar Fraction.
func (r Range) Mul(scalar Fraction) Range {
	return Range{A: r.A.Mul(scalar), B: r.B.Mul(scalar)}
}

// Div divides both bounds of the range by a scalar Fraction.
func (r Range) Div(scalar Fraction) Range {
	return Range{A: r.A.Div(scalar), B: r.B.Div(scalar)}
}

// Add adds a scalar Fraction to both bounds.
func (r Range) Add(scalar Fraction) Range {
	return Range{A: r.A.Add(scalar), B: r.B.Add(scalar)}
}

// AddRange sums two ranges bound-wise.
func (r Range) AddRange(other Range) Range {
	return Range{A: r.A.Add(other.A), B: r.B.Add(other.B)}
}

// FloorDiv floors both bounds to a pair of integers.
func (r Range) FloorDiv() (uint64, uint64) {
	return r.A.FloorDiv(), r.B.FloorDiv()
}

// IsPoint reports whether the range's bounds coincide.
func (r Range) IsPoint() bool {
	return r.A.Equal(r.B)
}

// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

// Package rational provides exact rational arithmetic and the range and
// range-distribution types the damage pipeline uses to keep authoritative
// and analysis modes in agreement. Every intermediate damage multiplier is
// a Fraction so that repeated multiplication and division never accumulate
// rounding error; floors are taken only at the points the pipeline names.
package rational

// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

// Package battle holds the mutable battle state component E describes:
// the field, sides, slots, active and reserve Mons, and the volatile
// EffectState dictionaries that running conditions own. Nothing in this
// package computes damage or dispatches hooks; it is the data the damage
// pipeline (package damage) and move executor (package executor) read and
// mutate.
package battle

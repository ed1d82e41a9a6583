// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package events

import "github.com/openbattle/engine/core"

// Common typed keys for event context data.
// Only keys we have actual use cases for.
// Battle mechanics define their own domain-specific keys alongside these.

var (
	// KeyDamage is the amount of damage computed so far.
	KeyDamage = NewTypedKey[int]("damage")
	// KeyDamageType is the elemental type of the hit being resolved.
	KeyDamageType = NewTypedKey[string]("damageType")

	// KeySource is the entity that originated the event (attacker, item
	// holder, weather owner).
	KeySource = NewTypedKey[*core.Entity]("source")
	// KeyTarget is the entity the event affects (defender, status holder).
	KeyTarget = NewTypedKey[*core.Entity]("target")
)

// Type aliases for convenience (optional)

// IntKey is an integer typed key
type IntKey = TypedKey[int]

// StringKey is a string typed key
type StringKey = TypedKey[string]

// BoolKey is a boolean typed key
type BoolKey = TypedKey[bool]

// FloatKey is a float64 typed key
type FloatKey = TypedKey[float64]

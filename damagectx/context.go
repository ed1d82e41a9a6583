// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package damagectx

import (
	"strings"

	"github.com/openbattle/engine/battle"
	"github.com/openbattle/engine/dex"
	"github.com/openbattle/engine/rational"
	"github.com/openbattle/engine/stats"
	"github.com/openbattle/engine/typechart"
)

// MonType distinguishes which side of a hit a ModifyStateFromSide /
// ModifyStateFromMon / CheckMonState hook is being asked about.
type MonType int

const (
	Attacker MonType = iota
	Defender
)

// Move is the in-flight move being resolved. ModifyMove rewrites it
// wholesale (Nature Power -> Tri Attack); ModifyMoveData adjusts its
// derived fields after the Mon context is built (e.g. a category flip).
type Move struct {
	Data   dex.MoveData
	Target int // relative position, possibly overridden by redirect hooks

	// Flags carries per-hit overrides a hook applied this resolution
	// (e.g. "forced_crit", "type_override") without mutating Data itself.
	Flags map[string]bool

	// TypeOverride replaces Data.Type for this resolution only, when set.
	TypeOverride *typechart.Type

	// CategoryOverride replaces Data.Category for this resolution only.
	CategoryOverride *typechart.MoveCategory
}

// EffectiveType returns the move's type for this hit, honoring any
// TypeOverride a hook applied.
func (m *Move) EffectiveType() typechart.Type {
	if m.TypeOverride != nil {
		return *m.TypeOverride
	}
	return typechart.Type(m.Data.Type)
}

// EffectiveCategory returns the move's category for this hit, honoring any
// CategoryOverride a hook applied. dex data stores Category in whatever
// case the dex source used ("physical" in the lowercase convention dex
// fixtures use); this normalizes to the Title-case typechart constants
// compare against rather than demanding every caller match case.
func (m *Move) EffectiveCategory() typechart.MoveCategory {
	if m.CategoryOverride != nil {
		return *m.CategoryOverride
	}
	return typechart.MoveCategory(titleCase(m.Data.Category))
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

// DerivedMonProperties is the per-Mon scratch data the pipeline computes
// once per resolution (effective stat picks, grounded state, immunities)
// so hooks don't recompute it repeatedly.
type DerivedMonProperties struct {
	Grounded        bool
	NegatesImmunity bool
}

// Context is the scratch copy of battle state the pipeline builds at stage
// 1 and mutates freely through stages 2-9; it writes back to the real
// battle.State only at stage 10, and only in authoritative mode.
type Context struct {
	State *battle.State

	AttackerSide, AttackerSlot int
	DefenderSide, DefenderSlot int

	Attacker *battle.Mon
	Defender *battle.Mon

	Move *Move

	Derived map[MonType]*DerivedMonProperties

	// IsCritical and Analysis are set by package damage while it resolves
	// a move; the per-hit numeric Output[T] trace values unique to one
	// stage live in package damage, not here.
	IsCritical bool
	Analysis   bool

	// FixedDamage is set by ApplyFixedDamage when a hook short-circuits
	// the rest of the per-hit computation (Seismic Toss, Dragon Rage).
	FixedDamage *uint64
}

// New builds a Context for one attacker/defender pair and move, copying
// nothing lazily: StoredStats and Boosts are read live off the *battle.Mon
// pointers, matching "clone the relevant portions... this context is
// mutated freely; it does not write back until stage 10" — the portions
// that are safe to mutate in place (Move, Derived, Flags) are the ones
// actually copied; Attacker/Defender remain pointers into the real state
// until the executor explicitly commits HP/status changes.
func New(state *battle.State, attackerSide, attackerSlot, defenderSide, defenderSlot int, move dex.MoveData) *Context {
	attacker := state.Sides[attackerSide].Slots[attackerSlot].Mon
	defender := state.Sides[defenderSide].Slots[defenderSlot].Mon
	return &Context{
		State:        state,
		AttackerSide: attackerSide,
		AttackerSlot: attackerSlot,
		DefenderSide: defenderSide,
		DefenderSlot: defenderSlot,
		Attacker:     attacker,
		Defender:     defender,
		Move: &Move{
			Data:  move,
			Target: state.RelativePosition(attackerSide, attackerSlot, defenderSide, defenderSlot),
			Flags: make(map[string]bool),
		},
		Derived: map[MonType]*DerivedMonProperties{
			Attacker: {}, // zero value; populated by ModifyStateFromMon hooks
			Defender: {},
		},
	}
}

// Mon returns the attacker or defender Mon for the given MonType.
func (c *Context) Mon(which MonType) *battle.Mon {
	if which == Attacker {
		return c.Attacker
	}
	return c.Defender
}

// Side returns the attacker's or defender's *battle.Side for the given
// MonType.
func (c *Context) Side(which MonType) *battle.Side {
	if which == Attacker {
		return c.State.Sides[c.AttackerSide]
	}
	return c.State.Sides[c.DefenderSide]
}

// Other returns the opposite MonType, a small convenience hooks use when
// they need "the other Mon in this exchange".
func Other(which MonType) MonType {
	if which == Attacker {
		return Defender
	}
	return Attacker
}

// StatOutput builds the initial Output<Range<Fraction>> stage 7 starts an
// effective-stat resolution from: the Mon's stored stat range times its
// current boost-stage multiplier.
func (c *Context) StatOutput(which MonType, s stats.Stat) *rational.Output[rational.Range] {
	return rational.NewOutput(c.Mon(which).StatRange(s))
}

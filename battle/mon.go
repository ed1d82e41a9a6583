// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package battle

import (
	"github.com/openbattle/engine/rational"
	"github.com/openbattle/engine/stats"
	"github.com/openbattle/engine/typechart"
)

// Status is at most one non-volatile status ailment per Mon.
type Status string

const (
	StatusNone      Status = ""
	StatusSleep     Status = "sleep"
	StatusFreeze    Status = "freeze"
	StatusParalysis Status = "paralysis"
	StatusBurn      Status = "burn"
	StatusPoison    Status = "poison"
	StatusBadPoison Status = "badpoison"
)

// Mon is one active-or-benched creature instance. current_hp/max_hp/status
// invariants are enforced by the mutators in package executor; Mon itself
// only stores the data.
type Mon struct {
	SpeciesID string
	Level     int

	CurrentHP uint64
	MaxHP     uint64

	// StoredStats holds the Range<u64> per stat, HP included, computed at
	// team load (a true Range until the opponent's nature is revealed, a Point
	// Range once it is known to the owner).
	StoredStats map[stats.Stat]rational.Range

	Boosts stats.BoostTable

	Types []typechart.Type

	AbilityID string
	ItemID    string // "" means no held item

	StatusAilment Status
	StatusState   EffectState // holds e.g. badpoison's toxic counter, sleep's turns-remaining
	Volatiles     map[string]EffectState // volatile id -> its state

	LastMoveID string

	// VolatileOrder preserves insertion order for dispatch (§4.2).
	VolatileOrder []string

	// TransformedInto points at another Mon (by slot-owner id) whose
	// species/stats-except-HP/types/ability/moveset are borrowed for as
	// long as the transformation lasts.
	TransformedInto string

	TeraType    typechart.Type
	Terastallized bool

	// ActivePosition is nil when the Mon is on the bench: it then
	// receives no move/residual hooks (§3 invariant).
	ActivePosition *int

	PP map[string]int // move id -> remaining PP

	// Moves preserves the moveset's submitted order: the service facade's
	// move-request numbering and "move N" choice grammar both key off of
	// this slice rather than ranging PP, whose map iteration order is
	// unspecified.
	Moves []string
}

// NewMon constructs a bench Mon with the given species-derived stats.
func NewMon(speciesID string, level int, maxHP uint64, storedStats map[stats.Stat]rational.Range, types []typechart.Type) *Mon {
	return &Mon{
		SpeciesID:   speciesID,
		Level:       level,
		CurrentHP:   maxHP,
		MaxHP:       maxHP,
		StoredStats: storedStats,
		Types:       types,
		Volatiles:   make(map[string]EffectState),
		PP:          make(map[string]int),
	}
}

// IsActive reports whether the Mon currently occupies a slot.
func (m *Mon) IsActive() bool {
	return m.ActivePosition != nil
}

// IsFainted reports whether the Mon has no HP left.
func (m *Mon) IsFainted() bool {
	return m.CurrentHP == 0
}

// ClampHP enforces current_hp <= max_hp and current_hp >= 0 (as a uint64,
// "below zero" degenerates to a subtraction in executor that never
// underflows past zero), the invariant §3 and §8 both name.
func (m *Mon) ClampHP() {
	if m.CurrentHP > m.MaxHP {
		m.CurrentHP = m.MaxHP
	}
}

// HasType reports whether t is one of the Mon's current types, honoring
// Terastallization: a Terastallized Mon's only current type is its Tera
// type (Stellar included).
func (m *Mon) HasType(t typechart.Type) bool {
	if m.Terastallized {
		return m.TeraType == t
	}
	for _, mt := range m.Types {
		if mt == t {
			return true
		}
	}
	return false
}

// EffectiveTypes returns the type list used for STAB/chart lookups,
// collapsing to the single Tera type when Terastallized.
func (m *Mon) EffectiveTypes() []typechart.Type {
	if m.Terastallized {
		return []typechart.Type{m.TeraType}
	}
	return m.Types
}

// StatRange returns the Range<Fraction> for stat s after the boost-stage
// multiplier is applied, the "initial Output<Range<Fraction<u64>>>" stage 7
// starts from before any ModifyStat hook runs.
func (m *Mon) StatRange(s stats.Stat) rational.Range {
	base, ok := m.StoredStats[s]
	if !ok {
		return rational.Point(rational.Whole(0))
	}
	if s == stats.HP {
		return base
	}
	boost, hasBoost := statToBoost(s)
	if !hasBoost {
		return base
	}
	mult := stats.BoostMultiplier(m.Boosts.Get(boost))
	return base.Mul(mult)
}

func statToBoost(s stats.Stat) (stats.Boost, bool) {
	switch s {
	case stats.Atk:
		return stats.BoostAtk, true
	case stats.Def:
		return stats.BoostDef, true
	case stats.SpAtk:
		return stats.BoostSpAtk, true
	case stats.SpDef:
		return stats.BoostSpDef, true
	case stats.Spe:
		return stats.BoostSpe, true
	default:
		return 0, false
	}
}

// SetStatus applies a non-volatile status ailment, replacing any previous
// one and resetting its state.
func (m *Mon) SetStatus(status Status) {
	m.StatusAilment = status
	m.StatusState = NewEffectState()
}

// ClearStatus cures the Mon's non-volatile status ailment entirely.
func (m *Mon) ClearStatus() {
	m.StatusAilment = StatusNone
	m.StatusState = nil
}

// VolatileState returns the Mon's EffectState for volatile id, creating one
// if absent (a volatile is applied the first time it's looked up this way
// by its Apply hook).
func (m *Mon) VolatileState(id string) EffectState {
	if m.Volatiles == nil {
		m.Volatiles = make(map[string]EffectState)
	}
	st, ok := m.Volatiles[id]
	if !ok {
		st = NewEffectState()
		m.Volatiles[id] = st
		m.VolatileOrder = append(m.VolatileOrder, id)
	}
	return st
}

// VolatileIDs returns the applied volatile ids in insertion order.
func (m *Mon) VolatileIDs() []string {
	out := make([]string, 0, len(m.VolatileOrder))
	for _, id := range m.VolatileOrder {
		if _, ok := m.Volatiles[id]; ok {
			out = append(out, id)
		}
	}
	return out
}

// HasVolatile reports whether volatile id is currently applied.
func (m *Mon) HasVolatile(id string) bool {
	_, ok := m.Volatiles[id]
	return ok
}

// RemoveVolatile deletes volatile id's state, as on its End hook firing or
// on switch-out (unless baton-passable).
func (m *Mon) RemoveVolatile(id string) {
	delete(m.Volatiles, id)
	for i, existing := range m.VolatileOrder {
		if existing == id {
			m.VolatileOrder = append(m.VolatileOrder[:i], m.VolatileOrder[i+1:]...)
			break
		}
	}
}

// ClearVolatilesOnSwitchOut drops every volatile except those named in
// keep (the baton-passable set), and resets boosts, matching the switch-out
// lifecycle named in §3.
func (m *Mon) ClearVolatilesOnSwitchOut(keep map[string]bool) {
	for id := range m.Volatiles {
		if keep[id] {
			continue
		}
		delete(m.Volatiles, id)
	}
	m.Boosts.Reset()
	m.ActivePosition = nil
}

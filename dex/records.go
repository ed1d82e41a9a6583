// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package dex

import "github.com/openbattle/engine/stats"

// SpeciesData is the static definition of one species: its id, base stat
// table, and intrinsic typing. Everything else about a Mon in battle (level,
// IVs, EVs, current HP, boosts) lives on battle.Mon, not here.
type SpeciesData struct {
	ID      string
	Name    string
	Types   []string
	Base    stats.StatTable
	Aliases []string
}

// CanonicalID implements Record.
func (s SpeciesData) CanonicalID() string { return s.ID }

// MoveData is the static definition of a move: its category, type, base
// power, accuracy, priority, target mode, and the set of hook-relevant
// flags (contact, sound, bite, punch, ...) abilities key off of.
type MoveData struct {
	ID         string
	Name       string
	Category   string // "physical", "special", "status"
	Type       string
	BasePower  uint64
	Accuracy   int // 0 means "never misses"
	PP         int
	Priority   int
	Target     string
	Flags      map[string]bool
	CritRatio  int // stages above the default 1/24 crit chance
	Multihit   [2]int // [min,max] hits; [1,1] for a single hit
	Drain      [2]int // numerator/denominator of HP drained from damage dealt
	Recoil     [2]int // numerator/denominator of HP recoiled from damage dealt
	Secondary  *SecondaryEffect
}

// CanonicalID implements Record.
func (m MoveData) CanonicalID() string { return m.ID }

// SecondaryEffect describes a move's chance-based side effect (status,
// boost change, flinch) applied in Move Executor stage 7.
type SecondaryEffect struct {
	Chance      int // percent, out of 100
	Status      string
	BoostTarget string // "self" or "target"
	Boosts      map[string]int
	Flinch      bool
}

// AbilityData is the static definition of an ability. The hooks themselves
// are registered separately in the hooks registry (§4.2); this record only
// carries the identity and display data a log line or request needs.
type AbilityData struct {
	ID      string
	Name    string
	Aliases []string
}

// CanonicalID implements Record.
func (a AbilityData) CanonicalID() string { return a.ID }

// ItemData is the static definition of a held item.
type ItemData struct {
	ID      string
	Name    string
	Aliases []string
}

// CanonicalID implements Record.
func (i ItemData) CanonicalID() string { return i.ID }

// NatureData describes a nature's boosted and dropped stat, if any (a
// neutral nature leaves both empty).
type NatureData struct {
	ID      string
	Name    string
	Boosted stats.Stat
	Dropped stats.Stat
	Neutral bool
}

// CanonicalID implements Record.
func (n NatureData) CanonicalID() string { return n.ID }

// ConditionData is the static definition of a weather, terrain,
// pseudo-weather, status, or volatile condition's identity and default
// duration; its hooks are registered in the hooks registry.
type ConditionData struct {
	ID              string
	Name            string
	Kind            string // "weather", "terrain", "pseudo-weather", "status", "volatile", "side", "slot"
	DefaultDuration int    // 0 means indefinite
}

// CanonicalID implements Record.
func (c ConditionData) CanonicalID() string { return c.ID }

// FormatData describes a battle format: active slot count, adjacency
// reach, and which validation clauses apply.
type FormatData struct {
	ID           string
	Name         string
	ActiveCount  int
	AdjacentReach int
	Clauses      []string
}

// CanonicalID implements Record.
func (f FormatData) CanonicalID() string { return f.ID }

// ClauseData names one team-validation rule clause; the clause's check
// function is registered against hooks.OnValidateTeam/OnValidateMon keyed
// by this id.
type ClauseData struct {
	ID   string
	Name string
}

// CanonicalID implements Record.
func (c ClauseData) CanonicalID() string { return c.ID }

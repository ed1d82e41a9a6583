// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package stats

// Stat enumerates the six battle stats. Iteration order (StatOrder) is
// declaration order, matching the source's struct-field order.
type Stat int

const (
	HP Stat = iota
	Atk
	Def
	SpAtk
	SpDef
	Spe
)

// StatOrder is the canonical iteration order for Stat, matching
// declaration order as required by §3.
var StatOrder = []Stat{HP, Atk, Def, SpAtk, SpDef, Spe}

// String renders the stat's display name.
func (s Stat) String() string {
	switch s {
	case HP:
		return "HP"
	case Atk:
		return "Atk"
	case Def:
		return "Def"
	case SpAtk:
		return "SpAtk"
	case SpDef:
		return "SpDef"
	case Spe:
		return "Spe"
	default:
		return "Unknown"
	}
}

// Boost enumerates the seven boostable stages: the six battle stats minus
// HP, plus Accuracy and Evasion. Iteration order (BoostOrder) matches the
// supplemented alias table from battler's boosts.rs: Atk, Def, SpAtk,
// SpDef, Spe, Accuracy, Evasion.
type Boost int

const (
	BoostAtk Boost = iota
	BoostDef
	BoostSpAtk
	BoostSpDef
	BoostSpe
	BoostAccuracy
	BoostEvasion
)

// BoostOrder is the canonical iteration order for Boost.
var BoostOrder = []Boost{BoostAtk, BoostDef, BoostSpAtk, BoostSpDef, BoostSpe, BoostAccuracy, BoostEvasion}

// String renders the boost's display name.
func (b Boost) String() string {
	switch b {
	case BoostAtk:
		return "Atk"
	case BoostDef:
		return "Def"
	case BoostSpAtk:
		return "SpAtk"
	case BoostSpDef:
		return "SpDef"
	case BoostSpe:
		return "Spe"
	case BoostAccuracy:
		return "Accuracy"
	case BoostEvasion:
		return "Evasion"
	default:
		return "Unknown"
	}
}

// boostAliases lists every known serialization alias for each boost, for
// the service facade's wire format (§6), supplemented from boosts.rs.
var boostAliases = map[Boost][]string{
	BoostAtk:      {"Atk", "Attack"},
	BoostDef:      {"Def", "Defense"},
	BoostSpAtk:    {"SpAtk", "Sp. Atk", "Special Attack"},
	BoostSpDef:    {"SpDef", "Sp. Def", "Special Defense"},
	BoostSpe:      {"Spe", "Speed"},
	BoostAccuracy: {"Accuracy"},
	BoostEvasion:  {"Evasion", "Evasiveness"},
}

// Aliases returns every recognized serialization alias for b.
func (b Boost) Aliases() []string {
	return boostAliases[b]
}

// ParseBoost resolves any known alias (case-sensitive, matching the
// source's literal table) back to its Boost.
func ParseBoost(s string) (Boost, bool) {
	for b, aliases := range boostAliases {
		for _, alias := range aliases {
			if alias == s {
				return b, true
			}
		}
	}
	return 0, false
}

// StatFor converts a Boost that has a corresponding Stat (i.e. not
// Accuracy/Evasion) to that Stat.
func (b Boost) StatFor() (Stat, bool) {
	switch b {
	case BoostAtk:
		return Atk, true
	case BoostDef:
		return Def, true
	case BoostSpAtk:
		return SpAtk, true
	case BoostSpDef:
		return SpDef, true
	case BoostSpe:
		return Spe, true
	default:
		return 0, false
	}
}

// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"fmt"

	"github.com/openbattle/engine/battle"
)

// ClauseFunc checks one team-validation rule against a fully built roster,
// returning a problem string per violation (an empty slice means the team
// passes). Registered against a format's Clauses list by id (§4.7: "each
// clause is one hook function registered against on_validate_team").
type ClauseFunc func(mons []*battle.Mon) []string

// clauseRegistry is the fixed set of clause functions this engine ships,
// the curated set spec.md §4.7 names by name rather than an open plugin
// mechanism.
var clauseRegistry = map[string]ClauseFunc{
	"ability_clause":        abilityClause,
	"species_clause":        speciesClause,
	"item_clause":           itemClause,
	"nickname_clause":       nicknameClause,
	"same_type_clause":      sameTypeClause,
	"force_monotype_clause": forceMonotypeClause,
}

// LookupClause resolves a clause id to its check function, or ok=false for
// an unrecognized id.
func LookupClause(id string) (ClauseFunc, bool) {
	f, ok := clauseRegistry[id]
	return f, ok
}

// abilityClause rejects a roster where more than one Mon shares an
// ability id.
func abilityClause(mons []*battle.Mon) []string {
	seen := map[string]bool{}
	var problems []string
	for _, m := range mons {
		if m.AbilityID == "" {
			continue
		}
		if seen[m.AbilityID] {
			problems = append(problems, fmt.Sprintf("ability clause: %s used more than once", m.AbilityID))
		}
		seen[m.AbilityID] = true
	}
	return problems
}

// speciesClause rejects a roster where more than one Mon shares a species.
func speciesClause(mons []*battle.Mon) []string {
	seen := map[string]bool{}
	var problems []string
	for _, m := range mons {
		if seen[m.SpeciesID] {
			problems = append(problems, fmt.Sprintf("species clause: %s used more than once", m.SpeciesID))
		}
		seen[m.SpeciesID] = true
	}
	return problems
}

// itemClause rejects a roster where more than one Mon holds the same
// non-empty item.
func itemClause(mons []*battle.Mon) []string {
	seen := map[string]bool{}
	var problems []string
	for _, m := range mons {
		if m.ItemID == "" {
			continue
		}
		if seen[m.ItemID] {
			problems = append(problems, fmt.Sprintf("item clause: %s held more than once", m.ItemID))
		}
		seen[m.ItemID] = true
	}
	return problems
}

// nicknameClause has no nickname field on battle.Mon to validate against
// (the engine renders log identity from species instead, see
// executor.monRef); the clause is registered as a no-op so a format's
// clause list can still name it without the lookup failing, matching the
// "unknown effect keys are ignored" convention elsewhere in §4.2.
func nicknameClause(mons []*battle.Mon) []string { return nil }

// sameTypeClause rejects a roster where every Mon doesn't share at least
// one type in common (a "monotype" team format restricting the whole
// roster to one shared type, distinct from forceMonotypeClause which
// restricts each individual Mon).
func sameTypeClause(mons []*battle.Mon) []string {
	if len(mons) == 0 {
		return nil
	}
	shared := map[string]bool{}
	for _, t := range mons[0].Types {
		shared[string(t)] = true
	}
	for _, m := range mons[1:] {
		current := map[string]bool{}
		for _, t := range m.Types {
			current[string(t)] = true
		}
		for t := range shared {
			if !current[t] {
				delete(shared, t)
			}
		}
	}
	if len(shared) == 0 {
		return []string{"same type clause: roster shares no common type"}
	}
	return nil
}

// forceMonotypeClause rejects any Mon with more than one type.
func forceMonotypeClause(mons []*battle.Mon) []string {
	var problems []string
	for _, m := range mons {
		if len(m.Types) > 1 {
			problems = append(problems, fmt.Sprintf("force monotype clause: %s has more than one type", m.SpeciesID))
		}
	}
	return problems
}

// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package typechart

// MoveTarget enumerates a move's targeting mode. Relative positions are
// signed integers: 0 is the user itself, negative is an ally, positive is
// a foe; AdjacencyReach is the format's adjacency radius (singles=1,
// doubles=2, triples=2).
type MoveTarget string

const (
	TargetNormal        MoveTarget = "normal"         // one adjacent foe, chosen
	TargetSelf           MoveTarget = "self"            // the user, not choosable as a different target
	TargetAdjacentAlly   MoveTarget = "adjacentAlly"     // one adjacent ally, chosen
	TargetAdjacentAllyOrSelf MoveTarget = "adjacentAllyOrSelf"
	TargetAdjacentFoe    MoveTarget = "adjacentFoe"      // one adjacent foe, chosen
	TargetAllAdjacent    MoveTarget = "allAdjacent"       // every adjacent Mon, not chosen
	TargetAllAdjacentFoes MoveTarget = "allAdjacentFoes"  // every adjacent foe, not chosen
	TargetAll            MoveTarget = "all"              // the whole field, not chosen
	TargetAllySide       MoveTarget = "allySide"          // user's side, not chosen
	TargetFoeSide        MoveTarget = "foeSide"           // foe's side, not chosen
	TargetAllyTeam       MoveTarget = "allyTeam"          // user's team including bench
	TargetAny            MoveTarget = "any"              // any Mon on the field, chosen
	TargetRandomNormal   MoveTarget = "randomNormal"      // a random adjacent foe, not chosen
	TargetScripted       MoveTarget = "scripted"          // whoever hit the user last, not chosen
)

// Choosable reports whether a player selects the target explicitly when
// using this move (as opposed to the engine resolving it automatically).
func (t MoveTarget) Choosable() bool {
	switch t {
	case TargetNormal, TargetAdjacentAlly, TargetAdjacentAllyOrSelf, TargetAdjacentFoe, TargetAny:
		return true
	default:
		return false
	}
}

// RequiresTarget reports whether the move fails outright with no target
// present, as opposed to having a target-independent effect.
func (t MoveTarget) RequiresTarget() bool {
	switch t {
	case TargetAll, TargetAllySide, TargetFoeSide, TargetAllyTeam, TargetSelf:
		return false
	default:
		return true
	}
}

// HasSingleTarget reports whether exactly one Mon is ever affected,
// distinguishing single-target modes from spread modes like AllAdjacent.
func (t MoveTarget) HasSingleTarget() bool {
	switch t {
	case TargetAllAdjacent, TargetAllAdjacentFoes, TargetAll, TargetAllySide, TargetFoeSide, TargetAllyTeam:
		return false
	default:
		return true
	}
}

// AffectsMonsDirectly reports whether the move's targeting resolves to
// specific Mons at all, as opposed to a side/field-wide effect with no Mon
// target.
func (t MoveTarget) AffectsMonsDirectly() bool {
	switch t {
	case TargetAllySide, TargetFoeSide:
		return false
	default:
		return true
	}
}

// CanTargetUser reports whether relative position 0 (the user) is ever a
// legal target for this mode.
func (t MoveTarget) CanTargetUser() bool {
	switch t {
	case TargetSelf, TargetAdjacentAllyOrSelf, TargetAll, TargetAllySide, TargetAllyTeam:
		return true
	default:
		return false
	}
}

// CanTargetFoes reports whether a positive relative position is ever a
// legal target for this mode.
func (t MoveTarget) CanTargetFoes() bool {
	switch t {
	case TargetNormal, TargetAdjacentFoe, TargetAllAdjacent, TargetAllAdjacentFoes,
		TargetAll, TargetFoeSide, TargetAny, TargetRandomNormal, TargetScripted:
		return true
	default:
		return false
	}
}

// IsAdjacentOnly reports whether the mode is restricted to the format's
// adjacency reach, as opposed to reaching any Mon on the field (TargetAny).
func (t MoveTarget) IsAdjacentOnly() bool {
	switch t {
	case TargetAny, TargetAll, TargetAllySide, TargetFoeSide, TargetAllyTeam:
		return false
	default:
		return true
	}
}

// IsRandom reports whether the engine, not the player, picks among the
// legal targets.
func (t MoveTarget) IsRandom() bool {
	return t == TargetRandomNormal
}

// IsAffected reports whether a Mon at relativePosition is a legal target of
// this mode given the format's adjacencyReach. relativePosition 0 is the
// user, negative values are allies, positive values are foes.
func (t MoveTarget) IsAffected(relativePosition, adjacencyReach int) bool {
	switch t {
	case TargetSelf:
		return relativePosition == 0
	case TargetAdjacentAllyOrSelf:
		if relativePosition == 0 {
			return true
		}
		return relativePosition < 0 && -relativePosition <= adjacencyReach
	case TargetAdjacentAlly:
		return relativePosition < 0 && -relativePosition <= adjacencyReach
	case TargetAllySide, TargetAllyTeam:
		return relativePosition <= 0
	case TargetFoeSide, TargetAllAdjacentFoes:
		if relativePosition <= 0 {
			return false
		}
		if t == TargetFoeSide {
			return true
		}
		return relativePosition <= adjacencyReach
	case TargetAll:
		return true
	case TargetAny:
		return relativePosition != 0
	case TargetNormal:
		if relativePosition == 0 {
			return false
		}
		if relativePosition > 0 {
			return relativePosition <= adjacencyReach
		}
		// A Normal move may fall back to the one adjacent ally (e.g. when
		// no foe target remains in doubles); no other ally position.
		return relativePosition == -adjacencyReach+1
	case TargetAdjacentFoe, TargetRandomNormal, TargetScripted:
		if relativePosition <= 0 {
			return false
		}
		return relativePosition <= adjacencyReach
	case TargetAllAdjacent:
		if relativePosition == 0 {
			return false
		}
		if relativePosition > 0 {
			return relativePosition <= adjacencyReach
		}
		return -relativePosition <= adjacencyReach
	default:
		return false
	}
}

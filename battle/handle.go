// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package battle

// HandleKind discriminates the source tag of an EffectHandle.
type HandleKind string

const (
	HandleActiveMove   HandleKind = "active_move"
	HandleMoveCondition HandleKind = "move_condition"
	HandleInactiveMove HandleKind = "inactive_move"
	HandleAbility      HandleKind = "ability"
	HandleCondition    HandleKind = "condition"
	HandleItem         HandleKind = "item"
	HandleNonExistent  HandleKind = "non_existent"
)

// EffectHandle identifies an effect source: which kind of thing it is, its
// canonical dex/condition id, and, for ActiveMove, which hit-effect-type
// slot of the in-flight move it refers to (a move can carry more than one
// effect, e.g. a primary status chance and a flinch chance).
type EffectHandle struct {
	Kind          HandleKind
	ID            string
	HitEffectType string // only meaningful when Kind == HandleActiveMove
}

// Equals compares by tag plus id, per §3 ("Equality by tag + id"), and
// also requires the same HitEffectType.
func (h EffectHandle) Equals(other EffectHandle) bool {
	return h.Kind == other.Kind && h.ID == other.ID && h.HitEffectType == other.HitEffectType
}

// Tag returns the "<kind>:<name>" registration key the hooks registry
// looks callbacks up by (§4.2).
func (h EffectHandle) Tag() string {
	return string(h.Kind) + ":" + h.ID
}

// NonExistentHandle builds the handle the engine uses when an effect
// lookup fails but the caller still needs a handle to pass around (e.g. a
// redirected move whose original source no longer exists).
func NonExistentHandle(id string) EffectHandle {
	return EffectHandle{Kind: HandleNonExistent, ID: id}
}

// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package battle

// FormatConfig is the plain, typed-struct battle-format configuration
// SPEC_FULL names in place of a config-file format: active slot count,
// adjacency reach, tie-resolution mode, and the clause set a team must
// satisfy.
type FormatConfig struct {
	ID            string
	ActiveCount   int
	AdjacentReach int
	TieResolution TieResolution
	Clauses       []string
}

// TieResolution controls step 5 of the scheduler's comparator (§4.4).
type TieResolution int

const (
	// TieResolutionRandom draws from the PRNG to break ties, the default.
	TieResolutionRandom TieResolution = iota
	// TieResolutionKeep suppresses the random draw for testability,
	// preserving insertion order.
	TieResolutionKeep
)

// State is the full battle state: the field plus every side.
type State struct {
	Format FormatConfig
	Field  *Field
	Sides  []*Side

	Seed    int64
	Winner  int // -1 means undecided
	Tied    bool
	Failed  bool
	FailErr error
}

// NewState builds a battle state for the given format and sides, which
// must already have Format.ActiveCount slots each (§3 invariant).
func NewState(format FormatConfig, sides []*Side) *State {
	return &State{
		Format: format,
		Field:  NewField(),
		Sides:  sides,
		Winner: -1,
	}
}

// RelativePosition computes the signed relative position of a Mon at
// (toSide, toSlot) as seen from (fromSide, fromSlot): 0 if the same slot,
// negative for an ally, positive for a foe. The magnitude is the slot
// distance plus one when crossing sides, matching the convention that
// position 1 is the directly-opposite foe.
func (s *State) RelativePosition(fromSide, fromSlot, toSide, toSlot int) int {
	if fromSide == toSide {
		if fromSlot == toSlot {
			return 0
		}
		return -abs(toSlot - fromSlot)
	}
	// Foe: position 1 is directly opposite (same slot index), increasing
	// outward by the slot index distance.
	return abs(toSlot-fromSlot) + 1
}

// ResolveRelativePosition inverts RelativePosition: given the acting
// Mon's side/slot and a relative position (0 = self, negative = ally,
// positive = foe, the same convention damagectx.Move.Target uses), it
// picks a concrete (side, slot) still holding an active Mon. When two
// slots sit at the same distance, an ally lookup tries the lower slot
// first and a foe lookup tries the higher slot first; ok is false if no
// occupied slot matches at all.
func (s *State) ResolveRelativePosition(fromSide, fromSlot, relPos int) (toSide, toSlot int, ok bool) {
	if relPos == 0 {
		return fromSide, fromSlot, s.slotOccupied(fromSide, fromSlot)
	}
	if relPos < 0 {
		distance := -relPos
		side := s.Sides[fromSide]
		for _, candidate := range []int{fromSlot - distance, fromSlot + distance} {
			if candidate >= 0 && candidate < len(side.Slots) && s.slotOccupied(fromSide, candidate) {
				return fromSide, candidate, true
			}
		}
		return 0, 0, false
	}

	distance := relPos - 1
	for side := range s.Sides {
		if side == fromSide {
			continue
		}
		slots := s.Sides[side].Slots
		for _, candidate := range []int{fromSlot + distance, fromSlot - distance} {
			if candidate >= 0 && candidate < len(slots) && s.slotOccupied(side, candidate) {
				return side, candidate, true
			}
		}
	}
	return 0, 0, false
}

func (s *State) slotOccupied(side, slot int) bool {
	if side < 0 || side >= len(s.Sides) {
		return false
	}
	slots := s.Sides[side].Slots
	if slot < 0 || slot >= len(slots) {
		return false
	}
	return slots[slot].Mon != nil && !slots[slot].Mon.IsFainted()
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// Remaining active Mon count across the whole field, used by targeting
// fallback rules (e.g. Normal move falling back to an ally when no foe
// remains).
func (s *State) ActiveMonCount() int {
	n := 0
	for _, side := range s.Sides {
		for _, slot := range side.Slots {
			if slot.Mon != nil {
				n++
			}
		}
	}
	return n
}

// SetWinner freezes the battle state with the given winning side index.
func (s *State) SetWinner(side int) {
	s.Winner = side
}

// SetTied freezes the battle state with no winning side: every remaining
// side fainted out on the same tick. Distinct from the zero-value Winner
// of -1, which means "undecided" rather than "decided, nobody won".
func (s *State) SetTied() {
	s.Tied = true
}

// IsOver reports whether the battle has reached a terminal state: a
// winner declared, a tie declared, or a failure recorded.
func (s *State) IsOver() bool {
	return s.Winner != -1 || s.Tied || s.Failed
}

// Fail puts the battle into the terminal failed state §7 describes for a
// battle-invariant violation: future calls see the same error.
func (s *State) Fail(err error) {
	s.Failed = true
	s.FailErr = err
}

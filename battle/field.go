// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package battle

// Field holds field-wide conditions: weather, terrain, pseudo-weather, and
// any other counters not tied to one side or slot. PseudoWeatherOrder
// preserves the insertion order component F's dispatcher relies on
// ("insertion order is preserved across the battle").
type Field struct {
	Weather      string // "" means no weather active
	WeatherState EffectState
	Terrain      string // "" means no terrain active
	TerrainState EffectState

	PseudoWeather      map[string]EffectState
	PseudoWeatherOrder []string

	Turn int
}

// NewField builds an empty field.
func NewField() *Field {
	return &Field{PseudoWeather: make(map[string]EffectState)}
}

// HasWeather reports whether id is the field's current weather.
func (f *Field) HasWeather(id string) bool { return f.Weather == id }

// SetWeather replaces the field's weather and resets its state.
func (f *Field) SetWeather(id string, duration int) {
	f.Weather = id
	f.WeatherState = NewEffectState()
	f.WeatherState.SetDuration(duration)
}

// ClearWeather removes the active weather entirely.
func (f *Field) ClearWeather() {
	f.Weather = ""
	f.WeatherState = nil
}

// SetTerrain replaces the field's terrain and resets its state.
func (f *Field) SetTerrain(id string, duration int) {
	f.Terrain = id
	f.TerrainState = NewEffectState()
	f.TerrainState.SetDuration(duration)
}

// ClearTerrain removes the active terrain entirely.
func (f *Field) ClearTerrain() {
	f.Terrain = ""
	f.TerrainState = nil
}

// PseudoWeatherState returns (creating if absent) the state for a
// pseudo-weather condition like Trick Room or Gravity, recording its
// insertion order the first time.
func (f *Field) PseudoWeatherState(id string) EffectState {
	st, ok := f.PseudoWeather[id]
	if !ok {
		st = NewEffectState()
		f.PseudoWeather[id] = st
		f.PseudoWeatherOrder = append(f.PseudoWeatherOrder, id)
	}
	return st
}

// HasPseudoWeather reports whether id is currently active.
func (f *Field) HasPseudoWeather(id string) bool {
	_, ok := f.PseudoWeather[id]
	return ok
}

// RemovePseudoWeather clears a pseudo-weather condition.
func (f *Field) RemovePseudoWeather(id string) {
	delete(f.PseudoWeather, id)
	for i, existing := range f.PseudoWeatherOrder {
		if existing == id {
			f.PseudoWeatherOrder = append(f.PseudoWeatherOrder[:i], f.PseudoWeatherOrder[i+1:]...)
			break
		}
	}
}

// Slot is one active position on a side: either a Mon reference or empty
// (fainted, or mid-switch).
type Slot struct {
	Mon *Mon // nil means empty
}

// IsEmpty reports whether the slot currently holds no Mon.
func (s Slot) IsEmpty() bool { return s.Mon == nil }

// Side is one team's half of the field.
type Side struct {
	Player string

	Slots   []Slot
	Reserve []*Mon

	SideConditions     map[string]EffectState
	SideConditionOrder []string
	SlotConditions     []map[string]EffectState // indexed by slot
	SlotConditionOrder [][]string                // indexed by slot
}

// NewSide builds a Side with activeCount slots and the given reserve.
func NewSide(player string, activeCount int, reserve []*Mon) *Side {
	slotConditions := make([]map[string]EffectState, activeCount)
	slotConditionOrder := make([][]string, activeCount)
	for i := range slotConditions {
		slotConditions[i] = make(map[string]EffectState)
	}
	return &Side{
		Player:             player,
		Slots:              make([]Slot, activeCount),
		Reserve:            reserve,
		SideConditions:     make(map[string]EffectState),
		SlotConditions:     slotConditions,
		SlotConditionOrder: slotConditionOrder,
	}
}

// HasSideCondition reports whether id is active on this side.
func (s *Side) HasSideCondition(id string) bool {
	_, ok := s.SideConditions[id]
	return ok
}

// SideConditionState returns (creating if absent) the state for condition
// id, recording insertion order the first time.
func (s *Side) SideConditionState(id string) EffectState {
	st, ok := s.SideConditions[id]
	if !ok {
		st = NewEffectState()
		s.SideConditions[id] = st
		s.SideConditionOrder = append(s.SideConditionOrder, id)
	}
	return st
}

// RemoveSideCondition clears a side condition.
func (s *Side) RemoveSideCondition(id string) {
	delete(s.SideConditions, id)
	for i, existing := range s.SideConditionOrder {
		if existing == id {
			s.SideConditionOrder = append(s.SideConditionOrder[:i], s.SideConditionOrder[i+1:]...)
			break
		}
	}
}

// SlotConditionState returns (creating if absent) the state for condition
// id at the given slot index.
func (s *Side) SlotConditionState(slot int, id string) EffectState {
	st, ok := s.SlotConditions[slot][id]
	if !ok {
		st = NewEffectState()
		s.SlotConditions[slot][id] = st
		s.SlotConditionOrder[slot] = append(s.SlotConditionOrder[slot], id)
	}
	return st
}

// HasSlotCondition reports whether id is active at the given slot.
func (s *Side) HasSlotCondition(slot int, id string) bool {
	_, ok := s.SlotConditions[slot][id]
	return ok
}

// RemoveSlotCondition clears a slot condition.
func (s *Side) RemoveSlotCondition(slot int, id string) {
	delete(s.SlotConditions[slot], id)
	order := s.SlotConditionOrder[slot]
	for i, existing := range order {
		if existing == id {
			s.SlotConditionOrder[slot] = append(order[:i], order[i+1:]...)
			break
		}
	}
}

// ActiveMons returns every non-empty active slot's Mon.
func (s *Side) ActiveMons() []*Mon {
	var out []*Mon
	for _, slot := range s.Slots {
		if slot.Mon != nil {
			out = append(out, slot.Mon)
		}
	}
	return out
}

// HasHealthyMon reports whether any Mon on this side (active or benched)
// still has HP, the condition the executor checks to decide a win/loss.
func (s *Side) HasHealthyMon() bool {
	for _, slot := range s.Slots {
		if slot.Mon != nil && !slot.Mon.IsFainted() {
			return true
		}
	}
	for _, m := range s.Reserve {
		if !m.IsFainted() {
			return true
		}
	}
	return false
}

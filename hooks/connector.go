// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package hooks

import "github.com/openbattle/engine/battle"

// Connector abstracts where an effect's EffectState actually lives — a
// Mon's volatile, a side condition, a per-slot condition, or the field's
// weather/terrain/pseudo-weather — behind a uniform accessor pair, so a
// hook body never needs to know which storage its own handle came from.
type Connector struct {
	get func() battle.EffectState
	set func(battle.EffectState)
}

// State returns the effect's persistent dictionary. The volatile, status,
// pseudo-weather, side- and slot-condition connectors create it on first
// access; the weather and terrain connectors return the field's current
// state as is, which is nil while no weather or terrain is set.
func (c Connector) State() battle.EffectState { return c.get() }

// SetState replaces the effect's persistent dictionary wholesale, used
// only by Remove/reset paths that want to discard accumulated state.
func (c Connector) SetState(st battle.EffectState) { c.set(st) }

// MonVolatileConnector builds a Connector over a volatile condition id on
// mon (e.g. Ingrain, confusion, a semi-invulnerable charge-turn flag).
func MonVolatileConnector(mon *battle.Mon, id string) Connector {
	return Connector{
		get: func() battle.EffectState { return mon.VolatileState(id) },
		set: func(st battle.EffectState) { mon.Volatiles[id] = st },
	}
}

// MonStatusConnector builds a Connector over mon's non-volatile status
// ailment (burn, the badly-poisoned counter, sleep's turns-remaining).
func MonStatusConnector(mon *battle.Mon) Connector {
	return Connector{
		get: func() battle.EffectState {
			if mon.StatusState == nil {
				mon.StatusState = battle.NewEffectState()
			}
			return mon.StatusState
		},
		set: func(st battle.EffectState) { mon.StatusState = st },
	}
}

// FieldWeatherConnector builds a Connector over the field's active
// weather, valid only while that weather is the field's current one.
func FieldWeatherConnector(field *battle.Field) Connector {
	return Connector{
		get: func() battle.EffectState { return field.WeatherState },
		set: func(st battle.EffectState) { field.WeatherState = st },
	}
}

// FieldTerrainConnector builds a Connector over the field's active
// terrain.
func FieldTerrainConnector(field *battle.Field) Connector {
	return Connector{
		get: func() battle.EffectState { return field.TerrainState },
		set: func(st battle.EffectState) { field.TerrainState = st },
	}
}

// FieldPseudoWeatherConnector builds a Connector over one pseudo-weather
// id (Trick Room, Gravity, and similar field-wide counters).
func FieldPseudoWeatherConnector(field *battle.Field, id string) Connector {
	return Connector{
		get: func() battle.EffectState { return field.PseudoWeatherState(id) },
		set: func(st battle.EffectState) { field.PseudoWeather[id] = st },
	}
}

// SideConditionConnector builds a Connector over one side condition id
// (Stealth Rock, Reflect, Tailwind).
func SideConditionConnector(side *battle.Side, id string) Connector {
	return Connector{
		get: func() battle.EffectState { return side.SideConditionState(id) },
		set: func(st battle.EffectState) { side.SideConditions[id] = st },
	}
}

// SlotConditionConnector builds a Connector over one per-slot condition id
// (Wish, a future-sight delayed hit).
func SlotConditionConnector(side *battle.Side, slot int, id string) Connector {
	return Connector{
		get: func() battle.EffectState { return side.SlotConditionState(slot, id) },
		set: func(st battle.EffectState) { side.SlotConditions[slot][id] = st },
	}
}

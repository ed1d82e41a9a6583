// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package executor

import (
	"context"

	"github.com/openbattle/engine/battle"
)

// executeResidual ticks every per-field, per-side, per-slot, and per-Mon
// effect carrying a duration once, firing each expiring effect's End hook
// before removing it, then deals residual status/weather damage (§4.5's
// closing paragraph). Insertion-order snapshots are taken before iterating
// since Remove* mutates the very slice being walked.
func (e *Executor) executeResidual(ctx context.Context) {
	state := e.State
	field := state.Field

	if field.Weather != "" && field.WeatherState.HasDuration() {
		if _, expired := field.WeatherState.DecrementDuration(); expired {
			e.expireField(ctx, field.Weather, battle.LocationWeather)
			field.ClearWeather()
		}
	}
	if field.Terrain != "" && field.TerrainState.HasDuration() {
		if _, expired := field.TerrainState.DecrementDuration(); expired {
			e.expireField(ctx, field.Terrain, battle.LocationTerrain)
			field.ClearTerrain()
		}
	}
	for _, id := range append([]string(nil), field.PseudoWeatherOrder...) {
		st := field.PseudoWeather[id]
		if st.HasDuration() {
			if _, expired := st.DecrementDuration(); expired {
				e.expireField(ctx, id, battle.LocationPseudoWeather)
				field.RemovePseudoWeather(id)
			}
		}
	}

	for sideIdx, side := range state.Sides {
		for _, id := range append([]string(nil), side.SideConditionOrder...) {
			st := side.SideConditions[id]
			if st.HasDuration() {
				if _, expired := st.DecrementDuration(); expired {
					e.expireSide(ctx, sideIdx, id)
					side.RemoveSideCondition(id)
				}
			}
		}
		for slotIdx := range side.SlotConditions {
			for _, id := range append([]string(nil), side.SlotConditionOrder[slotIdx]...) {
				st := side.SlotConditions[slotIdx][id]
				if st.HasDuration() {
					if _, expired := st.DecrementDuration(); expired {
						e.expireSlot(ctx, sideIdx, slotIdx, id)
						side.RemoveSlotCondition(slotIdx, id)
					}
				}
			}
		}

		for _, slot := range side.Slots {
			mon := slot.Mon
			if mon == nil {
				continue
			}
			e.tickMonStatus(ctx, mon)
			e.tickMonVolatiles(ctx, mon)
			e.dealResidualStatusDamage(mon, sideIdx)
		}
	}

	e.emit("residual")
}

func (e *Executor) expireField(ctx context.Context, id string, kind battle.LocationKind) {
	handle := battle.EffectHandle{Kind: battle.HandleCondition, ID: id}
	e.Disp.End(ctx, e.State, handle, battle.Location{Kind: kind})
	e.emit("end|field|condition:%s", id)
}

func (e *Executor) expireSide(ctx context.Context, side int, id string) {
	handle := battle.EffectHandle{Kind: battle.HandleCondition, ID: id}
	e.Disp.End(ctx, e.State, handle, battle.Location{Kind: battle.LocationSideCondition, Side: side})
	e.emit("end|side:%d|condition:%s", side, id)
}

func (e *Executor) expireSlot(ctx context.Context, side, slot int, id string) {
	handle := battle.EffectHandle{Kind: battle.HandleCondition, ID: id}
	e.Disp.End(ctx, e.State, handle, battle.Location{Kind: battle.LocationSlotCondition, Side: side, Slot: slot})
	e.emit("end|side:%d|slot:%d|condition:%s", side, slot, id)
}

func (e *Executor) tickMonStatus(ctx context.Context, mon *battle.Mon) {
	if mon.StatusAilment == battle.StatusNone || mon.StatusState == nil || !mon.StatusState.HasDuration() {
		return
	}
	if _, expired := mon.StatusState.DecrementDuration(); expired {
		handle := battle.EffectHandle{Kind: battle.HandleCondition, ID: string(mon.StatusAilment)}
		e.Disp.End(ctx, e.State, handle, battle.Location{Kind: battle.LocationMonStatus})
		e.emit("end|%s|status:%s", monRef(mon), mon.StatusAilment)
		mon.ClearStatus()
	}
}

func (e *Executor) tickMonVolatiles(ctx context.Context, mon *battle.Mon) {
	for _, id := range mon.VolatileIDs() {
		st := mon.Volatiles[id]
		if !st.HasDuration() {
			continue
		}
		if _, expired := st.DecrementDuration(); expired {
			handle := battle.EffectHandle{Kind: battle.HandleCondition, ID: id}
			e.Disp.End(ctx, e.State, handle, battle.Location{Kind: battle.LocationMonVolatile})
			e.emit("end|%s|volatile:%s", monRef(mon), id)
			mon.RemoveVolatile(id)
		}
	}
}

// dealResidualStatusDamage applies the standard burn/poison (1/8 max HP)
// and badly-poisoned (n/16 max HP, n incrementing each turn) chip damage.
// Weather chip damage (sandstorm, hail) would need a per-type immunity
// check through Disp.CheckMonState that the current catalog has no
// residual-specific event for; left as a follow-up alongside the
// post-move ability/item hook gap noted in move.go.
func (e *Executor) dealResidualStatusDamage(mon *battle.Mon, side int) {
	if mon.IsFainted() {
		return
	}
	var dmg uint64
	switch mon.StatusAilment {
	case battle.StatusBurn, battle.StatusPoison:
		dmg = mon.MaxHP / 8
	case battle.StatusBadPoison:
		if mon.StatusState == nil {
			mon.StatusState = battle.NewEffectState()
		}
		counter := mon.StatusState.Int("toxic_counter") + 1
		mon.StatusState.SetInt("toxic_counter", counter)
		dmg = mon.MaxHP * uint64(counter) / 16
	default:
		return
	}
	if dmg == 0 {
		dmg = 1
	}
	e.applyDamage(mon, side, dmg)
}

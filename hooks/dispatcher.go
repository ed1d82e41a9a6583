// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package hooks

import (
	"context"

	"github.com/openbattle/engine/battle"
	"github.com/openbattle/engine/damagectx"
	"github.com/openbattle/engine/rational"
	"github.com/openbattle/engine/stats"
)

// Dispatcher walks a Registry in the fixed phase order the damage pipeline
// relies on: field-level sources, then the attacker's side, then the
// defender's side, then each Mon's passive sources (ability, item,
// status, volatiles in insertion order, the synthetic "mon" default
// last), attacker before defender, with the move's own intrinsic hook
// always invoked last of all.
type Dispatcher struct {
	reg *Registry
}

// NewDispatcher builds a Dispatcher over reg.
func NewDispatcher(reg *Registry) *Dispatcher {
	return &Dispatcher{reg: reg}
}

func (d *Dispatcher) fieldHandles(field *battle.Field) []battle.EffectHandle {
	var out []battle.EffectHandle
	if field.Weather != "" {
		out = append(out, battle.EffectHandle{Kind: battle.HandleCondition, ID: field.Weather})
	}
	if field.Terrain != "" {
		out = append(out, battle.EffectHandle{Kind: battle.HandleCondition, ID: field.Terrain})
	}
	for _, id := range field.PseudoWeatherOrder {
		out = append(out, battle.EffectHandle{Kind: battle.HandleCondition, ID: id})
	}
	return out
}

func (d *Dispatcher) sideHandles(side *battle.Side, slot int) []battle.EffectHandle {
	var out []battle.EffectHandle
	for _, id := range side.SideConditionOrder {
		out = append(out, battle.EffectHandle{Kind: battle.HandleCondition, ID: id})
	}
	if slot >= 0 && slot < len(side.SlotConditionOrder) {
		for _, id := range side.SlotConditionOrder[slot] {
			out = append(out, battle.EffectHandle{Kind: battle.HandleCondition, ID: id})
		}
	}
	return out
}

// monPassiveHandles returns a Mon's passive sources in the fixed
// sub-order: ability, item, status, volatiles in insertion order. The
// synthetic "mon" default is handled separately by the caller since it
// has no EffectHandle of its own.
func (d *Dispatcher) monPassiveHandles(mon *battle.Mon) []battle.EffectHandle {
	var out []battle.EffectHandle
	if mon.AbilityID != "" {
		out = append(out, battle.EffectHandle{Kind: battle.HandleAbility, ID: mon.AbilityID})
	}
	if mon.ItemID != "" {
		out = append(out, battle.EffectHandle{Kind: battle.HandleItem, ID: mon.ItemID})
	}
	if mon.StatusAilment != battle.StatusNone {
		out = append(out, battle.EffectHandle{Kind: battle.HandleCondition, ID: string(mon.StatusAilment)})
	}
	for _, id := range mon.VolatileIDs() {
		out = append(out, battle.EffectHandle{Kind: battle.HandleCondition, ID: id})
	}
	return out
}

func (d *Dispatcher) moveHandle(dc *damagectx.Context) battle.EffectHandle {
	return battle.EffectHandle{Kind: battle.HandleActiveMove, ID: dc.Move.Data.ID}
}

// forEachField invokes fn for every field-level Hooks in fixed order.
func (d *Dispatcher) forEachField(dc *damagectx.Context, fn func(*Hooks)) {
	for _, handle := range d.fieldHandles(dc.State.Field) {
		if h, ok := d.reg.Lookup(handle); ok {
			fn(h)
		}
	}
}

// forEachSide invokes fn for every Hooks active on which's side.
func (d *Dispatcher) forEachSide(dc *damagectx.Context, which damagectx.MonType, fn func(*Hooks)) {
	side, slot := d.sideAndSlot(dc, which)
	for _, handle := range d.sideHandles(side, slot) {
		if h, ok := d.reg.Lookup(handle); ok {
			fn(h)
		}
	}
}

// forEachMonPassive invokes fn for which's ability/item/status/volatiles,
// then for the synthetic "mon" default if one is registered.
func (d *Dispatcher) forEachMonPassive(dc *damagectx.Context, which damagectx.MonType, fn func(*Hooks)) {
	mon := dc.Mon(which)
	for _, handle := range d.monPassiveHandles(mon) {
		if h, ok := d.reg.Lookup(handle); ok {
			fn(h)
		}
	}
	if h, ok := d.reg.monDefault(); ok {
		fn(h)
	}
}

func (d *Dispatcher) sideAndSlot(dc *damagectx.Context, which damagectx.MonType) (*battle.Side, int) {
	if which == damagectx.Attacker {
		return dc.State.Sides[dc.AttackerSide], dc.AttackerSlot
	}
	return dc.State.Sides[dc.DefenderSide], dc.DefenderSlot
}

// forEachInFullOrder walks every phase in the fixed order: field,
// attacker side, defender side, attacker passives, defender passives,
// move-intrinsic last. Most multi-source events (ModifyBasePower,
// ModifyStat, ModifyTypeEffectiveness, ModifyDamage) use this full walk.
func (d *Dispatcher) forEachInFullOrder(dc *damagectx.Context, fn func(*Hooks)) {
	d.forEachField(dc, fn)
	d.forEachSide(dc, damagectx.Attacker, fn)
	d.forEachSide(dc, damagectx.Defender, fn)
	d.forEachMonPassive(dc, damagectx.Attacker, fn)
	d.forEachMonPassive(dc, damagectx.Defender, fn)
	if h, ok := d.reg.Lookup(d.moveHandle(dc)); ok {
		fn(h)
	}
}

// ModifyStateFromField runs stage 2's field-level hooks (§4.3): weather,
// terrain, and pseudo-weather, in that fixed order.
func (d *Dispatcher) ModifyStateFromField(ctx context.Context, dc *damagectx.Context) {
	d.forEachField(dc, func(h *Hooks) {
		if h.ModifyStateFromField != nil {
			h.ModifyStateFromField(ctx, dc)
		}
	})
}

// ModifyStateFromSide runs which's side and slot conditions.
func (d *Dispatcher) ModifyStateFromSide(ctx context.Context, dc *damagectx.Context, which damagectx.MonType) {
	d.forEachSide(dc, which, func(h *Hooks) {
		if h.ModifyStateFromSide != nil {
			h.ModifyStateFromSide(ctx, dc, which)
		}
	})
}

// ModifyStateFromMon runs which's passive sources (ability, item, status,
// volatiles, then the synthetic "mon" default).
func (d *Dispatcher) ModifyStateFromMon(ctx context.Context, dc *damagectx.Context, which damagectx.MonType) {
	d.forEachMonPassive(dc, which, func(h *Hooks) {
		if h.ModifyStateFromMon != nil {
			h.ModifyStateFromMon(ctx, dc, which)
		}
	})
}

// ModifyMove walks the full order looking for a hook that rewrites the
// move wholesale (Nature Power, redirection). The first hook to actually
// mutate dc.Move "wins" in the sense that later hooks see the rewritten
// move; there is no short-circuit, matching §4.2's description of this
// event as a plain full-order walk rather than a first-match event.
func (d *Dispatcher) ModifyMove(ctx context.Context, dc *damagectx.Context) {
	d.forEachInFullOrder(dc, func(h *Hooks) {
		if h.ModifyMove != nil {
			h.ModifyMove(ctx, dc)
		}
	})
}

// ModifyMoveData walks the full order adjusting the move's derived fields
// once the Mon context is built (e.g. a category flip).
func (d *Dispatcher) ModifyMoveData(ctx context.Context, dc *damagectx.Context) {
	d.forEachInFullOrder(dc, func(h *Hooks) {
		if h.ModifyMoveData != nil {
			h.ModifyMoveData(ctx, dc)
		}
	})
}

// ApplyFixedDamage walks the full order until a hook claims the hit
// wholesale (Seismic Toss, Dragon Rage); the first ok=true short-circuits
// the walk and its value is returned. The synthetic "mon" default is
// consulted last, after every real handle, matching forEachMonPassive.
func (d *Dispatcher) ApplyFixedDamage(ctx context.Context, dc *damagectx.Context) (uint64, bool) {
	for _, handle := range d.allHandlesInOrder(dc) {
		h, ok := d.reg.Lookup(handle)
		if !ok || h.ApplyFixedDamage == nil {
			continue
		}
		if dmg, ok := h.ApplyFixedDamage(ctx, dc); ok {
			return dmg, true
		}
	}
	if h, ok := d.reg.monDefault(); ok && h.ApplyFixedDamage != nil {
		if dmg, ok := h.ApplyFixedDamage(ctx, dc); ok {
			return dmg, true
		}
	}
	return 0, false
}

// ModifyBasePower walks the full order, each hook free to rewrite out in
// place (§4.3 stage 4).
func (d *Dispatcher) ModifyBasePower(ctx context.Context, dc *damagectx.Context, out *rational.Output[rational.Fraction]) {
	d.forEachInFullOrder(dc, func(h *Hooks) {
		if h.ModifyBasePower != nil {
			h.ModifyBasePower(ctx, dc, out)
		}
	})
}

// ModifyStat walks the full order resolving one of which's stats.
func (d *Dispatcher) ModifyStat(ctx context.Context, dc *damagectx.Context, which damagectx.MonType, stat stats.Stat, out *rational.Output[rational.Range]) {
	d.forEachInFullOrder(dc, func(h *Hooks) {
		if h.ModifyStat != nil {
			h.ModifyStat(ctx, dc, which, stat, out)
		}
	})
}

// ModifyDamageFromWeather walks the full order applying weather's
// multiplicative effect on the raw damage range.
func (d *Dispatcher) ModifyDamageFromWeather(ctx context.Context, dc *damagectx.Context, out *rational.Output[rational.Range]) {
	d.forEachInFullOrder(dc, func(h *Hooks) {
		if h.ModifyDamageFromWeather != nil {
			h.ModifyDamageFromWeather(ctx, dc, out)
		}
	})
}

// ModifyTypeEffectiveness walks the full order letting abilities/items
// (Air Lock, Ring Target) adjust the type chart's multiplier.
func (d *Dispatcher) ModifyTypeEffectiveness(ctx context.Context, dc *damagectx.Context, out *rational.Output[rational.Fraction]) {
	d.forEachInFullOrder(dc, func(h *Hooks) {
		if h.ModifyTypeEffectiveness != nil {
			h.ModifyTypeEffectiveness(ctx, dc, out)
		}
	})
}

// ModifyDamage walks the full order over the final damage distribution
// (§4.3 stage 8, after random factor, STAB, and type effectiveness have
// all been folded in).
func (d *Dispatcher) ModifyDamage(ctx context.Context, dc *damagectx.Context, out *rational.Output[rational.Distribution]) {
	d.forEachInFullOrder(dc, func(h *Hooks) {
		if h.ModifyDamage != nil {
			h.ModifyDamage(ctx, dc, out)
		}
	})
}

// ModifyStateAfterHit walks the full order once HP/status changes for
// this hit have been computed but not yet committed (§4.3 stage 9).
func (d *Dispatcher) ModifyStateAfterHit(ctx context.Context, dc *damagectx.Context) {
	d.forEachInFullOrder(dc, func(h *Hooks) {
		if h.ModifyStateAfterHit != nil {
			h.ModifyStateAfterHit(ctx, dc)
		}
	})
}

// CheckMonState asks every hook in the full order whether it has an
// opinion on the given predicate for which, short-circuiting on the
// first ok=true. The synthetic "mon" default is consulted last, after
// every real handle, matching forEachMonPassive. If nothing answers, ok
// is false and the caller falls back to its own default (e.g. "grounded
// unless a levitate-like effect says otherwise").
func (d *Dispatcher) CheckMonState(ctx context.Context, dc *damagectx.Context, which damagectx.MonType, kind CheckKind) (bool, bool) {
	for _, handle := range d.allHandlesInOrder(dc) {
		h, ok := d.reg.Lookup(handle)
		if !ok || h.Check == nil {
			continue
		}
		fn, ok := h.Check[kind]
		if !ok || fn == nil {
			continue
		}
		if value, answered := fn(ctx, dc, which); answered {
			return value, true
		}
	}
	if h, ok := d.reg.monDefault(); ok && h.Check != nil {
		if fn, ok := h.Check[kind]; ok && fn != nil {
			if value, answered := fn(ctx, dc, which); answered {
				return value, true
			}
		}
	}
	return false, false
}

// End fires handle's End hook, if it has one, just before its caller
// discards the EffectState at loc. Unlike the damage-pipeline events
// above, this is invoked directly against one handle rather than walked
// across a fixed phase order, since residual expiry always concerns
// exactly one effect at a time.
func (d *Dispatcher) End(ctx context.Context, state *battle.State, handle battle.EffectHandle, loc battle.Location) {
	if h, ok := d.reg.Lookup(handle); ok && h.End != nil {
		h.End(ctx, state, loc)
	}
}

// allHandlesInOrder returns every real handle in the fixed full order.
// The synthetic "mon" default has no EffectHandle of its own, so it
// can't appear in this slice; ApplyFixedDamage and CheckMonState each
// consult it directly after exhausting this order, the same way
// forEachMonPassive does for the per-stage walks.
func (d *Dispatcher) allHandlesInOrder(dc *damagectx.Context) []battle.EffectHandle {
	var out []battle.EffectHandle
	out = append(out, d.fieldHandles(dc.State.Field)...)
	attackerSide, attackerSlot := d.sideAndSlot(dc, damagectx.Attacker)
	defenderSide, defenderSlot := d.sideAndSlot(dc, damagectx.Defender)
	out = append(out, d.sideHandles(attackerSide, attackerSlot)...)
	out = append(out, d.sideHandles(defenderSide, defenderSlot)...)
	out = append(out, d.monPassiveHandles(dc.Attacker)...)
	out = append(out, d.monPassiveHandles(dc.Defender)...)
	out = append(out, d.moveHandle(dc))
	return out
}

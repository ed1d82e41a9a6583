// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package executor

import "github.com/openbattle/engine/scheduler"

// executeSwitch swaps the Mon at a.Side/a.Slot out to the bench and brings
// a.SwitchPosition's reserve Mon in, clearing the outgoing Mon's volatiles
// and boosts except any flagged baton-passable when SwitchPreserve is set
// (§4.5 step 8, §3's switch-out lifecycle). A self/forced switch that
// hasn't been resolved to a specific bench Mon via SwitchPosition (the
// normal case when this is injected mid-turn rather than chosen by a
// player through the service facade) falls back to the first healthy
// reserve Mon.
func (e *Executor) executeSwitch(a scheduler.Action) {
	side := e.State.Sides[a.Side]

	position := a.SwitchPosition
	if position < 0 || position >= len(side.Reserve) || side.Reserve[position].IsFainted() {
		found := false
		for i, mon := range side.Reserve {
			if !mon.IsFainted() {
				position, found = i, true
				break
			}
		}
		if !found {
			e.emit("cant|side:%d|reason:no-bench-mon", a.Side)
			return
		}
	}

	outgoing := side.Slots[a.Slot].Mon
	incoming := side.Reserve[position]

	if outgoing != nil {
		keep := map[string]bool{}
		if a.SwitchPreserve {
			for id := range batonPassable {
				if outgoing.HasVolatile(id) {
					keep[id] = true
				}
			}
		}
		outgoing.ClearVolatilesOnSwitchOut(keep)
		side.Reserve[position] = outgoing
		if a.SwitchPreserve {
			for id := range keep {
				incoming.Volatiles[id] = outgoing.Volatiles[id]
				incoming.VolatileOrder = append(incoming.VolatileOrder, id)
			}
		}
	} else {
		side.Reserve = append(side.Reserve[:position], side.Reserve[position+1:]...)
	}

	slotIndex := a.Slot
	incoming.ActivePosition = &slotIndex
	side.Slots[a.Slot].Mon = incoming

	e.emit("switch|%s|in:%s", monRef(outgoing), monRef(incoming))
}

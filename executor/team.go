// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package executor

import "github.com/openbattle/engine/scheduler"

// executeTeam logs a team-preview lead selection. The actual lineup
// ordering is a service-facade concern (player_data/request/make_choice
// during team preview, §4.7): by the time a Team action reaches the
// executor, the side's Slots are already populated, so this step only
// records the choice in the log.
func (e *Executor) executeTeam(a scheduler.Action) {
	e.emit("team|side:%d|mon:%s|index:%d", a.Side, a.TeamMon, a.TeamIndex)
}

// executeMegaEvo logs a Mega Evolution. No Mon field yet tracks a
// pre-mega species/ability/stat snapshot to revert on switch-out (the
// data model has no mega-evolution record at all, §9's list of
// unresolved gen-specific mechanics); this only emits the log line a
// client needs to render the transformation; reverting on switch is left
// as a follow-up once such a record exists.
func (e *Executor) executeMegaEvo(a scheduler.Action) {
	e.emit("mega|%s", a.MegaEvoMon)
}

// executeItem logs a bag-item use. No item-effect dex maps an item id to
// its hook set yet (only held items drive hooks.Hooks.ModifyStat-style hooks
// today); this records the choice for a client to render without applying
// any effect, the same honest-gap treatment team.go gives mega evolution.
func (e *Executor) executeItem(a scheduler.Action) {
	e.emit("item|%s|name:%s", a.ItemPlayer, a.ItemID)
}

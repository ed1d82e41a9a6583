// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package executor

import (
	"context"

	"github.com/openbattle/engine/battle"
	"github.com/openbattle/engine/damage"
	"github.com/openbattle/engine/damagectx"
	"github.com/openbattle/engine/dex"
	"github.com/openbattle/engine/rpgerr"
	"github.com/openbattle/engine/scheduler"
	"github.com/openbattle/engine/stats"
)

// batonPassable names the volatiles a Baton Pass user's successor inherits
// on self-switch (§4.5 step 8's "preserving volatile effects flagged as
// baton-passable"). A full data-driven flag on ConditionData would let
// this live with the dex instead of here; kept as a fixed set until that
// field exists.
var batonPassable = map[string]bool{
	"condition:substitute": true,
	"condition:ingrain":    true,
	"condition:aquaring":   true,
}

// executeMove runs §4.5 steps 1-10 for one Move action.
func (e *Executor) executeMove(ctx context.Context, q *scheduler.Queue, a scheduler.Action) error {
	mon := e.State.Sides[a.Side].Slots[a.Slot].Mon
	if mon == nil || mon.IsFainted() {
		e.emit("cant|%s|reason:no-mon", monRef(mon))
		return nil
	}

	move, err := e.Moves.GetByID(a.MoveID)
	if err != nil {
		return rpgerr.Wrap(err, "executor: looking up move")
	}

	// Step 1: legality.
	if mon.PP[move.ID] <= 0 {
		e.emit("cant|%s|reason:no-pp", monRef(mon))
		return nil
	}
	targetSide, targetSlot, ok := e.State.ResolveRelativePosition(a.Side, a.Slot, a.MoveTarget)
	if !ok {
		// Step 3 (simplified): no redirect hook catalog entry exists yet,
		// so a vanished target just fails the move rather than bouncing
		// through Follow Me/Magic Bounce.
		e.emit("cant|%s|reason:no-target", monRef(mon))
		return nil
	}

	// Step 2.
	mon.PP[move.ID]--
	mon.LastMoveID = move.ID

	defender := e.State.Sides[targetSide].Slots[targetSlot].Mon

	// Step 4.
	e.emit("move|%s|name:%s|target:%s", monRef(mon), move.Name, monRef(defender))

	// Step 5.
	dc := damagectx.New(e.State, a.Side, a.Slot, targetSide, targetSlot, move)
	result, err := damage.Resolve(ctx, dc, damage.Authoritative, e.Roller, e.Disp)
	if err != nil {
		return rpgerr.Wrap(err, "executor: resolving damage")
	}

	// Step 6.
	for _, hit := range result.Hits {
		if hit.Missed {
			e.emit("miss|%s", monRef(defender))
			continue
		}
		if hit.Critical {
			e.emit("crit|%s", monRef(defender))
		}
		e.applyDamage(defender, targetSide, hit.Damage.Collapse().A.FloorDiv())
	}

	// Step 7.
	if move.Secondary != nil && result.AnyHit() {
		e.applySecondary(mon, defender, *move.Secondary)
	}

	// Step 8: self-switch.
	if move.Flags["selfswitch"] && mon.ActivePosition != nil && len(e.State.Sides[a.Side].Reserve) > 0 {
		q.InsertFront(scheduler.Action{
			Kind: scheduler.KindSwitch, Side: a.Side, Slot: a.Slot,
			SwitchInstant: true, SwitchPreserve: move.Flags["batonpass"],
		})
	}

	// Step 9: forced switch.
	if move.Flags["forceswitch"] && defender != nil && len(e.State.Sides[targetSide].Reserve) > 0 {
		bench, benchOK := e.pickRandomBenchSlot(targetSide)
		if benchOK {
			q.InsertFront(scheduler.Action{
				Kind: scheduler.KindSwitch, Side: targetSide, Slot: targetSlot,
				SwitchPosition: bench, SwitchInstant: true,
			})
		}
	}

	// Step 10: no catalog hook yet for generic post-move ability/item
	// activation beyond ModifyStateAfterHit (already run inside
	// damage.Resolve per hit).

	return nil
}

// applyDamage subtracts dmg from defender's current HP (clamped at zero)
// and emits the split|side:N pair the owning side and everyone else see
// differently (§4.5 step 6, §6's worked example).
func (e *Executor) applyDamage(defender *battle.Mon, defenderSide int, dmg uint64) {
	if defender == nil {
		return
	}
	if dmg > defender.CurrentHP {
		defender.CurrentHP = 0
	} else {
		defender.CurrentHP -= dmg
	}
	defender.ClampHP()

	e.emit("split|side:%d", defenderSide)
	e.emit("damage|%s|%s", monRef(defender), healthField(defender, true))
	e.emit("damage|%s|%s", monRef(defender), healthField(defender, false))
}

// applySecondary gates move.Secondary on one roll and applies whichever of
// status/boost/flinch it carries (§4.5 step 7). Multiple secondary
// effects in declaration order would need dex.MoveData.Secondary to hold
// a slice rather than one pointer; kept singular to match the current
// record shape.
func (e *Executor) applySecondary(user *battle.Mon, target *battle.Mon, sec dex.SecondaryEffect) {
	if !e.rollPercent(sec.Chance) {
		return
	}

	recipient := target
	if sec.BoostTarget == "self" {
		recipient = user
	}
	if recipient == nil {
		return
	}

	if sec.Status != "" && recipient.StatusAilment == battle.StatusNone {
		recipient.SetStatus(battle.Status(sec.Status))
		e.emit("status|%s|status:%s", monRef(recipient), sec.Status)
	}
	for stat, stages := range sec.Boosts {
		applyBoost(recipient, stat, stages)
		e.emit("boost|%s|stat:%s|stages:%d", monRef(recipient), stat, stages)
	}
	if sec.Flinch {
		recipient.VolatileState("condition:flinch")
		e.emit("flinch|%s", monRef(recipient))
	}
}

// rollPercent reports whether a chancePercent-out-of-100 roll succeeds,
// drawing straight from the executor's roller; this lives in the move
// executor rather than package damage because §4.5 step 7 is explicitly a
// post-pipeline gate, not part of the per-hit computation.
func (e *Executor) rollPercent(chancePercent int) bool {
	if chancePercent <= 0 {
		return false
	}
	if chancePercent >= 100 {
		return true
	}
	roll, err := e.Roller.Roll(100)
	return err == nil && roll <= chancePercent
}

// applyBoost resolves stat's name to a stats.Boost and applies stages to
// recipient, silently ignoring an unrecognized name (§4.2's convention of
// ignoring unknown effect keys rather than erroring).
func applyBoost(recipient *battle.Mon, stat string, stages int) {
	b, ok := stats.ParseBoost(stat)
	if !ok {
		return
	}
	recipient.Boosts.Add(b, stages)
}

func (e *Executor) pickRandomBenchSlot(side int) (int, bool) {
	reserve := e.State.Sides[side].Reserve
	var candidates []int
	for i, mon := range reserve {
		if !mon.IsFainted() {
			candidates = append(candidates, i)
		}
	}
	if len(candidates) == 0 {
		return 0, false
	}
	roll, err := e.Roller.Roll(len(candidates))
	if err != nil {
		return candidates[0], true
	}
	return candidates[roll-1], true
}

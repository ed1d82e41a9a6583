// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package executor

import (
	"context"

	"github.com/openbattle/engine/scheduler"
)

// RunQueue drains q one action at a time in sorted order, then runs the
// residual phase, checking for faints and a decided winner after every
// step (§4.5's "after every action the executor checks for fainted Mons
// ... and if any side has no remaining healthy Mons a win/loss is emitted
// and the battle terminates"). It returns as soon as the battle is over,
// leaving any remaining queued actions unexecuted.
func (e *Executor) RunQueue(ctx context.Context, q *scheduler.Queue) error {
	for !q.IsEmpty() {
		a, ok := q.PopFront()
		if !ok {
			break
		}
		if err := e.executeAction(ctx, q, a); err != nil {
			e.State.Fail(err)
			e.flush()
			return err
		}
		e.flush()
		e.checkFaintsAndWin(ctx)
		if e.State.IsOver() {
			return nil
		}
	}

	e.executeResidual(ctx)
	e.flush()
	e.checkFaintsAndWin(ctx)
	if e.State.IsOver() {
		return nil
	}
	e.State.Field.Turn++
	e.emit("turn|turn:%d", e.State.Field.Turn)
	e.flush()
	return nil
}

func (e *Executor) executeAction(ctx context.Context, q *scheduler.Queue, a scheduler.Action) error {
	switch a.Kind {
	case scheduler.KindTeam:
		e.executeTeam(a)
	case scheduler.KindStart:
		e.emit("start")
	case scheduler.KindSwitch:
		e.executeSwitch(a)
	case scheduler.KindBeforeTurn:
		// No catalog hook fires here yet (§4.2's event list has no
		// pre-turn phase); reserved for a future Focus-Punch-style flinch
		// check.
	case scheduler.KindMegaEvo:
		e.executeMegaEvo(a)
	case scheduler.KindMove:
		return e.executeMove(ctx, q, a)
	case scheduler.KindItem:
		e.executeItem(a)
	case scheduler.KindResidual:
		e.executeResidual(ctx)
	}
	return nil
}

// checkFaintsAndWin marks any Mon at zero HP as fainted (already implied
// by CurrentHP == 0; nothing to flip here beyond emitting the log line the
// first time it's noticed) and freezes the battle once a side has no
// healthy Mon left.
func (e *Executor) checkFaintsAndWin(ctx context.Context) {
	for _, side := range e.State.Sides {
		for _, slot := range side.Slots {
			if slot.Mon != nil && slot.Mon.IsFainted() && slot.Mon.ActivePosition != nil {
				e.emit("faint|%s", monRef(slot.Mon))
				slot.Mon.ActivePosition = nil
			}
		}
	}

	if e.State.IsOver() {
		return
	}

	healthy := 0
	lastHealthy := -1
	for i, side := range e.State.Sides {
		if side.HasHealthyMon() {
			healthy++
			lastHealthy = i
		}
	}
	switch {
	case healthy == 1:
		e.State.SetWinner(lastHealthy)
		e.emit("win|side:%d", lastHealthy)
		e.flush()
	case healthy == 0:
		e.State.SetTied()
		e.emit("tie")
		e.flush()
	}
}

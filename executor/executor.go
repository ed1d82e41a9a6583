// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

// Package executor is the move executor and state mutator (component I,
// §4.5): it pops each scheduler.Action off a battle's queue in turn order,
// applies its effect to battle.State, runs the residual phase once the
// queue drains, and emits the wire-format log lines logsplit consumes.
// Grounded on the teacher's own pattern of a thin orchestrator type that
// holds its dependencies as fields and drives them one action at a time
// (mirrors mechanics/conditions' Apply-then-check shape, generalized to a
// whole-turn driver).
package executor

import (
	"fmt"

	"github.com/openbattle/engine/battle"
	"github.com/openbattle/engine/dex"
	"github.com/openbattle/engine/dice"
	"github.com/openbattle/engine/hooks"
	"github.com/openbattle/engine/logsplit"
)

// Executor drives one battle's turn loop.
type Executor struct {
	State *battle.State
	Disp  *hooks.Dispatcher
	Roller dice.Roller
	Moves *dex.Dex[dex.MoveData]
	Logs  *logsplit.SplitLogs

	buf []string
}

// New builds an Executor over an already-constructed battle.State.
func New(state *battle.State, reg *hooks.Registry, roller dice.Roller, moves *dex.Dex[dex.MoveData]) *Executor {
	return &Executor{
		State:  state,
		Disp:   hooks.NewDispatcher(reg),
		Roller: roller,
		Moves:  moves,
		Logs:   logsplit.NewSplitLogs(len(state.Sides)),
	}
}

// emit appends one wire-format line to the in-progress action's buffer.
func (e *Executor) emit(format string, args ...any) {
	e.buf = append(e.buf, fmt.Sprintf(format, args...))
}

// flush hands the buffered lines to the log splitter and resets the
// buffer, called after every action and after the residual phase so each
// flush corresponds to one coherent chunk of the event stream (matching
// §6's worked example: one move's lines, then a bare "residual" line, then
// "turn|turn:N").
func (e *Executor) flush() {
	if len(e.buf) == 0 {
		return
	}
	e.Logs.Append(e.buf)
	e.buf = nil
}

// monRef renders a Mon's display identity for a log line: "mon:" plus its
// species id, the closest stand-in this engine has for the original
// nickname/player string without a nickname field in battle.Mon. The
// active position is not included.
func monRef(mon *battle.Mon) string {
	if mon == nil {
		return "mon:none"
	}
	return "mon:" + mon.SpeciesID
}

// healthField renders a Mon's health for a log line, either the exact
// fraction (the owning side's private view) or a normalized /100 view
// (the public/opposing-side view), matching the §6 example's
// "health:45/139" vs "health:33/100" split.
func healthField(mon *battle.Mon, exact bool) string {
	if exact {
		return fmt.Sprintf("health:%d/%d", mon.CurrentHP, mon.MaxHP)
	}
	if mon.MaxHP == 0 {
		return "health:0/100"
	}
	pct := (mon.CurrentHP*100 + mon.MaxHP - 1) / mon.MaxHP
	return fmt.Sprintf("health:%d/100", pct)
}

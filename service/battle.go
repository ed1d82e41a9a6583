// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/openbattle/engine/battle"
	"github.com/openbattle/engine/dice"
	"github.com/openbattle/engine/executor"
	"github.com/openbattle/engine/hooks"
	"github.com/openbattle/engine/rpgerr"
	"github.com/openbattle/engine/scheduler"
)

// BattleID identifies one battle, following the teacher's uuid-wrapped
// typed-string id pattern (tools/spatial's RoomID) instead of a bare
// string so a battle id can't be confused for a player id at a call site.
type BattleID string

// NewBattleID mints a fresh, random battle id.
func NewBattleID() BattleID { return BattleID(uuid.New().String()) }

// String implements fmt.Stringer.
func (id BattleID) String() string { return string(id) }

// phase tracks where a Battle sits in its lifecycle: team preview, the
// turn loop, or terminal. create() always starts a battle in phasePreview;
// start() advances it to phaseActive.
type phase int

const (
	phasePreview phase = iota
	phaseActive
	phaseTerminal
)

// Battle is one running simulation: its engine state plus the
// facade-level bookkeeping (pending team specs, per-player submitted
// choices, phase) the service's exported methods manipulate. Every
// exported Battle method takes mu itself, matching §5's "each battle is
// protected by its own exclusive lock; the facade acquires it per method
// call" — Service.lookup is the only thing that looks the id up, and
// it releases the registry lock before calling in.
type Battle struct {
	ID     BattleID
	Format battle.FormatConfig

	mu    sync.Mutex
	phase phase

	// Players, in side order (side i belongs to Players[i]).
	Players []string
	seed    int64

	// pendingTeams holds each player's update_team payload until start()
	// builds the real battle.State from it.
	pendingTeams map[string]TeamSpec

	State    *battle.State
	Queue    *scheduler.Queue
	Executor *executor.Executor

	// pendingChoices holds this turn's make_choice submissions, keyed by
	// player, until every active player has one and the queue can drain.
	pendingChoices map[string][]choice
}

// newBattle builds a Battle in team-preview phase. format and players are
// fixed for the battle's lifetime; rosters arrive later via update_team.
func newBattle(format battle.FormatConfig, players []string) *Battle {
	return &Battle{
		ID:             NewBattleID(),
		Format:         format,
		phase:          phasePreview,
		Players:        players,
		pendingTeams:   make(map[string]TeamSpec),
		pendingChoices: make(map[string][]choice),
	}
}

// sideOf returns player's side index, or ok=false if they aren't seated
// in this battle.
func (b *Battle) sideOf(player string) (int, bool) {
	for i, p := range b.Players {
		if p == player {
			return i, true
		}
	}
	return 0, false
}

// updateTeam stores player's roster spec for later validation/start.
// Valid only during team preview: a late update_team against an
// already-started battle is rejected with CodeInvalidState.
func (b *Battle) updateTeam(player string, spec TeamSpec) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.phase != phasePreview {
		return rpgerr.New(rpgerr.CodeInvalidState, "service: team updates are only accepted before start")
	}
	if _, ok := b.sideOf(player); !ok {
		return rpgerr.Newf(rpgerr.CodeNotFound, "service: %s is not seated in this battle", player)
	}
	b.pendingTeams[player] = spec
	return nil
}

// validatePlayer runs dexes against player's currently pending roster and
// the format's configured clause list, returning one problem string per
// violation.
func (b *Battle) validatePlayer(dexes *Dexes, player string) ([]string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	spec, ok := b.pendingTeams[player]
	if !ok {
		return nil, rpgerr.Newf(rpgerr.CodeNotFound, "service: %s has not submitted a team", player)
	}
	mons, err := buildTeam(dexes, spec)
	if err != nil {
		return nil, err
	}
	var problems []string
	for _, clauseID := range b.Format.Clauses {
		fn, ok := LookupClause(clauseID)
		if !ok {
			continue
		}
		problems = append(problems, fn(mons)...)
	}
	return problems, nil
}

// start builds the real battle.State/Queue/Executor out of every player's
// pending team and moves the battle to phaseActive. Every seated player
// must have a pending team on file.
func (b *Battle) start(dexes *Dexes, reg *hooks.Registry, seed int64) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.phase != phasePreview {
		return rpgerr.New(rpgerr.CodeInvalidState, "service: battle has already started")
	}

	sides := make([]*battle.Side, len(b.Players))
	for i, player := range b.Players {
		spec, ok := b.pendingTeams[player]
		if !ok {
			return rpgerr.Newf(rpgerr.CodeInvalidState, "service: %s has not submitted a team", player)
		}
		mons, err := buildTeam(dexes, spec)
		if err != nil {
			return err
		}
		// The lead order is the team order (§4.7's team-preview reordering
		// isn't modeled as its own state yet, see DESIGN.md): the first
		// ActiveCount Mons start active, removed from Reserve the same way
		// executeSwitch removes an incoming Mon once it takes a slot.
		side := battle.NewSide(player, b.Format.ActiveCount, mons)
		leads := b.Format.ActiveCount
		if leads > len(mons) {
			leads = len(mons)
		}
		for slot := 0; slot < leads; slot++ {
			mon := mons[slot]
			slotIndex := slot
			mon.ActivePosition = &slotIndex
			side.Slots[slot].Mon = mon
		}
		side.Reserve = append([]*battle.Mon(nil), mons[leads:]...)
		sides[i] = side
	}

	state := battle.NewState(b.Format, sides)
	state.Seed = seed
	roller := dice.NewSeededRoller(seed)
	b.State = state
	b.Queue = scheduler.NewQueue(roller, b.Format.TieResolution)
	b.Executor = executor.New(state, reg, roller, dexes.Moves)
	b.phase = phaseActive
	return nil
}

// request builds the current Option<Request> for player: none once the
// battle is over, TeamPreview before start, Switch when their active slot
// is empty and a healthy reserve exists, Turn otherwise.
func (b *Battle) request(player string) (*Request, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	side, ok := b.sideOf(player)
	if !ok {
		return nil, rpgerr.Newf(rpgerr.CodeNotFound, "service: %s is not seated in this battle", player)
	}

	if b.phase == phasePreview {
		spec := b.pendingTeams[player]
		return &Request{Kind: RequestTeamPreview, BenchSize: len(spec.Mons)}, nil
	}
	if b.phase == phaseTerminal || b.State.IsOver() {
		return &Request{Kind: RequestNone}, nil
	}

	// A fainted slot's Mon field keeps pointing at the fainted Mon until a
	// Switch action replaces it (executor.executeSwitch's outgoing lookup
	// depends on that); an empty-looking slot is one whose occupant has
	// fainted, not one whose Mon pointer is nil.
	s := b.State.Sides[side]
	for slot, sl := range s.Slots {
		if sl.Mon != nil && !sl.Mon.IsFainted() {
			continue
		}
		var bench []int
		for i, mon := range s.Reserve {
			if !mon.IsFainted() {
				bench = append(bench, i+1)
			}
		}
		if len(bench) == 0 {
			continue
		}
		return &Request{Kind: RequestSwitch, Slot: slot, Bench: bench}, nil
	}

	mon := s.Slots[0].Mon
	if mon == nil || mon.IsFainted() {
		return &Request{Kind: RequestNone}, nil
	}
	moves := make([]MoveOption, 0, len(mon.Moves))
	for i, id := range mon.Moves {
		pp := mon.PP[id]
		moves = append(moves, MoveOption{Index: i + 1, MoveID: id, PP: pp, Disabled: pp <= 0})
	}
	return &Request{Kind: RequestTurn, Moves: moves}, nil
}

// makeChoice parses choiceStr against the current request's grammar,
// stashes it for player, and — once every active player has one on file —
// converts every pending choice to a scheduler.Action, drains the queue,
// and clears pendingChoices for the next turn.
func (b *Battle) makeChoice(ctx context.Context, dexes *Dexes, player, choiceStr string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.phase != phaseActive {
		return rpgerr.New(rpgerr.CodeInvalidState, "service: battle is not in its turn loop")
	}
	if b.State.IsOver() {
		return rpgerr.New(rpgerr.CodeInvalidState, "service: battle has already ended")
	}
	if _, ok := b.sideOf(player); !ok {
		return rpgerr.Newf(rpgerr.CodeNotFound, "service: %s is not seated in this battle", player)
	}

	choices, err := parseChoiceString(choiceStr)
	if err != nil {
		return err
	}
	b.pendingChoices[player] = choices

	for _, p := range b.Players {
		if _, ok := b.pendingChoices[p]; !ok {
			return nil
		}
	}

	for i, p := range b.Players {
		s := b.State.Sides[i]
		cs := b.pendingChoices[p]
		for slot, c := range cs {
			if slot >= len(s.Slots) {
				break
			}
			mon := s.Slots[slot].Mon
			if mon == nil {
				continue
			}
			a, err := c.toAction(i, slot, mon.SpeciesID, mon.Moves)
			if err != nil {
				return err
			}
			b.Queue.Add(a)

			switch a.Kind {
			case scheduler.KindMove:
				move, err := dexes.Moves.GetByID(a.MoveID)
				if err != nil {
					return rpgerr.Wrap(err, "service: resolving queued move")
				}
				if err := b.Queue.Resolve(i, slot, mon, move, 0); err != nil {
					return err
				}
			case scheduler.KindSwitch, scheduler.KindMegaEvo:
				b.Queue.ResolveSpeed(i, slot, mon)
			}
		}
	}

	if err := b.Queue.Sort(); err != nil {
		return err
	}
	if err := b.Executor.RunQueue(ctx, b.Queue); err != nil {
		return err
	}

	b.pendingChoices = make(map[string][]choice)
	if b.State.IsOver() {
		b.phase = phaseTerminal
	}
	return nil
}

// isOver reports whether the battle has reached a terminal state.
func (b *Battle) isOver() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.State != nil && b.State.IsOver()
}

// turn reports the current turn counter, 0 before start.
func (b *Battle) turn() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.State == nil {
		return 0
	}
	return b.State.Field.Turn
}

// outcome reports the winner (-1 undecided) and failure flag under lock.
func (b *Battle) outcome() (winner int, failed bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.State == nil {
		return -1, false
	}
	return b.State.Winner, b.State.Failed
}

// normalizedHP rescales hp/maxHP onto a /100 view, the public health field
// §6's worked example shows for a Mon that isn't the requesting player's
// own (e.g. "health:33/100" instead of the exact "health:45/139").
func normalizedHP(hp, maxHP uint64) (uint64, uint64) {
	if maxHP == 0 {
		return 0, 100
	}
	return (hp*100 + maxHP - 1) / maxHP, 100
}

func monSnapshot(mon *battle.Mon, exact bool) MonSnapshot {
	hp, maxHP := mon.CurrentHP, mon.MaxHP
	if !exact {
		hp, maxHP = normalizedHP(hp, maxHP)
	}
	return MonSnapshot{
		Species: mon.SpeciesID,
		Level:   mon.Level,
		HP:      hp,
		MaxHP:   maxHP,
		Status:  string(mon.StatusAilment),
		Fainted: mon.IsFainted(),
	}
}

// playerData builds player's PlayerBattleData snapshot: exact HP for
// their own side, normalized HP for every other side.
func (b *Battle) playerData(player string) (PlayerBattleData, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	side, ok := b.sideOf(player)
	if !ok {
		return PlayerBattleData{}, rpgerr.Newf(rpgerr.CodeNotFound, "service: %s is not seated in this battle", player)
	}
	if b.State == nil {
		return PlayerBattleData{BattleID: string(b.ID), Winner: -1}, nil
	}

	data := PlayerBattleData{
		BattleID: string(b.ID),
		Turn:     b.State.Field.Turn,
		Winner:   b.State.Winner,
		Tied:     b.State.Tied,
		Weather:  b.State.Field.Weather,
		Terrain:  b.State.Field.Terrain,
		Sides:    make([]SideSnapshot, len(b.State.Sides)),
	}
	for i, s := range b.State.Sides {
		snap := SideSnapshot{Player: s.Player, Bench: len(s.Reserve)}
		for _, slot := range s.Slots {
			if slot.Mon == nil {
				continue
			}
			snap.Active = append(snap.Active, monSnapshot(slot.Mon, i == side))
		}
		data.Sides[i] = snap
	}
	return data, nil
}

// preview builds this battle's BattlePreview listing entry.
func (b *Battle) preview() BattlePreview {
	b.mu.Lock()
	defer b.mu.Unlock()
	turn := 0
	over := b.phase == phaseTerminal
	if b.State != nil {
		turn = b.State.Field.Turn
		over = over || b.State.IsOver()
	}
	return BattlePreview{
		BattleID: string(b.ID),
		Players:  append([]string(nil), b.Players...),
		Turn:     turn,
		Over:     over,
	}
}

// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

// Package service is the facade component (§4.7, component K): it owns
// every running Battle, exposes the 13 create/update-team/.../delete
// operations a client or RPC layer drives a simulation through, and fans
// out each battle's split logs to subscribers. Grounded on the teacher's
// top-level orchestrator pattern (a registry type guarding a map of
// session state behind its own mutex, with per-session locks held only
// for the duration of one method call) generalized from a single-session
// game engine to the "many battles run concurrently" facade §5 describes.
package service

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/openbattle/engine/battle"
	"github.com/openbattle/engine/dex"
	"github.com/openbattle/engine/events"
	"github.com/openbattle/engine/hooks"
	"github.com/openbattle/engine/logsplit"
	"github.com/openbattle/engine/rpgerr"
)

// CreateOptions is create's options_json: the format to play and the
// seated players in side order.
type CreateOptions struct {
	FormatID      string
	Players       []string
	TieResolution battle.TieResolution
	Seed          int64
}

// PlayerBattleData is player_data's opaque snapshot: everything the
// requesting player is entitled to see, exact HP for their own side and
// the normalized /100 view for every other side (§6's private/public
// health split).
type PlayerBattleData struct {
	BattleID string       `json:"battle_id"`
	Turn     int          `json:"turn"`
	Winner   int          `json:"winner"` // -1 undecided
	Tied     bool         `json:"tied"`
	Weather  string       `json:"weather,omitempty"`
	Terrain  string       `json:"terrain,omitempty"`
	Sides    []SideSnapshot `json:"sides"`
}

// SideSnapshot is one side's worth of PlayerBattleData.
type SideSnapshot struct {
	Player string      `json:"player"`
	Active []MonSnapshot `json:"active"`
	Bench  int          `json:"bench_remaining"`
}

// MonSnapshot is one Mon's worth of PlayerBattleData, HP already resolved
// to the exact-or-normalized form the requesting player is owed.
type MonSnapshot struct {
	Species   string `json:"species"`
	Level     int    `json:"level"`
	HP        uint64 `json:"hp"`
	MaxHP     uint64 `json:"max_hp"`
	Status    string `json:"status,omitempty"`
	Fainted   bool   `json:"fainted"`
}

// BattlePreview is one entry of battles/battles_for_player's listing: a
// read snapshot taken without touching the battle's own state lock beyond
// a single glance, per §5's "cross-battle operations take only read
// snapshots of per-battle metadata".
type BattlePreview struct {
	BattleID string   `json:"battle_id"`
	Players  []string `json:"players"`
	Turn     int      `json:"turn"`
	Over     bool     `json:"over"`
}

// Service owns every running battle plus the shared, read-only data dex
// and hook registry every battle is built against.
type Service struct {
	dexes    *Dexes
	registry *hooks.Registry
	bus      *events.Bus
	formats  *dex.Dex[dex.FormatData]

	mu       sync.RWMutex
	battles  map[BattleID]*Battle
	order    []BattleID
}

// New builds a Service sharing dexes and registry across every battle it
// creates. bus receives the lifecycle events (BattleCreated/Started/
// TurnAdvanced/Ended) a process-local listener can subscribe to.
func New(dexes *Dexes, registry *hooks.Registry, bus *events.Bus) *Service {
	return &Service{
		dexes:    dexes,
		registry: registry,
		bus:      bus,
		formats:  dexes.Formats,
		battles:  make(map[BattleID]*Battle),
	}
}

func (s *Service) publish(ctx context.Context, e events.Event) {
	if s.bus == nil {
		return
	}
	_ = s.bus.PublishWithContext(ctx, e)
}

// lookup finds a battle by id under the registry's read lock.
func (s *Service) lookup(id BattleID) (*Battle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.battles[id]
	if !ok {
		return nil, rpgerr.Newf(rpgerr.CodeNotFound, "service: no battle with id %s", id)
	}
	return b, nil
}

// Create registers a new battle in team-preview phase and returns its id.
func (s *Service) Create(ctx context.Context, opts CreateOptions) (BattleID, error) {
	format, err := s.formats.GetByID(opts.FormatID)
	if err != nil {
		return "", rpgerr.Wrap(err, "service: resolving format")
	}
	if len(opts.Players) < 2 {
		return "", rpgerr.New(rpgerr.CodeInvalidArgument, "service: a battle needs at least two players")
	}

	cfg := battle.FormatConfig{
		ID:            format.ID,
		ActiveCount:   format.ActiveCount,
		AdjacentReach: format.AdjacentReach,
		TieResolution: opts.TieResolution,
		Clauses:       format.Clauses,
	}
	b := newBattle(cfg, opts.Players)
	b.seed = opts.Seed

	s.mu.Lock()
	s.battles[b.ID] = b
	s.order = append(s.order, b.ID)
	s.mu.Unlock()

	s.publish(ctx, NewBattleCreatedEvent(string(b.ID)))
	return b.ID, nil
}

// UpdateTeam stores player's roster for battleID, pending validation and
// start.
func (s *Service) UpdateTeam(battleID BattleID, player string, spec TeamSpec) error {
	b, err := s.lookup(battleID)
	if err != nil {
		return err
	}
	return b.updateTeam(player, spec)
}

// ValidatePlayer runs player's currently pending roster against the
// battle's format clauses.
func (s *Service) ValidatePlayer(battleID BattleID, player string) ([]string, error) {
	b, err := s.lookup(battleID)
	if err != nil {
		return nil, err
	}
	return b.validatePlayer(s.dexes, player)
}

// Start builds the live battle.State from every pending team and moves
// the battle into its turn loop.
func (s *Service) Start(ctx context.Context, battleID BattleID) error {
	b, err := s.lookup(battleID)
	if err != nil {
		return err
	}
	if err := b.start(s.dexes, s.registry, b.seed); err != nil {
		return err
	}
	s.publish(ctx, NewBattleStartedEvent(string(battleID)))
	return nil
}

// PlayerData returns player's current snapshot of battleID.
func (s *Service) PlayerData(battleID BattleID, player string) (PlayerBattleData, error) {
	b, err := s.lookup(battleID)
	if err != nil {
		return PlayerBattleData{}, err
	}
	return b.playerData(player)
}

// Request returns player's current Option<Request> for battleID.
func (s *Service) Request(battleID BattleID, player string) (*Request, error) {
	b, err := s.lookup(battleID)
	if err != nil {
		return nil, err
	}
	return b.request(player)
}

// MakeChoice submits player's choice string for battleID, advancing the
// turn once every active player's choice is on file.
func (s *Service) MakeChoice(ctx context.Context, battleID BattleID, player, choiceStr string) error {
	b, err := s.lookup(battleID)
	if err != nil {
		return err
	}
	turnBefore := b.turn()
	if err := b.makeChoice(ctx, s.dexes, player, choiceStr); err != nil {
		return err
	}
	if turnAfter := b.turn(); turnAfter != turnBefore {
		s.publish(ctx, NewTurnAdvancedEvent(string(battleID), turnAfter))
	}
	if b.isOver() {
		winner, failed := b.outcome()
		s.publish(ctx, NewBattleEndedEvent(string(battleID), winner, failed))
	}
	return nil
}

// FullLog returns every entry of battleID's log: the public log if side is
// nil, or that side's private log otherwise.
func (s *Service) FullLog(battleID BattleID, side *int) ([]string, error) {
	log, err := s.resolveLog(battleID, side)
	if err != nil {
		return nil, err
	}
	return log.Entries(), nil
}

// LastLogEntry returns battleID's most recent log line, or ok=false if
// nothing has been logged yet.
func (s *Service) LastLogEntry(battleID BattleID, side *int) (logsplit.Entry, bool, error) {
	log, err := s.resolveLog(battleID, side)
	if err != nil {
		return logsplit.Entry{}, false, err
	}
	entry, ok := log.Last()
	return entry, ok, nil
}

// Subscribe opens a live stream of battleID's log entries from this point
// on (no replay, §5). Callers must call the returned cancel func once
// done to release the subscription.
func (s *Service) Subscribe(battleID BattleID, side *int) (<-chan logsplit.Entry, func(), error) {
	log, err := s.resolveLog(battleID, side)
	if err != nil {
		return nil, nil, err
	}
	id, ch := log.Subscribe()
	return ch, func() { log.Unsubscribe(id) }, nil
}

func (s *Service) resolveLog(battleID BattleID, side *int) (*logsplit.Log, error) {
	b, err := s.lookup(battleID)
	if err != nil {
		return nil, err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.Executor == nil {
		return nil, rpgerr.New(rpgerr.CodeInvalidState, "service: battle has not started")
	}
	if side == nil {
		return b.Executor.Logs.PublicLog(), nil
	}
	log, ok := b.Executor.Logs.SideLog(*side)
	if !ok {
		return nil, rpgerr.New(rpgerr.CodeOutOfRange, "service: no such side")
	}
	return log, nil
}

// Delete removes battleID from the registry; any live subscriber channel
// is left to drain and the subscriber discovers the battle is gone on its
// next resolveLog/lookup call rather than the facade force-closing it.
func (s *Service) Delete(battleID BattleID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.battles[battleID]; !ok {
		return rpgerr.Newf(rpgerr.CodeNotFound, "service: no battle with id %s", battleID)
	}
	delete(s.battles, battleID)
	for i, id := range s.order {
		if id == battleID {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// Battles lists up to count battle previews starting at offset, most
// recently created first. Snapshots are gathered concurrently via
// errgroup, since each one only needs a single battle's own lock rather
// than the registry lock the listing itself already released.
func (s *Service) Battles(ctx context.Context, count, offset int) ([]BattlePreview, error) {
	return s.battlesMatching(ctx, count, offset, func(*Battle) bool { return true })
}

// BattlesForPlayer lists previews of battles player is seated in.
func (s *Service) BattlesForPlayer(ctx context.Context, player string, count, offset int) ([]BattlePreview, error) {
	return s.battlesMatching(ctx, count, offset, func(b *Battle) bool {
		_, ok := b.sideOf(player)
		return ok
	})
}

func (s *Service) battlesMatching(ctx context.Context, count, offset int, match func(*Battle) bool) ([]BattlePreview, error) {
	s.mu.RLock()
	ids := make([]BattleID, 0, len(s.order))
	for i := len(s.order) - 1; i >= 0; i-- {
		if b := s.battles[s.order[i]]; match(b) {
			ids = append(ids, s.order[i])
		}
	}
	battles := make([]*Battle, len(ids))
	for i, id := range ids {
		battles[i] = s.battles[id]
	}
	s.mu.RUnlock()

	if offset < len(ids) {
		end := offset + count
		if end > len(ids) || count <= 0 {
			end = len(ids)
		}
		ids = ids[offset:end]
		battles = battles[offset:end]
	} else {
		ids = nil
		battles = nil
	}

	previews := make([]BattlePreview, len(ids))
	g, _ := errgroup.WithContext(ctx)
	for i := range ids {
		i := i
		g.Go(func() error {
			previews[i] = battles[i].preview()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return previews, nil
}

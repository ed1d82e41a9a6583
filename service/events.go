// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"github.com/openbattle/engine/core"
	"github.com/openbattle/engine/events"
)

// Lifecycle event refs. events.Bus matches handlers to subscribers by ref
// pointer identity (see events.Bus.PublishWithContext), so each ref is a
// package-level singleton rather than built fresh per publish.
var (
	battleCreatedRef = core.MustNewRef(core.RefInput{Module: "service", Type: "lifecycle", Value: "battle_created"})
	battleStartedRef = core.MustNewRef(core.RefInput{Module: "service", Type: "lifecycle", Value: "battle_started"})
	turnAdvancedRef  = core.MustNewRef(core.RefInput{Module: "service", Type: "lifecycle", Value: "turn_advanced"})
	battleEndedRef   = core.MustNewRef(core.RefInput{Module: "service", Type: "lifecycle", Value: "battle_ended"})
)

// BattleCreatedEvent fires once create() registers a new battle, letting a
// process-local listener (a metrics collector, an admin dashboard feed)
// observe battle creation without polling battles().
type BattleCreatedEvent struct {
	*events.BaseEvent
	BattleID string
}

// NewBattleCreatedEvent builds a BattleCreatedEvent for id.
func NewBattleCreatedEvent(id string) *BattleCreatedEvent {
	return &BattleCreatedEvent{BaseEvent: events.NewBaseEvent(battleCreatedRef), BattleID: id}
}

// BattleStartedEvent fires once start() moves a battle out of team
// preview.
type BattleStartedEvent struct {
	*events.BaseEvent
	BattleID string
}

// NewBattleStartedEvent builds a BattleStartedEvent for id.
func NewBattleStartedEvent(id string) *BattleStartedEvent {
	return &BattleStartedEvent{BaseEvent: events.NewBaseEvent(battleStartedRef), BattleID: id}
}

// TurnAdvancedEvent fires once every active player's choice has been
// collected and the executor has drained the resulting queue.
type TurnAdvancedEvent struct {
	*events.BaseEvent
	BattleID string
	Turn     int
}

// NewTurnAdvancedEvent builds a TurnAdvancedEvent for id at the given turn.
func NewTurnAdvancedEvent(id string, turn int) *TurnAdvancedEvent {
	return &TurnAdvancedEvent{BaseEvent: events.NewBaseEvent(turnAdvancedRef), BattleID: id, Turn: turn}
}

// BattleEndedEvent fires once State.IsOver() becomes true, whether by a
// decided winner, a tie, or a failed battle.
type BattleEndedEvent struct {
	*events.BaseEvent
	BattleID string
	Winner   int
	Failed   bool
}

// NewBattleEndedEvent builds a BattleEndedEvent for id.
func NewBattleEndedEvent(id string, winner int, failed bool) *BattleEndedEvent {
	return &BattleEndedEvent{BaseEvent: events.NewBaseEvent(battleEndedRef), BattleID: id, Winner: winner, Failed: failed}
}

// Subscribe functions, typed so callers don't need to know the refs above
// or do their own type assertion inside the handler.

// OnBattleCreated registers handler for every BattleCreatedEvent published
// on bus.
func OnBattleCreated(bus events.EventBus, handler func(*BattleCreatedEvent) error) (string, error) {
	return bus.Subscribe(battleCreatedRef, func(e *BattleCreatedEvent) error { return handler(e) })
}

// OnBattleStarted registers handler for every BattleStartedEvent published
// on bus.
func OnBattleStarted(bus events.EventBus, handler func(*BattleStartedEvent) error) (string, error) {
	return bus.Subscribe(battleStartedRef, func(e *BattleStartedEvent) error { return handler(e) })
}

// OnTurnAdvanced registers handler for every TurnAdvancedEvent published
// on bus.
func OnTurnAdvanced(bus events.EventBus, handler func(*TurnAdvancedEvent) error) (string, error) {
	return bus.Subscribe(turnAdvancedRef, func(e *TurnAdvancedEvent) error { return handler(e) })
}

// OnBattleEnded registers handler for every BattleEndedEvent published on
// bus.
func OnBattleEnded(bus events.EventBus, handler func(*BattleEndedEvent) error) (string, error) {
	return bus.Subscribe(battleEndedRef, func(e *BattleEndedEvent) error { return handler(e) })
}

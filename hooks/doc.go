// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

// Package hooks is the engine's extension point (component F): a registry
// of callbacks keyed by (effect, event) and an ordered dispatcher that
// invokes them against a damagectx.Context. Every ability, item,
// condition, status, weather, terrain, and in-flight move expresses its
// behavior as a *Hooks value registered here; registering a new effect is
// adding one registry entry, never a new type in a class hierarchy.
//
// The dispatcher is purpose-built rather than routed through events.Bus:
// the phase ordering in §4.2 (field, then sides, then each Mon's passive
// sources in a fixed sub-order, then the move itself) is a property of
// this domain, not something a generic pub/sub bus expresses. Package
// hooks does not import package events at all: effects are registered in
// and looked up from the Registry directly.
package hooks

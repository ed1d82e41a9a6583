// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package hooks

import "github.com/openbattle/engine/battle"

// monKey is the synthetic registration key that always runs for every Mon
// regardless of identity (§4.2's "mon" entry). Per the open question
// resolved in SPEC_FULL/DESIGN.md, the "mon" default always dispatches
// last within its Mon's passive-source sub-order.
const monKey = "mon"

// Registry maps a registration tag ("<kind>:<name>", or the synthetic
// "mon") to the Hooks an effect registered under it. It is built once at
// engine initialization and is read-only afterward, shared across every
// battle the same way the data dex is.
type Registry struct {
	entries map[string]*Hooks
	// insertOrder records the order effects were registered. The
	// dispatcher does not read it: dispatch order comes from battle state.
	insertOrder []string
}

// NewRegistry builds an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]*Hooks)}
}

// Register adds hooks under handle's tag. Re-registering the same tag
// replaces the previous entry, matching "registering a new effect is
// adding one entry" — there's no append-only constraint.
func (r *Registry) Register(handle battle.EffectHandle, hooks *Hooks) {
	tag := handle.Tag()
	if _, exists := r.entries[tag]; !exists {
		r.insertOrder = append(r.insertOrder, tag)
	}
	r.entries[tag] = hooks
}

// RegisterMonDefault registers the synthetic "mon" hooks that run for
// every Mon regardless of identity.
func (r *Registry) RegisterMonDefault(hooks *Hooks) {
	r.entries[monKey] = hooks
	r.insertOrder = append(r.insertOrder, monKey)
}

// Lookup returns the hooks registered under handle's tag, or nil (with ok
// false) if nothing is registered — per §4.2, unknown effect keys are
// ignored silently rather than erroring, since a future data file may not
// exist yet.
func (r *Registry) Lookup(handle battle.EffectHandle) (*Hooks, bool) {
	h, ok := r.entries[handle.Tag()]
	return h, ok
}

// lookupByTag is the raw-string form of Lookup. Dispatcher does not call
// it; it looks effects up through Lookup and monDefault.
func (r *Registry) lookupByTag(tag string) (*Hooks, bool) {
	h, ok := r.entries[tag]
	return h, ok
}

// monDefault returns the synthetic "mon" hooks, if any were registered.
func (r *Registry) monDefault() (*Hooks, bool) {
	h, ok := r.entries[monKey]
	return h, ok
}

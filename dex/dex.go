// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package dex

import (
	"fmt"
	"strings"
	"sync"
	"unicode"

	"github.com/openbattle/engine/rpgerr"
)

// Record is the minimum any dex entry must provide: the canonical id it was
// ultimately loaded under, matching the "each canonical id is loaded at
// most once per dex" invariant.
type Record interface {
	CanonicalID() string
}

// Loader resolves a canonical id to its definition record, or reports
// rpgerr.CodeNotFound when the data store has no matching row. Loaders are
// per-type: one for species, one for moves, and so on.
type Loader[T Record] interface {
	Load(canonicalID string) (T, error)
}

// AliasTable maps an alias to the canonical id it should resolve to.
// Resolution is bounded: looking an alias up in the table again after the
// first miss terminates the chain rather than looping.
type AliasTable map[string]string

// Dex caches immutable definition records of type T behind normalized,
// alias-resolved canonical ids. A zero maxAliasHops never happens: Dex
// always bounds alias-chain walks to avoid an infinite loop from a cyclic
// data file.
type Dex[T Record] struct {
	mu      sync.RWMutex
	cache   map[string]T
	aliases AliasTable
	loader  Loader[T]

	maxAliasHops int
}

const defaultMaxAliasHops = 16

// New creates a Dex backed by loader, with an optional alias table (nil is
// fine — it behaves as an empty table).
func New[T Record](loader Loader[T], aliases AliasTable) *Dex[T] {
	if aliases == nil {
		aliases = AliasTable{}
	}
	return &Dex[T]{
		cache:        make(map[string]T),
		aliases:      aliases,
		loader:       loader,
		maxAliasHops: defaultMaxAliasHops,
	}
}

// Normalize lowercases a name and strips everything but letters and
// digits, collapsing to a single canonical spelling
// ("Thunder Punch", "thunderpunch", "THUNDER-PUNCH" all normalize alike).
func Normalize(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		default:
			// punctuation and whitespace are stripped, not substituted,
			// so "Mr. Mime" and "Mr Mime" normalize to the same id.
		}
	}
	return b.String()
}

// resolveAlias walks the alias chain starting from id, bounded by
// maxAliasHops, and returns the terminal canonical id. Per §4.1, if a
// lookup of an alias itself returns NotFound the canonical id becomes the
// alias itself, which is exactly what happens here: the loop stops as soon
// as the alias table has no further entry for the current id.
func (d *Dex[T]) resolveAlias(id string) (string, error) {
	seen := make(map[string]bool, d.maxAliasHops)
	current := id
	for hops := 0; hops < d.maxAliasHops; hops++ {
		next, ok := d.aliases[current]
		if !ok {
			return current, nil
		}
		if seen[next] {
			return "", rpgerr.New(rpgerr.CodeInternal,
				fmt.Sprintf("dex: cycle in alias chain starting at %q", id))
		}
		seen[current] = true
		current = next
	}
	return "", rpgerr.New(rpgerr.CodeInternal,
		fmt.Sprintf("dex: alias chain from %q exceeded %d hops", id, d.maxAliasHops))
}

// Get normalizes name, resolves its alias chain, and returns the cached
// record, loading it through Loader on first lookup.
func (d *Dex[T]) Get(name string) (T, error) {
	canonical, err := d.resolveAlias(Normalize(name))
	if err != nil {
		var zero T
		return zero, err
	}
	return d.GetByID(canonical)
}

// GetByID skips normalization and alias resolution entirely, looking up (or
// loading) the record under exactly the canonical id given.
func (d *Dex[T]) GetByID(canonicalID string) (T, error) {
	d.mu.RLock()
	if rec, ok := d.cache[canonicalID]; ok {
		d.mu.RUnlock()
		return rec, nil
	}
	d.mu.RUnlock()

	d.mu.Lock()
	defer d.mu.Unlock()

	// Another goroutine may have loaded it while we waited for the lock.
	if rec, ok := d.cache[canonicalID]; ok {
		return rec, nil
	}

	rec, err := d.loader.Load(canonicalID)
	if err != nil {
		var zero T
		return zero, rpgerr.Wrap(err, fmt.Sprintf("dex: loading %q", canonicalID),
			rpgerr.WithMeta("canonical_id", canonicalID))
	}
	d.cache[canonicalID] = rec
	return rec, nil
}

// Len reports how many canonical ids are currently cached, mostly useful
// for tests asserting lazy-loading behavior.
func (d *Dex[T]) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.cache)
}

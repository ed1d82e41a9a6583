// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package dex

import (
	"fmt"

	"github.com/openbattle/engine/rpgerr"
)

// MemoryLoader serves records from an in-memory map, used by tests and by
// the curated hook example set (SPEC_FULL's "not an exhaustive dex") that
// ships fixtures as Go literals rather than YAML files.
type MemoryLoader[T Record] struct {
	records map[string]T
}

// NewMemoryLoader builds a MemoryLoader seeded with the given records,
// keyed by their own CanonicalID.
func NewMemoryLoader[T Record](records ...T) *MemoryLoader[T] {
	m := &MemoryLoader[T]{records: make(map[string]T, len(records))}
	for _, r := range records {
		m.records[r.CanonicalID()] = r
	}
	return m
}

// Load implements Loader.
func (l *MemoryLoader[T]) Load(canonicalID string) (T, error) {
	rec, ok := l.records[canonicalID]
	if !ok {
		return rec, rpgerr.New(rpgerr.CodeNotFound,
			fmt.Sprintf("dex: no in-memory record for %q", canonicalID))
	}
	return rec, nil
}

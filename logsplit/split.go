// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package logsplit

import (
	"strconv"
	"strings"
)

// SplitLogs holds one battle's public log plus one log per side, and
// implements the split-marker consuming algorithm the executor's raw
// event stream depends on (§4.6), ported from the teacher pack's
// battler-service SplitLogs::append.
type SplitLogs struct {
	public  *Log
	perSide []*Log
}

// NewSplitLogs builds split logs for a battle with the given number of
// sides.
func NewSplitLogs(sides int) *SplitLogs {
	perSide := make([]*Log, sides)
	for i := range perSide {
		perSide[i] = NewLog()
	}
	return &SplitLogs{public: NewLog(), perSide: perSide}
}

// splitSide extracts the side index from a "split|side:N" marker entry,
// or ok=false if entry isn't a split marker at all.
func splitSide(entry string) (int, bool) {
	parts := strings.Split(entry, "|")
	if len(parts) == 0 || parts[0] != "split" {
		return 0, false
	}
	for _, kv := range parts[1:] {
		k, v, ok := strings.Cut(kv, ":")
		if ok && k == "side" {
			if n, err := strconv.Atoi(v); err == nil {
				return n, true
			}
		}
	}
	return 0, false
}

// Append consumes raw in order, splitting `split|side:N`-led triples
// between side N's private log and everyone else's public view: a marker
// consumes the next two raw entries — the first (private) goes only to
// side N's log, the second (public) goes to the public log and every
// other side's log. A marker with fewer than two follow-up entries is
// tolerated silently (§4.6), matching the Rust Iterator::next-based
// original rather than erroring on a short queue.
func (s *SplitLogs) Append(raw []string) {
	var publicEntries []string
	perSideEntries := make([][]string, len(s.perSide))

	for i := 0; i < len(raw); i++ {
		entry := raw[i]
		side, isSplit := splitSide(entry)
		if !isSplit {
			publicEntries = append(publicEntries, entry)
			for j := range perSideEntries {
				perSideEntries[j] = append(perSideEntries[j], entry)
			}
			continue
		}

		var private, public string
		var havePrivate, havePublic bool
		if i+1 < len(raw) {
			private, havePrivate = raw[i+1], true
		}
		if i+2 < len(raw) {
			public, havePublic = raw[i+2], true
		}
		i += 2

		if havePublic {
			publicEntries = append(publicEntries, public)
		}
		for j := range perSideEntries {
			switch {
			case j == side && havePrivate:
				perSideEntries[j] = append(perSideEntries[j], private)
			case j != side && havePublic:
				perSideEntries[j] = append(perSideEntries[j], public)
			}
		}
	}

	s.public.append(publicEntries)
	for i, entries := range perSideEntries {
		s.perSide[i].append(entries)
	}
}

// PublicLog returns the log visible to spectators and both sides' public
// views.
func (s *SplitLogs) PublicLog() *Log { return s.public }

// SideLog returns side's private log, or ok=false if side is out of
// range.
func (s *SplitLogs) SideLog(side int) (*Log, bool) {
	if side < 0 || side >= len(s.perSide) {
		return nil, false
	}
	return s.perSide[side], true
}

// Sweep calls onQuiet for the public log and every side log that
// currently has zero subscribers, letting a caller cancel whatever
// upstream work was feeding a now-unwatched topic (§4.6's "a sweep
// detects zero-receiver topics and cancels upstream").
func (s *SplitLogs) Sweep(onQuiet func(side int, isPublic bool)) {
	if s.public.SubscriberCount() == 0 {
		onQuiet(-1, true)
	}
	for i, log := range s.perSide {
		if log.SubscriberCount() == 0 {
			onQuiet(i, false)
		}
	}
}

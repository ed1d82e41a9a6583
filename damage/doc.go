// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

// Package damage is the damage simulation pipeline (component G): given an
// attacker, a defender, and a move, it produces a MultiHit result by
// running the fixed ten-stage resolution every move goes through, in
// either authoritative mode (draws from a dice.Roller, collapses to a
// single concrete outcome) or analysis mode (preserves the full
// Range/Distribution so a caller can reason about best/worst/expected
// damage without touching the PRNG).
//
// Stages 2 through 4 — the pure context-mutation stages every hook in
// package hooks patches — run as a pipeline.SequentialPipeline, reusing
// the same synchronous-stage abstraction the rest of this codebase uses
// for mechanics that never suspend. The remaining stages (hit-count
// resolution, the per-hit numeric computation, and combining hits into a
// MultiHit) branch and loop in ways that don't fit a single linear stage
// chain, so Resolve drives them directly instead of forcing them through
// pipeline.Stage's Process(ctx, any) shape.
package damage

// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

// Package dex provides an ID-normalized, alias-resolved lookup of static
// definition records (species, moves, items, abilities, natures, clauses,
// formats) with lazy, per-canonical-id caching. A Dex is read-only after
// its Loader is wired in and is shared across every battle the service
// facade runs.
package dex

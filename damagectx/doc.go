// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

// Package damagectx defines DamageContext, the scratch copy of battle
// state the damage pipeline builds once per move resolution and every
// hook in the catalog reads or mutates. It is deliberately a leaf package
// with no dependency on the hook dispatcher itself, so both package hooks
// (which defines hook signatures over *Context) and package damage (which
// builds and finally commits one) can depend on it without a cycle.
package damagectx

// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

// Package typechart provides the 18-type (plus Stellar) effectiveness
// chart and the move-target calculus: which relative positions a given
// MoveTarget mode can legally affect given the format's adjacency reach.
package typechart

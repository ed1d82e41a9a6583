// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import "github.com/openbattle/engine/dex"

// Dexes bundles every data-dex the facade's format/team/request plumbing
// needs to resolve ids out of a team_data_json payload or a format
// definition. A Service is handed one Dexes at construction and shares it
// read-only across every Battle it creates, matching the teacher's pattern
// of a single shared, load-once data layer (rulebooks/dnd5e's compendium)
// handed to every session built on top of it.
type Dexes struct {
	Species   *dex.Dex[dex.SpeciesData]
	Moves     *dex.Dex[dex.MoveData]
	Abilities *dex.Dex[dex.AbilityData]
	Items     *dex.Dex[dex.ItemData]
	Natures   *dex.Dex[dex.NatureData]
	Formats   *dex.Dex[dex.FormatData]
	Clauses   *dex.Dex[dex.ClauseData]
}

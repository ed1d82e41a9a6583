// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"github.com/openbattle/engine/battle"
	"github.com/openbattle/engine/dex"
	"github.com/openbattle/engine/rational"
	"github.com/openbattle/engine/rpgerr"
	"github.com/openbattle/engine/stats"
	"github.com/openbattle/engine/typechart"
)

// TeamMonSpec is one roster slot of update_team's team_data_json, the wire
// shape a client submits before team validation/start (§4.7, §6).
type TeamMonSpec struct {
	Nickname  string                  `json:"nickname,omitempty"`
	Species   string                  `json:"species"`
	Level     int                     `json:"level"`
	AbilityID string                  `json:"ability"`
	ItemID    string                  `json:"item,omitempty"`
	Nature    string                  `json:"nature,omitempty"`
	Moves     []string                `json:"moves"`
	IVs       map[stats.Stat]uint16   `json:"ivs,omitempty"`
	EVs       map[stats.Stat]uint16   `json:"evs,omitempty"`
	TeraType  string                  `json:"tera_type,omitempty"`
}

// TeamSpec is one player's full roster, the payload update_team stores
// pending validation.
type TeamSpec struct {
	Mons []TeamMonSpec `json:"mons"`
}

// ivevFor reads a per-stat IV/EV pair out of spec, defaulting to 31 IVs
// (the competitive-standard "perfect IV" assumption this engine has no
// breeding mechanic to justify varying) and 0 EVs.
func ivevFor(spec TeamMonSpec, s stats.Stat) stats.IVEV {
	iv, ok := spec.IVs[s]
	if !ok {
		iv = 31
	}
	ev := spec.EVs[s]
	return stats.IVEV{IV: iv, EV: ev}
}

// buildMon resolves spec against the data dex and produces a battle.Mon
// with its StoredStats computed from base stats/IVs/EVs/level/nature
// (§9's stat formula, component C). A nature-bearing team always collapses
// every non-HP stat to a Point Range since both bounds are known; PP is
// seeded from each move's dex-defined PP.
func buildMon(dexes *Dexes, spec TeamMonSpec) (*battle.Mon, error) {
	species, err := dexes.Species.GetByID(spec.Species)
	if err != nil {
		return nil, rpgerr.Wrap(err, "service: resolving species")
	}

	mod := stats.NatureNeutral
	var natureData dex.NatureData
	if spec.Nature != "" {
		natureData, err = dexes.Natures.GetByID(spec.Nature)
		if err != nil {
			return nil, rpgerr.Wrap(err, "service: resolving nature")
		}
	}

	storedStats := make(map[stats.Stat]rational.Range, 6)
	for _, s := range []stats.Stat{stats.HP, stats.Atk, stats.Def, stats.SpAtk, stats.SpDef, stats.Spe} {
		ivev := ivevFor(spec, s)
		base := species.Base.Get(s)
		if spec.Nature == "" {
			storedStats[s] = stats.CalculateRange(s, base, ivev, spec.Level)
			continue
		}
		m := mod
		if !natureData.Neutral {
			switch s {
			case natureData.Boosted:
				m = stats.NatureBoost
			case natureData.Dropped:
				m = stats.NatureDrop
			}
		}
		v := stats.Calculate(s, base, ivev, spec.Level, m)
		storedStats[s] = rational.Point(rational.Whole(v))
	}

	types := make([]typechart.Type, 0, len(species.Types))
	for _, t := range species.Types {
		types = append(types, typechart.Type(t))
	}

	maxHP := storedStats[stats.HP].Avg().FloorDiv()
	mon := battle.NewMon(species.ID, spec.Level, maxHP, storedStats, types)
	mon.AbilityID = spec.AbilityID
	mon.ItemID = spec.ItemID
	if spec.TeraType != "" {
		mon.TeraType = typechart.Type(spec.TeraType)
	}

	for _, moveID := range spec.Moves {
		move, err := dexes.Moves.GetByID(moveID)
		if err != nil {
			return nil, rpgerr.Wrap(err, "service: resolving move")
		}
		mon.PP[move.ID] = move.PP
		mon.Moves = append(mon.Moves, move.ID)
	}

	return mon, nil
}

// buildTeam resolves every mon in spec in order, the order team-preview
// lead selection and switch-in bench indexing both key off of.
func buildTeam(dexes *Dexes, spec TeamSpec) ([]*battle.Mon, error) {
	mons := make([]*battle.Mon, 0, len(spec.Mons))
	for _, mSpec := range spec.Mons {
		mon, err := buildMon(dexes, mSpec)
		if err != nil {
			return nil, err
		}
		mons = append(mons, mon)
	}
	return mons, nil
}

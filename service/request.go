// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"strconv"
	"strings"

	"github.com/openbattle/engine/rpgerr"
	"github.com/openbattle/engine/scheduler"
)

// RequestKind discriminates which of the three request shapes §4.7/§6
// describes a player currently faces.
type RequestKind int

const (
	// RequestNone means the player has nothing to submit this turn (the
	// Option<Request> "none" case).
	RequestNone RequestKind = iota
	RequestTeamPreview
	RequestSwitch
	RequestTurn
)

// MoveOption is one usable move slot shown in a Turn request.
type MoveOption struct {
	Index   int  `json:"index"`
	MoveID  string `json:"move_id"`
	PP      int  `json:"pp"`
	Disabled bool `json:"disabled"`
}

// Request is the opaque per-player choice prompt player_data/request
// return: exactly one of its kind-specific fields is meaningful, selected
// by Kind.
type Request struct {
	Kind RequestKind `json:"kind"`

	// TeamPreview: BenchSize is how many Mons the player picks a lead
	// order from.
	BenchSize int `json:"bench_size,omitempty"`

	// Switch: a fainted active slot needs a replacement; Slot names
	// which one, Bench the still-healthy candidates by reserve index.
	Slot  int   `json:"slot,omitempty"`
	Bench []int `json:"bench,omitempty"`

	// Turn: Moves lists this player's active Mon's usable move slots.
	Moves []MoveOption `json:"moves,omitempty"`
}

// choice is one parsed token of a make_choice submission.
type choice struct {
	kind       string // "move", "switch", "pass", "item"
	slot       int    // move/switch index, 1-based as submitted
	target     int    // relative target position, 0 if unspecified
	tera, mega bool
	itemName   string
}

// parseChoiceString splits a submission on ';' and parses each token
// against the grammar spec.md §6 names: `move N[,T][,tera|mega]` |
// `switch N` | `pass` | `item NAME,T`.
func parseChoiceString(s string) ([]choice, error) {
	tokens := strings.Split(s, ";")
	out := make([]choice, 0, len(tokens))
	for _, tok := range tokens {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		c, err := parseToken(tok)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if len(out) == 0 {
		return nil, rpgerr.New(rpgerr.CodeInvalidArgument, "service: empty choice string")
	}
	return out, nil
}

func parseToken(tok string) (choice, error) {
	parts := strings.Split(tok, " ")
	verb := parts[0]
	switch verb {
	case "pass":
		return choice{kind: "pass"}, nil
	case "switch":
		if len(parts) != 2 {
			return choice{}, rpgerr.Newf(rpgerr.CodeInvalidArgument, "service: malformed switch token %q", tok)
		}
		n, err := strconv.Atoi(parts[1])
		if err != nil {
			return choice{}, rpgerr.Wrapf(err, "service: parsing switch index in %q", tok)
		}
		return choice{kind: "switch", slot: n}, nil
	case "move":
		if len(parts) != 2 {
			return choice{}, rpgerr.Newf(rpgerr.CodeInvalidArgument, "service: malformed move token %q", tok)
		}
		return parseMoveArgs(parts[1])
	case "item":
		if len(parts) != 2 {
			return choice{}, rpgerr.Newf(rpgerr.CodeInvalidArgument, "service: malformed item token %q", tok)
		}
		args := strings.Split(parts[1], ",")
		if len(args) != 2 {
			return choice{}, rpgerr.Newf(rpgerr.CodeInvalidArgument, "service: item token needs NAME,T in %q", tok)
		}
		target, err := strconv.Atoi(args[1])
		if err != nil {
			return choice{}, rpgerr.Wrapf(err, "service: parsing item target in %q", tok)
		}
		return choice{kind: "item", itemName: args[0], target: target}, nil
	default:
		return choice{}, rpgerr.Newf(rpgerr.CodeInvalidArgument, "service: unrecognized choice verb %q", verb)
	}
}

// parseMoveArgs parses the comma-separated argument list of a move token:
// slot index, optional target, optional "tera"/"mega".
func parseMoveArgs(arg string) (choice, error) {
	fields := strings.Split(arg, ",")
	n, err := strconv.Atoi(fields[0])
	if err != nil {
		return choice{}, rpgerr.Wrapf(err, "service: parsing move index in %q", arg)
	}
	c := choice{kind: "move", slot: n}
	for _, f := range fields[1:] {
		switch f {
		case "tera":
			c.tera = true
		case "mega":
			c.mega = true
		default:
			target, err := strconv.Atoi(f)
			if err != nil {
				return choice{}, rpgerr.Newf(rpgerr.CodeInvalidArgument, "service: unrecognized move argument %q", f)
			}
			c.target = target
		}
	}
	return c, nil
}

// toAction resolves one parsed choice for side/slot into a scheduler.Action,
// given the Mon currently occupying that slot and its move id list (1-based
// as submitted). actorMon is the core.Ref-style identity string carried
// onto the Move action.
func (c choice) toAction(side, slot int, actorMon string, moveIDs []string) (scheduler.Action, error) {
	switch c.kind {
	case "pass":
		return scheduler.NewPass(side, slot), nil
	case "switch":
		return scheduler.Action{Kind: scheduler.KindSwitch, Side: side, Slot: slot, SwitchPosition: c.slot - 1, SwitchInstant: false}, nil
	case "move":
		if c.slot < 1 || c.slot > len(moveIDs) {
			return scheduler.Action{}, rpgerr.New(rpgerr.CodeOutOfRange, "service: move slot out of range")
		}
		return scheduler.NewMove(side, slot, actorMon, moveIDs[c.slot-1], c.target, c.mega), nil
	case "item":
		return scheduler.Action{Kind: scheduler.KindItem, Side: side, Slot: slot,
			ItemPlayer: actorMon, ItemID: c.itemName, ItemTarget: c.target}, nil
	default:
		return scheduler.Action{}, rpgerr.New(rpgerr.CodeInvalidArgument, "service: unknown choice kind")
	}
}

// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package hooks

import (
	"context"

	"github.com/openbattle/engine/battle"
	"github.com/openbattle/engine/damagectx"
	"github.com/openbattle/engine/dex"
	"github.com/openbattle/engine/rational"
	"github.com/openbattle/engine/stats"
	"github.com/openbattle/engine/typechart"
)

// This file is a curated set of hooks exercising every event kind the
// registry/dispatcher pair supports. Each Register* function is meant to
// be called once at engine initialization; none of them carry any
// per-battle state themselves (per-battle state, when one of these needs
// it, lives in the Mon/Side/Field EffectState a Connector reaches).

// RegisterAirLock installs the ability that suppresses every weather
// effect on damage for the duration it is active, without clearing the
// weather itself.
func RegisterAirLock(reg *Registry) {
	reg.Register(battle.EffectHandle{Kind: battle.HandleAbility, ID: "airlock"}, &Hooks{
		ModifyDamageFromWeather: func(_ context.Context, _ *damagectx.Context, out *rational.Output[rational.Range]) {
			out.Replace(rational.Point(rational.Whole(1)), "air lock suppresses weather's damage effects")
		},
	})
}

// RegisterEmbargo installs the volatile that blocks its holder's own held
// item for as long as it lasts, recorded as a per-resolution Move flag
// other item hooks (Utility Umbrella included) can check.
func RegisterEmbargo(reg *Registry) {
	reg.Register(battle.EffectHandle{Kind: battle.HandleCondition, ID: "embargo"}, &Hooks{
		ModifyStateFromMon: func(_ context.Context, dc *damagectx.Context, which damagectx.MonType) {
			if dc.Mon(which).HasVolatile("embargo") {
				dc.Move.Flags["item_suppressed:"+monTypeKey(which)] = true
			}
		},
	})
}

// RegisterUtilityUmbrella installs the item that blocks weather's damage
// modifier for its holder specifically, unless that holder's item has
// itself been suppressed (Embargo, Magic Room).
func RegisterUtilityUmbrella(reg *Registry) {
	reg.Register(battle.EffectHandle{Kind: battle.HandleItem, ID: "utilityumbrella"}, &Hooks{
		ModifyDamageFromWeather: func(_ context.Context, dc *damagectx.Context, out *rational.Output[rational.Range]) {
			if holdsUnsuppressedUmbrella(dc, damagectx.Attacker) || holdsUnsuppressedUmbrella(dc, damagectx.Defender) {
				out.Replace(rational.Point(rational.Whole(1)), "utility umbrella blocks weather's damage modifier")
			}
		},
	})
}

func holdsUnsuppressedUmbrella(dc *damagectx.Context, which damagectx.MonType) bool {
	if dc.Mon(which).ItemID != "utilityumbrella" {
		return false
	}
	return !dc.Move.Flags["item_suppressed:"+monTypeKey(which)]
}

func monTypeKey(which damagectx.MonType) string {
	if which == damagectx.Attacker {
		return "attacker"
	}
	return "defender"
}

// RegisterNaturePower installs the move that turns into triAttack's data
// for the current resolution, wherever it is used.
func RegisterNaturePower(reg *Registry, triAttack dex.MoveData) {
	reg.Register(battle.EffectHandle{Kind: battle.HandleActiveMove, ID: "naturepower"}, &Hooks{
		ModifyMove: func(_ context.Context, dc *damagectx.Context) {
			dc.Move.Data = triAttack
		},
	})
}

// RegisterSeismicToss installs the move that always deals damage equal to
// the user's level, short-circuiting the rest of the per-hit pipeline.
func RegisterSeismicToss(reg *Registry) {
	reg.Register(battle.EffectHandle{Kind: battle.HandleActiveMove, ID: "seismictoss"}, &Hooks{
		ApplyFixedDamage: func(_ context.Context, dc *damagectx.Context) (uint64, bool) {
			return uint64(dc.Attacker.Level), true
		},
	})
}

// RegisterSolarBeam installs the move that skips its usual charge turn in
// harsh sunlight, and is weakened in every other non-clear weather.
func RegisterSolarBeam(reg *Registry) {
	reg.Register(battle.EffectHandle{Kind: battle.HandleActiveMove, ID: "solarbeam"}, &Hooks{
		ModifyMoveData: func(_ context.Context, dc *damagectx.Context) {
			switch dc.State.Field.Weather {
			case "sun", "harshsunlight":
				dc.Move.Flags["skip_charge_turn"] = true
			case "rain", "heavyrain", "sand", "hail", "snow":
				dc.Move.Flags["weather_halved"] = true
			}
		},
		ModifyBasePower: func(_ context.Context, dc *damagectx.Context, out *rational.Output[rational.Fraction]) {
			if dc.Move.Flags["weather_halved"] {
				rational.MulFraction(out, rational.New(1, 2), "solar beam is weakened outside of harsh sunlight")
			}
		},
	})
}

// RegisterHugePower installs the ability that doubles its owner's Attack
// stat, regardless of which side of the exchange that owner occupies.
func RegisterHugePower(reg *Registry) {
	reg.Register(battle.EffectHandle{Kind: battle.HandleAbility, ID: "hugepower"}, &Hooks{
		ModifyStat: func(_ context.Context, dc *damagectx.Context, which damagectx.MonType, stat stats.Stat, out *rational.Output[rational.Range]) {
			if stat != stats.Atk || dc.Mon(which).AbilityID != "hugepower" {
				return
			}
			rational.MulRange(out, rational.Whole(2), "huge power doubles Attack")
		},
	})
}

// RegisterRain installs the weather that boosts Water-type moves and
// weakens Fire-type moves.
func RegisterRain(reg *Registry) {
	reg.Register(battle.EffectHandle{Kind: battle.HandleCondition, ID: "rain"}, &Hooks{
		ModifyDamageFromWeather: func(_ context.Context, dc *damagectx.Context, out *rational.Output[rational.Range]) {
			switch dc.Move.EffectiveType() {
			case typechart.Water:
				rational.MulRange(out, rational.New(3, 2), "rain boosts Water-type moves")
			case typechart.Fire:
				rational.MulRange(out, rational.New(1, 2), "rain weakens Fire-type moves")
			}
		},
	})
}

// RegisterStrongWinds installs the Delta Stream field condition that
// neutralizes any type's super-effective matchup against a Flying-type
// defender.
func RegisterStrongWinds(reg *Registry) {
	reg.Register(battle.EffectHandle{Kind: battle.HandleCondition, ID: "strongwinds"}, &Hooks{
		ModifyTypeEffectiveness: func(_ context.Context, dc *damagectx.Context, out *rational.Output[rational.Fraction]) {
			if !dc.Defender.HasType(typechart.Flying) {
				return
			}
			if out.Value.Compare(rational.Whole(1)) > 0 {
				out.Replace(rational.Whole(1), "strong winds neutralizes a Flying-type's weaknesses")
			}
		},
	})
}

// RegisterBurn installs the status that halves the Attack stat of a
// physical move's user while burned.
func RegisterBurn(reg *Registry) {
	reg.Register(battle.EffectHandle{Kind: battle.HandleCondition, ID: string(battle.StatusBurn)}, &Hooks{
		ModifyStat: func(_ context.Context, dc *damagectx.Context, which damagectx.MonType, stat stats.Stat, out *rational.Output[rational.Range]) {
			mon := dc.Mon(which)
			if mon.StatusAilment != battle.StatusBurn || stat != stats.Atk {
				return
			}
			if dc.Move.EffectiveCategory() != typechart.Physical {
				return
			}
			rational.MulRange(out, rational.New(1, 2), "burn halves Attack for physical moves")
		},
	})
}

// RegisterIngrain installs the volatile that grounds its holder, letting
// Ground-type moves hit a Flying-type holder and ending its immunity to
// spikes/arena-trap-style effects. A holder that also has Levitate stays
// ungrounded: Levitate's ability hook answers the check first.
func RegisterIngrain(reg *Registry) {
	reg.Register(battle.EffectHandle{Kind: battle.HandleCondition, ID: "ingrain"}, &Hooks{
		Check: map[CheckKind]CheckFunc{
			CheckGrounded: func(_ context.Context, dc *damagectx.Context, which damagectx.MonType) (bool, bool) {
				if dc.Mon(which).HasVolatile("ingrain") {
					return true, true
				}
				return false, false
			},
		},
	})
}

// RegisterLevitate installs the ability that ungrounds its holder unless
// something else (Ingrain, Smack Down) has already grounded them — the
// dispatcher's fixed sub-order (ability before volatile) means Ingrain's
// hook never gets a chance once Levitate has already answered, so a Mon
// with both active is treated as levitating; this engine leaves that
// edge case as-is rather than special-casing the predicate order.
func RegisterLevitate(reg *Registry) {
	reg.Register(battle.EffectHandle{Kind: battle.HandleAbility, ID: "levitate"}, &Hooks{
		Check: map[CheckKind]CheckFunc{
			CheckGrounded: func(_ context.Context, dc *damagectx.Context, which damagectx.MonType) (bool, bool) {
				if dc.Mon(which).AbilityID == "levitate" {
					return false, true
				}
				return false, false
			},
		},
	})
}

// RegisterMiracleEye installs the volatile that negates a Dark-type
// defender's immunity to Psychic-type moves.
func RegisterMiracleEye(reg *Registry) {
	reg.Register(battle.EffectHandle{Kind: battle.HandleCondition, ID: "miracleeye"}, &Hooks{
		ModifyTypeEffectiveness: func(_ context.Context, dc *damagectx.Context, out *rational.Output[rational.Fraction]) {
			if !dc.Defender.HasVolatile("miracleeye") || out.Value.Num != 0 {
				return
			}
			if dc.Move.EffectiveType() == typechart.Psychic {
				out.Replace(rational.Whole(1), "miracle eye negates a Dark-type's Psychic immunity")
			}
		},
	})
}

// RegisterForesight installs the volatile that negates a Ghost-type
// defender's immunity to Normal- and Fighting-type moves.
func RegisterForesight(reg *Registry) {
	reg.Register(battle.EffectHandle{Kind: battle.HandleCondition, ID: "foresight"}, &Hooks{
		ModifyTypeEffectiveness: func(_ context.Context, dc *damagectx.Context, out *rational.Output[rational.Fraction]) {
			if !dc.Defender.HasVolatile("foresight") || out.Value.Num != 0 {
				return
			}
			switch dc.Move.EffectiveType() {
			case typechart.Normal, typechart.Fighting:
				out.Replace(rational.Whole(1), "foresight negates a Ghost-type's Normal/Fighting immunity")
			}
		},
	})
}

// RegisterAll installs the entire curated example set into reg. The
// dispatch-ordering tests register only the examples each one needs.
func RegisterAll(reg *Registry, triAttack dex.MoveData) {
	RegisterAirLock(reg)
	RegisterEmbargo(reg)
	RegisterUtilityUmbrella(reg)
	RegisterNaturePower(reg, triAttack)
	RegisterSeismicToss(reg)
	RegisterSolarBeam(reg)
	RegisterHugePower(reg)
	RegisterRain(reg)
	RegisterStrongWinds(reg)
	RegisterBurn(reg)
	RegisterIngrain(reg)
	RegisterLevitate(reg)
	RegisterMiracleEye(reg)
	RegisterForesight(reg)
}

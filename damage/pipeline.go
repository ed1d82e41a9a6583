// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package damage

import (
	"context"

	"github.com/openbattle/engine/damagectx"
	"github.com/openbattle/engine/dice"
	"github.com/openbattle/engine/hooks"
	"github.com/openbattle/engine/rational"
	"github.com/openbattle/engine/stats"
	"github.com/openbattle/engine/typechart"
)

// Resolve runs every stage of the damage simulation pipeline over dc and
// returns the resulting MultiHit. dc must already be built (stage 1,
// damagectx.New); Resolve does not write damage/status changes back to
// the real battle.State (stage 10) — that commit is the move executor's
// responsibility (component I), which is the only caller that knows
// whether this resolution is actually being applied or merely previewed.
func Resolve(ctx context.Context, dc *damagectx.Context, mode Mode, roller dice.Roller, d *hooks.Dispatcher) (*MultiHit, error) {
	dc.Analysis = mode == Analysis
	m := newMath(mode, roller)

	prep := buildPreparationPipeline(d)
	result := prep.Process(ctx, dc)
	if err := result.Err(); err != nil {
		return nil, err
	}
	dc = result.GetOutput()

	if fixed, ok := d.ApplyFixedDamage(ctx, dc); ok {
		return &MultiHit{Hits: []SingleHit{{
			Damage: rational.NewDistribution(rational.Point(rational.Whole(fixed))),
		}}}, nil
	}

	if !m.rollAccuracy(effectiveAccuracy(dc)) {
		return &MultiHit{Hits: []SingleHit{{Missed: true}}}, nil
	}

	hitCount := m.resolveHitCount(dc.Move.Data.Multihit[0], dc.Move.Data.Multihit[1])
	if hitCount < 1 {
		hitCount = 1
	}

	hits := make([]SingleHit, 0, hitCount)
	for i := 0; i < hitCount; i++ {
		hit := resolveOneHit(ctx, dc, m, d)
		d.ModifyStateAfterHit(ctx, dc)
		hits = append(hits, hit)
	}

	return &MultiHit{Hits: hits}, nil
}

func effectiveAccuracy(dc *damagectx.Context) int {
	return dc.Move.Data.Accuracy
}

// resolveOneHit is stage 7: the per-hit numeric computation.
func resolveOneHit(ctx context.Context, dc *damagectx.Context, m math, d *hooks.Dispatcher) SingleHit {
	attackWhich, attackStat := attackStatFor(dc)
	defenseWhich, defenseStat := defenseStatFor(dc)

	atkOut := dc.StatOutput(attackWhich, attackStat)
	d.ModifyStat(ctx, dc, attackWhich, attackStat, atkOut)

	defOut := dc.StatOutput(defenseWhich, defenseStat)
	d.ModifyStat(ctx, dc, defenseWhich, defenseStat, defOut)

	basePowerOut := rational.NewOutput(rational.Whole(dc.Move.Data.BasePower))
	d.ModifyBasePower(ctx, dc, basePowerOut)

	levelTerm := rational.Whole(uint64(2*dc.Attacker.Level/5 + 2))
	rawRange := atkOut.Value.Mul(levelTerm).Mul(basePowerOut.Value)
	rawRange = divRanges(rawRange, defOut.Value)
	rawRange = rawRange.Div(rational.Whole(50))
	rawRange = floorRange(rawRange)
	rawRange = rawRange.Add(rational.Whole(2))

	weatherOut := rational.NewOutput(rawRange)
	d.ModifyDamageFromWeather(ctx, dc, weatherOut)

	dist := rational.NewDistribution(weatherOut.Value)

	critChanceFraction := critChance(dc.Move.Data.CritRatio)
	dist, isCrit := m.expandCrit(dist, critChanceFraction)
	dc.IsCritical = isCrit

	dist = m.expandRandomFactor(dist)

	typeEffOut := rational.NewOutput(typechart.Effectiveness(dc.Move.EffectiveType(), dc.Defender.EffectiveTypes()...))
	immune := typeEffOut.Value.Num == 0
	if immune {
		if negated, ok := d.CheckMonState(ctx, dc, damagectx.Defender, hooks.CheckNegatesImmunity); ok && negated {
			immune = false
			typeEffOut.Replace(rational.Whole(1), "a hook negated this immunity")
		}
	}
	d.ModifyTypeEffectiveness(ctx, dc, typeEffOut)
	if !immune {
		if forcedImmune, ok := d.CheckMonState(ctx, dc, damagectx.Defender, hooks.CheckIsImmune); ok && forcedImmune {
			immune = true
			typeEffOut.Replace(rational.Whole(0), "a hook forced an immunity")
		}
	}

	if immune {
		return SingleHit{Damage: rational.NewDistribution(rational.Point(rational.Whole(0))), TypeEffectiveness: typeEffOut.Value, Critical: isCrit}
	}

	dist = dist.Mul(typeEffOut.Value)

	stab := stabMultiplier(dc.Attacker.HasType(dc.Move.EffectiveType()), dc.Attacker.AbilityID == "adaptability")
	dist = dist.Mul(stab)

	damageOut := rational.NewOutput(dist)
	d.ModifyDamage(ctx, dc, damageOut)
	damageOut.Value = floorDistribution(damageOut.Value)

	return SingleHit{
		Damage:            damageOut.Value,
		TypeEffectiveness: typeEffOut.Value,
		Critical:          isCrit,
	}
}

func attackStatFor(dc *damagectx.Context) (damagectx.MonType, stats.Stat) {
	switch {
	case dc.Move.Data.Flags["foulplay"]:
		return damagectx.Defender, stats.Atk
	case dc.Move.Data.Flags["bodypress"]:
		return damagectx.Attacker, stats.Def
	case dc.Move.EffectiveCategory() == typechart.Special:
		return damagectx.Attacker, stats.SpAtk
	default:
		return damagectx.Attacker, stats.Atk
	}
}

func defenseStatFor(dc *damagectx.Context) (damagectx.MonType, stats.Stat) {
	switch {
	case dc.Move.Data.Flags["psyshock"]:
		return damagectx.Defender, stats.Def
	case dc.Move.EffectiveCategory() == typechart.Special:
		return damagectx.Defender, stats.SpDef
	default:
		return damagectx.Defender, stats.Def
	}
}

// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package hooks

import (
	"context"

	"github.com/openbattle/engine/battle"
	"github.com/openbattle/engine/damagectx"
	"github.com/openbattle/engine/rational"
	"github.com/openbattle/engine/stats"
)

// FieldFunc covers every event whose signature is just (&mut
// DamageContext): ModifyStateFromField, ModifyMoveData, and
// ModifyStateAfterHit.
type FieldFunc func(ctx context.Context, dc *damagectx.Context)

// MonFunc covers ModifyStateFromSide and ModifyStateFromMon: (&mut
// DamageContext, MonType).
type MonFunc func(ctx context.Context, dc *damagectx.Context, which damagectx.MonType)

// ModifyMoveFunc rewrites the move being used wholesale (Nature Power ->
// Tri Attack, redirection).
type ModifyMoveFunc func(ctx context.Context, dc *damagectx.Context)

// ApplyFixedDamageFunc overrides damage wholesale; the first hook to
// return (damage, true) short-circuits the rest of the per-hit pipeline.
type ApplyFixedDamageFunc func(ctx context.Context, dc *damagectx.Context) (damage uint64, ok bool)

// FractionFunc covers ModifyBasePower and ModifyTypeEffectiveness: (&
// DamageContext, &mut Output<Fraction>).
type FractionFunc func(ctx context.Context, dc *damagectx.Context, out *rational.Output[rational.Fraction])

// StatFunc covers the per-stat ModifyStat event: (& DamageContext, &mut
// Output<Range<Fraction>>), additionally told which stat and which Mon
// (attacker or defender) is being resolved.
type StatFunc func(ctx context.Context, dc *damagectx.Context, which damagectx.MonType, stat stats.Stat, out *rational.Output[rational.Range])

// RangeFunc covers ModifyDamageFromWeather: (& DamageContext, &mut
// Output<Range<Fraction>>).
type RangeFunc func(ctx context.Context, dc *damagectx.Context, out *rational.Output[rational.Range])

// DistributionFunc covers ModifyDamage: (& DamageContext, &mut
// Output<RangeDistribution<Fraction>>).
type DistributionFunc func(ctx context.Context, dc *damagectx.Context, out *rational.Output[rational.Distribution])

// CheckFunc covers the tri-state CheckMonState predicates (Grounded,
// NegatesImmunity, IsImmune): (& DamageContext, MonType) -> Option<bool>.
// The first hook to return ok=true short-circuits with its value.
type CheckFunc func(ctx context.Context, dc *damagectx.Context, which damagectx.MonType) (value bool, ok bool)

// EndFunc fires once when a residual ticker decrements an effect's
// duration to zero, just before the effect's EffectState is discarded
// (§4.2 "residual tickers ... call the effect's End hook and remove the
// effect"). It takes the bare battle.State plus the effect's own
// Location rather than a damagectx.Context, since an effect can expire
// outside of any single hit (a weather counter running out between
// turns, Trick Room's turn count lapsing) and has no attacker/defender
// pair to report.
type EndFunc func(ctx context.Context, state *battle.State, loc battle.Location)

// CheckKind discriminates which CheckMonState predicate is being asked.
type CheckKind string

const (
	CheckGrounded        CheckKind = "grounded"
	CheckNegatesImmunity CheckKind = "negates_immunity"
	CheckIsImmune        CheckKind = "is_immune"
)

// Hooks is a struct of optional callbacks, one field per event in the
// catalog (§4.2). An effect registers one *Hooks value; most fields are
// left nil, meaning that effect has nothing to say for that event.
type Hooks struct {
	ModifyStateFromField    FieldFunc
	ModifyStateFromSide     MonFunc
	ModifyStateFromMon      MonFunc
	ModifyMove              ModifyMoveFunc
	ModifyMoveData          FieldFunc
	ApplyFixedDamage        ApplyFixedDamageFunc
	ModifyBasePower         FractionFunc
	ModifyStat              StatFunc
	ModifyDamageFromWeather RangeFunc
	ModifyTypeEffectiveness FractionFunc
	ModifyDamage            DistributionFunc
	ModifyStateAfterHit     FieldFunc
	End                     EndFunc

	// CheckMonState handlers, keyed by which predicate they answer.
	Check map[CheckKind]CheckFunc
}

// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package damage

import (
	"context"
	"fmt"

	"github.com/openbattle/engine/core"
	"github.com/openbattle/engine/damagectx"
	"github.com/openbattle/engine/hooks"
	"github.com/openbattle/engine/pipeline"
)

var preparationRef = core.MustNewRef(core.RefInput{Module: "damage", Type: "pipeline", Value: "preparation"})

// buildPreparationPipeline adapts stages 2-4 (every hook that patches the
// DamageContext before the per-hit numeric computation begins) into a
// pipeline.SequentialPipeline: each stage is a pure DamageContext
// mutation with no branching, exactly the shape SequentialPipeline was
// built for.
func buildPreparationPipeline(d *hooks.Dispatcher) *pipeline.SequentialPipeline[*damagectx.Context] {
	return pipeline.NewSequential[*damagectx.Context](preparationRef,
		pipeline.NewFuncStage("modify_state_from_field", func(ctx context.Context, v any) (any, error) {
			dc := mustContext(v)
			d.ModifyStateFromField(ctx, dc)
			return dc, nil
		}),
		pipeline.NewFuncStage("modify_state_from_attacker_side", func(ctx context.Context, v any) (any, error) {
			dc := mustContext(v)
			d.ModifyStateFromSide(ctx, dc, damagectx.Attacker)
			return dc, nil
		}),
		pipeline.NewFuncStage("modify_state_from_defender_side", func(ctx context.Context, v any) (any, error) {
			dc := mustContext(v)
			d.ModifyStateFromSide(ctx, dc, damagectx.Defender)
			return dc, nil
		}),
		pipeline.NewFuncStage("modify_state_from_attacker_mon", func(ctx context.Context, v any) (any, error) {
			dc := mustContext(v)
			d.ModifyStateFromMon(ctx, dc, damagectx.Attacker)
			return dc, nil
		}),
		pipeline.NewFuncStage("modify_state_from_defender_mon", func(ctx context.Context, v any) (any, error) {
			dc := mustContext(v)
			d.ModifyStateFromMon(ctx, dc, damagectx.Defender)
			return dc, nil
		}),
		pipeline.NewFuncStage("modify_move", func(ctx context.Context, v any) (any, error) {
			dc := mustContext(v)
			d.ModifyMove(ctx, dc)
			return dc, nil
		}),
		pipeline.NewFuncStage("modify_move_data", func(ctx context.Context, v any) (any, error) {
			dc := mustContext(v)
			d.ModifyMoveData(ctx, dc)
			return dc, nil
		}),
	)
}

func mustContext(v any) *damagectx.Context {
	dc, ok := v.(*damagectx.Context)
	if !ok {
		panic(fmt.Sprintf("damage: preparation stage received unexpected value type %T", v))
	}
	return dc
}

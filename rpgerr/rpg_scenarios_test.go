package rpgerr_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/openbattle/engine/rpgerr"
)

type RPGScenariosTestSuite struct {
	suite.Suite
}

func TestRPGScenariosSuite(t *testing.T) {
	suite.Run(t, new(RPGScenariosTestSuite))
}

// TestMoveOutOfRange shows how context accumulates through a targeting attempt
func (s *RPGScenariosTestSuite) TestMoveOutOfRange() {
	// Battle system level
	ctx := context.Background()
	ctx = rpgerr.WithMetadata(ctx,
		rpgerr.Meta("battle_id", "battle-001"),
		rpgerr.Meta("round", 3),
		rpgerr.Meta("turn", "charizard"),
	)

	// Move action level
	ctx = rpgerr.WithMetadata(ctx,
		rpgerr.Meta("action_type", "move"),
		rpgerr.Meta("attacker_id", "charizard-001"),
		rpgerr.Meta("target_id", "blastoise-002"),
	)

	// Targeting validation level
	ctx = rpgerr.WithMetadata(ctx,
		rpgerr.Meta("attacker_slot", 0),
		rpgerr.Meta("target_slot", 3),
		rpgerr.Meta("move", "flamethrower"),
		rpgerr.Meta("adjacency_reach", 1),
		rpgerr.Meta("calculated_distance", 3),
	)

	// Create the error with full context
	err := rpgerr.OutOfRangeCtx(ctx, "move targeting")

	// Verify the error tells the complete story
	meta := rpgerr.GetMeta(err)
	s.Equal("battle-001", meta["battle_id"])
	s.Equal(3, meta["round"])
	s.Equal("charizard", meta["turn"])
	s.Equal("flamethrower", meta["move"])
	s.Equal(3, meta["calculated_distance"])
	s.Equal(1, meta["adjacency_reach"])

	// The error message plus metadata tells us exactly why the move failed
	s.Contains(err.Error(), "move targeting out of range")
}

// TestMoveWithoutPP shows resource exhaustion with full context
func (s *RPGScenariosTestSuite) TestMoveWithoutPP() {
	// Battle session level
	ctx := context.Background()
	ctx = rpgerr.WithMetadata(ctx,
		rpgerr.Meta("session_id", "session-456"),
		rpgerr.Meta("format", "singles"),
	)

	// Mon state level
	ctx = rpgerr.WithMetadata(ctx,
		rpgerr.Meta("mon_id", "gengar-001"),
		rpgerr.Meta("mon_level", 50),
		rpgerr.Meta("mon_species", "gengar"),
	)

	// Move attempt level
	ctx = rpgerr.WithMetadata(ctx,
		rpgerr.Meta("move", "shadow_ball"),
		rpgerr.Meta("slot", 2),
		rpgerr.Meta("pp_remaining", map[string]int{
			"shadow_ball": 0,
			"sludge_bomb": 3,
			"thunderbolt": 5,
			"protect":     10,
		}),
	)

	err := rpgerr.ResourceExhaustedCtx(ctx, "pp")

	meta := rpgerr.GetMeta(err)
	pp := meta["pp_remaining"].(map[string]int)
	s.Equal(0, pp["shadow_ball"])
	s.Equal("shadow_ball", meta["move"])
	s.Equal(2, meta["slot"])
}

// TestChoiceItemConflict shows conflicting game states
func (s *RPGScenariosTestSuite) TestChoiceItemConflict() {
	ctx := context.Background()

	// Current state
	ctx = rpgerr.WithMetadata(ctx,
		rpgerr.Meta("mon_id", "metagross-001"),
		rpgerr.Meta("locked_move", "meteor_mash"),
		rpgerr.Meta("held_item", "choice_band"),
	)

	// Attempted action
	ctx = rpgerr.WithMetadata(ctx,
		rpgerr.Meta("attempted_move", "earthquake"),
		rpgerr.Meta("requires_unlocked", true),
		rpgerr.Meta("target", "heatran-001"),
	)

	err := rpgerr.ConflictingStateCtx(ctx, "locked into meteor mash by choice band")

	meta := rpgerr.GetMeta(err)
	s.Equal("meteor_mash", meta["locked_move"])
	s.Equal("earthquake", meta["attempted_move"])
	s.True(meta["requires_unlocked"].(bool))
}

// TestNestedDamagePipelineFlow shows deep nesting with context accumulation
func (s *RPGScenariosTestSuite) TestNestedDamagePipelineFlow() {
	// Level 1: Move Execution Pipeline
	ctx := context.Background()
	ctx = rpgerr.WithMetadata(ctx,
		rpgerr.Meta("pipeline", "MoveExecutionPipeline"),
		rpgerr.Meta("attacker", "garchomp-001"),
		rpgerr.Meta("target", "skarmory-001"),
		rpgerr.Meta("move", "earthquake"),
	)

	// Level 2: Accuracy Check
	ctx = rpgerr.WithMetadata(ctx,
		rpgerr.Meta("pipeline", "AccuracyCheck"),
		rpgerr.Meta("accuracy_roll", 42),
		rpgerr.Meta("effective_accuracy", 100),
		rpgerr.Meta("target_evasion_stage", 0),
		rpgerr.Meta("hit", true),
	)

	// Level 3: Damage Pipeline
	damageCtx := rpgerr.WithMetadata(ctx,
		rpgerr.Meta("pipeline", "DamagePipeline"),
		rpgerr.Meta("base_power", 100),
		rpgerr.Meta("damage_roll", 92),
		rpgerr.Meta("attack_stat", 130),
		rpgerr.Meta("stab_bonus", true),
	)

	// Level 4: Type Effectiveness
	typeCtx := rpgerr.WithMetadata(damageCtx,
		rpgerr.Meta("pipeline", "TypeEffectiveness"),
		rpgerr.Meta("move_type", "ground"),
		rpgerr.Meta("defender_types", []string{"steel", "flying"}),
		rpgerr.Meta("multiplier", 0.0),
	)

	// Skarmory is immune to Ground via its Flying type
	err := rpgerr.NewCtx(typeCtx, rpgerr.CodeBlocked,
		"damage nullified by immunity to ground-type moves")

	// Add call stack to show the execution path
	err.CallStack = []string{
		"MoveExecutionPipeline",
		"AccuracyCheck",
		"DamagePipeline",
		"TypeEffectiveness",
	}

	meta := rpgerr.GetMeta(err)
	s.Equal("garchomp-001", meta["attacker"])
	s.Equal("skarmory-001", meta["target"])
	s.Equal("earthquake", meta["move"])
	s.Equal(true, meta["hit"])
	s.Equal("ground", meta["move_type"])

	defenderTypes := meta["defender_types"].([]string)
	s.Contains(defenderTypes, "flying")

	stack := rpgerr.GetCallStack(err)
	s.Len(stack, 4)
	s.Equal("TypeEffectiveness", stack[3])
}

// TestActionOrderViolation shows timing restrictions with context
func (s *RPGScenariosTestSuite) TestActionOrderViolation() {
	ctx := context.Background()

	// Turn tracking
	ctx = rpgerr.WithMetadata(ctx,
		rpgerr.Meta("round", 2),
		rpgerr.Meta("current_turn", "greninja-001"),
		rpgerr.Meta("phase", "move"),
	)

	// Mon's action-slot state
	ctx = rpgerr.WithMetadata(ctx,
		rpgerr.Meta("mon_id", "greninja-001"),
		rpgerr.Meta("move_used", true),
		rpgerr.Meta("switch_used", false),
	)

	// Attempted action
	ctx = rpgerr.WithMetadata(ctx,
		rpgerr.Meta("attempted_action", "move"),
		rpgerr.Meta("action_type", "move"),
		rpgerr.Meta("previous_action", "move"),
	)

	err := rpgerr.TimingRestrictionCtx(ctx, "action already used this turn")

	meta := rpgerr.GetMeta(err)
	s.True(meta["move_used"].(bool))
	s.Equal("move", meta["attempted_action"])
	s.Equal("move", meta["previous_action"])
}

// TestPrerequisiteChain shows multiple prerequisite failures
func (s *RPGScenariosTestSuite) TestPrerequisiteChain() {
	ctx := context.Background()

	// Mon attempting the action
	ctx = rpgerr.WithMetadata(ctx,
		rpgerr.Meta("mon_id", "greninja-001"),
		rpgerr.Meta("mon_level", 36),
		rpgerr.Meta("mon_species", "greninja"),
		rpgerr.Meta("form", "battle_bond_inactive"),
	)

	// Ability being attempted
	ctx = rpgerr.WithMetadata(ctx,
		rpgerr.Meta("ability", "battle_bond_transform"),
		rpgerr.Meta("requires_ko_count", 1),
		rpgerr.Meta("ko_count", 0),
		rpgerr.Meta("recharge", "none"),
	)

	err := rpgerr.PrerequisiteNotMetCtx(ctx, "battle bond trigger")

	meta := rpgerr.GetMeta(err)
	s.Equal(0, meta["ko_count"])
	s.Equal("battle_bond_inactive", meta["form"])
	s.Equal(36, meta["mon_level"]) // Has the level requirement
}

// TestImmunityContext shows immunity with full context
func (s *RPGScenariosTestSuite) TestImmunityContext() {
	ctx := context.Background()

	// Move being used
	ctx = rpgerr.WithMetadata(ctx,
		rpgerr.Meta("move", "toxic"),
		rpgerr.Meta("move_category", "status"),
		rpgerr.Meta("accuracy", 90),
		rpgerr.Meta("attacker", "muk-001"),
	)

	// Target information
	ctx = rpgerr.WithMetadata(ctx,
		rpgerr.Meta("target", "steelix-001"),
		rpgerr.Meta("target_type", "steel"),
		rpgerr.Meta("target_immunities", []string{
			"poison",
			"toxic",
		}),
	)

	err := rpgerr.ImmuneCtx(ctx, "poison status (steel-type immunity)")

	meta := rpgerr.GetMeta(err)
	s.Equal("toxic", meta["move"])
	s.Equal("steel", meta["target_type"])

	immunities := meta["target_immunities"].([]string)
	s.Contains(immunities, "toxic")
}

// TestInterruptionChain shows how a priority move interrupts a slower one
func (s *RPGScenariosTestSuite) TestInterruptionChain() {
	// Original move being queued
	ctx := context.Background()
	ctx = rpgerr.WithMetadata(ctx,
		rpgerr.Meta("pipeline", "MoveExecutionPipeline"),
		rpgerr.Meta("attacker", "slowbro-001"),
		rpgerr.Meta("move", "psychic"),
		rpgerr.Meta("priority", 0),
		rpgerr.Meta("target", "breloom-001"),
		rpgerr.Meta("phase", "queued"),
	)

	// Interrupt triggered
	ctx = rpgerr.WithMetadata(ctx,
		rpgerr.Meta("interrupt_pipeline", "FaintCheckPipeline"),
		rpgerr.Meta("interruptor", "breloom-001"),
		rpgerr.Meta("interrupt_move", "mach_punch"),
		rpgerr.Meta("interrupt_priority", 1),
		rpgerr.Meta("target_fainted", true),
	)

	err := rpgerr.InterruptedCtx(ctx, "target fainted before move resolved")
	err.CallStack = []string{
		"ActionQueue.Schedule",
		"ActionQueue.SortByPriority",
		"MoveExecutionPipeline.Begin",
		"FaintCheckPipeline.Trigger",
		"FaintCheckPipeline.Resolve",
		"MoveExecutionPipeline.Cancelled",
	}

	meta := rpgerr.GetMeta(err)
	s.Equal("psychic", meta["move"])
	s.Equal("breloom-001", meta["interruptor"])
	s.True(meta["target_fainted"].(bool))

	stack := rpgerr.GetCallStack(err)
	s.Contains(stack, "FaintCheckPipeline.Trigger")
	s.Contains(stack, "MoveExecutionPipeline.Cancelled")
}

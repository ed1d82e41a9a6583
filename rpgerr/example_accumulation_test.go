package rpgerr_test

import (
	"context"
	"fmt"

	"github.com/openbattle/engine/rpgerr"
)

// Example_errorAccumulation demonstrates the magic of automatic context accumulation.
// Watch how the error captures the complete story without manual passing.
func Example_errorAccumulation() {
	// Simulate a move resolving through multiple battle systems
	err := simulateTurnResolution()

	// The error contains the ENTIRE journey
	meta := rpgerr.GetMeta(err)
	fmt.Printf("Error: %v\n", err)
	fmt.Printf("Round: %v\n", meta["round"])
	fmt.Printf("Attacker: %v\n", meta["attacker"])
	fmt.Printf("Move: %v\n", meta["move"])
	fmt.Printf("Relative position: %v\n", meta["relative_position"])

	// Output:
	// Error: invalid target: invalid target
	// Round: 3
	// Attacker: pikachu
	// Move: thunderbolt
	// Relative position: 2
}

func simulateTurnResolution() error {
	// The scheduler adds round context
	ctx := context.Background()
	ctx = rpgerr.WithMetadata(ctx,
		rpgerr.Meta("round", 3),
		rpgerr.Meta("phase", "move"))

	return executeMoveAction(ctx, "pikachu")
}

func executeMoveAction(ctx context.Context, monID string) error {
	// The move executor adds attacker context
	ctx = rpgerr.WithMetadata(ctx,
		rpgerr.Meta("attacker", monID),
		rpgerr.Meta("move", "thunderbolt"))

	return resolveTarget(ctx, 2)
}

func resolveTarget(ctx context.Context, relativePosition int) error {
	// Targeting adds the requested relative position
	ctx = rpgerr.WithMetadata(ctx,
		rpgerr.Meta("relative_position", relativePosition),
		rpgerr.Meta("adjacency_reach", 1))

	// Out of reach for a singles format! The error carries the full story.
	return rpgerr.InvalidTargetCtx(ctx, "invalid target")
}

// Example_damageCalcJourney shows how a damage pipeline failure accumulates
// context through stat resolution, base power, and the final multiplier stack.
func Example_damageCalcJourney() {
	ctx := context.Background()

	// Pipeline level
	ctx = rpgerr.WithMetadata(ctx,
		rpgerr.Meta("attacker", "garchomp"),
		rpgerr.Meta("move", "seismic_toss"))

	// Fixed-damage resolution level
	ctx = rpgerr.WithMetadata(ctx,
		rpgerr.Meta("fixed_damage_hook", "move:Seismic Toss"),
		rpgerr.Meta("attacker_level", 78))

	// Data dependency check
	ctx = rpgerr.WithMetadata(ctx,
		rpgerr.Meta("defender", "unknown-mon-id"))

	// The defender reference could not be resolved — surface the whole chain.
	err := rpgerr.NewCtx(ctx, rpgerr.CodeNotFound, "defender not found in battle state")

	meta := rpgerr.GetMeta(err)
	fmt.Printf("Move %v used by %v (level %v) failed: defender %v missing\n",
		meta["move"], meta["attacker"], meta["attacker_level"], meta["defender"])

	// Output:
	// Move seismic_toss used by garchomp (level 78) failed: defender unknown-mon-id missing
}

// Example_accuracyCheckChain demonstrates how an accuracy check accumulates
// context through move data, stat-stage modifiers, and the PRNG draw.
func Example_accuracyCheckChain() {
	ctx := context.Background()

	// Move context
	ctx = rpgerr.WithMetadata(ctx,
		rpgerr.Meta("move", "thunder"),
		rpgerr.Meta("base_accuracy", 70),
		rpgerr.Meta("attacker", "zapdos"))

	// Target context
	ctx = rpgerr.WithMetadata(ctx,
		rpgerr.Meta("target", "gyarados"),
		rpgerr.Meta("evasion_stage", 1),
		rpgerr.Meta("accuracy_stage", 0))

	// Roll context
	ctx = rpgerr.WithMetadata(ctx,
		rpgerr.Meta("roll", 72),
		rpgerr.Meta("effective_accuracy", 58))

	// Missed - but the full context of why is attached.
	err := rpgerr.NewCtx(ctx, rpgerr.CodeBlocked, "move missed")

	meta := rpgerr.GetMeta(err)
	fmt.Printf("Move: %v (base accuracy %v)\n", meta["move"], meta["base_accuracy"])
	fmt.Printf("Target evasion stage: %v\n", meta["evasion_stage"])
	fmt.Printf("Result: missed (rolled %v, needed <= %v)\n", meta["roll"], meta["effective_accuracy"])

	// Output:
	// Move: thunder (base accuracy 70)
	// Target evasion stage: 1
	// Result: missed (rolled 72, needed <= 58)
}

// Example_statusResistancePipeline shows deep nesting where each pipeline
// stage adds its context, building a complete picture of why damage changed.
func Example_statusResistancePipeline() {
	// The hit lands and enters damage calculation
	ctx := context.Background()
	ctx = rpgerr.WithMetadata(ctx,
		rpgerr.Meta("attacker", "machamp"),
		rpgerr.Meta("ability", "guts"))

	// Base damage calculation
	ctx = rpgerr.WithMetadata(ctx,
		rpgerr.Meta("move", "close_combat"),
		rpgerr.Meta("base_power", 120),
		rpgerr.Meta("raw_damage", 140))

	// Status interaction
	ctx = rpgerr.WithMetadata(ctx,
		rpgerr.Meta("attacker_status", "burn"),
		rpgerr.Meta("status_halves_physical", false))

	// Final multiplier stack
	ctx = rpgerr.WithMetadata(ctx,
		rpgerr.Meta("final_damage", 140))

	// Informational "error" showing why burn's halving was skipped
	err := rpgerr.NewCtx(ctx, rpgerr.CodeBlocked,
		"burn damage halving suppressed by Guts")

	meta := rpgerr.GetMeta(err)
	fmt.Printf("Attack: %v used %v for %v raw damage\n",
		meta["attacker"], meta["move"], meta["raw_damage"])
	fmt.Printf("Attacker status: %v, ability: %v\n", meta["attacker_status"], meta["ability"])
	fmt.Printf("Final damage: %v\n", meta["final_damage"])

	// Output:
	// Attack: machamp used close_combat for 140 raw damage
	// Attacker status: burn, ability: guts
	// Final damage: 140
}

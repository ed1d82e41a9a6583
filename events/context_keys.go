// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package events

// Context key constants for common event data.
// Using constants prevents typos and ensures consistency across the engine.
const (
	// Move resolution context keys
	ContextKeyAttacker    = "attacker"     // Mon using the move
	ContextKeyDefender    = "defender"     // Mon being hit
	ContextKeyMove        = "move"         // Move being used
	ContextKeyMoveType    = "move_type"    // Effective type of the move
	ContextKeyCategory    = "category"     // Physical, Special, or Status
	ContextKeyBasePower   = "base_power"   // Move's base power before modifiers
	ContextKeyDamage      = "damage"       // Computed damage amount
	ContextKeyHitIndex    = "hit_index"    // Which hit of a multi-hit move
	ContextKeyTypeEffect  = "type_effect"  // Type effectiveness multiplier

	// Roll context keys
	ContextKeyAccuracyRoll = "accuracy_roll" // Accuracy check draw
	ContextKeyDamageRoll   = "damage_roll"   // 85-100 damage randomization draw
	ContextKeyCritRoll     = "crit_roll"     // Critical-hit check draw
	ContextKeyCritical     = "critical"      // Is a critical hit
	ContextKeyMiss         = "miss"          // Move missed

	// Stat context keys
	ContextKeyStat       = "stat"        // Which stat is being resolved
	ContextKeyBoostStage = "boost_stage" // Boost stage in [-6, 6]

	// Effect/condition context keys
	ContextKeyEffect        = "effect"        // Effect being applied
	ContextKeyCondition     = "condition"     // Condition being applied
	ContextKeyDuration      = "duration"      // Duration of the effect in turns
	ContextKeySource        = "source"        // Source of the effect (ability, item, move)
	ContextKeyWeather       = "weather"       // Active field weather
	ContextKeyTerrain       = "terrain"       // Active field terrain
	ContextKeyFieldSide     = "side"          // Side index an effect belongs to
	ContextKeySlot          = "slot"          // Slot index an effect belongs to

	// Action/turn context keys
	ContextKeyAction    = "action"     // Action being resolved
	ContextKeyPriority  = "priority"   // Action's priority bracket
	ContextKeyRound     = "round"      // Current battle round
	ContextKeyTurnPhase = "turn_phase" // Phase of the turn (start, main, residual)

	// Resource context keys
	ContextKeyPP     = "pp"     // Remaining power points
	ContextKeyItem   = "item"   // Held item
	ContextKeyAbility = "ability" // Active ability

	// Targeting context keys
	ContextKeyRelativePosition = "relative_position" // Target's position relative to the user
	ContextKeyAdjacencyReach   = "adjacency_reach"    // Format's adjacency radius

	// Misc context keys
	ContextKeyReason   = "reason"   // Reason for the event, for log/trace lines
	ContextKeyOverride = "override" // Override normal rules (e.g. fixed damage)
)

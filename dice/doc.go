// Package dice provides the bounded random-draw primitive used by battle
// mechanics, without implementing any game-specific rule that interprets
// the draw.
//
// Purpose:
// This package offers uniform integer draws over [1, size] with a
// cryptographically secure default and a fixed-sequence implementation for
// deterministic tests. It makes no assumption about what a draw means: the
// caller decides whether a roll of 1-100 is an accuracy check, a damage
// roll in an 85-100 range, or a coin-flip speed tie-break.
//
// Scope:
//   - Cryptographically secure uniform generation over an arbitrary bound
//   - Deterministic, scripted rolling for tests
//   - Batch draws of N values from the same bound
//
// Non-Goals:
//   - Dice notation parsing: battle mechanics draw bounded integers, not
//     polyhedral dice expressions
//   - Roll result interpretation: critical hits, accuracy checks, and
//     damage ranges are battle rules, not randomness rules
//   - Reroll mechanics: when to reroll is game logic
//
// Integration:
// This package is used by:
//   - The action scheduler for random speed tie-breaks
//   - The damage pipeline for the 85-100 damage roll and secondary-effect
//     and critical-hit checks
//   - Any future mechanic requiring a uniform bounded draw
//
// Example:
//
//	roller := dice.NewRoller()
//	n, err := roller.Roll(16) // uniform draw in [1, 16]
//
//	// For deterministic tests:
//	testRoller := dice.NewMockRoller(6, 5, 4)
//	n, _ = testRoller.Roll(6) // always 6, then 5, then 4, then cycles
package dice

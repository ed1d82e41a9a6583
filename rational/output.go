// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package rational

// TraceEntry records one mutation applied to an Output, for observability
// only: two Outputs with identical Value but different Trace are still
// Equal.
type TraceEntry struct {
	Operation string
	Reason    string
}

// Output carries a mutable value of type T through a sequence of hooks,
// each of which appends a human-readable reason for its change. Hooks take
// *Output[T] so the trace accumulates across every modifier in the stack
// (ModifyBasePower, ModifyStat, ModifyDamage, ...).
type Output[T any] struct {
	Value T
	Trace []TraceEntry
}

// NewOutput wraps a starting value with an empty trace.
func NewOutput[T any](value T) *Output[T] {
	return &Output[T]{Value: value}
}

// Set replaces the value and appends a trace entry, the generic form the
// Mul/Div/Add helpers below specialize for Fraction and Range.
func (o *Output[T]) Set(value T, reason string) {
	o.Value = value
	o.Trace = append(o.Trace, TraceEntry{Operation: "set", Reason: reason})
}

// record appends an operation/reason pair without touching Value, used by
// callers that mutate o.Value directly (e.g. replacing a Range in place).
func (o *Output[T]) record(operation, reason string) {
	o.Trace = append(o.Trace, TraceEntry{Operation: operation, Reason: reason})
}

// MulFraction multiplies a Fraction-valued Output by a factor and records
// the reason; this is the shape most ModifyBasePower/ModifyTypeEffectiveness
// hooks use.
func MulFraction(o *Output[Fraction], factor Fraction, reason string) {
	o.Value = o.Value.Mul(factor)
	o.record("mul", reason)
}

// DivFraction divides a Fraction-valued Output by a divisor and records the
// reason.
func DivFraction(o *Output[Fraction], divisor Fraction, reason string) {
	o.Value = o.Value.Div(divisor)
	o.record("div", reason)
}

// AddFraction adds to a Fraction-valued Output and records the reason.
func AddFraction(o *Output[Fraction], addend Fraction, reason string) {
	o.Value = o.Value.Add(addend)
	o.record("add", reason)
}

// MulRange multiplies a Range-valued Output by a scalar and records the
// reason; ModifyStat and ModifyDamageFromWeather hooks use this shape.
func MulRange(o *Output[Range], factor Fraction, reason string) {
	o.Value = o.Value.Mul(factor)
	o.record("mul", reason)
}

// DivRange divides a Range-valued Output by a scalar and records the reason.
func DivRange(o *Output[Range], divisor Fraction, reason string) {
	o.Value = o.Value.Div(divisor)
	o.record("div", reason)
}

// MulDistribution multiplies a Distribution-valued Output by a scalar and
// records the reason; ModifyDamage's final multiplier stack uses this.
func MulDistribution(o *Output[Distribution], factor Fraction, reason string) {
	o.Value = o.Value.Mul(factor)
	o.record("mul", reason)
}

// Replace overwrites the value outright (e.g. a hook that forces a
// worst-case Range rather than scaling it) and records the reason.
func (o *Output[T]) Replace(value T, reason string) {
	o.Value = value
	o.record("replace", reason)
}

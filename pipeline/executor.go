package pipeline

import (
	"context"
	"fmt"

	"github.com/openbattle/engine/core"
)

// completedResult is the concrete Result[O] returned by a sequential
// pipeline.
type completedResult[O any] struct {
	output O
	data   []Data
	err    error
}

func (r completedResult[O]) IsComplete() bool                   { return r.err == nil }
func (r completedResult[O]) GetData() []Data                    { return r.data }
func (r completedResult[O]) GetOutput() O                       { return r.output }
func (r completedResult[O]) GetContinuation() *ContinuationData { return nil }
func (r completedResult[O]) Err() error                         { return r.err }

// SequentialPipeline runs a fixed, ordered list of Stages over a value,
// collecting Data side effects emitted along the way.
//
// Unlike the fully general Pipeline[I, O] contract, a SequentialPipeline
// never suspends: every stage must either transform the value or return
// an error. This fits synchronous mechanics like the damage calculation,
// where no stage waits on a player decision.
type SequentialPipeline[T any] struct {
	ref    *core.Ref
	stages []Stage
}

// NewSequential builds a SequentialPipeline identified by ref, running the
// given stages in order.
func NewSequential[T any](ref *core.Ref, stages ...Stage) *SequentialPipeline[T] {
	return &SequentialPipeline[T]{ref: ref, stages: stages}
}

// GetRef returns the pipeline's unique reference.
func (p *SequentialPipeline[T]) GetRef() *core.Ref {
	return p.ref
}

// Process runs every stage over input in order.
func (p *SequentialPipeline[T]) Process(ctx context.Context, input T) Result[T] {
	value := any(input)
	collector := &Collector{}
	stageCtx := context.WithValue(ctx, collectorKey{}, collector)

	for _, stage := range p.stages {
		next, err := stage.Process(stageCtx, value)
		if err != nil {
			var zero T
			return completedResult[T]{
				output: zero,
				data:   collector.data,
				err:    fmt.Errorf("pipeline %s: stage %q: %w", p.ref, stage.Name(), err),
			}
		}
		value = next
	}

	result, ok := value.(T)
	if !ok {
		var zero T
		return completedResult[T]{
			output: zero,
			data:   collector.data,
			err:    fmt.Errorf("pipeline %s: final value has unexpected type %T", p.ref, value),
		}
	}
	return completedResult[T]{output: result, data: collector.data}
}

// Resume is unsupported for SequentialPipeline: every stage runs to
// completion synchronously, so there is never a suspension to resume.
func (p *SequentialPipeline[T]) Resume(_ ContinuationData, _ any) Result[T] {
	var zero T
	return completedResult[T]{
		output: zero,
		err:    fmt.Errorf("pipeline %s: sequential pipelines never suspend", p.ref),
	}
}

// collectorKey is the context key used to thread a *Collector through
// stage Process calls without widening the Stage interface.
type collectorKey struct{}

// Collector accumulates Data emitted by stages during a single Process call.
type Collector struct {
	data []Data
}

// Emit appends a Data record to the collector.
func (c *Collector) Emit(d Data) {
	c.data = append(c.data, d)
}

// CollectorFromContext returns the active Collector, or nil if ctx was not
// produced by SequentialPipeline.Process.
func CollectorFromContext(ctx context.Context) *Collector {
	c, _ := ctx.Value(collectorKey{}).(*Collector)
	return c
}

// FuncStage adapts a plain function into a Stage.
type FuncStage struct {
	name string
	fn   func(context.Context, any) (any, error)
}

// NewFuncStage wraps fn as a named Stage.
func NewFuncStage(name string, fn func(context.Context, any) (any, error)) *FuncStage {
	return &FuncStage{name: name, fn: fn}
}

// Name returns the stage's name.
func (s *FuncStage) Name() string { return s.name }

// Process invokes the wrapped function.
func (s *FuncStage) Process(ctx context.Context, value any) (any, error) {
	return s.fn(ctx, value)
}

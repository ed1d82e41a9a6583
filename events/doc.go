// Package events provides a domain-agnostic event bus for loose coupling
// between battle engine components without requiring direct dependencies.
//
// Purpose:
// This package enables components to communicate without direct dependencies,
// supporting observable and extensible battle systems through event-driven
// architecture. It allows the engine to remain decoupled while still
// coordinating complex interactions between moves, abilities, items, and
// status conditions.
//
// Scope:
//   - Event bus implementation with pub/sub pattern
//   - Event interface and base types
//   - Typed event support with generics
//   - Chained topics that accumulate modifiers across stages
//   - Event filtering and routing capabilities
//   - Synchronous event delivery (same goroutine)
//   - No domain-specific event types
//
// Non-Goals:
//   - Battle event definitions: Define these in the packages that publish them
//   - Event persistence: Use the service layer's log splitter if needed
//   - Network transport: This is for in-process events only
//   - Async delivery: Events are delivered synchronously
//   - Event ordering guarantees across subscribers: only within a single topic
//   - Event replay: No built-in event sourcing
//
// Integration:
// Within the engine, package service is the importer of this package:
//   - service: streaming battle log construction
//
// The hooks dispatcher, the damage pipeline and the executor do not use
// the bus; they call each other directly. Packages that use the bus
// define their own event types, which keeps battle rules out of the event
// plumbing.
//
// Example:
//
//	bus := events.NewBus()
//
//	// Subscribe to a typed topic
//	damage := events.DefineTypedTopic[DamageEvent](TopicDamage)
//	damage.On(bus).Subscribe(ctx, func(ctx context.Context, e DamageEvent) error {
//	    fmt.Printf("%s took %d damage\n", e.TargetID, e.Amount)
//	    return nil
//	})
//
//	// Publish from a mechanics package
//	damage.On(bus).Publish(ctx, DamageEvent{
//	    TargetID: "pikachu-1",
//	    Amount:   40,
//	})
package events

// Package ecs bridges chartsense interaction changes into a [Donburi] world.
//
// [NewDonburiSink] publishes every store change as a typed event on
// [InteractionEventType] and mirrors the live records onto a singleton
// entity carrying the [State] component, so ECS systems can either react to
// changes or read the current hover, drag, and selection each tick.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	chart := chartsense.NewChart(chartsense.Config{Sink: sink})
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs

// Package ecs provides ECS adapters for deckui's change events.
//
// The primary adapter is [NewDonburiSink], which forwards every card move,
// drop, placement and spawn from a [deckui.Controller] into a [Donburi]
// world as typed events. Subscribe to [ChangeEventType] in your ECS systems
// to receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	ctrl.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs

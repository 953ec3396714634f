// Package ecs provides ECS adapters for canvaskit's interaction event
// system.
//
// The primary adapter is [NewDonburiStore], which bridges canvaskit
// interaction events (pointer, click, wheel, drag) into a [Donburi] world as
// typed events. Subscribe to [InteractionEventType] in your ECS systems to
// receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	editor.SetEntityStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs

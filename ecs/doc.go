// Package ecs provides ECS adapters for reveal's scroll trigger events.
//
// The primary adapter is [NewDonburiStore], which bridges trigger
// transitions (enter, leave, enterBack, leaveBack, refresh) into a [Donburi]
// world as typed events. Subscribe to [TriggerEventType] in your ECS systems
// to receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	page.SetEventSink(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs

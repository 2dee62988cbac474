// Package ecs provides ECS adapters for ink's ripple notifications.
//
// The primary adapter is [NewDonburiDelegate], which bridges ripple start,
// end and cancel notifications into a [Donburi] world as typed events.
// Subscribe to [RippleEventType] in your ECS systems to receive them.
//
// Usage:
//
//	view.SetDelegate(ecs.NewDonburiDelegate(world))
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs

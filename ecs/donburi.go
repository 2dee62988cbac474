// Package ecs provides ECS adapters for ink.
package ecs

import (
	"github.com/phanxgames/ink"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// RippleEventType is the Donburi event type for ink ripple notifications.
// Subscribe to this in your ECS systems to receive start, end and cancel
// events.
var RippleEventType = events.NewEventType[ink.RippleEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world. Ripple
// events are published to RippleEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) ink.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event ink.RippleEvent) {
	RippleEventType.Publish(s.world, event)
}

// NewDonburiDelegate returns a Delegate that publishes every notification
// into world. Pass it to InkView.SetDelegate.
func NewDonburiDelegate(world donburi.World) ink.Delegate {
	return ink.DelegateFromSink(NewDonburiSink(world))
}

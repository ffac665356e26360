package ecs

import (
	"github.com/phanxgames/deckui"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// ChangeEventType is the Donburi event type for deckui change events.
// Subscribe to this in your ECS systems to receive moves and drops.
var ChangeEventType = events.NewEventType[deckui.ChangeEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world.
// Change events are published to ChangeEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) deckui.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event deckui.ChangeEvent) {
	ChangeEventType.Publish(s.world, event)
}

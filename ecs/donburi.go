// Package ecs provides ECS adapters for reveal.
package ecs

import (
	"github.com/phanxgames/reveal"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// TriggerEventType is the Donburi event type for reveal trigger events.
// Each event names the trigger and its element, the transition (enter, leave,
// enterBack, leaveBack or refresh), the trigger's scroll progress in [0, 1]
// at the moment of the transition and the page scroll offset in pixels that
// caused it. Refresh events carry the progress recomputed after a resize.
var TriggerEventType = events.NewEventType[reveal.TriggerEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EventSink that queues trigger events on world.
// Events are delivered to TriggerEventType subscribers when the world's
// systems call ProcessEvents, not during the scroll that caused them.
func NewDonburiStore(world donburi.World) reveal.EventSink {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event reveal.TriggerEvent) {
	TriggerEventType.Publish(s.world, event)
}

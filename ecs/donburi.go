// Package ecs provides ECS adapters for canvaskit.
package ecs

import (
	"github.com/phanxgames/canvaskit"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// InteractionEventType is the Donburi event type for canvaskit interaction
// events. Subscribe to this in your ECS systems to receive pointer, click,
// wheel, and drag events.
var InteractionEventType = events.NewEventType[canvaskit.InteractionEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EntityStore backed by a Donburi world.
// Interaction events are published to InteractionEventType and can be
// consumed with events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) canvaskit.EntityStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event canvaskit.InteractionEvent) {
	InteractionEventType.Publish(s.world, event)
}

package ecs

import (
	"github.com/phanxgames/chartsense"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// InteractionEventType is the Donburi event type for chartsense store
// changes. Events are queued; systems call ProcessEvents to receive them.
var InteractionEventType = events.NewEventType[chartsense.Change]()

// State holds the live interaction record of every non-empty channel.
type State struct {
	Records map[chartsense.Channel]chartsense.Interaction
}

// StateComponent is the component type of the singleton state entity.
var StateComponent = donburi.NewComponentType[State]()

// DonburiSink implements chartsense.InteractionSink on a Donburi world.
type DonburiSink struct {
	world  donburi.World
	entity donburi.Entity
}

// NewDonburiSink creates the state entity in world and returns a sink that
// keeps it current and publishes every change to InteractionEventType.
func NewDonburiSink(world donburi.World) *DonburiSink {
	e := world.Create(StateComponent)
	StateComponent.SetValue(world.Entry(e), State{
		Records: make(map[chartsense.Channel]chartsense.Interaction),
	})
	return &DonburiSink{world: world, entity: e}
}

// Entity returns the state entity.
func (s *DonburiSink) Entity() donburi.Entity {
	return s.entity
}

// EmitInteraction implements chartsense.InteractionSink.
func (s *DonburiSink) EmitInteraction(c chartsense.Change) {
	if s.world.Valid(s.entity) {
		st := StateComponent.Get(s.world.Entry(s.entity))
		if c.Removed {
			delete(st.Records, c.Channel)
		} else {
			st.Records[c.Channel] = c.Value
		}
	}
	InteractionEventType.Publish(s.world, c)
}

// Current returns the live record on ch as seen by the world.
func Current(world donburi.World, e donburi.Entity, ch chartsense.Channel) (chartsense.Interaction, bool) {
	if !world.Valid(e) {
		return nil, false
	}
	st := StateComponent.Get(world.Entry(e))
	v, ok := st.Records[ch]
	return v, ok
}

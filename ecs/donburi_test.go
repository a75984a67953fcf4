package ecs

import (
	"testing"

	"github.com/phanxgames/chartsense"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func TestNewDonburiSink(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)
	if sink == nil {
		t.Fatal("NewDonburiSink returned nil")
	}
	if !world.Valid(sink.Entity()) {
		t.Fatal("state entity not created")
	}
}

func TestDonburiSink_EmitInteraction(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var received []chartsense.Change
	InteractionEventType.Subscribe(world, func(w donburi.World, c chartsense.Change) {
		received = append(received, c)
	})

	sel := chartsense.SelectionInteraction{Selected: []any{"a"}}
	sink.EmitInteraction(chartsense.Change{Channel: chartsense.ChannelSelection, Value: sel})
	sink.EmitInteraction(chartsense.Change{Channel: chartsense.ChannelHover, Removed: true})

	// State is updated immediately; events wait for processing.
	if _, ok := Current(world, sink.Entity(), chartsense.ChannelSelection); !ok {
		t.Error("selection record not mirrored")
	}
	if len(received) != 0 {
		t.Fatalf("events delivered before processing: %d", len(received))
	}

	InteractionEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	if received[0].Channel != chartsense.ChannelSelection || received[0].Removed {
		t.Errorf("event 0: %+v", received[0])
	}
	if received[1].Channel != chartsense.ChannelHover || !received[1].Removed {
		t.Errorf("event 1: %+v", received[1])
	}
}

func TestDonburiSink_RemovedClearsState(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	sink.EmitInteraction(chartsense.Change{
		Channel: chartsense.ChannelDrag,
		Value:   chartsense.DragInteraction{Value: chartsense.DragValue{X: 1, Y: 2}},
	})
	got, ok := Current(world, sink.Entity(), chartsense.ChannelDrag)
	if !ok {
		t.Fatal("drag record missing")
	}
	if d := got.(chartsense.DragInteraction); d.Value.X != 1 || d.Value.Y != 2 {
		t.Errorf("drag value = %+v", d.Value)
	}

	sink.EmitInteraction(chartsense.Change{Channel: chartsense.ChannelDrag, Removed: true})
	if _, ok := Current(world, sink.Entity(), chartsense.ChannelDrag); ok {
		t.Error("drag record should be gone after removal")
	}
}

func TestDonburiSink_ImplementsInteractionSink(t *testing.T) {
	world := donburi.NewWorld()
	var sink chartsense.InteractionSink = NewDonburiSink(world)
	_ = sink // compile-time interface check
}

func TestDonburiSink_ChartIntegration(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	c := chartsense.NewChart(chartsense.Config{Sink: sink})
	c.SetLayout(chartsense.Layout{
		Container: chartsense.Rect{Width: 200, Height: 100},
		Attached:  true,
	})
	c.SetPoints([]chartsense.Point{{X: 50, Y: 50, SeriesID: "s1", DataIndex: 0, Data: 7}})
	c.Attach(&chartsense.HoverSensor{})

	var count int
	InteractionEventType.Subscribe(world, func(w donburi.World, ch chartsense.Change) {
		count++
	})

	c.HandleInput(chartsense.InputSignal{Action: chartsense.ActionMove, X: 52, Y: 50, Timestamp: 1})
	c.Update(1.0 / 60)
	events.ProcessAllEvents(world)

	if count != 1 {
		t.Fatalf("expected 1 change event, got %d", count)
	}
	in, ok := Current(world, sink.Entity(), chartsense.ChannelHover)
	if !ok {
		t.Fatal("hover not mirrored into the world")
	}
	if h := in.(chartsense.HoverInteraction); h.Targets[0].Data != 7 {
		t.Errorf("hover target data = %v, want 7", h.Targets[0].Data)
	}
}

package chartsense

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		a    Action
		want Priority
	}{
		{ActionStart, PriorityCritical},
		{ActionMove, PriorityVisual},
		{ActionEnd, PriorityCritical},
		{ActionCancel, PriorityCritical},
		{ActionKey, PriorityCritical},
		{ActionKeyUp, PriorityCritical},
		{ActionSync, PriorityIdle},
	}
	for _, tt := range tests {
		t.Run(tt.a.String(), func(t *testing.T) {
			if got := Classify(tt.a); got != tt.want {
				t.Errorf("Classify(%v) = %v, want %v", tt.a, got, tt.want)
			}
		})
	}
}

func testEngine(dispatch func(*EngineEvent)) (*Engine, *LoopHost) {
	idx := NewSpatialIndex()
	idx.SetPoints([]Point{
		{X: 45, Y: 48, SeriesID: "a", DataIndex: 1},
		{X: 90, Y: 32, SeriesID: "a", DataIndex: 2},
	})
	host := NewLoopHost()
	return NewEngine(StaticLayout(testLayout()), idx, NewScheduler(host, dispatch)), host
}

func TestEngineBuildResolves(t *testing.T) {
	e, _ := testEngine(func(*EngineEvent) {})
	ev := e.Build(InputSignal{Action: ActionMove, X: 57, Y: 58})
	if !ev.HasCoordinates || ev.ChartX != 47 || ev.ChartY != 48 || ev.ContainerX != 57 {
		t.Fatalf("event = %+v", ev)
	}
	if !ev.IsWithinPlot {
		t.Error("expected within plot")
	}
	if ev.Primary == nil || ev.Primary.DataIndex != 1 || ev.Primary.Distance != 2 {
		t.Errorf("primary = %+v, want index 1 at distance 2", ev.Primary)
	}
}

func TestEngineBuildWithoutCoordinates(t *testing.T) {
	tests := []struct {
		name   string
		layout LayoutSource
		sig    InputSignal
	}{
		{"keyboard", StaticLayout(testLayout()), InputSignal{Action: ActionKey, Source: SourceKeyboard, Key: KeyHome, X: 57, Y: 58}},
		{"detached", StaticLayout{}, InputSignal{Action: ActionMove, X: 57, Y: 58}},
		{"no layout", nil, InputSignal{Action: ActionMove, X: 57, Y: 58}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := testEngine(func(*EngineEvent) {})
			e.SetLayoutSource(tt.layout)
			ev := e.Build(tt.sig)
			if ev.HasCoordinates || ev.Primary != nil || len(ev.Candidates) != 0 {
				t.Errorf("event = %+v, want no coordinates or candidates", ev)
			}
			if ev.Signal != tt.sig {
				t.Errorf("signal not carried through: %+v", ev.Signal)
			}
		})
	}
}

func TestEngineCriticalResult(t *testing.T) {
	e, _ := testEngine(func(ev *EngineEvent) {
		if ev.Signal.Action == ActionStart {
			ev.PreventDefault()
		}
	})
	r := e.Process(InputSignal{Action: ActionStart, X: 57, Y: 58})
	if !r.Dispatched || !r.DefaultPrevented || r.Priority != PriorityCritical {
		t.Errorf("Result = %+v, want dispatched and prevented", r)
	}
	r = e.Process(InputSignal{Action: ActionEnd, X: 57, Y: 58})
	if !r.Dispatched || r.DefaultPrevented {
		t.Errorf("Result = %+v, want dispatched, not prevented", r)
	}
}

func TestEngineVisualDeferred(t *testing.T) {
	var got []*EngineEvent
	e, host := testEngine(func(ev *EngineEvent) { got = append(got, ev) })
	r := e.Process(InputSignal{Action: ActionMove, X: 57, Y: 58, Timestamp: 1})
	if r.Dispatched || r.Priority != PriorityVisual {
		t.Errorf("Result = %+v, want undispatched visual", r)
	}
	if len(got) != 0 {
		t.Fatal("visual dispatched before the frame")
	}
	host.Frame()
	if len(got) != 1 || got[0].Primary == nil {
		t.Errorf("frame dispatched %+v", got)
	}
}

func TestEngineAfterDispose(t *testing.T) {
	calls := 0
	idx := NewSpatialIndex()
	s := NewScheduler(NewLoopHost(), func(*EngineEvent) { calls++ })
	e := NewEngine(StaticLayout(testLayout()), idx, s)
	s.Dispose()
	r := e.Process(InputSignal{Action: ActionStart})
	if r.Dispatched || calls != 0 {
		t.Errorf("Result = %+v calls = %d after Dispose", r, calls)
	}
}

package chartsense

// Result reports what the Engine did with a signal.
type Result struct {
	Priority Priority
	// Dispatched is true when listeners already ran (CRITICAL).
	Dispatched bool
	// DefaultPrevented is meaningful only when Dispatched is true.
	DefaultPrevented bool
}

// Engine turns raw InputSignals into EngineEvents and routes them through a
// Scheduler. It holds no interaction state, so it can be exercised without
// any rendering surface.
type Engine struct {
	layout    LayoutSource
	index     *SpatialIndex
	scheduler *Scheduler
}

// NewEngine creates an Engine. layout may be nil, in which case every
// signal resolves without coordinates.
func NewEngine(layout LayoutSource, index *SpatialIndex, scheduler *Scheduler) *Engine {
	return &Engine{layout: layout, index: index, scheduler: scheduler}
}

// SetLayoutSource replaces the layout used to resolve coordinates.
func (e *Engine) SetLayoutSource(l LayoutSource) {
	e.layout = l
}

// Classify returns the dispatch priority for an action. Gesture start and
// end are CRITICAL so a caller can still suppress the platform default.
func Classify(a Action) Priority {
	switch a {
	case ActionMove:
		return PriorityVisual
	case ActionSync:
		return PriorityIdle
	default:
		return PriorityCritical
	}
}

// Build resolves coordinates and candidates for sig without scheduling it.
func (e *Engine) Build(sig InputSignal) *EngineEvent {
	ev := &EngineEvent{Signal: sig}
	// Key signals carry no position.
	if e.layout == nil || sig.Source == SourceKeyboard {
		return ev
	}
	l, ok := e.layout.Layout()
	if !ok {
		return ev
	}
	coords, ok := l.Resolve(sig.X, sig.Y)
	if !ok {
		return ev
	}
	ev.HasCoordinates = true
	ev.ChartX, ev.ChartY = coords.ChartX, coords.ChartY
	ev.ContainerX, ev.ContainerY = coords.ContainerX, coords.ContainerY
	ev.IsWithinPlot = coords.IsWithinPlot

	if e.index == nil {
		return ev
	}
	ev.Candidates = e.index.Find(Query{
		ChartX: coords.ChartX, ChartY: coords.ChartY,
		ContainerX: coords.ContainerX, ContainerY: coords.ContainerY,
	})
	if p, ok := primaryCandidate(ev.Candidates); ok {
		ev.Primary = &p
	}
	return ev
}

// Process builds the event for sig and hands it to the Scheduler.
func (e *Engine) Process(sig InputSignal) Result {
	ev := e.Build(sig)
	p := Classify(sig.Action)
	e.scheduler.Schedule(p, ev)
	if p != PriorityCritical || e.scheduler.Disposed() {
		return Result{Priority: p}
	}
	return Result{Priority: p, Dispatched: true, DefaultPrevented: ev.DefaultPrevented()}
}

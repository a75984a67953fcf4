package chartsense

// EngineEvent is one signal enriched with coordinates and candidates. It is
// owned by a single dispatch cycle; listeners must not retain it.
type EngineEvent struct {
	Signal     InputSignal
	Candidates []Candidate
	Primary    *Candidate

	ChartX, ChartY         float64
	ContainerX, ContainerY float64
	IsWithinPlot           bool
	// HasCoordinates is false when the container was detached at signal time.
	HasCoordinates bool

	defaultPrevented bool
}

// PreventDefault asks the platform adapter to suppress its default action
// (page scroll on touch drag, focus change on arrow keys). Only honoured for
// CRITICAL events, which are dispatched before the adapter regains control.
func (e *EngineEvent) PreventDefault() {
	e.defaultPrevented = true
}

// DefaultPrevented reports whether a listener called PreventDefault.
func (e *EngineEvent) DefaultPrevented() bool {
	return e.defaultPrevented
}

// Coordinates returns the event position as ChartCoordinates.
func (e *EngineEvent) Coordinates() ChartCoordinates {
	return ChartCoordinates{
		ContainerX:   e.ContainerX,
		ContainerY:   e.ContainerY,
		ChartX:       e.ChartX,
		ChartY:       e.ChartY,
		IsWithinPlot: e.IsWithinPlot,
	}
}

// EventType identifies a kind of chart event on the EventBus.
type EventType uint8

const (
	EventPointerMove  EventType = iota // pointer moved
	EventPointerDown                   // pointer pressed
	EventPointerUp                     // pointer released
	EventPointerLeave                  // pointer left or gesture cancelled
	EventKeyDown                       // key pressed
	EventKeyUp                         // key released
	EventSync                          // background bookkeeping
	numEventTypes
)

// EventTypeFor maps a signal action to the event type it is emitted as.
func EventTypeFor(a Action) EventType {
	switch a {
	case ActionStart:
		return EventPointerDown
	case ActionEnd:
		return EventPointerUp
	case ActionCancel:
		return EventPointerLeave
	case ActionKey:
		return EventKeyDown
	case ActionKeyUp:
		return EventKeyUp
	case ActionSync:
		return EventSync
	default:
		return EventPointerMove
	}
}

// Listener receives chart events.
type Listener func(*EngineEvent)

type listenerEntry struct {
	id uint32
	fn Listener
}

// ListenerHandle identifies one (event type, listener) registration.
type ListenerHandle struct {
	id    uint32
	event EventType
}

// EventBus fans chart events out to listeners and memoizes the last pointer
// position for consumers that only need ambient state. It knows nothing
// about candidates or interaction semantics.
type EventBus struct {
	listeners [numEventTypes][]listenerEntry
	nextID    uint32

	pointer    ChartCoordinates
	hasPointer bool
}

// NewEventBus returns an empty bus.
func NewEventBus() *EventBus {
	return &EventBus{}
}

// On registers fn for events of type t.
func (b *EventBus) On(t EventType, fn Listener) ListenerHandle {
	b.nextID++
	id := b.nextID
	b.listeners[t] = append(b.listeners[t], listenerEntry{id: id, fn: fn})
	return ListenerHandle{id: id, event: t}
}

// Off removes the registration identified by h. Unknown handles are ignored.
func (b *EventBus) Off(h ListenerHandle) {
	if h.id == 0 || h.event >= numEventTypes {
		return
	}
	s := b.listeners[h.event]
	for i := range s {
		if s[i].id == h.id {
			// Copy-on-remove so an in-flight Emit keeps iterating its snapshot.
			next := make([]listenerEntry, 0, len(s)-1)
			next = append(next, s[:i]...)
			next = append(next, s[i+1:]...)
			b.listeners[h.event] = next
			return
		}
	}
}

// Count returns the number of listeners registered for t.
func (b *EventBus) Count(t EventType) int {
	return len(b.listeners[t])
}

// Emit updates the memoized pointer and invokes t's listeners in
// registration order. Listeners added during Emit see only later events.
func (b *EventBus) Emit(t EventType, ev *EngineEvent) {
	switch t {
	case EventPointerMove, EventPointerDown:
		if ev.HasCoordinates {
			b.pointer = ev.Coordinates()
			b.hasPointer = true
		}
	case EventPointerLeave:
		b.pointer = ChartCoordinates{}
		b.hasPointer = false
	}
	for _, l := range b.listeners[t] {
		l.fn(ev)
	}
}

// Pointer returns the last known pointer position. ok is false before any
// pointer event and after the pointer leaves.
func (b *EventBus) Pointer() (ChartCoordinates, bool) {
	return b.pointer, b.hasPointer
}

// IsPointerWithinPlot reports the memoized containment flag.
func (b *EventBus) IsPointerWithinPlot() bool {
	return b.hasPointer && b.pointer.IsWithinPlot
}

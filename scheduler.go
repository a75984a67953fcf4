package chartsense

import "time"

const idleFallbackDelay = 50 * time.Millisecond

// CancelFunc cancels a pending host callback. Calling it after the callback
// ran, or more than once, is a no-op.
type CancelFunc func()

// Host provides the display-refresh callback the Scheduler flushes VISUAL
// work on.
type Host interface {
	RequestFrame(fn func()) CancelFunc
}

// IdleHost is implemented by hosts that can run a callback in a background
// idle window.
type IdleHost interface {
	RequestIdle(fn func()) CancelFunc
}

// TimerHost is implemented by hosts that can run a callback after a delay.
// It is the IDLE fallback when the host has no idle window.
type TimerHost interface {
	AfterFunc(d time.Duration, fn func()) CancelFunc
}

// ScheduledTask is a queued unit of work.
type ScheduledTask struct {
	Priority  Priority
	Event     *EngineEvent
	Timestamp int64
}

// Scheduler decouples when a signal occurred from when its effects are
// computed. CRITICAL tasks run in-call; VISUAL tasks coalesce per input ID
// until the next frame; IDLE tasks run FIFO when the host is idle.
type Scheduler struct {
	host     Host
	dispatch func(*EngineEvent)

	visual      map[int]ScheduledTask
	visualOrder []int
	idle        []ScheduledTask

	cancelFrame CancelFunc
	cancelIdle  CancelFunc
	disposed    bool
}

// NewScheduler creates a Scheduler that hands events to dispatch.
func NewScheduler(host Host, dispatch func(*EngineEvent)) *Scheduler {
	return &Scheduler{
		host:     host,
		dispatch: dispatch,
		visual:   make(map[int]ScheduledTask),
	}
}

// Schedule enqueues or dispatches ev according to p. For CRITICAL it returns
// only after the event was dispatched.
func (s *Scheduler) Schedule(p Priority, ev *EngineEvent) {
	if s.disposed || ev == nil {
		return
	}
	task := ScheduledTask{Priority: p, Event: ev, Timestamp: ev.Signal.Timestamp}
	switch p {
	case PriorityCritical:
		if a := ev.Signal.Action; a == ActionEnd || a == ActionCancel {
			s.dropVisual(ev.Signal.ID)
		}
		s.dispatch(ev)
	case PriorityVisual:
		id := ev.Signal.ID
		prev, queued := s.visual[id]
		if !queued {
			s.visualOrder = append(s.visualOrder, id)
		} else if prev.Timestamp > task.Timestamp {
			// An out-of-order older signal never replaces a newer one.
			return
		}
		s.visual[id] = task
		s.requestFrame()
	case PriorityIdle:
		s.idle = append(s.idle, task)
		s.requestIdle()
	}
}

// dropVisual discards the queued move for id, which a release or cancel has
// made stale.
func (s *Scheduler) dropVisual(id int) {
	if _, ok := s.visual[id]; !ok {
		return
	}
	delete(s.visual, id)
	for i, v := range s.visualOrder {
		if v == id {
			s.visualOrder = append(s.visualOrder[:i], s.visualOrder[i+1:]...)
			break
		}
	}
}

// PendingVisual returns the number of coalesced VISUAL tasks awaiting a frame.
func (s *Scheduler) PendingVisual() int {
	return len(s.visualOrder)
}

// PendingIdle returns the number of queued IDLE tasks.
func (s *Scheduler) PendingIdle() int {
	return len(s.idle)
}

func (s *Scheduler) requestFrame() {
	if s.cancelFrame != nil || s.host == nil {
		return
	}
	s.cancelFrame = s.host.RequestFrame(s.onFrame)
}

func (s *Scheduler) requestIdle() {
	if s.cancelIdle != nil || s.host == nil {
		return
	}
	switch h := s.host.(type) {
	case IdleHost:
		s.cancelIdle = h.RequestIdle(s.onIdle)
	case TimerHost:
		s.cancelIdle = h.AfterFunc(idleFallbackDelay, s.onIdle)
	}
}

func (s *Scheduler) onFrame() {
	s.cancelFrame = nil
	s.Flush()
}

func (s *Scheduler) onIdle() {
	s.cancelIdle = nil
	s.FlushIdle()
}

// Flush dispatches every coalesced VISUAL task now, in first-arrival order.
// Tasks scheduled by listeners during the flush wait for the next frame.
func (s *Scheduler) Flush() {
	if len(s.visualOrder) == 0 {
		return
	}
	order := s.visualOrder
	tasks := s.visual
	s.visualOrder = nil
	s.visual = make(map[int]ScheduledTask, len(tasks))
	for _, id := range order {
		if s.disposed {
			return
		}
		s.dispatch(tasks[id].Event)
	}
}

// FlushIdle dispatches every queued IDLE task now, oldest first.
func (s *Scheduler) FlushIdle() {
	if len(s.idle) == 0 {
		return
	}
	queue := s.idle
	s.idle = nil
	for _, t := range queue {
		if s.disposed {
			return
		}
		s.dispatch(t.Event)
	}
}

// Dispose cancels pending host callbacks and drops both queues. Later
// Schedule calls are ignored. Call it on teardown so nothing dispatches into
// a destroyed chart.
func (s *Scheduler) Dispose() {
	if s.disposed {
		return
	}
	s.disposed = true
	if s.cancelFrame != nil {
		s.cancelFrame()
		s.cancelFrame = nil
	}
	if s.cancelIdle != nil {
		s.cancelIdle()
		s.cancelIdle = nil
	}
	s.visual = make(map[int]ScheduledTask)
	s.visualOrder = nil
	s.idle = nil
}

// Disposed reports whether Dispose was called.
func (s *Scheduler) Disposed() bool {
	return s.disposed
}

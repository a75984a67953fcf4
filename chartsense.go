package chartsense

// Vec2 is a 2D vector used for positions and offsets throughout the API.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.Width }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Insets holds per-edge distances (border widths, padding, plot margins).
type Insets struct {
	Top, Right, Bottom, Left float64
}

// Horizontal returns Left + Right.
func (in Insets) Horizontal() float64 { return in.Left + in.Right }

// Vertical returns Top + Bottom.
func (in Insets) Vertical() float64 { return in.Top + in.Bottom }

// Action identifies what an InputSignal represents.
type Action uint8

const (
	ActionStart  Action = iota // pointer pressed / touch began
	ActionMove                 // pointer moved (pressed or hovering)
	ActionEnd                  // pointer released / touch ended
	ActionCancel               // pointer left the chart or the gesture was aborted
	ActionKey                  // key pressed
	ActionKeyUp                // key released
	ActionSync                 // background bookkeeping, never urgent
)

var actionNames = [...]string{"start", "move", "end", "cancel", "key", "keyup", "sync"}

func (a Action) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return "unknown"
}

// Source identifies the device that produced an InputSignal.
type Source uint8

const (
	SourceMouse    Source = iota // mouse or trackpad
	SourceTouch                  // finger or stylus
	SourceKeyboard               // keyboard navigation
)

var sourceNames = [...]string{"mouse", "touch", "keyboard"}

func (s Source) String() string {
	if int(s) < len(sourceNames) {
		return sourceNames[s]
	}
	return "unknown"
}

// InputSignal is one normalized native input. X and Y are screen coordinates.
// ID identifies the input stream (pointer slot); VISUAL coalescing is keyed by it.
type InputSignal struct {
	ID        int
	Action    Action
	Source    Source
	X, Y      float64
	Key       string
	Timestamp int64 // monotonic, caller-defined unit (milliseconds in the adapters)
}

// Priority selects when a scheduled event is dispatched.
type Priority uint8

const (
	PriorityCritical Priority = iota // synchronous, in-call
	PriorityVisual                   // next frame, coalesced per input ID
	PriorityIdle                     // background idle window, FIFO
)

var priorityNames = [...]string{"critical", "visual", "idle"}

func (p Priority) String() string {
	if int(p) < len(priorityNames) {
		return priorityNames[p]
	}
	return "unknown"
}

// Channel names a slot in the interaction Store.
type Channel string

// Well-known channels used by the built-in sensors and behaviors.
const (
	ChannelHover         Channel = "primary-hover"
	ChannelDrag          Channel = "drag"
	ChannelSelection     Channel = "selection"
	ChannelKeyboardFocus Channel = "keyboard-focus"
	ChannelTooltipConfig Channel = "tooltip-config"
)

// Key names delivered in InputSignal.Key by the platform adapters.
const (
	KeyArrowLeft  = "ArrowLeft"
	KeyArrowRight = "ArrowRight"
	KeyHome       = "Home"
	KeyEnd        = "End"
	KeyEscape     = "Escape"
)

// MarkKind tags what a rendered element or a registered point represents.
type MarkKind uint8

const (
	MarkPoint MarkKind = iota // a single datum (dot, line vertex)
	MarkBar                   // a single datum drawn as a bar
	MarkGroup                 // an aggregate (stack, series container); never a hit target
)

// Disposable releases whatever an Attach call acquired.
type Disposable interface {
	Dispose()
}

// DisposeFunc adapts a plain function to Disposable.
type DisposeFunc func()

// Dispose calls f. A nil DisposeFunc is a no-op.
func (f DisposeFunc) Dispose() {
	if f != nil {
		f()
	}
}

// noopDisposable is returned when there is nothing to attach to.
var noopDisposable Disposable = DisposeFunc(nil)

package chartsense

import (
	"bytes"
	"fmt"
	"math"
	"testing"
)

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

// sample is the datum type of the test chart.
type sample struct {
	i int
	v float64
}

func (s *sample) String() string { return fmt.Sprintf("v=%g", s.v) }

// testLayout is a 200x100 container at the screen origin with 10px plot
// margins, so the plot is {10, 10, 180, 80}.
func testLayout() Layout {
	return Layout{
		Container: Rect{Width: 200, Height: 100},
		Margins:   &Insets{Top: 10, Right: 10, Bottom: 10, Left: 10},
		Attached:  true,
	}
}

var testValues = []float64{2, 4, 6, 8, 10}

// fixture is a mounted chart with one series "a" of five points. Point i
// sits at plot (45i, 80-8v), i.e. screen (10+45i, 90-8v).
type fixture struct {
	chart   *Chart
	surface *Surface
	cc      *ChartContext
	data    []*sample
	marks   []*Element
	out     *bytes.Buffer
	ts      int64
}

func newFixture(t *testing.T, cfg Config) *fixture {
	t.Helper()
	f := &fixture{surface: NewSurface(), out: &bytes.Buffer{}}
	cfg.Debug = true
	cfg.DebugOutput = f.out
	f.chart = NewChart(cfg)

	layout := testLayout()
	xs := LinearScale{Domain: [2]float64{0, 4}, Range: [2]float64{0, 180}}
	ys := LinearScale{Domain: [2]float64{0, 10}, Range: [2]float64{80, 0}}

	var pts []Point
	var data []any
	for i, v := range testValues {
		d := &sample{i: i, v: v}
		f.data = append(f.data, d)
		data = append(data, d)
		px, py := xs.Map(float64(i)), ys.Map(v)
		pts = append(pts, Point{X: px, Y: py, Data: d, SeriesID: "a", DataIndex: i})

		cx, cy := layout.PlotToContainer(px, py)
		m := NewMark(fmt.Sprintf("a-%d", i), ElementTag{Kind: MarkPoint, SeriesID: "a", DataIndex: i},
			Rect{X: cx - 3, Y: cy - 3, Width: 6, Height: 6}, d)
		f.marks = append(f.marks, m)
		f.surface.Root().AddChild(m)
	}

	f.cc = &ChartContext{
		Surface:  f.surface,
		Layout:   layout,
		XScale:   xs,
		YScale:   ys,
		Data:     data,
		X:        func(v any) float64 { return float64(v.(*sample).i) },
		Y:        func(v any) float64 { return v.(*sample).v },
		SeriesID: "a",
	}
	f.chart.SetLayout(layout)
	f.chart.SetChartContext(f.cc)
	f.chart.SetPoints(pts)
	f.chart.Mount()
	return f
}

// screenOf returns the screen position of point i.
func (f *fixture) screenOf(i int) (float64, float64) {
	return 10 + 45*float64(i), 90 - 8*testValues[i]
}

func (f *fixture) signal(a Action, src Source, x, y float64) Result {
	f.ts++
	return f.chart.HandleInput(InputSignal{Action: a, Source: src, X: x, Y: y, Timestamp: f.ts})
}

// hover moves the mouse onto point i and flushes the frame.
func (f *fixture) hover(i int) {
	x, y := f.screenOf(i)
	f.signal(ActionMove, SourceMouse, x, y)
	f.frame()
}

func (f *fixture) leave() Result {
	return f.signal(ActionCancel, SourceMouse, 0, 0)
}

func (f *fixture) key(k string) Result {
	f.ts++
	return f.chart.HandleInput(InputSignal{Action: ActionKey, Source: SourceKeyboard, Key: k, Timestamp: f.ts})
}

// frame runs one zero-length frame.
func (f *fixture) frame() {
	f.chart.Update(0)
}

func (f *fixture) interaction(ch Channel) (Interaction, bool) {
	return f.chart.Store().Get(ch)
}

type recordingSink struct {
	changes []Change
}

func (s *recordingSink) EmitInteraction(c Change) {
	s.changes = append(s.changes, c)
}

type stubLocator struct {
	tags   []ElementTag
	gotX   float64
	gotY   float64
	called int
}

func (l *stubLocator) ElementsAt(x, y float64) []ElementTag {
	l.called++
	l.gotX, l.gotY = x, y
	return l.tags
}

package ebitenchart

import (
	"image/color"
	"testing"

	"github.com/phanxgames/chartsense"
)

type recorder struct {
	sigs []chartsense.InputSignal
}

func (r *recorder) emit(sig chartsense.InputSignal) {
	r.sigs = append(r.sigs, sig)
}

func (r *recorder) actions() []chartsense.Action {
	out := make([]chartsense.Action, len(r.sigs))
	for i, s := range r.sigs {
		out[i] = s.Action
	}
	return out
}

func equalActions(a, b []chartsense.Action) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestTrackerPressDragRelease(t *testing.T) {
	var tr tracker
	var rec recorder
	tr.sample(0, chartsense.SourceMouse, 10, 10, false, 1, rec.emit)
	tr.sample(0, chartsense.SourceMouse, 10, 10, false, 2, rec.emit) // unchanged
	tr.sample(0, chartsense.SourceMouse, 10, 10, true, 3, rec.emit)
	tr.sample(0, chartsense.SourceMouse, 12, 10, true, 4, rec.emit)
	tr.sample(0, chartsense.SourceMouse, 12, 10, false, 5, rec.emit)

	want := []chartsense.Action{
		chartsense.ActionMove,
		chartsense.ActionStart,
		chartsense.ActionMove,
		chartsense.ActionEnd,
	}
	if got := rec.actions(); !equalActions(got, want) {
		t.Fatalf("actions = %v, want %v", got, want)
	}
	if rec.sigs[2].X != 12 || rec.sigs[2].Timestamp != 4 {
		t.Errorf("move signal = %+v", rec.sigs[2])
	}
}

func TestTrackerLeavesOnceOutsideBounds(t *testing.T) {
	tr := tracker{bounds: chartsense.Rect{Width: 100, Height: 100}}
	var rec recorder
	tr.sample(0, chartsense.SourceMouse, 50, 50, false, 1, rec.emit)
	tr.sample(0, chartsense.SourceMouse, 150, 50, false, 2, rec.emit)
	tr.sample(0, chartsense.SourceMouse, 160, 50, false, 3, rec.emit)
	tr.sample(0, chartsense.SourceMouse, 50, 60, false, 4, rec.emit)

	want := []chartsense.Action{
		chartsense.ActionMove,
		chartsense.ActionCancel,
		chartsense.ActionMove,
	}
	if got := rec.actions(); !equalActions(got, want) {
		t.Fatalf("actions = %v, want %v", got, want)
	}
}

func TestTrackerPressedPointerKeepsMovingOutside(t *testing.T) {
	tr := tracker{bounds: chartsense.Rect{Width: 100, Height: 100}}
	var rec recorder
	tr.sample(1, chartsense.SourceTouch, 50, 50, true, 1, rec.emit)
	tr.sample(1, chartsense.SourceTouch, 120, 50, true, 2, rec.emit)

	want := []chartsense.Action{chartsense.ActionStart, chartsense.ActionMove}
	if got := rec.actions(); !equalActions(got, want) {
		t.Fatalf("actions = %v, want %v", got, want)
	}
}

func TestTrackerReleaseLiftedTouch(t *testing.T) {
	var tr tracker
	var rec recorder
	tr.sample(3, chartsense.SourceTouch, 20, 30, true, 1, rec.emit)
	tr.release(3, chartsense.SourceTouch, 2, rec.emit)

	want := []chartsense.Action{chartsense.ActionStart, chartsense.ActionEnd, chartsense.ActionCancel}
	if got := rec.actions(); !equalActions(got, want) {
		t.Fatalf("actions = %v, want %v", got, want)
	}
	end := rec.sigs[1]
	if end.ID != 3 || end.X != 20 || end.Y != 30 {
		t.Errorf("end = %+v, want id 3 at (20, 30)", end)
	}
	if tr.pointers[3].seen {
		t.Error("pointer state should reset after release")
	}
}

func TestToRGBA(t *testing.T) {
	tests := []struct {
		name  string
		c     chartsense.Color
		alpha float64
		want  color.RGBA
	}{
		{"opaque white", chartsense.ColorWhite, 1, color.RGBA{255, 255, 255, 255}},
		{"half alpha premultiplies", chartsense.Color{R: 1, A: 1}, 0.5, color.RGBA{128, 0, 0, 128}},
		{"clamped", chartsense.Color{R: 2, G: -1, B: 0, A: 1}, 1, color.RGBA{255, 0, 0, 255}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := toRGBA(tt.c, tt.alpha); got != tt.want {
				t.Errorf("toRGBA = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestContainerOrigin(t *testing.T) {
	l := chartsense.Layout{
		Container: chartsense.Rect{X: 100, Y: 50, Width: 400, Height: 300},
		Border:    chartsense.Insets{Left: 2, Top: 3},
	}
	got := ContainerOrigin(l)
	if got.X != 102 || got.Y != 53 {
		t.Errorf("ContainerOrigin = %+v, want (102, 53)", got)
	}
}

package chartsense

import (
	"errors"
	"strings"
	"testing"
)

func TestStoreClaims(t *testing.T) {
	s := NewStore()
	if err := s.Claim(ChannelHover, "a"); err != nil {
		t.Fatalf("first claim: %v", err)
	}
	if err := s.Claim(ChannelHover, "a"); err != nil {
		t.Errorf("re-claim by owner: %v", err)
	}
	err := s.Claim(ChannelHover, "b")
	if !errors.Is(err, ErrChannelClaimed) {
		t.Errorf("second writer claim = %v, want ErrChannelClaimed", err)
	}
	if o, _ := s.Owner(ChannelHover); o != "a" {
		t.Errorf("owner = %q, want a", o)
	}

	s.Release(ChannelHover, "b")
	if _, ok := s.Owner(ChannelHover); !ok {
		t.Error("release by non-owner dropped the claim")
	}
	s.Release(ChannelHover, "a")
	if err := s.Claim(ChannelHover, "b"); err != nil {
		t.Errorf("claim after release: %v", err)
	}
}

func TestStoreWritesRequireOwnership(t *testing.T) {
	s := NewStore()
	_ = s.Claim(ChannelDrag, "owner")
	tests := []struct {
		name string
		op   func() error
	}{
		{"upsert unclaimed", func() error { return s.Upsert(ChannelHover, "owner", HoverInteraction{}) }},
		{"upsert non-owner", func() error { return s.Upsert(ChannelDrag, "intruder", DragInteraction{}) }},
		{"remove non-owner", func() error { return s.Remove(ChannelDrag, "intruder") }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.op(); !errors.Is(err, ErrNotChannelOwner) {
				t.Errorf("err = %v, want ErrNotChannelOwner", err)
			}
		})
	}
	if _, ok := s.Get(ChannelDrag); ok {
		t.Error("rejected write reached the store")
	}
}

func TestStoreNotifications(t *testing.T) {
	s := NewStore()
	sink := &recordingSink{}
	s.SetSink(sink)
	_ = s.Claim(ChannelSelection, "sel")

	var order []string
	s.Subscribe(func(c Change) { order = append(order, "first:"+string(c.Channel)) })
	sub := s.Subscribe(func(c Change) { order = append(order, "second") })

	if err := s.Remove(ChannelSelection, "sel"); err != nil {
		t.Fatal(err)
	}
	if len(order) != 0 || len(sink.changes) != 0 {
		t.Fatal("removing an absent record notified")
	}

	v := SelectionInteraction{Selected: []any{1}}
	_ = s.Upsert(ChannelSelection, "sel", v)
	if len(order) != 2 || order[0] != "first:selection" || order[1] != "second" {
		t.Errorf("order = %v", order)
	}
	if len(sink.changes) != 1 || sink.changes[0].Removed {
		t.Fatalf("sink = %+v", sink.changes)
	}
	if got, ok := sink.changes[0].Value.(SelectionInteraction); !ok || !got.Contains(1) {
		t.Errorf("sink value = %+v", sink.changes[0].Value)
	}

	sub.Unsubscribe()
	sub.Unsubscribe()
	order = nil
	_ = s.Remove(ChannelSelection, "sel")
	if len(order) != 1 {
		t.Errorf("order after unsubscribe = %v", order)
	}
	if last := sink.changes[len(sink.changes)-1]; !last.Removed || last.Value != nil {
		t.Errorf("removal change = %+v", last)
	}
}

func TestStoreClaimConflictDiagnostics(t *testing.T) {
	f := newFixture(t, Config{Sensors: []Sensor{&HoverSensor{}, &HoverSensor{}}})
	out := f.out.String()
	if !strings.Contains(out, "not attached") || !strings.Contains(out, "already claimed") {
		t.Errorf("diagnostics = %q, want claim conflict for the second hover sensor", out)
	}
	// The first sensor still works.
	f.hover(1)
	if _, ok := f.interaction(ChannelHover); !ok {
		t.Error("hover missing after conflict")
	}
}

type claimingSensor struct {
	ch  Channel
	ctx *Context
}

func (s *claimingSensor) Attach(ctx *Context) Disposable {
	s.ctx = ctx
	if err := ctx.Claim(s.ch); err != nil {
		return noopDisposable
	}
	return noopDisposable
}

func TestContextDisposeCleansUp(t *testing.T) {
	c := NewChart(Config{})
	s := &claimingSensor{ch: "custom"}
	detach := c.Attach(s)
	ctx := s.ctx

	moves := 0
	ctx.On(EventPointerMove, func(*EngineEvent) { moves++ })
	changes := 0
	ctx.Subscribe(func(Change) { changes++ })
	if err := ctx.UpsertInteraction("custom", KeyboardFocus{Index: 3}); err != nil {
		t.Fatal(err)
	}
	if changes != 1 {
		t.Fatalf("changes = %d", changes)
	}

	detach.Dispose()
	if _, ok := c.Store().Get("custom"); ok {
		t.Error("owned record survived Dispose")
	}
	if _, ok := c.Store().Owner("custom"); ok {
		t.Error("claim survived Dispose")
	}
	c.Bus().Emit(EventPointerMove, &EngineEvent{})
	if moves != 0 {
		t.Error("listener survived Dispose")
	}
	if changes != 1 {
		t.Errorf("subscriber notified of its own cleanup: changes = %d", changes)
	}

	if err := ctx.Claim("other"); !errors.Is(err, ErrDisposed) {
		t.Errorf("Claim after Dispose = %v, want ErrDisposed", err)
	}
	if err := ctx.UpsertInteraction("custom", KeyboardFocus{}); !errors.Is(err, ErrDisposed) {
		t.Errorf("Upsert after Dispose = %v, want ErrDisposed", err)
	}
	if err := ctx.RemoveInteraction("custom"); !errors.Is(err, ErrDisposed) {
		t.Errorf("Remove after Dispose = %v, want ErrDisposed", err)
	}
	if h := ctx.On(EventPointerMove, func(*EngineEvent) {}); h != (ListenerHandle{}) {
		t.Error("On after Dispose registered a listener")
	}
}

func TestContextEmitNilEvent(t *testing.T) {
	c := NewChart(Config{})
	s := &claimingSensor{ch: "custom"}
	c.Attach(s)
	called := false
	s.ctx.On(EventPointerMove, func(*EngineEvent) { called = true })
	s.ctx.Emit(EventPointerMove, nil)
	if called {
		t.Error("listener invoked for a nil event")
	}
}

func TestContextOwnerNames(t *testing.T) {
	c := NewChart(Config{})
	a, b := &claimingSensor{ch: "x"}, &claimingSensor{ch: "y"}
	c.Attach(a)
	c.Attach(b)
	if a.ctx.Owner() == b.ctx.Owner() {
		t.Errorf("two attachments share owner %q", a.ctx.Owner())
	}
	if !strings.HasPrefix(a.ctx.Owner(), "*chartsense.claimingSensor#") {
		t.Errorf("owner = %q", a.ctx.Owner())
	}
}

func TestSelectionContains(t *testing.T) {
	a, b := &sample{i: 0}, &sample{i: 0}
	sel := SelectionInteraction{Selected: []any{a, "x", 3}}
	tests := []struct {
		v    any
		want bool
	}{
		{a, true},
		{b, false},
		{"x", true},
		{3, true},
		{4, false},
		{[]int{1}, false},
	}
	for _, tt := range tests {
		if got := sel.Contains(tt.v); got != tt.want {
			t.Errorf("Contains(%v) = %v, want %v", tt.v, got, tt.want)
		}
	}
}

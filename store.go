package chartsense

import (
	"errors"
	"fmt"
)

var (
	// ErrChannelClaimed is returned when a channel already has a writer.
	ErrChannelClaimed = errors.New("chartsense: channel already claimed")
	// ErrNotChannelOwner is returned when a writer that does not hold the
	// channel's claim tries to change it.
	ErrNotChannelOwner = errors.New("chartsense: not the channel owner")
	// ErrDisposed is returned by operations on a disposed Context.
	ErrDisposed = errors.New("chartsense: context disposed")
)

// Interaction is a record stored on a channel. Exactly one writer produces
// it; any number of readers observe it.
type Interaction interface {
	InteractionKind() string
}

// HoverInteraction is written by the hover sensor.
type HoverInteraction struct {
	Pointer ChartCoordinates
	Targets []Candidate
	Source  Source
}

// InteractionKind implements Interaction.
func (HoverInteraction) InteractionKind() string { return "hover" }

// DragValue is a pixel position mapped back through the chart scales.
type DragValue struct {
	X, Y float64
}

// DragInteraction is written by the drag sensor while a drag is active.
type DragInteraction struct {
	Target  Candidate
	Start   Vec2 // plot-relative
	Current Vec2 // plot-relative
	Value   DragValue
}

// InteractionKind implements Interaction.
func (DragInteraction) InteractionKind() string { return "drag" }

// SelectionInteraction is written by the selection sensor.
type SelectionInteraction struct {
	Selected []any
}

// InteractionKind implements Interaction.
func (SelectionInteraction) InteractionKind() string { return "selection" }

// Contains reports whether datum is selected.
func (s SelectionInteraction) Contains(datum any) bool {
	return indexOfDatum(s.Selected, datum) >= 0
}

// KeyboardFocus is written by the keyboard sensor.
type KeyboardFocus struct {
	Index     int
	Candidate Candidate
}

// InteractionKind implements Interaction.
func (KeyboardFocus) InteractionKind() string { return "keyboard-focus" }

// TooltipRenderer turns the interaction on a tooltip's channel into text.
type TooltipRenderer func(Interaction) string

// TooltipConfig is published by the tooltip behavior so a separate tooltip
// layer renders consistently.
type TooltipConfig struct {
	Channel Channel
	Render  TooltipRenderer
}

// InteractionKind implements Interaction.
func (TooltipConfig) InteractionKind() string { return "tooltip-config" }

// Change describes one store mutation. Value is nil for removals.
type Change struct {
	Channel Channel
	Value   Interaction
	Removed bool
}

// InteractionSink receives every store change. Used to bridge interaction
// records into an ECS world.
type InteractionSink interface {
	EmitInteraction(change Change)
}

type subscriber struct {
	id uint32
	fn func(Change)
}

// Subscription removes a store subscriber.
type Subscription struct {
	id    uint32
	store *Store
}

// Unsubscribe stops further notifications. Safe to call more than once.
func (s Subscription) Unsubscribe() {
	if s.store == nil {
		return
	}
	st := s.store
	for i := range st.subs {
		if st.subs[i].id == s.id {
			next := make([]subscriber, 0, len(st.subs)-1)
			next = append(next, st.subs[:i]...)
			next = append(next, st.subs[i+1:]...)
			st.subs = next
			return
		}
	}
}

// Store is the channel-keyed interaction map, the only shared mutable state
// between sensors and behaviors. Each channel has at most one writer.
type Store struct {
	values map[Channel]Interaction
	owners map[Channel]string
	subs   []subscriber
	nextID uint32
	sink   InteractionSink
	diag   *Diagnostics
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{
		values: make(map[Channel]Interaction),
		owners: make(map[Channel]string),
	}
}

// SetSink forwards every change to sink. Nil disables forwarding.
func (s *Store) SetSink(sink InteractionSink) {
	s.sink = sink
}

// SetDiagnostics routes claim conflicts to d.
func (s *Store) SetDiagnostics(d *Diagnostics) {
	s.diag = d
}

// Claim makes owner the only writer of ch. Claiming a channel you already
// own is a no-op.
func (s *Store) Claim(ch Channel, owner string) error {
	if cur, ok := s.owners[ch]; ok && cur != owner {
		s.diag.Warnf("channel %q claimed by %q, rejected claim from %q", ch, cur, owner)
		return fmt.Errorf("claim %q by %q: %w (owner %q)", ch, owner, ErrChannelClaimed, cur)
	}
	s.owners[ch] = owner
	return nil
}

// Release gives up owner's claim on ch.
func (s *Store) Release(ch Channel, owner string) {
	if s.owners[ch] == owner {
		delete(s.owners, ch)
	}
}

// Owner returns the current writer of ch.
func (s *Store) Owner(ch Channel) (string, bool) {
	o, ok := s.owners[ch]
	return o, ok
}

func (s *Store) checkOwner(ch Channel, owner string) error {
	cur, ok := s.owners[ch]
	if !ok || cur != owner {
		return fmt.Errorf("write %q by %q: %w", ch, owner, ErrNotChannelOwner)
	}
	return nil
}

// Upsert replaces the record on ch and notifies subscribers.
func (s *Store) Upsert(ch Channel, owner string, v Interaction) error {
	if err := s.checkOwner(ch, owner); err != nil {
		return err
	}
	s.values[ch] = v
	s.notify(Change{Channel: ch, Value: v})
	return nil
}

// Remove deletes the record on ch. Removing an absent record does not notify.
func (s *Store) Remove(ch Channel, owner string) error {
	if err := s.checkOwner(ch, owner); err != nil {
		return err
	}
	if _, ok := s.values[ch]; !ok {
		return nil
	}
	delete(s.values, ch)
	s.notify(Change{Channel: ch, Removed: true})
	return nil
}

// Get returns the record on ch.
func (s *Store) Get(ch Channel) (Interaction, bool) {
	v, ok := s.values[ch]
	return v, ok
}

// Subscribe registers fn for every change, in subscription order.
func (s *Store) Subscribe(fn func(Change)) Subscription {
	s.nextID++
	s.subs = append(s.subs, subscriber{id: s.nextID, fn: fn})
	return Subscription{id: s.nextID, store: s}
}

func (s *Store) notify(c Change) {
	for _, sub := range s.subs {
		sub.fn(c)
	}
	if s.sink != nil {
		s.sink.EmitInteraction(c)
	}
}

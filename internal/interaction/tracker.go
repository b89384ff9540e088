// Package interaction holds the single source of truth for pointer and
// scroll state. One Tracker is created per session and handed to every
// component that renders from it.
package interaction

import (
	"sort"
	"sync"
)

type CursorVariant int

const (
	CursorDefault CursorVariant = iota
	CursorHover
	CursorClick
)

func (v CursorVariant) String() string {
	switch v {
	case CursorHover:
		return "hover"
	case CursorClick:
		return "click"
	default:
		return "default"
	}
}

type Point struct {
	X, Y float64
}

// State is a read-only snapshot handed to subscribers.
type State struct {
	Pointer        Point
	Hovering       bool
	Variant        CursorVariant
	ScrollProgress float64 // 0-100
	ScrollingDown  bool
}

// ScrollSource exposes the host's current scroll geometry.
type ScrollSource interface {
	ScrollOffset() float64
	ScrollableHeight() float64
}

// ScrollProgress returns offset/scrollable as a percentage clamped to
// [0,100]; a page without overflow has no progress.
func ScrollProgress(offset, scrollable float64) float64 {
	if scrollable <= 0 {
		return 0
	}
	p := offset / scrollable * 100
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// Tracker is written by the host event handlers and read by any number of
// subscribers. Writes made while detached are dropped.
type Tracker struct {
	mu         sync.RWMutex
	state      State
	lastOffset float64
	source     ScrollSource
	attached   bool

	subs   map[int]func(State)
	nextID int
}

func NewTracker() *Tracker {
	return &Tracker{
		state: State{ScrollingDown: true},
		subs:  make(map[int]func(State)),
	}
}

// Attach starts tracking src and samples the scroll position right away,
// since the page may already be scrolled.
func (t *Tracker) Attach(src ScrollSource) {
	t.mu.Lock()
	t.source = src
	t.attached = true
	t.mu.Unlock()

	t.OnScroll()
}

// Detach stops tracking. Later events leave the state untouched and no
// subscriber is notified.
func (t *Tracker) Detach() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.attached = false
	t.source = nil
}

func (t *Tracker) Attached() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.attached
}

func (t *Tracker) OnPointerMove(x, y float64) {
	t.update(func(s *State) {
		s.Pointer = Point{X: x, Y: y}
	})
}

// OnScroll reads the scroll source and refreshes progress and direction.
// Direction only changes on a strict increase or decrease of the offset.
func (t *Tracker) OnScroll() {
	t.mu.RLock()
	src := t.source
	t.mu.RUnlock()
	if src == nil {
		return
	}
	offset, scrollable := src.ScrollOffset(), src.ScrollableHeight()

	t.update(func(s *State) {
		s.ScrollProgress = ScrollProgress(offset, scrollable)
		switch {
		case offset > t.lastOffset:
			s.ScrollingDown = true
		case offset < t.lastOffset:
			s.ScrollingDown = false
		}
		t.lastOffset = offset
	})
}

// SetCursorVariant requests a cursor appearance; the last call wins.
func (t *Tracker) SetCursorVariant(v CursorVariant) {
	t.update(func(s *State) {
		s.Variant = v
	})
}

func (t *Tracker) SetHovering(hovering bool) {
	t.update(func(s *State) {
		s.Hovering = hovering
	})
}

func (t *Tracker) Snapshot() State {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.state
}

// Subscribe registers fn to receive every new state. fn is called
// immediately with the current state. The returned func unregisters it.
func (t *Tracker) Subscribe(fn func(State)) func() {
	t.mu.Lock()
	id := t.nextID
	t.nextID++
	t.subs[id] = fn
	current := t.state
	t.mu.Unlock()

	fn(current)

	return func() {
		t.mu.Lock()
		delete(t.subs, id)
		t.mu.Unlock()
	}
}

// update applies mutate under the lock and notifies subscribers outside
// of it when the state actually changed.
func (t *Tracker) update(mutate func(*State)) {
	t.mu.Lock()
	if !t.attached {
		t.mu.Unlock()
		return
	}
	before := t.state
	mutate(&t.state)
	after := t.state
	if before == after {
		t.mu.Unlock()
		return
	}
	subs := t.subscribers()
	t.mu.Unlock()

	for _, fn := range subs {
		fn(after)
	}
}

// subscribers returns callbacks in registration order. Caller holds mu.
func (t *Tracker) subscribers() []func(State) {
	ids := make([]int, 0, len(t.subs))
	for id := range t.subs {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	out := make([]func(State), 0, len(ids))
	for _, id := range ids {
		out = append(out, t.subs[id])
	}
	return out
}

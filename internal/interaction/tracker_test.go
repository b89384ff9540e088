package interaction

import (
	"sync"
	"testing"
)

type fakeScroll struct {
	offset, scrollable float64
}

func (f *fakeScroll) ScrollOffset() float64     { return f.offset }
func (f *fakeScroll) ScrollableHeight() float64 { return f.scrollable }

func TestScrollProgress(t *testing.T) {
	tests := []struct {
		offset, scrollable, want float64
	}{
		{0, 0, 0},
		{100, 0, 0},
		{100, -50, 0},
		{0, 500, 0},
		{250, 500, 50},
		{500, 500, 100},
		{700, 500, 100},
		{-20, 500, 0},
	}
	for _, tt := range tests {
		if got := ScrollProgress(tt.offset, tt.scrollable); got != tt.want {
			t.Errorf("ScrollProgress(%v, %v) = %v, want %v", tt.offset, tt.scrollable, got, tt.want)
		}
	}
}

func TestInitialState(t *testing.T) {
	tr := NewTracker()
	s := tr.Snapshot()

	if s.Pointer != (Point{}) {
		t.Errorf("Expected pointer at origin, got %+v", s.Pointer)
	}
	if s.Variant != CursorDefault || s.Hovering {
		t.Errorf("Expected default, non-hovering cursor, got %v/%v", s.Variant, s.Hovering)
	}
	if s.ScrollProgress != 0 {
		t.Errorf("Expected no progress before attach, got %v", s.ScrollProgress)
	}
}

func TestAttachSamplesScrollImmediately(t *testing.T) {
	tr := NewTracker()
	tr.Attach(&fakeScroll{offset: 300, scrollable: 600})

	if got := tr.Snapshot().ScrollProgress; got != 50 {
		t.Errorf("Expected progress 50 right after attach, got %v", got)
	}
	if !tr.Attached() {
		t.Error("Tracker should report attached")
	}
}

func TestOnScrollDirection(t *testing.T) {
	src := &fakeScroll{scrollable: 1000}
	tr := NewTracker()
	tr.Attach(src)

	src.offset = 200
	tr.OnScroll()
	if !tr.Snapshot().ScrollingDown {
		t.Error("Offset increase should set scrolling down")
	}

	src.offset = 100
	tr.OnScroll()
	if tr.Snapshot().ScrollingDown {
		t.Error("Offset decrease should clear scrolling down")
	}

	tr.OnScroll()
	if tr.Snapshot().ScrollingDown {
		t.Error("Equal offset must not toggle direction")
	}

	src.offset = 1000
	tr.OnScroll()
	s := tr.Snapshot()
	if !s.ScrollingDown || s.ScrollProgress != 100 {
		t.Errorf("Expected bottom of page scrolling down, got %+v", s)
	}
}

func TestPointerAndCursorSetters(t *testing.T) {
	tr := NewTracker()
	tr.Attach(&fakeScroll{})

	tr.OnPointerMove(12.5, 40)
	tr.OnPointerMove(30, 41)
	if got := tr.Snapshot().Pointer; got != (Point{X: 30, Y: 41}) {
		t.Errorf("Expected last pointer position, got %+v", got)
	}

	tr.SetCursorVariant(CursorHover)
	tr.SetCursorVariant(CursorClick)
	tr.SetHovering(true)
	s := tr.Snapshot()
	if s.Variant != CursorClick || !s.Hovering {
		t.Errorf("Last writer should win, got %v/%v", s.Variant, s.Hovering)
	}

	tr.SetCursorVariant(CursorDefault)
	if tr.Snapshot().Variant != CursorDefault {
		t.Error("Variant should reset to default")
	}
}

func TestSubscribe(t *testing.T) {
	tr := NewTracker()
	tr.Attach(&fakeScroll{})

	var got []State
	unsubscribe := tr.Subscribe(func(s State) { got = append(got, s) })
	if len(got) != 1 {
		t.Fatalf("Subscribe should deliver the current state, got %d calls", len(got))
	}

	tr.OnPointerMove(5, 5)
	tr.OnPointerMove(5, 5) // unchanged, no notification
	tr.SetCursorVariant(CursorHover)
	if len(got) != 3 {
		t.Fatalf("Expected 3 notifications, got %d", len(got))
	}
	if got[2].Variant != CursorHover || got[2].Pointer.X != 5 {
		t.Errorf("Unexpected last state %+v", got[2])
	}

	unsubscribe()
	tr.OnPointerMove(9, 9)
	if len(got) != 3 {
		t.Error("Unsubscribed reader should not be notified")
	}
}

func TestDetachStopsMutation(t *testing.T) {
	src := &fakeScroll{offset: 100, scrollable: 200}
	tr := NewTracker()
	tr.Attach(src)

	calls := 0
	tr.Subscribe(func(State) { calls++ })
	before := tr.Snapshot()

	tr.Detach()
	tr.OnPointerMove(50, 60)
	src.offset = 200
	tr.OnScroll()
	tr.SetCursorVariant(CursorClick)
	tr.SetHovering(true)

	if tr.Snapshot() != before {
		t.Errorf("State mutated after detach: %+v", tr.Snapshot())
	}
	if calls != 1 {
		t.Errorf("Subscribers notified after detach: %d calls", calls)
	}
}

func TestConcurrentReadersAndWriter(t *testing.T) {
	tr := NewTracker()
	tr.Attach(&fakeScroll{scrollable: 100})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				s := tr.Snapshot()
				if s.ScrollProgress < 0 || s.ScrollProgress > 100 {
					t.Errorf("Progress out of range: %v", s.ScrollProgress)
					return
				}
			}
		}()
	}
	for j := 0; j < 1000; j++ {
		tr.OnPointerMove(float64(j), float64(j))
	}
	wg.Wait()

	if got := tr.Snapshot().Pointer.X; got != 999 {
		t.Errorf("Expected final pointer x 999, got %v", got)
	}
}

func TestCursorVariantString(t *testing.T) {
	if CursorDefault.String() != "default" || CursorHover.String() != "hover" || CursorClick.String() != "click" {
		t.Error("Unexpected variant names")
	}
}

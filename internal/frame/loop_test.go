package frame

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

func TestLoopStepsUntilCancelled(t *testing.T) {
	l := &Loop{Interval: time.Millisecond}
	ctx, cancel := context.WithCancel(context.Background())

	var steps atomic.Int64
	done := make(chan error, 1)
	go func() {
		done <- l.Run(ctx, nil, func() {
			if steps.Add(1) == 5 {
				cancel()
			}
		})
	}()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Expected context.Canceled, got %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Loop did not stop after cancel")
	}

	after := steps.Load()
	if after != 5 {
		t.Errorf("Expected exactly 5 steps, got %d", after)
	}
	if l.Frames() != 5 {
		t.Errorf("Expected 5 frames counted, got %d", l.Frames())
	}

	time.Sleep(10 * time.Millisecond)
	if steps.Load() != after {
		t.Error("Step ran after the loop returned")
	}
}

func TestLoopSerializesEventsAndSteps(t *testing.T) {
	l := &Loop{Interval: time.Millisecond}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	inbox := make(chan func())
	var running atomic.Int32
	var overlaps atomic.Int32
	guard := func() {
		if running.Add(1) > 1 {
			overlaps.Add(1)
		}
		time.Sleep(100 * time.Microsecond)
		running.Add(-1)
	}

	done := make(chan error, 1)
	go func() { done <- l.Run(ctx, inbox, guard) }()

	for i := 0; i < 50; i++ {
		inbox <- guard
	}
	close(inbox)

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Closing the inbox should stop cleanly, got %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Loop did not stop after the inbox closed")
	}
	if overlaps.Load() != 0 {
		t.Errorf("Detected %d overlapping invocations", overlaps.Load())
	}
}

func TestLoopCancelledBeforeStart(t *testing.T) {
	l := NewLoop(60)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := l.Run(ctx, nil, func() { called = true })
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
	if called {
		t.Error("Step must not run on a cancelled context")
	}
}

func TestNewLoopInterval(t *testing.T) {
	if got := NewLoop(50).Interval; got != 20*time.Millisecond {
		t.Errorf("Expected 20ms interval, got %v", got)
	}
	if got := NewLoop(0).Interval; got != time.Second/60 {
		t.Errorf("Expected 60 fps fallback, got %v", got)
	}
}

// Package frame drives per-frame work for hosts that have no render loop
// of their own.
package frame

import (
	"context"
	"sync/atomic"
	"time"
)

// Loop runs frame steps and host events on a single goroutine so that no
// two of them ever overlap.
type Loop struct {
	Interval time.Duration

	frames atomic.Uint64
}

func NewLoop(fps int) *Loop {
	if fps <= 0 {
		fps = 60
	}
	return &Loop{Interval: time.Second / time.Duration(fps)}
}

// Run blocks until ctx is cancelled or inbox is closed. Each tick calls
// step once; each closure received from inbox runs between ticks. Once
// Run has returned, neither step nor any further event is invoked.
func (l *Loop) Run(ctx context.Context, inbox <-chan func(), step func()) error {
	ticker := time.NewTicker(l.Interval)
	defer ticker.Stop()

	for {
		// Cancellation wins over work that is ready at the same time.
		if err := ctx.Err(); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-inbox:
			if !ok {
				return nil
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}
			ev()
		case <-ticker.C:
			if ctx.Err() != nil {
				return ctx.Err()
			}
			step()
			l.frames.Add(1)
		}
	}
}

// Frames returns the number of completed steps.
func (l *Loop) Frames() uint64 {
	return l.frames.Load()
}

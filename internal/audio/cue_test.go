package audio

import (
	"math"
	"testing"
	"time"

	"github.com/faiface/beep"

	"github.com/iburimskiy/particle-backdrop/internal/config"
	"github.com/iburimskiy/particle-backdrop/internal/interaction"
)

type noScroll struct{}

func (noScroll) ScrollOffset() float64     { return 0 }
func (noScroll) ScrollableHeight() float64 { return 0 }

func drain(s beep.Streamer) [][2]float64 {
	var out [][2]float64
	buf := make([][2]float64, 256)
	for {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok || n == 0 {
			return out
		}
	}
}

func TestBlipLengthAndEnvelope(t *testing.T) {
	sr := beep.SampleRate(1000)
	samples := drain(Blip(sr, 50, 100*time.Millisecond, 0.5))

	if len(samples) != 100 {
		t.Fatalf("Expected 100 samples, got %d", len(samples))
	}
	peakFirst, peakLast := 0.0, 0.0
	for i, s := range samples {
		if math.Abs(s[0]) > 0.5 || s[0] != s[1] {
			t.Fatalf("Sample %d out of range or not mono: %v", i, s)
		}
		if i < 20 {
			peakFirst = math.Max(peakFirst, math.Abs(s[0]))
		}
		if i >= 80 {
			peakLast = math.Max(peakLast, math.Abs(s[0]))
		}
	}
	if peakLast >= peakFirst {
		t.Errorf("Blip should decay: first peak %v, last peak %v", peakFirst, peakLast)
	}
}

func TestCuePlaysOnClickTransition(t *testing.T) {
	tr := interaction.NewTracker()
	tr.Attach(noScroll{})

	plays := 0
	cfg := config.Default().Sound
	cfg.Enabled = true
	c := newCue(cfg, tr, func(beep.Streamer) { plays++ })
	defer c.Close()

	if !c.Enabled() {
		t.Fatal("Cue with a player should be enabled")
	}

	tr.SetCursorVariant(interaction.CursorClick)
	tr.OnPointerMove(3, 4) // still clicking
	tr.SetCursorVariant(interaction.CursorDefault)
	tr.SetCursorVariant(interaction.CursorClick)

	if plays != 2 {
		t.Errorf("Expected 2 blips, got %d", plays)
	}
}

func TestDisabledCueIsSilent(t *testing.T) {
	tr := interaction.NewTracker()
	c := NewCue(config.Default().Sound, tr)
	defer c.Close()

	if c.Enabled() {
		t.Error("Cue should be disabled by default")
	}
}

// Package audio plays a short blip when the cursor switches to its click
// appearance.
package audio

import (
	"log"
	"math"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"

	"github.com/iburimskiy/particle-backdrop/internal/config"
	"github.com/iburimskiy/particle-backdrop/internal/interaction"
)

const sampleRate = beep.SampleRate(44100)

var (
	speakerOnce sync.Once
	speakerErr  error
)

// initSpeaker initializes the shared speaker once per process.
func initSpeaker() error {
	speakerOnce.Do(func() {
		speakerErr = speaker.Init(sampleRate, sampleRate.N(time.Second/20))
	})
	return speakerErr
}

// Blip returns a sine tone of the given length whose amplitude decays
// exponentially from volume to near silence.
func Blip(sr beep.SampleRate, freq float64, d time.Duration, volume float64) beep.Streamer {
	total := sr.N(d)
	pos := 0
	tone := beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			t := float64(pos) / float64(sr)
			env := math.Exp(-5 * float64(pos) / float64(total))
			v := volume * env * math.Sin(2*math.Pi*freq*t)
			samples[i][0] = v
			samples[i][1] = v
			pos++
		}
		return len(samples), true
	})
	return beep.Take(total, tone)
}

// Cue listens to the tracker and plays a blip on every transition into the
// click variant.
type Cue struct {
	cfg    config.SoundConfig
	play   func(beep.Streamer)
	device bool

	mu   sync.Mutex
	last interaction.CursorVariant

	unsubscribe func()
}

// NewCue returns a cue wired to the system speaker. When sound is disabled
// or no audio device is available the cue stays silent.
func NewCue(cfg config.SoundConfig, tracker *interaction.Tracker) *Cue {
	if !cfg.Enabled {
		return &Cue{cfg: cfg}
	}
	if err := initSpeaker(); err != nil {
		log.Printf("Warning: audio unavailable, click cue disabled: %v", err)
		return &Cue{cfg: cfg}
	}
	c := newCue(cfg, tracker, func(s beep.Streamer) { speaker.Play(s) })
	c.device = true
	return c
}

func newCue(cfg config.SoundConfig, tracker *interaction.Tracker, play func(beep.Streamer)) *Cue {
	c := &Cue{cfg: cfg, play: play}
	c.unsubscribe = tracker.Subscribe(c.onState)
	return c
}

func (c *Cue) Enabled() bool {
	return c.play != nil
}

func (c *Cue) onState(s interaction.State) {
	c.mu.Lock()
	prev := c.last
	c.last = s.Variant
	c.mu.Unlock()

	if s.Variant == interaction.CursorClick && prev != interaction.CursorClick {
		d := time.Duration(c.cfg.DurationMs) * time.Millisecond
		c.play(Blip(sampleRate, c.cfg.Frequency, d, c.cfg.Volume))
	}
}

// Close detaches the cue and drops anything still queued on the speaker.
func (c *Cue) Close() {
	if c.unsubscribe == nil {
		return
	}
	c.unsubscribe()
	c.unsubscribe = nil
	if !c.device {
		return
	}
	// Clear takes the speaker lock itself.
	speaker.Clear()
}

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	WindowWidth  = 1280
	WindowHeight = 800
	WindowTitle  = "Particle Backdrop - wheel/arrows: scroll, O: open config, Esc/Q: quit"

	// Particle field parameters
	ParticleDensity = 15000 // surface area per particle
	MaxParticles    = 100
	LinkDistance    = 100
	LinkOpacity     = 0.15
	LinkWidth       = 0.5

	// Custom cursor
	CursorMinViewportWidth = 768
	CursorSize             = 20
	CursorHoverScale       = 1.5
	CursorClickScale       = 0.75

	// Scroll indicator
	ContentHeight        = 4000
	WheelStep            = 40
	RingMinViewportWidth = 1024

	// Click cue
	SoundFrequency  = 880
	SoundDurationMs = 50
	SoundVolume     = 0.25

	// Terminal host
	CellWidth  = 8
	CellHeight = 16
	FPS        = 60
)

// LinkColor is the stroke color of particle connections (slate-400).
var LinkColor = [3]uint8{148, 163, 184}

type Config struct {
	Window   WindowConfig   `yaml:"window"`
	Field    FieldConfig    `yaml:"field"`
	Cursor   CursorConfig   `yaml:"cursor"`
	Scroll   ScrollConfig   `yaml:"scroll"`
	Sound    SoundConfig    `yaml:"sound"`
	Terminal TerminalConfig `yaml:"terminal"`
}

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

type FieldConfig struct {
	Density      float64  `yaml:"density"`
	MaxParticles int      `yaml:"max_particles"`
	LinkDistance float64  `yaml:"link_distance"`
	LinkOpacity  float64  `yaml:"link_opacity"`
	LinkWidth    float64  `yaml:"link_width"`
	LinkColor    [3]uint8 `yaml:"link_color,flow"`
}

type CursorConfig struct {
	// MinViewportWidth suppresses the custom cursor on narrower viewports.
	MinViewportWidth int     `yaml:"min_viewport_width"`
	Size             float64 `yaml:"size"`
	HoverScale       float64 `yaml:"hover_scale"`
	ClickScale       float64 `yaml:"click_scale"`
}

type ScrollConfig struct {
	ContentHeight float64 `yaml:"content_height"`
	WheelStep     float64 `yaml:"wheel_step"`
	RingMinWidth  int     `yaml:"ring_min_width"`
}

type SoundConfig struct {
	Enabled    bool    `yaml:"enabled"`
	Frequency  float64 `yaml:"frequency"`
	DurationMs int     `yaml:"duration_ms"`
	Volume     float64 `yaml:"volume"`
}

type TerminalConfig struct {
	CellWidth  int `yaml:"cell_width"`
	CellHeight int `yaml:"cell_height"`
	FPS        int `yaml:"fps"`
}

// Default returns the configuration matching the package constants.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  WindowWidth,
			Height: WindowHeight,
			Title:  WindowTitle,
		},
		Field: FieldConfig{
			Density:      ParticleDensity,
			MaxParticles: MaxParticles,
			LinkDistance: LinkDistance,
			LinkOpacity:  LinkOpacity,
			LinkWidth:    LinkWidth,
			LinkColor:    LinkColor,
		},
		Cursor: CursorConfig{
			MinViewportWidth: CursorMinViewportWidth,
			Size:             CursorSize,
			HoverScale:       CursorHoverScale,
			ClickScale:       CursorClickScale,
		},
		Scroll: ScrollConfig{
			ContentHeight: ContentHeight,
			WheelStep:     WheelStep,
			RingMinWidth:  RingMinViewportWidth,
		},
		Sound: SoundConfig{
			Frequency:  SoundFrequency,
			DurationMs: SoundDurationMs,
			Volume:     SoundVolume,
		},
		Terminal: TerminalConfig{
			CellWidth:  CellWidth,
			CellHeight: CellHeight,
			FPS:        FPS,
		},
	}
}

// Load reads a YAML file and merges it over the defaults.
// Keys missing from the file keep their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML bytes over the defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate: %w", err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Field.Density <= 0 {
		return fmt.Errorf("field.density must be positive, got %v", c.Field.Density)
	}
	if c.Field.MaxParticles <= 0 || c.Field.MaxParticles > MaxParticles {
		return fmt.Errorf("field.max_particles must be within [1,%d], got %d", MaxParticles, c.Field.MaxParticles)
	}
	if c.Field.LinkDistance <= 0 {
		return fmt.Errorf("field.link_distance must be positive, got %v", c.Field.LinkDistance)
	}
	if c.Field.LinkOpacity < 0 || c.Field.LinkOpacity > 1 {
		return fmt.Errorf("field.link_opacity must be within [0,1], got %v", c.Field.LinkOpacity)
	}
	if c.Cursor.MinViewportWidth < 0 {
		return fmt.Errorf("cursor.min_viewport_width must not be negative, got %d", c.Cursor.MinViewportWidth)
	}
	if c.Scroll.ContentHeight < 0 {
		return fmt.Errorf("scroll.content_height must not be negative, got %v", c.Scroll.ContentHeight)
	}
	if c.Sound.Enabled && (c.Sound.Frequency <= 0 || c.Sound.DurationMs <= 0) {
		return fmt.Errorf("sound.frequency and sound.duration_ms must be positive when sound is enabled")
	}
	if c.Terminal.CellWidth <= 0 || c.Terminal.CellHeight <= 0 || c.Terminal.FPS <= 0 {
		return fmt.Errorf("terminal cell size and fps must be positive")
	}
	return nil
}

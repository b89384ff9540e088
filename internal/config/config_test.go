package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultMatchesConstants(t *testing.T) {
	cfg := Default()

	if cfg.Field.Density != ParticleDensity {
		t.Errorf("Expected density %v, got %v", ParticleDensity, cfg.Field.Density)
	}
	if cfg.Field.MaxParticles != MaxParticles {
		t.Errorf("Expected max particles %d, got %d", MaxParticles, cfg.Field.MaxParticles)
	}
	if cfg.Field.LinkDistance != LinkDistance {
		t.Errorf("Expected link distance %v, got %v", LinkDistance, cfg.Field.LinkDistance)
	}
	if cfg.Cursor.MinViewportWidth != CursorMinViewportWidth {
		t.Errorf("Expected cursor threshold %d, got %d", CursorMinViewportWidth, cfg.Cursor.MinViewportWidth)
	}
	if cfg.Sound.Enabled {
		t.Error("Sound should be disabled by default")
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default config should validate: %v", err)
	}
}

func TestParseMergesOverDefaults(t *testing.T) {
	data := []byte(`
field:
  max_particles: 40
  link_color: [255, 0, 0]
cursor:
  min_viewport_width: 1024
sound:
  enabled: true
`)
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if cfg.Field.MaxParticles != 40 {
		t.Errorf("Expected max particles 40, got %d", cfg.Field.MaxParticles)
	}
	if cfg.Field.LinkColor != [3]uint8{255, 0, 0} {
		t.Errorf("Expected link color override, got %v", cfg.Field.LinkColor)
	}
	if cfg.Field.Density != ParticleDensity {
		t.Errorf("Density should keep default, got %v", cfg.Field.Density)
	}
	if cfg.Cursor.MinViewportWidth != 1024 {
		t.Errorf("Expected cursor threshold 1024, got %d", cfg.Cursor.MinViewportWidth)
	}
	if !cfg.Sound.Enabled || cfg.Sound.Frequency != SoundFrequency {
		t.Errorf("Expected enabled sound with default frequency, got %+v", cfg.Sound)
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"zero density", "field: {density: 0}", "density"},
		{"negative max", "field: {max_particles: -1}", "max_particles"},
		{"max above cap", "field: {max_particles: 5000, density: 100}", "max_particles"},
		{"zero link distance", "field: {link_distance: 0}", "link_distance"},
		{"opacity above one", "field: {link_opacity: 2}", "link_opacity"},
		{"window", "window: {width: 0}", "window size"},
		{"sound", "sound: {enabled: true, frequency: 0}", "sound"},
		{"malformed", "field: [", "parse yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			if err == nil {
				t.Fatal("Expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Expected error mentioning %q, got %v", tt.want, err)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "backdrop.yaml")
	if err := os.WriteFile(path, []byte("window: {width: 640, height: 480}\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Window.Width != 640 || cfg.Window.Height != 480 {
		t.Errorf("Expected 640x480, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Window.Title != WindowTitle {
		t.Errorf("Title should keep default, got %q", cfg.Window.Title)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Expected error for missing file")
	}
}

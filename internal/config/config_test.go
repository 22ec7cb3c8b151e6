package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Width != 960 || cfg.Height != 600 {
		t.Errorf("expected 960x600, got %gx%g", cfg.Width, cfg.Height)
	}
	if cfg.Scale != 2 {
		t.Errorf("expected scale 2, got %g", cfg.Scale)
	}
	if cfg.Layout.CollidePadding != 2 {
		t.Errorf("expected collide padding 2, got %g", cfg.Layout.CollidePadding)
	}
	if cfg.Layout.XStrength == cfg.Layout.YStrength {
		t.Error("x and y strengths should differ")
	}
	if cfg.Nodes.Radius != 8 {
		t.Errorf("expected node radius 8, got %g", cfg.Nodes.Radius)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name  string
		file  string
		body  string
		width float64
		dist  float64
	}{
		{"yaml", "cfg.yaml", "width: 800\nlayout:\n  link_distance: 50\n", 800, 50},
		{"yml", "cfg.yml", "height: 400\n", 960, 80},
		{"toml", "cfg.toml", "width = 640.0\n[layout]\nlink_distance = 30.0\n", 640, 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.file)
			if err := os.WriteFile(path, []byte(tt.body), 0644); err != nil {
				t.Fatal(err)
			}
			cfg, err := Load(path)
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			if cfg.Width != tt.width {
				t.Errorf("expected width %g, got %g", tt.width, cfg.Width)
			}
			if cfg.Layout.LinkDistance != tt.dist {
				t.Errorf("expected link distance %g, got %g", tt.dist, cfg.Layout.LinkDistance)
			}
			if cfg.Scale != DefaultScale {
				t.Errorf("unset scale should keep default, got %g", cfg.Scale)
			}
		})
	}
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	bad := filepath.Join(dir, "bad.yaml")
	os.WriteFile(bad, []byte("width: -1\n"), 0644)
	_, err := Load(bad)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), bad) {
		t.Errorf("error should name the file: %v", err)
	}
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("expected ErrInvalid, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		field  string
	}{
		{"zero width", func(c *Config) { c.Width = 0 }, "width"},
		{"negative scale", func(c *Config) { c.Scale = -2 }, "scale"},
		{"negative padding", func(c *Config) { c.Layout.CollidePadding = -1 }, "layout.collide_padding"},
		{"decay above one", func(c *Config) { c.Layout.VelocityDecay = 1.5 }, "layout.velocity_decay"},
		{"reheat above one", func(c *Config) { c.Layout.Reheat = 2 }, "layout.reheat"},
		{"bad colour", func(c *Config) { c.Nodes.NodeColor = "blue" }, "nodes.node_color"},
		{"zero velocity decay", func(c *Config) { c.Layout.VelocityDecay = 0 }, "layout.velocity_decay"},
		{"zero reheat", func(c *Config) { c.Layout.Reheat = 0 }, "layout.reheat"},
		{"zero collide iterations", func(c *Config) { c.Layout.CollideIterations = 0 }, "layout.collide_iterations"},
		{"zero alpha min", func(c *Config) { c.Layout.AlphaMin = 0 }, "layout.alpha_min"},
		{"alpha decay of one", func(c *Config) { c.Layout.AlphaDecay = 1 }, "layout.alpha_decay"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalid) {
				t.Fatalf("expected ErrInvalid, got %v", err)
			}
			if !strings.Contains(err.Error(), tt.field) {
				t.Errorf("error should name %s: %v", tt.field, err)
			}
		})
	}
}

func TestValidate_ReportsAll(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = -1, -1
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error")
	}
	for _, f := range []string{"width", "height"} {
		if !strings.Contains(err.Error(), f) {
			t.Errorf("error should name %s: %v", f, err)
		}
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")
	cfg := DefaultConfig()
	cfg.Layout.ChargeStrength = -42

	if err := Save(path, cfg); err != nil {
		t.Fatal(err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if got.Layout.ChargeStrength != -42 {
		t.Errorf("expected charge -42, got %g", got.Layout.ChargeStrength)
	}
}

func TestGetPreset(t *testing.T) {
	l := GetPreset("tight")
	if l == nil {
		t.Fatal("expected preset, got nil")
	}
	if l.LinkDistance != 40 {
		t.Errorf("expected link distance 40, got %g", l.LinkDistance)
	}

	l.LinkDistance = 1
	if Presets["tight"].LinkDistance != 40 {
		t.Error("GetPreset should return a copy")
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}

	cfg := DefaultConfig()
	err := cfg.ApplyPreset("nonexistent")
	if err == nil || !strings.Contains(err.Error(), "tight") {
		t.Errorf("expected error listing presets, got %v", err)
	}
}

func TestPresetsValidate(t *testing.T) {
	for _, name := range ListPresets() {
		cfg := DefaultConfig()
		if err := cfg.ApplyPreset(name); err != nil {
			t.Fatal(err)
		}
		if err := cfg.Validate(); err != nil {
			t.Errorf("preset %s: %v", name, err)
		}
	}
}

func TestApplyPreset_KeepsSeed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seeded.yaml")
	os.WriteFile(path, []byte("layout:\n  seed: 42\n"), 0644)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if err := cfg.ApplyPreset("tight"); err != nil {
		t.Fatal(err)
	}
	if cfg.Layout.Seed != 42 {
		t.Errorf("expected seed 42 to survive the preset, got %d", cfg.Layout.Seed)
	}
	if cfg.Layout.LinkDistance != 40 {
		t.Errorf("expected tight link distance, got %g", cfg.Layout.LinkDistance)
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets()
	if len(presets) != len(Presets) {
		t.Fatalf("expected %d presets, got %d", len(Presets), len(presets))
	}
	if presets[0] != "calm" {
		t.Errorf("expected sorted names, got %v", presets)
	}
}

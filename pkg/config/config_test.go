package config

import (
	"os"
	"path/filepath"
	"testing"
)

// TestDefaultConfig verifies the defaults describe a runnable projection.
func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Geometry.Type != "parallel" {
		t.Errorf("expected parallel geometry, got %q", cfg.Geometry.Type)
	}
	if cfg.Geometry.Bins <= 0 || cfg.Geometry.Views <= 0 {
		t.Errorf("default grid is degenerate: %dx%d", cfg.Geometry.Bins, cfg.Geometry.Views)
	}
	if cfg.Geometry.Oversample != 1 {
		t.Errorf("expected default oversample 1, got %d", cfg.Geometry.Oversample)
	}
	if cfg.Phantom.XScale != 1 || cfg.Phantom.YScale != 1 {
		t.Errorf("expected no default flips, got (%g, %g)", cfg.Phantom.XScale, cfg.Phantom.YScale)
	}
}

// TestLoadMissingFile verifies that a missing config falls back to defaults.
func TestLoadMissingFile(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/phantomproj.yaml")
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Geometry.Type != DefaultConfig().Geometry.Type {
		t.Error("missing file should return the default configuration")
	}
}

// TestSaveLoadRoundTrip verifies YAML persistence.
func TestSaveLoadRoundTrip(t *testing.T) {
	dir, err := os.MkdirTemp("", "phantomproj-config-*")
	if err != nil {
		t.Fatalf("Failed to create temporary directory: %v", err)
	}
	defer os.RemoveAll(dir)

	cfg := DefaultConfig()
	cfg.Geometry.Type = "fan"
	cfg.Geometry.Bins = 32
	cfg.Geometry.SourceRadius = 4.5
	cfg.Geometry.Oversample = 8
	cfg.Phantom.Preset = "shepp-logan"
	cfg.Phantom.Ellipses = []EllipseSpec{
		{CenterX: 0.1, RadiusX: 0.5, RadiusY: 0.25, Angle: 30, Amplitude: -1},
	}
	cfg.Output.Colormap = "heat"

	path := filepath.Join(dir, "run.yaml")
	if err := SaveConfig(cfg, path); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if loaded.Geometry.Type != "fan" || loaded.Geometry.Bins != 32 {
		t.Errorf("geometry not preserved: %+v", loaded.Geometry)
	}
	if loaded.Geometry.SourceRadius != 4.5 || loaded.Geometry.Oversample != 8 {
		t.Errorf("geometry not preserved: %+v", loaded.Geometry)
	}
	if loaded.Phantom.Preset != "shepp-logan" {
		t.Errorf("phantom preset not preserved: %q", loaded.Phantom.Preset)
	}
	if len(loaded.Phantom.Ellipses) != 1 || loaded.Phantom.Ellipses[0] != cfg.Phantom.Ellipses[0] {
		t.Errorf("inline ellipses not preserved: %+v", loaded.Phantom.Ellipses)
	}
	if loaded.Output.Colormap != "heat" {
		t.Errorf("output not preserved: %+v", loaded.Output)
	}
}

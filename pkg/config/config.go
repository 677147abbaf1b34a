// Package config provides configuration loading and management for phantomproj.
// It handles loading run descriptions from YAML files and provides default values.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// EllipseSpec describes one ellipse of an inline phantom in a YAML file.
type EllipseSpec struct {
	CenterX   float64 `yaml:"centerX"`
	CenterY   float64 `yaml:"centerY"`
	RadiusX   float64 `yaml:"radiusX"`
	RadiusY   float64 `yaml:"radiusY"`
	Angle     float64 `yaml:"angle"`
	Amplitude float64 `yaml:"amplitude"`
}

// Config represents a projection run loaded from YAML
type Config struct {
	// Geometry parameters
	Geometry struct {
		// Type selects the sampling geometry: parallel, fan or mojette
		Type string `yaml:"type"`

		// Bins is the number of detector cells per view
		Bins int `yaml:"bins"`

		// Views is the number of projection angles
		Views int `yaml:"views"`

		// FOV is the field-of-view radius covered by the detector
		FOV float64 `yaml:"fov"`

		// Offset shifts the parallel detector positions
		Offset float64 `yaml:"offset"`

		// SourceRadius is the source orbit radius for fan geometries
		SourceRadius float64 `yaml:"sourceRadius"`

		// Oversample projects at finer radial resolution and averages down
		Oversample int `yaml:"oversample"`
	} `yaml:"geometry"`

	// Phantom parameters
	Phantom struct {
		// Preset names a built-in phantom: shepp-logan or modified-shepp-logan.
		// Ignored when Ellipses is non-empty.
		Preset string `yaml:"preset"`

		// Ellipses is an inline phantom definition
		Ellipses []EllipseSpec `yaml:"ellipses"`

		// XScale and YScale flip the phantom axes when set to -1
		XScale float64 `yaml:"xscale"`
		YScale float64 `yaml:"yscale"`
	} `yaml:"phantom"`

	// Output parameters
	Output struct {
		// Image is the PNG file the sinogram is rendered to
		Image string `yaml:"image"`

		// Colormap selects the rendering: gray or heat
		Colormap string `yaml:"colormap"`

		// Raw is an optional little-endian float32 dump of the sinogram
		Raw string `yaml:"raw"`
	} `yaml:"output"`

	// Processing parameters
	Processing struct {
		// Workers caps the number of goroutines sweeping the grid
		Workers int `yaml:"workers"`
	} `yaml:"processing"`
}

// DefaultConfig returns a configuration with default values
func DefaultConfig() *Config {
	cfg := &Config{}

	// Set default geometry parameters
	cfg.Geometry.Type = "parallel"
	cfg.Geometry.Bins = 256
	cfg.Geometry.Views = 180
	cfg.Geometry.FOV = 1.0
	cfg.Geometry.SourceRadius = 3.0
	cfg.Geometry.Oversample = 1

	// Set default phantom parameters
	cfg.Phantom.Preset = "modified-shepp-logan"
	cfg.Phantom.XScale = 1
	cfg.Phantom.YScale = 1

	// Set default output parameters
	cfg.Output.Image = "sinogram.png"
	cfg.Output.Colormap = "gray"

	// Set default processing parameters
	cfg.Processing.Workers = runtime.NumCPU()

	return cfg
}

// LoadConfig loads configuration from a YAML file
// If the file doesn't exist, it returns the default configuration
func LoadConfig(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	// Check if config file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return cfg, nil
	}

	// Read config file
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Parse YAML
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	return cfg, nil
}

// SaveConfig saves the configuration to a YAML file
func SaveConfig(cfg *Config, configPath string) error {
	// Create directory if it doesn't exist
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	// Marshal config to YAML
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("error marshaling config: %w", err)
	}

	// Write to file
	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}

	return nil
}

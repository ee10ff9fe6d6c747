// Package config loads the optional sketchroom.yaml next to the
// binary's working directory. Everything has a sane default; a missing
// file is not an error.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultPath is where Load looks when no path is given.
const DefaultPath = "sketchroom.yaml"

type Config struct {
	// Port the relay listens on (serve and host modes).
	Port int `yaml:"port"`
	// ServerURL overrides the relay a joining client talks to.
	ServerURL string `yaml:"server_url"`
	// Room joined by default in host mode. Empty means a fresh room.
	Room string `yaml:"room"`
	// EraseTolerance is the eraser hit-test slop in pixels.
	EraseTolerance float64 `yaml:"erase_tolerance"`
	// StrokeWidth is the global stroke width in pixels.
	StrokeWidth float32 `yaml:"stroke_width"`
}

func Default() Config {
	return Config{
		Port:           8888,
		EraseTolerance: 5,
		StrokeWidth:    2,
	}
}

// Load reads path (or DefaultPath when empty) over the defaults. A
// missing file returns the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		path = DefaultPath
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

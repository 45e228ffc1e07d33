// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package ultralightui

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Scroll points per wheel unit. macOS trackpads report many small units.
const (
	scrollPointsPerUnitMac     = 10.0
	scrollPointsPerUnitDefault = 100.0 / 3
)

// Options for loading the bridge library. All fields are optional.
type Options struct {
	BaseDir string `toml:"base_dir" yaml:"base_dir"` // Directory containing the bridge shared library and Ultralight SDK libraries. Defaults to working directory.
	Debug   bool   `toml:"debug" yaml:"debug"`       // Enable debug logging in the bridge (creates bridge.log and ultralight.log).
}

// Config holds the values threaded through the view and its translators at
// construction time. Use DefaultConfig and override fields, or LoadConfig.
type Config struct {
	// ScaleFactor is the fixed ratio between toolkit pixels and engine pixels.
	ScaleFactor int `toml:"scale_factor" yaml:"scale_factor"`
	// ScrollPointsPerUnit converts wheel units to engine scroll points.
	ScrollPointsPerUnit float64 `toml:"scroll_points_per_unit" yaml:"scroll_points_per_unit"`
	// MacKeyboard enables macOS access-key character substitution.
	MacKeyboard bool `toml:"mac_keyboard" yaml:"mac_keyboard"`
	// DisplayID is the display the engine widget renders for.
	DisplayID int64 `toml:"display_id" yaml:"display_id"`
	// OutputFormat is the channel order of published frames: "rgba" or "bgra".
	OutputFormat string `toml:"output_format" yaml:"output_format"`

	Engine Options `toml:"engine" yaml:"engine"`
}

// DefaultConfig returns the configuration for the current platform.
func DefaultConfig() Config {
	cfg := Config{
		ScaleFactor:         2,
		ScrollPointsPerUnit: scrollPointsPerUnitDefault,
		OutputFormat:        "rgba",
	}
	if runtime.GOOS == "darwin" {
		cfg.ScrollPointsPerUnit = scrollPointsPerUnitMac
		cfg.MacKeyboard = true
	}
	return cfg
}

// LoadConfig reads a .toml, .yaml or .yml file over DefaultConfig.
// Keys missing from the file keep their default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing %s: %w", path, err)
		}
	default:
		return cfg, fmt.Errorf("config %s: unsupported extension %q", path, filepath.Ext(path))
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	if c.ScaleFactor < 1 {
		return fmt.Errorf("scale_factor must be >= 1, got %d", c.ScaleFactor)
	}
	if c.ScrollPointsPerUnit <= 0 {
		return fmt.Errorf("scroll_points_per_unit must be > 0, got %g", c.ScrollPointsPerUnit)
	}
	if _, err := c.pixelFormat(); err != nil {
		return err
	}
	return nil
}

var errUnknownFormat = errors.New("unknown output_format")

func (c Config) pixelFormat() (PixelFormat, error) {
	switch strings.ToLower(c.OutputFormat) {
	case "", "rgba":
		return PixelFormatRGBA, nil
	case "bgra":
		return PixelFormatBGRA, nil
	default:
		return 0, fmt.Errorf("%w %q", errUnknownFormat, c.OutputFormat)
	}
}

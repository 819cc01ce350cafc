// Package config handles persistent user configuration for swatch.
//
// Configuration is stored as JSON at ~/.config/swatch/config.json (or the
// platform-equivalent path returned by os.UserConfigDir). The SWATCH_CONFIG
// environment variable points it elsewhere.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"nathanbeddoewebdev/swatch/internal/atomicfile"
)

const (
	appDir   = "swatch"
	fileName = "config.json"

	// EnvPath overrides the config file location when set.
	EnvPath = "SWATCH_CONFIG"
)

// pathOverride, when non-empty, replaces the default config file path.
var pathOverride string

// SetPath overrides the config file path. Intended for testing.
func SetPath(p string) { pathOverride = p }

// ResetPath clears the path override. Intended for testing.
func ResetPath() { pathOverride = "" }

// Config holds user preferences that persist across invocations.
type Config struct {
	// Palette is the palette file used when --palette is not given.
	Palette string `json:"palette,omitempty"`

	// Output is the default output format for report commands.
	Output string `json:"output,omitempty"`
}

// PaletteOr returns flagValue when set, otherwise the configured palette.
// An empty result means the built-in palette.
func (c *Config) PaletteOr(flagValue string) string {
	if v := strings.TrimSpace(flagValue); v != "" {
		return v
	}
	return c.Palette
}

// OutputOr returns flagValue when set, then the configured output, then
// fallback. The result is lowercased.
func (c *Config) OutputOr(flagValue, fallback string) string {
	for _, v := range []string{flagValue, c.Output, fallback} {
		if v = strings.ToLower(strings.TrimSpace(v)); v != "" {
			return v
		}
	}
	return ""
}

// Path returns the absolute path to the config file. Precedence: SetPath,
// then $SWATCH_CONFIG, then os.UserConfigDir.
func Path() (string, error) {
	if pathOverride != "" {
		return pathOverride, nil
	}
	if env := os.Getenv(EnvPath); env != "" {
		return env, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("config: unable to determine config directory: %w", err)
	}
	return filepath.Join(base, appDir, fileName), nil
}

// Load reads the config file. A missing file yields a zero Config.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom reads the config at path. A missing file yields a zero Config.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("config: failed to read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	return &cfg, nil
}

// Save writes the config to Path().
func (c *Config) Save() error {
	path, err := Path()
	if err != nil {
		return err
	}
	return c.SaveTo(path)
}

// SaveTo writes the config to path through a temp file and rename, so a
// failed write never leaves a truncated config behind.
func (c *Config) SaveTo(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("config: failed to marshal config: %w", err)
	}
	data = append(data, '\n')

	if err := atomicfile.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

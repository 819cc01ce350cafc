package palette

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format identifies a palette file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatFromPath infers the encoding from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("palette: unsupported file extension %q (use .yaml, .yml or .json)", filepath.Ext(path))
	}
}

// Load reads and validates a palette file.
func Load(path string) (Palette, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return Palette{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Palette{}, fmt.Errorf("palette: failed to read %s: %w", path, err)
	}

	p, err := Decode(data, format)
	if err != nil {
		return Palette{}, fmt.Errorf("palette: %s: %w", path, err)
	}
	return p, nil
}

// Decode parses and validates palette data in the given format.
func Decode(data []byte, format Format) (Palette, error) {
	var p Palette
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &p); err != nil {
			return Palette{}, fmt.Errorf("failed to parse yaml: %w", err)
		}
	case FormatJSON:
		if err := json.Unmarshal(data, &p); err != nil {
			return Palette{}, fmt.Errorf("failed to parse json: %w", err)
		}
	default:
		return Palette{}, fmt.Errorf("unsupported format %q", format)
	}

	if err := p.Validate(); err != nil {
		return Palette{}, fmt.Errorf("invalid palette: %w", err)
	}
	return p, nil
}

// Encode renders p in the given format.
func Encode(p Palette, format Format) ([]byte, error) {
	switch format {
	case FormatYAML:
		return yaml.Marshal(p)
	case FormatJSON:
		data, err := json.MarshalIndent(p, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	default:
		return nil, fmt.Errorf("palette: unsupported format %q", format)
	}
}

// Resolve returns the palette at path, or Default when path is empty.
func Resolve(path string) (Palette, error) {
	if strings.TrimSpace(path) == "" {
		return Default(), nil
	}
	return Load(path)
}

package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format identifies a catalog file encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatForPath picks a format from a file extension.
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported catalog extension %q", filepath.Ext(path))
	}
}

// Encode serializes a catalog.
func Encode(c Catalog, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(c, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("json marshal: %w", err)
		}
		return append(data, '\n'), nil
	case FormatYAML:
		data, err := yaml.Marshal(c)
		if err != nil {
			return nil, fmt.Errorf("yaml marshal: %w", err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("unknown catalog format %q", format)
	}
}

// Decode parses and validates a catalog.
func Decode(data []byte, format Format) (Catalog, error) {
	var c Catalog
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &c); err != nil {
			return Catalog{}, fmt.Errorf("json unmarshal: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &c); err != nil {
			return Catalog{}, fmt.Errorf("yaml unmarshal: %w", err)
		}
	default:
		return Catalog{}, fmt.Errorf("unknown catalog format %q", format)
	}

	c.normalize()
	if err := Validate(c); err != nil {
		return Catalog{}, err
	}
	return c, nil
}

// LoadFile reads a catalog file, choosing the codec by extension.
func LoadFile(path string) (Catalog, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return Catalog{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("reading file %s: %w", path, err)
	}

	c, err := Decode(data, format)
	if err != nil {
		return Catalog{}, fmt.Errorf("parsing file %s: %w", path, err)
	}
	return c, nil
}

// WriteFile writes a catalog to path. An empty format is taken from the
// path's extension.
func WriteFile(path string, c Catalog, format Format) error {
	if format == "" {
		f, err := FormatForPath(path)
		if err != nil {
			return err
		}
		format = f
	}
	data, err := Encode(c, format)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing file %s: %w", path, err)
	}
	return nil
}

// Package output serializes sheetshift reports.
package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format is a serialization format.
type Format string

const (
	// FormatJSON writes JSON.
	FormatJSON Format = "json"
	// FormatYAML writes YAML.
	FormatYAML Format = "yaml"
)

// ParseFormat accepts "json", "yaml" or "yml" in any case.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("invalid format: %s (must be json or yaml)", s)
	}
}

// ToJSON serializes v to JSON, indented when pretty is set.
func ToJSON(v any, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}

// ToYAML serializes v to YAML with two-space indentation.
func ToYAML(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Marshal serializes v in format. pretty only affects JSON.
func Marshal(v any, format Format, pretty bool) ([]byte, error) {
	switch format {
	case FormatJSON, "":
		return ToJSON(v, pretty)
	case FormatYAML:
		return ToYAML(v)
	default:
		return nil, fmt.Errorf("invalid format: %s", format)
	}
}

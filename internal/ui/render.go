package ui

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/docker/go-units"
	"gopkg.in/yaml.v3"
)

// Format is an output format for command results.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates an --output value.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	case "":
		return FormatText, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want text, json or yaml)", s)
	}
}

// Envelope wraps machine-readable command output.
type Envelope struct {
	Status string `json:"status" yaml:"status"`
	Data   any    `json:"data,omitempty" yaml:"data,omitempty"`
	Error  string `json:"error,omitempty" yaml:"error,omitempty"`
}

// Render writes data to w. Text output is produced by text; JSON and YAML
// output wrap data in a success Envelope.
func Render(w io.Writer, format Format, data any, text func(io.Writer) error) error {
	switch format {
	case FormatJSON, FormatYAML:
		return encode(w, format, Envelope{Status: "success", Data: data})
	default:
		return text(w)
	}
}

// RenderError writes err as an error Envelope. Text output is left to the
// logger, so nothing is written in text mode.
func RenderError(w io.Writer, format Format, data any, err error) error {
	if format != FormatJSON && format != FormatYAML {
		return nil
	}
	return encode(w, format, Envelope{Status: "error", Data: data, Error: err.Error()})
}

func encode(w io.Writer, format Format, v any) error {
	if format == FormatYAML {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode YAML output: %w", err)
		}
		return enc.Close()
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode JSON output: %w", err)
	}
	return nil
}

// HumanSize formats a byte count for display ("1.5MB").
func HumanSize(n int64) string {
	return units.HumanSize(float64(n))
}

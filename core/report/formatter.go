package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-yaml"
)

// Format is an output format name.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates a format name. An empty name selects text.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case "":
		return FormatText, nil
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported output format %q (want text, json or yaml)", name)
	}
}

// Formatter renders a run result.
type Formatter interface {
	Format(w io.Writer, res *Result) error
}

// NewFormatter creates the formatter selected by cfg.
func NewFormatter(cfg Config) (Formatter, error) {
	format, err := ParseFormat(cfg.Format)
	if err != nil {
		return nil, err
	}

	switch format {
	case FormatJSON:
		return &JSONFormatter{Indent: "  "}, nil
	case FormatYAML:
		return &YAMLFormatter{}, nil
	default:
		return &TextFormatter{Details: cfg.Details, Diff: cfg.Diff}, nil
	}
}

// Write renders res to w with the formatter selected by cfg.
func Write(w io.Writer, res *Result, cfg Config) error {
	f, err := NewFormatter(cfg)
	if err != nil {
		return err
	}
	return f.Format(w, res)
}

// JSONFormatter outputs the run document as JSON.
type JSONFormatter struct {
	Indent string
}

// Format implements Formatter.
func (f *JSONFormatter) Format(w io.Writer, res *Result) error {
	encoder := json.NewEncoder(w)
	if f.Indent != "" {
		encoder.SetIndent("", f.Indent)
	}
	return encoder.Encode(res)
}

// YAMLFormatter outputs the run document as YAML.
type YAMLFormatter struct{}

// Format implements Formatter.
func (f *YAMLFormatter) Format(w io.Writer, res *Result) error {
	data, err := yaml.MarshalWithOptions(res,
		yaml.Indent(2),
		yaml.IndentSequence(false),
	)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

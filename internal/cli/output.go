// MoodRec - Sentiment-Weighted Media Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodrec

// Package cli renders command results for the moodrec command line tool.
package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-json"
	"github.com/goccy/go-yaml"
)

// Format is an output format name.
type Format string

const (
	// FormatTable renders a styled table for terminals.
	FormatTable Format = "table"
	// FormatYAML outputs YAML.
	FormatYAML Format = "yaml"
	// FormatJSON outputs indented JSON.
	FormatJSON Format = "json"
)

// ParseFormat parses a format name case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatTable, FormatYAML, FormatJSON:
		return f, nil
	case "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unsupported output format %q (want table, yaml or json)", s)
}

// Options configures Output.
type Options struct {
	Format Format

	// Table is rendered for FormatTable. Structured formats encode the
	// result itself.
	Table *Table
}

// Output writes result to w in the requested format.
func Output(w io.Writer, result any, opts Options) error {
	switch opts.Format {
	case FormatJSON:
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to format output: %w", err)
		}
		_, err = fmt.Fprintf(w, "%s\n", data)
		return err
	case FormatYAML:
		data, err := yaml.Marshal(result)
		if err != nil {
			return fmt.Errorf("failed to format output: %w", err)
		}
		_, err = w.Write(data)
		return err
	case FormatTable, "":
		if opts.Table == nil {
			return fmt.Errorf("table output is not available for this command")
		}
		_, err := io.WriteString(w, opts.Table.Render(DefaultStyles)+"\n")
		return err
	default:
		return fmt.Errorf("unsupported output format: %s", opts.Format)
	}
}

// MoodRec - Sentiment-Weighted Media Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodrec

// Package codec decodes YAML and JSON documents chosen by file extension.
package codec

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"github.com/goccy/go-yaml"
)

// DecodeFile reads path and decodes it into v. ".json" files are parsed as
// JSON, ".yaml" and ".yml" as YAML; anything else is tried as YAML and then
// as JSON.
func DecodeFile(path string, v any) error {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from operator configuration
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", path, err)
	}
	return Decode(data, filepath.Ext(path), v)
}

// Decode parses data according to ext, which may be empty.
func Decode(data []byte, ext string, v any) error {
	switch strings.ToLower(ext) {
	case ".json":
		if err := json.Unmarshal(data, v); err != nil {
			return fmt.Errorf("failed to parse JSON: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, v); err != nil {
			return fmt.Errorf("failed to parse YAML: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, v); err != nil {
			if jerr := json.Unmarshal(data, v); jerr != nil {
				return fmt.Errorf("failed to parse document (tried YAML and JSON): %w", err)
			}
		}
	}
	return nil
}

// EncodeFile writes v to path as JSON or YAML by extension. Unknown
// extensions are written as YAML.
func EncodeFile(path string, v any) error {
	var (
		data []byte
		err  error
	)
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		data, err = json.MarshalIndent(v, "", "  ")
	} else {
		data, err = yaml.Marshal(v)
	}
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}
	return nil
}

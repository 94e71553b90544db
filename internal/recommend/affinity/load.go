// MoodRec - Sentiment-Weighted Media Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodrec

package affinity

import (
	"fmt"

	"github.com/tomtom215/moodrec/internal/codec"
	"github.com/tomtom215/moodrec/internal/recommend"
)

// fileEntry is one genre in an affinity file. A missing weight means
// "by position": the first of n genres weighs n, the last weighs 1.
type fileEntry struct {
	Genre  string   `json:"genre" yaml:"genre"`
	Weight *float64 `json:"weight,omitempty" yaml:"weight,omitempty"`
}

// File is the on-disk affinity table layout:
//
//	positive:
//	  - genre: Comedy
//	    weight: 10
//	  - genre: Family
//	neutral: [...]
//	negative: [...]
type File struct {
	Positive []fileEntry `json:"positive" yaml:"positive"`
	Neutral  []fileEntry `json:"neutral" yaml:"neutral"`
	Negative []fileEntry `json:"negative" yaml:"negative"`
}

// LoadFile reads a YAML or JSON affinity file and builds a Table.
func LoadFile(path string) (*Table, error) {
	var f File
	if err := codec.DecodeFile(path, &f); err != nil {
		return nil, err
	}
	t, err := f.Table()
	if err != nil {
		return nil, fmt.Errorf("affinity file %s: %w", path, err)
	}
	return t, nil
}

// Table validates the file contents and builds a Table from them.
func (f *File) Table() (*Table, error) {
	lists := map[recommend.Label][]fileEntry{
		recommend.Positive: f.Positive,
		recommend.Neutral:  f.Neutral,
		recommend.Negative: f.Negative,
	}

	var entries []recommend.GenreWeight
	for _, l := range recommend.Labels {
		list := lists[l]
		for i, e := range list {
			w := float64(len(list) - i)
			if e.Weight != nil {
				w = *e.Weight
			}
			entries = append(entries, recommend.GenreWeight{Label: l, Genre: e.Genre, Weight: w})
		}
	}
	if len(entries) == 0 {
		return nil, &recommend.InvalidParameterError{Name: "affinity", Value: 0, Reason: "no genres listed"}
	}
	return New(entries)
}

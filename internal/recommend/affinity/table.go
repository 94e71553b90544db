// MoodRec - Sentiment-Weighted Media Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodrec

// Package affinity holds the genre affinity table: for each sentiment label,
// the genres that suit it and how strongly.
package affinity

import (
	"math"
	"sort"
	"strings"

	"github.com/tomtom215/moodrec/internal/recommend"
)

// Table maps each label to weighted genres. It is immutable once built and
// safe for concurrent use.
type Table struct {
	weights [len(recommend.Labels)][]recommend.GenreWeight
	index   [len(recommend.Labels)]map[string]float64
}

// New builds a Table from entries. Within a label, entries are ordered by
// weight, heaviest first; equal weights keep their order in entries.
//
// Entries with an unknown label, a blank genre, a weight that is not a
// positive finite number, or a genre repeated within a label are rejected
// with *recommend.InvalidParameterError.
func New(entries []recommend.GenreWeight) (*Table, error) {
	t := &Table{}
	for i := range t.index {
		t.index[i] = make(map[string]float64)
	}

	for _, e := range entries {
		if !e.Label.Valid() {
			return nil, &recommend.InvalidParameterError{Name: "label", Value: int(e.Label), Reason: "unknown sentiment label"}
		}
		key := recommend.GenreKey(e.Genre)
		if key == "" {
			return nil, &recommend.InvalidParameterError{Name: "genre", Value: e.Genre, Reason: "must not be blank"}
		}
		if math.IsNaN(e.Weight) || math.IsInf(e.Weight, 0) || e.Weight <= 0 {
			return nil, &recommend.InvalidParameterError{Name: "weight", Value: e.Weight, Reason: "must be a positive number"}
		}
		if _, dup := t.index[e.Label][key]; dup {
			return nil, &recommend.InvalidParameterError{
				Name:   "genre",
				Value:  e.Genre,
				Reason: "listed twice for " + e.Label.String(),
			}
		}

		e.Genre = strings.TrimSpace(e.Genre)
		t.index[e.Label][key] = e.Weight
		t.weights[e.Label] = append(t.weights[e.Label], e)
	}

	for _, ws := range t.weights {
		sort.SliceStable(ws, func(a, b int) bool {
			return ws[a].Weight > ws[b].Weight
		})
	}
	return t, nil
}

// FromGenres builds a Table from ordered genre lists, weighting each list
// n, n-1 ... 1 by position.
func FromGenres(genres map[recommend.Label][]string) (*Table, error) {
	var entries []recommend.GenreWeight
	for _, l := range recommend.Labels {
		names := genres[l]
		for i, g := range names {
			entries = append(entries, recommend.GenreWeight{
				Label:  l,
				Genre:  g,
				Weight: float64(len(names) - i),
			})
		}
	}
	return New(entries)
}

// WeightsFor returns a copy of the weights for label, heaviest first. An
// unknown label yields nil.
func (t *Table) WeightsFor(label recommend.Label) []recommend.GenreWeight {
	if !label.Valid() {
		return nil
	}
	return append([]recommend.GenreWeight(nil), t.weights[label]...)
}

// Weight returns the weight of genre for label, or 0 when the genre is not
// listed. Genre names are matched by recommend.GenreKey.
func (t *Table) Weight(label recommend.Label, genre string) float64 {
	if !label.Valid() {
		return 0
	}
	return t.index[label][recommend.GenreKey(genre)]
}

// Genres returns the genre names for label, heaviest first.
func (t *Table) Genres(label recommend.Label) []string {
	if !label.Valid() {
		return nil
	}
	names := make([]string, len(t.weights[label]))
	for i, gw := range t.weights[label] {
		names[i] = gw.Genre
	}
	return names
}

// Entries returns every weight in label order, then weight order.
func (t *Table) Entries() []recommend.GenreWeight {
	var out []recommend.GenreWeight
	for _, l := range recommend.Labels {
		out = append(out, t.weights[l]...)
	}
	return out
}

// Len returns the number of entries.
func (t *Table) Len() int {
	n := 0
	for _, ws := range t.weights {
		n += len(ws)
	}
	return n
}

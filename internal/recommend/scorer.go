// MoodRec - Sentiment-Weighted Media Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodrec

package recommend

import (
	"sort"
)

// AffinitySource supplies the genre weights for each label, heaviest first.
type AffinitySource interface {
	WeightsFor(label Label) []GenreWeight
}

// Scorer ranks an immutable catalog against sentiment scores. It holds no
// mutable state after construction and is safe for concurrent use.
type Scorer struct {
	items     []MediaItem
	itemKeys  [][]string
	weights   [len(Labels)]map[string]float64
	table     AffinitySource
	tolerance float64
}

// ScorerOption customizes a Scorer.
type ScorerOption func(*Scorer)

// WithTolerance overrides DefaultScoreTolerance.
func WithTolerance(tolerance float64) ScorerOption {
	return func(s *Scorer) {
		if tolerance > 0 {
			s.tolerance = tolerance
		}
	}
}

// NewScorer copies items and precomputes per-label genre weights from table.
// Catalog order is preserved and used to break score ties.
func NewScorer(items []MediaItem, table AffinitySource, opts ...ScorerOption) *Scorer {
	s := &Scorer{
		items:     make([]MediaItem, len(items)),
		itemKeys:  make([][]string, len(items)),
		table:     table,
		tolerance: DefaultScoreTolerance,
	}
	for i, item := range items {
		item.Genres = append([]string(nil), item.Genres...)
		s.items[i] = item
		s.itemKeys[i] = uniqueGenreKeys(item.Genres)
	}
	for _, l := range Labels {
		m := make(map[string]float64)
		for _, gw := range table.WeightsFor(l) {
			k := GenreKey(gw.Genre)
			if _, dup := m[k]; !dup && gw.Weight > 0 {
				m[k] = gw.Weight
			}
		}
		s.weights[l] = m
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// RankOptions narrows or changes how Rank applies a score.
type RankOptions struct {
	// Kind restricts results to one media kind; empty means any.
	Kind MediaKind

	// Mode defaults to ModeWeighted.
	Mode Mode
}

// Recommend returns up to k items ranked by sentiment-weighted genre affinity.
//
// Each item scores Σ p(label) × Σ weight(label, genre) over its genres. Items
// scoring zero are left out, equal scores keep catalog order, and the list is
// cut to k. The score is validated before k; both fail before any work.
func (s *Scorer) Recommend(score SentimentScore, k int) ([]RankedRecommendation, error) {
	return s.Rank(score, k, RankOptions{})
}

// Rank is Recommend with a kind filter and mode selection.
func (s *Scorer) Rank(score SentimentScore, k int, opts RankOptions) ([]RankedRecommendation, error) {
	if err := ValidateScore(score, s.tolerance); err != nil {
		return nil, err
	}
	if k < 1 {
		return nil, &InvalidParameterError{Name: "k", Value: k, Reason: "must be at least 1"}
	}
	switch opts.Mode {
	case "", ModeWeighted:
	case ModeDominant:
		score = OneHot(DominantLabel(score))
	default:
		return nil, &InvalidParameterError{Name: "mode", Value: opts.Mode, Reason: "must be weighted or dominant"}
	}
	switch opts.Kind {
	case "", KindMovie, KindBook:
	default:
		return nil, &InvalidParameterError{Name: "kind", Value: opts.Kind, Reason: "must be movie or book"}
	}

	type candidate struct {
		index int
		score float64
	}
	candidates := make([]candidate, 0, len(s.items))
	for i := range s.items {
		if opts.Kind != "" && s.items[i].Kind != opts.Kind {
			continue
		}
		if total := s.itemScore(i, score); total > 0 {
			candidates = append(candidates, candidate{index: i, score: total})
		}
	}

	// Stable: candidates are in catalog order, so ties keep it.
	sort.SliceStable(candidates, func(a, b int) bool {
		return candidates[a].score > candidates[b].score
	})
	if len(candidates) > k {
		candidates = candidates[:k]
	}

	out := make([]RankedRecommendation, len(candidates))
	for i, c := range candidates {
		item := s.items[c.index]
		item.Genres = append([]string(nil), item.Genres...)
		out[i] = RankedRecommendation{Item: item, Score: c.score}
	}
	return out, nil
}

func (s *Scorer) itemScore(i int, score SentimentScore) float64 {
	var total float64
	for _, l := range Labels {
		p := score.Probability(l)
		if p <= 0 {
			continue
		}
		var affinity float64
		for _, key := range s.itemKeys[i] {
			affinity += s.weights[l][key]
		}
		total += p * affinity
	}
	return total
}

// Genres returns the genre names associated with label, heaviest first.
func (s *Scorer) Genres(label Label) []string {
	weights := s.table.WeightsFor(label)
	names := make([]string, len(weights))
	for i, gw := range weights {
		names[i] = gw.Genre
	}
	return names
}

// WeightsFor exposes the affinity table the Scorer was built with.
func (s *Scorer) WeightsFor(label Label) []GenreWeight {
	return s.table.WeightsFor(label)
}

// Items returns a copy of the catalog in insertion order.
func (s *Scorer) Items() []MediaItem {
	out := make([]MediaItem, len(s.items))
	for i, item := range s.items {
		item.Genres = append([]string(nil), item.Genres...)
		out[i] = item
	}
	return out
}

// Len returns the catalog size.
func (s *Scorer) Len() int {
	return len(s.items)
}

// Tolerance returns the score-sum tolerance in use.
func (s *Scorer) Tolerance() float64 {
	return s.tolerance
}

// MoodRec - Sentiment-Weighted Media Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodrec

package affinity_test

import (
	"errors"
	"testing"

	"github.com/tomtom215/moodrec/internal/recommend"
	"github.com/tomtom215/moodrec/internal/recommend/affinity"
)

func TestDefaultTable_MostlyPositiveScore(t *testing.T) {
	items := []recommend.MediaItem{
		{ID: "1", Title: "Comedy Movie", Kind: recommend.KindMovie, Genres: []string{"Comedy"}},
		{ID: "2", Title: "Documentary Movie", Kind: recommend.KindMovie, Genres: []string{"Documentary"}},
		{ID: "3", Title: "Horror Movie", Kind: recommend.KindMovie, Genres: []string{"Horror"}},
	}
	s := recommend.NewScorer(items, affinity.Default())

	recs, err := s.Recommend(recommend.SentimentScore{Positive: 0.9, Neutral: 0.05, Negative: 0.05}, 3)
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if len(recs) != 3 {
		t.Fatalf("len(recs) = %d, want 3", len(recs))
	}
	if recs[0].Item.Genres[0] != "Comedy" {
		t.Errorf("first = %s, want the Comedy item", recs[0].Item.Title)
	}
	if recs[2].Item.Genres[0] != "Horror" {
		t.Errorf("last = %s, want the Horror item", recs[2].Item.Title)
	}

	_, err = s.Recommend(recommend.SentimentScore{Positive: 0.5, Neutral: 0.6, Negative: 0.1}, 3)
	if !errors.Is(err, recommend.ErrInvalidScore) {
		t.Errorf("Recommend() error = %v, want ErrInvalidScore", err)
	}
}

func TestDefaultTable_SharedGenreScoresUnderBothLabels(t *testing.T) {
	items := []recommend.MediaItem{
		{ID: "1", Title: "Tense", Kind: recommend.KindBook, Genres: []string{"Thriller"}},
	}
	s := recommend.NewScorer(items, affinity.Default())

	recs, err := s.Recommend(recommend.SentimentScore{Neutral: 0.5, Negative: 0.5}, 1)
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	// Thriller weighs 1 for Neutral and 9 for Negative.
	if want := 0.5*1 + 0.5*9; recs[0].Score != want {
		t.Errorf("score = %v, want %v", recs[0].Score, want)
	}
}

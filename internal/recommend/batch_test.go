// MoodRec - Sentiment-Weighted Media Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodrec

package recommend

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
)

// wordClassifier scores texts by keyword so results are predictable per text.
func wordClassifier() Classifier {
	return classifierFunc(func(ctx context.Context, text string) (SentimentScore, error) {
		switch {
		case strings.Contains(text, "love"):
			return SentimentScore{Positive: 0.8, Neutral: 0.1, Negative: 0.1}, nil
		case strings.Contains(text, "hate"):
			return SentimentScore{Positive: 0.1, Neutral: 0.1, Negative: 0.8}, nil
		case strings.Contains(text, "broken"):
			return SentimentScore{Positive: 0.9, Neutral: 0.9, Negative: 0.9}, nil
		default:
			return SentimentScore{Positive: 0.1, Neutral: 0.8, Negative: 0.1}, nil
		}
	})
}

func TestEngine_AnalyzeBatch(t *testing.T) {
	e := newTestEngine(t, nil, wordClassifier())

	resp, err := e.AnalyzeBatch(context.Background(), BatchRequest{
		Texts: []string{"I love it", "I hate it", "", "the train left", "love again", "broken model"},
		K:     1,
	})
	if err != nil {
		t.Fatalf("AnalyzeBatch() error = %v", err)
	}

	if len(resp.Items) != 6 {
		t.Fatalf("len(Items) = %d, want 6", len(resp.Items))
	}
	for i, item := range resp.Items {
		if item.Index != i {
			t.Errorf("Items[%d].Index = %d", i, item.Index)
		}
	}

	wantTop := map[int]string{0: "Laugh Track", 1: "Night Shift", 3: "Planet Deep", 4: "Laugh Track"}
	for i, title := range wantTop {
		item := resp.Items[i]
		if item.Error != "" {
			t.Errorf("Items[%d].Error = %q", i, item.Error)
			continue
		}
		if len(item.Recommendations) != 1 || item.Recommendations[0].Item.Title != title {
			t.Errorf("Items[%d] top = %v, want %s", i, titles(item.Recommendations), title)
		}
	}

	if resp.Items[2].Error == "" || resp.Items[2].Score != nil {
		t.Errorf("blank text item = %+v, want per-item error", resp.Items[2])
	}
	if !strings.Contains(resp.Items[5].Error, "invalid sentiment score") {
		t.Errorf("malformed score item error = %q", resp.Items[5].Error)
	}

	sum := resp.Summary
	if sum.Total != 6 || sum.Succeeded != 4 || sum.Failed != 2 {
		t.Errorf("summary = %+v, want 6 total, 4 ok, 2 failed", sum)
	}
	wantLabels := map[string]int{"Positive": 2, "Neutral": 1, "Negative": 1}
	for l, n := range wantLabels {
		if sum.LabelCounts[l] != n {
			t.Errorf("LabelCounts[%s] = %d, want %d", l, sum.LabelCounts[l], n)
		}
	}
	if len(sum.TopGenres) == 0 || sum.TopGenres[0].Genre != "Comedy" || sum.TopGenres[0].Count != 2 {
		t.Errorf("TopGenres = %+v, want Comedy x2 first", sum.TopGenres)
	}
	if resp.Metadata.Provider != "func" || resp.Metadata.K != 1 {
		t.Errorf("metadata = %+v", resp.Metadata)
	}
	if e.GetMetrics().BatchCount != 1 {
		t.Errorf("BatchCount = %d, want 1", e.GetMetrics().BatchCount)
	}
}

func TestEngine_AnalyzeBatch_ProviderUnavailableAborts(t *testing.T) {
	c := classifierFunc(func(ctx context.Context, text string) (SentimentScore, error) {
		if text == "second" {
			return SentimentScore{}, NewProviderUnavailable("http", errors.New("connection refused"))
		}
		return SentimentScore{Positive: 1}, nil
	})
	e := newTestEngine(t, nil, c)

	resp, err := e.AnalyzeBatch(context.Background(), BatchRequest{Texts: []string{"first", "second", "third"}})
	if !errors.Is(err, ErrProviderUnavailable) {
		t.Fatalf("AnalyzeBatch() error = %v, want ErrProviderUnavailable", err)
	}
	if resp != nil {
		t.Error("AnalyzeBatch() returned a partial response with an error")
	}
}

func TestEngine_AnalyzeBatch_DeadlineAborts(t *testing.T) {
	c := classifierFunc(func(ctx context.Context, text string) (SentimentScore, error) {
		if text == "second" {
			return SentimentScore{}, fmt.Errorf("%w: rate: Wait(n=1) would exceed context deadline", context.DeadlineExceeded)
		}
		return SentimentScore{Positive: 1}, nil
	})
	e := newTestEngine(t, nil, c)

	resp, err := e.AnalyzeBatch(context.Background(), BatchRequest{Texts: []string{"first", "second", "third"}})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("AnalyzeBatch() error = %v, want context.DeadlineExceeded", err)
	}
	if errors.Is(err, ErrProviderUnavailable) {
		t.Errorf("AnalyzeBatch() error = %v, reported the provider unavailable", err)
	}
	if resp != nil {
		t.Error("AnalyzeBatch() returned a partial response with an error")
	}
}

func TestEngine_AnalyzeBatch_Validation(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Batch.MaxSize = 2
	e := newTestEngine(t, cfg, wordClassifier())

	tests := []struct {
		name string
		req  BatchRequest
	}{
		{"empty batch", BatchRequest{}},
		{"too many texts", BatchRequest{Texts: []string{"a", "b", "c"}}},
		{"bad k", BatchRequest{Texts: []string{"a"}, K: -1}},
		{"bad mode", BatchRequest{Texts: []string{"a"}, Mode: "x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := e.AnalyzeBatch(context.Background(), tt.req); !errors.Is(err, ErrInvalidParameter) {
				t.Errorf("AnalyzeBatch() error = %v, want ErrInvalidParameter", err)
			}
		})
	}
}

func TestEngine_AnalyzeBatch_NoClassifier(t *testing.T) {
	e := newTestEngine(t, nil, nil)

	_, err := e.AnalyzeBatch(context.Background(), BatchRequest{Texts: []string{"hello"}})
	if !errors.Is(err, ErrProviderUnavailable) {
		t.Errorf("AnalyzeBatch() error = %v, want ErrProviderUnavailable", err)
	}
}

func TestPreview(t *testing.T) {
	short := "short text"
	if got := preview(short); got != short {
		t.Errorf("preview(%q) = %q", short, got)
	}

	long := strings.Repeat("é", 150)
	got := preview(long)
	if !strings.HasSuffix(got, "...") {
		t.Errorf("preview() = %q, want trailing ellipsis", got)
	}
	if n := len([]rune(strings.TrimSuffix(got, "..."))); n != 100 {
		t.Errorf("preview() kept %d runes, want 100", n)
	}
}

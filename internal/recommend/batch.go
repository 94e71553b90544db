// MoodRec - Sentiment-Weighted Media Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodrec

package recommend

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"

	"github.com/tomtom215/moodrec/internal/metrics"
)

const (
	previewLength = 100
	topGenreLimit = 15
)

// BatchRequest classifies and recommends for many texts at once.
type BatchRequest struct {
	Texts     []string  `json:"texts"`
	K         int       `json:"k,omitempty"`
	Kind      MediaKind `json:"kind,omitempty"`
	Mode      Mode      `json:"mode,omitempty"`
	RequestID string    `json:"-"`
}

// BatchItem is the outcome for one input text. Exactly one of Score or
// Error is set.
type BatchItem struct {
	Index           int                    `json:"index"`
	Preview         string                 `json:"preview"`
	Score           *SentimentScore        `json:"score,omitempty"`
	Dominant        *Label                 `json:"dominant,omitempty"`
	Recommendations []RankedRecommendation `json:"recommendations,omitempty"`
	Error           string                 `json:"error,omitempty"`
}

// GenreCount is how often a genre appeared across a batch's recommendations.
type GenreCount struct {
	Genre string `json:"genre"`
	Count int    `json:"count"`
}

// BatchSummary aggregates a batch.
type BatchSummary struct {
	Total       int            `json:"total"`
	Succeeded   int            `json:"succeeded"`
	Failed      int            `json:"failed"`
	LabelCounts map[string]int `json:"label_counts"`
	TopGenres   []GenreCount   `json:"top_genres"`
}

// BatchMetadata describes how a BatchResponse was produced.
type BatchMetadata struct {
	RequestID string    `json:"request_id"`
	Provider  string    `json:"provider"`
	K         int       `json:"k"`
	Mode      Mode      `json:"mode"`
	LatencyMS int64     `json:"latency_ms"`
	Timestamp time.Time `json:"timestamp"`
}

// BatchResponse holds per-text results in input order.
type BatchResponse struct {
	Items    []BatchItem   `json:"items"`
	Summary  BatchSummary  `json:"summary"`
	Metadata BatchMetadata `json:"metadata"`
}

// AnalyzeBatch classifies every text concurrently and ranks the catalog for
// each. Blank texts and malformed scores fail only their own item. A provider
// outage or a missed deadline aborts the whole batch and is returned
// unchanged.
func (e *Engine) AnalyzeBatch(ctx context.Context, req BatchRequest) (*BatchResponse, error) {
	start := time.Now()
	e.batchCount.Add(1)

	if len(req.Texts) == 0 {
		e.errorCount.Add(1)
		return nil, &InvalidParameterError{Name: "texts", Value: 0, Reason: "must contain at least one text"}
	}
	if len(req.Texts) > e.config.Batch.MaxSize {
		e.errorCount.Add(1)
		return nil, &InvalidParameterError{
			Name:   "texts",
			Value:  len(req.Texts),
			Reason: "exceeds maximum batch size",
		}
	}
	k, mode, kind, err := e.normalizeParams(req.K, req.Mode, req.Kind)
	if err != nil {
		e.errorCount.Add(1)
		return nil, err
	}
	if req.RequestID == "" {
		req.RequestID = requestIDFrom(ctx)
	}
	metrics.BatchSize.Observe(float64(len(req.Texts)))

	items := make([]BatchItem, len(req.Texts))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.config.Batch.Concurrency)

	for i, text := range req.Texts {
		items[i] = BatchItem{Index: i, Preview: preview(text)}
		g.Go(func() error {
			if strings.TrimSpace(text) == "" {
				items[i].Error = "text is empty"
				return nil
			}
			score, err := e.classify(gctx, text)
			if err != nil {
				if errors.Is(err, ErrProviderUnavailable) ||
					errors.Is(err, context.DeadlineExceeded) ||
					gctx.Err() != nil {
					return err
				}
				items[i].Error = err.Error()
				return nil
			}
			recs, err := e.scorer.Rank(score, k, RankOptions{Kind: kind, Mode: mode})
			if err != nil {
				items[i].Error = err.Error()
				return nil
			}
			dominant := DominantLabel(score)
			items[i].Score = &score
			items[i].Dominant = &dominant
			items[i].Recommendations = recs
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		e.errorCount.Add(1)
		e.logger.Warn().
			Str("request_id", req.RequestID).
			Int("size", len(req.Texts)).
			Err(err).
			Msg("batch aborted")
		return nil, err
	}

	resp := &BatchResponse{
		Items:   items,
		Summary: summarize(items),
		Metadata: BatchMetadata{
			RequestID: req.RequestID,
			Provider:  e.ClassifierName(),
			K:         k,
			Mode:      mode,
			LatencyMS: time.Since(start).Milliseconds(),
			Timestamp: time.Now(),
		},
	}
	for label, n := range resp.Summary.LabelCounts {
		if n > 0 {
			metrics.DominantLabels.WithLabelValues(label).Add(float64(n))
		}
	}

	e.logger.Info().
		Str("request_id", req.RequestID).
		Int("size", resp.Summary.Total).
		Int("failed", resp.Summary.Failed).
		Int64("latency_ms", resp.Metadata.LatencyMS).
		Msg("batch analyzed")
	return resp, nil
}

func summarize(items []BatchItem) BatchSummary {
	sum := BatchSummary{
		Total:       len(items),
		LabelCounts: make(map[string]int, len(Labels)),
	}
	for _, l := range Labels {
		sum.LabelCounts[l.String()] = 0
	}

	counts := make(map[string]int)
	names := make(map[string]string)
	for i := range items {
		if items[i].Dominant == nil {
			sum.Failed++
			continue
		}
		sum.Succeeded++
		sum.LabelCounts[items[i].Dominant.String()]++
		for _, rec := range items[i].Recommendations {
			for _, g := range rec.Item.Genres {
				key := GenreKey(g)
				if _, ok := names[key]; !ok {
					names[key] = g
				}
				counts[key]++
			}
		}
	}

	sum.TopGenres = make([]GenreCount, 0, len(counts))
	for key, n := range counts {
		sum.TopGenres = append(sum.TopGenres, GenreCount{Genre: names[key], Count: n})
	}
	sort.Slice(sum.TopGenres, func(a, b int) bool {
		if sum.TopGenres[a].Count != sum.TopGenres[b].Count {
			return sum.TopGenres[a].Count > sum.TopGenres[b].Count
		}
		return sum.TopGenres[a].Genre < sum.TopGenres[b].Genre
	})
	if len(sum.TopGenres) > topGenreLimit {
		sum.TopGenres = sum.TopGenres[:topGenreLimit]
	}
	return sum
}

// preview shortens text to previewLength runes with a trailing ellipsis.
func preview(text string) string {
	if utf8.RuneCountInString(text) <= previewLength {
		return text
	}
	r := []rune(text)
	return string(r[:previewLength]) + "..."
}

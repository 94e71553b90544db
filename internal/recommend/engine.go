// MoodRec - Sentiment-Weighted Media Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodrec

package recommend

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/moodrec/internal/cache"
	"github.com/tomtom215/moodrec/internal/logging"
	"github.com/tomtom215/moodrec/internal/metrics"
)

// Classifier turns free text into a SentimentScore. Implementations return an
// error matching ErrProviderUnavailable when the model cannot be reached.
type Classifier interface {
	Classify(ctx context.Context, text string) (SentimentScore, error)
	Name() string
}

// Engine serves recommendation requests on top of a Scorer. It adds request
// defaults, a response cache, counters and the text-to-recommendation path.
type Engine struct {
	config     *Config
	logger     zerolog.Logger
	scorer     *Scorer
	classifier Classifier

	requestCount  atomic.Int64
	cacheHits     atomic.Int64
	cacheMisses   atomic.Int64
	errorCount    atomic.Int64
	classifyCount atomic.Int64
	batchCount    atomic.Int64

	cache *cache.LRU[*Response]
}

// NewEngine builds a Scorer over items and table and wraps it. classifier
// may be nil, in which case the text operations report the provider as
// unavailable.
//
//nolint:gocritic // hugeParam: zerolog.Logger is designed to be passed by value
func NewEngine(cfg *Config, items []MediaItem, table AffinitySource, classifier Classifier, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if table == nil {
		return nil, errors.New("affinity table is required")
	}

	e := &Engine{
		config:     cfg.Clone(),
		logger:     logger.With().Str("component", "recommend").Logger(),
		scorer:     NewScorer(items, table, WithTolerance(cfg.ScoreTolerance)),
		classifier: classifier,
	}
	if cfg.Cache.Enabled {
		e.cache = cache.NewLRU[*Response](cfg.Cache.MaxEntries, cfg.Cache.TTL)
	}

	e.logger.Info().
		Int("catalog_size", len(items)).
		Str("provider", e.ClassifierName()).
		Bool("cache", cfg.Cache.Enabled).
		Msg("recommendation engine ready")
	return e, nil
}

// Recommend ranks the catalog for a known sentiment score.
func (e *Engine) Recommend(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	e.requestCount.Add(1)

	req, err := e.prepareRequest(ctx, req)
	if err != nil {
		e.recordFailure(req.Mode, err)
		return nil, err
	}
	logger := e.createRequestLogger(req)

	dominant := DominantLabel(req.Score)
	metrics.DominantLabels.WithLabelValues(dominant.String()).Inc()

	if resp := e.tryGetCachedResponse(req, start, logger); resp != nil {
		return resp, nil
	}

	recs, err := e.scorer.Rank(req.Score, req.K, RankOptions{Kind: req.Kind, Mode: req.Mode})
	if err != nil {
		e.recordFailure(req.Mode, err)
		return nil, err
	}

	resp := &Response{
		Score:           req.Score,
		Dominant:        dominant,
		Recommendations: recs,
		Metadata:        e.buildResponseMetadata(req, start, false),
	}
	e.cacheResponse(req, resp)
	metrics.RecordRecommendation(string(req.Mode), "success", len(recs), time.Since(start))

	logger.Debug().
		Str("dominant", dominant.String()).
		Int("returned", len(recs)).
		Int64("latency_ms", resp.Metadata.LatencyMS).
		Msg("recommendation complete")
	return resp, nil
}

// RecommendText classifies text and ranks the catalog for the result.
// Provider errors are returned unchanged; retrying is left to the caller.
func (e *Engine) RecommendText(ctx context.Context, req TextRequest) (*Response, error) {
	if strings.TrimSpace(req.Text) == "" {
		e.errorCount.Add(1)
		return nil, &InvalidParameterError{Name: "text", Value: req.Text, Reason: "must not be blank"}
	}
	k, mode, kind, err := e.normalizeParams(req.K, req.Mode, req.Kind)
	if err != nil {
		e.recordFailure(req.Mode, err)
		return nil, err
	}
	if req.RequestID == "" {
		req.RequestID = requestIDFrom(ctx)
	}

	classifyStart := time.Now()
	score, err := e.classify(ctx, req.Text)
	if err != nil {
		e.errorCount.Add(1)
		e.logger.Warn().
			Str("request_id", req.RequestID).
			Str("provider", e.ClassifierName()).
			Err(err).
			Msg("sentiment classification failed")
		return nil, err
	}
	classified := time.Since(classifyStart)

	resp, err := e.Recommend(ctx, Request{
		Score:     score,
		K:         k,
		Kind:      kind,
		Mode:      mode,
		RequestID: req.RequestID,
	})
	if err != nil {
		return nil, err
	}
	resp.Metadata.Provider = e.ClassifierName()
	resp.Metadata.ClassifiedMS = classified.Milliseconds()
	return resp, nil
}

// Classify runs the configured classifier and validates its output.
func (e *Engine) Classify(ctx context.Context, text string) (SentimentScore, error) {
	if strings.TrimSpace(text) == "" {
		return SentimentScore{}, &InvalidParameterError{Name: "text", Value: text, Reason: "must not be blank"}
	}
	return e.classify(ctx, text)
}

func (e *Engine) classify(ctx context.Context, text string) (SentimentScore, error) {
	if e.classifier == nil {
		return SentimentScore{}, NewProviderUnavailable("none", errors.New("no sentiment provider configured"))
	}
	e.classifyCount.Add(1)
	score, err := e.classifier.Classify(ctx, text)
	if err != nil {
		return SentimentScore{}, err
	}
	if err := ValidateScore(score, e.config.ScoreTolerance); err != nil {
		return SentimentScore{}, &ProviderResponseError{Provider: e.classifier.Name(), Err: err}
	}
	return score, nil
}

func (e *Engine) prepareRequest(ctx context.Context, req Request) (Request, error) {
	if req.Mode == "" {
		req.Mode = ModeWeighted
	}
	if err := ValidateScore(req.Score, e.config.ScoreTolerance); err != nil {
		return req, err
	}
	k, mode, kind, err := e.normalizeParams(req.K, req.Mode, req.Kind)
	if err != nil {
		return req, err
	}
	req.K, req.Mode, req.Kind = k, mode, kind
	if req.RequestID == "" {
		req.RequestID = requestIDFrom(ctx)
	}
	return req, nil
}

// normalizeParams applies the default K and checks K, mode and kind.
func (e *Engine) normalizeParams(k int, mode Mode, kind MediaKind) (int, Mode, MediaKind, error) {
	if k == 0 {
		k = e.config.Limits.DefaultK
	}
	if k < 1 {
		return 0, "", "", &InvalidParameterError{Name: "k", Value: k, Reason: "must be at least 1"}
	}
	if k > e.config.Limits.MaxK {
		return 0, "", "", &InvalidParameterError{
			Name:   "k",
			Value:  k,
			Reason: fmt.Sprintf("must not exceed %d", e.config.Limits.MaxK),
		}
	}
	m, err := ParseMode(string(mode))
	if err != nil {
		return 0, "", "", err
	}
	kd, err := ParseMediaKind(string(kind))
	if err != nil {
		return 0, "", "", err
	}
	return k, m, kd, nil
}

func (e *Engine) createRequestLogger(req Request) zerolog.Logger {
	return e.logger.With().
		Str("request_id", req.RequestID).
		Str("mode", string(req.Mode)).
		Int("k", req.K).
		Logger()
}

//nolint:gocritic // hugeParam: logger passed by value
func (e *Engine) tryGetCachedResponse(req Request, start time.Time, logger zerolog.Logger) *Response {
	if e.cache == nil {
		return nil
	}
	cached, ok := e.cache.Get(cacheKey(req))
	if !ok {
		e.cacheMisses.Add(1)
		metrics.RecommendCacheMisses.Inc()
		return nil
	}

	e.cacheHits.Add(1)
	metrics.RecommendCacheHits.Inc()
	resp := copyResponse(cached)
	resp.Metadata = e.buildResponseMetadata(req, start, true)
	metrics.RecordRecommendation(string(req.Mode), "success", len(resp.Recommendations), time.Since(start))
	logger.Debug().Msg("cache hit")
	return resp
}

func (e *Engine) cacheResponse(req Request, resp *Response) {
	if e.cache != nil {
		e.cache.Set(cacheKey(req), copyResponse(resp))
	}
}

func (e *Engine) buildResponseMetadata(req Request, start time.Time, cacheHit bool) ResponseMetadata {
	return ResponseMetadata{
		RequestID:   req.RequestID,
		Mode:        req.Mode,
		K:           req.K,
		Kind:        req.Kind,
		CatalogSize: e.scorer.Len(),
		LatencyMS:   time.Since(start).Milliseconds(),
		CacheHit:    cacheHit,
		Timestamp:   time.Now(),
	}
}

func (e *Engine) recordFailure(mode Mode, err error) {
	e.errorCount.Add(1)
	if mode == "" {
		mode = ModeWeighted
	}
	metrics.RecordRecommendation(string(mode), outcomeFor(err), 0, 0)
}

func outcomeFor(err error) string {
	switch {
	case errors.Is(err, ErrInvalidScore):
		return "invalid_score"
	case errors.Is(err, ErrInvalidParameter):
		return "invalid_parameter"
	default:
		return "error"
	}
}

func cacheKey(req Request) string {
	f := func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
	return "rec:" + f(req.Score.Positive) + ":" + f(req.Score.Neutral) + ":" + f(req.Score.Negative) +
		":" + strconv.Itoa(req.K) + ":" + string(req.Kind) + ":" + string(req.Mode)
}

func copyResponse(resp *Response) *Response {
	out := *resp
	out.Recommendations = make([]RankedRecommendation, len(resp.Recommendations))
	for i, r := range resp.Recommendations {
		r.Item.Genres = append([]string(nil), r.Item.Genres...)
		out.Recommendations[i] = r
	}
	return &out
}

func requestIDFrom(ctx context.Context) string {
	if id := logging.RequestIDFromContext(ctx); id != "" {
		return id
	}
	return logging.GenerateRequestID()
}

// Genres returns the genre names for label, heaviest first.
func (e *Engine) Genres(label Label) []string {
	return e.scorer.Genres(label)
}

// GenreWeights returns the affinity weights for label, heaviest first.
func (e *Engine) GenreWeights(label Label) []GenreWeight {
	return e.scorer.WeightsFor(label)
}

// Catalog returns catalog items of the given kind in insertion order; an
// empty kind returns everything.
func (e *Engine) Catalog(kind MediaKind) []MediaItem {
	items := e.scorer.Items()
	if kind == "" {
		return items
	}
	out := items[:0]
	for _, item := range items {
		if item.Kind == kind {
			out = append(out, item)
		}
	}
	return out
}

// Scorer returns the underlying Scorer.
func (e *Engine) Scorer() *Scorer {
	return e.scorer
}

// ClassifierName names the configured classifier, or "none".
func (e *Engine) ClassifierName() string {
	if e.classifier == nil {
		return "none"
	}
	return e.classifier.Name()
}

// GetMetrics returns a snapshot of the Engine counters.
func (e *Engine) GetMetrics() Metrics {
	return Metrics{
		RequestCount:  e.requestCount.Load(),
		CacheHits:     e.cacheHits.Load(),
		CacheMisses:   e.cacheMisses.Load(),
		ErrorCount:    e.errorCount.Load(),
		ClassifyCount: e.classifyCount.Load(),
		BatchCount:    e.batchCount.Load(),
	}
}

// GetConfig returns a copy of the Engine configuration.
func (e *Engine) GetConfig() *Config {
	return e.config.Clone()
}

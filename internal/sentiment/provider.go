// MoodRec - Sentiment-Weighted Media Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodrec

// Package sentiment provides recommend.Classifier implementations.
//
// LexiconProvider works offline. HTTPProvider calls a remote inference
// endpoint. New assembles the configured provider behind a circuit breaker
// and a metrics decorator:
//
//	classifier, err := sentiment.New(cfg.Sentiment, logger)
//	engine, err := recommend.NewEngine(recCfg, items, table, classifier, logger)
package sentiment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/moodrec/internal/config"
	"github.com/tomtom215/moodrec/internal/metrics"
	"github.com/tomtom215/moodrec/internal/recommend"
)

// Pinger is implemented by providers that can check their own health more
// cheaply than a full classification.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Ping checks that c is usable, via Ping when it implements Pinger and a
// short classification otherwise.
func Ping(ctx context.Context, c recommend.Classifier) error {
	if p, ok := c.(Pinger); ok {
		return p.Ping(ctx)
	}
	_, err := c.Classify(ctx, "ping")
	return err
}

// New builds the provider selected by cfg.
//
//nolint:gocritic // hugeParam: zerolog.Logger is designed to be passed by value
func New(cfg config.SentimentConfig, logger zerolog.Logger) (*Instrumented, error) {
	var base recommend.Classifier
	switch cfg.Provider {
	case "", config.SentimentProviderLexicon:
		base = NewLexiconProvider(nil)
	case config.SentimentProviderHTTP:
		p, err := NewHTTPProvider(HTTPConfig{
			Endpoint:      cfg.Endpoint,
			APIToken:      cfg.APIToken,
			Timeout:       cfg.Timeout,
			RateLimit:     cfg.RateLimit,
			MaxTextLength: cfg.MaxTextLength,
		})
		if err != nil {
			return nil, err
		}
		base = p
	default:
		return nil, fmt.Errorf("unknown sentiment provider %q", cfg.Provider)
	}

	if cfg.Breaker.Enabled {
		base = NewBreakerProvider(base, cfg.Breaker, logger)
	}
	return NewInstrumented(base, logger), nil
}

// Instrumented records latency and outcome metrics for every call to the
// wrapped classifier.
type Instrumented struct {
	inner  recommend.Classifier
	logger zerolog.Logger
}

// NewInstrumented wraps inner.
//
//nolint:gocritic // hugeParam: zerolog.Logger is designed to be passed by value
func NewInstrumented(inner recommend.Classifier, logger zerolog.Logger) *Instrumented {
	return &Instrumented{
		inner:  inner,
		logger: logger.With().Str("component", "sentiment").Str("provider", inner.Name()).Logger(),
	}
}

// Name reports the wrapped provider's name.
func (i *Instrumented) Name() string { return i.inner.Name() }

// Classify implements recommend.Classifier.
func (i *Instrumented) Classify(ctx context.Context, text string) (recommend.SentimentScore, error) {
	start := time.Now()
	score, err := i.inner.Classify(ctx, text)
	elapsed := time.Since(start)

	outcome := Outcome(err)
	metrics.RecordClassification(i.inner.Name(), outcome, elapsed)
	if err != nil {
		i.logger.Warn().Err(err).Str("outcome", outcome).Dur("duration", elapsed).Msg("classification failed")
		return score, err
	}
	i.logger.Debug().
		Stringer("dominant", recommend.DominantLabel(score)).
		Dur("duration", elapsed).
		Msg("text classified")
	return score, nil
}

// Ping checks the wrapped provider and records the result in the
// provider-up gauge.
func (i *Instrumented) Ping(ctx context.Context) error {
	err := Ping(ctx, i.inner)
	metrics.SetProviderUp(i.inner.Name(), err == nil)
	return err
}

// BreakerState returns the circuit state when the wrapped provider sits
// behind a breaker, and "" otherwise.
func (i *Instrumented) BreakerState() string {
	if b, ok := i.inner.(*BreakerProvider); ok {
		return b.State()
	}
	return ""
}

// Outcome names the metrics outcome for a classification error.
func Outcome(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, recommend.ErrProviderUnavailable):
		return "unavailable"
	default:
		return "error"
	}
}

// MoodRec - Sentiment-Weighted Media Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodrec

package sentiment

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/moodrec/internal/config"
	"github.com/tomtom215/moodrec/internal/metrics"
	"github.com/tomtom215/moodrec/internal/recommend"
)

// BreakerProvider guards a classifier with a circuit breaker. Only provider
// unavailability counts as a failure; while the circuit is open calls fail
// immediately with a *recommend.ProviderUnavailableError.
//
// The breaker uses wall-clock time for its interval and timeout, so tests
// trip it with MinRequests failures rather than waiting on it.
type BreakerProvider struct {
	inner  recommend.Classifier
	cb     *gobreaker.CircuitBreaker[recommend.SentimentScore]
	name   string
	logger zerolog.Logger
}

// NewBreakerProvider wraps inner. The breaker opens once at least
// cfg.MinRequests calls were made in the current interval and the failure
// ratio reaches cfg.FailureRatio.
//
//nolint:gocritic // hugeParam: zerolog.Logger is designed to be passed by value
func NewBreakerProvider(inner recommend.Classifier, cfg config.BreakerConfig, logger zerolog.Logger) *BreakerProvider {
	cbName := "sentiment-" + inner.Name()
	logger = logger.With().Str("component", "circuit_breaker").Str("breaker", cbName).Logger()

	metrics.CircuitBreakerState.WithLabelValues(cbName).Set(0) // 0 = closed
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(cbName).Set(0)

	minRequests := cfg.MinRequests
	if minRequests == 0 {
		minRequests = 1
	}

	cb := gobreaker.NewCircuitBreaker[recommend.SentimentScore](gobreaker.Settings{
		Name:        cbName,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,

		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < minRequests {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			shouldTrip := failureRatio >= cfg.FailureRatio
			if shouldTrip {
				logger.Warn().
					Uint32("failures", counts.TotalFailures).
					Float64("failure_rate", failureRatio*100).
					Msg("opening circuit")
			}
			return shouldTrip
		},

		OnStateChange: func(name string, from, to gobreaker.State) {
			fromStr := stateToString(from)
			toStr := stateToString(to)
			logger.Info().Str("from", fromStr).Str("to", toStr).Msg("circuit state transition")

			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, fromStr, toStr).Inc()
			if to == gobreaker.StateClosed {
				metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)
			}
		},

		// Bad input or a cancelled caller says nothing about the provider.
		IsSuccessful: func(err error) bool {
			return err == nil || !errors.Is(err, recommend.ErrProviderUnavailable)
		},
	})

	return &BreakerProvider{inner: inner, cb: cb, name: cbName, logger: logger}
}

// Name reports the wrapped provider's name.
func (b *BreakerProvider) Name() string { return b.inner.Name() }

// Classify implements recommend.Classifier.
func (b *BreakerProvider) Classify(ctx context.Context, text string) (recommend.SentimentScore, error) {
	score, err := b.cb.Execute(func() (recommend.SentimentScore, error) {
		return b.inner.Classify(ctx, text)
	})
	if err == nil {
		metrics.CircuitBreakerRequests.WithLabelValues(b.name, "success").Inc()
		metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(b.name).Set(0)
		return score, nil
	}

	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		metrics.CircuitBreakerRequests.WithLabelValues(b.name, "rejected").Inc()
		b.logger.Debug().Err(err).Msg("request rejected")
		return recommend.SentimentScore{}, recommend.NewProviderUnavailable(b.inner.Name(), err)
	}

	metrics.CircuitBreakerRequests.WithLabelValues(b.name, "failure").Inc()
	counts := b.cb.Counts()
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(b.name).Set(float64(counts.ConsecutiveFailures))
	return recommend.SentimentScore{}, err
}

// Ping forwards to the wrapped provider without going through the breaker,
// so health probes keep reporting while the circuit is open.
func (b *BreakerProvider) Ping(ctx context.Context) error {
	return Ping(ctx, b.inner)
}

// State returns the circuit state as "closed", "half-open" or "open".
func (b *BreakerProvider) State() string {
	return stateToString(b.cb.State())
}

// stateToFloat converts circuit breaker state to numeric value for metrics
func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

// stateToString converts circuit breaker state to string for logging
func stateToString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}

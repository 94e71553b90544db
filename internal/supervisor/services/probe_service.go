// MoodRec - Sentiment-Weighted Media Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodrec

package services

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/moodrec/internal/models"
)

// Prober is a sentiment provider that can report its own health.
type Prober interface {
	Name() string
	Ping(ctx context.Context) error
}

// breakerStater is implemented by providers wrapped in a circuit breaker.
type breakerStater interface {
	BreakerState() string
}

// ProbeServiceConfig holds configuration for the provider health probe.
type ProbeServiceConfig struct {
	// Interval between probes. Default: 30s
	Interval time.Duration

	// Timeout for a single probe. Default: 5s
	Timeout time.Duration
}

// ProbeService periodically pings the sentiment provider and keeps the most
// recent result for the health endpoint.
type ProbeService struct {
	prober Prober
	config ProbeServiceConfig
	logger zerolog.Logger
	name   string

	mu   sync.RWMutex
	last models.ProviderHealth
}

// NewProbeService creates a new probe service.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewProbeService(prober Prober, cfg ProbeServiceConfig, logger zerolog.Logger) *ProbeService {
	if cfg.Interval <= 0 {
		cfg.Interval = 30 * time.Second
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 5 * time.Second
	}
	return &ProbeService{
		prober: prober,
		config: cfg,
		logger: logger.With().Str("service", "sentiment-probe").Logger(),
		name:   "sentiment-probe",
		last:   models.ProviderHealth{Name: prober.Name()},
	}
}

// Serve implements suture.Service. It probes once immediately and then on
// every tick until the context is canceled.
func (s *ProbeService) Serve(ctx context.Context) error {
	s.logger.Info().
		Str("provider", s.prober.Name()).
		Dur("interval", s.config.Interval).
		Msg("provider probe starting")

	s.probe(ctx)

	ticker := time.NewTicker(s.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("provider probe shutting down")
			return ctx.Err()

		case <-ticker.C:
			s.probe(ctx)
		}
	}
}

// probe runs one health check and records the result.
func (s *ProbeService) probe(ctx context.Context) {
	probeCtx, cancel := context.WithTimeout(ctx, s.config.Timeout)
	defer cancel()

	start := time.Now()
	err := s.prober.Ping(probeCtx)

	health := models.ProviderHealth{
		Name:        s.prober.Name(),
		Up:          err == nil,
		LastChecked: time.Now(),
	}
	if err != nil {
		health.LastError = err.Error()
	}
	if b, ok := s.prober.(breakerStater); ok {
		health.BreakerState = b.BreakerState()
	}

	s.mu.Lock()
	wasUp := s.last.Up
	checkedBefore := !s.last.LastChecked.IsZero()
	s.last = health
	s.mu.Unlock()

	switch {
	case err != nil && (wasUp || !checkedBefore):
		s.logger.Warn().Err(err).Dur("duration", time.Since(start)).Msg("sentiment provider is down")
	case err == nil && !wasUp && checkedBefore:
		s.logger.Info().Dur("duration", time.Since(start)).Msg("sentiment provider recovered")
	default:
		s.logger.Debug().Bool("up", health.Up).Dur("duration", time.Since(start)).Msg("provider probe complete")
	}
}

// ProviderHealth returns the most recent probe result. Before the first probe
// it reports the provider as down with a zero LastChecked.
func (s *ProbeService) ProviderHealth() models.ProviderHealth {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.last
}

// String returns the service name for logging.
func (s *ProbeService) String() string {
	return s.name
}

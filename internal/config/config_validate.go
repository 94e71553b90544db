// MoodRec - Sentiment-Weighted Media Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodrec

package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/tomtom215/moodrec/internal/logging"
)

// Validate checks the configuration for values the application cannot run with.
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	if err := c.validateSecurity(); err != nil {
		return err
	}
	if err := c.validateRecommend(); err != nil {
		return err
	}
	if err := c.validateSentiment(); err != nil {
		return err
	}
	return c.validateCatalog()
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive, got %s", c.Server.Timeout)
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("SHUTDOWN_TIMEOUT must be positive, got %s", c.Server.ShutdownTimeout)
	}
	return nil
}

func (c *Config) validateLogging() error {
	if !logging.ValidLevel(c.Logging.Level) {
		return fmt.Errorf("LOG_LEVEL %q is not a valid level", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("LOG_FORMAT must be json or console, got %q", c.Logging.Format)
	}
	return nil
}

func (c *Config) validateSecurity() error {
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs < 1 {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be positive, got %d", c.Security.RateLimitReqs)
	}
	if c.Security.RateLimitWindow <= 0 {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be positive, got %s", c.Security.RateLimitWindow)
	}
	return nil
}

func (c *Config) validateRecommend() error {
	r := c.Recommend
	if r.DefaultK < 1 {
		return fmt.Errorf("RECOMMEND_DEFAULT_K must be at least 1, got %d", r.DefaultK)
	}
	if r.MaxK < r.DefaultK {
		return fmt.Errorf("RECOMMEND_MAX_K (%d) must be >= RECOMMEND_DEFAULT_K (%d)", r.MaxK, r.DefaultK)
	}
	if r.ScoreTolerance <= 0 || r.ScoreTolerance >= 1 {
		return fmt.Errorf("RECOMMEND_SCORE_TOLERANCE must be in (0,1), got %g", r.ScoreTolerance)
	}
	if r.CacheEnabled && r.CacheTTL <= 0 {
		return fmt.Errorf("RECOMMEND_CACHE_TTL must be positive when caching is enabled, got %s", r.CacheTTL)
	}
	if r.BatchConcurrency < 1 {
		return fmt.Errorf("BATCH_CONCURRENCY must be at least 1, got %d", r.BatchConcurrency)
	}
	if r.MaxBatchSize < 1 {
		return fmt.Errorf("BATCH_MAX_SIZE must be at least 1, got %d", r.MaxBatchSize)
	}
	return nil
}

func (c *Config) validateSentiment() error {
	s := c.Sentiment
	switch s.Provider {
	case SentimentProviderLexicon:
	case SentimentProviderHTTP:
		u, err := url.Parse(s.Endpoint)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("SENTIMENT_ENDPOINT must be an http(s) URL when SENTIMENT_PROVIDER=http, got %q", s.Endpoint)
		}
		if s.Timeout <= 0 {
			return fmt.Errorf("SENTIMENT_TIMEOUT must be positive, got %s", s.Timeout)
		}
		if s.RateLimit <= 0 {
			return fmt.Errorf("SENTIMENT_RATE_LIMIT must be positive, got %g", s.RateLimit)
		}
		// A full batch is paced by the client-side rate limit and must
		// finish before the server gives up on the response.
		need := time.Duration(float64(c.Recommend.MaxBatchSize) / s.RateLimit * float64(time.Second))
		if budget := c.Server.HandlerBudget(); need > budget {
			return fmt.Errorf("BATCH_MAX_SIZE %d at SENTIMENT_RATE_LIMIT %g/s needs %s, over the %s budget of HTTP_TIMEOUT %s",
				c.Recommend.MaxBatchSize, s.RateLimit, need, budget, c.Server.Timeout)
		}
	default:
		return fmt.Errorf("SENTIMENT_PROVIDER must be %s or %s, got %q",
			SentimentProviderLexicon, SentimentProviderHTTP, s.Provider)
	}
	if s.MaxTextLength < 1 {
		return fmt.Errorf("SENTIMENT_MAX_TEXT_LENGTH must be positive, got %d", s.MaxTextLength)
	}
	if s.Breaker.Enabled {
		if s.Breaker.FailureRatio <= 0 || s.Breaker.FailureRatio > 1 {
			return fmt.Errorf("sentiment.breaker.failure_ratio must be in (0,1], got %g", s.Breaker.FailureRatio)
		}
		if s.Breaker.Timeout <= 0 {
			return fmt.Errorf("sentiment.breaker.timeout must be positive, got %s", s.Breaker.Timeout)
		}
	}
	return nil
}

func (c *Config) validateCatalog() error {
	switch strings.ToLower(c.Catalog.Source) {
	case CatalogSourceStatic:
		return nil
	case CatalogSourceFile, CatalogSourceBadger, CatalogSourceSQLite:
		if c.Catalog.Path == "" {
			return fmt.Errorf("CATALOG_PATH is required when CATALOG_SOURCE=%s", c.Catalog.Source)
		}
		return nil
	default:
		return fmt.Errorf("CATALOG_SOURCE must be one of static, file, badger, sqlite, got %q", c.Catalog.Source)
	}
}

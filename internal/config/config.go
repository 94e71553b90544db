// MoodRec - Sentiment-Weighted Media Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodrec

// Package config loads MoodRec configuration.
//
// Values are layered with koanf: struct defaults, then an optional YAML file
// (CONFIG_PATH or one of DefaultConfigPaths), then environment variables.
// Later layers win.
//
//	cfg, err := config.Load()
//	if err != nil {
//	    return err
//	}
//	logging.Init(logging.Config{Level: cfg.Logging.Level, Format: cfg.Logging.Format})
package config

import "time"

// Sentiment provider kinds.
const (
	SentimentProviderLexicon = "lexicon"
	SentimentProviderHTTP    = "http"
)

// Catalog source kinds.
const (
	CatalogSourceStatic = "static"
	CatalogSourceFile   = "file"
	CatalogSourceBadger = "badger"
	CatalogSourceSQLite = "sqlite"
)

// Config is the complete application configuration.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Logging   LoggingConfig   `koanf:"logging"`
	Security  SecurityConfig  `koanf:"security"`
	Recommend RecommendConfig `koanf:"recommend"`
	Sentiment SentimentConfig `koanf:"sentiment"`
	Catalog   CatalogConfig   `koanf:"catalog"`
	Affinity  AffinityConfig  `koanf:"affinity"`
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	Timeout         time.Duration `koanf:"timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// LoggingConfig mirrors logging.Config for the fields that are configurable.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// SecurityConfig holds request throttling and CORS settings.
type SecurityConfig struct {
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
}

// RecommendConfig tunes the recommendation engine.
type RecommendConfig struct {
	DefaultK         int           `koanf:"default_k"`
	MaxK             int           `koanf:"max_k"`
	ScoreTolerance   float64       `koanf:"score_tolerance"`
	CacheEnabled     bool          `koanf:"cache_enabled"`
	CacheTTL         time.Duration `koanf:"cache_ttl"`
	CacheMaxEntries  int           `koanf:"cache_max_entries"`
	BatchConcurrency int           `koanf:"batch_concurrency"`
	MaxBatchSize     int           `koanf:"max_batch_size"`
}

// SentimentConfig selects and tunes the sentiment provider.
type SentimentConfig struct {
	// Provider is "lexicon" (offline) or "http" (remote inference endpoint).
	Provider      string        `koanf:"provider"`
	Endpoint      string        `koanf:"endpoint"`
	APIToken      string        `koanf:"api_token"`
	Timeout       time.Duration `koanf:"timeout"`
	RateLimit     float64       `koanf:"rate_limit"`
	MaxTextLength int           `koanf:"max_text_length"`
	ProbeInterval time.Duration `koanf:"probe_interval"`
	Breaker       BreakerConfig `koanf:"breaker"`
}

// BreakerConfig configures the circuit breaker in front of the provider.
type BreakerConfig struct {
	Enabled      bool          `koanf:"enabled"`
	MaxRequests  uint32        `koanf:"max_requests"`
	Interval     time.Duration `koanf:"interval"`
	Timeout      time.Duration `koanf:"timeout"`
	MinRequests  uint32        `koanf:"min_requests"`
	FailureRatio float64       `koanf:"failure_ratio"`
}

// CatalogConfig selects where media items are loaded from.
type CatalogConfig struct {
	Source string `koanf:"source"`
	Path   string `koanf:"path"`
}

// AffinityConfig points at an optional genre affinity file.
// An empty File uses the built-in table.
type AffinityConfig struct {
	File string `koanf:"file"`
}

// HandlerBudget is how long a handler may spend on a request and still
// write its response inside the server's write timeout.
func (s ServerConfig) HandlerBudget() time.Duration {
	return s.Timeout - s.Timeout/10
}

// Addr returns the host:port listen address.
func (s ServerConfig) Addr() string {
	return joinHostPort(s.Host, s.Port)
}

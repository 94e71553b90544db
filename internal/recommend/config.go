// MoodRec - Sentiment-Weighted Media Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodrec

package recommend

import (
	"fmt"
	"time"
)

// Config tunes the Engine.
type Config struct {
	Limits LimitsConfig `json:"limits"`
	Cache  CacheConfig  `json:"cache"`
	Batch  BatchConfig  `json:"batch"`

	// ScoreTolerance is the allowed distance of a score's sum from 1.
	ScoreTolerance float64 `json:"score_tolerance"`
}

// LimitsConfig bounds request sizes.
type LimitsConfig struct {
	// DefaultK applies when a request leaves K at zero.
	DefaultK int `json:"default_k"`

	// MaxK is the largest K a request may ask for.
	MaxK int `json:"max_k"`
}

// CacheConfig controls the response cache.
type CacheConfig struct {
	Enabled    bool          `json:"enabled"`
	TTL        time.Duration `json:"ttl"`
	MaxEntries int           `json:"max_entries"`
}

// BatchConfig controls AnalyzeBatch.
type BatchConfig struct {
	// Concurrency is the number of texts classified at once.
	Concurrency int `json:"concurrency"`

	// MaxSize is the largest batch accepted.
	MaxSize int `json:"max_size"`
}

// DefaultConfig returns production defaults.
func DefaultConfig() *Config {
	return &Config{
		Limits: LimitsConfig{
			DefaultK: 5,
			MaxK:     50,
		},
		Cache: CacheConfig{
			Enabled:    true,
			TTL:        5 * time.Minute,
			MaxEntries: 1000,
		},
		Batch: BatchConfig{
			Concurrency: 8,
			MaxSize:     100,
		},
		ScoreTolerance: DefaultScoreTolerance,
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Limits.DefaultK < 1 {
		return fmt.Errorf("limits.default_k must be positive, got %d", c.Limits.DefaultK)
	}
	if c.Limits.MaxK < c.Limits.DefaultK {
		return fmt.Errorf("limits.max_k must be >= limits.default_k, got %d < %d", c.Limits.MaxK, c.Limits.DefaultK)
	}
	if c.Cache.Enabled {
		if c.Cache.TTL <= 0 {
			return fmt.Errorf("cache.ttl must be positive, got %v", c.Cache.TTL)
		}
		if c.Cache.MaxEntries < 1 {
			return fmt.Errorf("cache.max_entries must be positive, got %d", c.Cache.MaxEntries)
		}
	}
	if c.Batch.Concurrency < 1 {
		return fmt.Errorf("batch.concurrency must be positive, got %d", c.Batch.Concurrency)
	}
	if c.Batch.MaxSize < 1 {
		return fmt.Errorf("batch.max_size must be positive, got %d", c.Batch.MaxSize)
	}
	if c.ScoreTolerance <= 0 || c.ScoreTolerance >= 1 {
		return fmt.Errorf("score_tolerance must be in (0, 1), got %g", c.ScoreTolerance)
	}
	return nil
}

// Clone returns a copy of the configuration.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

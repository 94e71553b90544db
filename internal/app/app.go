// MoodRec - Sentiment-Weighted Media Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodrec

// Package app assembles the recommendation engine from configuration. Both
// the server and the CLI build their engine through Build.
package app

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tomtom215/moodrec/internal/catalog"
	"github.com/tomtom215/moodrec/internal/config"
	"github.com/tomtom215/moodrec/internal/recommend"
	"github.com/tomtom215/moodrec/internal/recommend/affinity"
	"github.com/tomtom215/moodrec/internal/sentiment"
)

// App holds the components built from a Config.
type App struct {
	Catalog    *catalog.Catalog
	Affinity   *affinity.Table
	Classifier *sentiment.Instrumented
	Engine     *recommend.Engine

	closeCatalog func() error
}

// Build loads the catalog and affinity table, creates the sentiment
// provider and wires them into an Engine. Close must be called when Build
// succeeds.
//
//nolint:gocritic // hugeParam: zerolog.Logger is designed to be passed by value
func Build(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (*App, error) {
	provider, closeCatalog, err := catalog.Open(cfg.Catalog.Source, cfg.Catalog.Path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}

	a := &App{closeCatalog: closeCatalog}

	a.Catalog, err = catalog.Load(ctx, provider, logger.With().Str("component", "catalog").Logger())
	if err != nil {
		_ = closeCatalog()
		return nil, err
	}

	a.Affinity, err = LoadAffinity(cfg.Affinity.File)
	if err != nil {
		_ = closeCatalog()
		return nil, err
	}

	a.Classifier, err = sentiment.New(cfg.Sentiment, logger)
	if err != nil {
		_ = closeCatalog()
		return nil, fmt.Errorf("create sentiment provider: %w", err)
	}

	a.Engine, err = recommend.NewEngine(EngineConfig(cfg.Recommend), a.Catalog.Items(), a.Affinity, a.Classifier, logger)
	if err != nil {
		_ = closeCatalog()
		return nil, fmt.Errorf("create engine: %w", err)
	}
	return a, nil
}

// Close releases the catalog store.
func (a *App) Close() error {
	if a.closeCatalog == nil {
		return nil
	}
	return a.closeCatalog()
}

// LoadAffinity reads the affinity file at path, or returns the built-in
// table when path is empty.
func LoadAffinity(path string) (*affinity.Table, error) {
	if path == "" {
		return affinity.Default(), nil
	}
	t, err := affinity.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load affinity table: %w", err)
	}
	return t, nil
}

// EngineConfig maps the flat recommend settings onto recommend.Config.
func EngineConfig(rc config.RecommendConfig) *recommend.Config {
	return &recommend.Config{
		Limits: recommend.LimitsConfig{
			DefaultK: rc.DefaultK,
			MaxK:     rc.MaxK,
		},
		Cache: recommend.CacheConfig{
			Enabled:    rc.CacheEnabled,
			TTL:        rc.CacheTTL,
			MaxEntries: rc.CacheMaxEntries,
		},
		Batch: recommend.BatchConfig{
			Concurrency: rc.BatchConcurrency,
			MaxSize:     rc.MaxBatchSize,
		},
		ScoreTolerance: rc.ScoreTolerance,
	}
}

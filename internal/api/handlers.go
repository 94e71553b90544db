// MoodRec - Sentiment-Weighted Media Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodrec

package api

import (
	"context"
	"time"

	"github.com/tomtom215/moodrec/internal/models"
	"github.com/tomtom215/moodrec/internal/recommend"
)

// defaultRequestTimeout bounds every engine call made by a handler.
const defaultRequestTimeout = 10 * time.Second

// defaultBatchTimeout bounds POST /analyze/batch, which may call a remote
// provider once per text.
const defaultBatchTimeout = 60 * time.Second

// Engine is the part of *recommend.Engine the handlers use.
type Engine interface {
	Recommend(ctx context.Context, req recommend.Request) (*recommend.Response, error)
	RecommendText(ctx context.Context, req recommend.TextRequest) (*recommend.Response, error)
	AnalyzeBatch(ctx context.Context, req recommend.BatchRequest) (*recommend.BatchResponse, error)
	GenreWeights(label recommend.Label) []recommend.GenreWeight
	Catalog(kind recommend.MediaKind) []recommend.MediaItem
	ClassifierName() string
}

// HealthSource reports the last sentiment provider probe.
type HealthSource interface {
	ProviderHealth() models.ProviderHealth
}

// Handler contains dependencies for API handlers.
//
// Handler methods are split across files:
//   - handlers.go: Handler struct and constructor
//   - handlers_recommend.go: recommendation and analysis endpoints
//   - handlers_catalog.go: genre and catalog listings
//   - handlers_health.go: health endpoint
type Handler struct {
	engine        Engine
	health        HealthSource
	catalogSource string
	version       string
	startTime     time.Time

	requestTimeout time.Duration
	batchTimeout   time.Duration
}

// NewHandler creates a new API handler. health may be nil, in which case
// /health reports the provider name without probe results.
func NewHandler(engine Engine, health HealthSource, catalogSource, version string) *Handler {
	return &Handler{
		engine:        engine,
		health:        health,
		catalogSource: catalogSource,
		version:       version,
		startTime:     time.Now(),

		requestTimeout: defaultRequestTimeout,
		batchTimeout:   defaultBatchTimeout,
	}
}

// SetTimeBudget caps handler deadlines at d so a request finishes before the
// server's write timeout. Batches get all of d; single requests keep the
// shorter default when it fits. d <= 0 leaves the defaults.
func (h *Handler) SetTimeBudget(d time.Duration) {
	if d <= 0 {
		return
	}
	h.batchTimeout = d
	h.requestTimeout = min(defaultRequestTimeout, d)
}

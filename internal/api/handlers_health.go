// MoodRec - Sentiment-Weighted Media Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodrec

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/moodrec/internal/models"
)

// Health handles GET /api/v1/health
//
// The server is "healthy" when the last provider probe succeeded and
// "degraded" otherwise. Recommendations for known scores keep working while
// degraded, so the status code stays 200 either way.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	provider := models.ProviderHealth{Name: h.engine.ClassifierName()}
	if h.health != nil {
		provider = h.health.ProviderHealth()
	}

	status := "healthy"
	if !provider.Up {
		status = "degraded"
	}

	w.Header().Set("Cache-Control", "no-cache")
	respondSuccess(w, r, models.HealthResponse{
		Status:      status,
		Version:     h.version,
		Uptime:      time.Since(h.startTime).Round(time.Second).String(),
		CatalogSize: len(h.engine.Catalog("")),
		Provider:    provider,
	}, start)
}

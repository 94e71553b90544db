// MoodRec - Sentiment-Weighted Media Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodrec

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/moodrec/internal/models"
	"github.com/tomtom215/moodrec/internal/recommend"
)

// Genres handles GET /api/v1/genres/{label}
func (h *Handler) Genres(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	label, err := recommend.ParseLabel(chi.URLParam(r, "label"))
	if err != nil {
		respondError(w, r, http.StatusNotFound, ErrCodeNotFound, "Unknown sentiment label", err)
		return
	}

	genres := h.engine.GenreWeights(label)
	if genres == nil {
		genres = []recommend.GenreWeight{}
	}

	respondSuccess(w, r, models.GenresResponse{Label: label, Genres: genres}, start)
}

// Catalog handles GET /api/v1/catalog?kind=movie|book
func (h *Handler) Catalog(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	kind, err := recommend.ParseMediaKind(r.URL.Query().Get("kind"))
	if err != nil {
		respondEngineError(w, r, err)
		return
	}

	items := h.engine.Catalog(kind)
	if items == nil {
		items = []recommend.MediaItem{}
	}

	respondSuccess(w, r, models.CatalogResponse{
		Source: h.catalogSource,
		Kind:   string(kind),
		Count:  len(items),
		Items:  items,
	}, start)
}

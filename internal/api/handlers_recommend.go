// MoodRec - Sentiment-Weighted Media Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodrec

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/tomtom215/moodrec/internal/logging"
	"github.com/tomtom215/moodrec/internal/models"
	"github.com/tomtom215/moodrec/internal/recommend"
)

// Recommend handles POST /api/v1/recommendations.
// Ranks the catalog for a caller-supplied sentiment score.
func (h *Handler) Recommend(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var body models.RecommendationRequest
	if !decodeAndValidate(w, r, &body) {
		return
	}

	kind, mode, err := parseKindMode(body.Kind, body.Mode)
	if err != nil {
		respondEngineError(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
	defer cancel()

	resp, err := h.engine.Recommend(ctx, recommend.Request{
		Score:     body.Score.SentimentScore(),
		K:         body.K,
		Kind:      kind,
		Mode:      mode,
		RequestID: logging.RequestIDFromContext(r.Context()),
	})
	if err != nil {
		respondEngineError(w, r, err)
		return
	}

	respondSuccessCached(w, r, resp, start, resp.Metadata.CacheHit)
}

// Analyze handles POST /api/v1/analyze.
// Classifies the text and ranks the catalog for the resulting score.
func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var body models.AnalyzeRequest
	if !decodeAndValidate(w, r, &body) {
		return
	}

	kind, mode, err := parseKindMode(body.Kind, body.Mode)
	if err != nil {
		respondEngineError(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
	defer cancel()

	resp, err := h.engine.RecommendText(ctx, recommend.TextRequest{
		Text:      body.Text,
		K:         body.K,
		Kind:      kind,
		Mode:      mode,
		RequestID: logging.RequestIDFromContext(r.Context()),
	})
	if err != nil {
		respondEngineError(w, r, err)
		return
	}

	respondSuccessCached(w, r, resp, start, resp.Metadata.CacheHit)
}

// AnalyzeBatch handles POST /api/v1/analyze/batch.
// Blank texts fail individually; a provider outage fails the request.
func (h *Handler) AnalyzeBatch(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var body models.BatchAnalyzeRequest
	if !decodeAndValidate(w, r, &body) {
		return
	}

	kind, mode, err := parseKindMode(body.Kind, body.Mode)
	if err != nil {
		respondEngineError(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.batchTimeout)
	defer cancel()

	resp, err := h.engine.AnalyzeBatch(ctx, recommend.BatchRequest{
		Texts:     body.Texts,
		K:         body.K,
		Kind:      kind,
		Mode:      mode,
		RequestID: logging.RequestIDFromContext(r.Context()),
	})
	if err != nil {
		respondEngineError(w, r, err)
		return
	}

	respondSuccess(w, r, resp, start)
}

func parseKindMode(kind, mode string) (recommend.MediaKind, recommend.Mode, error) {
	k, err := recommend.ParseMediaKind(kind)
	if err != nil {
		return "", "", err
	}
	m, err := recommend.ParseMode(mode)
	if err != nil {
		return "", "", err
	}
	return k, m, nil
}

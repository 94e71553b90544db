// MoodRec - Sentiment-Weighted Media Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodrec

package models

import (
	"time"

	"github.com/tomtom215/moodrec/internal/recommend"
)

// ScoreInput is a probability triple as sent by clients. Pointers make a
// missing component a validation error instead of a silent zero.
type ScoreInput struct {
	Positive *float64 `json:"positive" validate:"required"`
	Neutral  *float64 `json:"neutral" validate:"required"`
	Negative *float64 `json:"negative" validate:"required"`
}

// SentimentScore converts the input. Call only after validation.
func (s ScoreInput) SentimentScore() recommend.SentimentScore {
	return recommend.SentimentScore{Positive: *s.Positive, Neutral: *s.Neutral, Negative: *s.Negative}
}

// Kind and Mode are left to recommend.ParseMediaKind and recommend.ParseMode
// so the API accepts the same spellings as the CLI.

// RecommendationRequest is the body of POST /api/v1/recommendations.
type RecommendationRequest struct {
	Score ScoreInput `json:"score"`
	K     int        `json:"k" validate:"gte=0"`
	Kind  string     `json:"kind,omitempty"`
	Mode  string     `json:"mode,omitempty"`
}

// AnalyzeRequest is the body of POST /api/v1/analyze.
type AnalyzeRequest struct {
	Text string `json:"text" validate:"notblank,max=5000"`
	K    int    `json:"k" validate:"gte=0"`
	Kind string `json:"kind,omitempty"`
	Mode string `json:"mode,omitempty"`
}

// BatchAnalyzeRequest is the body of POST /api/v1/analyze/batch. Blank
// entries are reported per item rather than rejecting the whole batch.
type BatchAnalyzeRequest struct {
	Texts []string `json:"texts" validate:"required,min=1,dive,max=5000"`
	K     int      `json:"k" validate:"gte=0"`
	Kind  string   `json:"kind,omitempty"`
	Mode  string   `json:"mode,omitempty"`
}

// GenresResponse lists the weighted genres of one label.
type GenresResponse struct {
	Label  recommend.Label         `json:"label"`
	Genres []recommend.GenreWeight `json:"genres"`
}

// CatalogResponse lists catalog items.
type CatalogResponse struct {
	Source string                `json:"source"`
	Kind   string                `json:"kind,omitempty"`
	Count  int                   `json:"count"`
	Items  []recommend.MediaItem `json:"items"`
}

// HealthResponse reports liveness and the last sentiment provider probe.
type HealthResponse struct {
	Status      string         `json:"status"`
	Version     string         `json:"version"`
	Uptime      string         `json:"uptime"`
	CatalogSize int            `json:"catalog_size"`
	Provider    ProviderHealth `json:"provider"`
}

// ProviderHealth is the most recent probe result for the sentiment provider.
type ProviderHealth struct {
	Name         string    `json:"name"`
	Up           bool      `json:"up"`
	LastChecked  time.Time `json:"last_checked,omitempty"`
	LastError    string    `json:"last_error,omitempty"`
	BreakerState string    `json:"breaker_state,omitempty"`
}

// MoodRec - Sentiment-Weighted Media Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodrec

/*
Package models defines the HTTP request and response shapes of the MoodRec API.

Domain types (scores, labels, media items, ranked results) live in package
recommend; this package wraps them for transport.

Key Components:

  - APIResponse: Standard response wrapper with Status, Data, Metadata and Error
  - APIError: Machine-readable code, human message and optional details
  - RecommendationRequest, AnalyzeRequest, BatchAnalyzeRequest: request bodies
    validated with go-playground/validator tags
  - HealthResponse: liveness plus the last sentiment provider probe

Request bodies are decoded with goccy/go-json and validated through
internal/validation before they reach the recommendation engine.
*/
package models

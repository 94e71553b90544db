// MoodRec - Sentiment-Weighted Media Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodrec

// Package recommend ranks a media catalog against a sentiment distribution.
//
// # Scoring
//
// A SentimentScore assigns a probability to each of Positive, Neutral and
// Negative. An AffinitySource maps each label to weighted genres. An item's
// score is
//
//	Σ over labels  p(label) × Σ over the item's genres  weight(label, genre)
//
// Items that score zero are dropped. The rest are sorted by score,
// descending, with ties kept in catalog insertion order, and cut to K.
// Genre names are compared case-insensitively after alias resolution (see
// GenreKey), so "Sci-Fi" matches "Science Fiction".
//
// Scores are validated before anything else: each probability must lie in
// [0,1] and the sum must be within DefaultScoreTolerance of 1. Invalid scores
// fail with *InvalidScoreError, bad parameters with *InvalidParameterError.
// Both match their sentinel with errors.Is.
//
// # Engine
//
// Scorer is the pure ranking core. Engine wraps it with request defaults, a
// TTL response cache, Prometheus metrics and a Classifier for free text:
//
//	engine, err := recommend.NewEngine(cfg, items, affinity.Default(), classifier, logger)
//	resp, err := engine.RecommendText(ctx, recommend.TextRequest{Text: "what a lovely day", K: 5})
//
// Classifier failures are returned unchanged. A *ProviderUnavailableError
// is never retried by the Engine.
//
// # Thread Safety
//
// Scorer is immutable after construction. Engine is safe for concurrent use;
// AnalyzeBatch classifies texts in parallel up to Config.Batch.Concurrency.
package recommend

// MoodRec - Sentiment-Weighted Media Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodrec

/*
Package middleware provides HTTP middleware for the MoodRec API.

All middleware has the func(http.Handler) http.Handler shape used by chi.

Key Components:

  - RequestID: reuses an upstream X-Request-ID or generates a UUID, echoes it
    in the response and stores request and correlation IDs for logging.Ctx
  - PrometheusMetrics: request counts, latency and in-flight gauge, labeled
    by chi route pattern so path parameters do not explode cardinality
  - AccessLog: one structured zerolog line per request

Typical stack:

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.AccessLog)
	r.Use(middleware.PrometheusMetrics)
*/
package middleware

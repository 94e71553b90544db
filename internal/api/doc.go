// MoodRec - Sentiment-Weighted Media Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodrec

/*
Package api provides the HTTP API for MoodRec.

Routes are served by a chi router (see Router.SetupChi). Every response uses
the models.APIResponse envelope:

	{"status": "success", "data": {...}, "metadata": {"timestamp": "...", "request_id": "..."}}
	{"status": "error", "error": {"code": "INVALID_SCORE", "message": "..."}, "metadata": {...}}

Error mapping:

  - VALIDATION_ERROR, INVALID_JSON, INVALID_SCORE, INVALID_PARAMETER: 400
  - NOT_FOUND: 404
  - RATE_LIMIT_EXCEEDED: 429
  - PROVIDER_UNAVAILABLE: 503
  - BAD_PROVIDER_RESPONSE: 502 when the provider returned an invalid score
  - INTERNAL_ERROR: 500, or 504 when the request deadline passed

Middleware order: request ID, real IP, access log, panic recovery,
Prometheus metrics, CORS. Routes under /api/v1 also get security headers,
and everything except /health is rate limited per client IP with httprate.

Example:

	handler := api.NewHandler(engine, probe, cat.Source(), version)
	mw := api.NewChiMiddlewareFromSecurity(cfg.Security.CORSOrigins,
	    cfg.Security.RateLimitReqs, cfg.Security.RateLimitWindow, cfg.Security.RateLimitDisabled)
	server := &http.Server{Addr: cfg.Server.Addr(), Handler: api.NewRouter(handler, mw).SetupChi()}
*/
package api

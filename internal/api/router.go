// MoodRec - Sentiment-Weighted Media Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodrec

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/moodrec/internal/middleware"
)

// Router wires handlers and middleware into a chi mux.
type Router struct {
	handler    *Handler
	middleware *ChiMiddleware
}

// NewRouter creates a new router. A nil middleware uses
// DefaultChiMiddlewareConfig.
func NewRouter(handler *Handler, mw *ChiMiddleware) *Router {
	if mw == nil {
		mw = NewChiMiddleware(nil)
	}
	return &Router{handler: handler, middleware: mw}
}

// SetupChi builds the HTTP handler.
//
//	GET  /metrics
//	GET  /api/v1/health
//	GET  /api/v1/genres/{label}
//	GET  /api/v1/catalog?kind=
//	POST /api/v1/recommendations
//	POST /api/v1/analyze
//	POST /api/v1/analyze/batch
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.AccessLog)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.PrometheusMetrics)
	r.Use(router.middleware.CORS())

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		respondError(w, req, http.StatusNotFound, ErrCodeNotFound, "Route not found", nil)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		respondError(w, req, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
	})

	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(APISecurityHeaders())

		// Health is not rate limited so monitoring never sees 429s.
		r.Get("/health", router.handler.Health)

		r.Group(func(r chi.Router) {
			r.Use(router.middleware.RateLimit())

			r.Get("/genres/{label}", router.handler.Genres)
			r.Get("/catalog", router.handler.Catalog)

			r.Group(func(r chi.Router) {
				r.Use(chimiddleware.AllowContentType("application/json"))

				r.Post("/recommendations", router.handler.Recommend)
				r.Post("/analyze", router.handler.Analyze)
				r.Post("/analyze/batch", router.handler.AnalyzeBatch)
			})
		})
	})

	return r
}

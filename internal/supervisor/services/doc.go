// MoodRec - Sentiment-Weighted Media Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodrec

/*
Package services provides suture.Service wrappers for MoodRec components.

# Available Services

HTTP Server (HTTPServerService):
  - Wraps *http.Server and translates ListenAndServe into Serve
  - Calls Shutdown with a bounded context when the supervisor stops it

Provider Probe (ProbeService):
  - Pings the configured sentiment provider on a fixed interval
  - Keeps the last result for GET /api/v1/health
  - Reports circuit breaker state when the provider has one

# Usage

	httpSvc := services.NewHTTPServerService(server, 10*time.Second, logger)
	tree.AddAPIService(httpSvc)

	probe := services.NewProbeService(classifier, services.ProbeServiceConfig{
	    Interval: cfg.Sentiment.ProbeInterval,
	}, logger)
	tree.AddEngineService(probe)

# Error Handling

Return values determine supervisor behavior:

	nil         -> Service stopped cleanly, will not restart
	error       -> Service crashed, supervisor will restart
	ctx.Err()   -> Shutdown requested, normal termination

A failing probe is recorded, not returned; the provider being down is not a
reason to restart the probe.
*/
package services

// MoodRec - Sentiment-Weighted Media Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodrec

/*
Package supervisor provides process supervision for MoodRec using suture v4.

# Overview

Services are organized into two layers:

	RootSupervisor ("moodrec")
	├── EngineSupervisor ("engine-layer")
	│   └── ProbeService (sentiment provider health probe)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

Crashed services restart with suture's decaying failure counter; once
FailureThreshold is exceeded the layer waits FailureBackoff before the next
restart. Supervisor events are logged through sutureslog into the zerolog
backed slog.Logger from internal/logging.

# Usage

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddEngineService(services.NewProbeService(classifier, interval, logger))
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second, logger))

	errCh := tree.ServeBackground(ctx)

# Service Interface

All services implement suture.Service:

	type Service interface {
	    Serve(ctx context.Context) error
	}

Returning nil stops the service for good, returning an error restarts it,
and returning ctx.Err() after cancellation is a normal shutdown.
*/
package supervisor

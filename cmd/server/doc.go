// MoodRec - Sentiment-Weighted Media Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodrec

/*
Package main is the entry point for the MoodRec server.

MoodRec turns a sentiment reading (or free text classified into one) into a
ranked list of movies and books whose genres suit the mood.

# Application Architecture

	RootSupervisor ("moodrec")
	├── EngineSupervisor ("engine-layer")
	│   └── ProbeService (sentiment provider health probe)
	└── APISupervisor ("api-layer")
	    └── HTTP Server (chi router)

Component initialization order:

 1. Configuration: koanf with defaults, optional YAML file and environment
 2. Logging: zerolog with JSON or console output
 3. Catalog: static, file, badger or sqlite source
 4. Affinity table: built-in or loaded from AFFINITY_FILE
 5. Sentiment provider: lexicon or HTTP inference endpoint behind a circuit breaker
 6. Recommendation engine
 7. Supervisor tree and HTTP server

# Example Usage

Offline lexicon provider with the built-in catalog:

	./moodrec-server

Remote inference endpoint and a persisted catalog:

	export SENTIMENT_PROVIDER=http
	export SENTIMENT_ENDPOINT=https://api-inference.huggingface.co/models/cardiffnlp/twitter-roberta-base-sentiment
	export SENTIMENT_API_TOKEN=hf_xxx
	export CATALOG_SOURCE=badger
	export CATALOG_PATH=/var/lib/moodrec/catalog
	./moodrec-server

# Signal Handling

SIGINT and SIGTERM cancel the supervisor tree. The HTTP server drains
in-flight requests for up to SHUTDOWN_TIMEOUT before exiting.
*/
package main

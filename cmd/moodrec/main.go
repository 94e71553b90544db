// MoodRec - Sentiment-Weighted Media Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodrec

// Package main provides the moodrec command line tool.
//
// Usage:
//
//	moodrec [flags] <command> [args]
//
// Commands:
//
//	analyze    - Classify text and recommend media for its mood
//	recommend  - Recommend media for a known sentiment score
//	batch      - Analyze newline-delimited texts from a file or stdin
//	genres     - Show the genre affinities of a sentiment label
//	catalog    - List, import or export the media catalog
//
// Configuration is read the same way as the server (config.yaml, CONFIG_PATH
// and environment variables). Flags override the catalog and provider.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

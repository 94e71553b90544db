// MoodRec - Sentiment-Weighted Media Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodrec

package catalog

import (
	"context"
	"fmt"

	"github.com/tomtom215/moodrec/internal/recommend"
)

// Source names accepted by Open.
const (
	SourceStatic = "static"
	SourceFile   = "file"
	SourceBadger = "badger"
	SourceSQLite = "sqlite"
)

// Importer is a persistent store that a catalog can be written into.
type Importer interface {
	Provider
	Import(ctx context.Context, source string, items []recommend.MediaItem) (int, error)
	Close() error
}

func noopClose() error { return nil }

// Open returns the Provider for a source name. The close function releases
// whatever the provider opened and is never nil.
func Open(source, path string) (Provider, func() error, error) {
	switch source {
	case "", SourceStatic:
		return NewStaticProvider(), noopClose, nil
	case SourceFile:
		if path == "" {
			return nil, nil, fmt.Errorf("catalog source %q needs a path", source)
		}
		return NewFileProvider(path), noopClose, nil
	case SourceBadger, SourceSQLite:
		store, err := OpenStore(source, path)
		if err != nil {
			return nil, nil, err
		}
		return store, store.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown catalog source %q", source)
	}
}

// OpenStore opens a persistent catalog store.
func OpenStore(kind, path string) (Importer, error) {
	if path == "" {
		return nil, fmt.Errorf("catalog store %q needs a path", kind)
	}
	switch kind {
	case SourceBadger:
		store, err := OpenBadgerStore(path)
		if err != nil {
			return nil, err
		}
		return store, nil
	case SourceSQLite:
		store, err := OpenSQLiteStore(path)
		if err != nil {
			return nil, err
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unknown catalog store %q", kind)
	}
}

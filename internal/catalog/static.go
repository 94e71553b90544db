// MoodRec - Sentiment-Weighted Media Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodrec

package catalog

import (
	"context"

	"github.com/tomtom215/moodrec/internal/recommend"
)

// StaticProvider serves the built-in demonstration catalog.
type StaticProvider struct{}

// NewStaticProvider returns a StaticProvider.
func NewStaticProvider() *StaticProvider {
	return &StaticProvider{}
}

// Load returns a copy of the built-in items with IDs assigned.
func (p *StaticProvider) Load(ctx context.Context) ([]recommend.MediaItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	items := make([]recommend.MediaItem, len(builtinItems))
	for i, item := range builtinItems {
		item.Genres = append([]string(nil), item.Genres...)
		item.ID = ItemID(item.Kind, item.Title)
		items[i] = item
	}
	return items, nil
}

// Name implements Provider.
func (p *StaticProvider) Name() string { return "static" }

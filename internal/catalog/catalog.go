// MoodRec - Sentiment-Weighted Media Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodrec

// Package catalog loads the media items that recommendations are drawn from.
//
// Sources implement Provider. Load validates and normalizes whatever a
// provider returns and wraps it in an immutable Catalog:
//
//	cat, err := catalog.Load(ctx, catalog.NewStaticProvider(), logger)
//	engine, err := recommend.NewEngine(cfg, cat.Items(), table, classifier, logger)
//
// Item order is preserved end to end because recommendation ties are broken
// by catalog position.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/tomtom215/moodrec/internal/metrics"
	"github.com/tomtom215/moodrec/internal/recommend"
	"github.com/tomtom215/moodrec/internal/validation"
)

// ErrInvalidItem marks a catalog entry that failed validation.
var ErrInvalidItem = errors.New("invalid catalog item")

// Provider is a source of catalog items.
type Provider interface {
	// Load returns every item in catalog order.
	Load(ctx context.Context) ([]recommend.MediaItem, error)

	// Name identifies the source in logs and metrics.
	Name() string
}

// Catalog is a validated, immutable list of media items.
type Catalog struct {
	source string
	items  []recommend.MediaItem
	byID   map[string]int
}

// Load reads all items from p and builds a Catalog from them.
//
//nolint:gocritic // hugeParam: zerolog.Logger is designed to be passed by value
func Load(ctx context.Context, p Provider, logger zerolog.Logger) (*Catalog, error) {
	start := time.Now()
	items, err := p.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog from %s: %w", p.Name(), err)
	}

	c, err := New(p.Name(), items)
	if err != nil {
		return nil, err
	}

	counts := c.CountsByKind()
	metrics.RecordCatalogLoad(p.Name(), counts, time.Since(start))
	logger.Info().
		Str("source", p.Name()).
		Int("movies", counts[string(recommend.KindMovie)]).
		Int("books", counts[string(recommend.KindBook)]).
		Dur("duration", time.Since(start)).
		Msg("catalog loaded")
	return c, nil
}

// New normalizes and validates items. Items without an ID get one from
// ItemID. Duplicate IDs are rejected.
func New(source string, items []recommend.MediaItem) (*Catalog, error) {
	c := &Catalog{
		source: source,
		items:  make([]recommend.MediaItem, 0, len(items)),
		byID:   make(map[string]int, len(items)),
	}
	for i, item := range items {
		item = Normalize(item)
		if verr := validation.ValidateStruct(item); verr != nil {
			return nil, fmt.Errorf("%w: entry %d (%q): %v", ErrInvalidItem, i, item.Title, verr)
		}
		if prev, dup := c.byID[item.ID]; dup {
			return nil, fmt.Errorf("%w: entry %d (%q) repeats id %s of entry %d", ErrInvalidItem, i, item.Title, item.ID, prev)
		}
		c.byID[item.ID] = len(c.items)
		c.items = append(c.items, item)
	}
	return c, nil
}

// Normalize trims text fields, lower-cases the kind, drops blank and
// repeated genres, and assigns an ID when missing.
func Normalize(item recommend.MediaItem) recommend.MediaItem {
	item.Title = strings.TrimSpace(item.Title)
	item.Creator = strings.TrimSpace(item.Creator)
	item.Description = strings.TrimSpace(item.Description)
	item.Kind = recommend.MediaKind(strings.ToLower(strings.TrimSpace(string(item.Kind))))
	if kind, err := recommend.ParseMediaKind(string(item.Kind)); err == nil && kind != "" {
		item.Kind = kind
	}

	seen := make(map[string]struct{}, len(item.Genres))
	genres := make([]string, 0, len(item.Genres))
	for _, g := range item.Genres {
		g = strings.TrimSpace(g)
		key := recommend.GenreKey(g)
		if key == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		genres = append(genres, g)
	}
	item.Genres = genres

	item.ID = strings.TrimSpace(item.ID)
	if item.ID == "" {
		item.ID = ItemID(item.Kind, item.Title)
	}
	return item
}

// ItemID derives a stable ID from kind and title so the same item gets the
// same ID from every source.
func ItemID(kind recommend.MediaKind, title string) string {
	name := "moodrec:" + string(kind) + ":" + strings.ToLower(strings.TrimSpace(title))
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(name)).String()
}

// Source names the provider the catalog came from.
func (c *Catalog) Source() string {
	return c.source
}

// Items returns a copy of every item in catalog order.
func (c *Catalog) Items() []recommend.MediaItem {
	return c.Filter("")
}

// Filter returns the items of one kind in catalog order. An empty kind
// matches everything.
func (c *Catalog) Filter(kind recommend.MediaKind) []recommend.MediaItem {
	out := make([]recommend.MediaItem, 0, len(c.items))
	for _, item := range c.items {
		if kind != "" && item.Kind != kind {
			continue
		}
		item.Genres = append([]string(nil), item.Genres...)
		out = append(out, item)
	}
	return out
}

// Get looks an item up by ID.
func (c *Catalog) Get(id string) (recommend.MediaItem, bool) {
	i, ok := c.byID[id]
	if !ok {
		return recommend.MediaItem{}, false
	}
	item := c.items[i]
	item.Genres = append([]string(nil), item.Genres...)
	return item, true
}

// Len returns the number of items.
func (c *Catalog) Len() int {
	return len(c.items)
}

// CountsByKind returns the number of items per kind.
func (c *Catalog) CountsByKind() map[string]int {
	counts := map[string]int{
		string(recommend.KindMovie): 0,
		string(recommend.KindBook):  0,
	}
	for _, item := range c.items {
		counts[string(item.Kind)]++
	}
	return counts
}

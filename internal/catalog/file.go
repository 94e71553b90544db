// MoodRec - Sentiment-Weighted Media Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodrec

package catalog

import (
	"context"
	"errors"

	"github.com/tomtom215/moodrec/internal/codec"
	"github.com/tomtom215/moodrec/internal/recommend"
)

// fileItem is the on-disk item layout. Besides the MediaItem fields it
// accepts a delimited "genre" string, "author" for creator and
// "release_year" for year.
type fileItem struct {
	ID          string   `json:"id,omitempty" yaml:"id,omitempty"`
	Title       string   `json:"title" yaml:"title"`
	Kind        string   `json:"kind" yaml:"kind"`
	Genres      []string `json:"genres" yaml:"genres"`
	Genre       string   `json:"genre,omitempty" yaml:"genre,omitempty"`
	Creator     string   `json:"creator,omitempty" yaml:"creator,omitempty"`
	Author      string   `json:"author,omitempty" yaml:"author,omitempty"`
	Year        int      `json:"year,omitempty" yaml:"year,omitempty"`
	ReleaseYear int      `json:"release_year,omitempty" yaml:"release_year,omitempty"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Rating      float64  `json:"rating,omitempty" yaml:"rating,omitempty"`
}

func (f fileItem) mediaItem() recommend.MediaItem {
	item := recommend.MediaItem{
		ID:          f.ID,
		Title:       f.Title,
		Kind:        recommend.MediaKind(f.Kind),
		Genres:      f.Genres,
		Creator:     f.Creator,
		Year:        f.Year,
		Description: f.Description,
		Rating:      f.Rating,
	}
	if len(item.Genres) == 0 && f.Genre != "" {
		item.Genres = recommend.SplitGenres(f.Genre)
	}
	if item.Creator == "" {
		item.Creator = f.Author
	}
	if item.Year == 0 {
		item.Year = f.ReleaseYear
	}
	return item
}

// catalogFile is the top-level document: a list under "items".
type catalogFile struct {
	Items []fileItem `json:"items" yaml:"items"`
}

// FileProvider reads a YAML or JSON catalog file.
type FileProvider struct {
	path string
}

// NewFileProvider returns a FileProvider for path.
func NewFileProvider(path string) *FileProvider {
	return &FileProvider{path: path}
}

// Load implements Provider.
func (p *FileProvider) Load(ctx context.Context) ([]recommend.MediaItem, error) {
	if p.path == "" {
		return nil, errors.New("catalog file path is empty")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var doc catalogFile
	if err := codec.DecodeFile(p.path, &doc); err != nil {
		return nil, err
	}
	items := make([]recommend.MediaItem, len(doc.Items))
	for i, fi := range doc.Items {
		items[i] = fi.mediaItem()
	}
	return items, nil
}

// Name implements Provider.
func (p *FileProvider) Name() string { return "file" }

// WriteFile saves items as a catalog document, YAML or JSON by extension.
func WriteFile(path string, items []recommend.MediaItem) error {
	doc := catalogFile{Items: make([]fileItem, len(items))}
	for i, item := range items {
		doc.Items[i] = fileItem{
			ID:          item.ID,
			Title:       item.Title,
			Kind:        string(item.Kind),
			Genres:      item.Genres,
			Creator:     item.Creator,
			Year:        item.Year,
			Description: item.Description,
			Rating:      item.Rating,
		}
	}
	return codec.EncodeFile(path, doc)
}

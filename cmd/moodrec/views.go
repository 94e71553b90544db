// MoodRec - Sentiment-Weighted Media Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodrec

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tomtom215/moodrec/internal/cli"
	"github.com/tomtom215/moodrec/internal/recommend"
)

const maxTitlesPerBatchRow = 3

func scoreSummary(s recommend.SentimentScore) string {
	return fmt.Sprintf("positive %.2f, neutral %.2f, negative %.2f", s.Positive, s.Neutral, s.Negative)
}

func responseTable(resp *recommend.Response) *cli.Table {
	t := &cli.Table{
		Title:   fmt.Sprintf("Mood: %s (%s)", resp.Dominant, scoreSummary(resp.Score)),
		Headers: []string{"#", "Title", "Kind", "Genres", "Year", "Score"},
	}
	for i, rec := range resp.Recommendations {
		year := ""
		if rec.Item.Year > 0 {
			year = strconv.Itoa(rec.Item.Year)
		}
		t.AddRow(
			strconv.Itoa(i+1),
			rec.Item.Title,
			string(rec.Item.Kind),
			strings.Join(rec.Item.Genres, ", "),
			year,
			strconv.FormatFloat(rec.Score, 'f', 3, 64),
		)
	}

	footer := fmt.Sprintf("mode %s, %d of %d catalog items", resp.Metadata.Mode, len(resp.Recommendations), resp.Metadata.CatalogSize)
	if resp.Metadata.Provider != "" {
		footer += ", provider " + resp.Metadata.Provider
	}
	t.Footer = []string{footer}
	return t
}

func batchTable(resp *recommend.BatchResponse) *cli.Table {
	t := &cli.Table{
		Title:   fmt.Sprintf("Batch: %d texts, %d succeeded, %d failed", resp.Summary.Total, resp.Summary.Succeeded, resp.Summary.Failed),
		Headers: []string{"#", "Text", "Mood", "Top picks"},
	}
	for _, item := range resp.Items {
		if item.Error != "" {
			t.AddRow(strconv.Itoa(item.Index+1), item.Preview, "error", item.Error)
			continue
		}
		mood := ""
		if item.Dominant != nil {
			mood = item.Dominant.String()
		}
		titles := make([]string, 0, maxTitlesPerBatchRow)
		for i, rec := range item.Recommendations {
			if i == maxTitlesPerBatchRow {
				break
			}
			titles = append(titles, rec.Item.Title)
		}
		t.AddRow(strconv.Itoa(item.Index+1), item.Preview, mood, strings.Join(titles, ", "))
	}

	if len(resp.Summary.TopGenres) > 0 {
		genres := make([]string, len(resp.Summary.TopGenres))
		for i, g := range resp.Summary.TopGenres {
			genres[i] = fmt.Sprintf("%s (%d)", g.Genre, g.Count)
		}
		t.Footer = append(t.Footer, "top genres: "+strings.Join(genres, ", "))
	}
	return t
}

func genresTable(label recommend.Label, weights []recommend.GenreWeight) *cli.Table {
	t := &cli.Table{
		Title:   fmt.Sprintf("%s genres", label),
		Headers: []string{"#", "Genre", "Weight"},
	}
	for i, w := range weights {
		t.AddRow(strconv.Itoa(i+1), w.Genre, strconv.FormatFloat(w.Weight, 'g', -1, 64))
	}
	return t
}

func catalogTable(source string, items []recommend.MediaItem) *cli.Table {
	t := &cli.Table{
		Title:   fmt.Sprintf("Catalog (%s)", source),
		Headers: []string{"Title", "Kind", "Creator", "Year", "Genres"},
		Footer:  []string{fmt.Sprintf("%d items", len(items))},
	}
	for _, item := range items {
		year := ""
		if item.Year > 0 {
			year = strconv.Itoa(item.Year)
		}
		t.AddRow(item.Title, string(item.Kind), item.Creator, year, strings.Join(item.Genres, ", "))
	}
	return t
}

// importResult is the outcome of catalog import.
type importResult struct {
	Store    string `json:"store"`
	Path     string `json:"path"`
	Source   string `json:"source"`
	Imported int    `json:"imported"`
}

func importTable(r importResult) *cli.Table {
	t := &cli.Table{
		Title:   "Catalog import",
		Headers: []string{"Store", "Path", "Source", "Imported"},
	}
	t.AddRow(r.Store, r.Path, r.Source, strconv.Itoa(r.Imported))
	return t
}

// MoodRec - Sentiment-Weighted Media Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodrec

package recommend

import "strings"

// genreAliases maps lexical variants to the key used in affinity tables.
var genreAliases = map[string]string{
	"sci-fi":          "science fiction",
	"scifi":           "science fiction",
	"sci fi":          "science fiction",
	"science-fiction": "science fiction",
	"music":           "musical",
	"musicals":        "musical",
	"noir":            "film-noir",
	"film noir":       "film-noir",
	"filmnoir":        "film-noir",
	"biopic":          "biography",
	"sports":          "sport",
	"animated":        "animation",
	"super hero":      "superhero",
	"super-hero":      "superhero",
	"comedies":        "comedy",
	"dramas":          "drama",
	"thrillers":       "thriller",
	"documentaries":   "documentary",
	"westerns":        "western",
	"mysteries":       "mystery",
}

// GenreKey returns the comparison key for a genre name: lower case, single
// spaced and alias-resolved. "Sci-Fi" and "science  fiction" share a key.
func GenreKey(genre string) string {
	fields := strings.FieldsFunc(strings.ToLower(genre), func(r rune) bool {
		return r == ' ' || r == '\t' || r == '_' || r == '\n'
	})
	key := strings.Join(fields, " ")
	if alias, ok := genreAliases[key]; ok {
		return alias
	}
	return key
}

// SplitGenres splits a delimited genre string such as "Drama, Biography" or
// "Sci-Fi/Fantasy" into trimmed, non-empty names.
func SplitGenres(s string) []string {
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == '/' || r == '|' || r == ';'
	})
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// uniqueGenreKeys returns the distinct keys of genres in first-seen order.
func uniqueGenreKeys(genres []string) []string {
	seen := make(map[string]struct{}, len(genres))
	keys := make([]string, 0, len(genres))
	for _, g := range genres {
		k := GenreKey(g)
		if k == "" {
			continue
		}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		keys = append(keys, k)
	}
	return keys
}

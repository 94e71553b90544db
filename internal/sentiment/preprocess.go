// MoodRec - Sentiment-Weighted Media Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodrec

package sentiment

import (
	"strings"
	"unicode/utf8"
)

// Preprocess masks user mentions and links the way social-media sentiment
// models were trained: "@someone" becomes "@user" and any word starting with
// "http" becomes "http". Words are split on single spaces so the original
// spacing survives.
func Preprocess(text string) string {
	words := strings.Split(text, " ")
	for i, w := range words {
		switch {
		case strings.HasPrefix(w, "@") && len(w) > 1:
			words[i] = "@user"
		case strings.HasPrefix(w, "http"):
			words[i] = "http"
		}
	}
	return strings.Join(words, " ")
}

// truncateRunes cuts s to at most n runes. n <= 0 leaves s unchanged.
func truncateRunes(s string, n int) string {
	if n <= 0 || utf8.RuneCountInString(s) <= n {
		return s
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}

// MoodRec - Sentiment-Weighted Media Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodrec

package affinity

import (
	"sync"

	"github.com/tomtom215/moodrec/internal/recommend"
)

// defaultGenres lists ten genres per label, most suitable first.
var defaultGenres = map[recommend.Label][]string{
	recommend.Positive: {
		"Comedy", "Animation", "Family", "Adventure", "Musical",
		"Romance", "Fantasy", "Inspirational", "Biography", "Sport",
	},
	recommend.Neutral: {
		"Documentary", "History", "Science Fiction", "Action", "Western",
		"Mystery", "Drama", "Superhero", "Animation", "Thriller",
	},
	recommend.Negative: {
		"Horror", "Thriller", "Crime", "War", "Drama",
		"Mystery", "Film-Noir", "Psychological", "Disaster", "Dystopian",
	},
}

var defaultTable = sync.OnceValue(func() *Table {
	t, err := FromGenres(defaultGenres)
	if err != nil {
		panic("affinity: invalid default table: " + err.Error())
	}
	return t
})

// Default returns the built-in table, weighting each label's genres 10
// down to 1. The returned Table is shared.
func Default() *Table {
	return defaultTable()
}

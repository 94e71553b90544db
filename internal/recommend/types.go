// MoodRec - Sentiment-Weighted Media Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodrec

package recommend

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// Label is a sentiment class.
type Label int

// Sentiment labels. The declaration order is the tie-break priority used by
// DominantLabel.
const (
	Positive Label = iota
	Neutral
	Negative
)

// Labels lists every label in tie-break priority order.
var Labels = [...]Label{Positive, Neutral, Negative}

// String returns the capitalized label name.
func (l Label) String() string {
	switch l {
	case Positive:
		return "Positive"
	case Neutral:
		return "Neutral"
	case Negative:
		return "Negative"
	default:
		return "unknown"
	}
}

// Valid reports whether l is one of the three labels.
func (l Label) Valid() bool {
	return l >= Positive && l <= Negative
}

// ParseLabel parses a label name case-insensitively.
func ParseLabel(s string) (Label, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "positive":
		return Positive, nil
	case "neutral":
		return Neutral, nil
	case "negative":
		return Negative, nil
	}
	return 0, &InvalidParameterError{Name: "label", Value: s, Reason: "must be positive, neutral or negative"}
}

// MarshalText implements encoding.TextMarshaler.
func (l Label) MarshalText() ([]byte, error) {
	if !l.Valid() {
		return nil, fmt.Errorf("cannot marshal label %d", int(l))
	}
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *Label) UnmarshalText(b []byte) error {
	parsed, err := ParseLabel(string(b))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// DefaultScoreTolerance is the allowed distance of a score's sum from 1.0.
const DefaultScoreTolerance = 1e-3

// SentimentScore is a probability distribution over the three labels.
type SentimentScore struct {
	Positive float64 `json:"positive"`
	Neutral  float64 `json:"neutral"`
	Negative float64 `json:"negative"`
}

// Probability returns the probability assigned to l.
func (s SentimentScore) Probability(l Label) float64 {
	switch l {
	case Positive:
		return s.Positive
	case Neutral:
		return s.Neutral
	case Negative:
		return s.Negative
	default:
		return 0
	}
}

// Validate checks the score against DefaultScoreTolerance.
func (s SentimentScore) Validate() error {
	return ValidateScore(s, DefaultScoreTolerance)
}

// ValidateScore checks that every component is in [0,1] and that the sum is
// within tolerance of 1. Failures are *InvalidScoreError.
func ValidateScore(s SentimentScore, tolerance float64) error {
	for _, l := range Labels {
		p := s.Probability(l)
		if math.IsNaN(p) || p < 0 || p > 1 {
			return &InvalidScoreError{
				Score:  s,
				Reason: fmt.Sprintf("%s probability %v is outside [0,1]", l, p),
			}
		}
	}
	sum := s.Positive + s.Neutral + s.Negative
	if math.Abs(sum-1) > tolerance {
		return &InvalidScoreError{
			Score:  s,
			Reason: fmt.Sprintf("probabilities sum to %.6f, want 1 within %g", sum, tolerance),
		}
	}
	return nil
}

// Dominant returns the highest-probability label.
func (s SentimentScore) Dominant() Label {
	return DominantLabel(s)
}

// DominantLabel returns the argmax of s. Exact ties resolve to the label that
// comes first in Labels, so {0.5, 0.5, 0} is Positive.
func DominantLabel(s SentimentScore) Label {
	best := Labels[0]
	for _, l := range Labels[1:] {
		if s.Probability(l) > s.Probability(best) {
			best = l
		}
	}
	return best
}

// OneHot returns a score with all probability on l.
func OneHot(l Label) SentimentScore {
	var s SentimentScore
	switch l {
	case Positive:
		s.Positive = 1
	case Neutral:
		s.Neutral = 1
	case Negative:
		s.Negative = 1
	}
	return s
}

func (s SentimentScore) String() string {
	return fmt.Sprintf("{positive:%g neutral:%g negative:%g}", s.Positive, s.Neutral, s.Negative)
}

// GenreWeight is the affinity of one genre for one label. Weights are
// relative and only meaningful within a label.
type GenreWeight struct {
	Label  Label   `json:"label"`
	Genre  string  `json:"genre"`
	Weight float64 `json:"weight"`
}

// MediaKind distinguishes movies from books.
type MediaKind string

const (
	KindMovie MediaKind = "movie"
	KindBook  MediaKind = "book"
)

// ParseMediaKind accepts singular or plural forms. An empty string returns ""
// which means "any kind".
func ParseMediaKind(s string) (MediaKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return "", nil
	case "movie", "movies", "film", "films":
		return KindMovie, nil
	case "book", "books":
		return KindBook, nil
	}
	return "", &InvalidParameterError{Name: "kind", Value: s, Reason: "must be movie or book"}
}

// MediaItem is a recommendable catalog entry. Items are never mutated once
// loaded.
type MediaItem struct {
	ID          string    `json:"id" yaml:"id"`
	Title       string    `json:"title" yaml:"title" validate:"notblank,max=300"`
	Kind        MediaKind `json:"kind" yaml:"kind" validate:"oneof=movie book"`
	Genres      []string  `json:"genres" yaml:"genres" validate:"min=1,max=20,dive,notblank"`
	Creator     string    `json:"creator,omitempty" yaml:"creator,omitempty" validate:"max=300"`
	Year        int       `json:"year,omitempty" yaml:"year,omitempty" validate:"gte=0,lte=3000"`
	Description string    `json:"description,omitempty" yaml:"description,omitempty" validate:"max=4000"`
	Rating      float64   `json:"rating,omitempty" yaml:"rating,omitempty" validate:"gte=0,lte=10"`
}

// RankedRecommendation is one scored item in a result list.
type RankedRecommendation struct {
	Item  MediaItem `json:"item"`
	Score float64   `json:"score"`
}

// Mode selects how a score is applied to the catalog.
type Mode string

const (
	// ModeWeighted mixes every label by its probability.
	ModeWeighted Mode = "weighted"

	// ModeDominant scores the catalog using only the dominant label.
	ModeDominant Mode = "dominant"
)

// ParseMode parses a mode name; "" selects ModeWeighted.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "weighted":
		return ModeWeighted, nil
	case "dominant", "simple":
		return ModeDominant, nil
	}
	return "", &InvalidParameterError{Name: "mode", Value: s, Reason: "must be weighted or dominant"}
}

// Request asks the Engine for recommendations for a known score.
type Request struct {
	Score SentimentScore `json:"score"`

	// K defaults to Config.Limits.DefaultK when zero.
	K int `json:"k,omitempty"`

	// Kind restricts results to one media kind; empty means any.
	Kind MediaKind `json:"kind,omitempty"`

	Mode Mode `json:"mode,omitempty"`

	RequestID string `json:"-"`
}

// TextRequest asks the Engine to classify text and then recommend.
type TextRequest struct {
	Text      string    `json:"text"`
	K         int       `json:"k,omitempty"`
	Kind      MediaKind `json:"kind,omitempty"`
	Mode      Mode      `json:"mode,omitempty"`
	RequestID string    `json:"-"`
}

// Response is a ranked recommendation list with its metadata.
type Response struct {
	Score           SentimentScore         `json:"score"`
	Dominant        Label                  `json:"dominant"`
	Recommendations []RankedRecommendation `json:"recommendations"`
	Metadata        ResponseMetadata       `json:"metadata"`
}

// ResponseMetadata describes how a Response was produced.
type ResponseMetadata struct {
	RequestID    string    `json:"request_id"`
	Mode         Mode      `json:"mode"`
	K            int       `json:"k"`
	Kind         MediaKind `json:"kind,omitempty"`
	CatalogSize  int       `json:"catalog_size"`
	LatencyMS    int64     `json:"latency_ms"`
	CacheHit     bool      `json:"cache_hit"`
	Provider     string    `json:"provider,omitempty"`
	ClassifiedMS int64     `json:"classified_ms,omitempty"`
	Timestamp    time.Time `json:"timestamp"`
}

// Metrics are cumulative Engine counters.
type Metrics struct {
	RequestCount  int64 `json:"request_count"`
	CacheHits     int64 `json:"cache_hits"`
	CacheMisses   int64 `json:"cache_misses"`
	ErrorCount    int64 `json:"error_count"`
	ClassifyCount int64 `json:"classify_count"`
	BatchCount    int64 `json:"batch_count"`
}

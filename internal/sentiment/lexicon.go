// MoodRec - Sentiment-Weighted Media Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodrec

package sentiment

import (
	"context"
	"math"
	"strings"
	"unicode"

	"github.com/tomtom215/moodrec/internal/recommend"
)

// Lexicon tuning. A text with no sentiment words scores Neutral because the
// neutral logit starts at neutralBias while the others start at zero.
const (
	lexiconGain   = 2.0
	neutralBias   = 1.0
	negationScope = 3
)

// defaultLexicon maps words to a polarity in [-1, 1].
var defaultLexicon = map[string]float64{
	// positive
	"love": 0.9, "loved": 0.9, "loving": 0.8, "lovely": 0.8,
	"excellent": 1.0, "amazing": 0.9, "awesome": 0.9, "outstanding": 0.9,
	"fantastic": 0.9, "wonderful": 0.9, "brilliant": 0.8, "great": 0.7,
	"good": 0.6, "nice": 0.5, "happy": 0.8, "glad": 0.6, "joy": 0.8,
	"enjoy": 0.7, "enjoyed": 0.7, "fun": 0.6, "beautiful": 0.7, "best": 0.8,
	"excited": 0.8, "exciting": 0.7, "like": 0.4, "liked": 0.4, "win": 0.6,
	"success": 0.7, "perfect": 0.9, "thanks": 0.5, "thank": 0.5,
	"grateful": 0.7, "hope": 0.4, "hopeful": 0.5, "proud": 0.7,
	"delighted": 0.9, "cheerful": 0.7, "calm": 0.3, "relaxed": 0.4,
	"inspiring": 0.7, "inspired": 0.6, "favorite": 0.6, "favourite": 0.6,
	"recommend": 0.5, "pleasant": 0.5, "cool": 0.4, "yay": 0.7,

	// negative
	"hate": -0.9, "hated": -0.9, "terrible": -1.0, "awful": -0.9,
	"horrible": -0.9, "disaster": -0.8, "bad": -0.6, "poor": -0.6,
	"worst": -0.9, "sad": -0.7, "unhappy": -0.7, "angry": -0.8,
	"annoyed": -0.6, "annoying": -0.6, "boring": -0.6, "bored": -0.5,
	"tired": -0.4, "upset": -0.7, "depressed": -0.8, "lonely": -0.6,
	"afraid": -0.6, "scared": -0.6, "fear": -0.6, "worried": -0.6,
	"anxious": -0.6, "cry": -0.6, "crying": -0.6, "hurt": -0.7,
	"pain": -0.7, "sick": -0.5, "fail": -0.6, "failed": -0.6,
	"failure": -0.7, "problem": -0.5, "broken": -0.6, "loss": -0.6,
	"lost": -0.5, "miss": -0.3, "ugly": -0.6, "stupid": -0.7,
	"disappointed": -0.8, "disappointing": -0.8, "frustrated": -0.7,
	"miserable": -0.9, "dislike": -0.6, "sucks": -0.8, "ugh": -0.5,
}

var negators = map[string]struct{}{
	"not": {}, "no": {}, "never": {}, "nothing": {}, "nobody": {},
	"neither": {}, "nor": {}, "without": {}, "hardly": {}, "barely": {},
}

var intensifiers = map[string]float64{
	"very": 1.5, "really": 1.4, "so": 1.3, "extremely": 1.8,
	"incredibly": 1.7, "super": 1.5, "totally": 1.4, "absolutely": 1.6,
	"quite": 1.2, "slightly": 0.5, "somewhat": 0.6, "kinda": 0.7,
}

// LexiconProvider classifies text offline with a word-polarity lexicon.
// Negators flip the polarity of the next few sentiment words and
// intensifiers scale the next one. The summed polarities become logits and
// a softmax turns them into a probability triple.
type LexiconProvider struct {
	words map[string]float64
}

// NewLexiconProvider returns a provider using the built-in lexicon merged
// with extra. Entries in extra override built-in words.
func NewLexiconProvider(extra map[string]float64) *LexiconProvider {
	words := make(map[string]float64, len(defaultLexicon)+len(extra))
	for w, p := range defaultLexicon {
		words[w] = p
	}
	for w, p := range extra {
		words[strings.ToLower(w)] = math.Max(-1, math.Min(1, p))
	}
	return &LexiconProvider{words: words}
}

// Name implements recommend.Classifier.
func (p *LexiconProvider) Name() string { return "lexicon" }

// Classify implements recommend.Classifier. It never reports the provider
// as unavailable.
func (p *LexiconProvider) Classify(ctx context.Context, text string) (recommend.SentimentScore, error) {
	if err := ctx.Err(); err != nil {
		return recommend.SentimentScore{}, err
	}
	pos, neg := p.polarity(tokenize(Preprocess(text)))
	return softmax(lexiconGain*pos, neutralBias, lexiconGain*neg), nil
}

// Ping implements Pinger.
func (p *LexiconProvider) Ping(ctx context.Context) error {
	return ctx.Err()
}

// polarity returns the summed positive and negative evidence in tokens.
func (p *LexiconProvider) polarity(tokens []string) (pos, neg float64) {
	negated := 0
	boost := 1.0
	for _, tok := range tokens {
		if _, ok := negators[tok]; ok || strings.HasSuffix(tok, "n't") {
			negated = negationScope
			continue
		}
		if m, ok := intensifiers[tok]; ok {
			boost *= m
			continue
		}

		v, ok := p.words[tok]
		if !ok {
			if negated > 0 {
				negated--
			}
			continue
		}
		v *= boost
		boost = 1.0
		if negated > 0 {
			v = -v
			negated = 0
		}
		if v > 0 {
			pos += v
		} else {
			neg -= v
		}
	}
	return pos, neg
}

// tokenize lower-cases text and splits it into words. Apostrophes stay
// inside words so contractions such as "don't" survive.
func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '\'' && r != '@'
	})
}

// softmax converts logits into a probability triple.
func softmax(pos, neu, neg float64) recommend.SentimentScore {
	m := math.Max(pos, math.Max(neu, neg))
	ep, eu, en := math.Exp(pos-m), math.Exp(neu-m), math.Exp(neg-m)
	sum := ep + eu + en
	return recommend.SentimentScore{
		Positive: ep / sum,
		Neutral:  eu / sum,
		Negative: en / sum,
	}
}

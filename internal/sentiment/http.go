// MoodRec - Sentiment-Weighted Media Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodrec

package sentiment

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/time/rate"

	"github.com/tomtom215/moodrec/internal/recommend"
)

// maxResponseBytes caps how much of an inference response is read.
const maxResponseBytes = 1 << 20

// HTTPConfig configures an HTTPProvider.
type HTTPConfig struct {
	Endpoint string
	APIToken string
	Timeout  time.Duration

	// RateLimit is the sustained request rate per second. Zero disables
	// client-side limiting.
	RateLimit float64

	// MaxTextLength truncates input text to this many runes. Zero disables
	// truncation.
	MaxTextLength int

	// Client overrides the HTTP client. Timeout is ignored when set.
	Client *http.Client
}

// HTTPProvider classifies text with a Hugging Face style inference endpoint:
// it posts {"inputs": text} and expects [[{"label": ..., "score": ...}]].
// Labels may be LABEL_0..LABEL_2 (negative, neutral, positive) or the label
// names themselves.
//
// Every transport failure, non-200 status and undecodable body is reported
// as a *recommend.ProviderUnavailableError. A rate-limit wait that cannot
// finish before the context deadline returns context.DeadlineExceeded.
// Requests are never retried.
type HTTPProvider struct {
	endpoint  string
	token     string
	maxLength int
	client    *http.Client
	limiter   *rate.Limiter
}

type inferenceRequest struct {
	Inputs string `json:"inputs"`
}

type labelScore struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// NewHTTPProvider validates cfg and returns a provider.
func NewHTTPProvider(cfg HTTPConfig) (*HTTPProvider, error) {
	if strings.TrimSpace(cfg.Endpoint) == "" {
		return nil, errors.New("sentiment endpoint is required")
	}
	client := cfg.Client
	if client == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = 15 * time.Second
		}
		client = &http.Client{Timeout: timeout}
	}

	limit := rate.Inf
	burst := 1
	if cfg.RateLimit > 0 {
		limit = rate.Limit(cfg.RateLimit)
		burst = max(1, int(cfg.RateLimit))
	}

	return &HTTPProvider{
		endpoint:  cfg.Endpoint,
		token:     cfg.APIToken,
		maxLength: cfg.MaxTextLength,
		client:    client,
		limiter:   rate.NewLimiter(limit, burst),
	}, nil
}

// Name implements recommend.Classifier.
func (p *HTTPProvider) Name() string { return "http" }

// Classify implements recommend.Classifier.
func (p *HTTPProvider) Classify(ctx context.Context, text string) (recommend.SentimentScore, error) {
	if err := p.limiter.Wait(ctx); err != nil {
		if ctx.Err() != nil {
			return recommend.SentimentScore{}, ctx.Err()
		}
		// The limiter refuses waits that would outlive the deadline. That
		// is a local budget problem, not an unreachable model.
		return recommend.SentimentScore{}, fmt.Errorf("%w: %v", context.DeadlineExceeded, err)
	}

	body, err := json.Marshal(inferenceRequest{Inputs: truncateRunes(Preprocess(text), p.maxLength)})
	if err != nil {
		return recommend.SentimentScore{}, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return recommend.SentimentScore{}, p.unavailable(fmt.Errorf("create request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if p.token != "" {
		req.Header.Set("Authorization", "Bearer "+p.token)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return recommend.SentimentScore{}, ctx.Err()
		}
		return recommend.SentimentScore{}, p.unavailable(fmt.Errorf("request failed: %w", err))
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return recommend.SentimentScore{}, p.unavailable(fmt.Errorf("read response: %w", err))
	}
	if resp.StatusCode != http.StatusOK {
		return recommend.SentimentScore{}, p.unavailable(fmt.Errorf("status %d: %s", resp.StatusCode, snippet(data)))
	}

	scores, err := decodeScores(data)
	if err != nil {
		return recommend.SentimentScore{}, p.unavailable(err)
	}
	return scores, nil
}

// Ping classifies a short fixed text to check the endpoint answers.
func (p *HTTPProvider) Ping(ctx context.Context) error {
	_, err := p.Classify(ctx, "ping")
	return err
}

func (p *HTTPProvider) unavailable(err error) error {
	return recommend.NewProviderUnavailable(p.Name(), err)
}

// decodeScores accepts both the nested [[...]] shape returned for a single
// input and a flat [...] list.
func decodeScores(data []byte) (recommend.SentimentScore, error) {
	var nested [][]labelScore
	if err := json.Unmarshal(data, &nested); err == nil {
		if len(nested) == 0 {
			return recommend.SentimentScore{}, errors.New("empty response")
		}
		return toScore(nested[0])
	}

	var flat []labelScore
	if err := json.Unmarshal(data, &flat); err != nil {
		return recommend.SentimentScore{}, fmt.Errorf("decode response: %w", err)
	}
	return toScore(flat)
}

func toScore(entries []labelScore) (recommend.SentimentScore, error) {
	if len(entries) == 0 {
		return recommend.SentimentScore{}, errors.New("response has no labels")
	}
	var s recommend.SentimentScore
	for _, e := range entries {
		label, err := modelLabel(e.Label)
		if err != nil {
			return recommend.SentimentScore{}, err
		}
		switch label {
		case recommend.Positive:
			s.Positive = e.Score
		case recommend.Neutral:
			s.Neutral = e.Score
		case recommend.Negative:
			s.Negative = e.Score
		}
	}
	return s, nil
}

// modelLabel maps a model output label to a sentiment label.
func modelLabel(name string) (recommend.Label, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "LABEL_0", "NEG":
		return recommend.Negative, nil
	case "LABEL_1", "NEU":
		return recommend.Neutral, nil
	case "LABEL_2", "POS":
		return recommend.Positive, nil
	}
	l, err := recommend.ParseLabel(name)
	if err != nil {
		return 0, fmt.Errorf("unknown model label %q", name)
	}
	return l, nil
}

func snippet(b []byte) string {
	const n = 200
	s := strings.TrimSpace(string(b))
	if t := truncateRunes(s, n); t != s {
		return t + "..."
	}
	return s
}

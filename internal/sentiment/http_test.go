// MoodRec - Sentiment-Weighted Media Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodrec

package sentiment

import (
	"context"
	"errors"
	"io"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/moodrec/internal/recommend"
)

func newTestHTTPProvider(t *testing.T, url string, cfg HTTPConfig) *HTTPProvider {
	t.Helper()
	cfg.Endpoint = url
	p, err := NewHTTPProvider(cfg)
	if err != nil {
		t.Fatalf("NewHTTPProvider() error = %v", err)
	}
	return p
}

func TestHTTPProvider_Classify(t *testing.T) {
	var gotBody inferenceRequest
	var gotAuth, gotType string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotType = r.Header.Get("Content-Type")
		data, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(data, &gotBody)
		_, _ = w.Write([]byte(`[[{"label":"LABEL_2","score":0.7},{"label":"LABEL_1","score":0.2},{"label":"LABEL_0","score":0.1}]]`))
	}))
	defer server.Close()

	p := newTestHTTPProvider(t, server.URL, HTTPConfig{APIToken: "secret"})
	score, err := p.Classify(context.Background(), "@sam loved https://t.co/x")
	if err != nil {
		t.Fatalf("Classify() error = %v", err)
	}

	want := recommend.SentimentScore{Positive: 0.7, Neutral: 0.2, Negative: 0.1}
	if score != want {
		t.Errorf("Classify() = %v, want %v", score, want)
	}
	if gotBody.Inputs != "@user loved http" {
		t.Errorf("inputs = %q, want preprocessed text", gotBody.Inputs)
	}
	if gotAuth != "Bearer secret" {
		t.Errorf("Authorization = %q", gotAuth)
	}
	if gotType != "application/json" {
		t.Errorf("Content-Type = %q", gotType)
	}
}

func TestHTTPProvider_ResponseShapes(t *testing.T) {
	tests := []struct {
		name string
		body string
		want recommend.SentimentScore
	}{
		{
			name: "flat named labels",
			body: `[{"label":"negative","score":0.6},{"label":"neutral","score":0.3},{"label":"positive","score":0.1}]`,
			want: recommend.SentimentScore{Positive: 0.1, Neutral: 0.3, Negative: 0.6},
		},
		{
			name: "short labels",
			body: `[[{"label":"POS","score":0.5},{"label":"NEU","score":0.5},{"label":"NEG","score":0}]]`,
			want: recommend.SentimentScore{Positive: 0.5, Neutral: 0.5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			got, err := newTestHTTPProvider(t, server.URL, HTTPConfig{}).Classify(context.Background(), "x")
			if err != nil {
				t.Fatalf("Classify() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Classify() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHTTPProvider_Unavailable(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"model loading", http.StatusServiceUnavailable, `{"error":"Model is currently loading"}`},
		{"unauthorized", http.StatusUnauthorized, `{"error":"bad token"}`},
		{"garbage body", http.StatusOK, `<html>`},
		{"empty list", http.StatusOK, `[]`},
		{"unknown label", http.StatusOK, `[[{"label":"LABEL_9","score":1}]]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls atomic.Int32
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				calls.Add(1)
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			_, err := newTestHTTPProvider(t, server.URL, HTTPConfig{}).Classify(context.Background(), "x")
			if !errors.Is(err, recommend.ErrProviderUnavailable) {
				t.Fatalf("Classify() error = %v, want ErrProviderUnavailable", err)
			}
			var pue *recommend.ProviderUnavailableError
			if !errors.As(err, &pue) || pue.Provider != "http" {
				t.Errorf("error = %#v, want ProviderUnavailableError for http", err)
			}
			if got := calls.Load(); got != 1 {
				t.Errorf("server called %d times, want exactly 1", got)
			}
		})
	}
}

func TestHTTPProvider_ConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	_, err := newTestHTTPProvider(t, url, HTTPConfig{}).Classify(context.Background(), "x")
	if !errors.Is(err, recommend.ErrProviderUnavailable) {
		t.Errorf("Classify() error = %v, want ErrProviderUnavailable", err)
	}
}

func TestHTTPProvider_CanceledContext(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := newTestHTTPProvider(t, server.URL, HTTPConfig{}).Classify(ctx, "x")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Classify() error = %v, want context.Canceled", err)
	}
	if errors.Is(err, recommend.ErrProviderUnavailable) {
		t.Error("canceled call reported the provider unavailable")
	}
}

func TestHTTPProvider_RateLimitDeadline(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		_, _ = w.Write([]byte(`[[{"label":"LABEL_1","score":1}]]`))
	}))
	defer server.Close()

	p := newTestHTTPProvider(t, server.URL, HTTPConfig{RateLimit: 1})
	b := NewBreakerProvider(p, testBreakerConfig(), zerolog.Nop())

	if _, err := b.Classify(context.Background(), "first"); err != nil {
		t.Fatalf("Classify() error = %v", err)
	}

	// The next token is a second away, so every wait under a short deadline
	// is refused without reaching the server.
	for i := 0; i < 3; i++ {
		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		_, err := b.Classify(ctx, "again")
		cancel()

		if !errors.Is(err, context.DeadlineExceeded) {
			t.Errorf("Classify() error = %v, want context.DeadlineExceeded", err)
		}
		if errors.Is(err, recommend.ErrProviderUnavailable) {
			t.Errorf("Classify() error = %v, reported the provider unavailable", err)
		}
	}

	if got := calls.Load(); got != 1 {
		t.Errorf("server called %d times, want 1", got)
	}
	if got := b.State(); got != "closed" {
		t.Errorf("breaker state = %s, want closed", got)
	}
}

func TestSnippet(t *testing.T) {
	long := strings.Repeat("é", 250)
	got := snippet([]byte(long))
	if !utf8.ValidString(got) {
		t.Errorf("snippet() = %q, not valid UTF-8", got)
	}
	if want := strings.Repeat("é", 200) + "..."; got != want {
		t.Errorf("snippet() has %d runes, want 200 plus ellipsis", utf8.RuneCountInString(got))
	}
	if got := snippet([]byte("  short  ")); got != "short" {
		t.Errorf("snippet() = %q, want short", got)
	}
}

func TestHTTPProvider_Truncates(t *testing.T) {
	var got inferenceRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(data, &got)
		_, _ = w.Write([]byte(`[[{"label":"LABEL_1","score":1}]]`))
	}))
	defer server.Close()

	p := newTestHTTPProvider(t, server.URL, HTTPConfig{MaxTextLength: 5})
	if _, err := p.Classify(context.Background(), strings.Repeat("a", 50)); err != nil {
		t.Fatalf("Classify() error = %v", err)
	}
	if got.Inputs != "aaaaa" {
		t.Errorf("inputs = %q, want 5 runes", got.Inputs)
	}
}

func TestNewHTTPProvider(t *testing.T) {
	if _, err := NewHTTPProvider(HTTPConfig{}); err == nil {
		t.Error("NewHTTPProvider() without endpoint succeeded")
	}

	p, err := NewHTTPProvider(HTTPConfig{Endpoint: "http://localhost", RateLimit: 2.5})
	if err != nil {
		t.Fatalf("NewHTTPProvider() error = %v", err)
	}
	if got := float64(p.limiter.Limit()); math.Abs(got-2.5) > 1e-9 {
		t.Errorf("limit = %v, want 2.5", got)
	}
	if p.limiter.Burst() != 2 {
		t.Errorf("burst = %d, want 2", p.limiter.Burst())
	}
	if p.Name() != "http" {
		t.Errorf("Name() = %q", p.Name())
	}
}

func TestModelLabel(t *testing.T) {
	tests := []struct {
		in      string
		want    recommend.Label
		wantErr bool
	}{
		{"LABEL_0", recommend.Negative, false},
		{"label_1", recommend.Neutral, false},
		{"LABEL_2", recommend.Positive, false},
		{"Positive", recommend.Positive, false},
		{"joy", 0, true},
	}
	for _, tt := range tests {
		got, err := modelLabel(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("modelLabel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("modelLabel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

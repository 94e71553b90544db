// MoodRec - Sentiment-Weighted Media Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodrec

package recommend

import (
	"errors"
	"testing"

	"github.com/goccy/go-json"
)

func TestDominantLabel(t *testing.T) {
	tests := []struct {
		name  string
		score SentimentScore
		want  Label
	}{
		{"positive and neutral tie", SentimentScore{Positive: 0.5, Neutral: 0.5, Negative: 0}, Positive},
		{"narrow positive lead", SentimentScore{Positive: 0.34, Neutral: 0.33, Negative: 0.33}, Positive},
		{"neutral and negative tie", SentimentScore{Positive: 0, Neutral: 0.5, Negative: 0.5}, Neutral},
		{"positive and negative tie", SentimentScore{Positive: 0.5, Neutral: 0, Negative: 0.5}, Positive},
		{"three-way tie", SentimentScore{Positive: 1.0 / 3, Neutral: 1.0 / 3, Negative: 1.0 / 3}, Positive},
		{"negative", SentimentScore{Positive: 0.1, Neutral: 0.2, Negative: 0.7}, Negative},
		{"neutral", SentimentScore{Positive: 0.2, Neutral: 0.6, Negative: 0.2}, Neutral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DominantLabel(tt.score); got != tt.want {
				t.Errorf("DominantLabel(%v) = %v, want %v", tt.score, got, tt.want)
			}
			if got := tt.score.Dominant(); got != tt.want {
				t.Errorf("Dominant() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLabel_String(t *testing.T) {
	tests := []struct {
		label Label
		want  string
	}{
		{Positive, "Positive"},
		{Neutral, "Neutral"},
		{Negative, "Negative"},
		{Label(7), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.label.String(); got != tt.want {
			t.Errorf("Label(%d).String() = %q, want %q", tt.label, got, tt.want)
		}
	}
}

func TestParseLabel(t *testing.T) {
	tests := []struct {
		in      string
		want    Label
		wantErr bool
	}{
		{"Positive", Positive, false},
		{"neutral", Neutral, false},
		{" NEGATIVE ", Negative, false},
		{"happy", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLabel(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidParameter) {
					t.Errorf("ParseLabel(%q) error = %v, want ErrInvalidParameter", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseLabel(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseLabel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestLabel_JSON(t *testing.T) {
	data, err := json.Marshal(struct {
		Dominant Label `json:"dominant"`
	}{Negative})
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(data) != `{"dominant":"Negative"}` {
		t.Errorf("Marshal() = %s", data)
	}

	var out struct {
		Dominant Label `json:"dominant"`
	}
	if err := json.Unmarshal([]byte(`{"dominant":"neutral"}`), &out); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if out.Dominant != Neutral {
		t.Errorf("Dominant = %v, want Neutral", out.Dominant)
	}

	if err := json.Unmarshal([]byte(`{"dominant":"ecstatic"}`), &out); err == nil {
		t.Error("Unmarshal() of unknown label succeeded")
	}
}

func TestValidateScore(t *testing.T) {
	tests := []struct {
		name    string
		score   SentimentScore
		wantErr bool
	}{
		{"exact", SentimentScore{Positive: 0.2, Neutral: 0.3, Negative: 0.5}, false},
		{"one-hot", SentimentScore{Negative: 1}, false},
		{"within tolerance", SentimentScore{Positive: 0.3335, Neutral: 0.333, Negative: 0.333}, false},
		{"sum 1.2", SentimentScore{Positive: 0.5, Neutral: 0.6, Negative: 0.1}, true},
		{"below zero", SentimentScore{Positive: -0.01, Neutral: 0.51, Negative: 0.5}, true},
		{"above one", SentimentScore{Positive: 1.01}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.score.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidScore) {
				t.Errorf("Validate() error = %v, want ErrInvalidScore", err)
			}
		})
	}
}

func TestOneHot(t *testing.T) {
	for _, l := range Labels {
		s := OneHot(l)
		if s.Probability(l) != 1 {
			t.Errorf("OneHot(%v).Probability(%v) = %v, want 1", l, l, s.Probability(l))
		}
		if err := s.Validate(); err != nil {
			t.Errorf("OneHot(%v) invalid: %v", l, err)
		}
		if DominantLabel(s) != l {
			t.Errorf("DominantLabel(OneHot(%v)) = %v", l, DominantLabel(s))
		}
	}
}

func TestParseMediaKind(t *testing.T) {
	tests := []struct {
		in      string
		want    MediaKind
		wantErr bool
	}{
		{"", "", false},
		{"movie", KindMovie, false},
		{"Movies", KindMovie, false},
		{"film", KindMovie, false},
		{"books", KindBook, false},
		{"podcast", "", true},
	}

	for _, tt := range tests {
		got, err := ParseMediaKind(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseMediaKind(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseMediaKind(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{"", ModeWeighted, false},
		{"weighted", ModeWeighted, false},
		{"Dominant", ModeDominant, false},
		{"simple", ModeDominant, false},
		{"random", "", true},
	}

	for _, tt := range tests {
		got, err := ParseMode(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseMode(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseMode(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestErrors(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	err := NewProviderUnavailable("http", cause)

	if !errors.Is(err, ErrProviderUnavailable) {
		t.Error("errors.Is(err, ErrProviderUnavailable) = false")
	}
	if !errors.Is(err, cause) {
		t.Error("ProviderUnavailableError does not unwrap to its cause")
	}
	var pe *ProviderUnavailableError
	if !errors.As(err, &pe) || pe.Provider != "http" {
		t.Errorf("errors.As() provider = %v", pe)
	}
	if errors.Is(err, ErrInvalidScore) {
		t.Error("provider error matches ErrInvalidScore")
	}

	if errors.Is(&InvalidParameterError{Name: "k"}, ErrInvalidScore) {
		t.Error("InvalidParameterError matches ErrInvalidScore")
	}
	if errors.Is(err, ErrBadProviderResponse) {
		t.Error("provider unavailable matches ErrBadProviderResponse")
	}
	if errors.Is(&InvalidScoreError{Reason: "sum"}, ErrBadProviderResponse) {
		t.Error("client score error matches ErrBadProviderResponse")
	}
}

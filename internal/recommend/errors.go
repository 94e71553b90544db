// MoodRec - Sentiment-Weighted Media Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodrec

package recommend

import (
	"errors"
	"fmt"
)

// Sentinel errors. Typed errors below match these with errors.Is.
var (
	ErrInvalidScore        = errors.New("invalid sentiment score")
	ErrInvalidParameter    = errors.New("invalid parameter")
	ErrProviderUnavailable = errors.New("sentiment provider unavailable")
	ErrBadProviderResponse = errors.New("sentiment provider returned an invalid score")
)

// InvalidScoreError reports a malformed probability triple.
type InvalidScoreError struct {
	Score  SentimentScore
	Reason string
}

func (e *InvalidScoreError) Error() string {
	return fmt.Sprintf("invalid sentiment score %s: %s", e.Score, e.Reason)
}

func (e *InvalidScoreError) Is(target error) bool {
	return target == ErrInvalidScore
}

// InvalidParameterError reports a request parameter outside its domain.
type InvalidParameterError struct {
	Name   string
	Value  interface{}
	Reason string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid parameter %s=%v: %s", e.Name, e.Value, e.Reason)
}

func (e *InvalidParameterError) Is(target error) bool {
	return target == ErrInvalidParameter
}

// ProviderUnavailableError reports that the sentiment model could not be
// reached or loaded. It is returned to callers as-is and never retried here.
type ProviderUnavailableError struct {
	Provider string
	Err      error
}

// NewProviderUnavailable wraps err as a *ProviderUnavailableError.
func NewProviderUnavailable(provider string, err error) error {
	return &ProviderUnavailableError{Provider: provider, Err: err}
}

func (e *ProviderUnavailableError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("sentiment provider %q unavailable", e.Provider)
	}
	return fmt.Sprintf("sentiment provider %q unavailable: %v", e.Provider, e.Err)
}

func (e *ProviderUnavailableError) Is(target error) bool {
	return target == ErrProviderUnavailable
}

func (e *ProviderUnavailableError) Unwrap() error {
	return e.Err
}

// ProviderResponseError reports a provider that answered with a score that
// fails validation. It unwraps to the *InvalidScoreError describing the
// problem, so it also matches ErrInvalidScore.
type ProviderResponseError struct {
	Provider string
	Err      error
}

func (e *ProviderResponseError) Error() string {
	return fmt.Sprintf("sentiment provider %q returned a malformed score: %v", e.Provider, e.Err)
}

func (e *ProviderResponseError) Is(target error) bool {
	return target == ErrBadProviderResponse
}

func (e *ProviderResponseError) Unwrap() error {
	return e.Err
}

// MoodRec - Sentiment-Weighted Media Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodrec

package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/moodrec/internal/logging"
	"github.com/tomtom215/moodrec/internal/models"
	"github.com/tomtom215/moodrec/internal/recommend"
	"github.com/tomtom215/moodrec/internal/validation"
)

// maxBodyBytes bounds request bodies. Batch requests are the largest.
const maxBodyBytes = 1 << 20

// Error codes returned in APIError.Code.
const (
	ErrCodeValidation          = "VALIDATION_ERROR"
	ErrCodeInvalidJSON         = "INVALID_JSON"
	ErrCodeInvalidScore        = "INVALID_SCORE"
	ErrCodeInvalidParameter    = "INVALID_PARAMETER"
	ErrCodeNotFound            = "NOT_FOUND"
	ErrCodeProviderUnavailable = "PROVIDER_UNAVAILABLE"
	ErrCodeBadProviderResponse = "BAD_PROVIDER_RESPONSE"
	ErrCodeInternal            = "INTERNAL_ERROR"
)

// sanitizeLogValue escapes control characters so user input cannot forge
// log lines.
func sanitizeLogValue(s string) string {
	var result strings.Builder
	result.Grow(len(s))
	for _, r := range s {
		if r < 0x20 || r == 0x7F {
			fmt.Fprintf(&result, "\\x%02x", r)
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}

// respondJSON sends a JSON response with proper headers
func respondJSON(w http.ResponseWriter, status int, response *models.APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	if w.Header().Get("Cache-Control") == "" {
		w.Header().Set("Cache-Control", "public, max-age=60")
	}
	w.Header().Set("Vary", "Accept-Encoding")

	data, err := json.Marshal(response)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("ETag", generateETag(data))

	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Error().Err(err).Msg("Failed to write JSON response")
	}
}

// generateETag creates a simple ETag from data using FNV-1a hash
func generateETag(data []byte) string {
	hash := uint32(2166136261)
	for _, b := range data {
		hash ^= uint32(b)
		hash *= 16777619
	}
	return strconv.FormatUint(uint64(hash), 16)
}

// respondSuccess wraps data in the success envelope.
func respondSuccess(w http.ResponseWriter, r *http.Request, data interface{}, start time.Time) {
	respondSuccessCached(w, r, data, start, false)
}

// respondSuccessCached is respondSuccess for payloads that may come from the
// recommendation cache. Only GET responses are cacheable by clients.
func respondSuccessCached(w http.ResponseWriter, r *http.Request, data interface{}, start time.Time, cached bool) {
	if r.Method != http.MethodGet {
		w.Header().Set("Cache-Control", "no-store")
	}
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   data,
		Metadata: models.Metadata{
			Timestamp:   time.Now(),
			QueryTimeMS: time.Since(start).Milliseconds(),
			Cached:      cached,
			RequestID:   logging.RequestIDFromContext(r.Context()),
		},
	})
}

// respondError sends an error response
func respondError(w http.ResponseWriter, r *http.Request, status int, code, message string, err error) {
	respondAPIError(w, r, status, &models.APIError{Code: code, Message: message}, err)
}

func respondAPIError(w http.ResponseWriter, r *http.Request, status int, apiErr *models.APIError, err error) {
	if err != nil {
		event := logging.Ctx(r.Context()).Warn()
		if status >= http.StatusInternalServerError {
			event = logging.Ctx(r.Context()).Error()
		}
		event.Str("code", sanitizeLogValue(apiErr.Code)).
			Str("error", sanitizeLogValue(err.Error())).
			Int("status", status).
			Msg("API Error")
	}

	w.Header().Set("Cache-Control", "no-store")
	respondJSON(w, status, &models.APIResponse{
		Status: "error",
		Metadata: models.Metadata{
			Timestamp: time.Now(),
			RequestID: logging.RequestIDFromContext(r.Context()),
		},
		Error: apiErr,
	})
}

// respondEngineError maps engine errors to HTTP status codes.
func respondEngineError(w http.ResponseWriter, r *http.Request, err error) {
	status, code, message := classifyError(err)
	respondError(w, r, status, code, message, err)
}

// classifyError returns the status, code and client message for err.
// Internal error text is not exposed to clients.
func classifyError(err error) (int, string, string) {
	switch {
	case errors.Is(err, recommend.ErrBadProviderResponse):
		return http.StatusBadGateway, ErrCodeBadProviderResponse, "Sentiment provider returned an invalid score"
	case errors.Is(err, recommend.ErrInvalidScore):
		return http.StatusBadRequest, ErrCodeInvalidScore, err.Error()
	case errors.Is(err, recommend.ErrInvalidParameter):
		return http.StatusBadRequest, ErrCodeInvalidParameter, err.Error()
	case errors.Is(err, recommend.ErrProviderUnavailable):
		return http.StatusServiceUnavailable, ErrCodeProviderUnavailable, "Sentiment provider is unavailable"
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, ErrCodeInternal, "Request timed out"
	default:
		return http.StatusInternalServerError, ErrCodeInternal, "Internal server error"
	}
}

// validateRequest validates a struct using go-playground/validator.
// Returns nil if validation passes, or a models.APIError if validation fails.
func validateRequest(v interface{}) *models.APIError {
	validationErr := validation.ValidateStruct(v)
	if validationErr == nil {
		return nil
	}

	apiErr := validationErr.ToAPIError()
	return &models.APIError{
		Code:    apiErr.Code,
		Message: apiErr.Message,
		Details: apiErr.Details,
	}
}

// decodeAndValidate reads a JSON body into dst and validates it. On failure
// it writes the error response and returns false.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			respondError(w, r, http.StatusRequestEntityTooLarge, ErrCodeInvalidJSON, "Request body too large", err)
			return false
		}
		respondError(w, r, http.StatusBadRequest, ErrCodeInvalidJSON, "Failed to read request body", err)
		return false
	}

	if err := json.Unmarshal(body, dst); err != nil {
		respondError(w, r, http.StatusBadRequest, ErrCodeInvalidJSON, "Request body is not valid JSON", err)
		return false
	}

	if apiErr := validateRequest(dst); apiErr != nil {
		respondAPIError(w, r, http.StatusBadRequest, apiErr, nil)
		return false
	}
	return true
}

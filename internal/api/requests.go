// MoodFlix - Mood-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodflix

package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/goccy/go-json"

	"github.com/tomtom215/moodflix/internal/cache"
	"github.com/tomtom215/moodflix/internal/recommend"
	"github.com/tomtom215/moodflix/internal/recommend/filter"
	"github.com/tomtom215/moodflix/internal/recommend/rules"
	"github.com/tomtom215/moodflix/internal/validation"
)

// maxBodyBytes caps POST bodies.
const maxBodyBytes = 64 << 10

// RecommendationRequest is the wire form of a recommendation request, read
// from the query string on GET and from the JSON body on POST. Unknown mood
// and duration labels are accepted; the engine maps them to defaults.
type RecommendationRequest struct {
	Mood     string `json:"mood" validate:"max=64"`
	Duration string `json:"duration" validate:"max=16"`
	Platform string `json:"platform" validate:"max=64"`
	Genre    string `json:"genre" validate:"max=64"`
	K        *int   `json:"k" validate:"omitempty,gte=1"`
}

// errInvalidK marks a non-integer k query parameter.
var errInvalidK = errors.New("k must be an integer")

func parseQueryRequest(r *http.Request) (RecommendationRequest, error) {
	q := r.URL.Query()
	req := RecommendationRequest{
		Mood:     q.Get("mood"),
		Duration: q.Get("duration"),
		Platform: q.Get("platform"),
		Genre:    q.Get("genre"),
	}

	if raw := strings.TrimSpace(q.Get("k")); raw != "" {
		k, err := strconv.Atoi(raw)
		if err != nil {
			return req, errInvalidK
		}
		req.K = &k
	}
	return req, nil
}

func decodeBodyRequest(w http.ResponseWriter, r *http.Request) (RecommendationRequest, error) {
	var req RecommendationRequest

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		if errors.Is(err, io.EOF) {
			return req, errors.New("request body is empty")
		}
		return req, fmt.Errorf("invalid JSON body: %w", err)
	}
	return req, nil
}

// validate applies tag rules plus the configured k ceiling.
func (req *RecommendationRequest) validate(maxK int) *validation.APIError {
	if verr := validation.ValidateStruct(req); verr != nil {
		return verr.ToAPIError()
	}
	if req.K != nil && *req.K > maxK {
		return &validation.APIError{
			Code:    ErrCodeValidationFailed,
			Message: fmt.Sprintf("k must be less than or equal to %d", maxK),
			Details: map[string]interface{}{"field": "k", "tag": "lte", "value": *req.K},
		}
	}
	return nil
}

// engineRequest converts to the engine's request; an omitted k becomes 0
// so the engine applies its default.
func (req *RecommendationRequest) engineRequest(requestID string) recommend.Request {
	out := recommend.Request{
		Mood:         req.Mood,
		Duration:     req.Duration,
		Platform:     req.Platform,
		DesiredGenre: req.Genre,
		RequestID:    requestID,
	}
	if req.K != nil {
		out.K = *req.K
	}
	return out
}

// cacheKey identifies equivalent requests against one engine. The key is
// built from the values the engine resolves labels to, so two requests share
// an entry only when they select the same genres, band and filters.
func (req *RecommendationRequest) cacheKey(engine *recommend.Engine) string {
	k := 0
	if req.K != nil {
		k = *req.K
	}
	platform := filter.Normalize(req.Platform)
	if filter.IsAnyPlatform(platform) {
		platform = ""
	}
	return cache.GenerateKey(fmt.Sprintf("recommend:%p", engine), struct {
		MoodGenres []string   `json:"mood_genres"`
		Band       rules.Band `json:"band"`
		Platform   string     `json:"platform"`
		Genre      string     `json:"genre"`
		K          int        `json:"k"`
	}{
		MoodGenres: rules.MoodToGenres(req.Mood),
		Band:       rules.DurationRange(req.Duration),
		Platform:   platform,
		Genre:      filter.Normalize(req.Genre),
		K:          k,
	})
}

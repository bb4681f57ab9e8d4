// MoodFlix - Mood-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodflix

// Package validation wraps go-playground/validator v10 behind a shared
// instance used by both the configuration loader and the HTTP API.
//
// Field names in errors come from the json tag, falling back to the koanf
// tag, so a bad query parameter is reported as "k" rather than "K":
//
//	type recommendationQuery struct {
//	    K int `json:"k" validate:"gte=0,lte=100"`
//	}
//
//	if verr := validation.ValidateStruct(&q); verr != nil {
//	    apiErr := verr.ToAPIError()
//	    respondError(w, r, http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details)
//	}
package validation

// Tracklist - Curated Playlists from a Static Track Catalog
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tracklist

package api

// Error codes for API responses
const (
	ErrCodeBadRequest       = "BAD_REQUEST"
	ErrCodeNotFound         = "NOT_FOUND"
	ErrCodeMethodNotAllowed = "METHOD_NOT_ALLOWED"
	ErrCodeTooManyRequests  = "TOO_MANY_REQUESTS"
	ErrCodeInternalError    = "INTERNAL_ERROR"
	ErrCodeRequestCancelled = "REQUEST_CANCELLED"
	ErrCodeMissingCatalog   = "MISSING_CATALOG"
	ErrCodeInvalidCatalog   = "INVALID_CATALOG"
	ErrCodeValidationFailed = "VALIDATION_ERROR"
	ErrCodeRequestTooLarge  = "REQUEST_TOO_LARGE"
)

// Response status values
const (
	StatusSuccess   = "success"
	StatusError     = "error"
	StatusNoMatches = "no_matches"
)

// Tracklist - Curated Playlists from a Static Track Catalog
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tracklist

/*
Package api exposes playlist generation over HTTP using the chi router.

# Endpoints

	POST /api/v1/playlists        generate a playlist from artists/genres/mood/language hints
	GET  /api/v1/languages        language selector options, "Any Language" first
	GET  /api/v1/catalog          summary of the loaded catalog
	POST /api/v1/catalog/reload   re-read the catalog source (rate limited)
	GET  /api/v1/health/live      liveness probe
	GET  /api/v1/health/ready     readiness probe, 503 until a catalog is loaded
	GET  /metrics                 Prometheus metrics
	GET  /swagger/*               Swagger UI, spec at /swagger/doc.json

# Responses

Every JSON response uses models.APIResponse. A playlist request that
selects nothing succeeds with status "no_matches" and a user-facing
message rather than failing. A missing catalog is reported as 503 with
code MISSING_CATALOG and a message naming the expected file.

# Middleware

Global: request ID, real IP, access log, panic recovery, CORS.
API routes add IP rate limiting (go-chi/httprate), security headers,
Prometheus metrics and gzip compression.
*/
package api

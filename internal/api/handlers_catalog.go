// Tracklist - Curated Playlists from a Static Track Catalog
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tracklist

package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/tomtom215/tracklist/internal/catalog"
	"github.com/tomtom215/tracklist/internal/logging"
	"github.com/tomtom215/tracklist/internal/models"
)

// CatalogStatus handles GET /api/v1/catalog.
//
// @Summary Catalog status
// @Description Reports the catalog location, content version, track and skipped row counts, size and load time.
// @Tags Catalog
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.CatalogStatus} "Catalog status"
// @Router /catalog [get]
func (h *Handler) CatalogStatus(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, r, h.catalogStatus(h.catalogs.Current()))
}

// ReloadCatalog handles POST /api/v1/catalog/reload. It re-reads the
// source; an unchanged source keeps the current catalog. On failure the
// previous catalog keeps serving and the error is reported.
//
// @Summary Reload the catalog
// @Description Re-reads the catalog source. Concurrent reloads share one fetch and calls are rate limited.
// @Tags Catalog
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.CatalogStatus} "Catalog reloaded or unchanged"
// @Failure 422 {object} models.APIResponse "Catalog could not be parsed"
// @Failure 429 {object} models.APIResponse "Reload rate limit exceeded"
// @Failure 503 {object} models.APIResponse "Catalog source missing"
// @Router /catalog/reload [post]
func (h *Handler) ReloadCatalog(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.reloadTimeout)
	defer cancel()

	cat, err := h.catalogs.Refresh(ctx)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrMissingCatalog):
			respondError(w, r, http.StatusServiceUnavailable, ErrCodeMissingCatalog, h.playlists.MissingCatalogMessage(), err)
		case errors.Is(err, catalog.ErrInvalidCatalog):
			respondError(w, r, http.StatusUnprocessableEntity, ErrCodeInvalidCatalog, "The track catalog could not be read", err)
		default:
			respondError(w, r, http.StatusInternalServerError, ErrCodeInternalError, "Catalog reload failed", err)
		}
		return
	}

	logging.Ctx(r.Context()).Info().
		Str("component", "api").
		Int("tracks", cat.Len()).
		Msg("Catalog reload requested")
	respondSuccess(w, r, h.catalogStatus(cat))
}

func (h *Handler) catalogStatus(cat *catalog.Catalog) models.CatalogStatus {
	status := models.CatalogStatus{Location: h.catalogs.Source().Location()}
	if cat == nil {
		status.Message = h.playlists.MissingCatalogMessage()
		return status
	}
	info := cat.Info()
	status.Loaded = true
	status.Version = info.Version
	status.Tracks = info.Tracks
	status.SkippedRows = info.SkippedRows
	status.DuplicateRows = info.DuplicateRows
	status.Bytes = info.Bytes
	status.LoadedAt = info.LoadedAt
	return status
}

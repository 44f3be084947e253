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
	"github.com/tomtom215/tracklist/internal/models"
	"github.com/tomtom215/tracklist/internal/playlist"
	"github.com/tomtom215/tracklist/internal/recommend/langdetect"
)

// CreatePlaylist handles POST /api/v1/playlists.
//
// The body is a models.PlaylistRequest; an empty body is an empty request.
// Responses:
//   - 200 success: models.PlaylistResponse
//   - 200 no_matches: nothing passed the filters, message for the user
//   - 400: malformed JSON or validation failure
//   - 503 MISSING_CATALOG / INVALID_CATALOG: no usable catalog
//
// @Summary Generate a playlist
// @Description Ranks catalog tracks against the artist, genre and mood hints, caps tracks per artist,
// @Description optionally keeps only titles in the requested language and returns a shuffled playlist
// @Description with a Spotlistr export link.
// @Tags Playlists
// @Accept json
// @Produce json
// @Param request body models.PlaylistRequest false "Playlist hints"
// @Success 200 {object} models.APIResponse{data=models.PlaylistResponse} "Playlist generated, or status no_matches"
// @Failure 400 {object} models.APIResponse "Malformed or invalid request"
// @Failure 413 {object} models.APIResponse "Request body too large"
// @Failure 503 {object} models.APIResponse "Catalog missing or unreadable"
// @Router /playlists [post]
func (h *Handler) CreatePlaylist(w http.ResponseWriter, r *http.Request) {
	var req models.PlaylistRequest
	if err := decodeJSONBody(w, r, &req); err != nil && !errors.Is(err, errEmptyBody) {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondError(w, r, http.StatusRequestEntityTooLarge, ErrCodeRequestTooLarge, "Request body too large", nil)
			return
		}
		respondError(w, r, http.StatusBadRequest, ErrCodeBadRequest, "Invalid JSON request body", nil)
		return
	}

	if apiErr := validateRequest(&req); apiErr != nil {
		respondJSON(w, r, http.StatusBadRequest, &models.APIResponse{
			Status: StatusError,
			Error:  apiErr,
		})
		return
	}

	lang, _ := langdetect.Parse(req.Language)
	pl, err := h.playlists.Generate(r.Context(), playlist.Request{
		Artists:  req.Artists,
		Genres:   req.Genres,
		Mood:     req.Mood,
		Language: lang,
	})
	switch {
	case err == nil:
		respondSuccess(w, r, toPlaylistResponse(pl))
	case errors.Is(err, playlist.ErrNoMatches):
		respondJSON(w, r, http.StatusOK, &models.APIResponse{
			Status:  StatusNoMatches,
			Data:    models.PlaylistResponse{Tracks: []models.TrackView{}, Lines: []string{}, Language: string(lang)},
			Message: playlist.NoMatchesMessage,
		})
	case errors.Is(err, catalog.ErrMissingCatalog):
		respondError(w, r, http.StatusServiceUnavailable, ErrCodeMissingCatalog, h.playlists.MissingCatalogMessage(), err)
	case errors.Is(err, catalog.ErrInvalidCatalog):
		respondError(w, r, http.StatusServiceUnavailable, ErrCodeInvalidCatalog, "The track catalog could not be read", err)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		respondError(w, r, http.StatusServiceUnavailable, ErrCodeRequestCancelled, "Request cancelled", nil)
	default:
		respondError(w, r, http.StatusInternalServerError, ErrCodeInternalError, "Failed to generate playlist", err)
	}
}

func toPlaylistResponse(pl *playlist.Playlist) models.PlaylistResponse {
	tracks := make([]models.TrackView, len(pl.Tracks))
	for i, t := range pl.Tracks {
		tracks[i] = models.TrackView{
			Name:    t.Name,
			Artists: t.Artists,
			Genre:   t.Genre,
			Album:   t.Album,
			TrackID: t.TrackID,
			Display: t.Display(),
		}
	}
	return models.PlaylistResponse{
		Tracks:         tracks,
		Lines:          pl.Lines,
		ExportURL:      pl.ExportURL,
		Language:       string(pl.Language),
		Query:          pl.Query,
		CatalogVersion: pl.CatalogVersion,
		Truncated:      pl.Truncated,
	}
}

// Languages handles GET /api/v1/languages and lists the language selector
// options in display order.
//
// @Summary List languages
// @Description Returns the language selector entries in display order, "Any Language" first.
// @Tags Playlists
// @Produce json
// @Success 200 {object} models.APIResponse{data=[]models.LanguageOption} "Language options"
// @Router /languages [get]
func (h *Handler) Languages(w http.ResponseWriter, r *http.Request) {
	opts := langdetect.Options()
	out := make([]models.LanguageOption, len(opts))
	for i, o := range opts {
		out[i] = models.LanguageOption{Label: o.Label, Code: string(o.Code)}
	}
	respondSuccess(w, r, out)
}

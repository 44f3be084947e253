// Tracklist - Curated Playlists from a Static Track Catalog
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tracklist

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/tracklist/internal/models"
)

// HealthLive handles liveness probe requests (Kubernetes-style).
// Returns 200 OK while the process is running.
//
// @Summary Liveness probe
// @Description Returns 200 OK while the process is alive, whether or not a catalog is loaded.
// @Tags Health
// @Produce json
// @Success 200 {object} models.APIResponse "Service is alive"
// @Router /health/live [get]
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusOK, &models.APIResponse{
		Status: StatusSuccess,
		Data: map[string]interface{}{
			"alive":  true,
			"uptime": time.Since(h.startTime).Seconds(),
		},
	})
}

// HealthReady handles readiness probe requests (Kubernetes-style).
// Returns 200 OK only once a catalog has been loaded.
//
// @Summary Readiness probe
// @Description Returns 200 OK once a track catalog is loaded, 503 before that.
// @Tags Health
// @Produce json
// @Success 200 {object} models.APIResponse "Service is ready"
// @Failure 503 {object} models.APIResponse "No catalog loaded yet"
// @Router /health/ready [get]
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	ready := h.catalogs.Ready()

	statusCode := http.StatusOK
	status := "ready"
	if !ready {
		statusCode = http.StatusServiceUnavailable
		status = "not_ready"
	}

	data := map[string]interface{}{
		"catalog_loaded": ready,
		"ready_to_serve": ready,
		"uptime":         time.Since(h.startTime).Seconds(),
	}
	if cat := h.catalogs.Current(); cat != nil {
		data["catalog_tracks"] = cat.Len()
	}

	respondJSON(w, r, statusCode, &models.APIResponse{
		Status: status,
		Data:   data,
	})
}

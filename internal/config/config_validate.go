// Tracklist - Curated Playlists from a Static Track Catalog
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tracklist

package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// Validate checks that required configuration is present and valid
func (c *Config) Validate() error {
	if err := c.validateCatalog(); err != nil {
		return err
	}

	if err := c.validateRecommend(); err != nil {
		return err
	}

	if err := c.validateExport(); err != nil {
		return err
	}

	if err := c.validateServer(); err != nil {
		return err
	}

	if err := c.validateSecurity(); err != nil {
		return err
	}

	return c.validateLogging()
}

// validateCatalog validates the catalog source settings
func (c *Config) validateCatalog() error {
	loc := strings.TrimSpace(c.Catalog.Location)
	if loc == "" {
		return fmt.Errorf("CATALOG_PATH is required")
	}
	if strings.HasPrefix(loc, "http://") || strings.HasPrefix(loc, "https://") {
		u, err := url.Parse(loc)
		if err != nil || u.Host == "" {
			return fmt.Errorf("CATALOG_URL must be a valid http(s) URL, got %q", loc)
		}
		if c.Catalog.BreakerFailures == 0 {
			return fmt.Errorf("CATALOG_BREAKER_FAILURES must be at least 1")
		}
	}
	if c.Catalog.RefreshInterval < 0 {
		return fmt.Errorf("CATALOG_REFRESH_INTERVAL must be non-negative")
	}
	if c.Catalog.RefreshInterval > 0 && c.Catalog.RefreshInterval < time.Second {
		return fmt.Errorf("CATALOG_REFRESH_INTERVAL must be at least 1s when set")
	}
	if c.Catalog.HTTPTimeout < 0 || c.Catalog.BreakerOpenTimeout < 0 {
		return fmt.Errorf("catalog timeouts must be non-negative")
	}
	if c.Catalog.HTTPMaxBytes < 0 {
		return fmt.Errorf("CATALOG_HTTP_MAX_BYTES must be non-negative")
	}
	return nil
}

// validateRecommend validates playlist shaping and detector settings
func (c *Config) validateRecommend() error {
	r := &c.Recommend
	if r.MaxResults < 1 {
		return fmt.Errorf("PLAYLIST_MAX_RESULTS must be at least 1")
	}
	if r.MaxPerArtist < 1 {
		return fmt.Errorf("PLAYLIST_MAX_PER_ARTIST must be at least 1")
	}
	if r.CandidateWindow < r.MaxResults {
		return fmt.Errorf("PLAYLIST_CANDIDATE_WINDOW (%d) must be at least PLAYLIST_MAX_RESULTS (%d)",
			r.CandidateWindow, r.MaxResults)
	}
	if r.DetectionTimeout < 0 {
		return fmt.Errorf("PLAYLIST_DETECTION_TIMEOUT must be non-negative")
	}
	if r.Detector.MinRelativeDistance < 0 || r.Detector.MinRelativeDistance > 0.99 {
		return fmt.Errorf("LANGDETECT_MIN_DISTANCE must be between 0 and 0.99")
	}
	if r.Detector.CacheSize < 0 {
		return fmt.Errorf("LANGDETECT_CACHE_SIZE must be non-negative")
	}
	if r.Detector.CacheSize > 0 && r.Detector.CacheTTL <= 0 {
		return fmt.Errorf("LANGDETECT_CACHE_TTL must be positive when the cache is enabled")
	}
	return nil
}

// validateExport validates the export link prefix
func (c *Config) validateExport() error {
	u, err := url.Parse(c.Export.SpotlistrBase)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("EXPORT_SPOTLISTR_BASE must be an absolute http(s) URL")
	}
	return nil
}

// validateServer validates server configuration
func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive")
	}
	if !validEnvironments[c.Server.Environment] {
		return fmt.Errorf("ENVIRONMENT must be one of: development, staging, production")
	}
	return nil
}

var validEnvironments = map[string]bool{
	"development": true,
	"staging":     true,
	"production":  true,
}

// validateSecurity validates security configuration
func (c *Config) validateSecurity() error {
	if err := c.validateRateLimits(); err != nil {
		return err
	}
	if c.Security.ReloadInterval < 0 {
		return fmt.Errorf("CATALOG_RELOAD_EVERY must be non-negative")
	}
	return nil
}

// hasWildcardCORS checks if CORS is configured with wildcard origins
func (c *Config) hasWildcardCORS() bool {
	for _, origin := range c.Security.CORSOrigins {
		if origin == "*" {
			return true
		}
	}
	return false
}

// ShouldWarnAboutCORS returns true if CORS configuration has security concerns
// that should be logged at startup
func (c *Config) ShouldWarnAboutCORS() bool {
	return c.IsProduction() && c.hasWildcardCORS()
}

// Rate limit constants
const (
	minRateLimitRequests = 1           // Minimum 1 request allowed
	maxRateLimitRequests = 100000      // Maximum 100K requests per window
	minRateLimitWindow   = time.Second // Minimum 1 second window
	maxRateLimitWindow   = time.Hour   // Maximum 1 hour window
)

// validateRateLimits validates rate limiting configuration bounds.
func (c *Config) validateRateLimits() error {
	if c.Security.RateLimitDisabled {
		return nil
	}

	if c.Security.RateLimitReqs < minRateLimitRequests || c.Security.RateLimitReqs > maxRateLimitRequests {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be between %d and %d", minRateLimitRequests, maxRateLimitRequests)
	}
	if c.Security.RateLimitWindow < minRateLimitWindow || c.Security.RateLimitWindow > maxRateLimitWindow {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be between %v and %v", minRateLimitWindow, maxRateLimitWindow)
	}
	return nil
}

var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

// validateLogging validates logging configuration
func (c *Config) validateLogging() error {
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if c.Logging.Format != "" && !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}

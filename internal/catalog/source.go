// Tracklist - Curated Playlists from a Static Track Catalog
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tracklist

package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/tracklist/internal/metrics"
)

// Source produces the raw bytes of a catalog.
type Source interface {
	// Fetch returns the full catalog content. Errors wrap ErrMissingCatalog
	// when the content could not be obtained.
	Fetch(ctx context.Context) ([]byte, error)

	// Location describes where the catalog comes from, for logs and status.
	Location() string
}

// NewSource returns an HTTPSource for http(s) URLs and a FileSource for
// anything else. A "file://" prefix is stripped.
func NewSource(location string, cfg HTTPSourceConfig) Source {
	lower := strings.ToLower(location)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return NewHTTPSource(location, cfg)
	}
	return NewFileSource(strings.TrimPrefix(location, "file://"))
}

// FileSource reads a catalog from the local filesystem.
type FileSource struct {
	path string
}

// NewFileSource creates a source for the file at path.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Path returns the file path, used by the file watcher.
func (s *FileSource) Path() string { return s.path }

// Location implements Source.
func (s *FileSource) Location() string { return s.path }

// Fetch implements Source.
func (s *FileSource) Fetch(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingCatalog, err)
	}
	return data, nil
}

// HTTPSourceConfig configures remote catalog fetching.
type HTTPSourceConfig struct {
	// Timeout bounds a single fetch.
	Timeout time.Duration

	// MaxBytes caps the accepted body size.
	MaxBytes int64

	// FailureThreshold is the number of consecutive failures that opens the breaker.
	FailureThreshold uint32

	// OpenTimeout is how long the breaker stays open before probing again.
	OpenTimeout time.Duration
}

// DefaultHTTPSourceConfig returns conservative remote fetch settings.
func DefaultHTTPSourceConfig() HTTPSourceConfig {
	return HTTPSourceConfig{
		Timeout:          30 * time.Second,
		MaxBytes:         256 << 20,
		FailureThreshold: 3,
		OpenTimeout:      time.Minute,
	}
}

var (
	errNotFound = errors.New("catalog not found at remote location")
	errTooLarge = errors.New("catalog exceeds size limit")
)

// HTTPSource fetches a catalog over HTTP through a circuit breaker so that
// an unreachable host is not hammered by the refresh loop.
type HTTPSource struct {
	url      string
	client   *http.Client
	maxBytes int64
	breaker  *gobreaker.CircuitBreaker[[]byte]
}

// NewHTTPSource creates a source for url. Zero config fields take the
// values from DefaultHTTPSourceConfig.
func NewHTTPSource(url string, cfg HTTPSourceConfig) *HTTPSource {
	def := DefaultHTTPSourceConfig()
	if cfg.Timeout <= 0 {
		cfg.Timeout = def.Timeout
	}
	if cfg.MaxBytes <= 0 {
		cfg.MaxBytes = def.MaxBytes
	}
	if cfg.FailureThreshold == 0 {
		cfg.FailureThreshold = def.FailureThreshold
	}
	if cfg.OpenTimeout <= 0 {
		cfg.OpenTimeout = def.OpenTimeout
	}

	const name = "catalog-http"
	settings := gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Timeout:     cfg.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.FailureThreshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			metrics.RecordCircuitBreakerTransition(name, from.String(), to.String())
		},
		// A 404 is an answer, not an outage.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, errNotFound)
		},
	}

	return &HTTPSource{
		url:      url,
		client:   &http.Client{Timeout: cfg.Timeout},
		maxBytes: cfg.MaxBytes,
		breaker:  gobreaker.NewCircuitBreaker[[]byte](settings),
	}
}

// Location implements Source.
func (s *HTTPSource) Location() string { return s.url }

// Fetch implements Source.
func (s *HTTPSource) Fetch(ctx context.Context) ([]byte, error) {
	data, err := s.breaker.Execute(func() ([]byte, error) {
		return s.get(ctx)
	})
	if err != nil {
		return nil, fmt.Errorf("%w: fetch %s: %v", ErrMissingCatalog, s.url, err)
	}
	return data, nil
}

func (s *HTTPSource) get(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "text/csv, */*")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close() //nolint:errcheck // read-only body

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, errNotFound
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, s.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if int64(len(data)) > s.maxBytes {
		return nil, errTooLarge
	}
	return data, nil
}

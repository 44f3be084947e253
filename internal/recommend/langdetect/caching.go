// Tracklist - Curated Playlists from a Static Track Catalog
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tracklist

package langdetect

import (
	"errors"
	"time"

	"github.com/tomtom215/tracklist/internal/cache"
	"github.com/tomtom215/tracklist/internal/metrics"
)

type cachedResult struct {
	lang         Language
	undetermined bool
}

// CachingDetector memoizes another Detector per exact text. Definite
// answers and ErrUndetermined are cached; other errors are not.
type CachingDetector struct {
	next  Detector
	cache *cache.LRU[cachedResult]
}

// NewCachingDetector wraps next with a cache of at most size texts, each
// kept for ttl.
func NewCachingDetector(next Detector, size int, ttl time.Duration) *CachingDetector {
	return &CachingDetector{
		next:  next,
		cache: cache.NewLRU[cachedResult](size, ttl),
	}
}

// Detect implements Detector.
func (c *CachingDetector) Detect(text string) (Language, error) {
	if r, ok := c.cache.Get(text); ok {
		metrics.LanguageDetectionCacheHits.Inc()
		if r.undetermined {
			return "", ErrUndetermined
		}
		return r.lang, nil
	}
	metrics.LanguageDetectionCacheMisses.Inc()

	lang, err := c.next.Detect(text)
	switch {
	case err == nil:
		c.cache.Add(text, cachedResult{lang: lang})
	case errors.Is(err, ErrUndetermined):
		c.cache.Add(text, cachedResult{undetermined: true})
	}
	return lang, err
}

// Stats returns cache hit/miss counters and size.
func (c *CachingDetector) Stats() (hits, misses int64, size int) {
	return c.cache.Stats()
}

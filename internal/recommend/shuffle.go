// Tracklist - Curated Playlists from a Static Track Catalog
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tracklist

package recommend

import (
	"math/rand/v2"
	"sync"
	"time"
)

// Shuffler permutes n elements in place through swap.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// RandShuffler is a Shuffler over a seeded PCG source, safe for concurrent use.
type RandShuffler struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandShuffler returns a shuffler seeded with seed, or from the clock
// when seed is zero. A fixed seed yields a reproducible sequence of
// permutations.
func NewRandShuffler(seed uint64) *RandShuffler {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &RandShuffler{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Shuffle implements Shuffler.
func (s *RandShuffler) Shuffle(n int, swap func(i, j int)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rng.Shuffle(n, swap)
}

// Tracklist - Curated Playlists from a Static Track Catalog
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tracklist

// Package tfidf scores short documents against a free-text query with
// smoothed TF-IDF weights and cosine similarity.
//
// The weighting treats the query as one extra document of the corpus:
// with N documents plus the query, a term's weight is
//
//	idf(t) = ln((1 + N + 1) / (1 + df(t))) + 1
//
// where df counts the query too. Rows use raw term counts and are
// L2-normalized. Query terms that occur in no document carry no weight.
//
// An Index precomputes everything that does not depend on the query, so a
// query only visits the documents that share at least one term with it.
package tfidf

import (
	"math"
)

type posting struct {
	doc int32
	tf  float32
}

// Index is an immutable inverted index over a fixed document set.
// It is safe for concurrent use.
type Index struct {
	n        int
	vocab    map[string]int32
	df       []int32
	postings [][]posting

	// baseNorm2 is each document's squared norm when no term is shared
	// with the query.
	baseNorm2 []float64
}

// NewIndex tokenizes docs and builds the index. Scores are returned in
// the same order as docs.
func NewIndex(docs []string) *Index {
	idx := &Index{
		n:     len(docs),
		vocab: make(map[string]int32),
	}

	counts := make(map[int32]int, 8)
	for d, text := range docs {
		clear(counts)
		for _, tok := range Tokenize(text) {
			id, ok := idx.vocab[tok]
			if !ok {
				id = int32(len(idx.df))
				idx.vocab[tok] = id
				idx.df = append(idx.df, 0)
				idx.postings = append(idx.postings, nil)
			}
			counts[id]++
		}
		for id, c := range counts {
			idx.df[id]++
			idx.postings[id] = append(idx.postings[id], posting{doc: int32(d), tf: float32(c)})
		}
	}

	idx.baseNorm2 = make([]float64, idx.n)
	for id, plist := range idx.postings {
		w := idx.idf(idx.df[id])
		for _, p := range plist {
			tw := float64(p.tf) * w
			idx.baseNorm2[p.doc] += tw * tw
		}
	}
	return idx
}

// Len returns the number of indexed documents.
func (idx *Index) Len() int { return idx.n }

// VocabularySize returns the number of distinct terms across documents.
func (idx *Index) VocabularySize() int { return len(idx.df) }

// idf returns the smoothed inverse document frequency for a term present
// in df documents, counting the query as the N+1th document.
func (idx *Index) idf(df int32) float64 {
	total := float64(idx.n + 1)
	return math.Log((1+total)/(1+float64(df))) + 1
}

// Scores returns the cosine similarity between query and every document.
// Documents sharing no term with the query score 0, as does every
// document when the query has no known terms.
func (idx *Index) Scores(query string) []float64 {
	scores := make([]float64, idx.n)

	qcounts := make(map[int32]float64)
	for _, tok := range Tokenize(query) {
		if id, ok := idx.vocab[tok]; ok {
			qcounts[id]++
		}
	}
	if len(qcounts) == 0 {
		return scores
	}

	// Terms shared with the query have df one higher than in baseNorm2.
	adjust := make(map[int32]float64, 64)
	var qnorm2 float64
	for id, qc := range qcounts {
		base := idx.idf(idx.df[id])
		shared := idx.idf(idx.df[id] + 1)
		qw := qc * shared
		qnorm2 += qw * qw

		delta := shared*shared - base*base
		for _, p := range idx.postings[id] {
			tf := float64(p.tf)
			scores[p.doc] += qw * tf * shared
			adjust[p.doc] += tf * tf * delta
		}
	}

	qnorm := math.Sqrt(qnorm2)
	for doc, adj := range adjust {
		norm2 := idx.baseNorm2[doc] + adj
		if norm2 <= 0 || qnorm == 0 {
			scores[doc] = 0
			continue
		}
		scores[doc] /= qnorm * math.Sqrt(norm2)
	}
	return scores
}

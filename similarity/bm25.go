//
// Tencent is pleased to support the open source community by making trpc-ragkit-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-ragkit-go is licensed under the Apache License Version 2.0.
//
//

package similarity

import "math"

// Default Okapi BM25 parameters.
const (
	defaultK1 = 1.2
	defaultB  = 0.75
)

// BM25Scorer scores texts with the Okapi BM25 ranking function over the
// two-text corpus, normalized by self-similarity so the result stays in
// [0, 1] and is symmetric. It is the preferred discontinuity signal for
// the semantic packer.
type BM25Scorer struct {
	k1 float64
	b  float64
}

// BM25Option represents a functional option for configuring BM25Scorer.
type BM25Option func(*BM25Scorer)

// WithK1 sets the term-frequency saturation parameter.
func WithK1(k1 float64) BM25Option {
	return func(s *BM25Scorer) {
		if k1 > 0 {
			s.k1 = k1
		}
	}
}

// WithB sets the length-normalization parameter.
func WithB(b float64) BM25Option {
	return func(s *BM25Scorer) {
		if b >= 0 && b <= 1 {
			s.b = b
		}
	}
}

// NewBM25Scorer creates a BM25 similarity scorer with options.
func NewBM25Scorer(opts ...BM25Option) *BM25Scorer {
	s := &BM25Scorer{k1: defaultK1, b: defaultB}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Score implements the Scorer interface.
func (s *BM25Scorer) Score(a, b string) float64 {
	termsA := terms(a)
	termsB := terms(b)
	if len(termsA) == 0 && len(termsB) == 0 {
		return 1
	}
	if len(termsA) == 0 || len(termsB) == 0 {
		return 0
	}

	avgLen := float64(len(termsA)+len(termsB)) / 2
	freqA := termFreq(termsA)
	freqB := termFreq(termsB)
	idf := corpusIDF(freqA, freqB)

	// Cross-score each text as a query against the other, normalized
	// by the score of the text against itself.
	ab := s.query(freqA, freqB, float64(len(termsB)), avgLen, idf)
	aa := s.query(freqA, freqA, float64(len(termsA)), avgLen, idf)
	ba := s.query(freqB, freqA, float64(len(termsA)), avgLen, idf)
	bb := s.query(freqB, freqB, float64(len(termsB)), avgLen, idf)

	var sum, n float64
	if aa > 0 {
		sum += ab / aa
		n++
	}
	if bb > 0 {
		sum += ba / bb
		n++
	}
	if n == 0 {
		return 0
	}
	return clamp01(sum / n)
}

// query scores the document freqs doc against the query term set.
func (s *BM25Scorer) query(query, doc map[string]int, docLen, avgLen float64, idf map[string]float64) float64 {
	var score float64
	for term := range query {
		tf := float64(doc[term])
		if tf == 0 {
			continue
		}
		norm := s.k1 * (1 - s.b + s.b*docLen/avgLen)
		score += idf[term] * (tf * (s.k1 + 1)) / (tf + norm)
	}
	return score
}

func termFreq(terms []string) map[string]int {
	freq := make(map[string]int, len(terms))
	for _, t := range terms {
		freq[t]++
	}
	return freq
}

// corpusIDF computes inverse document frequencies over the two-text corpus.
func corpusIDF(a, b map[string]int) map[string]float64 {
	idf := make(map[string]float64, len(a)+len(b))
	for term := range a {
		idf[term] = idfValue(docFreq(term, a, b))
	}
	for term := range b {
		if _, ok := idf[term]; !ok {
			idf[term] = idfValue(docFreq(term, a, b))
		}
	}
	return idf
}

func docFreq(term string, a, b map[string]int) int {
	df := 0
	if a[term] > 0 {
		df++
	}
	if b[term] > 0 {
		df++
	}
	return df
}

func idfValue(df int) float64 {
	const n = 2 // corpus size
	return math.Log(1 + (float64(n)-float64(df)+0.5)/(float64(df)+0.5))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

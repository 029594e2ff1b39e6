//
// Tencent is pleased to support the open source community by making trpc-ragkit-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-ragkit-go is licensed under the Apache License Version 2.0.
//
//

package similarity

// JaccardScorer scores texts by the Jaccard index of their term sets.
// It is the fallback when no ranking-function scorer is configured.
type JaccardScorer struct{}

// NewJaccardScorer creates a Jaccard similarity scorer.
func NewJaccardScorer() *JaccardScorer {
	return &JaccardScorer{}
}

// Score implements the Scorer interface.
func (*JaccardScorer) Score(a, b string) float64 {
	setA := termSet(a)
	setB := termSet(b)
	if len(setA) == 0 && len(setB) == 0 {
		return 1
	}
	if len(setA) == 0 || len(setB) == 0 {
		return 0
	}
	intersection := 0
	for t := range setA {
		if _, ok := setB[t]; ok {
			intersection++
		}
	}
	union := len(setA) + len(setB) - intersection
	return float64(intersection) / float64(union)
}

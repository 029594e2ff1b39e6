//
// Tencent is pleased to support the open source community by making trpc-ragkit-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-ragkit-go is licensed under the Apache License Version 2.0.
//
//

package ranking

import "sort"

// Rank scores every candidate and reorders them by descending boosted
// score. The sort is stable: equal-score candidates keep their input
// order, and an all-identity configuration preserves the original
// order entirely. Empty input returns empty output, never an error.
func Rank(candidates []*Candidate, cfg *BoostingConfig, rctx *Context) []*Candidate {
	if len(candidates) == 0 {
		return candidates
	}
	ranked := make([]*Candidate, len(candidates))
	for i, c := range candidates {
		boosted := *c
		boosted.Score = Score(c.Score, c.Payload, cfg, rctx)
		ranked[i] = &boosted
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}

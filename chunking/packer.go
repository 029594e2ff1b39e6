//
// Tencent is pleased to support the open source community by making trpc-ragkit-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-ragkit-go is licensed under the Apache License Version 2.0.
//
//

package chunking

import (
	"trpc.group/trpc-go/trpc-ragkit-go/document"
	"trpc.group/trpc-go/trpc-ragkit-go/similarity"
	"trpc.group/trpc-go/trpc-ragkit-go/tokenizer"
)

// Similarity below this value between adjacent blocks closes the
// current group once it has reached the floor.
const defaultSimilarityThreshold = 0.15

// semanticPacker greedily groups blocks into token-bounded proto-chunks.
// A nil scorer degrades it to pure size-bounded bin packing.
type semanticPacker struct {
	counter   tokenizer.Counter
	scorer    similarity.Scorer
	floor     int
	ceiling   int
	hard      int
	threshold float64
}

// pack walks blocks left to right and returns ordered groups. Every
// group except possibly the last holds at least one block; a group that
// has not reached the floor keeps absorbing blocks even past the soft
// ceiling so progress is guaranteed, but never past the hard one.
func (p *semanticPacker) pack(blocks []document.Block) [][]document.Block {
	var groups [][]document.Block
	var current []document.Block
	acc := 0

	closeGroup := func() {
		if len(current) > 0 {
			groups = append(groups, current)
			current = nil
			acc = 0
		}
	}

	for _, b := range blocks {
		bt := p.counter.CountTokens(b.Text)

		// A major section heading closes a full-enough group first.
		if b.Kind == document.KindHeading && b.Depth <= 2 && acc >= p.floor {
			closeGroup()
		}

		if len(current) > 0 {
			switch {
			case acc+bt > p.ceiling:
				// Under the floor the block is force-added below for
				// progress, unless that would drag the group past the
				// hard ceiling; then the block stands alone.
				if acc >= p.floor || (p.hard > 0 && acc+bt > p.hard) {
					closeGroup()
				}
			case p.scorer != nil && acc >= p.floor:
				prev := current[len(current)-1]
				if p.scorer.Score(prev.Text, b.Text) < p.threshold {
					closeGroup()
				}
			}
		}

		current = append(current, b)
		acc += bt
	}
	closeGroup()
	return groups
}

//
// Tencent is pleased to support the open source community by making trpc-ragkit-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-ragkit-go is licensed under the Apache License Version 2.0.
//
//

package ranking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func candidate(id string, score float64, p Payload) *Candidate {
	p.DocID = id
	return &Candidate{Payload: p, Score: score}
}

func ids(candidates []*Candidate) []string {
	out := make([]string, len(candidates))
	for i, c := range candidates {
		out[i] = c.Payload.DocID
	}
	return out
}

func TestRank_IdentityConfigPreservesOrder(t *testing.T) {
	in := []*Candidate{
		candidate("a", 0.9, Payload{}),
		candidate("b", 0.7, Payload{}),
		candidate("c", 0.5, Payload{}),
	}
	out := Rank(in, Identity(), nil)
	assert.Equal(t, []string{"a", "b", "c"}, ids(out))
}

func TestRank_BoostReorders(t *testing.T) {
	cfg := &BoostingConfig{PageTypes: map[string]float64{"guide": 3.0}}
	in := []*Candidate{
		candidate("a", 0.9, Payload{PageType: "reference"}),
		candidate("b", 0.5, Payload{PageType: "guide"}),
	}
	out := Rank(in, cfg, nil)
	require.Len(t, out, 2)
	assert.Equal(t, []string{"b", "a"}, ids(out))
	assert.InDelta(t, 1.5, out[0].Score, scoreDelta)
}

func TestRank_StableOnTies(t *testing.T) {
	in := []*Candidate{
		candidate("a", 0.5, Payload{}),
		candidate("b", 0.5, Payload{}),
		candidate("c", 0.5, Payload{}),
	}
	out := Rank(in, Identity(), nil)
	assert.Equal(t, []string{"a", "b", "c"}, ids(out))
}

func TestRank_InputNotMutated(t *testing.T) {
	cfg := &BoostingConfig{PageTypes: map[string]float64{"guide": 2.0}}
	in := []*Candidate{candidate("a", 0.5, Payload{PageType: "guide"})}
	out := Rank(in, cfg, nil)
	assert.InDelta(t, 0.5, in[0].Score, scoreDelta)
	assert.InDelta(t, 1.0, out[0].Score, scoreDelta)
}

func TestRank_Empty(t *testing.T) {
	assert.Empty(t, Rank(nil, Identity(), nil))
	assert.Empty(t, Rank([]*Candidate{}, Identity(), nil))
}

//
// Tencent is pleased to support the open source community by making trpc-ragkit-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-ragkit-go is licensed under the Apache License Version 2.0.
//
//

package tokenizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstimatorCountTokens(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected int
	}{
		{name: "empty", text: "", expected: 0},
		{name: "exact_multiple", text: "abcdefgh", expected: 2},
		{name: "rounds_up", text: "abcde", expected: 2},
		{name: "single_char", text: "a", expected: 1},
		{name: "cyrillic_counted_by_rune", text: "октет", expected: 2},
	}

	e := NewEstimator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, e.CountTokens(tt.text))
		})
	}
}

func TestEstimatorCharsPerToken(t *testing.T) {
	e := NewEstimator(WithCharsPerToken(2))
	assert.Equal(t, 4, e.CountTokens("abcdefgh"))

	// Non-positive ratios keep the default.
	e = NewEstimator(WithCharsPerToken(0))
	assert.Equal(t, 2, e.CountTokens("abcdefgh"))
}

func TestWordCounter(t *testing.T) {
	c := WordCounter{}
	assert.Equal(t, 0, c.CountTokens(""))
	assert.Equal(t, 0, c.CountTokens("   "))
	assert.Equal(t, 3, c.CountTokens("one  two\tthree"))
}

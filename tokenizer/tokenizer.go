//
// Tencent is pleased to support the open source community by making trpc-ragkit-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-ragkit-go is licensed under the Apache License Version 2.0.
//
//

// Package tokenizer provides token counting for size-bounded chunking.
// The pipeline only compares counts against thresholds, so any counter
// that is deterministic and monotonic with text length will do.
package tokenizer

import (
	"strings"
	"unicode/utf8"
)

// Counter counts tokens in a text.
type Counter interface {
	// CountTokens returns the number of tokens in text. It must be
	// deterministic and monotonic with text length.
	CountTokens(text string) int
}

// Default number of characters per token used by the estimator.
// Matches the common heuristic for mixed technical prose.
const defaultCharsPerToken = 4

// Estimator approximates token counts from rune counts. It needs no
// model vocabulary and is the default counter for the pipeline.
type Estimator struct {
	charsPerToken int
}

// EstimatorOption represents a functional option for configuring Estimator.
type EstimatorOption func(*Estimator)

// WithCharsPerToken sets the characters-per-token ratio.
func WithCharsPerToken(n int) EstimatorOption {
	return func(e *Estimator) {
		if n > 0 {
			e.charsPerToken = n
		}
	}
}

// NewEstimator creates a heuristic token counter with options.
func NewEstimator(opts ...EstimatorOption) *Estimator {
	e := &Estimator{charsPerToken: defaultCharsPerToken}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// CountTokens implements the Counter interface.
func (e *Estimator) CountTokens(text string) int {
	if text == "" {
		return 0
	}
	n := utf8.RuneCountInString(text)
	count := n / e.charsPerToken
	if n%e.charsPerToken != 0 {
		count++
	}
	return count
}

// WordCounter counts whitespace-separated words. Useful in tests where
// token boundaries must be predictable.
type WordCounter struct{}

// CountTokens implements the Counter interface.
func (WordCounter) CountTokens(text string) int {
	return len(strings.Fields(text))
}

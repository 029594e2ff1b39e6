//
// Tencent is pleased to support the open source community by making trpc-ragkit-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-ragkit-go is licensed under the Apache License Version 2.0.
//
//

// Package similarity provides lexical similarity scoring between text
// spans. The semantic packer uses it as an optional discontinuity
// signal; a nil scorer degrades packing to pure size-bounded bins.
package similarity

import (
	"strings"
	"unicode"
)

// Scorer scores the lexical similarity of two texts.
type Scorer interface {
	// Score returns a symmetric similarity in [0, 1].
	Score(a, b string) float64
}

// terms lowercases text and splits it into alphanumeric terms.
func terms(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
}

// termSet builds the unique term set of a text.
func termSet(text string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, t := range terms(text) {
		set[t] = struct{}{}
	}
	return set
}

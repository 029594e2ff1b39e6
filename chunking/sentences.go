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
	"strings"
	"unicode"
)

// abbreviations whose trailing period is not a sentence boundary. The
// corpus is mostly Russian technical documentation, so the Cyrillic set
// matters as much as the Latin one.
var abbreviations = []string{
	"и т.д.", "и т.п.", "т.е.", "т.к.", "см.", "напр.", "др.", "тыс.",
	"e.g.", "i.e.", "etc.", "vs.", "approx.",
}

// splitSentences splits prose into sentences, guarding known
// abbreviations and single-letter initials against false boundaries.
func splitSentences(text string) []string {
	var sentences []string
	runes := []rune(text)
	start := 0
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r != '.' && r != '!' && r != '?' {
			continue
		}
		// Consume trailing punctuation runs like "..." or "?!".
		end := i
		for end+1 < len(runes) && isSentencePunct(runes[end+1]) {
			end++
		}
		if end+1 < len(runes) && !unicode.IsSpace(runes[end+1]) {
			i = end
			continue
		}
		if r == '.' && isAbbreviation(runes[start:end+1]) {
			i = end
			continue
		}
		sentence := strings.TrimSpace(string(runes[start : end+1]))
		if sentence != "" {
			sentences = append(sentences, sentence)
		}
		start = end + 1
		i = end
	}
	if rest := strings.TrimSpace(string(runes[start:])); rest != "" {
		sentences = append(sentences, rest)
	}
	if len(sentences) == 0 {
		return []string{text}
	}
	return sentences
}

func isSentencePunct(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

// isAbbreviation reports whether the text ends in a known abbreviation
// or a single-letter initial.
func isAbbreviation(prefix []rune) bool {
	text := strings.ToLower(string(prefix))
	for _, abbr := range abbreviations {
		if strings.HasSuffix(text, abbr) {
			return true
		}
	}
	// A single letter before the period is an initial or an inner
	// segment of a dotted abbreviation.
	trimmed := strings.TrimSuffix(text, ".")
	words := strings.FieldsFunc(trimmed, func(r rune) bool {
		return unicode.IsSpace(r) || r == '(' || r == '"'
	})
	if len(words) == 0 {
		return false
	}
	last := []rune(words[len(words)-1])
	// Strip dotted segments: for "т.д" the last segment is "д".
	if idx := strings.LastIndex(string(last), "."); idx >= 0 {
		last = []rune(string(last)[idx+1:])
	}
	return len(last) == 1 && unicode.IsLetter(last[0])
}

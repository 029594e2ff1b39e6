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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitSentences(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "plain_boundaries",
			input:    "First sentence. Second sentence.",
			expected: []string{"First sentence.", "Second sentence."},
		},
		{
			name:     "mixed_terminators",
			input:    "Hello! How are you? Fine.",
			expected: []string{"Hello!", "How are you?", "Fine."},
		},
		{
			name:     "punctuation_run",
			input:    "Wait... really?!",
			expected: []string{"Wait...", "really?!"},
		},
		{
			name:     "no_terminal_punctuation",
			input:    "no terminal punctuation here",
			expected: []string{"no terminal punctuation here"},
		},
		{
			name:     "decimal_number_not_boundary",
			input:    "Version 1.2 is out. Upgrade now.",
			expected: []string{"Version 1.2 is out.", "Upgrade now."},
		},
		{
			name:     "latin_abbreviation",
			input:    "Use a cache, e.g. Redis. It helps.",
			expected: []string{"Use a cache, e.g. Redis.", "It helps."},
		},
		{
			name:     "cyrillic_abbreviation_te",
			input:    "Это значит, т.е. вот так. Дальше.",
			expected: []string{"Это значит, т.е. вот так.", "Дальше."},
		},
		{
			name:     "cyrillic_abbreviation_itd",
			input:    "Списки, таблицы и т.д. идут дальше. Конец.",
			expected: []string{"Списки, таблицы и т.д. идут дальше.", "Конец."},
		},
		{
			name:     "cyrillic_see_reference",
			input:    "См. раздел пять.",
			expected: []string{"См. раздел пять."},
		},
		{
			name:     "single_letter_initial",
			input:    "Written by A. Smith. Done.",
			expected: []string{"Written by A. Smith.", "Done."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, splitSentences(tt.input))
		})
	}
}

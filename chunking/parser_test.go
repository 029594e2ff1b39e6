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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trpc.group/trpc-go/trpc-ragkit-go/document"
)

func kinds(blocks []document.Block) []document.BlockKind {
	out := make([]document.BlockKind, len(blocks))
	for i, b := range blocks {
		out[i] = b.Kind
	}
	return out
}

func TestParseMarkdown_BlockKinds(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []document.BlockKind
	}{
		{
			name:     "single_paragraph",
			input:    "Just some text.",
			expected: []document.BlockKind{document.KindParagraph},
		},
		{
			name:     "heading_then_paragraph",
			input:    "# Title\n\nBody text.",
			expected: []document.BlockKind{document.KindHeading, document.KindParagraph},
		},
		{
			name:     "consecutive_headings_split",
			input:    "# One\n## Two",
			expected: []document.BlockKind{document.KindHeading, document.KindHeading},
		},
		{
			name:     "bullet_list",
			input:    "- a\n- b\n- c",
			expected: []document.BlockKind{document.KindList},
		},
		{
			name:     "marker_style_change_splits_list",
			input:    "- a\n- b\n1. c\n2. d",
			expected: []document.BlockKind{document.KindList, document.KindList},
		},
		{
			name:     "table",
			input:    "| a | b |\n|---|---|\n| 1 | 2 |",
			expected: []document.BlockKind{document.KindTable},
		},
		{
			name:     "blockquote",
			input:    "> quoted\n> more",
			expected: []document.BlockKind{document.KindBlockquote},
		},
		{
			name:     "fenced_code",
			input:    "```go\nfunc main() {}\n```",
			expected: []document.BlockKind{document.KindCodeBlock},
		},
		{
			name:     "admonition",
			input:    ":::note\nAnything # here\n- even lists\n:::",
			expected: []document.BlockKind{document.KindAdmonition},
		},
		{
			name:     "classification_change_starts_block",
			input:    "text\n- item\ntext again",
			expected: []document.BlockKind{document.KindParagraph, document.KindList, document.KindParagraph},
		},
		{
			name: "mixed_document",
			input: "# H\n\npara\n\n- l1\n- l2\n\n```\ncode\n```\n\n> quote",
			expected: []document.BlockKind{
				document.KindHeading, document.KindParagraph, document.KindList,
				document.KindCodeBlock, document.KindBlockquote,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			blocks := ParseMarkdown(tt.input)
			assert.Equal(t, tt.expected, kinds(blocks))
		})
	}
}

func TestParseMarkdown_FenceAbsorbsEverything(t *testing.T) {
	input := "```\n# not a heading\n- not a list\n\n| not | a | table |\n```"
	blocks := ParseMarkdown(input)
	require.Len(t, blocks, 1)
	assert.Equal(t, document.KindCodeBlock, blocks[0].Kind)
	assert.True(t, blocks[0].Atomic)
	assert.Equal(t, input, blocks[0].Text)
}

func TestParseMarkdown_AdmonitionAbsorbsFence(t *testing.T) {
	input := ":::warning\n```\ncode inside\n```\n:::"
	blocks := ParseMarkdown(input)
	require.Len(t, blocks, 1)
	assert.Equal(t, document.KindAdmonition, blocks[0].Kind)
}

func TestParseMarkdown_UnterminatedFenceStillEmits(t *testing.T) {
	blocks := ParseMarkdown("```python\nprint('no close')")
	require.Len(t, blocks, 1)
	assert.Equal(t, document.KindCodeBlock, blocks[0].Kind)
	assert.Contains(t, blocks[0].Text, "print('no close')")
}

func TestParseMarkdown_UnterminatedAdmonitionStillEmits(t *testing.T) {
	blocks := ParseMarkdown(":::tip\nleft open")
	require.Len(t, blocks, 1)
	assert.Equal(t, document.KindAdmonition, blocks[0].Kind)
}

func TestParseMarkdown_BlankInsideListContinues(t *testing.T) {
	blocks := ParseMarkdown("- one\n\n- two")
	require.Len(t, blocks, 1)
	assert.Equal(t, document.KindList, blocks[0].Kind)
}

func TestParseMarkdown_HeadingDepth(t *testing.T) {
	blocks := ParseMarkdown("### Deep")
	require.Len(t, blocks, 1)
	assert.Equal(t, 3, blocks[0].Depth)
	assert.False(t, blocks[0].Atomic)
}

func TestParseMarkdown_EmptyInput(t *testing.T) {
	assert.Empty(t, ParseMarkdown(""))
	assert.Empty(t, ParseMarkdown("\n\n\n"))
}

// Every content token of the source must survive parsing, in order.
func TestParseMarkdown_ContentPreserved(t *testing.T) {
	input := "# Guide\n\nIntro paragraph.\n\n- alpha\n- beta\n\n```\nx := 1\n```\n\n> note\n\n| c1 | c2 |\n\nFinal words."
	blocks := ParseMarkdown(input)

	var joined strings.Builder
	for _, b := range blocks {
		joined.WriteString(b.Text)
		joined.WriteString("\n")
	}
	assert.Equal(t, strings.Fields(input), strings.Fields(joined.String()))
}

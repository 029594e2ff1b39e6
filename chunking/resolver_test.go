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
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trpc.group/trpc-go/trpc-ragkit-go/document"
	"trpc.group/trpc-go/trpc-ragkit-go/tokenizer"
)

func newTestResolver(ceiling int, policy OversizePolicy) *oversizeResolver {
	return &oversizeResolver{
		counter: tokenizer.WordCounter{},
		ceiling: ceiling,
		hard:    ceiling * 2,
		policy:  policy,
	}
}

func TestResolve_IdentityUnderCeiling(t *testing.T) {
	r := newTestResolver(50, ForceSplit)
	b := document.Block{Kind: document.KindParagraph, Text: "short enough text"}
	out := r.resolve(b)
	require.Len(t, out, 1)
	assert.Equal(t, b, out[0])
}

func TestResolve_PolicyBetweenCeilings(t *testing.T) {
	text := strings.Repeat("word ", 30)
	b := document.Block{Kind: document.KindParagraph, Text: strings.TrimSpace(text)}

	t.Run("keep_oversize", func(t *testing.T) {
		r := newTestResolver(20, KeepOversize)
		out := r.resolve(b)
		require.Len(t, out, 1)
		assert.Equal(t, b.Text, out[0].Text)
	})

	t.Run("skip_with_warning", func(t *testing.T) {
		r := newTestResolver(20, SkipWithWarning)
		assert.Empty(t, r.resolve(b))
	})

	t.Run("force_split", func(t *testing.T) {
		r := newTestResolver(20, ForceSplit)
		out := r.resolve(b)
		assert.Greater(t, len(out), 1)
	})
}

func TestResolve_HardCeilingOverridesPolicy(t *testing.T) {
	// 50 words is above hard (40) for a ceiling of 20.
	text := strings.TrimSpace(strings.Repeat("word ", 50))
	b := document.Block{Kind: document.KindParagraph, Text: text}
	r := newTestResolver(20, KeepOversize)
	out := r.resolve(b)
	assert.Greater(t, len(out), 1)
	for _, part := range out {
		assert.LessOrEqual(t, r.counter.CountTokens(part.Text), r.hard)
	}
}

func TestResolve_ListCutsOnItemBoundaries(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 40; i++ {
		sb.WriteString(fmt.Sprintf("- item number %d with some extra words\n", i))
	}
	b := document.Block{Kind: document.KindList, Text: strings.TrimSpace(sb.String()), Atomic: true}
	r := newTestResolver(30, ForceSplit)
	out := r.resolve(b)
	require.Greater(t, len(out), 1)
	for _, part := range out {
		assert.Equal(t, document.KindList, part.Kind)
		for _, line := range strings.Split(part.Text, "\n") {
			assert.True(t, isListLine(line), "line %q is not a whole list item", line)
		}
	}
}

func TestResolve_TableCutsOnRowBoundaries(t *testing.T) {
	var rows []string
	for i := 0; i < 50; i++ {
		rows = append(rows, fmt.Sprintf("| cell %d | value %d |", i, i))
	}
	b := document.Block{Kind: document.KindTable, Text: strings.Join(rows, "\n"), Atomic: true}
	r := newTestResolver(40, ForceSplit)
	out := r.resolve(b)
	require.Greater(t, len(out), 1)
	total := 0
	for _, part := range out {
		assert.Equal(t, document.KindTable, part.Kind)
		for _, line := range strings.Split(part.Text, "\n") {
			assert.True(t, strings.HasPrefix(line, "|"), "row %q cut mid-way", line)
			total++
		}
	}
	assert.Equal(t, 50, total)
}

func TestResolve_BalancedCodeKeepsFencesBalanced(t *testing.T) {
	var body []string
	for i := 0; i < 60; i++ {
		body = append(body, fmt.Sprintf("line%d := compute(%d)", i, i))
	}
	text := "```go\n" + strings.Join(body, "\n") + "\n```"
	b := document.Block{Kind: document.KindCodeBlock, Text: text, Atomic: true}
	r := newTestResolver(30, ForceSplit)
	out := r.resolve(b)
	require.Greater(t, len(out), 1)
	for _, part := range out {
		assert.Equal(t, document.KindCodeBlock, part.Kind)
		fences := strings.Count(part.Text, "```")
		assert.Equal(t, 2, fences, "fragment %q is unbalanced", part.Text)
	}
}

func TestResolve_UnterminatedCodeDropsFences(t *testing.T) {
	var body []string
	for i := 0; i < 60; i++ {
		body = append(body, fmt.Sprintf("line%d := compute(%d)", i, i))
	}
	text := "```go\n" + strings.Join(body, "\n")
	b := document.Block{Kind: document.KindCodeBlock, Text: text, Atomic: true}
	r := newTestResolver(30, ForceSplit)
	out := r.resolve(b)
	require.Greater(t, len(out), 1)
	for _, part := range out {
		assert.Zero(t, strings.Count(part.Text, "```"))
	}
}

func TestResolve_ParagraphSplitsOnSubParagraphs(t *testing.T) {
	paras := []string{
		strings.TrimSpace(strings.Repeat("alpha ", 15)),
		strings.TrimSpace(strings.Repeat("beta ", 15)),
		strings.TrimSpace(strings.Repeat("gamma ", 15)),
	}
	b := document.Block{Kind: document.KindParagraph, Text: strings.Join(paras, "\n\n")}
	r := newTestResolver(20, ForceSplit)
	out := r.resolve(b)
	require.Greater(t, len(out), 1)
	for _, part := range out {
		assert.LessOrEqual(t, r.counter.CountTokens(part.Text), r.ceiling)
	}
}

func TestResolve_KindPreserved(t *testing.T) {
	text := strings.TrimSpace(strings.Repeat("> quoted words here. ", 20))
	b := document.Block{Kind: document.KindBlockquote, Text: text}
	r := newTestResolver(15, ForceSplit)
	for _, part := range r.resolve(b) {
		assert.Equal(t, document.KindBlockquote, part.Kind)
	}
}

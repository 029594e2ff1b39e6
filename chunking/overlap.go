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

	"trpc.group/trpc-go/trpc-ragkit-go/document"
	"trpc.group/trpc-go/trpc-ragkit-go/tokenizer"
)

// Overlap tier increments over the base budget.
const (
	overlapSamePathBonus  = 60
	overlapListSplitBonus = 120
)

// overlapCalculator decides how many trailing tokens of the previous
// group are copied forward, and materializes them without breaking
// structure.
type overlapCalculator struct {
	counter tokenizer.Counter
	base    int
}

// tokens returns the overlap budget for the boundary between prev and
// next given their heading paths.
func (c *overlapCalculator) tokens(prev, next []document.Block, prevPath, nextPath []string) int {
	// A zero base disables overlap outright; the tier bonuses only
	// widen an existing budget.
	if c.base <= 0 {
		return 0
	}
	// A new top-level section starts fresh.
	if len(prevPath) > 0 && len(nextPath) > 0 && prevPath[0] != nextPath[0] {
		return 0
	}
	if samePath(prevPath, nextPath) {
		return c.base + overlapSamePathBonus
	}
	if listSplitAcross(prev, next) {
		return c.base + overlapListSplitBonus
	}
	return c.base
}

func samePath(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func listSplitAcross(prev, next []document.Block) bool {
	if len(prev) == 0 || len(next) == 0 {
		return false
	}
	return prev[len(prev)-1].Kind == document.KindList &&
		next[0].Kind == document.KindList
}

// materialize renders up to budget trailing tokens of the group. Whole
// blocks are taken while they fit, walking backward and skipping
// synthetic headings; the boundary block contributes a
// structure-respecting partial suffix.
func (c *overlapCalculator) materialize(group []document.Block, budget int) string {
	if budget <= 0 {
		return ""
	}
	var parts []string
	remaining := budget
	for i := len(group) - 1; i >= 0 && remaining > 0; i-- {
		b := group[i]
		if b.Synthetic {
			continue
		}
		bt := c.counter.CountTokens(b.Text)
		if bt <= remaining {
			parts = append([]string{b.Text}, parts...)
			remaining -= bt
			continue
		}
		if suffix := c.partialSuffix(b, remaining); suffix != "" {
			parts = append([]string{suffix}, parts...)
		}
		break
	}
	return strings.Join(parts, "\n\n")
}

// partialSuffix takes the largest structure-respecting suffix of a
// block that fits the budget.
func (c *overlapCalculator) partialSuffix(b document.Block, budget int) string {
	switch b.Kind {
	case document.KindCodeBlock:
		// A fenced block is copied complete with both fences or not at
		// all; it never travels unbalanced. Bare code takes whole
		// trailing lines.
		if isFencedCode(b.Text) {
			return ""
		}
		return c.trailingLines(b.Text, budget)
	case document.KindList, document.KindTable:
		return c.trailingLines(b.Text, budget)
	default:
		return c.trailingRunes(b.Text, budget)
	}
}

func isFencedCode(text string) bool {
	_, ok := fenceMarker(strings.TrimSpace(firstLine(text)))
	return ok
}

func firstLine(text string) string {
	if idx := strings.IndexByte(text, '\n'); idx >= 0 {
		return text[:idx]
	}
	return text
}

// trailingLines takes whole trailing lines that fit the budget.
func (c *overlapCalculator) trailingLines(text string, budget int) string {
	lines := strings.Split(text, "\n")
	taken := 0
	total := 0
	for i := len(lines) - 1; i >= 0; i-- {
		lt := c.counter.CountTokens(lines[i])
		if total+lt > budget {
			break
		}
		total += lt
		taken++
	}
	if taken == 0 {
		return ""
	}
	return strings.Join(lines[len(lines)-taken:], "\n")
}

// trailingRunes takes a token-accurate character suffix of prose.
func (c *overlapCalculator) trailingRunes(text string, budget int) string {
	runes := []rune(text)
	take := len(runes)
	for take > 0 && c.counter.CountTokens(string(runes[len(runes)-take:])) > budget {
		take = take * 3 / 4
	}
	if take == 0 {
		return ""
	}
	return strings.TrimSpace(string(runes[len(runes)-take:]))
}

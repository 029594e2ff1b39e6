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
	"trpc.group/trpc-go/trpc-ragkit-go/log"
	"trpc.group/trpc-go/trpc-ragkit-go/tokenizer"
)

// OversizePolicy selects how blocks between the soft and hard ceilings
// are handled. Blocks above the hard ceiling are always force-split.
type OversizePolicy int

// Oversize policies.
const (
	// ForceSplit splits every block above the soft ceiling.
	ForceSplit OversizePolicy = iota

	// KeepOversize passes blocks between the ceilings through unchanged.
	KeepOversize

	// SkipWithWarning drops blocks between the ceilings with a warning.
	SkipWithWarning
)

// Unit grouping defaults for kind-specific splitting.
const (
	defaultCodeRunLines = 20
	defaultListCutItems = 15
	defaultTableCutRows = 20
)

// oversizeResolver rewrites blocks over the token ceiling into several
// same-kind blocks. It never mutates a block in place.
type oversizeResolver struct {
	counter tokenizer.Counter
	ceiling int
	hard    int
	policy  OversizePolicy
}

// resolveAll applies resolve to every block, preserving order.
func (r *oversizeResolver) resolveAll(blocks []document.Block) []document.Block {
	out := make([]document.Block, 0, len(blocks))
	for _, b := range blocks {
		out = append(out, r.resolve(b)...)
	}
	return out
}

// resolve rewrites one oversize block, identity for blocks under the
// ceiling.
func (r *oversizeResolver) resolve(b document.Block) []document.Block {
	tokens := r.counter.CountTokens(b.Text)
	if tokens <= r.ceiling {
		return []document.Block{b}
	}
	if tokens <= r.hard {
		switch r.policy {
		case KeepOversize:
			return []document.Block{b}
		case SkipWithWarning:
			log.Warnf("skipping oversize %s block (%d tokens, ceiling %d)", b.Kind, tokens, r.ceiling)
			return nil
		}
	}

	var parts []string
	switch b.Kind {
	case document.KindCodeBlock:
		parts = r.splitCode(b.Text)
	case document.KindList:
		parts = r.splitUnits(splitListItems(b.Text), defaultListCutItems)
	case document.KindTable:
		parts = r.splitUnits(strings.Split(b.Text, "\n"), defaultTableCutRows)
	case document.KindParagraph:
		parts = r.splitProse(b.Text)
	default:
		parts = r.packToCeiling(splitSentences(b.Text))
	}

	out := make([]document.Block, 0, len(parts))
	for _, part := range parts {
		if strings.TrimSpace(part) == "" {
			continue
		}
		// The hard ceiling bounds every emitted block, whatever the
		// kind-specific split produced. Atomic kinds are already
		// fitted at unit granularity and must not be sliced through
		// fences, items, or rows.
		if !b.Kind.IsAtomic() && r.counter.CountTokens(part) > r.hard {
			for _, piece := range r.hardSplit(part) {
				out = append(out, b.WithText(piece))
			}
			continue
		}
		out = append(out, b.WithText(part))
	}
	if len(out) == 0 {
		return []document.Block{b}
	}
	return out
}

// splitCode splits fenced or bare code into line runs. Fragments of a
// balanced fenced block are re-wrapped with both fences; when the source
// block never closed its fence, fragments are emitted without fence
// markers at all.
func (r *oversizeResolver) splitCode(text string) []string {
	lines := strings.Split(text, "\n")
	open, body, closing := stripFences(lines)

	runs := joinRuns(body, defaultCodeRunLines)

	// Re-split runs that are still oversize at blank or comment
	// lines, halving by line as a fallback so every fragment fits
	// before fences are re-attached.
	var refined []string
	for _, run := range runs {
		refined = append(refined, r.fitLineRun(run)...)
	}

	wrap := open != "" && closing != ""
	out := make([]string, 0, len(refined))
	for _, run := range refined {
		if strings.TrimSpace(run) == "" {
			continue
		}
		if wrap {
			run = open + "\n" + run + "\n" + closing
		}
		out = append(out, run)
	}
	return out
}

// stripFences separates fence delimiter lines from the code body.
// An unterminated fence yields an empty closing marker; the dangling
// opening fence is dropped so fragments carry zero fence markers.
func stripFences(lines []string) (open string, body []string, closing string) {
	if len(lines) == 0 {
		return "", nil, ""
	}
	first := strings.TrimSpace(lines[0])
	if _, ok := fenceMarker(first); !ok {
		return "", lines, ""
	}
	open = lines[0]
	body = lines[1:]
	if len(body) > 0 {
		last := strings.TrimSpace(body[len(body)-1])
		if _, ok := fenceMarker(last); ok {
			closing = body[len(body)-1]
			body = body[:len(body)-1]
		}
	}
	if closing == "" {
		// Unterminated fence: emit the body bare rather than with a
		// lone opening marker.
		open = ""
	}
	return open, body, closing
}

// fitLineRun shrinks a code run under the ceiling: first at blank and
// comment lines, then by halving line groups, and for a single
// unbreakable line by token count.
func (r *oversizeResolver) fitLineRun(run string) []string {
	if r.counter.CountTokens(run) <= r.ceiling {
		return []string{run}
	}
	if parts := splitAtBreakLines(run); len(parts) > 1 {
		var out []string
		for _, p := range parts {
			out = append(out, r.fitLineRun(p)...)
		}
		return out
	}
	lines := strings.Split(run, "\n")
	if len(lines) <= 1 {
		return r.hardSplit(run)
	}
	mid := len(lines) / 2
	out := r.fitLineRun(strings.Join(lines[:mid], "\n"))
	return append(out, r.fitLineRun(strings.Join(lines[mid:], "\n"))...)
}

// splitAtBreakLines cuts a code run at blank lines and line comments.
func splitAtBreakLines(run string) []string {
	lines := strings.Split(run, "\n")
	var parts []string
	var current []string
	flush := func() {
		if len(current) > 0 {
			parts = append(parts, strings.Join(current, "\n"))
			current = nil
		}
	}
	for _, line := range lines {
		if isCodeBreakLine(line) && len(current) > 0 {
			flush()
		}
		current = append(current, line)
	}
	flush()
	return parts
}

func isCodeBreakLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return true
	}
	return strings.HasPrefix(trimmed, "//") ||
		strings.HasPrefix(trimmed, "#") ||
		strings.HasPrefix(trimmed, "--")
}

// splitListItems groups list lines into whole items: a marker line plus
// its continuation lines.
func splitListItems(text string) []string {
	lines := strings.Split(text, "\n")
	var items []string
	var current []string
	for _, line := range lines {
		if isListLine(line) && len(current) > 0 {
			items = append(items, strings.Join(current, "\n"))
			current = nil
		}
		current = append(current, line)
	}
	if len(current) > 0 {
		items = append(items, strings.Join(current, "\n"))
	}
	return items
}

// splitUnits joins units (list items, table rows) into runs of at most
// per units, then refits any run still above the hard ceiling at unit
// granularity.
func (r *oversizeResolver) splitUnits(units []string, per int) []string {
	if per <= 0 {
		per = 1
	}
	var out []string
	for start := 0; start < len(units); start += per {
		end := start + per
		if end > len(units) {
			end = len(units)
		}
		out = append(out, r.fitUnits(units[start:end])...)
	}
	return out
}

// fitUnits halves a unit run until it fits the hard ceiling; a single
// unit that still does not fit is token-sliced as the last resort.
func (r *oversizeResolver) fitUnits(units []string) []string {
	run := strings.Join(units, "\n")
	if r.counter.CountTokens(run) <= r.hard {
		return []string{run}
	}
	if len(units) <= 1 {
		return r.hardSplit(run)
	}
	mid := len(units) / 2
	out := r.fitUnits(units[:mid])
	return append(out, r.fitUnits(units[mid:])...)
}

// joinRuns joins units into runs of at most n units each.
func joinRuns(units []string, n int) []string {
	if n <= 0 {
		n = 1
	}
	var runs []string
	for start := 0; start < len(units); start += n {
		end := start + n
		if end > len(units) {
			end = len(units)
		}
		runs = append(runs, strings.Join(units[start:end], "\n"))
	}
	return runs
}

// splitProse splits a paragraph on blank-line sub-paragraphs, falling
// back to sentences, and re-packs the pieces to the ceiling.
func (r *oversizeResolver) splitProse(text string) []string {
	parts := strings.Split(text, "\n\n")
	if len(parts) <= 1 {
		parts = splitSentences(text)
	} else {
		// Sub-paragraphs that are themselves oversize go down to
		// sentences.
		var expanded []string
		for _, p := range parts {
			if r.counter.CountTokens(p) > r.ceiling {
				expanded = append(expanded, splitSentences(p)...)
			} else {
				expanded = append(expanded, p)
			}
		}
		parts = expanded
	}
	return r.packToCeiling(parts)
}

// packToCeiling greedily joins pieces while staying under the ceiling.
func (r *oversizeResolver) packToCeiling(pieces []string) []string {
	var out []string
	var current strings.Builder
	tokens := 0
	for _, piece := range pieces {
		piece = strings.TrimSpace(piece)
		if piece == "" {
			continue
		}
		pt := r.counter.CountTokens(piece)
		if current.Len() > 0 && tokens+pt > r.ceiling {
			out = append(out, current.String())
			current.Reset()
			tokens = 0
		}
		if current.Len() > 0 {
			current.WriteString(" ")
		}
		current.WriteString(piece)
		tokens += pt
	}
	if current.Len() > 0 {
		out = append(out, current.String())
	}
	return out
}

// hardSplit slices text into pieces under the soft ceiling by token
// count, the last resort for a single unsplittable unit.
func (r *oversizeResolver) hardSplit(text string) []string {
	var out []string
	runes := []rune(text)
	for len(runes) > 0 {
		cut := len(runes)
		// Shrink until the piece fits; counters are monotonic with
		// length, so halving converges.
		for cut > 1 && r.counter.CountTokens(string(runes[:cut])) > r.ceiling {
			cut = cut * 3 / 4
		}
		out = append(out, string(runes[:cut]))
		runes = runes[cut:]
	}
	return out
}

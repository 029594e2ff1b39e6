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
)

// Synthesized headings are capped at this markdown level.
const maxSyntheticHeadingLevel = 3

// headingEntry is one level of the active heading path.
type headingEntry struct {
	level int
	title string
}

// headingTracker maintains the stack of headings active at the current
// position of a block walk.
type headingTracker struct {
	stack []headingEntry
}

// observe updates the tracker with a block.
func (t *headingTracker) observe(b document.Block) {
	if b.Kind != document.KindHeading {
		return
	}
	level := b.Depth
	if level <= 0 {
		level = 1
	}
	for len(t.stack) > 0 && t.stack[len(t.stack)-1].level >= level {
		t.stack = t.stack[:len(t.stack)-1]
	}
	t.stack = append(t.stack, headingEntry{level: level, title: headingTitle(b.Text)})
}

// path returns the ordered ancestor titles, outermost first.
func (t *headingTracker) path() []string {
	path := make([]string, len(t.stack))
	for i, e := range t.stack {
		path[i] = e.title
	}
	return path
}

// deepest returns the innermost active heading.
func (t *headingTracker) deepest() (headingEntry, bool) {
	if len(t.stack) == 0 {
		return headingEntry{}, false
	}
	return t.stack[len(t.stack)-1], true
}

// headingTitle strips markdown heading markers from a heading line.
func headingTitle(text string) string {
	line := firstLine(text)
	return strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(line), "#"))
}

// groupContext is the heading context of one packed group.
type groupContext struct {
	path    []string
	deepest headingEntry
	hasHead bool
}

// headingContexts walks the groups once and computes each group's
// heading path and deepest active heading. A heading that opens a group
// counts as part of that group's path.
func headingContexts(groups [][]document.Block) []groupContext {
	tracker := &headingTracker{}
	contexts := make([]groupContext, len(groups))
	for i, group := range groups {
		if len(group) > 0 && group[0].Kind == document.KindHeading {
			tracker.observe(group[0])
		}
		deepest, ok := tracker.deepest()
		contexts[i] = groupContext{
			path:    tracker.path(),
			deepest: deepest,
			hasHead: ok,
		}
		for j, b := range group {
			if j == 0 && b.Kind == document.KindHeading {
				continue // already observed
			}
			tracker.observe(b)
		}
	}
	return contexts
}

// needsSyntheticHeading reports whether a group opens without a heading
// line of its own.
func needsSyntheticHeading(group []document.Block) bool {
	if len(group) == 0 {
		return false
	}
	return !strings.HasPrefix(strings.TrimSpace(group[0].Text), "#")
}

// syntheticHeading builds the heading block prepended to a group that
// continues a section without repeating its heading. The level is capped
// so deep subsections do not read like page titles.
func syntheticHeading(ctx groupContext) (document.Block, bool) {
	if !ctx.hasHead {
		return document.Block{}, false
	}
	level := ctx.deepest.level
	if level > maxSyntheticHeadingLevel {
		level = maxSyntheticHeadingLevel
	}
	if level < 1 {
		level = 1
	}
	return document.Block{
		Kind:      document.KindHeading,
		Text:      strings.Repeat("#", level) + " " + ctx.deepest.title,
		Depth:     level,
		Synthetic: true,
	}, true
}

// assembler renders packed groups into final chunks.
type assembler struct{}

// render joins a group's block texts with the overlap text inserted
// after any leading synthetic heading, so the heading stays on top of
// the chunk.
func (assembler) render(group []document.Block, overlap string) string {
	texts := make([]string, 0, len(group)+1)
	rest := group
	if len(rest) > 0 && rest[0].Synthetic {
		texts = append(texts, rest[0].Text)
		rest = rest[1:]
	}
	if overlap != "" {
		texts = append(texts, overlap)
	}
	for _, b := range rest {
		texts = append(texts, b.Text)
	}
	return strings.Join(texts, "\n\n")
}

// contentType picks the dominant block kind of a group by text volume.
// Synthetic headings are navigation aids and do not count.
func (assembler) contentType(group []document.Block) string {
	volume := make(map[document.BlockKind]int)
	for _, b := range group {
		if b.Synthetic {
			continue
		}
		volume[b.Kind] += len(b.Text)
	}
	best := document.KindParagraph
	bestVolume := -1
	for _, b := range group {
		if b.Synthetic {
			continue
		}
		if v := volume[b.Kind]; v > bestVolume {
			best = b.Kind
			bestVolume = v
		}
	}
	return string(best)
}

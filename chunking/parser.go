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

	"trpc.group/trpc-go/trpc-ragkit-go/document"
)

// parserState is the finite state of the line-oriented markdown parser.
// Each input line passes through consumeLine exactly once; finish flushes
// whatever is still accumulating, so unterminated fences and admonitions
// at end of input still produce a block.
type parserState struct {
	blocks []document.Block

	// Accumulating block, empty kind means none.
	kind  document.BlockKind
	lines []string
	depth int
	start int

	// line is the number of the line being consumed next.
	line int

	// Fence state. An open fence absorbs every line until its closer.
	inFence bool
	fence   string

	// An open admonition (":::kind") absorbs every line until ":::".
	inAdmonition bool

	// ordered tracks the marker style of the accumulating list.
	ordered bool
}

// newParserState creates an empty parser state.
func newParserState() *parserState {
	return &parserState{}
}

// ParseMarkdown scans markdown text into an ordered block sequence.
// It never fails: text that matches no structure becomes one paragraph.
func ParseMarkdown(text string) []document.Block {
	state := newParserState()
	for _, line := range strings.Split(text, "\n") {
		state.consumeLine(line)
	}
	blocks := state.finish()
	if len(blocks) == 0 && strings.TrimSpace(text) != "" {
		blocks = []document.Block{{
			Kind: document.KindParagraph,
			Text: strings.TrimSpace(text),
		}}
	}
	return blocks
}

// consumeLine advances the parser state by one input line.
func (s *parserState) consumeLine(line string) {
	defer func() { s.line++ }()
	trimmed := strings.TrimSpace(line)

	// Rule 1: an open admonition absorbs everything.
	if s.inAdmonition {
		s.lines = append(s.lines, line)
		if isAdmonitionClose(trimmed) {
			s.inAdmonition = false
			s.closeBlock()
		}
		return
	}

	// Rule 2: an open code fence absorbs everything.
	if s.inFence {
		s.lines = append(s.lines, line)
		if strings.HasPrefix(trimmed, s.fence) {
			s.inFence = false
			s.closeBlock()
		}
		return
	}

	if isAdmonitionOpen(trimmed) {
		s.closeBlock()
		s.openBlock(document.KindAdmonition, line, 0)
		s.inAdmonition = true
		return
	}

	if fence, ok := fenceMarker(trimmed); ok {
		s.closeBlock()
		s.openBlock(document.KindCodeBlock, line, 0)
		s.inFence = true
		s.fence = fence
		return
	}

	// Rule 4: blank lines end accumulation except inside lists and
	// tables (fences and admonitions are handled above).
	if trimmed == "" {
		if s.kind == document.KindList || s.kind == document.KindTable {
			s.lines = append(s.lines, line)
		} else {
			s.closeBlock()
		}
		return
	}

	// Rule 3: classify and start a new block on classification change.
	switch {
	case isHeadingLine(trimmed):
		s.closeBlock()
		s.openBlock(document.KindHeading, line, headingLevel(trimmed))
		s.closeBlock()

	case isListLine(line):
		ordered := isOrderedListLine(line)
		if s.kind == document.KindList && s.ordered == ordered {
			s.lines = append(s.lines, line)
			return
		}
		s.closeBlock()
		s.openBlock(document.KindList, line, listIndent(line))
		s.ordered = ordered

	case isTableLine(trimmed):
		if s.kind == document.KindTable {
			s.lines = append(s.lines, line)
			return
		}
		s.closeBlock()
		s.openBlock(document.KindTable, line, 0)

	case isBlockquoteLine(trimmed):
		if s.kind == document.KindBlockquote {
			s.lines = append(s.lines, line)
			return
		}
		s.closeBlock()
		s.openBlock(document.KindBlockquote, line, 0)

	default:
		// A plain text line continues a paragraph. An indented text
		// line inside a list run belongs to the current item.
		if s.kind == document.KindList && listContinuation(line) {
			s.lines = append(s.lines, line)
			return
		}
		if s.kind == document.KindParagraph {
			s.lines = append(s.lines, line)
			return
		}
		s.closeBlock()
		s.openBlock(document.KindParagraph, line, 0)
	}
}

// finish flushes the accumulating block and returns all parsed blocks.
func (s *parserState) finish() []document.Block {
	s.closeBlock()
	return s.blocks
}

// openBlock starts accumulating a new block with the given first line.
func (s *parserState) openBlock(kind document.BlockKind, line string, depth int) {
	s.kind = kind
	s.lines = []string{line}
	s.depth = depth
	s.start = s.line
}

// closeBlock emits the accumulating block, if any.
func (s *parserState) closeBlock() {
	if s.kind == "" {
		return
	}
	lines := s.lines
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	text := strings.Join(lines, "\n")
	if strings.TrimSpace(text) != "" {
		s.blocks = append(s.blocks, document.Block{
			Kind:   s.kind,
			Text:   text,
			Depth:  s.depth,
			Atomic: s.kind.IsAtomic(),
			Span:   document.SourceSpan{StartLine: s.start, EndLine: s.line},
		})
	}
	s.kind = ""
	s.lines = nil
	s.depth = 0
	s.inFence = false
	s.fence = ""
}

// Line classification helpers.

func isHeadingLine(trimmed string) bool {
	if !strings.HasPrefix(trimmed, "#") {
		return false
	}
	level := headingLevel(trimmed)
	if level == 0 || level > 6 {
		return false
	}
	rest := trimmed[level:]
	return rest == "" || strings.HasPrefix(rest, " ")
}

func headingLevel(trimmed string) int {
	level := 0
	for _, r := range trimmed {
		if r != '#' {
			break
		}
		level++
	}
	return level
}

func isListLine(line string) bool {
	return isBulletListLine(line) || isOrderedListLine(line)
}

func isBulletListLine(line string) bool {
	trimmed := strings.TrimLeft(line, " \t")
	if len(trimmed) < 2 {
		return false
	}
	marker := trimmed[0]
	return (marker == '-' || marker == '*' || marker == '+') && trimmed[1] == ' '
}

func isOrderedListLine(line string) bool {
	trimmed := strings.TrimLeft(line, " \t")
	i := 0
	for i < len(trimmed) && trimmed[i] >= '0' && trimmed[i] <= '9' {
		i++
	}
	if i == 0 || i >= len(trimmed) {
		return false
	}
	if trimmed[i] != '.' && trimmed[i] != ')' {
		return false
	}
	return i+1 < len(trimmed) && trimmed[i+1] == ' '
}

// listContinuation reports whether an indented plain line continues the
// current list item.
func listContinuation(line string) bool {
	return strings.HasPrefix(line, "  ") || strings.HasPrefix(line, "\t")
}

func listIndent(line string) int {
	indent := 0
	for _, r := range line {
		if r == ' ' {
			indent++
		} else if r == '\t' {
			indent += 4
		} else {
			break
		}
	}
	return indent
}

func isTableLine(trimmed string) bool {
	return strings.HasPrefix(trimmed, "|")
}

func isBlockquoteLine(trimmed string) bool {
	return strings.HasPrefix(trimmed, ">")
}

// fenceMarker returns the fence delimiter opening on this line, if any.
func fenceMarker(trimmed string) (string, bool) {
	if strings.HasPrefix(trimmed, "```") {
		return "```", true
	}
	if strings.HasPrefix(trimmed, "~~~") {
		return "~~~", true
	}
	return "", false
}

// isAdmonitionOpen matches an opening ":::kind" line.
func isAdmonitionOpen(trimmed string) bool {
	if !strings.HasPrefix(trimmed, ":::") {
		return false
	}
	rest := strings.TrimSpace(trimmed[3:])
	if rest == "" {
		return false
	}
	for _, r := range rest {
		if unicode.IsSpace(r) {
			break
		}
		if !unicode.IsLetter(r) && !unicode.IsNumber(r) && r != '-' && r != '_' {
			return false
		}
	}
	return true
}

// isAdmonitionClose matches a bare ":::" line.
func isAdmonitionClose(trimmed string) bool {
	return trimmed == ":::"
}

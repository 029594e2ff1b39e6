//
// Tencent is pleased to support the open source community by making trpc-ragkit-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-ragkit-go is licensed under the Apache License Version 2.0.
//
//

package document

// BlockKind identifies the structural type of a parsed block.
type BlockKind string

// Block kinds produced by the parsers.
const (
	KindHeading    BlockKind = "heading"
	KindParagraph  BlockKind = "paragraph"
	KindList       BlockKind = "list"
	KindCodeBlock  BlockKind = "code_block"
	KindTable      BlockKind = "table"
	KindBlockquote BlockKind = "blockquote"
	KindAdmonition BlockKind = "admonition"
)

// IsAtomic reports whether blocks of this kind carry internal units
// (list items, table rows, fenced code) that must never be cut mid-way.
func (k BlockKind) IsAtomic() bool {
	return k == KindList || k == KindTable || k == KindCodeBlock
}

// SourceSpan is a best-effort reference back to the original document.
type SourceSpan struct {
	// StartLine is the first source line of the block (0-based).
	StartLine int

	// EndLine is the line just past the block's last source line.
	EndLine int
}

// Block is a typed, non-overlapping span of a parsed document.
// Blocks are created once by a parser, replaced (never mutated) by the
// oversize resolver, and owned by the packer afterwards. Concatenating
// the Text of all blocks in order reconstructs the document content.
type Block struct {
	// Kind is the structural type of the block.
	Kind BlockKind

	// Text is the raw text of the block, markup included.
	Text string

	// Depth is the heading level for headings and the indentation
	// depth for lists; zero otherwise.
	Depth int

	// Atomic marks blocks whose internal units must stay whole.
	Atomic bool

	// Span locates the block in the source document, best effort.
	Span SourceSpan

	// Synthetic marks blocks injected by the assembler (heading
	// prefixes); they carry no original document content.
	Synthetic bool
}

// WithText returns a copy of the block carrying the given text.
func (b Block) WithText(text string) Block {
	b.Text = text
	return b
}

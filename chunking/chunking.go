//
// Tencent is pleased to support the open source community by making trpc-ragkit-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-ragkit-go is licensed under the Apache License Version 2.0.
//
//

// Package chunking splits structured documents into context-window
// sized, structurally respectful passages with controlled cross-chunk
// overlap. The pipeline is pure and holds no mutable state, so one
// strategy value may chunk independent documents concurrently.
package chunking

import (
	"strings"

	"trpc.group/trpc-go/trpc-ragkit-go/document"
	"trpc.group/trpc-go/trpc-ragkit-go/internal/encoding"
	"trpc.group/trpc-go/trpc-ragkit-go/log"
	"trpc.group/trpc-go/trpc-ragkit-go/similarity"
	"trpc.group/trpc-go/trpc-ragkit-go/tokenizer"
)

// Format identifies the markup of a source document.
type Format string

// Supported source formats.
const (
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
)

// Pipeline defaults in tokens.
const (
	defaultFloor       = 350
	defaultCeiling     = 600
	defaultOverlapBase = 80
)

// Strategy defines the interface for document chunking strategies.
type Strategy interface {
	// Chunk splits a document into indexable chunks.
	Chunk(doc *document.Document) ([]*document.Chunk, error)
}

// StructuredChunking is the structure-aware chunking strategy: parse
// into typed blocks, resolve oversize blocks, pack semantically, add
// overlap, assemble.
type StructuredChunking struct {
	counter     tokenizer.Counter
	scorer      similarity.Scorer
	format      Format
	floor       int
	ceiling     int
	hard        int
	overlapBase int
	policy      OversizePolicy
	threshold   float64
}

// Option represents a functional option for configuring StructuredChunking.
type Option func(*StructuredChunking)

// WithTokenCounter sets the token counter used for every size decision.
func WithTokenCounter(c tokenizer.Counter) Option {
	return func(s *StructuredChunking) {
		if c != nil {
			s.counter = c
		}
	}
}

// WithSimilarityScorer sets the lexical discontinuity signal. A nil
// scorer degrades packing to pure size-bounded bins.
func WithSimilarityScorer(sc similarity.Scorer) Option {
	return func(s *StructuredChunking) {
		s.scorer = sc
	}
}

// WithFormat sets the source markup format.
func WithFormat(f Format) Option {
	return func(s *StructuredChunking) {
		s.format = f
	}
}

// WithFloor sets the minimum tokens accumulated before a group may close.
func WithFloor(floor int) Option {
	return func(s *StructuredChunking) {
		s.floor = floor
	}
}

// WithCeiling sets the soft token ceiling per chunk.
func WithCeiling(ceiling int) Option {
	return func(s *StructuredChunking) {
		s.ceiling = ceiling
		if s.hard == 0 {
			s.hard = ceiling * 2
		}
	}
}

// WithHardCeiling sets the hard ceiling above which a block is always
// force-split regardless of policy.
func WithHardCeiling(hard int) Option {
	return func(s *StructuredChunking) {
		s.hard = hard
	}
}

// WithOverlapBase sets the base overlap budget in tokens. Zero
// disables cross-chunk overlap.
func WithOverlapBase(base int) Option {
	return func(s *StructuredChunking) {
		s.overlapBase = base
	}
}

// WithOversizePolicy sets the handling of blocks between the ceilings.
func WithOversizePolicy(p OversizePolicy) Option {
	return func(s *StructuredChunking) {
		s.policy = p
	}
}

// WithSimilarityThreshold sets the discontinuity threshold in [0, 1].
func WithSimilarityThreshold(t float64) Option {
	return func(s *StructuredChunking) {
		if t >= 0 && t <= 1 {
			s.threshold = t
		}
	}
}

// NewStructuredChunking creates a structured chunking strategy with
// options. Invalid size preconditions are reported as errors; nothing
// data-dependent ever is.
func NewStructuredChunking(opts ...Option) (*StructuredChunking, error) {
	s := &StructuredChunking{
		counter:     tokenizer.NewEstimator(),
		scorer:      similarity.NewJaccardScorer(),
		format:      FormatMarkdown,
		floor:       defaultFloor,
		ceiling:     defaultCeiling,
		overlapBase: defaultOverlapBase,
		threshold:   defaultSimilarityThreshold,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.hard == 0 {
		s.hard = s.ceiling * 2
	}
	if s.ceiling <= 0 {
		return nil, ErrInvalidCeiling
	}
	if s.floor < 0 || s.floor >= s.ceiling {
		return nil, ErrInvalidFloor
	}
	if s.hard < s.ceiling {
		return nil, ErrInvalidHardCeiling
	}
	if s.overlapBase < 0 {
		return nil, ErrInvalidOverlap
	}
	if s.format != FormatMarkdown && s.format != FormatHTML {
		return nil, ErrUnsupportedFormat
	}
	return s, nil
}

// Chunk implements the Strategy interface. Empty input yields zero
// chunks; document metadata forwards verbatim into every chunk.
func (s *StructuredChunking) Chunk(doc *document.Document) ([]*document.Chunk, error) {
	if doc == nil {
		return nil, ErrNilDocument
	}
	if doc.IsEmpty() {
		return nil, nil
	}

	content := s.cleanText(doc.Content)
	if content == "" {
		return nil, nil
	}

	var blocks []document.Block
	switch s.format {
	case FormatHTML:
		blocks = ParseHTML(content)
	default:
		blocks = ParseMarkdown(content)
	}

	resolver := &oversizeResolver{
		counter: s.counter,
		ceiling: s.ceiling,
		hard:    s.hard,
		policy:  s.policy,
	}
	blocks = resolver.resolveAll(blocks)
	if len(blocks) == 0 {
		return nil, nil
	}

	packer := &semanticPacker{
		counter:   s.counter,
		scorer:    s.scorer,
		floor:     s.floor,
		ceiling:   s.ceiling,
		hard:      s.hard,
		threshold: s.threshold,
	}
	groups := packer.pack(blocks)

	contexts := headingContexts(groups)
	overlap := &overlapCalculator{counter: s.counter, base: s.overlapBase}

	var asm assembler
	chunks := make([]*document.Chunk, 0, len(groups))
	for i, group := range groups {
		var overlapText string
		if i > 0 {
			budget := overlap.tokens(groups[i-1], group, contexts[i-1].path, contexts[i].path)
			overlapText = overlap.materialize(groups[i-1], budget)
		}
		if needsSyntheticHeading(group) && !strings.HasPrefix(strings.TrimSpace(overlapText), "#") {
			if h, ok := syntheticHeading(contexts[i]); ok {
				group = append([]document.Block{h}, group...)
				groups[i] = group
			}
		}
		text := asm.render(group, overlapText)
		// Overlap and the synthesized heading are context, not content:
		// drop them rather than let a chunk cross the hard ceiling.
		if overlapText != "" && s.counter.CountTokens(text) > s.hard {
			text = asm.render(group, "")
		}
		if s.counter.CountTokens(text) > s.hard && group[0].Synthetic {
			text = asm.render(group[1:], "")
		}
		chunks = append(chunks, &document.Chunk{
			Text:        text,
			Index:       i,
			HeadingPath: contexts[i].path,
			ContentType: asm.contentType(group),
			DocID:       doc.ID,
			DocName:     doc.Name,
			URL:         doc.URL,
			Source:      doc.Source,
			Category:    doc.Category,
			Language:    doc.Language,
			Metadata:    cloneMetadata(doc.Metadata),
		})
	}
	for _, c := range chunks {
		c.Total = len(chunks)
	}
	return chunks, nil
}

// cleanText normalizes encoding and line endings without touching
// indentation, which code blocks and lists depend on.
func (s *StructuredChunking) cleanText(content string) string {
	processed, info := encoding.Normalize(content)
	if info.Encoding != encoding.EncodingUTF8 {
		log.Debugf("document text normalized from %s (valid: %v)", info.Encoding, info.Valid)
	}
	processed = strings.ReplaceAll(processed, "\r\n", "\n")
	processed = strings.ReplaceAll(processed, "\r", "\n")
	lines := strings.Split(processed, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

func cloneMetadata(meta map[string]any) map[string]any {
	if meta == nil {
		return nil
	}
	clone := make(map[string]any, len(meta))
	for k, v := range meta {
		clone[k] = v
	}
	return clone
}

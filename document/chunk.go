//
// Tencent is pleased to support the open source community by making trpc-ragkit-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-ragkit-go is licensed under the Apache License Version 2.0.
//
//

package document

// Chunk is a final indexable passage handed to embedding and indexing.
// Chunks are immutable once assembled; 0 <= Index < Total holds for
// every chunk, and all chunks of one document share the same Total.
type Chunk struct {
	// Text is the final passage text, synthetic heading included.
	Text string

	// Index is the position of the chunk within its document.
	Index int

	// Total is the number of chunks produced from the document.
	Total int

	// HeadingPath lists the titles of the ancestor headings active at
	// the start of the chunk, outermost first.
	HeadingPath []string

	// ContentType is the kind of the dominant block in the chunk
	// (e.g. "paragraph", "code_block").
	ContentType string

	// DocID, URL, Source, Category and Language are copied verbatim
	// from the source document.
	DocID    string
	DocName  string
	URL      string
	Source   string
	Category string
	Language string

	// Metadata carries the source document's metadata verbatim.
	Metadata map[string]any
}

//
// Tencent is pleased to support the open source community by making trpc-ragkit-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-ragkit-go is licensed under the Apache License Version 2.0.
//
//

// Package document defines the shared data model for the structuring and
// ranking pipelines: source documents, parsed blocks, and final chunks.
package document

import (
	"strings"
	"time"
)

// Document represents a normalized source document entering the
// structuring pipeline. Metadata fields are forwarded verbatim into
// every chunk produced from the document.
type Document struct {
	// ID is the unique identifier of the document.
	ID string

	// Name is the human-readable name of the document.
	Name string

	// Content is the plain text or markup content.
	Content string

	// URL is the canonical location the document was fetched from.
	URL string

	// Source identifies the upstream system the document came from.
	Source string

	// Category is the documentation category assigned upstream.
	Category string

	// Language is the document language code (e.g. "ru", "en").
	Language string

	// Metadata holds additional key-value pairs copied into chunks.
	Metadata map[string]any

	// CreatedAt is the creation timestamp.
	CreatedAt time.Time

	// UpdatedAt is the last update timestamp.
	UpdatedAt time.Time
}

// IsEmpty reports whether the document has no content worth chunking.
func (d *Document) IsEmpty() bool {
	return d == nil || strings.TrimSpace(d.Content) == ""
}

// Clone returns a deep copy of the document.
func (d *Document) Clone() *Document {
	if d == nil {
		return nil
	}
	clone := *d
	if d.Metadata != nil {
		clone.Metadata = make(map[string]any, len(d.Metadata))
		for k, v := range d.Metadata {
			clone.Metadata[k] = v
		}
	}
	return &clone
}

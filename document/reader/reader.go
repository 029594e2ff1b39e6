//
// Tencent is pleased to support the open source community by making trpc-ragkit-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-ragkit-go is licensed under the Apache License Version 2.0.
//
//

// Package reader defines the interface for document readers. Readers
// turn raw bytes from files or streams into documents ready for the
// chunking pipeline; they do not chunk, embed, or persist anything.
package reader

import (
	"io"

	"trpc.group/trpc-go/trpc-ragkit-go/document"
)

// Reader interface for different document readers.
type Reader interface {
	// ReadFromReader reads content from an io.Reader and returns a
	// document. The name parameter identifies the source (filename, URL).
	ReadFromReader(name string, r io.Reader) (*document.Document, error)

	// ReadFromFile reads content from a file path and returns a document.
	ReadFromFile(filePath string) (*document.Document, error)

	// Name returns the name of this reader.
	Name() string

	// SupportedExtensions returns the file extensions this reader handles.
	SupportedExtensions() []string
}

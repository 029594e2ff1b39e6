//
// Tencent is pleased to support the open source community by making trpc-ragkit-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-ragkit-go is licensed under the Apache License Version 2.0.
//
//

// Package text provides the plain text document reader.
package text

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"trpc.group/trpc-go/trpc-ragkit-go/document"
)

// Reader reads plain text documents.
type Reader struct{}

// New creates a new text reader.
func New() *Reader {
	return &Reader{}
}

// Name returns the name of this reader.
func (r *Reader) Name() string {
	return "text"
}

// SupportedExtensions returns the file extensions this reader handles.
func (r *Reader) SupportedExtensions() []string {
	return []string{".txt", ".text"}
}

// ReadFromReader reads text content from an io.Reader.
func (r *Reader) ReadFromReader(name string, reader io.Reader) (*document.Document, error) {
	content, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}
	return build(name, string(content)), nil
}

// ReadFromFile reads text content from a file path.
func (r *Reader) ReadFromFile(filePath string) (*document.Document, error) {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}
	name := strings.TrimSuffix(filepath.Base(filePath), filepath.Ext(filePath))
	return build(name, string(content)), nil
}

func build(name, content string) *document.Document {
	now := time.Now().UTC()
	return &document.Document{
		ID:        uuid.NewString(),
		Name:      name,
		Content:   content,
		Metadata:  map[string]any{"reader": "text"},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

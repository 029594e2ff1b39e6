//
// Tencent is pleased to support the open source community by making trpc-ragkit-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-ragkit-go is licensed under the Apache License Version 2.0.
//
//

// Package markdown provides the markdown document reader.
package markdown

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"trpc.group/trpc-go/trpc-ragkit-go/document"
)

// Reader reads markdown documents, extracting the title from the first
// top-level heading.
type Reader struct {
	md goldmark.Markdown
}

// New creates a new markdown reader.
func New() *Reader {
	return &Reader{md: goldmark.New()}
}

// Name returns the name of this reader.
func (r *Reader) Name() string {
	return "markdown"
}

// SupportedExtensions returns the file extensions this reader handles.
func (r *Reader) SupportedExtensions() []string {
	return []string{".md", ".markdown"}
}

// ReadFromReader reads markdown content from an io.Reader.
func (r *Reader) ReadFromReader(name string, reader io.Reader) (*document.Document, error) {
	content, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}
	return r.build(name, content), nil
}

// ReadFromFile reads markdown content from a file path.
func (r *Reader) ReadFromFile(filePath string) (*document.Document, error) {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}
	name := strings.TrimSuffix(filepath.Base(filePath), filepath.Ext(filePath))
	return r.build(name, content), nil
}

func (r *Reader) build(name string, content []byte) *document.Document {
	if title := r.extractTitle(content); title != "" {
		name = title
	}
	now := time.Now().UTC()
	return &document.Document{
		ID:        uuid.NewString(),
		Name:      name,
		Content:   string(content),
		Metadata:  map[string]any{"reader": r.Name()},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// extractTitle returns the text of the first level-1 heading, if any.
func (r *Reader) extractTitle(content []byte) string {
	root := r.md.Parser().Parse(text.NewReader(content))
	var title string
	ast.Walk(root, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if heading, ok := node.(*ast.Heading); ok && heading.Level == 1 {
			title = headingText(heading, content)
			return ast.WalkStop, nil
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(title)
}

func headingText(node ast.Node, source []byte) string {
	var buf bytes.Buffer
	ast.Walk(node, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch v := n.(type) {
		case *ast.Text:
			buf.Write(v.Text(source))
		case *ast.String:
			buf.Write(v.Value)
		}
		return ast.WalkContinue, nil
	})
	return buf.String()
}

//
// Tencent is pleased to support the open source community by making trpc-ragkit-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-ragkit-go is licensed under the Apache License Version 2.0.
//
//

package reader

import (
	"strings"
	"sync"
)

// registry maps normalized file extensions to reader instances.
type registry struct {
	mu      sync.RWMutex
	readers map[string]Reader
}

var global = &registry{readers: make(map[string]Reader)}

// Register registers a reader under every extension it supports.
// Extensions carry the dot prefix (e.g. ".md"); a later registration for
// the same extension replaces the earlier one.
func Register(r Reader) {
	if r == nil {
		return
	}
	global.mu.Lock()
	defer global.mu.Unlock()
	for _, ext := range r.SupportedExtensions() {
		global.readers[strings.ToLower(ext)] = r
	}
}

// Get returns the reader registered for the given file extension.
func Get(extension string) (Reader, bool) {
	global.mu.RLock()
	defer global.mu.RUnlock()
	r, ok := global.readers[strings.ToLower(extension)]
	return r, ok
}

// Extensions returns all registered file extensions.
func Extensions() []string {
	global.mu.RLock()
	defer global.mu.RUnlock()
	exts := make([]string, 0, len(global.readers))
	for ext := range global.readers {
		exts = append(exts, ext)
	}
	return exts
}

// Clear removes all registered readers, mainly for tests.
func Clear() {
	global.mu.Lock()
	defer global.mu.Unlock()
	global.readers = make(map[string]Reader)
}

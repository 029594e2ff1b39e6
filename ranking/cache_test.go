//
// Tencent is pleased to support the open source community by making trpc-ragkit-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-ragkit-go is licensed under the Apache License Version 2.0.
//
//

package ranking

import (
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigCache_LazyLoadAndReuse(t *testing.T) {
	path := writeConfigFile(t, "page_types:\n  faq: 1.7\n")
	cache := NewConfigCache(path)

	first := cache.Get()
	require.NotNil(t, first)
	assert.InDelta(t, 1.7, first.PageTypes["faq"], scoreDelta)

	// Same snapshot until an explicit reload.
	assert.Same(t, first, cache.Get())
}

func TestConfigCache_ReloadSwapsSnapshot(t *testing.T) {
	path := writeConfigFile(t, "page_types:\n  faq: 1.7\n")
	cache := NewConfigCache(path)
	first := cache.Get()

	require.NoError(t, os.WriteFile(path, []byte("page_types:\n  faq: 2.5\n"), 0o600))
	second := cache.Reload()

	assert.NotSame(t, first, second)
	assert.InDelta(t, 2.5, second.PageTypes["faq"], scoreDelta)
	assert.Same(t, second, cache.Get())
}

func TestConfigCache_InvalidateForcesReload(t *testing.T) {
	path := writeConfigFile(t, "page_types:\n  faq: 1.7\n")
	cache := NewConfigCache(path)
	first := cache.Get()

	require.NoError(t, os.WriteFile(path, []byte("page_types:\n  faq: 3.0\n"), 0o600))
	cache.Invalidate()

	next := cache.Get()
	assert.NotSame(t, first, next)
	assert.InDelta(t, 3.0, next.PageTypes["faq"], scoreDelta)
}

func TestConfigCache_MissingFileStillServesIdentity(t *testing.T) {
	cache := NewConfigCache("/nonexistent/boosting.yaml")
	cfg := cache.Get()
	require.NotNil(t, cfg)
	assert.Empty(t, cfg.PageTypes)
}

func TestConfigCache_ConcurrentGet(t *testing.T) {
	path := writeConfigFile(t, "page_types:\n  faq: 1.7\n")
	cache := NewConfigCache(path)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			cfg := cache.Get()
			assert.NotNil(t, cfg)
		}()
	}
	wg.Wait()
}

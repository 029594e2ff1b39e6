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
	"sync"
	"sync/atomic"
)

// ConfigCache holds one immutable BoostingConfig snapshot for the whole
// process. The snapshot is populated lazily, treated as read-only by
// all consumers, and replaced atomically on an explicit reload;
// last writer wins.
type ConfigCache struct {
	path     string
	snapshot atomic.Pointer[BoostingConfig]
	mu       sync.Mutex
}

// NewConfigCache creates a cache reading from path. An empty path
// defers to the RAGKIT_BOOSTING_CONFIG environment variable.
func NewConfigCache(path string) *ConfigCache {
	return &ConfigCache{path: path}
}

// Get returns the current snapshot, loading it on first use.
func (c *ConfigCache) Get() *BoostingConfig {
	if cfg := c.snapshot.Load(); cfg != nil {
		return cfg
	}
	return c.Reload()
}

// Reload re-reads the configuration source and swaps in the new
// snapshot atomically.
func (c *ConfigCache) Reload() *BoostingConfig {
	c.mu.Lock()
	defer c.mu.Unlock()
	cfg := LoadConfig(c.path)
	c.snapshot.Store(cfg)
	return cfg
}

// Invalidate clears the snapshot so the next Get reloads it.
func (c *ConfigCache) Invalidate() {
	c.snapshot.Store(nil)
}

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
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "boosting.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig_FullFile(t *testing.T) {
	path := writeConfigFile(t, `
page_types:
  overview: 2.0
  reference: 1.3
sections:
  api: 1.5
url_patterns:
  - paths: ["/api/"]
    boost: 1.4
title_keywords:
  guides:
    words: ["guide", "tutorial"]
    boost: 1.2
length:
  optimal_min: 100
  optimal_max: 500
  optimal_boost: 1.2
  long_boost: 0.8
structure:
  well_structured_markers: ["## "]
  well_structured_boost: 1.1
url_depth:
  min_depth: 2
  factor: 0.8
routing:
  primary_boost: 3.0
  secondary_boost: 1.5
`)
	cfg := LoadConfig(path)
	assert.InDelta(t, 2.0, cfg.PageTypes["overview"], scoreDelta)
	assert.InDelta(t, 1.5, cfg.Sections["api"], scoreDelta)
	require.Len(t, cfg.URLPatterns, 1)
	assert.Equal(t, []string{"guide", "tutorial"}, cfg.TitleKeywords["guides"].Words)
	assert.Equal(t, 100, cfg.Length.OptimalMin)
	assert.InDelta(t, 1.1, cfg.Structure.WellStructuredBoost, scoreDelta)
	assert.Equal(t, 2, cfg.URLDepth.MinDepth)
	assert.InDelta(t, 3.0, cfg.Routing.PrimaryBoost, scoreDelta)
}

func TestLoadConfig_MissingFileYieldsIdentity(t *testing.T) {
	cfg := LoadConfig(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.NotNil(t, cfg)
	assert.Empty(t, cfg.PageTypes)
	assert.Empty(t, cfg.URLPatterns)
}

func TestLoadConfig_UnparsableFileYieldsIdentity(t *testing.T) {
	path := writeConfigFile(t, "page_types: [not: a: map")
	cfg := LoadConfig(path)
	require.NotNil(t, cfg)
	assert.Empty(t, cfg.PageTypes)
}

func TestLoadConfig_EmptyPathWithoutEnvIsIdentity(t *testing.T) {
	t.Setenv(EnvConfigPath, "")
	cfg := LoadConfig("")
	require.NotNil(t, cfg)
	assert.Empty(t, cfg.PageTypes)
}

func TestLoadConfig_EnvPathFallback(t *testing.T) {
	path := writeConfigFile(t, "page_types:\n  faq: 1.7\n")
	t.Setenv(EnvConfigPath, path)
	cfg := LoadConfig("")
	assert.InDelta(t, 1.7, cfg.PageTypes["faq"], scoreDelta)
}

func TestLoadConfig_MalformedRulesDropped(t *testing.T) {
	path := writeConfigFile(t, `
page_types:
  good: 2.0
  negative: -1.0
  zero: 0
url_patterns:
  - paths: ["/ok/"]
    boost: 1.2
  - paths: []
    boost: 1.5
  - paths: ["/bad/"]
    boost: -2.0
title_keywords:
  kept:
    words: ["guide"]
    boost: 1.2
  no_words:
    words: []
    boost: 1.5
length:
  optimal_min: 500
  optimal_max: 100
  optimal_boost: 1.2
url_depth:
  min_depth: 2
  factor: -0.5
`)
	cfg := LoadConfig(path)

	assert.InDelta(t, 2.0, cfg.PageTypes["good"], scoreDelta)
	assert.NotContains(t, cfg.PageTypes, "negative")
	assert.NotContains(t, cfg.PageTypes, "zero")

	require.Len(t, cfg.URLPatterns, 1)
	assert.Equal(t, []string{"/ok/"}, cfg.URLPatterns[0].Paths)

	assert.Contains(t, cfg.TitleKeywords, "kept")
	assert.NotContains(t, cfg.TitleKeywords, "no_words")

	// Inverted band drops the whole length rule.
	assert.Equal(t, LengthRule{}, cfg.Length)

	assert.Equal(t, DepthRule{}, cfg.URLDepth)
}

func TestLoadConfig_LengthRuleWithOnlyOptimalBoost(t *testing.T) {
	path := writeConfigFile(t, `
length:
  optimal_min: 100
  optimal_max: 500
  optimal_boost: 1.2
`)
	cfg := LoadConfig(path)
	assert.InDelta(t, 1.2, cfg.Length.OptimalBoost, scoreDelta)
	assert.Zero(t, cfg.Length.LongBoost)
}

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
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"trpc.group/trpc-go/trpc-ragkit-go/log"
)

// EnvConfigPath overrides the boosting configuration file location.
const EnvConfigPath = "RAGKIT_BOOSTING_CONFIG"

// URLPatternRule boosts passages whose URL contains any listed substring.
type URLPatternRule struct {
	Paths []string `yaml:"paths"`
	Boost float64  `yaml:"boost"`
}

// KeywordRule boosts passages whose title contains any listed word.
type KeywordRule struct {
	Words []string `yaml:"words"`
	Boost float64  `yaml:"boost"`
}

// LengthRule boosts passages inside the optimal token band and
// penalizes over-length ones. The two multipliers never both apply.
type LengthRule struct {
	OptimalMin   int     `yaml:"optimal_min"`
	OptimalMax   int     `yaml:"optimal_max"`
	OptimalBoost float64 `yaml:"optimal_boost"`
	LongBoost    float64 `yaml:"long_boost"`
}

// StructureRule boosts passages carrying structural markers.
// Well-structured and has-examples multipliers are independent.
type StructureRule struct {
	WellStructuredMarkers []string `yaml:"well_structured_markers"`
	ExampleMarkers        []string `yaml:"example_markers"`
	WellStructuredBoost   float64  `yaml:"well_structured_boost"`
	ExampleBoost          float64  `yaml:"example_boost"`
}

// DepthRule penalizes deep URLs once when the path segment count
// exceeds MinDepth.
type DepthRule struct {
	MinDepth int     `yaml:"min_depth"`
	Factor   float64 `yaml:"factor"`
}

// RoutingRule holds topical-routing multipliers.
type RoutingRule struct {
	PrimaryBoost   float64 `yaml:"primary_boost"`
	SecondaryBoost float64 `yaml:"secondary_boost"`
}

// BoostingConfig is the normalized set of ranking rules. A zero or
// missing rule is an identity (1.0) no-op; the scorer never fails on
// configuration.
type BoostingConfig struct {
	PageTypes     map[string]float64     `yaml:"page_types"`
	Sections      map[string]float64     `yaml:"sections"`
	Platforms     map[string]float64     `yaml:"platforms"`
	Sources       map[string]float64     `yaml:"sources"`
	URLPatterns   []URLPatternRule       `yaml:"url_patterns"`
	TitleKeywords map[string]KeywordRule `yaml:"title_keywords"`
	Length        LengthRule             `yaml:"length"`
	Structure     StructureRule          `yaml:"structure"`
	URLDepth      DepthRule              `yaml:"url_depth"`
	Routing       RoutingRule            `yaml:"routing"`
}

// Identity returns an all-identity configuration: every rule a no-op.
func Identity() *BoostingConfig {
	return &BoostingConfig{}
}

// LoadConfig reads the boosting configuration from path. A missing or
// unparsable file logs and yields the identity configuration; it never
// fails the caller. Individual malformed rules are dropped with a
// warning while the rest of the configuration still loads.
func LoadConfig(path string) *BoostingConfig {
	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}
	if path == "" {
		return Identity()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		log.Infof("boosting config not readable at %s, using identity rules: %v", path, err)
		return Identity()
	}
	var cfg BoostingConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		log.Warnf("boosting config at %s is unparsable, using identity rules: %v", path, err)
		return Identity()
	}
	cfg.normalize()
	return &cfg
}

// normalize drops malformed entries with a warning. Multipliers must be
// positive finite floats.
func (c *BoostingConfig) normalize() {
	c.PageTypes = validMultipliers("page_types", c.PageTypes)
	c.Sections = validMultipliers("sections", c.Sections)
	c.Platforms = validMultipliers("platforms", c.Platforms)
	c.Sources = validMultipliers("sources", c.Sources)

	patterns := c.URLPatterns[:0]
	for _, rule := range c.URLPatterns {
		if len(rule.Paths) == 0 || !validMultiplier(rule.Boost) {
			log.Warnf("dropping malformed url_patterns rule %+v", rule)
			continue
		}
		patterns = append(patterns, rule)
	}
	c.URLPatterns = patterns

	for name, rule := range c.TitleKeywords {
		if len(rule.Words) == 0 || !validMultiplier(rule.Boost) {
			log.Warnf("dropping malformed title_keywords group %q", name)
			delete(c.TitleKeywords, name)
		}
	}

	if c.Length != (LengthRule{}) {
		if c.Length.OptimalMin < 0 || c.Length.OptimalMax < c.Length.OptimalMin ||
			!validOrUnset(c.Length.OptimalBoost) || !validOrUnset(c.Length.LongBoost) {
			log.Warnf("dropping malformed length rule %+v", c.Length)
			c.Length = LengthRule{}
		}
	}

	if c.Structure.WellStructuredBoost != 0 && !validMultiplier(c.Structure.WellStructuredBoost) {
		log.Warnf("dropping malformed well_structured_boost %v", c.Structure.WellStructuredBoost)
		c.Structure.WellStructuredBoost = 0
		c.Structure.WellStructuredMarkers = nil
	}
	if c.Structure.ExampleBoost != 0 && !validMultiplier(c.Structure.ExampleBoost) {
		log.Warnf("dropping malformed example_boost %v", c.Structure.ExampleBoost)
		c.Structure.ExampleBoost = 0
		c.Structure.ExampleMarkers = nil
	}

	if c.URLDepth.Factor != 0 && (!validMultiplier(c.URLDepth.Factor) || c.URLDepth.MinDepth < 0) {
		log.Warnf("dropping malformed url_depth rule %+v", c.URLDepth)
		c.URLDepth = DepthRule{}
	}

	if c.Routing.PrimaryBoost != 0 && !validMultiplier(c.Routing.PrimaryBoost) {
		log.Warnf("dropping malformed primary_boost %v", c.Routing.PrimaryBoost)
		c.Routing.PrimaryBoost = 0
	}
	if c.Routing.SecondaryBoost != 0 && !validMultiplier(c.Routing.SecondaryBoost) {
		log.Warnf("dropping malformed secondary_boost %v", c.Routing.SecondaryBoost)
		c.Routing.SecondaryBoost = 0
	}
}

func validMultipliers(name string, m map[string]float64) map[string]float64 {
	for key, v := range m {
		if !validMultiplier(v) {
			log.Warnf("dropping malformed %s multiplier %q: %v", name, key, v)
			delete(m, key)
		}
	}
	return m
}

func validMultiplier(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}

// validOrUnset accepts a zero value as "rule half not configured".
func validOrUnset(v float64) bool {
	return v == 0 || validMultiplier(v)
}

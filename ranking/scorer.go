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
	"net/url"
	"sort"
	"strings"
)

// Router confidence at or above this value earns a softened topical
// bonus when no categorical match fires.
const routeConfidenceFloor = 0.5

// Score applies the configured multiplicative adjustments to a base
// score in fixed order: page type, section, platform, topical routing,
// ad-hoc group override, URL patterns, title keywords, length band,
// structural markers, source trust, URL depth. A rule with missing or
// malformed configuration is a no-op.
func Score(base float64, p Payload, cfg *BoostingConfig, rctx *Context) float64 {
	if cfg == nil {
		cfg = Identity()
	}
	score := base

	score *= pageTypeMultiplier(p, cfg, rctx)
	score *= tableMultiplier(cfg.Sections, p.Section)
	score *= tableMultiplier(cfg.Platforms, p.Platform)
	score *= routingMultiplier(p, cfg, rctx)
	override, overridden := groupOverrideMultiplier(p, cfg, rctx)
	score *= override
	score *= urlPatternMultiplier(p.URL, cfg.URLPatterns)
	score *= titleKeywordMultiplier(p.Title, cfg.TitleKeywords, overridden)
	score *= lengthMultiplier(p.Tokens, cfg.Length)
	score *= structureMultiplier(p.Content, cfg.Structure)
	score *= tableMultiplier(cfg.Sources, p.Source)
	score *= depthMultiplier(p.URL, cfg.URLDepth)

	return score
}

// pageTypeMultiplier prefers the request-scoped override over the
// configured table.
func pageTypeMultiplier(p Payload, cfg *BoostingConfig, rctx *Context) float64 {
	if p.PageType == "" {
		return 1
	}
	if rctx != nil {
		if m, ok := rctx.PageTypeBoosts[p.PageType]; ok && m > 0 {
			return m
		}
	}
	return tableMultiplier(cfg.PageTypes, p.PageType)
}

func tableMultiplier(table map[string]float64, key string) float64 {
	if key == "" {
		return 1
	}
	if m, ok := table[key]; ok {
		return m
	}
	return 1
}

// routingMultiplier applies the topical router's verdict: a primary
// categorical match, a secondary domain match, or a softened bonus from
// numeric confidence when neither fires.
func routingMultiplier(p Payload, cfg *BoostingConfig, rctx *Context) float64 {
	if rctx == nil || rctx.Route == nil {
		return 1
	}
	route := rctx.Route
	primary := cfg.Routing.PrimaryBoost
	secondary := cfg.Routing.SecondaryBoost

	if primary > 0 && primaryMatch(p, route) {
		return primary
	}
	if secondary > 0 && containsFold(route.PreferredDomains, p.Section) {
		return secondary
	}
	if primary > 1 {
		if confidence, ok := route.Scores[strings.ToLower(p.Section)]; ok && confidence >= routeConfidenceFloor {
			softened := 1 + (confidence-routeConfidenceFloor)*(primary-1)
			if softened > primary {
				softened = primary
			}
			return softened
		}
	}
	return 1
}

func primaryMatch(p Payload, route *RouteResult) bool {
	if route.PrimaryTheme != "" && strings.EqualFold(p.Section, route.PrimaryTheme) {
		return true
	}
	return containsFold(route.PreferredSections, p.Section) ||
		containsFold(route.PreferredPlatforms, p.Platform)
}

func containsFold(list []string, value string) bool {
	if value == "" {
		return false
	}
	for _, item := range list {
		if strings.EqualFold(item, value) {
			return true
		}
	}
	return false
}

// groupOverrideMultiplier applies request-scoped ad-hoc multipliers
// keyed by keyword-group-name substring. Rules are tried in sorted key
// order for determinism; the first match wins and short-circuits the
// rest. The matched group's name is returned so its configured boost is
// replaced rather than stacked on top of the override.
func groupOverrideMultiplier(p Payload, cfg *BoostingConfig, rctx *Context) (float64, string) {
	if rctx == nil || len(rctx.GroupBoosts) == 0 || len(cfg.TitleKeywords) == 0 {
		return 1, ""
	}
	substrings := make([]string, 0, len(rctx.GroupBoosts))
	for s := range rctx.GroupBoosts {
		substrings = append(substrings, s)
	}
	sort.Strings(substrings)

	groups := make([]string, 0, len(cfg.TitleKeywords))
	for name := range cfg.TitleKeywords {
		groups = append(groups, name)
	}
	sort.Strings(groups)

	title := strings.ToLower(p.Title)
	for _, sub := range substrings {
		m := rctx.GroupBoosts[sub]
		if m <= 0 {
			continue
		}
		for _, name := range groups {
			if !strings.Contains(strings.ToLower(name), strings.ToLower(sub)) {
				continue
			}
			if titleMatchesGroup(title, cfg.TitleKeywords[name]) {
				return m, name
			}
		}
	}
	return 1, ""
}

// urlPatternMultiplier applies every matching URL rule cumulatively.
func urlPatternMultiplier(rawURL string, rules []URLPatternRule) float64 {
	if rawURL == "" || len(rules) == 0 {
		return 1
	}
	m := 1.0
	for _, rule := range rules {
		for _, path := range rule.Paths {
			if path != "" && strings.Contains(rawURL, path) {
				m *= rule.Boost
				break
			}
		}
	}
	return m
}

// titleKeywordMultiplier applies every matching keyword group
// cumulatively, except the group already consumed by a request-scoped
// override.
func titleKeywordMultiplier(title string, groups map[string]KeywordRule, skip string) float64 {
	if title == "" || len(groups) == 0 {
		return 1
	}
	lower := strings.ToLower(title)

	names := make([]string, 0, len(groups))
	for name := range groups {
		names = append(names, name)
	}
	sort.Strings(names)

	m := 1.0
	for _, name := range names {
		if name == skip {
			continue
		}
		if titleMatchesGroup(lower, groups[name]) {
			m *= groups[name].Boost
		}
	}
	return m
}

func titleMatchesGroup(lowerTitle string, rule KeywordRule) bool {
	for _, word := range rule.Words {
		if word != "" && strings.Contains(lowerTitle, strings.ToLower(word)) {
			return true
		}
	}
	return false
}

// lengthMultiplier applies the optimal band boost or the over-length
// penalty, never both.
func lengthMultiplier(tokens int, rule LengthRule) float64 {
	if rule == (LengthRule{}) || tokens <= 0 {
		return 1
	}
	switch {
	case tokens >= rule.OptimalMin && tokens <= rule.OptimalMax:
		if rule.OptimalBoost > 0 {
			return rule.OptimalBoost
		}
	case tokens > rule.OptimalMax:
		if rule.LongBoost > 0 {
			return rule.LongBoost
		}
	}
	return 1
}

// structureMultiplier applies the well-structured and has-examples
// multipliers independently.
func structureMultiplier(content string, rule StructureRule) float64 {
	if content == "" {
		return 1
	}
	m := 1.0
	if rule.WellStructuredBoost > 0 && containsAnyMarker(content, rule.WellStructuredMarkers) {
		m *= rule.WellStructuredBoost
	}
	if rule.ExampleBoost > 0 && containsAnyMarker(content, rule.ExampleMarkers) {
		m *= rule.ExampleBoost
	}
	return m
}

func containsAnyMarker(content string, markers []string) bool {
	for _, marker := range markers {
		if marker != "" && strings.Contains(content, marker) {
			return true
		}
	}
	return false
}

// depthMultiplier applies the depth penalty once when the URL path has
// more segments than the configured minimum.
func depthMultiplier(rawURL string, rule DepthRule) float64 {
	if rule.Factor <= 0 || rawURL == "" {
		return 1
	}
	if urlDepth(rawURL) > rule.MinDepth {
		return rule.Factor
	}
	return 1
}

func urlDepth(rawURL string) int {
	path := rawURL
	if parsed, err := url.Parse(rawURL); err == nil && parsed.Path != "" {
		path = parsed.Path
	}
	depth := 0
	for _, segment := range strings.Split(path, "/") {
		if strings.TrimSpace(segment) != "" {
			depth++
		}
	}
	return depth
}

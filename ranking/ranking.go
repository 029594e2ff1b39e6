//
// Tencent is pleased to support the open source community by making trpc-ragkit-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-ragkit-go is licensed under the Apache License Version 2.0.
//
//

// Package ranking re-ranks retrieved passages for a query through an
// ordered sequence of independent multiplicative score adjustments.
// Scoring is pure: one loaded configuration plus per-candidate metadata
// in, a total order out. Missing rules are no-ops, so ranking degrades
// gracefully toward the original order as configuration goes missing.
package ranking

// Payload is the metadata of one retrieved passage.
type Payload struct {
	// DocID identifies the source document.
	DocID string

	// URL is the canonical location of the passage's document.
	URL string

	// Title is the passage or document title.
	Title string

	// PageType is the upstream page classification (e.g. "overview").
	PageType string

	// Section is the documentation section the passage belongs to.
	Section string

	// Platform is the platform the passage documents.
	Platform string

	// Source identifies the upstream system, used for source trust.
	Source string

	// Tokens is the passage length in tokens.
	Tokens int

	// Content is the passage text, scanned for structural markers.
	Content string
}

// Candidate is a transient scoring unit: a base relevance score plus
// the passage payload. It exists only for one ranking call.
type Candidate struct {
	// Payload is the passage metadata.
	Payload Payload

	// Score is the base relevance score on input and the boosted
	// score after ranking.
	Score float64
}

// RouteResult is the topical router's classification of a query,
// consumed as ranking context.
type RouteResult struct {
	// PrimaryTheme is the router's top theme for the query.
	PrimaryTheme string

	// PreferredSections lists sections the router favors.
	PreferredSections []string

	// PreferredPlatforms lists platforms the router favors.
	PreferredPlatforms []string

	// PreferredDomains lists related domains for secondary matches.
	PreferredDomains []string

	// Scores holds per-theme numeric router confidence in [0, 1].
	Scores map[string]float64
}

// Context carries request-scoped ranking state.
type Context struct {
	// PageTypeBoosts overrides the configured page-type multipliers
	// for this request.
	PageTypeBoosts map[string]float64

	// GroupBoosts maps a keyword-group-name substring to an ad-hoc
	// multiplier; the first matching rule wins and short-circuits the
	// remaining group overrides.
	GroupBoosts map[string]float64

	// Route is the topical router result, if any.
	Route *RouteResult
}

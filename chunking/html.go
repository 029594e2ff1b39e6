//
// Tencent is pleased to support the open source community by making trpc-ragkit-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-ragkit-go is licensed under the Apache License Version 2.0.
//
//

package chunking

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"

	"trpc.group/trpc-go/trpc-ragkit-go/document"
)

// ParseHTML derives the block vocabulary from an HTML element tree.
// Heading tags map to headings, ul/ol to lists, pre/code to code
// blocks, table to tables, blockquote to blockquotes, p/div to
// paragraphs; unknown tags recurse into children. It never fails: on a
// degenerate tree the whole text becomes one paragraph.
func ParseHTML(content string) []document.Block {
	root, err := html.Parse(strings.NewReader(content))
	if err != nil {
		return wholeTextParagraph(content)
	}
	var blocks []document.Block
	walkHTML(root, &blocks)
	if len(blocks) == 0 {
		return wholeTextParagraph(content)
	}
	return blocks
}

func wholeTextParagraph(content string) []document.Block {
	text := strings.TrimSpace(content)
	if text == "" {
		return nil
	}
	return []document.Block{{Kind: document.KindParagraph, Text: text}}
}

func walkHTML(n *html.Node, blocks *[]document.Block) {
	if n.Type != html.ElementNode {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walkHTML(c, blocks)
		}
		return
	}

	switch n.Data {
	case "script", "style", "head":
		return

	case "h1", "h2", "h3", "h4", "h5", "h6":
		level := int(n.Data[1] - '0')
		title := strings.TrimSpace(nodeText(n))
		if title != "" {
			appendBlock(blocks, document.Block{
				Kind:  document.KindHeading,
				Text:  strings.Repeat("#", level) + " " + title,
				Depth: level,
			})
		}

	case "ul", "ol":
		text := renderList(n, n.Data == "ol", 0)
		if strings.TrimSpace(text) != "" {
			appendBlock(blocks, document.Block{
				Kind:   document.KindList,
				Text:   text,
				Atomic: true,
			})
		}

	case "pre", "code":
		text := strings.Trim(nodeText(n), "\n")
		if strings.TrimSpace(text) != "" {
			appendBlock(blocks, document.Block{
				Kind:   document.KindCodeBlock,
				Text:   text,
				Atomic: true,
			})
		}

	case "table":
		text := renderTable(n)
		if strings.TrimSpace(text) != "" {
			appendBlock(blocks, document.Block{
				Kind:   document.KindTable,
				Text:   text,
				Atomic: true,
			})
		}

	case "blockquote":
		text := strings.TrimSpace(nodeText(n))
		if text != "" {
			appendBlock(blocks, document.Block{
				Kind: document.KindBlockquote,
				Text: "> " + strings.ReplaceAll(text, "\n", "\n> "),
			})
		}

	case "p":
		text := strings.TrimSpace(nodeText(n))
		if text != "" {
			appendBlock(blocks, document.Block{Kind: document.KindParagraph, Text: text})
		}

	case "div":
		// A div wrapping block-level elements is a container, not a
		// paragraph of its own.
		if hasBlockChildren(n) {
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				walkHTML(c, blocks)
			}
			return
		}
		text := strings.TrimSpace(nodeText(n))
		if text != "" {
			appendBlock(blocks, document.Block{Kind: document.KindParagraph, Text: text})
		}

	default:
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walkHTML(c, blocks)
		}
	}
}

func appendBlock(blocks *[]document.Block, b document.Block) {
	*blocks = append(*blocks, b)
}

var blockLevelTags = map[string]struct{}{
	"h1": {}, "h2": {}, "h3": {}, "h4": {}, "h5": {}, "h6": {},
	"ul": {}, "ol": {}, "pre": {}, "table": {}, "blockquote": {},
	"p": {}, "div": {},
}

func hasBlockChildren(n *html.Node) bool {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			if _, ok := blockLevelTags[c.Data]; ok {
				return true
			}
			if hasBlockChildren(c) {
				return true
			}
		}
	}
	return false
}

// nodeText collects the concatenated text content of a node.
func nodeText(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.TextNode {
			sb.WriteString(node.Data)
			return
		}
		if node.Type == html.ElementNode && (node.Data == "script" || node.Data == "style") {
			return
		}
		if node.Type == html.ElementNode && node.Data == "br" {
			sb.WriteString("\n")
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}

// renderList renders ul/ol contents as markdown list lines.
func renderList(n *html.Node, ordered bool, indent int) string {
	var lines []string
	item := 0
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode || c.Data != "li" {
			continue
		}
		item++
		var itemText strings.Builder
		var nested []string
		for lc := c.FirstChild; lc != nil; lc = lc.NextSibling {
			if lc.Type == html.ElementNode && (lc.Data == "ul" || lc.Data == "ol") {
				nested = append(nested, renderList(lc, lc.Data == "ol", indent+2))
				continue
			}
			itemText.WriteString(nodeText(lc))
		}
		prefix := strings.Repeat(" ", indent)
		marker := "- "
		if ordered {
			marker = fmt.Sprintf("%d. ", item)
		}
		text := strings.Join(strings.Fields(itemText.String()), " ")
		if text != "" {
			lines = append(lines, prefix+marker+text)
		}
		for _, sub := range nested {
			if sub != "" {
				lines = append(lines, sub)
			}
		}
	}
	return strings.Join(lines, "\n")
}

// renderTable renders table rows as markdown table lines.
func renderTable(n *html.Node) string {
	var lines []string
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.ElementNode && node.Data == "tr" {
			var cells []string
			for c := node.FirstChild; c != nil; c = c.NextSibling {
				if c.Type == html.ElementNode && (c.Data == "td" || c.Data == "th") {
					cells = append(cells, strings.Join(strings.Fields(nodeText(c)), " "))
				}
			}
			if len(cells) > 0 {
				lines = append(lines, "| "+strings.Join(cells, " | ")+" |")
			}
			return
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.Join(lines, "\n")
}

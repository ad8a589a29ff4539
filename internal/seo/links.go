// Copyright (c) 2026 Al Mohtaref Landscaping <info@almohtaref-sa.com>
// All rights reserved. See LICENSE for details.

// Package seo derives SEO metadata for blog posts and injects internal
// links into their rendered HTML.
package seo

import (
	"fmt"
	"regexp"
	"strings"

	"almohtaref/internal/models"
)

// tagToken matches a single HTML tag, used to walk text/tag segments.
var tagToken = regexp.MustCompile(`<[^>]*>`)

// ApplyInternalLinks rewrites html so that the first plain-text occurrence
// of each enabled link's keyword becomes an anchor to its URL. Text already
// inside an anchor is left alone, as is text inside tags themselves.
// Returns the rewritten HTML and the keywords that were actually applied.
func ApplyInternalLinks(html string, links []models.InternalLink) (string, []string) {
	var applied []string

	for _, link := range links {
		if !link.Enabled || strings.TrimSpace(link.Keyword) == "" {
			continue
		}
		rewritten, ok := linkFirstOccurrence(html, link.Keyword, link.URL)
		if ok {
			html = rewritten
			applied = append(applied, link.Keyword)
		}
	}
	return html, applied
}

// linkFirstOccurrence walks html as alternating text and tag segments,
// tracking anchor nesting, and wraps the first eligible occurrence of
// keyword in an anchor element.
func linkFirstOccurrence(html, keyword, url string) (string, bool) {
	var out strings.Builder
	anchorDepth := 0
	done := false
	pos := 0

	for _, loc := range tagToken.FindAllStringIndex(html, -1) {
		text := html[pos:loc[0]]
		if !done && anchorDepth == 0 {
			if replaced, ok := replaceOnce(text, keyword, url); ok {
				text = replaced
				done = true
			}
		}
		out.WriteString(text)

		tag := html[loc[0]:loc[1]]
		lower := strings.ToLower(tag)
		switch {
		case strings.HasPrefix(lower, "<a ") || lower == "<a>":
			anchorDepth++
		case strings.HasPrefix(lower, "</a"):
			if anchorDepth > 0 {
				anchorDepth--
			}
		}
		out.WriteString(tag)
		pos = loc[1]
	}

	// Trailing text after the last tag.
	text := html[pos:]
	if !done && anchorDepth == 0 {
		if replaced, ok := replaceOnce(text, keyword, url); ok {
			text = replaced
			done = true
		}
	}
	out.WriteString(text)

	if !done {
		return html, false
	}
	return out.String(), true
}

// replaceOnce wraps the first case-insensitive occurrence of keyword in
// text with an anchor, preserving the original casing of the matched text.
func replaceOnce(text, keyword, url string) (string, bool) {
	idx := strings.Index(strings.ToLower(text), strings.ToLower(keyword))
	if idx < 0 {
		return text, false
	}
	match := text[idx : idx+len(keyword)]
	anchor := fmt.Sprintf(`<a href="%s">%s</a>`, url, match)
	return text[:idx] + anchor + text[idx+len(keyword):], true
}

// Copyright (c) 2026 Al Mohtaref Landscaping <info@almohtaref-sa.com>
// All rights reserved. See LICENSE for details.

package seo

import (
	"net/url"
	"regexp"
	"strings"
)

const (
	// metaDescriptionMax is the conventional search-snippet length cap.
	metaDescriptionMax = 160

	// maxKeywords caps how many keywords auto-derivation produces.
	maxKeywords = 10
)

var stripTags = regexp.MustCompile(`<[^>]*>`)

// AutoDescription derives a meta description: the excerpt when present,
// otherwise the leading plain text of the rendered content, truncated to
// the snippet length on a rune boundary.
func AutoDescription(excerpt, html string) string {
	text := strings.TrimSpace(excerpt)
	if text == "" {
		text = strings.Join(strings.Fields(stripTags.ReplaceAllString(html, " ")), " ")
	}
	runes := []rune(text)
	if len(runes) <= metaDescriptionMax {
		return text
	}
	return strings.TrimSpace(string(runes[:metaDescriptionMax-1])) + "…"
}

// AutoKeywords derives keywords from a title: each word of four or more
// runes, original casing preserved, deduplicated in order.
func AutoKeywords(title string) []string {
	seen := make(map[string]bool)
	var keywords []string
	for _, word := range strings.Fields(title) {
		word = strings.Trim(word, `.,:;!?"'()[]،؟`)
		if len([]rune(word)) < 4 {
			continue
		}
		key := strings.ToLower(word)
		if seen[key] {
			continue
		}
		seen[key] = true
		keywords = append(keywords, word)
		if len(keywords) == maxKeywords {
			break
		}
	}
	return keywords
}

// BlogURL builds the absolute public URL of a blog post.
func BlogURL(siteURL, slug string) string {
	return strings.TrimRight(siteURL, "/") + "/blog/" + url.PathEscape(strings.TrimLeft(slug, "/"))
}

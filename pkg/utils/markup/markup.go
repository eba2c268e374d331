// ABOUTME: Text utilities for cleaning wiki markup and scraped HTML text
// ABOUTME: Provides common normalization functions used by the species parsers

package markup

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

var (
	whitespaceRe   = regexp.MustCompile(`[\s\p{Zs}]+`)
	refSelfCloseRe = regexp.MustCompile(`(?is)<ref[^>]*/>`)
	refBlockRe     = regexp.MustCompile(`(?is)<ref[^>]*>.*?</ref>`)
	commentRe      = regexp.MustCompile(`(?s)<!--.*?-->`)
	tagRe          = regexp.MustCompile(`<[^>]+>`)
	templateRe     = regexp.MustCompile(`\{\{[^{}]*\}\}`)
	wikiLinkRe     = regexp.MustCompile(`\[\[(?:[^\]|]*\|)?([^\]]*)\]\]`)
	externalLinkRe = regexp.MustCompile(`\[https?://[^\s\]]+\s*([^\]]*)\]`)
	emphasisRe     = regexp.MustCompile(`'{2,}`)
)

// CollapseWhitespace replaces runs of whitespace with a single space and trims
func CollapseWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
}

// StripWikiMarkup turns a wikitext fragment into display text.
// References, comments, HTML tags and templates are dropped, internal links
// keep their label, external links keep their caption and bold/italic quotes
// are removed. Entities are decoded and whitespace collapsed.
func StripWikiMarkup(s string) string {
	s = commentRe.ReplaceAllString(s, "")
	s = refSelfCloseRe.ReplaceAllString(s, "")
	s = refBlockRe.ReplaceAllString(s, "")

	// Nested templates collapse from the inside out.
	for {
		stripped := templateRe.ReplaceAllString(s, "")
		if stripped == s {
			break
		}
		s = stripped
	}

	s = wikiLinkRe.ReplaceAllString(s, "$1")
	s = externalLinkRe.ReplaceAllString(s, "$1")
	s = tagRe.ReplaceAllString(s, " ")
	s = emphasisRe.ReplaceAllString(s, "")
	s = html.UnescapeString(s)

	return CollapseWhitespace(s)
}

// StripFilePrefix removes a leading "File:" or "Image:" namespace from a
// wiki file reference and trims the result
func StripFilePrefix(name string) string {
	name = strings.TrimSpace(name)
	for _, prefix := range []string{"File:", "Image:", "file:", "image:"} {
		if strings.HasPrefix(name, prefix) {
			return strings.TrimSpace(strings.TrimPrefix(name, prefix))
		}
	}
	return name
}

// NormalizeImageSrc makes a protocol-relative image source absolute
func NormalizeImageSrc(src string) string {
	src = strings.TrimSpace(src)
	if strings.HasPrefix(src, "//") {
		return "https:" + src
	}
	return src
}

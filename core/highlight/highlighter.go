// ABOUTME: Text highlighter marks case-insensitive literal matches inside a DOM subtree
// ABOUTME: Clears previous markers before each search and skips script, style, form and mark elements

package highlight

import (
	"regexp"
	"strings"

	"bearpage/core/domain"
	"bearpage/core/interfaces"
	"bearpage/pkg/utils/markup"
	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

const (
	// MarkerClass is the class carried by every highlight marker
	MarkerClass = "highlight"

	markerSelector = "." + MarkerClass
)

// skipped elements are never descended into
var skipped = map[atom.Atom]bool{
	atom.Script: true,
	atom.Style:  true,
	atom.Form:   true,
	atom.Mark:   true,
}

// Highlighter implements interfaces.TextHighlighter on x/net/html trees
type Highlighter struct {
	logger interfaces.Logger
}

// NewHighlighter creates a highlighter; logger may be nil
func NewHighlighter(logger interfaces.Logger) *Highlighter {
	return &Highlighter{logger: logger}
}

// CompileQuery builds a case-insensitive pattern matching query literally.
// A blank query yields nil.
func CompileQuery(query string) *regexp.Regexp {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}
	return regexp.MustCompile("(?i)" + regexp.QuoteMeta(query))
}

// MatchSpans returns the non-overlapping matches of pattern in text, left to right
func MatchSpans(pattern *regexp.Regexp, text string) []domain.MatchSpan {
	if pattern == nil {
		return nil
	}

	locs := pattern.FindAllStringIndex(text, -1)
	spans := make([]domain.MatchSpan, 0, len(locs))
	for _, loc := range locs {
		if loc[0] == loc[1] {
			continue
		}
		spans = append(spans, domain.MatchSpan{Text: text[loc[0]:loc[1]], Offset: loc[0]})
	}
	return spans
}

// Clear replaces every highlight marker under scope with its text and
// merges the text it leaves behind. Without markers the tree is untouched.
func (h *Highlighter) Clear(scope *html.Node) {
	if scope == nil {
		return
	}

	markers := goquery.NewDocumentFromNode(scope).Find(markerSelector).Nodes
	if len(markers) == 0 {
		return
	}

	parents := make([]*html.Node, 0, len(markers))
	for _, marker := range markers {
		parent := marker.Parent
		if parent == nil {
			continue
		}
		parent.InsertBefore(markup.NewText(markup.TextContent(marker)), marker)
		parent.RemoveChild(marker)
		parents = append(parents, parent)
	}

	for _, parent := range parents {
		normalize(parent)
	}

	h.debug("Highlights cleared", map[string]interface{}{"markers": len(markers)})
}

// Highlight clears previous markers in scope (each root when scope is nil)
// and wraps every match of query inside roots in a marker element.
// Returns the number of markers created.
func (h *Highlighter) Highlight(scope *html.Node, roots []*html.Node, query string) int {
	if scope != nil {
		h.Clear(scope)
	} else {
		for _, root := range roots {
			h.Clear(root)
		}
	}

	pattern := CompileQuery(query)
	if pattern == nil {
		return 0
	}

	count := 0
	for _, root := range roots {
		count += walk(root, pattern)
	}

	h.debug("Highlights applied", map[string]interface{}{
		"query":   strings.TrimSpace(query),
		"roots":   len(roots),
		"markers": count,
	})

	return count
}

// HighlightArticles searches every article element of doc
func (h *Highlighter) HighlightArticles(doc *html.Node, query string) int {
	if doc == nil {
		return 0
	}
	articles := goquery.NewDocumentFromNode(doc).Find("article").Nodes
	return h.Highlight(doc, articles, query)
}

func (h *Highlighter) debug(msg string, fields map[string]interface{}) {
	if h.logger != nil {
		h.logger.Debug(msg, fields)
	}
}

// walk marks matches depth-first below n
func walk(n *html.Node, pattern *regexp.Regexp) int {
	switch n.Type {
	case html.TextNode:
		return markText(n, pattern)
	case html.ElementNode:
		if skipped[n.DataAtom] || IsMarker(n) {
			return 0
		}
	case html.DocumentNode:
	default:
		return 0
	}

	// Children are replaced while walking
	var children []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		children = append(children, c)
	}

	count := 0
	for _, c := range children {
		count += walk(c, pattern)
	}
	return count
}

// markText splits a text node into gap text and marker elements
func markText(n *html.Node, pattern *regexp.Regexp) int {
	parent := n.Parent
	if parent == nil {
		return 0
	}

	spans := MatchSpans(pattern, n.Data)
	if len(spans) == 0 {
		return 0
	}

	text := n.Data
	last := 0
	for _, span := range spans {
		if span.Offset > last {
			parent.InsertBefore(markup.NewText(text[last:span.Offset]), n)
		}
		parent.InsertBefore(NewMarker(span.Text), n)
		last = span.End()
	}
	if last < len(text) {
		parent.InsertBefore(markup.NewText(text[last:]), n)
	}
	parent.RemoveChild(n)

	return len(spans)
}

// NewMarker creates <mark class="highlight">text</mark>
func NewMarker(text string) *html.Node {
	return markup.NewElement(atom.Mark, text, markup.Attr("class", MarkerClass))
}

// IsMarker reports whether n carries the highlight class
func IsMarker(n *html.Node) bool {
	if n == nil || n.Type != html.ElementNode {
		return false
	}
	for _, a := range n.Attr {
		if a.Key != "class" {
			continue
		}
		for _, class := range strings.Fields(a.Val) {
			if class == MarkerClass {
				return true
			}
		}
	}
	return false
}

// normalize merges adjacent text children of n and drops empty ones
func normalize(n *html.Node) {
	c := n.FirstChild
	for c != nil {
		next := c.NextSibling
		if c.Type != html.TextNode {
			c = next
			continue
		}
		for next != nil && next.Type == html.TextNode {
			c.Data += next.Data
			following := next.NextSibling
			n.RemoveChild(next)
			next = following
		}
		if c.Data == "" {
			n.RemoveChild(c)
		}
		c = next
	}
}

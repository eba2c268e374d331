// ABOUTME: Small helpers for building and emptying x/net/html node trees
// ABOUTME: Shared by the card renderer, the comment panel and the highlighter

package markup

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// NewText creates a detached text node
func NewText(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

// NewElement creates a detached element. A non-empty text becomes its only child.
func NewElement(a atom.Atom, text string, attrs ...html.Attribute) *html.Node {
	n := &html.Node{
		Type:     html.ElementNode,
		Data:     a.String(),
		DataAtom: a,
		Attr:     attrs,
	}
	if text != "" {
		n.AppendChild(NewText(text))
	}
	return n
}

// Attr is a shorthand for html.Attribute
func Attr(key, val string) html.Attribute {
	return html.Attribute{Key: key, Val: val}
}

// RemoveChildren detaches every child of n
func RemoveChildren(n *html.Node) {
	for n.FirstChild != nil {
		n.RemoveChild(n.FirstChild)
	}
}

// SetText replaces the children of n with a single text node
func SetText(n *html.Node, s string) {
	RemoveChildren(n)
	n.AppendChild(NewText(s))
}

// TextContent concatenates every text node below n
func TextContent(n *html.Node) string {
	if n == nil {
		return ""
	}
	if n.Type == html.TextNode {
		return n.Data
	}
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		b.WriteString(TextContent(c))
	}
	return b.String()
}

// GetAttr returns the value of key on n, if present
func GetAttr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// SetAttr sets key on n, replacing an existing value
func SetAttr(n *html.Node, key, val string) {
	for i, a := range n.Attr {
		if a.Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

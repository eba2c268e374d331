// ABOUTME: Service interfaces for the core business logic
// ABOUTME: Defines contracts for the species loader and the text highlighter

package interfaces

import (
	"context"

	"bearpage/core/domain"
	"golang.org/x/net/html"
)

// SpeciesLoader retrieves the species list for a page.
// Load never fails outward; it returns the fallback list instead.
type SpeciesLoader interface {
	Load(ctx context.Context, pageID string) []domain.SpeciesRecord
}

// TextHighlighter marks search matches inside a DOM subtree
type TextHighlighter interface {
	// Clear unwraps every highlight marker under scope
	Clear(scope *html.Node)

	// Highlight clears scope, then wraps matches of query inside roots.
	// Returns the number of markers created.
	Highlight(scope *html.Node, roots []*html.Node, query string) int
}

// ABOUTME: Page composes the species loader, card renderer and highlighter over one document
// ABOUTME: Enhance fills the species container; Search highlights matches inside articles

package page

import (
	"context"

	coreerrors "bearpage/core/errors"
	"bearpage/core/highlight"
	"bearpage/core/interfaces"
	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// ContainerSelector locates the element that receives species cards
const ContainerSelector = ".more_bears"

// Page wires a loader and a highlighter to a document
type Page struct {
	loader      interfaces.SpeciesLoader
	highlighter *highlight.Highlighter
	logger      interfaces.Logger
	placeholder string
}

// NewPage creates a page; logger may be nil
func NewPage(loader interfaces.SpeciesLoader, highlighter *highlight.Highlighter, logger interfaces.Logger, placeholder string) *Page {
	if highlighter == nil {
		highlighter = highlight.NewHighlighter(logger)
	}
	return &Page{
		loader:      loader,
		highlighter: highlighter,
		logger:      logger,
		placeholder: placeholder,
	}
}

// Enhance loads species for pageID and renders them into the species
// container of doc. Returns the number of cards rendered.
func (p *Page) Enhance(ctx context.Context, doc *html.Node, pageID string) (int, error) {
	container := goquery.NewDocumentFromNode(doc).Find(ContainerSelector).First()
	if container.Length() == 0 {
		p.log("Species container not found", map[string]interface{}{"selector": ContainerSelector})
		return 0, &coreerrors.NotFoundError{Resource: "container", ID: ContainerSelector}
	}
	node := container.Nodes[0]

	RenderMessage(node, LoadingMessage)

	records := p.loader.Load(ctx, pageID)
	if err := ctx.Err(); err != nil {
		RenderMessage(node, ErrorMessage)
		return 0, err
	}

	RenderCards(node, records, p.placeholder)
	return len(records), nil
}

// Search highlights query inside every article of doc
func (p *Page) Search(doc *html.Node, query string) int {
	return p.highlighter.HighlightArticles(doc, query)
}

// ClearSearch removes all highlights from doc
func (p *Page) ClearSearch(doc *html.Node) {
	p.highlighter.Clear(doc)
}

func (p *Page) log(msg string, fields map[string]interface{}) {
	if p.logger != nil {
		p.logger.Warn(msg, fields)
	}
}

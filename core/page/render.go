// ABOUTME: Card renderer turns species records into article elements
// ABOUTME: Also renders single status messages into the species container

package page

import (
	"bearpage/core/domain"
	"bearpage/pkg/utils/markup"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Messages shown in the species container
const (
	LoadingMessage = "Loading bear information..."
	EmptyMessage   = "No bear information could be loaded."
	ErrorMessage   = "Failed to load bear information. Please refresh the page to try again."
)

// CardClass is the class of every rendered species card
const CardClass = "bear"

// RenderCards replaces the content of container with one card per record.
// Records without an image reference show placeholder instead.
func RenderCards(container *html.Node, records []domain.SpeciesRecord, placeholder string) {
	markup.RemoveChildren(container)

	if len(records) == 0 {
		container.AppendChild(markup.NewElement(atom.P, EmptyMessage))
		return
	}

	for _, record := range records {
		container.AppendChild(card(record, placeholder))
	}
}

// RenderMessage replaces the content of container with a single paragraph
func RenderMessage(container *html.Node, msg string) {
	markup.RemoveChildren(container)
	container.AppendChild(markup.NewElement(atom.P, msg))
}

func card(record domain.SpeciesRecord, placeholder string) *html.Node {
	src := record.ImageRef
	if src == "" {
		src = placeholder
	}
	speciesRange := record.Range
	if speciesRange == "" {
		speciesRange = domain.DefaultRangeText
	}

	article := markup.NewElement(atom.Article, "", markup.Attr("class", CardClass))
	article.AppendChild(markup.NewElement(atom.Img, "",
		markup.Attr("src", src),
		markup.Attr("alt", record.CommonName),
	))
	article.AppendChild(markup.NewElement(atom.H2, record.CommonName))
	if record.ScientificName != "" {
		article.AppendChild(markup.NewElement(atom.Em, record.ScientificName))
	}
	article.AppendChild(markup.NewElement(atom.P, speciesRange))

	return article
}

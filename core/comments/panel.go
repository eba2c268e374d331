// ABOUTME: Comment panel with show/hide toggling and keyboard activation
// ABOUTME: Submit validates a name and comment and appends them to the comment list

package comments

import (
	"strings"
	"sync"

	"bearpage/core/domain"
	coreerrors "bearpage/core/errors"
	"bearpage/pkg/utils/markup"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Toggle button labels
const (
	ShowLabel = "Show comment"
	HideLabel = "Hide comments"
)

// Keys that activate the toggle button
const (
	KeyEnter = "Enter"
	KeySpace = " "
)

// Panel tracks whether the comment section is shown
type Panel struct {
	mu      sync.Mutex
	visible bool
}

// NewPanel creates a hidden panel
func NewPanel() *Panel {
	return &Panel{}
}

// Visible reports whether the comments are shown
func (p *Panel) Visible() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.visible
}

// Label returns the toggle button text for the current state
func (p *Panel) Label() string {
	if p.Visible() {
		return HideLabel
	}
	return ShowLabel
}

// Toggle flips visibility and returns the new state
func (p *Panel) Toggle() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.visible = !p.visible
	return p.visible
}

// HandleKey toggles on Enter or Space and reports whether the key was handled
func (p *Panel) HandleKey(key string) bool {
	if key != KeyEnter && key != KeySpace {
		return false
	}
	p.Toggle()
	return true
}

// Apply writes the panel state to the DOM: the wrapper's display style and
// the button label. Either node may be nil.
func (p *Panel) Apply(wrapper, button *html.Node) {
	if wrapper != nil {
		display := "none"
		if p.Visible() {
			display = "block"
		}
		markup.SetAttr(wrapper, "style", "display: "+display)
	}
	if button != nil {
		markup.SetText(button, p.Label())
	}
}

// Submit validates name and text and appends the comment to list as
// <li><p>name</p><p>text</p></li>
func Submit(list *html.Node, name, text string) (domain.Comment, error) {
	comment := domain.Comment{
		Name: strings.TrimSpace(name),
		Text: strings.TrimSpace(text),
	}

	if comment.Name == "" {
		return domain.Comment{}, &coreerrors.ValidationError{Field: "name", Message: "name is required"}
	}
	if comment.Text == "" {
		return domain.Comment{}, &coreerrors.ValidationError{Field: "comment", Message: "comment is required"}
	}

	if list == nil {
		return domain.Comment{}, &coreerrors.NotFoundError{Resource: "comment list", ID: "list"}
	}

	item := markup.NewElement(atom.Li, "")
	item.AppendChild(markup.NewElement(atom.P, comment.Name))
	item.AppendChild(markup.NewElement(atom.P, comment.Text))
	list.AppendChild(item)

	return comment, nil
}

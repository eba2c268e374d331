// ABOUTME: Comment domain model for visitor comments on the page
// ABOUTME: Provides validation to ensure both name and text are present

package domain

import "strings"

// Comment is a visitor comment appended to the comment list
type Comment struct {
	Name string
	Text string
}

// IsValid checks that both name and text are non-blank
func (c Comment) IsValid() bool {
	return strings.TrimSpace(c.Name) != "" && strings.TrimSpace(c.Text) != ""
}

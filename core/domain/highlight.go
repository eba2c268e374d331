package domain

// MatchSpan is one search match inside a single text node
type MatchSpan struct {
	// Text is the matched substring as it appears in the document
	Text string

	// Offset is the byte offset of the match within the text node
	Offset int
}

// End returns the byte offset just past the match
func (m MatchSpan) End() int {
	return m.Offset + len(m.Text)
}

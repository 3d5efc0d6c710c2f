package orsextract

// TextExtractor flattens markup into its visible text.
type TextExtractor interface {
	// ExtractText returns every text node of the document in document
	// order, trimmed and joined by single spaces. Tags and comments are
	// dropped.
	ExtractText(html string) (string, error)
}

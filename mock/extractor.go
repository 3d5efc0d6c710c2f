package mock

import "github.com/fwojciec/orsextract"

var _ orsextract.TextExtractor = (*TextExtractor)(nil)

// TextExtractor is a mock implementation of orsextract.TextExtractor.
type TextExtractor struct {
	ExtractTextFn func(html string) (string, error)
}

func (e *TextExtractor) ExtractText(html string) (string, error) {
	return e.ExtractTextFn(html)
}

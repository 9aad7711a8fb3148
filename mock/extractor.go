package mock

import "github.com/fwojciec/artex"

var _ artex.StructuredExtractor = (*StructuredExtractor)(nil)

// StructuredExtractor is a mock implementation of artex.StructuredExtractor.
type StructuredExtractor struct {
	ExtractStructuredFn func(html string, pageURL string) (*artex.StructuredArticle, error)
}

func (e *StructuredExtractor) ExtractStructured(html string, pageURL string) (*artex.StructuredArticle, error) {
	return e.ExtractStructuredFn(html, pageURL)
}

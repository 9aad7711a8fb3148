package mock

import (
	"context"

	"github.com/fwojciec/artex"
)

var _ artex.ContentParser = (*ContentParser)(nil)

// ContentParser is a mock implementation of artex.ContentParser.
type ContentParser struct {
	ParseContentFn func(html string, pageURL string) (*artex.ParsedContent, error)
}

func (p *ContentParser) ParseContent(html string, pageURL string) (*artex.ParsedContent, error) {
	return p.ParseContentFn(html, pageURL)
}

var _ artex.ArticleParser = (*ArticleParser)(nil)

// ArticleParser is a mock implementation of artex.ArticleParser.
type ArticleParser struct {
	ParseArticleFn func(ctx context.Context, url string) (*artex.Result, error)
}

func (p *ArticleParser) ParseArticle(ctx context.Context, url string) (*artex.Result, error) {
	return p.ParseArticleFn(ctx, url)
}

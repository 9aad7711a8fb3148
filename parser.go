package artex

import (
	"context"
	"time"
)

// ParsedContent holds the output of readability-style DOM extraction.
type ParsedContent struct {
	Title         string
	ContentText   string // plain text, HTML entities decoded
	ContentHTML   string // cleaned HTML with boilerplate removed
	Author        string
	DatePublished time.Time
	Excerpt       string
	LeadImageURL  string
	WordCount     int
}

// ContentParser extracts the main article from raw HTML using DOM
// heuristics, for pages where structured markup is absent or incomplete.
type ContentParser interface {
	// ParseContent extracts title, body and metadata from html.
	// pageURL resolves relative links and images.
	// Returns an ENOCONTENT error when the page yields no usable text.
	ParseContent(html string, pageURL string) (*ParsedContent, error)
}

// ArticleParser is the top-level entry point: fetch a URL and produce a
// merged, confidence-scored article record.
type ArticleParser interface {
	// ParseArticle fetches url, runs structured and (conditionally)
	// traditional extraction, and merges the outputs. It returns an error
	// only on total failure, when neither stage produced anything usable.
	ParseArticle(ctx context.Context, url string) (*Result, error)
}

// Package readability implements traditional article parsing on top of
// go-readability's DOM heuristics.
package readability

import (
	"html"
	"net/url"
	"strings"

	"github.com/fwojciec/artex"
	readability "github.com/go-shiori/go-readability"
)

// Ensure Parser implements artex.ContentParser at compile time.
var _ artex.ContentParser = (*Parser)(nil)

// Parser wraps go-readability to extract the main article from HTML.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// ParseContent extracts title, body and metadata from rawHTML.
// HTML entities in the title and body are decoded before returning.
func (p *Parser) ParseContent(rawHTML string, pageURL string) (*artex.ParsedContent, error) {
	if rawHTML == "" {
		return nil, artex.Errorf(artex.EINVALID, "empty HTML input")
	}

	u, err := url.Parse(pageURL)
	if err != nil {
		return nil, artex.Errorf(artex.EINVALID, "invalid page URL %q: %v", pageURL, err)
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), u)
	if err != nil {
		return nil, artex.Errorf(artex.ENOCONTENT, "readability extraction failed: %v", err)
	}

	text := strings.TrimSpace(html.UnescapeString(article.TextContent))
	if text == "" {
		return nil, artex.Errorf(artex.ENOCONTENT, "no article content found at %s", pageURL)
	}

	content := &artex.ParsedContent{
		Title:        strings.TrimSpace(html.UnescapeString(article.Title)),
		ContentText:  text,
		ContentHTML:  article.Content,
		Author:       strings.TrimSpace(article.Byline),
		Excerpt:      strings.TrimSpace(article.Excerpt),
		LeadImageURL: article.Image,
		WordCount:    len(strings.Fields(text)),
	}
	if article.PublishedTime != nil {
		content.DatePublished = *article.PublishedTime
	}

	return content, nil
}

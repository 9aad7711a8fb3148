// Package trafilatura implements traditional article parsing on top of
// go-trafilatura. It is an alternative to the readability package with
// stronger metadata recovery on news sites.
package trafilatura

import (
	"bytes"
	"net/url"
	"strings"

	"github.com/fwojciec/artex"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Parser implements artex.ContentParser at compile time.
var _ artex.ContentParser = (*Parser)(nil)

// Parser wraps go-trafilatura to extract the main article from HTML.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// ParseContent extracts title, body and metadata from rawHTML.
func (p *Parser) ParseContent(rawHTML string, pageURL string) (*artex.ParsedContent, error) {
	if rawHTML == "" {
		return nil, artex.Errorf(artex.EINVALID, "empty HTML input")
	}

	u, err := url.Parse(pageURL)
	if err != nil {
		return nil, artex.Errorf(artex.EINVALID, "invalid page URL %q: %v", pageURL, err)
	}

	opts := trafilatura.Options{
		EnableFallback: true,
		OriginalURL:    u,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, artex.Errorf(artex.ENOCONTENT, "trafilatura extraction failed: %v", err)
	}

	text := strings.TrimSpace(result.ContentText)
	if text == "" {
		return nil, artex.Errorf(artex.ENOCONTENT, "no article content found at %s", pageURL)
	}

	var contentHTML string
	if result.ContentNode != nil {
		contentHTML, err = renderNode(result.ContentNode)
		if err != nil {
			return nil, err
		}
	}

	content := &artex.ParsedContent{
		Title:         strings.TrimSpace(result.Metadata.Title),
		ContentText:   text,
		ContentHTML:   contentHTML,
		Author:        strings.TrimSpace(result.Metadata.Author),
		DatePublished: result.Metadata.Date,
		Excerpt:       strings.TrimSpace(result.Metadata.Description),
		LeadImageURL:  result.Metadata.Image,
		WordCount:     len(strings.Fields(text)),
	}

	return content, nil
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}

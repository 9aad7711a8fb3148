// Package hybrid implements the parsing-strategy orchestrator: it runs
// structured-data extraction, conditionally supplements or replaces it
// with traditional DOM parsing, and fuses the outputs into one
// confidence-scored result.
package hybrid

import (
	"context"
	"strings"
	"time"

	"github.com/fwojciec/artex"
)

// Ensure Parser implements artex.ArticleParser at compile time.
var _ artex.ArticleParser = (*Parser)(nil)

// Parser is the hybrid parsing orchestrator. It holds no per-request
// state, so one Parser serves concurrent calls safely.
type Parser struct {
	fetcher     artex.Fetcher
	structured  artex.StructuredExtractor
	traditional artex.ContentParser
	weights     artex.ScoringWeights
}

// Option configures a Parser.
type Option func(*Parser)

// WithWeights overrides the default scoring weights.
func WithWeights(w artex.ScoringWeights) Option {
	return func(p *Parser) {
		p.weights = w
	}
}

// NewParser creates a Parser from its three stages.
func NewParser(fetcher artex.Fetcher, structured artex.StructuredExtractor, traditional artex.ContentParser, opts ...Option) *Parser {
	p := &Parser{
		fetcher:     fetcher,
		structured:  structured,
		traditional: traditional,
		weights:     artex.DefaultWeights(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ParseArticle fetches url and produces a merged article record.
//
// The decision sequence:
//
//  1. Extract structured data and score it.
//  2. Score recommends use-structured and text exists: adopt it as-is.
//  3. Score recommends hybrid: adopt the structured record, then run the
//     traditional parser and take its body only when strictly longer;
//     missing title/author/date/excerpt/image fields are filled from it.
//  4. Otherwise run the traditional parser alone.
//  5. If step 4 fails but structured data exists, fall back to it.
//  6. If everything failed, the error propagates: no silent empty result.
//
// Confidence is always recomputed over the final merged result, never
// copied from the structured-data score.
func (p *Parser) ParseArticle(ctx context.Context, rawURL string) (*artex.Result, error) {
	begin := time.Now()

	html, err := p.fetch(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	structured, err := p.structured.ExtractStructured(html, rawURL)
	if err != nil {
		// The extractor contract makes markup failures non-fatal, so an
		// error here is unexpected; continue with an empty record.
		structured = &artex.StructuredArticle{}
	}
	score := artex.ScoreStructured(structured, p.weights)

	var result *artex.Result
	switch {
	case score.Recommendation == artex.RecommendUseStructured && structured.BestText() != "":
		result = p.fromStructured(structured, rawURL)
		result.Method = artex.ParsingStructuredOnly

	case score.Recommendation == artex.RecommendHybrid && !structured.IsEmpty():
		result = p.fromStructured(structured, rawURL)
		result.Method = artex.ParsingHybrid
		if trad, tradErr := p.traditional.ParseContent(html, rawURL); tradErr == nil {
			p.mergeTraditional(result, trad)
		}

	default:
		trad, tradErr := p.traditional.ParseContent(html, rawURL)
		if tradErr != nil {
			// Any structured record beats a hard failure: even a
			// headline-only result lets the caller classify the page
			// instead of erroring out.
			if !structured.IsEmpty() {
				result = p.fromStructured(structured, rawURL)
				result.Method = artex.ParsingStructuredFallback
				break
			}
			return nil, tradErr
		}
		result = p.fromTraditional(trad, rawURL)
		result.Method = artex.ParsingTraditionalOnly
	}

	result.StructuredScore = score.Score
	result.ExtractionTime = time.Since(begin).Milliseconds()
	result.Confidence = artex.ConfidenceFor(result, p.weights)

	return result, nil
}

// fetch retrieves the page, retrying exactly once with aggressive
// percent-encoding when the first attempt fails with an encoding error.
// The retry decision is a code check, not error message matching.
func (p *Parser) fetch(ctx context.Context, rawURL string) (string, error) {
	html, err := p.fetcher.Fetch(ctx, sanitizeURL(rawURL))
	if err == nil || artex.ErrorCode(err) != artex.EENCODING {
		return html, err
	}
	return p.fetcher.Fetch(ctx, strictEncodeURL(rawURL))
}

// fromStructured shapes a result from structured metadata alone.
func (p *Parser) fromStructured(a *artex.StructuredArticle, rawURL string) *artex.Result {
	content := a.BestText()

	r := &artex.Result{
		Title:          firstNonEmpty(a.Headline, a.AlternativeHeadline),
		Content:        content,
		URL:            rawURL,
		Excerpt:        a.Description,
		WordCount:      a.WordCount,
		Domain:         artex.Domain(rawURL),
		HasFullContent: a.HasBody(),
		Methods:        a.Methods,
		Meta: artex.ResultMeta{
			Keywords:    a.Keywords,
			Categories:  a.Categories,
			Publisher:   a.Publisher,
			Language:    a.Language,
			ReadingTime: a.ReadingTime,
		},
	}

	if len(a.Authors) > 0 {
		r.Author = a.Authors[0].Name
	}
	if !a.DatePublished.IsZero() {
		t := a.DatePublished
		r.DatePublished = &t
	}
	if len(a.Images) > 0 {
		r.LeadImageURL = a.Images[0]
	}
	if r.WordCount == 0 && content != "" {
		r.WordCount = len(strings.Fields(content))
	}

	return r
}

// fromTraditional shapes a result from DOM parsing alone.
func (p *Parser) fromTraditional(c *artex.ParsedContent, rawURL string) *artex.Result {
	r := &artex.Result{
		Title:          c.Title,
		Content:        c.ContentText,
		ContentHTML:    c.ContentHTML,
		URL:            rawURL,
		Author:         c.Author,
		Excerpt:        c.Excerpt,
		LeadImageURL:   c.LeadImageURL,
		WordCount:      c.WordCount,
		Domain:         artex.Domain(rawURL),
		HasFullContent: c.ContentText != "",
		Methods:        []artex.ExtractionMethod{artex.MethodTraditional},
	}
	if !c.DatePublished.IsZero() {
		t := c.DatePublished
		r.DatePublished = &t
	}
	return r
}

// mergeTraditional folds a traditional parse into a structured result.
// The longer body wins; everything else only fills gaps.
func (p *Parser) mergeTraditional(r *artex.Result, c *artex.ParsedContent) {
	contributed := false

	if len(c.ContentText) > len(r.Content) {
		r.Content = c.ContentText
		r.ContentHTML = c.ContentHTML
		r.WordCount = c.WordCount
		r.HasFullContent = true
		contributed = true
	}
	if r.Title == "" && c.Title != "" {
		r.Title = c.Title
		contributed = true
	}
	if r.Author == "" && c.Author != "" {
		r.Author = c.Author
		contributed = true
	}
	if r.DatePublished == nil && !c.DatePublished.IsZero() {
		t := c.DatePublished
		r.DatePublished = &t
		contributed = true
	}
	if r.Excerpt == "" && c.Excerpt != "" {
		r.Excerpt = c.Excerpt
		contributed = true
	}
	if r.LeadImageURL == "" && c.LeadImageURL != "" {
		r.LeadImageURL = c.LeadImageURL
		contributed = true
	}

	if contributed {
		r.Methods = append(r.Methods, artex.MethodTraditional)
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

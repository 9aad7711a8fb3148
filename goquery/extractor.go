// Package goquery extracts machine-readable article metadata from HTML.
// It scans JSON-LD, Microdata, RDFa, Open Graph and Twitter Card markup
// and merges the findings with a fixed per-field priority.
package goquery

import (
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/araddon/dateparse"
	"github.com/fwojciec/artex"
)

// Ensure Extractor implements artex.StructuredExtractor at compile time.
var _ artex.StructuredExtractor = (*Extractor)(nil)

// Extractor scans HTML for structured article metadata.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// technique pairs an extraction method with its scanner function.
type technique struct {
	method artex.ExtractionMethod
	scan   func(doc *goquery.Document) *artex.StructuredArticle
}

// techniques in merge priority order: a higher-priority technique's
// non-empty field wins over a lower-priority one's.
var techniques = []technique{
	{artex.MethodJSONLD, extractJSONLD},
	{artex.MethodMicrodata, extractMicrodata},
	{artex.MethodRDFa, extractRDFa},
	{artex.MethodOpenGraph, extractOpenGraph},
	{artex.MethodTwitterCard, extractTwitterCard},
}

// ExtractStructured scans html and merges every technique's findings.
// Markup failures are non-fatal: unparseable input yields an empty record
// and a nil error so the caller can fall back to traditional parsing.
func (e *Extractor) ExtractStructured(html string, pageURL string) (*artex.StructuredArticle, error) {
	merged := &artex.StructuredArticle{}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return merged, nil
	}

	for _, t := range techniques {
		partial := t.scan(doc)
		if partial == nil || !hasAny(partial) {
			continue
		}
		merged.Merge(partial)
		merged.Methods = append(merged.Methods, t.method)
	}

	if merged.URL == "" {
		merged.URL = pageURL
	}

	return merged, nil
}

// parseDate tolerantly parses the date formats found in the wild.
// Returns the zero time when the value is unparseable.
func parseDate(value string) time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}
	}
	t, err := dateparse.ParseAny(value)
	if err != nil {
		return time.Time{}
	}
	return t
}

// hasAny reports whether a technique contributed at least one field.
func hasAny(a *artex.StructuredArticle) bool {
	return a.Headline != "" || a.AlternativeHeadline != "" || a.ArticleBody != "" ||
		a.Description != "" || a.URL != "" || len(a.Authors) > 0 ||
		!a.DatePublished.IsZero() || len(a.Images) > 0 || a.WordCount > 0 ||
		len(a.Keywords) > 0 || len(a.Categories) > 0 || a.Publisher != "" ||
		a.Language != "" || a.ReadingTime != ""
}

// splitList splits comma-separated keyword values and trims each entry.
func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

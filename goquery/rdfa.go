package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/artex"
)

// extractRDFa scans for article metadata declared with RDFa property
// attributes, with or without a vocabulary prefix (e.g. "schema:headline"
// and plain "headline" both match).
func extractRDFa(doc *goquery.Document) *artex.StructuredArticle {
	a := &artex.StructuredArticle{
		Headline:      rdfaValue(doc, "headline"),
		ArticleBody:   rdfaValue(doc, "articleBody"),
		Description:   rdfaValue(doc, "description"),
		URL:           rdfaValue(doc, "url"),
		DatePublished: parseDate(rdfaValue(doc, "datePublished")),
	}

	if name := rdfaValue(doc, "author"); name != "" {
		a.Authors = []artex.Author{{Name: name}}
	}
	if img := rdfaValue(doc, "image"); img != "" {
		a.Images = []string{img}
	}
	if kw := rdfaValue(doc, "keywords"); kw != "" {
		a.Keywords = splitList(kw)
	}

	return a
}

// rdfaValue finds the first element whose property attribute names prop,
// ignoring any vocabulary prefix. Machine-readable attributes win over
// element text.
//
// og:* meta tags also use the property attribute; those are excluded here
// and handled by the Open Graph technique at its own priority.
func rdfaValue(doc *goquery.Document, prop string) string {
	var value string

	doc.Find("[property]").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		raw, _ := sel.Attr("property")
		name := raw
		if idx := strings.LastIndexAny(raw, ":"); idx >= 0 {
			if strings.HasPrefix(raw, "og:") || strings.HasPrefix(raw, "twitter:") {
				return true
			}
			name = raw[idx+1:]
		}
		if name != prop {
			return true
		}

		for _, attr := range []string{"content", "datetime", "href", "src"} {
			if v, ok := sel.Attr(attr); ok && strings.TrimSpace(v) != "" {
				value = strings.TrimSpace(v)
				return false
			}
		}
		value = strings.TrimSpace(sel.Text())
		return value == ""
	})

	return value
}

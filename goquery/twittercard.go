package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/artex"
)

// extractTwitterCard scans twitter:* meta tags. Sites declare them under
// either the name or the property attribute; both are accepted.
func extractTwitterCard(doc *goquery.Document) *artex.StructuredArticle {
	props := map[string]string{}

	doc.Find("meta[name^='twitter:'], meta[property^='twitter:']").Each(func(_ int, sel *goquery.Selection) {
		key, ok := sel.Attr("name")
		if !ok {
			key, _ = sel.Attr("property")
		}
		content, _ := sel.Attr("content")
		content = strings.TrimSpace(content)
		if content == "" {
			return
		}
		if _, exists := props[key]; !exists {
			props[key] = content
		}
	})

	a := &artex.StructuredArticle{
		Headline:    props["twitter:title"],
		Description: props["twitter:description"],
		URL:         props["twitter:url"],
	}

	if img := props["twitter:image"]; img != "" {
		a.Images = []string{img}
	}
	if creator := props["twitter:creator"]; creator != "" && creator != "@" {
		a.Authors = []artex.Author{{Name: strings.TrimPrefix(creator, "@")}}
	}

	return a
}

package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/artex"
)

// extractOpenGraph scans og:* and article:* meta tags.
func extractOpenGraph(doc *goquery.Document) *artex.StructuredArticle {
	props := map[string]string{}
	var images, tags, sections []string

	doc.Find("meta[property]").Each(func(_ int, sel *goquery.Selection) {
		prop, _ := sel.Attr("property")
		content, _ := sel.Attr("content")
		content = strings.TrimSpace(content)
		if content == "" {
			return
		}
		switch prop {
		case "og:image", "og:image:url", "og:image:secure_url":
			images = append(images, content)
		case "article:tag":
			tags = append(tags, content)
		case "article:section":
			sections = append(sections, content)
		default:
			if _, ok := props[prop]; !ok {
				props[prop] = content
			}
		}
	})

	a := &artex.StructuredArticle{
		Headline:      props["og:title"],
		Description:   props["og:description"],
		URL:           props["og:url"],
		DatePublished: parseDate(props["article:published_time"]),
		Images:        images,
		Keywords:      tags,
		Categories:    sections,
		Publisher:     props["og:site_name"],
		Language:      props["og:locale"],
	}

	// article:author is sometimes a profile URL rather than a name.
	if author := props["article:author"]; author != "" {
		if strings.HasPrefix(author, "http") {
			a.Authors = []artex.Author{{URL: author}}
		} else {
			a.Authors = []artex.Author{{Name: author}}
		}
	}

	return a
}

package goquery

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/artex"
)

// articleTypes are the Schema.org types treated as articles.
var articleTypes = map[string]bool{
	"Article":              true,
	"NewsArticle":          true,
	"BlogPosting":          true,
	"TechArticle":          true,
	"ReportageNewsArticle": true,
}

// extractJSONLD scans <script type="application/ld+json"> blocks for a
// Schema.org article. The first article node found wins; @graph containers
// are unwrapped. Malformed JSON in one block does not stop the scan.
func extractJSONLD(doc *goquery.Document) *artex.StructuredArticle {
	var article *artex.StructuredArticle

	doc.Find(`script[type="application/ld+json"]`).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		var raw any
		if err := json.Unmarshal([]byte(sel.Text()), &raw); err != nil {
			return true
		}
		if node := findArticleNode(raw); node != nil {
			article = articleFromJSONLD(node)
			return false
		}
		return true
	})

	return article
}

// findArticleNode walks a decoded JSON-LD document looking for the first
// object whose @type is an article type. Top-level arrays and @graph
// containers are searched recursively.
func findArticleNode(raw any) map[string]any {
	switch v := raw.(type) {
	case map[string]any:
		if isArticleType(v["@type"]) {
			return v
		}
		if graph, ok := v["@graph"]; ok {
			return findArticleNode(graph)
		}
	case []any:
		for _, item := range v {
			if node := findArticleNode(item); node != nil {
				return node
			}
		}
	}
	return nil
}

// isArticleType handles @type declared as a string or a list of strings.
func isArticleType(t any) bool {
	switch v := t.(type) {
	case string:
		return articleTypes[v]
	case []any:
		for _, item := range v {
			if s, ok := item.(string); ok && articleTypes[s] {
				return true
			}
		}
	}
	return false
}

func articleFromJSONLD(node map[string]any) *artex.StructuredArticle {
	a := &artex.StructuredArticle{
		Headline:            jsonString(node["headline"]),
		AlternativeHeadline: jsonString(node["alternativeHeadline"]),
		ArticleBody:         jsonString(node["articleBody"]),
		Description:         jsonString(node["description"]),
		URL:                 jsonString(node["url"]),
		Authors:             jsonAuthors(node["author"]),
		DatePublished:       parseDate(jsonString(node["datePublished"])),
		Images:              jsonImages(node["image"]),
		WordCount:           jsonInt(node["wordCount"]),
		Keywords:            jsonStrings(node["keywords"]),
		Categories:          jsonStrings(node["articleSection"]),
		Publisher:           jsonPublisher(node["publisher"]),
		Language:            jsonString(node["inLanguage"]),
		ReadingTime:         jsonString(node["timeRequired"]),
	}

	// mainEntityOfPage often carries the canonical URL when url is absent.
	if a.URL == "" {
		switch v := node["mainEntityOfPage"].(type) {
		case string:
			a.URL = v
		case map[string]any:
			a.URL = jsonString(v["@id"])
		}
	}

	return a
}

func jsonString(v any) string {
	s, _ := v.(string)
	return strings.TrimSpace(s)
}

// jsonInt accepts numbers encoded as JSON numbers or strings.
func jsonInt(v any) int {
	switch n := v.(type) {
	case float64:
		return int(n)
	case string:
		out, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0
		}
		return out
	}
	return 0
}

// jsonStrings accepts a single string (possibly comma-separated) or a list.
func jsonStrings(v any) []string {
	switch s := v.(type) {
	case string:
		return splitList(s)
	case []any:
		var out []string
		for _, item := range s {
			if str := jsonString(item); str != "" {
				out = append(out, str)
			}
		}
		return out
	}
	return nil
}

// jsonAuthors accepts author declared as a string, an object, or a list
// of either.
func jsonAuthors(v any) []artex.Author {
	switch a := v.(type) {
	case string:
		if a = strings.TrimSpace(a); a != "" {
			return []artex.Author{{Name: a}}
		}
	case map[string]any:
		if name := jsonString(a["name"]); name != "" {
			return []artex.Author{{Name: name, URL: jsonString(a["url"])}}
		}
	case []any:
		var out []artex.Author
		for _, item := range a {
			out = append(out, jsonAuthors(item)...)
		}
		return out
	}
	return nil
}

// jsonImages accepts image declared as a URL string, an ImageObject, or a
// list of either.
func jsonImages(v any) []string {
	switch img := v.(type) {
	case string:
		if img = strings.TrimSpace(img); img != "" {
			return []string{img}
		}
	case map[string]any:
		if u := jsonString(img["url"]); u != "" {
			return []string{u}
		}
	case []any:
		var out []string
		for _, item := range img {
			out = append(out, jsonImages(item)...)
		}
		return out
	}
	return nil
}

func jsonPublisher(v any) string {
	switch p := v.(type) {
	case string:
		return strings.TrimSpace(p)
	case map[string]any:
		return jsonString(p["name"])
	}
	return ""
}

package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/artex"
)

// extractMicrodata scans for a Schema.org article declared with itemscope
// and itemprop attributes. The first article scope found wins.
func extractMicrodata(doc *goquery.Document) *artex.StructuredArticle {
	var article *artex.StructuredArticle

	doc.Find("[itemscope][itemtype]").EachWithBreak(func(_ int, scope *goquery.Selection) bool {
		itemtype, _ := scope.Attr("itemtype")
		if !isArticleItemtype(itemtype) {
			return true
		}
		article = articleFromMicrodata(scope)
		return false
	})

	return article
}

func isArticleItemtype(itemtype string) bool {
	idx := strings.LastIndex(itemtype, "/")
	if idx < 0 {
		return false
	}
	return articleTypes[itemtype[idx+1:]]
}

func articleFromMicrodata(scope *goquery.Selection) *artex.StructuredArticle {
	a := &artex.StructuredArticle{
		Headline:      itempropValue(scope, "headline"),
		ArticleBody:   itempropValue(scope, "articleBody"),
		Description:   itempropValue(scope, "description"),
		URL:           itempropValue(scope, "url"),
		DatePublished: parseDate(itempropValue(scope, "datePublished")),
	}

	if name := authorNameFromScope(scope); name != "" {
		a.Authors = []artex.Author{{Name: name}}
	}
	if img := itempropValue(scope, "image"); img != "" {
		a.Images = []string{img}
	}
	if kw := itempropValue(scope, "keywords"); kw != "" {
		a.Keywords = splitList(kw)
	}
	if section := itempropValue(scope, "articleSection"); section != "" {
		a.Categories = []string{section}
	}
	a.Publisher = publisherNameFromScope(scope)

	return a
}

// itempropValue reads the first element carrying the itemprop, preferring
// machine-readable attributes (content, datetime, href, src) over text.
func itempropValue(scope *goquery.Selection, prop string) string {
	sel := scope.Find("[itemprop=" + prop + "]").First()
	if sel.Length() == 0 {
		return ""
	}
	for _, attr := range []string{"content", "datetime", "href", "src"} {
		if v, ok := sel.Attr(attr); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return strings.TrimSpace(sel.Text())
}

// authorNameFromScope handles author declared either as a nested Person
// scope with an itemprop=name child, or as a flat itemprop=author value.
func authorNameFromScope(scope *goquery.Selection) string {
	author := scope.Find("[itemprop=author]").First()
	if author.Length() == 0 {
		return ""
	}
	if _, nested := author.Attr("itemscope"); nested {
		return strings.TrimSpace(author.Find("[itemprop=name]").First().Text())
	}
	return itempropValue(scope, "author")
}

func publisherNameFromScope(scope *goquery.Selection) string {
	publisher := scope.Find("[itemprop=publisher]").First()
	if publisher.Length() == 0 {
		return ""
	}
	if _, nested := publisher.Attr("itemscope"); nested {
		return strings.TrimSpace(publisher.Find("[itemprop=name]").First().Text())
	}
	return itempropValue(scope, "publisher")
}

package artex

import "time"

// Author identifies an article author as declared in page metadata.
type Author struct {
	Name string `json:"name"`
	URL  string `json:"url,omitempty"`
}

// StructuredArticle is normalized article metadata merged from the
// machine-readable markup on a page. Any field may be empty: pages declare
// wildly different subsets, and the only guaranteed field is the source URL.
type StructuredArticle struct {
	Headline            string
	AlternativeHeadline string
	ArticleBody         string
	Description         string
	URL                 string
	Authors             []Author
	DatePublished       time.Time
	Images              []string
	WordCount           int
	Keywords            []string
	Categories          []string
	Publisher           string
	Language            string
	ReadingTime         string

	// Methods lists the extraction techniques that contributed at least
	// one field, in priority order.
	Methods []ExtractionMethod
}

// IsEmpty reports whether no technique produced any usable metadata.
func (a *StructuredArticle) IsEmpty() bool {
	return a == nil || len(a.Methods) == 0
}

// HasBody reports whether a full article body was declared in markup, as
// opposed to only a description or excerpt.
func (a *StructuredArticle) HasBody() bool {
	return a != nil && a.ArticleBody != ""
}

// BestText returns the fullest text available from structured markup:
// the article body if present, otherwise the description.
func (a *StructuredArticle) BestText() string {
	if a == nil {
		return ""
	}
	if a.ArticleBody != "" {
		return a.ArticleBody
	}
	return a.Description
}

// Merge fills empty fields of a from other. Populated fields of a always
// win, which gives left-to-right priority when techniques are merged in
// order (JSON-LD > Microdata > RDFa > Open Graph > Twitter Card).
func (a *StructuredArticle) Merge(other *StructuredArticle) {
	if other == nil {
		return
	}
	if a.Headline == "" {
		a.Headline = other.Headline
	}
	if a.AlternativeHeadline == "" {
		a.AlternativeHeadline = other.AlternativeHeadline
	}
	if a.ArticleBody == "" {
		a.ArticleBody = other.ArticleBody
	}
	if a.Description == "" {
		a.Description = other.Description
	}
	if a.URL == "" {
		a.URL = other.URL
	}
	if len(a.Authors) == 0 {
		a.Authors = other.Authors
	}
	if a.DatePublished.IsZero() {
		a.DatePublished = other.DatePublished
	}
	if len(a.Images) == 0 {
		a.Images = other.Images
	}
	if a.WordCount == 0 {
		a.WordCount = other.WordCount
	}
	if len(a.Keywords) == 0 {
		a.Keywords = other.Keywords
	}
	if len(a.Categories) == 0 {
		a.Categories = other.Categories
	}
	if a.Publisher == "" {
		a.Publisher = other.Publisher
	}
	if a.Language == "" {
		a.Language = other.Language
	}
	if a.ReadingTime == "" {
		a.ReadingTime = other.ReadingTime
	}
}

package artex

import "time"

// ParsingMethod identifies which strategy produced a Result.
// It is a closed set; consumers switch exhaustively on it.
type ParsingMethod string

const (
	ParsingStructuredOnly     ParsingMethod = "structured-only"
	ParsingTraditionalOnly    ParsingMethod = "traditional-only"
	ParsingHybrid             ParsingMethod = "hybrid"
	ParsingStructuredFallback ParsingMethod = "structured-fallback"
)

// Valid reports whether m is one of the defined parsing methods.
func (m ParsingMethod) Valid() bool {
	switch m {
	case ParsingStructuredOnly, ParsingTraditionalOnly, ParsingHybrid, ParsingStructuredFallback:
		return true
	}
	return false
}

// ResultMeta carries secondary article metadata from structured markup.
type ResultMeta struct {
	Keywords    []string `json:"keywords,omitempty"`
	Categories  []string `json:"categories,omitempty"`
	Publisher   string   `json:"publisher,omitempty"`
	Language    string   `json:"language,omitempty"`
	ReadingTime string   `json:"readingTime,omitempty"`
}

// Result is the merged output of hybrid parsing. The JSON field names are
// a compatibility contract with downstream consumers and must not change.
type Result struct {
	Title         string     `json:"title"`
	Content       string     `json:"content"`
	URL           string     `json:"url"`
	Author        string     `json:"author,omitempty"`
	DatePublished *time.Time `json:"date_published,omitempty"`
	Excerpt       string     `json:"excerpt,omitempty"`
	LeadImageURL  string     `json:"lead_image_url,omitempty"`
	WordCount     int        `json:"word_count"`
	Domain        string     `json:"domain"`

	// ContentHTML is the cleaned article HTML when traditional parsing
	// contributed the body. Not part of the wire contract.
	ContentHTML string `json:"-"`

	// Parsing metadata.
	Method          ParsingMethod      `json:"parsingMethod"`
	StructuredScore int                `json:"structuredDataScore"`
	ExtractionTime  int64              `json:"extractionTime"` // milliseconds
	HasFullContent  bool               `json:"hasFullContent"`
	Methods         []ExtractionMethod `json:"extractionMethods"`
	Confidence      int                `json:"confidence"`
	Meta            ResultMeta         `json:"metadata"`
}

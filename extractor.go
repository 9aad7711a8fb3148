package artex

// ExtractionMethod names a structured-data extraction technique.
type ExtractionMethod string

// Extraction techniques in merge priority order.
const (
	MethodJSONLD      ExtractionMethod = "json-ld"
	MethodMicrodata   ExtractionMethod = "microdata"
	MethodRDFa        ExtractionMethod = "rdfa"
	MethodOpenGraph   ExtractionMethod = "opengraph"
	MethodTwitterCard ExtractionMethod = "twitter-card"

	// MethodTraditional marks a contribution from readability-style DOM
	// parsing rather than structured markup.
	MethodTraditional ExtractionMethod = "traditional"
)

// StructuredExtractor extracts machine-readable article metadata from HTML.
type StructuredExtractor interface {
	// ExtractStructured scans html for JSON-LD, Microdata, RDFa, Open Graph
	// and Twitter Card markup and merges the findings into one record, with
	// higher-priority techniques winning per field. pageURL seeds the URL
	// field when markup does not declare one.
	//
	// Markup failures are non-fatal: a page with no usable metadata yields
	// an empty record (IsEmpty() == true) and a nil error so the caller can
	// fall back to traditional parsing.
	ExtractStructured(html string, pageURL string) (*StructuredArticle, error)
}

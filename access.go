package artex

import "strings"

// ErrorType classifies why extracted content is or is not usable.
type ErrorType string

const (
	ErrAccessible    ErrorType = "accessible"
	ErrPaywall       ErrorType = "paywall"
	ErrNoContent     ErrorType = "no-content"
	ErrParsingFailed ErrorType = "parsing-failed"
)

// AccessibilityStatus is the verdict on whether a parsed result contains
// usable article content. It is computed fresh on every call and never
// cached: a stale paywall verdict would be actively misleading.
type AccessibilityStatus struct {
	IsAccessible bool      `json:"isAccessible"`
	Reason       string    `json:"reason"`
	ErrorType    ErrorType `json:"errorType"`
	Suggestions  []string  `json:"suggestions"`
}

// paywallPhrases are markers that a page served a subscription stub
// instead of the article. Matching is case-insensitive.
var paywallPhrases = []string{
	"subscribe to continue",
	"subscribe to read",
	"sign in to continue",
	"sign up to continue",
	"premium content",
	"subscription required",
	"register to continue",
	"already a subscriber",
	"create a free account",
}

// paywallSuspected reports whether content looks like a paywall excerpt:
// either it contains a known subscription phrase, or it is implausibly
// short for a page that still declared full title/author/date metadata.
func paywallSuspected(content string, hasRichMeta bool, w ScoringWeights) bool {
	lower := strings.ToLower(content)
	for _, phrase := range paywallPhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return len(content) < w.PaywallLengthThreshold && hasRichMeta
}

// Classify derives an accessibility verdict from a parsed result.
// Checks run in order and the first match wins: total parse failure, then
// paywall suspicion, then missing content, then accessible.
func Classify(r *Result, w ScoringWeights) AccessibilityStatus {
	if r.Title == "" && r.Content == "" {
		return AccessibilityStatus{
			IsAccessible: false,
			Reason:       "No content could be extracted from this page.",
			ErrorType:    ErrParsingFailed,
			Suggestions: []string{
				"Check that the URL points to an article page",
				"Try a different article from the same site",
			},
		}
	}

	hasRichMeta := r.Title != "" && r.Author != "" && r.DatePublished != nil
	if paywallSuspected(r.Content, hasRichMeta, w) {
		return AccessibilityStatus{
			IsAccessible: false,
			Reason:       "The article appears to be behind a paywall; only a preview was extracted.",
			ErrorType:    ErrPaywall,
			Suggestions: []string{
				"Look for the same story on a free news source",
				"Check whether the publisher offers free registration",
			},
		}
	}

	if len(r.Content) < w.NoContentThreshold {
		return AccessibilityStatus{
			IsAccessible: false,
			Reason:       "The page yielded no meaningful article text.",
			ErrorType:    ErrNoContent,
			Suggestions: []string{
				"Verify the URL targets a full article, not a section or home page",
			},
		}
	}

	return AccessibilityStatus{
		IsAccessible: true,
		Reason:       "Full article content was extracted.",
		ErrorType:    ErrAccessible,
		Suggestions:  []string{},
	}
}

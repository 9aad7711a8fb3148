package artex

import (
	"net/url"
	"strings"
)

// Strategy is a recommended parsing approach for a domain.
type Strategy string

const (
	StrategyStructuredFirst  Strategy = "structured-first"
	StrategyTraditionalFirst Strategy = "traditional-first"
	StrategyHybrid           Strategy = "hybrid"
)

// PlatformRecommendation is advice derived purely from a URL's domain.
// It explains and tunes orchestrator behavior but never blocks it.
type PlatformRecommendation struct {
	LikelyHasStructuredData bool     `json:"likelyHasStructuredData"`
	RecommendedStrategy     Strategy `json:"recommendedStrategy"`
	Reason                  string   `json:"reason"`
}

// Major news publishers with consistently reliable Schema.org markup.
var structuredNewsDomains = []string{
	"bbc.com",
	"bbc.co.uk",
	"cnn.com",
	"nytimes.com",
	"theguardian.com",
	"reuters.com",
	"apnews.com",
	"washingtonpost.com",
	"bloomberg.com",
	"wsj.com",
	"npr.org",
	"aljazeera.com",
}

// Publishing platforms that emit structured data, with quality varying
// per author and theme.
var structuredPlatformDomains = []string{
	"medium.com",
	"substack.com",
	"dev.to",
	"hashnode.dev",
	"wordpress.com",
	"ghost.io",
	"linkedin.com",
}

// Blog hosts that historically ship little or broken structured markup.
var traditionalBlogDomains = []string{
	"blogspot.com",
	"blogger.com",
	"tumblr.com",
	"livejournal.com",
	"weebly.com",
}

// RecommendPlatform returns a strategy hint for the URL's domain.
// It is a pure lookup: no I/O, never fails, and identical input yields
// identical output. Unparseable URLs and unknown domains default to the
// hybrid strategy.
func RecommendPlatform(rawURL string) PlatformRecommendation {
	host := hostnameOf(rawURL)

	if matchDomain(host, structuredNewsDomains) {
		return PlatformRecommendation{
			LikelyHasStructuredData: true,
			RecommendedStrategy:     StrategyStructuredFirst,
			Reason:                  "major news site with reliable structured data",
		}
	}
	if matchDomain(host, structuredPlatformDomains) {
		return PlatformRecommendation{
			LikelyHasStructuredData: true,
			RecommendedStrategy:     StrategyHybrid,
			Reason:                  "publishing platform implements structured data, quality varies per article",
		}
	}
	if matchDomain(host, traditionalBlogDomains) {
		return PlatformRecommendation{
			LikelyHasStructuredData: false,
			RecommendedStrategy:     StrategyTraditionalFirst,
			Reason:                  "blog platform with historically poor structured data",
		}
	}

	return PlatformRecommendation{
		LikelyHasStructuredData: false,
		RecommendedStrategy:     StrategyHybrid,
		Reason:                  "unknown domain, hybrid parsing is the safe default",
	}
}

// Domain extracts the hostname from a URL, without the www prefix.
// Returns an empty string for unparseable input.
func Domain(rawURL string) string {
	return hostnameOf(rawURL)
}

func hostnameOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	host := strings.ToLower(u.Hostname())
	return strings.TrimPrefix(host, "www.")
}

// matchDomain reports whether host equals domain or is a subdomain of it.
func matchDomain(host string, domains []string) bool {
	for _, d := range domains {
		if host == d || strings.HasSuffix(host, "."+d) {
			return true
		}
	}
	return false
}

package hybrid

import (
	"net/url"
	"strings"
)

// sanitizeURL normalizes percent-encoding in a URL: any existing encoding
// is decoded first, then the URL is re-encoded with Go's restricted-safe
// scheme. This repairs the common case of partially or doubly encoded
// paths (non-ASCII slugs, special characters) pasted from browsers.
func sanitizeURL(rawURL string) string {
	decoded, err := url.PathUnescape(rawURL)
	if err != nil {
		decoded = rawURL
	}
	u, err := url.Parse(decoded)
	if err != nil {
		return rawURL
	}
	return u.String()
}

// strictEncodeURL aggressively percent-encodes every path segment and the
// query string. Used as the single retry after the fetcher rejects the
// sanitized URL with an encoding error.
//
// The input is the URL that just failed to parse, so this works on the
// raw text: the authority is split off positionally and each remaining
// byte run is escaped as-is. Stray percent signs become %25, which is the
// whole point of the retry.
func strictEncodeURL(rawURL string) string {
	prefix, rest := splitAuthority(rawURL)

	path := rest
	var query string
	if idx := strings.Index(rest, "?"); idx >= 0 {
		path, query = rest[:idx], rest[idx+1:]
	}

	segments := strings.Split(path, "/")
	for i, seg := range segments {
		segments[i] = url.PathEscape(seg)
	}

	var b strings.Builder
	b.WriteString(prefix)
	b.WriteString(strings.Join(segments, "/"))
	if query != "" {
		b.WriteString("?")
		b.WriteString(encodeQuery(query))
	}
	return b.String()
}

// splitAuthority cuts "scheme://host" off the front of a raw URL so path
// re-encoding never touches the authority.
func splitAuthority(rawURL string) (prefix, rest string) {
	start := 0
	if idx := strings.Index(rawURL, "://"); idx >= 0 {
		start = idx + 3
	}
	if idx := strings.IndexAny(rawURL[start:], "/?"); idx >= 0 {
		return rawURL[:start+idx], rawURL[start+idx:]
	}
	return rawURL, ""
}

// encodeQuery re-encodes each key=value pair of a raw query string,
// preserving the pair structure.
func encodeQuery(rawQuery string) string {
	pairs := strings.Split(rawQuery, "&")
	for i, pair := range pairs {
		key, value, found := strings.Cut(pair, "=")
		if found {
			pairs[i] = url.QueryEscape(key) + "=" + url.QueryEscape(value)
		} else {
			pairs[i] = url.QueryEscape(key)
		}
	}
	return strings.Join(pairs, "&")
}

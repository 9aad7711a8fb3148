package hybrid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "https://example.com/story", "https://example.com/story"},
		{"encodes spaces", "https://example.com/a b", "https://example.com/a%20b"},
		{"collapses double encoding", "https://example.com/a%2520b", "https://example.com/a%20b"},
		{"keeps single encoding", "https://example.com/a%20b", "https://example.com/a%20b"},
		{"encodes non-ascii", "https://example.com/café", "https://example.com/caf%C3%A9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, sanitizeURL(tt.in))
		})
	}
}

func TestStrictEncodeURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "https://example.com/story", "https://example.com/story"},
		{"escapes segment", "https://example.com/a b,c", "https://example.com/a%20b%2Cc"},
		{"re-encodes query", "https://example.com/s?q=a b", "https://example.com/s?q=a+b"},
		{"repairs stray percent", "https://example.com/sale/50% off", "https://example.com/sale/50%25%20off"},
		{"repairs stray percent in query", "https://example.com/s?q=50% off", "https://example.com/s?q=50%25+off"},
		{"host untouched", "https://example.com", "https://example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, strictEncodeURL(tt.in))
		})
	}
}

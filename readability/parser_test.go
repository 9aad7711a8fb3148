package readability_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/artex"
	"github.com/fwojciec/artex/readability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func articleHTML() string {
	para := strings.Repeat("The quick brown fox jumps over the lazy dog. ", 20)
	return `<!DOCTYPE html>
<html>
<head><title>Fox Chronicles</title></head>
<body>
<nav><a href="/">Home</a><a href="/about">About</a></nav>
<article>
<h1>Fox Chronicles</h1>
<p>` + para + `</p>
<p>` + para + `</p>
<p>` + para + `</p>
</article>
<footer>Copyright</footer>
</body>
</html>`
}

func TestParser_ParseContent(t *testing.T) {
	t.Parallel()

	p := readability.NewParser()
	content, err := p.ParseContent(articleHTML(), "https://example.com/foxes")

	require.NoError(t, err)
	assert.Equal(t, "Fox Chronicles", content.Title)
	assert.Contains(t, content.ContentText, "quick brown fox")
	assert.NotContains(t, content.ContentText, "Copyright")
	assert.NotEmpty(t, content.ContentHTML)
	assert.Equal(t, len(strings.Fields(content.ContentText)), content.WordCount)
}

func TestParser_EmptyInput(t *testing.T) {
	t.Parallel()

	p := readability.NewParser()
	_, err := p.ParseContent("", "https://example.com/foxes")

	require.Error(t, err)
	assert.Equal(t, artex.EINVALID, artex.ErrorCode(err))
}

func TestParser_InvalidURL(t *testing.T) {
	t.Parallel()

	p := readability.NewParser()
	_, err := p.ParseContent(articleHTML(), "http://exa mple.com/\x7f")

	require.Error(t, err)
	assert.Equal(t, artex.EINVALID, artex.ErrorCode(err))
}

func TestParser_NoContent(t *testing.T) {
	t.Parallel()

	p := readability.NewParser()
	_, err := p.ParseContent("<html><head></head><body></body></html>", "https://example.com/empty")

	require.Error(t, err)
	assert.Equal(t, artex.ENOCONTENT, artex.ErrorCode(err))
}

func TestParser_DecodesEntities(t *testing.T) {
	t.Parallel()

	para := strings.Repeat("Ampersands &amp; angle brackets are decoded. ", 20)
	html := `<html><head><title>Q&amp;A Session</title></head><body><article><p>` +
		para + `</p></article></body></html>`

	p := readability.NewParser()
	content, err := p.ParseContent(html, "https://example.com/qa")

	require.NoError(t, err)
	assert.Equal(t, "Q&A Session", content.Title)
	assert.Contains(t, content.ContentText, "Ampersands & angle brackets")
}

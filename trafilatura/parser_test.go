package trafilatura_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/artex"
	"github.com/fwojciec/artex/trafilatura"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func articleHTML() string {
	para := strings.Repeat("The quick brown fox jumps over the lazy dog. ", 20)
	return `<!DOCTYPE html>
<html>
<head>
<title>Fox Chronicles</title>
<meta name="author" content="Jane Doe">
</head>
<body>
<article>
<h1>Fox Chronicles</h1>
<p>` + para + `</p>
<p>` + para + `</p>
<p>` + para + `</p>
</article>
</body>
</html>`
}

func TestParser_ParseContent(t *testing.T) {
	t.Parallel()

	p := trafilatura.NewParser()
	content, err := p.ParseContent(articleHTML(), "https://example.com/foxes")

	require.NoError(t, err)
	assert.Contains(t, content.ContentText, "quick brown fox")
	assert.Equal(t, len(strings.Fields(content.ContentText)), content.WordCount)
}

func TestParser_EmptyInput(t *testing.T) {
	t.Parallel()

	p := trafilatura.NewParser()
	_, err := p.ParseContent("", "https://example.com/foxes")

	require.Error(t, err)
	assert.Equal(t, artex.EINVALID, artex.ErrorCode(err))
}

func TestParser_InvalidURL(t *testing.T) {
	t.Parallel()

	p := trafilatura.NewParser()
	_, err := p.ParseContent(articleHTML(), "http://example.com/\x7f")

	require.Error(t, err)
	assert.Equal(t, artex.EINVALID, artex.ErrorCode(err))
}

func TestParser_NoContent(t *testing.T) {
	t.Parallel()

	p := trafilatura.NewParser()
	_, err := p.ParseContent("<html><head></head><body></body></html>", "https://example.com/empty")

	require.Error(t, err)
	assert.Equal(t, artex.ENOCONTENT, artex.ErrorCode(err))
}

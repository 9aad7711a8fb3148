package artex_test

import (
	"testing"
	"time"

	"github.com/fwojciec/artex"
	"github.com/stretchr/testify/assert"
)

func TestStructuredArticle_Merge_PopulatedFieldsWin(t *testing.T) {
	t.Parallel()

	a := &artex.StructuredArticle{
		Headline: "JSON-LD Headline",
		Authors:  []artex.Author{{Name: "Jane Doe"}},
	}
	other := &artex.StructuredArticle{
		Headline:    "OG Headline",
		Description: "An OG description",
		Authors:     []artex.Author{{Name: "Someone Else"}},
	}

	a.Merge(other)

	assert.Equal(t, "JSON-LD Headline", a.Headline)
	assert.Equal(t, "An OG description", a.Description)
	assert.Equal(t, []artex.Author{{Name: "Jane Doe"}}, a.Authors)
}

func TestStructuredArticle_Merge_FillsEmptyFields(t *testing.T) {
	t.Parallel()

	published := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	a := &artex.StructuredArticle{}
	a.Merge(&artex.StructuredArticle{
		Headline:      "A Headline",
		DatePublished: published,
		Images:        []string{"https://example.com/lead.jpg"},
		Publisher:     "Example News",
	})

	assert.Equal(t, "A Headline", a.Headline)
	assert.Equal(t, published, a.DatePublished)
	assert.Equal(t, []string{"https://example.com/lead.jpg"}, a.Images)
	assert.Equal(t, "Example News", a.Publisher)
}

func TestStructuredArticle_BestText(t *testing.T) {
	t.Parallel()

	withBody := &artex.StructuredArticle{ArticleBody: "full body", Description: "desc"}
	assert.Equal(t, "full body", withBody.BestText())
	assert.True(t, withBody.HasBody())

	descOnly := &artex.StructuredArticle{Description: "desc"}
	assert.Equal(t, "desc", descOnly.BestText())
	assert.False(t, descOnly.HasBody())
}

func TestStructuredArticle_IsEmpty(t *testing.T) {
	t.Parallel()

	assert.True(t, (&artex.StructuredArticle{}).IsEmpty())
	assert.False(t, (&artex.StructuredArticle{
		Headline: "x",
		Methods:  []artex.ExtractionMethod{artex.MethodOpenGraph},
	}).IsEmpty())
}

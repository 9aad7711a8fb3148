package artex_test

import (
	"strings"
	"testing"
	"time"

	"github.com/fwojciec/artex"
	"github.com/stretchr/testify/assert"
)

func TestScoreStructured_FullRecordRecommendsStructured(t *testing.T) {
	t.Parallel()

	a := &artex.StructuredArticle{
		Headline:      "A Headline",
		ArticleBody:   strings.Repeat("word ", 300),
		Description:   "A description",
		Authors:       []artex.Author{{Name: "Jane Doe"}},
		DatePublished: time.Now(),
		Images:        []string{"https://example.com/img.jpg"},
		Publisher:     "Example News",
	}

	score := artex.ScoreStructured(a, artex.DefaultWeights())

	assert.Equal(t, artex.RecommendUseStructured, score.Recommendation)
	assert.GreaterOrEqual(t, score.Score, 70)
	assert.LessOrEqual(t, score.Score, 100)
}

func TestScoreStructured_NoBodyCapsBelowStructuredThreshold(t *testing.T) {
	t.Parallel()

	// Every field present except articleBody; without full text the record
	// cannot stand alone regardless of metadata richness.
	a := &artex.StructuredArticle{
		Headline:      "A Headline",
		Description:   "A description",
		Authors:       []artex.Author{{Name: "Jane Doe"}},
		DatePublished: time.Now(),
		Images:        []string{"https://example.com/img.jpg"},
		Publisher:     "Example News",
	}

	w := artex.DefaultWeights()
	score := artex.ScoreStructured(a, w)

	assert.Less(t, score.Score, w.UseStructuredThreshold)
	assert.NotEqual(t, artex.RecommendUseStructured, score.Recommendation)
}

func TestScoreStructured_EmptyRecordRecommendsTraditional(t *testing.T) {
	t.Parallel()

	score := artex.ScoreStructured(&artex.StructuredArticle{}, artex.DefaultWeights())

	assert.Equal(t, 0, score.Score)
	assert.Equal(t, artex.RecommendUseTraditional, score.Recommendation)
}

func TestScoreStructured_NilRecord(t *testing.T) {
	t.Parallel()

	score := artex.ScoreStructured(nil, artex.DefaultWeights())

	assert.Equal(t, 0, score.Score)
	assert.Equal(t, artex.RecommendUseTraditional, score.Recommendation)
}

func TestConfidenceFor_Bounds(t *testing.T) {
	t.Parallel()

	now := time.Now()
	results := []*artex.Result{
		{},
		{Title: "t"},
		{
			Title:          "Everything Present",
			Content:        strings.Repeat("x", 5000),
			Author:         "Jane Doe",
			DatePublished:  &now,
			Excerpt:        "excerpt",
			LeadImageURL:   "https://example.com/img.jpg",
			HasFullContent: true,
			Meta: artex.ResultMeta{
				Keywords:  []string{"news"},
				Publisher: "Example News",
			},
		},
	}

	for _, r := range results {
		c := artex.ConfidenceFor(r, artex.DefaultWeights())
		assert.GreaterOrEqual(t, c, 0)
		assert.LessOrEqual(t, c, 100)
	}
}

func TestConfidenceFor_ContentTiersAreTunable(t *testing.T) {
	t.Parallel()

	r := &artex.Result{
		Title:          "Story",
		Content:        strings.Repeat("x", 600),
		HasFullContent: true,
	}

	w := artex.DefaultWeights()
	base := artex.ConfidenceFor(r, w)

	// Tightening the top tier onto this length must raise the score.
	w.ContentTiers = []artex.ContentTier{{MinLength: 500, Points: 40}}
	assert.Greater(t, artex.ConfidenceFor(r, w), base)

	// With no tier matched, only the base award applies.
	w.ContentTiers = []artex.ContentTier{{MinLength: 10000, Points: 40}}
	w.ContentBase = 0
	assert.Less(t, artex.ConfidenceFor(r, w), base)
}

func TestConfidenceFor_ShortFullContentScoresLower(t *testing.T) {
	t.Parallel()

	long := &artex.Result{
		Title:          "Same Title",
		Content:        strings.Repeat("x", 1500),
		HasFullContent: true,
	}
	short := &artex.Result{
		Title:          "Same Title",
		Content:        strings.Repeat("x", 250),
		HasFullContent: true,
	}

	w := artex.DefaultWeights()
	assert.Less(t, artex.ConfidenceFor(short, w), artex.ConfidenceFor(long, w))
}

func TestConfidenceFor_PartialContentPenalty(t *testing.T) {
	t.Parallel()

	full := &artex.Result{
		Title:          "Same Title",
		Content:        strings.Repeat("x", 600),
		HasFullContent: true,
	}
	partial := &artex.Result{
		Title:          "Same Title",
		Content:        strings.Repeat("x", 600),
		HasFullContent: false,
	}

	w := artex.DefaultWeights()
	assert.Less(t, artex.ConfidenceFor(partial, w), artex.ConfidenceFor(full, w))
}

func TestConfidenceFor_PaywallWithRichMetadataGetsFloor(t *testing.T) {
	t.Parallel()

	now := time.Now()
	r := &artex.Result{
		Title:         "Exclusive Story",
		Content:       "Subscribe to continue reading this exclusive story.",
		Author:        "Jane Doe",
		DatePublished: &now,
	}

	c := artex.ConfidenceFor(r, artex.DefaultWeights())
	assert.GreaterOrEqual(t, c, 65)
}

func TestConfidenceFor_PaywallWithoutMetadataGetsNoFloor(t *testing.T) {
	t.Parallel()

	r := &artex.Result{
		Title:   "Exclusive Story",
		Content: "Subscribe to continue reading this exclusive story.",
	}

	c := artex.ConfidenceFor(r, artex.DefaultWeights())
	assert.Less(t, c, 65)
}

func TestDefaultWeights_PaywallFloorBelowStructuredCap(t *testing.T) {
	t.Parallel()

	w := artex.DefaultWeights()
	assert.Less(t, w.NoBodyCap, w.UseStructuredThreshold)
	assert.Less(t, w.HybridThreshold, w.UseStructuredThreshold)
}

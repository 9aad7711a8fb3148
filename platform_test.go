package artex_test

import (
	"testing"

	"github.com/fwojciec/artex"
	"github.com/stretchr/testify/assert"
)

func TestRecommendPlatform_MajorNewsSite(t *testing.T) {
	t.Parallel()

	rec := artex.RecommendPlatform("https://www.bbc.com/news/world-123")

	assert.True(t, rec.LikelyHasStructuredData)
	assert.Equal(t, artex.StrategyStructuredFirst, rec.RecommendedStrategy)
}

func TestRecommendPlatform_PublishingPlatform(t *testing.T) {
	t.Parallel()

	rec := artex.RecommendPlatform("https://medium.com/@writer/a-post-123")

	assert.True(t, rec.LikelyHasStructuredData)
	assert.Equal(t, artex.StrategyHybrid, rec.RecommendedStrategy)
}

func TestRecommendPlatform_BlogHost(t *testing.T) {
	t.Parallel()

	rec := artex.RecommendPlatform("https://someone.blogspot.com/2024/03/post.html")

	assert.False(t, rec.LikelyHasStructuredData)
	assert.Equal(t, artex.StrategyTraditionalFirst, rec.RecommendedStrategy)
}

func TestRecommendPlatform_UnknownDomainDefaultsToHybrid(t *testing.T) {
	t.Parallel()

	rec := artex.RecommendPlatform("https://example-unknown-site.org/article")

	assert.Equal(t, artex.StrategyHybrid, rec.RecommendedStrategy)
}

func TestRecommendPlatform_Subdomain(t *testing.T) {
	t.Parallel()

	rec := artex.RecommendPlatform("https://edition.cnn.com/2024/politics/story")

	assert.Equal(t, artex.StrategyStructuredFirst, rec.RecommendedStrategy)
}

func TestRecommendPlatform_Idempotent(t *testing.T) {
	t.Parallel()

	url := "https://www.theguardian.com/world/article"
	assert.Equal(t, artex.RecommendPlatform(url), artex.RecommendPlatform(url))
}

func TestRecommendPlatform_UnparseableURL(t *testing.T) {
	t.Parallel()

	rec := artex.RecommendPlatform("://not a url")

	assert.Equal(t, artex.StrategyHybrid, rec.RecommendedStrategy)
	assert.False(t, rec.LikelyHasStructuredData)
}

func TestDomain(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "bbc.com", artex.Domain("https://www.bbc.com/news/x"))
	assert.Equal(t, "edition.cnn.com", artex.Domain("https://edition.cnn.com/story"))
	assert.Equal(t, "", artex.Domain("://not a url"))
}

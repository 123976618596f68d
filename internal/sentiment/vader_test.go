package sentiment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertMarkdownToText(t *testing.T) {
	in := "**Great** support, see [the docs](https://example.com/docs) or https://example.com"
	assert.Equal(t, "Great support, see the docs or", ConvertMarkdownToText(in))
}

func TestAnalyzeWithVADER(t *testing.T) {
	score, label := AnalyzeWithVADER("I love this product, it is great!")
	assert.Greater(t, score, POSITIVE_THRESHOLD)
	assert.Equal(t, "positive", label)

	score, label = AnalyzeWithVADER("Terrible service, I hate it.")
	assert.Less(t, score, NEGATIVE_THRESHOLD)
	assert.Equal(t, "negative", label)
}

func TestLabelThresholds(t *testing.T) {
	assert.Equal(t, "positive", Label(0.2))
	assert.Equal(t, "negative", Label(-0.2))
	assert.Equal(t, "neutral", Label(0.19))
}

func TestSummarize(t *testing.T) {
	result := Summarize([]string{
		"The pricing is great",
		"Pricing is terrible and support is slow",
		"Shipping arrived",
	})

	require.Len(t, result.Comments, 3)
	assert.Equal(t, "The pricing is great", *result.Comments[0].Text)
	assert.Equal(t, "positive", *result.Comments[0].Sentiment)
	assert.Equal(t, "negative", *result.Comments[1].Sentiment)

	d := result.SentimentDistribution
	require.NotNil(t, d)
	assert.InDelta(t, 100, *d.Positive+*d.Negative+*d.Neutral, 0.5)
	assert.Equal(t, "pricing", result.Themes[0])
	require.NotNil(t, result.Explanation)
	assert.Contains(t, *result.Explanation, "Analyzed 3 comment(s)")
	require.NotNil(t, result.VaderScore)
	require.NotNil(t, result.DistilbertConfidence)
	assert.GreaterOrEqual(t, *result.DistilbertConfidence, 0.5)
}

func TestSummarizeEmpty(t *testing.T) {
	result := Summarize(nil)
	assert.NotNil(t, result.Themes)
	assert.Nil(t, result.SentimentDistribution)
	assert.Nil(t, result.VaderScore)
	assert.NotNil(t, result.Comments)
	assert.Empty(t, result.Comments)
}

func TestThemesCountsOncePerComment(t *testing.T) {
	themes := Themes([]string{"delivery delivery delivery", "pricing", "pricing refund"}, 2)
	assert.Equal(t, []string{"pricing", "delivery"}, themes)
}

func TestConvertMarkdownKeepsApostrophes(t *testing.T) {
	assert.Equal(t, "I don't like it & it's slow", ConvertMarkdownToText("I don't like it & it's slow"))
}

func TestCleanOpenAIResponse(t *testing.T) {
	assert.Equal(t, `{"themes":[]}`, cleanOpenAIResponse("```json\n{\"themes\":[]}\n```"))
	assert.Equal(t, `{"themes":[]}`, cleanOpenAIResponse("```\n{\"themes\":[]}```"))
	assert.Equal(t, `{"a":"“quoted”"}`, cleanOpenAIResponse(`  {"a":"“quoted”"}  `))
}

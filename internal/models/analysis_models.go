package models

// AnalysisResult is the body returned by the sentiment endpoint on success.
// Field names follow the endpoint, not Go conventions, because the frontend
// labels (VADER, DistilBERT) are what users recognise.
//
// Every field is optional: a nil pointer or slice means the endpoint left
// the field out, and nothing downstream fills it in.
type AnalysisResult struct {
	SentimentDistribution *SentimentDistribution `json:"sentiment_distribution,omitempty"`
	VaderScore            *float64               `json:"vader_score,omitempty"`
	DistilbertConfidence  *float64               `json:"distilbert_confidence,omitempty"`
	Themes                []string               `json:"themes"`
	Explanation           *string                `json:"explanation,omitempty"`
	Comments              []CommentAnalysis      `json:"comments,omitempty"`
}

// Percentages as sent by the server. They are not guaranteed to sum to 100.
type SentimentDistribution struct {
	Positive *float64 `json:"positive,omitempty"`
	Negative *float64 `json:"negative,omitempty"`
	Neutral  *float64 `json:"neutral,omitempty"`
}

type CommentAnalysis struct {
	Text       *string  `json:"text,omitempty"`
	Sentiment  *string  `json:"sentiment,omitempty"`
	Vader      *float64 `json:"vader,omitempty"`
	Distilbert *float64 `json:"distilbert,omitempty"`
}

type CommentsRequest struct {
	Comments []string `json:"comments"`
}

// Float returns a pointer to v.
func Float(v float64) *float64 { return &v }

// String returns a pointer to s.
func String(s string) *string { return &s }

// OpenAIInsightResponse is the JSON object the dev server asks OpenAI for.
type OpenAIInsightResponse struct {
	Themes      []string `json:"themes"`
	Explanation string   `json:"explanation"`
}

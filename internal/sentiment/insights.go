package sentiment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/openai/openai-go"
	"github.com/spacesedan/sentiment-analyzer/internal/clients"
	"github.com/spacesedan/sentiment-analyzer/internal/models"
)

const MAX_INSIGHT_COMMENTS = 200

const openAIPrompt = `You are given customer comments as a JSON array of strings.
Identify the recurring **themes** and write a short **explanation** of the overall sentiment.

### **STRICT OUTPUT FORMAT**
You MUST return only **valid JSON**, formatted exactly as follows:
{
  "themes": ["XXX", "XXX"],
  "explanation": "XXX"
}

### **REQUIREMENTS**
- At most 5 themes, each one to three lowercase words.
- The explanation is two to four plain sentences.
- **No Markdown formatting** (no triple backticks, no explanations).
- **No extra text before or after the JSON output**.
`

var errEmptyInsight = errors.New("openai returned no themes or explanation")

// GenerateInsights asks OpenAI for themes and an explanation covering
// comments. Only the first MAX_INSIGHT_COMMENTS comments are sent.
func GenerateInsights(ctx context.Context, ai *clients.OpenAIClient, comments []string) (*models.OpenAIInsightResponse, error) {
	if len(comments) > MAX_INSIGHT_COMMENTS {
		comments = comments[:MAX_INSIGHT_COMMENTS]
	}
	batch, err := json.Marshal(comments)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal comments: %w", err)
	}

	chatCompletion, err := ai.Client.Chat.Completions.New(ctx,
		openai.ChatCompletionNewParams{
			Messages: openai.F([]openai.ChatCompletionMessageParamUnion{
				openai.SystemMessage(openAIPrompt),
				openai.UserMessage(string(batch)),
			}),
			Model:       openai.F(openai.ChatModel(ai.Model)),
			Temperature: openai.Float(0.3),
		})
	if err != nil {
		return nil, fmt.Errorf("openai chat completion failed: %w", err)
	}
	if len(chatCompletion.Choices) == 0 {
		return nil, errEmptyInsight
	}

	raw := cleanOpenAIResponse(chatCompletion.Choices[0].Message.Content)
	var insight models.OpenAIInsightResponse
	if err := json.Unmarshal([]byte(raw), &insight); err != nil {
		slog.Warn("[Insights] Failed to parse OpenAI response",
			clients.GetPreview([]byte(raw)),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to parse openai response: %w", err)
	}
	if len(insight.Themes) == 0 && strings.TrimSpace(insight.Explanation) == "" {
		return nil, errEmptyInsight
	}
	if len(insight.Themes) > MAX_THEMES {
		insight.Themes = insight.Themes[:MAX_THEMES]
	}
	if insight.Themes == nil {
		insight.Themes = []string{}
	}

	return &insight, nil
}

func cleanOpenAIResponse(response string) string {
	response = strings.TrimSpace(response)
	response = strings.TrimPrefix(response, "```json")
	response = strings.TrimPrefix(response, "```")
	response = strings.TrimSuffix(response, "```")
	return strings.TrimSpace(response)
}

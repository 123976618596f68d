package sentiment

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"unicode"

	"github.com/spacesedan/sentiment-analyzer/internal/models"
)

const MAX_THEMES = 5

var stopWords = map[string]struct{}{}

func init() {
	for _, w := range strings.Fields(`a about above after again all also am an and any are as at be because been
		before being below between both but by can could did do does doing down during each few for from
		further had has have having he her here hers him his how i if in into is it its itself just me more
		most my no nor not now of off on once only or other our ours out over own really same she should so
		some such than that the their theirs them then there these they this those through to too under
		until up very was we were what when where which while who whom why will with would you your yours
		get got im ive dont didnt cant wont isnt wasnt thing things much many one`) {
		stopWords[w] = struct{}{}
	}
}

// Summarize scores every comment and rolls the scores up into the shape the
// client expects. The distribution is rounded per bucket, so it may not sum
// to exactly 100.
func Summarize(comments []string) models.AnalysisResult {
	result := models.AnalysisResult{
		Themes:   []string{},
		Comments: make([]models.CommentAnalysis, 0, len(comments)),
	}
	if len(comments) == 0 {
		result.Explanation = models.String("No comments were provided.")
		return result
	}

	var sum, confidence float64
	counts := map[string]int{}
	for _, text := range comments {
		score, label := AnalyzeWithVADER(text)
		conf := Confidence(score)
		sum += score
		confidence += conf
		counts[label]++

		result.Comments = append(result.Comments, models.CommentAnalysis{
			Text:       models.String(text),
			Sentiment:  models.String(label),
			Vader:      models.Float(round(score, 4)),
			Distilbert: models.Float(round(conf, 4)),
		})
	}

	n := float64(len(comments))
	avg := round(sum/n, 4)
	result.SentimentDistribution = &models.SentimentDistribution{
		Positive: models.Float(round(100*float64(counts["positive"])/n, 1)),
		Negative: models.Float(round(100*float64(counts["negative"])/n, 1)),
		Neutral:  models.Float(round(100*float64(counts["neutral"])/n, 1)),
	}
	result.VaderScore = models.Float(avg)
	result.DistilbertConfidence = models.Float(round(confidence/n, 4))
	result.Themes = Themes(comments, MAX_THEMES)
	result.Explanation = models.String(explain(len(comments), counts, avg, result.Themes))

	return result
}

// Confidence maps a compound score to [0.5, 1]: the further from neutral,
// the more certain the label. It stands in for the DistilBERT confidence the
// real service reports and is not model output.
func Confidence(score float64) float64 {
	return 0.5 + math.Abs(score)/2
}

// Themes returns the most frequent content words across comments, counting
// each word at most once per comment. Ties break alphabetically.
func Themes(comments []string, limit int) []string {
	freq := map[string]int{}
	for _, c := range comments {
		seen := map[string]bool{}
		for _, w := range tokenize(ConvertMarkdownToText(c)) {
			if seen[w] {
				continue
			}
			seen[w] = true
			freq[w]++
		}
	}

	words := make([]string, 0, len(freq))
	for w := range freq {
		words = append(words, w)
	}
	sort.Slice(words, func(i, j int) bool {
		if freq[words[i]] != freq[words[j]] {
			return freq[words[i]] > freq[words[j]]
		}
		return words[i] < words[j]
	})

	if len(words) > limit {
		words = words[:limit]
	}
	return words
}

func tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && r != '\''
	})
	out := fields[:0]
	for _, f := range fields {
		f = strings.ReplaceAll(f, "'", "")
		if len([]rune(f)) < 3 {
			continue
		}
		if _, stop := stopWords[f]; stop {
			continue
		}
		out = append(out, f)
	}
	return out
}

func explain(total int, counts map[string]int, avg float64, themes []string) string {
	overall := Label(avg)
	var b strings.Builder
	fmt.Fprintf(&b, "Analyzed %d comment(s): %d positive, %d negative, %d neutral.\n",
		total, counts["positive"], counts["negative"], counts["neutral"])
	fmt.Fprintf(&b, "Average VADER compound score is %.2f, which reads as %s overall.", avg, overall)
	if len(themes) > 0 {
		fmt.Fprintf(&b, "\nRecurring topics: %s.", strings.Join(themes, ", "))
	}
	return b.String()
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}

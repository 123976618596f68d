// Package render draws controller state for the terminal. It makes no
// decisions: whatever the snapshot holds is shown as is.
package render

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spacesedan/sentiment-analyzer/internal/models"
	"github.com/spacesedan/sentiment-analyzer/internal/submission"
)

const (
	TITLE            = "Sentiment & Theme Analyzer"
	SUBTITLE         = "Upload a CSV file or enter comments manually to analyze customer sentiment and extract insights."
	LOADING_TEXT     = "Analyzing..."
	maxCommentLength = 40
)

// Tabs draws the input mode toggle with the active mode highlighted.
func Tabs(mode submission.InputMode) string {
	file, manual := inactiveTabStyle, inactiveTabStyle
	if mode == submission.ModeManual {
		manual = activeTabStyle
	} else {
		file = activeTabStyle
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		file.Render("Upload File"),
		" ",
		manual.Render("Enter Comments"),
	)
}

// Status is the line under the input: loading text, the error, or nothing.
func Status(snap submission.Snapshot) string {
	switch {
	case snap.Loading():
		return LOADING_TEXT
	case snap.Error != "":
		return errorStyle.Render(snap.Error)
	default:
		return ""
	}
}

// Result renders an analysis result. It returns "" for a nil result. Fields
// the endpoint omitted render as blanks; no value is made up for them.
func Result(result *models.AnalysisResult) string {
	if result == nil {
		return ""
	}

	var b strings.Builder

	b.WriteString(headingStyle.Render("Sentiment Distribution"))
	b.WriteString("\n")
	var dist models.SentimentDistribution
	if result.SentimentDistribution != nil {
		dist = *result.SentimentDistribution
	}
	b.WriteString(Distribution(dist))
	b.WriteString("\n")

	scores := lipgloss.JoinHorizontal(lipgloss.Top,
		panelStyle.Render("VADER Score\n"+vaderStyle.Render(optionalNumber(result.VaderScore))),
		" ",
		panelStyle.Render("DistilBERT Confidence\n"+confidenceStyle.Render(optionalNumber(result.DistilbertConfidence))),
	)
	b.WriteString(scores)
	b.WriteString("\n")

	b.WriteString(headingStyle.Render("Themes Identified"))
	b.WriteString("\n")
	for _, theme := range result.Themes {
		b.WriteString("  • ")
		b.WriteString(theme)
		b.WriteString("\n")
	}

	b.WriteString(headingStyle.Render("Detailed Explanation"))
	b.WriteString("\n")
	b.WriteString(optionalString(result.Explanation))
	b.WriteString("\n")

	if result.Comments != nil {
		b.WriteString(headingStyle.Render("Comments & Sentiments"))
		b.WriteString("\n")
		b.WriteString(CommentsTable(result.Comments))
		b.WriteString("\n")
	}

	return b.String()
}

func Distribution(d models.SentimentDistribution) string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		positiveStyle.Render("Positive: "+optionalNumber(d.Positive)+"%"),
		"   ",
		negativeStyle.Render("Negative: "+optionalNumber(d.Negative)+"%"),
		"   ",
		neutralStyle.Render("Neutral: "+optionalNumber(d.Neutral)+"%"),
	)
}

func CommentsTable(comments []models.CommentAnalysis) string {
	rows := make([][]string, 0, len(comments))
	for _, c := range comments {
		rows = append(rows, []string{
			truncate(optionalString(c.Text), maxCommentLength),
			optionalString(c.Sentiment),
			optionalNumber(c.Vader),
			optionalNumber(c.Distilbert),
		})
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorBorder)).
		Headers("Comment", "Sentiment", "VADER", "DistilBERT").
		Rows(rows...).
		String()
}

// FormatNumber prints a float the shortest way that round-trips, so 60
// stays "60" and 0.42 stays "0.42".
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func optionalNumber(v *float64) string {
	if v == nil {
		return ""
	}
	return FormatNumber(*v)
}

func optionalString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}

package render

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

var (
	buttonStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffffff")).
			Background(lipgloss.Color("#2563eb")).
			Padding(0, 3)

	disabledButtonStyle = lipgloss.NewStyle().
				Foreground(colorDim).
				Background(colorPanel).
				Padding(0, 3)
)

func TitleBlock() string {
	return titleStyle.Render(TITLE) + "\n" + subtitleStyle.Render(SUBTITLE)
}

func Button(label string, enabled bool) string {
	if !enabled {
		return disabledButtonStyle.Render(label)
	}
	return buttonStyle.Render(label)
}

func StagedFile(name string, size int64) string {
	return subtitleStyle.Render(fmt.Sprintf("Selected: %s (%s)", name, HumanSize(size)))
}

// Problem is a local, pre-submit message such as an unreadable file.
func Problem(msg string) string {
	return errorStyle.Render(msg)
}

func HumanSize(n int64) string {
	if n < 0 {
		n = 0
	}
	return humanize.Bytes(uint64(n))
}

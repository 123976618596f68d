package render

import "github.com/charmbracelet/lipgloss"

var (
	colorBlue   = lipgloss.Color("#93c5fd")
	colorRed    = lipgloss.Color("#fca5a5")
	colorGreen  = lipgloss.Color("#86efac")
	colorGray   = lipgloss.Color("#d1d5db")
	colorDim    = lipgloss.Color("#9ca3af")
	colorBorder = lipgloss.Color("#444654")
	colorPanel  = lipgloss.Color("#343541")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffffff"))

	subtitleStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	headingStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorGray).
			MarginTop(1)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)

	positiveStyle = lipgloss.NewStyle().
			Foreground(colorBlue).
			Bold(true)

	negativeStyle = lipgloss.NewStyle().
			Foreground(colorRed).
			Bold(true)

	neutralStyle = lipgloss.NewStyle().
			Foreground(colorGray).
			Bold(true)

	vaderStyle = lipgloss.NewStyle().
			Foreground(colorBlue)

	confidenceStyle = lipgloss.NewStyle().
			Foreground(colorGreen)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorRed)

	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffffff")).
			Background(colorPanel).
			Padding(0, 1)

	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(colorDim).
				Padding(0, 1)
)

package output

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette. Named constants for all ANSI colors used in the CLI.
// Never use inline lipgloss.Color literals outside this file.
var (
	// ColorCyan is used for identifiable nouns: paths, package names, module ids.
	ColorCyan = lipgloss.Color("14")

	// colorGreen is used for the "done" step status.
	colorGreen = lipgloss.Color("82")

	// ColorYellow is used for the "skipped" step status.
	ColorYellow = lipgloss.Color("220")

	// colorBoldRed is used for the "failed" step status (matches ERROR level).
	colorBoldRed = lipgloss.Color("204")

	// ColorGreenCheck is used for the completion checkmark.
	ColorGreenCheck = lipgloss.Color("10")

	// ColorDimGray is used for borders and other structural chrome.
	ColorDimGray = lipgloss.Color("240")
)

// moduleColors maps catalog display colors to ANSI colors.
var moduleColors = map[string]lipgloss.Color{
	"gray":    lipgloss.Color("8"),
	"red":     lipgloss.Color("9"),
	"green":   lipgloss.Color("10"),
	"yellow":  lipgloss.Color("11"),
	"blue":    lipgloss.Color("12"),
	"magenta": lipgloss.Color("13"),
	"cyan":    lipgloss.Color("14"),
}

// Semantic styles. Map domain concepts to visual presentation.
var (
	// StyleNoun styles identifiable nouns (paths, package names, module ids).
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleAction styles action verbs (copying, installing, updating).
	StyleAction = lipgloss.NewStyle().Bold(true)

	// StyleDim styles structural chrome (prefixes, separators, hints).
	StyleDim = lipgloss.NewStyle().Faint(true)

	// StyleSummary styles completion and summary lines.
	StyleSummary = lipgloss.NewStyle().Bold(true)
)

// Step status constants.
const (
	StatusDone    = "done"
	StatusSkipped = "skipped"
	StatusFailed  = "failed"
)

// statusStyle returns the lipgloss style for a given step status string.
// Unknown statuses return an unstyled default.
func statusStyle(status string) lipgloss.Style {
	switch status {
	case StatusDone:
		return lipgloss.NewStyle().Foreground(colorGreen)
	case StatusSkipped:
		return lipgloss.NewStyle().Foreground(ColorYellow)
	case StatusFailed:
		return lipgloss.NewStyle().Bold(true).Foreground(colorBoldRed)
	default:
		return lipgloss.NewStyle()
	}
}

// minStepColumnWidth is the minimum width of the step title column
// before the status suffix.
const minStepColumnWidth = 36

// FormatStepLine renders a pipeline step title with a right-aligned,
// color-coded status suffix.
func FormatStepLine(title, status string) string {
	padding := minStepColumnWidth - len(title)
	if padding < 2 {
		padding = 2
	}
	return StyleAction.Render(title) + strings.Repeat(" ", padding) + statusStyle(status).Render(status)
}

// ModuleStyle returns the style for a catalog display color name.
// Unknown names return an unstyled default.
func ModuleStyle(color string) lipgloss.Style {
	c, ok := moduleColors[color]
	if !ok {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().Foreground(c)
}

// FormatCheckmark renders a green checkmark with a message for stdout output.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(ColorGreenCheck).Render("✔")
	return check + " " + msg
}

// FormatNote renders a titled block with a dim left border.
func FormatNote(title string, lines []string) string {
	body := strings.Join(lines, "\n")
	box := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderLeft(true).
		BorderForeground(ColorDimGray).
		PaddingLeft(1)
	return StyleSummary.Render(title) + "\n" + box.Render(body)
}

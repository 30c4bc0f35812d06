package output

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette — named constants for all ANSI 256 colors used in the CLI.
// These are the single source of truth; never use inline lipgloss.Color literals.
var (
	// ColorCyan is used for identifiable nouns: project names, paths, option values.
	ColorCyan = lipgloss.Color("14")

	// ColorGreen is used for the "done" step status (bright, high-visibility).
	ColorGreen = lipgloss.Color("82")

	// ColorYellow is used for the "skipped" step status (medium visibility).
	ColorYellow = lipgloss.Color("220")

	// ColorBoldRed is used for the "failed" step status (matches ERROR level).
	ColorBoldRed = lipgloss.Color("204")

	// ColorGreenCheck is used for the completion checkmark (✔).
	ColorGreenCheck = lipgloss.Color("10")

	// ColorDimGray is used for descriptions and other structural chrome.
	ColorDimGray = lipgloss.Color("240")
)

// Semantic styles — map domain concepts to visual presentation.
var (
	// StyleNoun styles identifiable nouns (project names, paths, option values).
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleAction styles action verbs (rendering, pruning, pushing).
	StyleAction = lipgloss.NewStyle().Bold(true)

	// StyleDim styles structural chrome (prefixes, separators, descriptions).
	StyleDim = lipgloss.NewStyle().Faint(true)

	// StyleSummary styles completion and summary lines.
	StyleSummary = lipgloss.NewStyle().Bold(true)
)

// Automation step status constants.
const (
	StatusDone    = "done"
	StatusSkipped = "skipped"
	StatusDryRun  = "dry-run"
	StatusFailed  = "failed"
)

// StatusStyle returns the lipgloss style for a given step status string.
// Unknown statuses return an unstyled default.
func StatusStyle(status string) lipgloss.Style {
	switch status {
	case StatusDone:
		return lipgloss.NewStyle().Foreground(ColorGreen)
	case StatusSkipped:
		return lipgloss.NewStyle().Foreground(ColorYellow)
	case StatusDryRun:
		return lipgloss.NewStyle().Faint(true)
	case StatusFailed:
		return lipgloss.NewStyle().Bold(true).Foreground(ColorBoldRed)
	default:
		return lipgloss.NewStyle()
	}
}

// minStepColumnWidth is the minimum width for the step description column
// before the status suffix. This ensures status words align consistently.
const minStepColumnWidth = 44

// FormatStepLine renders an automation step description with a right-aligned,
// color-coded status suffix.
//
// Format: s:<description>  <status>
//
// The "s:" prefix is dim, the description is cyan, and the status uses StatusStyle.
func FormatStepLine(description, status string) string {
	padding := minStepColumnWidth - len(description)
	if padding < 2 {
		padding = 2
	}

	prefix := StyleDim.Render("s:")
	styledDesc := StyleNoun.Render(description)
	styledStatus := StatusStyle(status).Render(status)

	return prefix + styledDesc + strings.Repeat(" ", padding) + styledStatus
}

// FormatCheckmark renders a green checkmark with a message for stdout output.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(ColorGreenCheck).Render("✔")
	return check + " " + msg
}

package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette — named constants for all ANSI 256 colors used in the CLI.
// These are the single source of truth; never use inline lipgloss.Color literals.
var (
	// ColorCyan is used for identifiable nouns: module names, node names, file paths.
	ColorCyan = lipgloss.Color("14")

	// ColorGreen is used for the "finished" module status (bright, high-visibility).
	ColorGreen = lipgloss.Color("82")

	// ColorYellow is used for the "created" module status (medium visibility).
	ColorYellow = lipgloss.Color("220")

	// ColorBoldRed is used for the "error" module status (matches ERROR level).
	ColorBoldRed = lipgloss.Color("204")

	// ColorGreenCheck is used for the completion checkmark (✔).
	ColorGreenCheck = lipgloss.Color("10")

	// ColorDimGray is used for borders and other structural chrome.
	ColorDimGray = lipgloss.Color("240")
)

// Semantic styles — map domain concepts to visual presentation.
var (
	// StyleNoun styles identifiable nouns (module names, node names, file paths).
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleAction styles action verbs (adding, building, finishing, removing).
	StyleAction = lipgloss.NewStyle().Bold(true)

	// StyleDim styles structural chrome (scope prefixes, separators, timestamps).
	StyleDim = lipgloss.NewStyle().Faint(true)

	// StyleSummary styles completion and summary lines.
	StyleSummary = lipgloss.NewStyle().Bold(true)

	// StyleSuccess styles additions and confirmations.
	StyleSuccess = lipgloss.NewStyle().Foreground(ColorGreen)

	// StyleWarning styles modifications and cautions.
	StyleWarning = lipgloss.NewStyle().Foreground(ColorYellow)

	// StyleError styles removals and failures.
	StyleError = lipgloss.NewStyle().Foreground(ColorBoldRed)
)

// Module status constants. These match rig.Status string values.
const (
	StatusEmpty    = "empty"
	StatusCreated  = "created"
	StatusFinished = "finished"
	StatusError    = "error"
)

// StatusStyle returns the lipgloss style for a given module status string.
// Unknown statuses return an unstyled default.
func StatusStyle(status string) lipgloss.Style {
	switch status {
	case StatusEmpty:
		return lipgloss.NewStyle().Faint(true)
	case StatusCreated:
		return lipgloss.NewStyle().Foreground(ColorYellow)
	case StatusFinished:
		return lipgloss.NewStyle().Foreground(ColorGreen)
	case StatusError:
		return lipgloss.NewStyle().Bold(true).Foreground(ColorBoldRed)
	default:
		return lipgloss.NewStyle()
	}
}

// minModuleColumnWidth is the minimum width for the module path column
// before the status suffix. This ensures status words align consistently.
const minModuleColumnWidth = 48

// FormatModuleLine renders a module identifier with a right-aligned,
// color-coded status suffix.
//
// Format: m:<Type/name>  <status>
//
// The "m:" prefix is dim, the path is cyan, and the status uses StatusStyle.
func FormatModuleLine(typeName, name, status string) string {
	path := fmt.Sprintf("%s/%s", typeName, name)

	// Calculate padding for right-alignment
	padding := minModuleColumnWidth - len(path)
	if padding < 2 {
		padding = 2
	}

	// Render styled components
	prefix := StyleDim.Render("m:")
	styledPath := StyleNoun.Render(path)
	styledStatus := StatusStyle(status).Render(status)

	return prefix + styledPath + strings.Repeat(" ", padding) + styledStatus
}

// FormatCheckmark renders a green checkmark with a message for stdout output.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(ColorGreenCheck).Render("✔")
	return check + " " + msg
}

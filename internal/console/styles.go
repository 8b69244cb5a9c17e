package console

import "github.com/charmbracelet/lipgloss"

var (
	accent = lipgloss.Color("#A8E6CF")
	warn   = lipgloss.Color("#FFB3BA")
	muted  = lipgloss.Color("#6B7280")
)

var (
	promptStyle = lipgloss.NewStyle().
			Foreground(accent).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(warn)

	outputStyle = lipgloss.NewStyle().
			Foreground(muted)
)

// RenderError formats an error for the terminal
func RenderError(err error) string {
	return errorStyle.Render("error: " + err.Error())
}

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Accent color carried over from the app's visual identity.
const accentColor = lipgloss.Color("#6369D1")

var (
	appStyle = lipgloss.NewStyle().
			Padding(1, 2)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accentColor).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1)

	helpKeyStyle = lipgloss.NewStyle().
			Foreground(accentColor)

	tabActiveStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("231")).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(accentColor).
			Padding(0, 2)

	tabInactiveStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("245")).
				Padding(0, 2)

	cursorStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			Bold(true)

	noteTimestampStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("241"))

	noteTitleStyle = lipgloss.NewStyle().
			Bold(true)

	noteDescStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	favoriteOnStyle = lipgloss.NewStyle().
			Foreground(accentColor)

	favoriteOffStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("241"))

	busyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("226"))
)

// help renders a key/action footer line from alternating key, action pairs.
func help(pairs ...string) string {
	var parts []string
	for i := 0; i+1 < len(pairs); i += 2 {
		parts = append(parts, helpKeyStyle.Render(pairs[i])+" "+pairs[i+1])
	}
	return helpStyle.Render(strings.Join(parts, " · "))
}

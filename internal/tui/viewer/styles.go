package viewer

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	// Colors
	primaryColor = lipgloss.Color("99")  // Purple
	mutedColor   = lipgloss.Color("245") // Gray
	accentColor  = lipgloss.Color("212") // Pink
	shadeColor   = lipgloss.Color("237") // Dark gray

	// Title style
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			PaddingLeft(1).
			PaddingRight(1)

	// Counter next to the title
	counterStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	// Media body styles
	glyphStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accentColor)

	sourceStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Italic(true)

	// Spinner style
	spinnerStyle = lipgloss.NewStyle().
			Foreground(primaryColor)

	// Footer style
	footerStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			PaddingLeft(1)
)

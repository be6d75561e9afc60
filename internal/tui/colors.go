package tui

import "github.com/charmbracelet/lipgloss"

// Color constants for the brewlog theme
const (
	// Base Colors
	ColorCardBackground = "#241A14" // Dark roast
	ColorBorder         = "#5A4636" // Walnut

	// Text Colors
	ColorPrimaryText   = "#F2E8DC" // Field labels, user input, titles
	ColorSecondaryText = "#C4B2A0" // Latte grey
	ColorDisabledText  = "#7A6A5C" // Muted
	ColorPlaceholder   = "#9C8878"
	ColorHelpText      = "240" // Dark grey for help text

	// Accent Colors (Coffee theme)
	ColorAccentMain   = "#C8773A" // Crema, active borders
	ColorAccentBright = "#F0A860" // Focused field, clock digits

	// State Colors
	ColorError   = "#EF4444"
	ColorSuccess = "#22C55E"
	ColorWarning = "#F59E0B"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorAccentBright))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorSecondaryText)).
			Width(14)

	focusedLabelStyle = labelStyle.
				Foreground(lipgloss.Color(ColorAccentBright)).
				Bold(true)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorPrimaryText))

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorDisabledText))

	fieldErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorError)).
			Italic(true)

	flashStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorSuccess)).
			Bold(true)

	noticeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorWarning))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorError)).
			Bold(true)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(ColorBorder)).
			Padding(1, 2)
)

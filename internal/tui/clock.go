package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/balkashynov/brewlog/internal/session"
)

// Five-row glyphs for the big clock
var clockGlyphs = map[rune][5]string{
	'0': {" ███ ", "█   █", "█   █", "█   █", " ███ "},
	'1': {"  █  ", " ██  ", "  █  ", "  █  ", "█████"},
	'2': {" ███ ", "█   █", "   █ ", "  █  ", "█████"},
	'3': {" ███ ", "█   █", "  ██ ", "█   █", " ███ "},
	'4': {"█   █", "█   █", "█████", "    █", "    █"},
	'5': {"█████", "█    ", "████ ", "    █", "████ "},
	'6': {" ███ ", "█    ", "████ ", "█   █", " ███ "},
	'7': {"█████", "    █", "   █ ", "  █  ", " █   "},
	'8': {" ███ ", "█   █", " ███ ", "█   █", " ███ "},
	'9': {" ███ ", "█   █", " ████", "    █", " ███ "},
	':': {"     ", "  █  ", "     ", "  █  ", "     "},
}

// renderBigClock draws seconds as a large MM:SS
func renderBigClock(seconds int, color string) string {
	var lines [5]strings.Builder
	for _, char := range session.FormatClock(seconds) {
		glyph, ok := clockGlyphs[char]
		if !ok {
			continue
		}
		for i := range lines {
			lines[i].WriteString(glyph[i])
			lines[i].WriteString(" ")
		}
	}

	style := lipgloss.NewStyle().
		Foreground(lipgloss.Color(color)).
		Bold(true)

	rows := make([]string, len(lines))
	for i := range lines {
		rows[i] = style.Render(strings.TrimRight(lines[i].String(), " "))
	}
	return strings.Join(rows, "\n")
}

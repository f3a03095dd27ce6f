package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/coin-quest/internal/core"
)

// ansiCodes holds the 256-color code for each palette entry.
// ColorDefault keeps the terminal foreground.
var ansiCodes = [core.ColorCount]string{
	core.ColorBlack:        "0",
	core.ColorWhite:        "7",
	core.ColorBrightWhite:  "15",
	core.ColorGray:         "245",
	core.ColorRed:          "1",
	core.ColorBrightRed:    "9",
	core.ColorGreen:        "2",
	core.ColorYellow:       "3",
	core.ColorBrightYellow: "11",
	core.ColorCyan:         "6",
	core.ColorMagenta:      "5",
	core.ColorBrown:        "130",
}

var (
	palette   = buildStyles()
	helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

func buildStyles() [core.ColorCount]lipgloss.Style {
	var styles [core.ColorCount]lipgloss.Style
	for c, code := range ansiCodes {
		styles[c] = lipgloss.NewStyle()
		if code != "" {
			styles[c] = styles[c].Foreground(lipgloss.Color(code))
		}
	}
	return styles
}

func styleFor(c core.Color) lipgloss.Style {
	if c >= core.ColorCount {
		c = core.ColorDefault
	}
	return palette[c]
}

// RenderScreen styles every row of the buffer for display.
func RenderScreen(s *core.Screen) string {
	rows := make([]string, s.Height())
	for y := range rows {
		rows[y] = renderRow(s, y)
	}
	return strings.Join(rows, "\n")
}

// renderRow emits one styled span per run of same-colored cells.
func renderRow(s *core.Screen, y int) string {
	var (
		out   strings.Builder
		span  []rune
		color core.Color
	)
	flush := func() {
		if len(span) > 0 {
			out.WriteString(styleFor(color).Render(string(span)))
			span = span[:0]
		}
	}
	for x := range s.Width() {
		cell := s.GetCell(x, y)
		if cell.Color != color {
			flush()
			color = cell.Color
		}
		span = append(span, cell.Rune)
	}
	flush()
	return out.String()
}

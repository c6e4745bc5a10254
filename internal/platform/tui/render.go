package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/ballsort/internal/core"
)

func fg(c string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(c))
}

// colorStyles is indexed by core.Color.
var colorStyles = [...]lipgloss.Style{
	core.ColorDefault:     lipgloss.NewStyle(),
	core.ColorRed:         fg("9"),
	core.ColorGreen:       fg("10"),
	core.ColorYellow:      fg("11"),
	core.ColorBlue:        fg("12"),
	core.ColorWhite:       fg("7"),
	core.ColorBrightWhite: fg("15").Bold(true),
	core.ColorGray:        fg("245"),
}

func styleFor(c core.Color) lipgloss.Style {
	if int(c) < len(colorStyles) {
		return colorStyles[c]
	}
	return colorStyles[core.ColorDefault]
}

var (
	noticeStyle    = fg("229").Background(lipgloss.Color("57")).Padding(0, 2)
	winNoticeStyle = noticeStyle.Background(lipgloss.Color("28")).Bold(true)
	helpStyle      = fg("241")
)

// RenderScreen turns the cell buffer into styled terminal text. Each run of
// same-colored cells in a row is styled once.
func RenderScreen(s *core.Screen) string {
	var out, run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			out.WriteByte('\n')
		}
		color := s.GetCell(0, y).Color
		for x := range s.Width() {
			cell := s.GetCell(x, y)
			if cell.Color != color {
				out.WriteString(styleFor(color).Render(run.String()))
				run.Reset()
				color = cell.Color
			}
			run.WriteRune(cell.Rune)
		}
		out.WriteString(styleFor(color).Render(run.String()))
		run.Reset()
	}
	return out.String()
}

// centerText left-pads text to center it in width columns.
func centerText(text string, width int) string {
	pad := (width - lipgloss.Width(text)) / 2
	if pad <= 0 {
		return text
	}
	return strings.Repeat(" ", pad) + text
}

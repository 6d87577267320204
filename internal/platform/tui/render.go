package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Palette maps core colors to lipgloss styles for one output.
// SSH sessions get their own palette so color detection follows the
// client's terminal, not the server's.
type Palette map[core.Color]lipgloss.Style

// NewPalette builds the styles on the given renderer.
func NewPalette(r *lipgloss.Renderer) Palette {
	fg := func(c string) lipgloss.Style {
		return r.NewStyle().Foreground(lipgloss.Color(c))
	}
	return Palette{
		core.ColorDefault:     r.NewStyle(),
		core.ColorGreen:       fg("2"),
		core.ColorBrightGreen: fg("10"),
		core.ColorYellow:      fg("3"),
		core.ColorWhite:       fg("7"),
		core.ColorBrightWhite: fg("15").Bold(true),
		core.ColorRed:         fg("9"),
		core.ColorGray:        fg("245"),
	}
}

// DefaultPalette returns the palette for the local terminal.
func DefaultPalette() Palette {
	return NewPalette(lipgloss.DefaultRenderer())
}

// style returns the style for c, falling back to the default style.
func (p Palette) style(c core.Color) lipgloss.Style {
	if s, ok := p[c]; ok {
		return s
	}
	return p[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells of the same color share one escape sequence.
func RenderScreen(s *core.Screen, p Palette) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(p.style(startColor).Render(run.String()))
		}
	}
	return sb.String()
}

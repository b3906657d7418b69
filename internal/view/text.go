package view

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	hiddenStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("248"))
	flagStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	maybeStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	mineStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true)
	explodedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("9")).Bold(true)
	rulerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
	numStyles     = []lipgloss.Style{
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("41")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("99")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("160")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("37")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("248")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("243")),
	}
)

func (c CellView) Symbol() string {
	switch c.State {
	case Flagged, CorrectFlag:
		return "F"
	case Maybe:
		return "?"
	case Mine:
		return "*"
	case Exploded:
		return "X"
	case WrongFlag:
		return "x"
	case Open:
		if c.Count == 0 {
			return "."
		}
		return strconv.Itoa(c.Count)
	default:
		return "#"
	}
}

func (c CellView) style() lipgloss.Style {
	switch c.State {
	case Flagged, CorrectFlag, WrongFlag:
		return flagStyle
	case Maybe:
		return maybeStyle
	case Mine:
		return mineStyle
	case Exploded:
		return explodedStyle
	case Open:
		if c.Count > 0 && c.Count <= len(numStyles) {
			return numStyles[c.Count-1]
		}
		return hiddenStyle
	default:
		return hiddenStyle
	}
}

// Text draws v as a grid with x along the top and y down the left side.
// Rulers show the last digit of each column index.
func Text(w io.Writer, v *GameView, styled bool) error {
	render := func(s lipgloss.Style, text string) string {
		if !styled {
			return text
		}
		return s.Render(text)
	}
	gutter := len(strconv.Itoa(max(v.Height-1, 0)))

	var sb strings.Builder
	fmt.Fprintf(&sb, "mines: %d  remaining: %d  %s", v.MineCount, v.MinesRemaining, v.Outcome)
	if v.Started {
		fmt.Fprintf(&sb, "  time: %ds", v.ElapsedSeconds)
	}
	sb.WriteString("\n")

	ruler := make([]string, v.Width)
	for x := range ruler {
		ruler[x] = strconv.Itoa(x % 10)
	}
	sb.WriteString(strings.Repeat(" ", gutter+1))
	sb.WriteString(render(rulerStyle, strings.Join(ruler, " ")))
	sb.WriteString("\n")

	for y, row := range v.Cells {
		sb.WriteString(render(rulerStyle, fmt.Sprintf("%*d", gutter, y)))
		for _, c := range row {
			sb.WriteString(" ")
			sb.WriteString(render(c.style(), c.Symbol()))
		}
		sb.WriteString("\n")
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

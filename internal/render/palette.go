package render

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/amirbrooks/tasklist/internal/store"
)

// Palette produces the one-character priority and due cells. The table
// layout never depends on which implementation is plugged in.
type Palette interface {
	Priority(p store.Priority) string
	Due(d store.DueTag) string
}

// ColorPalette paints cells with ANSI background colors: Critical and
// Overdue red, High and Today yellow, Normal and In-time green, Low blue.
type ColorPalette struct {
	red, yellow, green, blue lipgloss.Style
}

// NewColorPalette pins the renderer to the basic ANSI profile so the cell
// colors come out the same regardless of terminal detection.
func NewColorPalette(w io.Writer) *ColorPalette {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(termenv.ANSI)
	cell := func(c string) lipgloss.Style {
		return r.NewStyle().Background(lipgloss.Color(c))
	}
	return &ColorPalette{
		red:    cell("1"),
		green:  cell("2"),
		yellow: cell("3"),
		blue:   cell("4"),
	}
}

func (p *ColorPalette) Priority(pr store.Priority) string {
	switch pr {
	case store.PriorityCritical:
		return p.red.Render(" ")
	case store.PriorityHigh:
		return p.yellow.Render(" ")
	case store.PriorityNormal:
		return p.green.Render(" ")
	case store.PriorityLow:
		return p.blue.Render(" ")
	default:
		return " "
	}
}

func (p *ColorPalette) Due(d store.DueTag) string {
	switch d {
	case store.DueOverdue:
		return p.red.Render(" ")
	case store.DueToday:
		return p.yellow.Render(" ")
	case store.DueInTime:
		return p.green.Render(" ")
	default:
		return " "
	}
}

// PlainPalette substitutes the code letter for the colored cell so the
// column stays readable without a terminal.
type PlainPalette struct{}

func (PlainPalette) Priority(p store.Priority) string {
	if p == "" {
		return " "
	}
	return string(p)
}

func (PlainPalette) Due(d store.DueTag) string {
	switch d {
	case store.DueOverdue:
		return "O"
	case store.DueToday:
		return "T"
	case store.DueInTime:
		return "I"
	default:
		return " "
	}
}

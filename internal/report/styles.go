package report

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Palette
var (
	ColorRed    = lipgloss.Color("9")
	ColorYellow = lipgloss.Color("11")
	ColorGreen  = lipgloss.Color("10")
	ColorBlue   = lipgloss.Color("12")
	ColorCyan   = lipgloss.Color("14")
	ColorWhite  = lipgloss.Color("15")
)

// Styles holds every style used on the terminal. They are built from a
// renderer bound to the output writer, so a non-terminal writer gets plain
// text.
type Styles struct {
	Rule     lipgloss.Style
	Title    lipgloss.Style
	Bold     lipgloss.Style
	Critical lipgloss.Style
	Warning  lipgloss.Style
	Fixme    lipgloss.Style
	Todo     lipgloss.Style
	Marker   lipgloss.Style
	File     lipgloss.Style
	Number   lipgloss.Style
	Command  lipgloss.Style
	Success  lipgloss.Style
	Error    lipgloss.Style
	Hint     lipgloss.Style
	Prompt   lipgloss.Style
	Disabled lipgloss.Style
	Header   lipgloss.Style
	Cell     lipgloss.Style
}

// NewStyles creates the style set for w
func NewStyles(w io.Writer) *Styles {
	r := lipgloss.NewRenderer(w)
	return &Styles{
		Rule:     r.NewStyle().Foreground(ColorBlue),
		Title:    r.NewStyle().Foreground(ColorCyan).Bold(true),
		Bold:     r.NewStyle().Bold(true),
		Critical: r.NewStyle().Foreground(ColorRed).Bold(true),
		Warning:  r.NewStyle().Foreground(ColorYellow).Bold(true),
		Fixme:    r.NewStyle().Foreground(ColorRed),
		Todo:     r.NewStyle().Foreground(ColorYellow),
		Marker:   r.NewStyle().Foreground(ColorBlue),
		File:     r.NewStyle().Foreground(ColorGreen),
		Number:   r.NewStyle().Foreground(ColorBlue),
		Command:  r.NewStyle().Foreground(ColorGreen),
		Success:  r.NewStyle().Foreground(ColorGreen),
		Error:    r.NewStyle().Foreground(ColorRed),
		Hint:     r.NewStyle().Foreground(ColorCyan),
		Prompt:   r.NewStyle().Foreground(ColorGreen).Bold(true),
		Disabled: r.NewStyle().Faint(true).Strikethrough(true),
		Header:   r.NewStyle().Bold(true).Padding(0, 1),
		Cell:     r.NewStyle().Padding(0, 1),
	}
}

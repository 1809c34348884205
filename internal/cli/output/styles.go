package output

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Styles holds the lipgloss styles used in text mode.
type Styles struct {
	Header  lipgloss.Style
	Bold    lipgloss.Style
	Result  lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Muted   lipgloss.Style
}

// NewStyles builds styles bound to w. Colour is stripped unless isTTY.
func NewStyles(w io.Writer, isTTY bool) *Styles {
	lr := lipgloss.NewRenderer(w)
	if !isTTY {
		lr.SetColorProfile(termenv.Ascii)
	}

	return &Styles{
		Header:  lr.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		Bold:    lr.NewStyle().Bold(true),
		Result:  lr.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
		Success: lr.NewStyle().Foreground(lipgloss.Color("10")),
		Warning: lr.NewStyle().Foreground(lipgloss.Color("11")),
		Error:   lr.NewStyle().Foreground(lipgloss.Color("9")),
		Muted:   lr.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

package output

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles used in text mode.
type Styles struct {
	Header  lipgloss.Style
	Bold    lipgloss.Style
	Muted   lipgloss.Style
	Info    lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Keyword lipgloss.Style
	String  lipgloss.Style
	Number  lipgloss.Style
}

// NewStyles creates styles bound to a lipgloss renderer, so color output
// follows the renderer's color profile.
func NewStyles(lr *lipgloss.Renderer) *Styles {
	return &Styles{
		Header:  lr.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		Bold:    lr.NewStyle().Bold(true),
		Muted:   lr.NewStyle().Foreground(lipgloss.Color("8")),
		Info:    lr.NewStyle().Foreground(lipgloss.Color("14")),
		Success: lr.NewStyle().Foreground(lipgloss.Color("10")),
		Warning: lr.NewStyle().Foreground(lipgloss.Color("11")),
		Error:   lr.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
		Keyword: lr.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		String:  lr.NewStyle().Foreground(lipgloss.Color("10")),
		Number:  lr.NewStyle().Foreground(lipgloss.Color("13")),
	}
}

package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	Dim           lipgloss.Style
	Status        lipgloss.Style
	Filter        lipgloss.Style
	Header        lipgloss.Style
	Help          lipgloss.Style
	Main          lipgloss.Style
	Scroll        lipgloss.Style
	HighlightBg   lipgloss.Style
	Checked       lipgloss.Style
	Indeterminate lipgloss.Style
	StatusLoading lipgloss.Style
	StatusSuccess lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Dim: lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
		Filter: lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(lipgloss.Color("241")),
		Help:          lipgloss.NewStyle().Faint(true),
		Main:          lipgloss.NewStyle().Padding(0, 1),
		Scroll:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		HighlightBg:   lipgloss.NewStyle().Background(lipgloss.Color("238")),
		Checked:       lipgloss.NewStyle().Foreground(lipgloss.Color("78")).Bold(true),  // green
		Indeterminate: lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true), // yellow
		StatusLoading: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),            // gray
		StatusSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("78")),             // green
	}
}

package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"rowpick/internal/domain"
)

var helpSections = []string{"Navigation", "Selection", "View"}

// RenderHelpContent renders the key bindings for the pager
func RenderHelpContent(keys help.KeyMap) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99"))

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39"))

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220")).
		Width(12)

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	var b strings.Builder

	b.WriteString(titleStyle.Render("rowpick Help"))
	b.WriteString("\n")

	for i, column := range keys.FullHelp() {
		b.WriteString("\n")
		if i < len(helpSections) {
			b.WriteString(sectionStyle.Render(helpSections[i]))
			b.WriteString("\n")
		}
		for _, binding := range column {
			h := binding.Help()
			fmt.Fprintf(&b, "  %s %s\n", keyStyle.Render(h.Key), descStyle.Render(h.Desc))
		}
	}

	b.WriteString("\n")
	filterStyle := lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241"))
	b.WriteString(filterStyle.Render("  Filter examples: ada, id:42, selected:, unselected: smith"))
	b.WriteString("\n")

	return b.String()
}

// RenderSelectionExport lists the selected rows, one per line, in id order.
// Ids without a loaded row are listed alone.
func RenderSelectionExport(ids []int, lookup func(id int) (domain.Row, bool)) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d selected\n\n", len(ids))
	for _, id := range ids {
		row, ok := lookup(id)
		if !ok {
			fmt.Fprintf(&b, "%d\n", id)
			continue
		}
		fmt.Fprintf(&b, "%d\t%s\t%s\n", id, row.FullName(), row.Email)
	}
	return b.String()
}

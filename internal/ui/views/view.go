package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"rowpick/internal/domain"
	selstore "rowpick/internal/selection"
)

// RowView is a visible row bound to its checkbox
type RowView struct {
	Row      domain.Row
	Checkbox selstore.CheckboxProps
	Focused  bool
}

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width  int
	Height int

	Rows           []RowView // only the rows inside the viewport
	ViewportOffset int
	VisibleCount   int
	Bulk           selstore.BulkCheckboxProps
	BulkState      selstore.BulkState
	SelectedCount  int
	Version        uint64

	Loading   bool
	Loaded    int
	Requested int

	FilterQuery   string
	InputMode     string
	TextInput     string
	SortMode      string
	StatusMessage string
	ShowEmail     bool

	HelpModel help.Model
	Keys      help.KeyMap
}

// chromeLines is the number of lines around the list: title, header (two
// lines with its border), status and help
const chromeLines = 5

// ListHeight returns how many rows fit in a terminal of the given height
func ListHeight(height int) int {
	if h := height - chromeLines; h > 0 {
		return h
	}
	return 1
}

// Renderer handles all view rendering
type Renderer struct {
	styles    *Styles
	rowRender *RowRenderer
}

// NewRenderer creates a new renderer
func NewRenderer(rowCacheSize int) *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:    styles,
		rowRender: NewRowRenderer(styles, rowCacheSize),
	}
}

// Rows returns the row renderer
func (r *Renderer) Rows() *RowRenderer {
	return r.rowRender
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	width := state.Width
	if width <= 0 {
		width = 80
	}
	content := &strings.Builder{}

	content.WriteString(r.renderTitle(state, width))
	content.WriteString("\n")
	content.WriteString(r.RenderHeader(state.Bulk, state.ShowEmail))
	content.WriteString("\n")

	listHeight := ListHeight(state.Height)
	if len(state.Rows) == 0 {
		msg := "No rows"
		if state.Loading {
			msg = "Loading rows..."
		} else if state.FilterQuery != "" {
			msg = "No rows match the filter"
		}
		content.WriteString(r.styles.Dim.Render(msg))
		content.WriteString("\n")
		listHeight--
	}
	for _, rv := range state.Rows {
		content.WriteString(r.rowRender.RenderRow(rv.Row, rv.Checkbox, rv.Focused, width-2, state.ShowEmail))
		content.WriteString("\n")
	}
	for i := len(state.Rows); i < listHeight; i++ {
		content.WriteString("\n")
	}

	content.WriteString(r.renderStatus(state))
	content.WriteString("\n")
	content.WriteString(r.renderFooter(state, width))

	return r.styles.Main.Render(content.String())
}

func (r *Renderer) renderTitle(state ViewState, width int) string {
	logo := r.styles.Title.Render("rowpick")

	var right []string
	if state.Loading {
		right = append(right, r.styles.StatusLoading.Render(fmt.Sprintf("Loading %d/%d", state.Loaded, state.Requested)))
	}
	if state.FilterQuery != "" {
		right = append(right, r.styles.Filter.Render(fmt.Sprintf("[Filter: %s]", state.FilterQuery)))
	}
	right = append(right, r.styles.Dim.Render("sort: "+state.SortMode))

	rightContent := strings.Join(right, "  ")
	padding := width - 2 - lipgloss.Width(logo) - lipgloss.Width(rightContent)
	if padding < 2 {
		padding = 2
	}
	return logo + strings.Repeat(" ", padding) + rightContent
}

// StatusLine formats the selection summary
func StatusLine(selected, visible int, bulk selstore.BulkState, version uint64) string {
	return fmt.Sprintf("%d selected · %d visible · %s · v%d", selected, visible, bulk, version)
}

func (r *Renderer) renderStatus(state ViewState) string {
	line := StatusLine(state.SelectedCount, state.VisibleCount, state.BulkState, state.Version)
	if state.VisibleCount > 0 {
		first := state.ViewportOffset + 1
		last := state.ViewportOffset + len(state.Rows)
		line += r.styles.Scroll.Render(fmt.Sprintf("  rows %d-%d", first, last))
	}
	if state.StatusMessage != "" {
		line += "  " + r.styles.StatusSuccess.Render(state.StatusMessage)
	}
	return r.styles.Status.Render(line)
}

func (r *Renderer) renderFooter(state ViewState, width int) string {
	if state.InputMode == "filter" {
		return r.styles.Filter.Render("Filter: ") + state.TextInput
	}
	if state.Keys == nil {
		return r.styles.Help.Render("Press ? for help")
	}
	hm := state.HelpModel
	hm.Width = width
	return hm.View(state.Keys)
}

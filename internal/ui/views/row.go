package views

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	lru "github.com/hashicorp/golang-lru/v2"

	"rowpick/internal/domain"
	selstore "rowpick/internal/selection"
)

// DefaultRowCacheSize is used when the configured cache size is not positive
const DefaultRowCacheSize = 512

// rowKey identifies one rendering of a row. A row whose checked flag,
// focus and width are unchanged is served from the cache.
type rowKey struct {
	id        int
	checked   bool
	focused   bool
	width     int
	showEmail bool
}

// RowRenderer renders list rows and memoizes the result
type RowRenderer struct {
	styles  *Styles
	cache   *lru.Cache[rowKey, string]
	renders int
}

// NewRowRenderer creates a row renderer holding up to cacheSize lines
func NewRowRenderer(styles *Styles, cacheSize int) *RowRenderer {
	if cacheSize <= 0 {
		cacheSize = DefaultRowCacheSize
	}
	// lru.New only fails for a non-positive size
	cache, _ := lru.New[rowKey, string](cacheSize)
	return &RowRenderer{
		styles: styles,
		cache:  cache,
	}
}

// RenderRow renders a row with its checkbox bound to props
func (r *RowRenderer) RenderRow(row domain.Row, props selstore.CheckboxProps, focused bool, width int, showEmail bool) string {
	key := rowKey{id: row.ID, checked: props.Checked, focused: focused, width: width, showEmail: showEmail}
	if line, ok := r.cache.Get(key); ok {
		return line
	}

	line := r.render(row, props.Checked, focused, width, showEmail)
	r.cache.Add(key, line)
	return line
}

func (r *RowRenderer) render(row domain.Row, checked, focused bool, width int, showEmail bool) string {
	r.renders++

	box := "[ ]"
	if checked {
		box = r.styles.Checked.Render("[x]")
	}

	cursor := "  "
	if focused {
		cursor = "> "
	}

	text := fmt.Sprintf("%6d  %-28s", row.ID, row.FullName())
	if showEmail {
		text = fmt.Sprintf("%s  %s", text, row.Email)
	}

	line := cursor + box + " " + text
	if focused {
		line = r.styles.HighlightBg.Render(line)
	}
	if width > 0 {
		line = lipgloss.NewStyle().MaxWidth(width).Render(line)
	}
	return line
}

// Renders returns how many rows were rendered without a cache hit
func (r *RowRenderer) Renders() int {
	return r.renders
}

// Purge drops every cached line, used when row contents are replaced
func (r *RowRenderer) Purge() {
	r.cache.Purge()
}

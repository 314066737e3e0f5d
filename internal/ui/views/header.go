package views

import (
	"fmt"

	selstore "rowpick/internal/selection"
)

// BulkBox returns the bulk checkbox glyph: [x] when every visible row is
// selected, [-] when some are, and [ ] otherwise
func BulkBox(props selstore.BulkCheckboxProps) string {
	switch {
	case props.Checked:
		return "[x]"
	case props.Indeterminate:
		return "[-]"
	default:
		return "[ ]"
	}
}

// RenderHeader renders the column header with the bulk checkbox
func (r *Renderer) RenderHeader(props selstore.BulkCheckboxProps, showEmail bool) string {
	box := BulkBox(props)
	switch {
	case props.Checked:
		box = r.styles.Checked.Render(box)
	case props.Indeterminate:
		box = r.styles.Indeterminate.Render(box)
	}

	cols := fmt.Sprintf("%6s  %-28s", "ID", "Name")
	if showEmail {
		cols = fmt.Sprintf("%s  %s", cols, "Email")
	}
	return "  " + box + " " + r.styles.Header.Render(cols)
}

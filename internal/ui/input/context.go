package input

import (
	"rowpick/internal/ui/logic"
	"rowpick/internal/ui/services/selection"
	"rowpick/internal/ui/state"
)

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	State     *state.AppState
	Selection *selection.Service
	Navigator *logic.Navigator
}

// CurrentIndex returns the cursor position
func (c *ModelContext) CurrentIndex() int {
	return c.Navigator.Cursor()
}

// TotalItems returns the number of visible rows
func (c *ModelContext) TotalItems() int {
	return len(c.State.VisibleIDs)
}

// HasSelection returns true if any rows are selected
func (c *ModelContext) HasSelection() bool {
	return c.Selection.HasSelection()
}

// SelectedCount returns the number of selected rows
func (c *ModelContext) SelectedCount() int {
	return c.Selection.GetCount()
}

// FilterQuery returns the active filter
func (c *ModelContext) FilterQuery() string {
	return c.State.FilterQuery
}

package commands

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"rowpick/internal/eventbus"
	"rowpick/internal/logic"
	uilogic "rowpick/internal/ui/logic"
	"rowpick/internal/ui/services/selection"
	"rowpick/internal/ui/state"
)

// Command represents an executable action
type Command interface {
	Execute() tea.Cmd
}

// CommandContext provides context for command execution
type CommandContext struct {
	State     *state.AppState
	Selection *selection.Service
	Rows      logic.RowStore
	Filter    *uilogic.RowFilter
	Sorter    *uilogic.RowSorter
	Bus       eventbus.EventBus
}

// RebuildViewCommand recomputes the visible rows from the row store, the
// filter and the sort mode, and hands them to the selection as its reference
type RebuildViewCommand struct {
	ctx *CommandContext
}

// NewRebuildViewCommand creates a new rebuild view command
func NewRebuildViewCommand(ctx *CommandContext) *RebuildViewCommand {
	return &RebuildViewCommand{ctx: ctx}
}

// Execute rebuilds the visible rows
func (c *RebuildViewCommand) Execute() tea.Cmd {
	ids := c.ctx.Rows.AllIDs()
	ids = c.ctx.Filter.Apply(ids, c.ctx.State.FilterQuery)
	c.ctx.Sorter.Sort(ids, c.ctx.State.SortMode)

	c.ctx.State.SetVisible(ids)
	c.ctx.Selection.SetReference(ids)
	return nil
}

// ToggleSelectionCommand toggles the row at an index
type ToggleSelectionCommand struct {
	ctx   *CommandContext
	index int
}

// NewToggleSelectionCommand creates a new toggle selection command
func NewToggleSelectionCommand(ctx *CommandContext, index int) *ToggleSelectionCommand {
	return &ToggleSelectionCommand{
		ctx:   ctx,
		index: index,
	}
}

// Execute toggles the selection
func (c *ToggleSelectionCommand) Execute() tea.Cmd {
	c.ctx.Selection.Toggle(c.index)
	return nil
}

// SelectRangeCommand selects from the last toggled row to an index
type SelectRangeCommand struct {
	ctx   *CommandContext
	index int
}

// NewSelectRangeCommand creates a new range selection command
func NewSelectRangeCommand(ctx *CommandContext, index int) *SelectRangeCommand {
	return &SelectRangeCommand{
		ctx:   ctx,
		index: index,
	}
}

// Execute selects the range, or toggles the single row when no anchor exists yet
func (c *SelectRangeCommand) Execute() tea.Cmd {
	if c.ctx.Selection.LastSelected() < 0 {
		c.ctx.Selection.SetChecked(c.index, true)
		return nil
	}
	c.ctx.Selection.SelectRange(c.index)
	return nil
}

// ToggleAllCommand drives the bulk checkbox
type ToggleAllCommand struct {
	ctx *CommandContext
}

// NewToggleAllCommand creates a new toggle all command
func NewToggleAllCommand(ctx *CommandContext) *ToggleAllCommand {
	return &ToggleAllCommand{ctx: ctx}
}

// Execute toggles the bulk checkbox
func (c *ToggleAllCommand) Execute() tea.Cmd {
	c.ctx.Selection.ToggleAll()
	c.ctx.State.StatusMessage = fmt.Sprintf("%d selected", c.ctx.Selection.GetCount())
	return nil
}

// DeselectAllCommand deselects every visible row
type DeselectAllCommand struct {
	ctx *CommandContext
}

// NewDeselectAllCommand creates a new deselect all command
func NewDeselectAllCommand(ctx *CommandContext) *DeselectAllCommand {
	return &DeselectAllCommand{ctx: ctx}
}

// Execute deselects the visible rows
func (c *DeselectAllCommand) Execute() tea.Cmd {
	c.ctx.Selection.DeselectAll()
	c.ctx.State.StatusMessage = fmt.Sprintf("Deselected visible rows, %d still selected", c.ctx.Selection.GetCount())
	return nil
}

// ClearSelectionCommand drops the whole selection
type ClearSelectionCommand struct {
	ctx *CommandContext
}

// NewClearSelectionCommand creates a new clear selection command
func NewClearSelectionCommand(ctx *CommandContext) *ClearSelectionCommand {
	return &ClearSelectionCommand{ctx: ctx}
}

// Execute clears the selection
func (c *ClearSelectionCommand) Execute() tea.Cmd {
	if !c.ctx.Selection.HasSelection() {
		return nil
	}
	c.ctx.Selection.Clear()
	c.ctx.State.StatusMessage = "Selection cleared"
	return nil
}

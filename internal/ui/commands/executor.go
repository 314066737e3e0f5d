package commands

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Executor handles command execution
type Executor struct {
	ctx *CommandContext
}

// NewExecutor creates a new command executor
func NewExecutor(ctx *CommandContext) *Executor {
	return &Executor{ctx: ctx}
}

// ExecuteRebuildView creates and executes a rebuild view command
func (e *Executor) ExecuteRebuildView() tea.Cmd {
	return NewRebuildViewCommand(e.ctx).Execute()
}

// ExecuteToggleSelection creates and executes a toggle selection command
func (e *Executor) ExecuteToggleSelection(index int) tea.Cmd {
	return NewToggleSelectionCommand(e.ctx, index).Execute()
}

// ExecuteSelectRange creates and executes a range selection command
func (e *Executor) ExecuteSelectRange(index int) tea.Cmd {
	return NewSelectRangeCommand(e.ctx, index).Execute()
}

// ExecuteToggleAll creates and executes a toggle all command
func (e *Executor) ExecuteToggleAll() tea.Cmd {
	return NewToggleAllCommand(e.ctx).Execute()
}

// ExecuteDeselectAll creates and executes a deselect all command
func (e *Executor) ExecuteDeselectAll() tea.Cmd {
	return NewDeselectAllCommand(e.ctx).Execute()
}

// ExecuteClearSelection creates and executes a clear selection command
func (e *Executor) ExecuteClearSelection() tea.Cmd {
	return NewClearSelectionCommand(e.ctx).Execute()
}

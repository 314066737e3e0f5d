package types

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "pageup", "pagedown", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

// Selection actions
type SelectAction struct {
	Index int // -1 for current
}

func (a SelectAction) Type() string { return "select" }

// SelectRangeAction moves the cursor and extends the selection to the new row
type SelectRangeAction struct {
	Direction string // "up" or "down"
}

func (a SelectRangeAction) Type() string { return "select_range" }

type ToggleAllAction struct{}

func (a ToggleAllAction) Type() string { return "toggle_all" }

type DeselectAllAction struct{}

func (a DeselectAllAction) Type() string { return "deselect_all" }

type ClearSelectionAction struct{}

func (a ClearSelectionAction) Type() string { return "clear_selection" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
	Data string // initial text for text modes
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

type SubmitTextAction struct {
	Text string
	Mode Mode // Which mode submitted the text
}

func (a SubmitTextAction) Type() string { return "submit_text" }

type CancelTextAction struct{}

func (a CancelTextAction) Type() string { return "cancel_text" }

// View actions
type CycleSortAction struct{}

func (a CycleSortAction) Type() string { return "cycle_sort" }

type ShowSelectionAction struct{}

func (a ShowSelectionAction) Type() string { return "show_selection" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }

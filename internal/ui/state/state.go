package state

import (
	"rowpick/internal/ui/logic"
)

// AppState contains the UI state that is not owned by the selection store
type AppState struct {
	// Rows currently shown, in display order; this is the selection reference
	VisibleIDs []int

	// Data source progress
	Loading     bool
	LoadedCount int
	Requested   int

	// Filter and sort state
	FilterQuery string
	SortMode    logic.SortMode

	// UI state
	StatusMessage string
	ShowEmail     bool
}

// NewAppState creates a new application state
func NewAppState() *AppState {
	return &AppState{
		VisibleIDs: make([]int, 0),
		SortMode:   logic.SortByID,
		ShowEmail:  true,
	}
}

// SetVisible replaces the visible rows
func (s *AppState) SetVisible(ids []int) {
	s.VisibleIDs = ids
}

// IDAt returns the row id shown at index
func (s *AppState) IDAt(index int) (int, bool) {
	if index < 0 || index >= len(s.VisibleIDs) {
		return 0, false
	}
	return s.VisibleIDs[index], true
}

// IsFiltered reports whether a filter query is active
func (s *AppState) IsFiltered() bool {
	return s.FilterQuery != ""
}

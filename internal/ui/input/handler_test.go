package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rowpick/internal/ui/input/types"
)

type fakeContext struct {
	index, total, selected int
	query                  string
}

func (c fakeContext) CurrentIndex() int   { return c.index }
func (c fakeContext) TotalItems() int     { return c.total }
func (c fakeContext) HasSelection() bool  { return c.selected > 0 }
func (c fakeContext) SelectedCount() int  { return c.selected }
func (c fakeContext) FilterQuery() string { return c.query }

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNormalModeBindings(t *testing.T) {
	ctx := fakeContext{total: 10}

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want types.Action
	}{
		{"down j", runes("j"), types.NavigateAction{Direction: "down"}},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, types.NavigateAction{Direction: "up"}},
		{"bottom", runes("G"), types.NavigateAction{Direction: "end"}},
		{"top", runes("g"), types.NavigateAction{Direction: "home"}},
		{"page down", tea.KeyMsg{Type: tea.KeyPgDown}, types.NavigateAction{Direction: "pagedown"}},
		{"toggle", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}, types.SelectAction{Index: -1}},
		{"range", runes("J"), types.SelectRangeAction{Direction: "down"}},
		{"range shift", tea.KeyMsg{Type: tea.KeyShiftDown}, types.SelectRangeAction{Direction: "down"}},
		{"toggle all", runes("a"), types.ToggleAllAction{}},
		{"deselect all", runes("A"), types.DeselectAllAction{}},
		{"sort", runes("s"), types.CycleSortAction{}},
		{"export", runes("v"), types.ShowSelectionAction{}},
		{"help", runes("?"), types.ToggleHelpAction{}},
		{"quit", runes("q"), types.QuitAction{}},
		{"force quit", tea.KeyMsg{Type: tea.KeyCtrlC}, types.QuitAction{Force: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := New()
			actions, _ := h.HandleKey(tt.msg, ctx)
			require.Len(t, actions, 1)
			assert.Equal(t, tt.want, actions[0])
		})
	}
}

func TestEscClearsOnlyWithSelection(t *testing.T) {
	h := New()
	esc := tea.KeyMsg{Type: tea.KeyEsc}

	actions, _ := h.HandleKey(esc, fakeContext{total: 3})
	assert.Empty(t, actions)

	actions, _ = h.HandleKey(esc, fakeContext{total: 3, selected: 1})
	assert.Equal(t, []types.Action{types.ClearSelectionAction{}}, actions)
}

func TestUnknownKeyIsIgnored(t *testing.T) {
	h := New()
	actions, cmd := h.HandleKey(runes("z"), fakeContext{})
	assert.Nil(t, actions)
	assert.Nil(t, cmd)
}

func TestFilterModeFlow(t *testing.T) {
	h := New()
	ctx := fakeContext{total: 5, query: "ad"}

	actions, cmd := h.HandleKey(runes("/"), ctx)
	assert.NotNil(t, cmd)
	assert.Equal(t, types.ModeFilter, h.GetMode())
	assert.Contains(t, actions, types.Action(types.ChangeModeAction{Mode: types.ModeFilter, Data: "ad"}))
	assert.Equal(t, "ad", h.GetTextInput().Value())

	actions, _ = h.HandleKey(runes("a"), ctx)
	assert.Equal(t, []types.Action{types.UpdateTextAction{Text: "ada"}}, actions)

	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}, ctx)
	assert.Equal(t, types.ModeNormal, h.GetMode())
	require.NotEmpty(t, actions)
	assert.Equal(t, types.SubmitTextAction{Text: "ada", Mode: types.ModeFilter}, actions[0])
}

func TestFilterModeCancel(t *testing.T) {
	h := New()
	ctx := fakeContext{}

	h.HandleKey(runes("/"), ctx)
	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeyEsc}, ctx)

	assert.Equal(t, types.ModeNormal, h.GetMode())
	assert.Equal(t, types.CancelTextAction{}, actions[0])
}

func TestKeyMapHelp(t *testing.T) {
	keys := New().Keys()
	assert.NotEmpty(t, keys.ShortHelp())
	assert.Len(t, keys.FullHelp(), 3)
}

package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"rowpick/internal/ui/input/types"
)

type NormalMode struct {
	keys types.KeyMap
}

func NewNormalMode(keys types.KeyMap) *NormalMode {
	return &NormalMode{keys: keys}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	k := m.keys

	switch {
	case key.Matches(msg, k.ForceQuit):
		return []types.Action{types.QuitAction{Force: true}}, true
	case key.Matches(msg, k.Quit):
		return []types.Action{types.QuitAction{Force: false}}, true

	case key.Matches(msg, k.RangeDown):
		return []types.Action{types.SelectRangeAction{Direction: "down"}}, true
	case key.Matches(msg, k.RangeUp):
		return []types.Action{types.SelectRangeAction{Direction: "up"}}, true

	case key.Matches(msg, k.Up):
		return []types.Action{types.NavigateAction{Direction: "up"}}, true
	case key.Matches(msg, k.Down):
		return []types.Action{types.NavigateAction{Direction: "down"}}, true
	case key.Matches(msg, k.PageUp):
		return []types.Action{types.NavigateAction{Direction: "pageup"}}, true
	case key.Matches(msg, k.PageDown):
		return []types.Action{types.NavigateAction{Direction: "pagedown"}}, true
	case key.Matches(msg, k.Top):
		return []types.Action{types.NavigateAction{Direction: "home"}}, true
	case key.Matches(msg, k.Bottom):
		return []types.Action{types.NavigateAction{Direction: "end"}}, true

	case key.Matches(msg, k.Toggle):
		if ctx.TotalItems() == 0 {
			return nil, true
		}
		return []types.Action{types.SelectAction{Index: -1}}, true
	case key.Matches(msg, k.ToggleAll):
		return []types.Action{types.ToggleAllAction{}}, true
	case key.Matches(msg, k.DeselectAll):
		return []types.Action{types.DeselectAllAction{}}, true
	case key.Matches(msg, k.Clear):
		// Clear selection if any, otherwise do nothing
		if ctx.HasSelection() {
			return []types.Action{types.ClearSelectionAction{}}, true
		}
		return nil, true

	case key.Matches(msg, k.Filter):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeFilter, Data: ctx.FilterQuery()}}, true
	case key.Matches(msg, k.Sort):
		return []types.Action{types.CycleSortAction{}}, true
	case key.Matches(msg, k.Export):
		return []types.Action{types.ShowSelectionAction{}}, true
	case key.Matches(msg, k.Help):
		return []types.Action{types.ToggleHelpAction{}}, true
	}

	return nil, false
}

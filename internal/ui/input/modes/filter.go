package modes

import (
	"github.com/charmbracelet/bubbles/textinput"

	"rowpick/internal/ui/input/types"
)

// FilterMode edits the row filter; the view is refiltered as the user types
type FilterMode struct {
	TextInputMode
}

func NewFilterMode(ti *textinput.Model) *FilterMode {
	return &FilterMode{
		TextInputMode: NewTextInputMode(types.ModeFilter, "filter", ti),
	}
}

package selection

// Command names reported in SelectionChangedEvent
const (
	CommandSelect       = "select"
	CommandDeselect     = "deselect"
	CommandSelectBulk   = "select_bulk"
	CommandDeselectBulk = "deselect_bulk"
	CommandSelectRange  = "select_range"
)

// QueryFunc maps a visible index to the row id shown there
type QueryFunc func(index int) (id int, ok bool)

// State holds selection bookkeeping that is not part of the store
type State struct {
	LastSelected int // anchor for range selection, -1 when unset
}

package selection

import (
	"slices"

	"rowpick/internal/eventbus"
	selstore "rowpick/internal/selection"
)

// Service binds a selection store to the visible list and reports every change on the bus
type Service struct {
	store   *selstore.Store[int]
	state   *State
	bus     eventbus.EventBus
	queryFn QueryFunc
}

// NewService creates a selection service with an empty store
func NewService(bus eventbus.EventBus) *Service {
	return &Service{
		store: selstore.NewStore[int](),
		state: &State{LastSelected: -1},
		bus:   bus,
	}
}

// SetQueryFunction sets the function used to resolve visible indices
func (s *Service) SetQueryFunction(fn QueryFunc) {
	s.queryFn = fn
}

// Store exposes the underlying store for read-only queries
func (s *Service) Store() *selstore.Store[int] {
	return s.store
}

// SetReference replaces the selectable ids, typically the visible rows after a
// load, filter, or sort. The selection itself is kept.
func (s *Service) SetReference(ids []int) {
	s.store.SetReference(ids)
	s.state.LastSelected = -1

	s.bus.Publish(eventbus.ReferenceChangedEvent{
		Size:       s.store.ReferenceLen(),
		Complement: s.store.ComplementLen(),
		Version:    s.store.Version(),
	})
}

// Toggle flips the checkbox of the row at index
func (s *Service) Toggle(index int) {
	id, ok := s.resolve(index)
	if !ok {
		return
	}
	props := s.store.CheckboxProps(id)
	s.setChecked(props, id, !props.Checked)
	s.state.LastSelected = index
}

// SetChecked sets the checkbox of the row at index
func (s *Service) SetChecked(index int, checked bool) {
	id, ok := s.resolve(index)
	if !ok {
		return
	}
	s.setChecked(s.store.CheckboxProps(id), id, checked)
	s.state.LastSelected = index
}

func (s *Service) setChecked(props selstore.CheckboxProps, id int, checked bool) {
	wasChecked := props.Checked
	props.OnToggle(checked)

	event := eventbus.SelectionChangedEvent{Command: CommandDeselect}
	if checked {
		event.Command = CommandSelect
		if !wasChecked {
			event.Added = []int{id}
		}
	} else if wasChecked {
		event.Removed = []int{id}
	}
	s.publish(event)
}

// SelectRange selects every row between the last toggled index and toIndex
func (s *Service) SelectRange(toIndex int) {
	if s.queryFn == nil || s.state.LastSelected < 0 {
		return
	}

	start, end := s.state.LastSelected, toIndex
	if start > end {
		start, end = end, start
	}

	var added []int
	for i := start; i <= end; i++ {
		id, ok := s.queryFn(i)
		if ok && !s.store.IsSelected(id) {
			added = append(added, id)
		}
	}
	s.store.SelectBulk(added)
	s.state.LastSelected = toIndex

	s.publish(eventbus.SelectionChangedEvent{
		Command: CommandSelectRange,
		Added:   added,
	})
}

// ToggleAll drives the bulk checkbox: everything visible becomes selected
// unless it already is, in which case everything visible is deselected
func (s *Service) ToggleAll() {
	if s.store.BulkCheckboxProps().Checked {
		s.DeselectAll()
	} else {
		s.SelectAll()
	}
}

// SelectAll selects every id of the reference
func (s *Service) SelectAll() {
	ref := s.store.Reference()
	var added []int
	for _, id := range ref {
		if !s.store.IsSelected(id) {
			added = append(added, id)
		}
	}

	s.store.BulkCheckboxProps().OnToggle(true)

	s.publish(eventbus.SelectionChangedEvent{
		Command: CommandSelectBulk,
		Added:   added,
	})
}

// DeselectAll deselects every id of the reference; selected ids outside it are kept
func (s *Service) DeselectAll() {
	ref := s.store.Reference()
	var removed []int
	for _, id := range ref {
		if s.store.IsSelected(id) {
			removed = append(removed, id)
		}
	}

	s.store.BulkCheckboxProps().OnToggle(false)

	s.publish(eventbus.SelectionChangedEvent{
		Command: CommandDeselectBulk,
		Removed: removed,
	})
}

// Clear drops the whole selection, including ids outside the reference
func (s *Service) Clear() {
	s.store.Clear()
	s.state.LastSelected = -1

	s.bus.Publish(eventbus.SelectionClearedEvent{
		Reference: s.store.ReferenceLen(),
		Version:   s.store.Version(),
	})
}

// IsSelected checks if a row is selected
func (s *Service) IsSelected(id int) bool {
	return s.store.IsSelected(id)
}

// GetSelected returns all selected ids in ascending order
func (s *Service) GetSelected() []int {
	ids := s.store.SelectedIDs()
	slices.Sort(ids)
	return ids
}

// GetCount returns the number of selected rows
func (s *Service) GetCount() int {
	return s.store.Len()
}

// HasSelection returns true if anything is selected
func (s *Service) HasSelection() bool {
	return s.store.Len() > 0
}

// CheckboxProps returns the checkbox binding for a row id
func (s *Service) CheckboxProps(id int) selstore.CheckboxProps {
	return s.store.CheckboxProps(id)
}

// BulkProps returns the binding for the bulk checkbox
func (s *Service) BulkProps() selstore.BulkCheckboxProps {
	return s.store.BulkCheckboxProps()
}

// Bulk returns the bulk checkbox state
func (s *Service) Bulk() selstore.BulkState {
	return s.store.BulkState()
}

// Version returns the store version; it changes after every command
func (s *Service) Version() uint64 {
	return s.store.Version()
}

// LastSelected returns the anchor used by SelectRange, or -1
func (s *Service) LastSelected() int {
	return s.state.LastSelected
}

func (s *Service) resolve(index int) (int, bool) {
	if s.queryFn == nil {
		return 0, false
	}
	return s.queryFn(index)
}

func (s *Service) publish(event eventbus.SelectionChangedEvent) {
	event.Total = s.store.Len()
	event.Reference = s.store.ReferenceLen()
	event.Complement = s.store.ComplementLen()
	event.Version = s.store.Version()
	s.bus.Publish(event)
}

package selection

// BulkState is the four-valued status of the bulk checkbox
type BulkState int

const (
	// BulkEmpty means the reference list is empty
	BulkEmpty BulkState = iota
	// BulkNone means no reference id is selected
	BulkNone
	// BulkSome means some, but not all, reference ids are selected
	BulkSome
	// BulkAll means every reference id is selected
	BulkAll
)

func (b BulkState) String() string {
	switch b {
	case BulkEmpty:
		return "empty"
	case BulkNone:
		return "none"
	case BulkSome:
		return "some"
	case BulkAll:
		return "all"
	default:
		return "unknown"
	}
}

// CheckboxProps binds a single row checkbox to the store
type CheckboxProps struct {
	Checked  bool
	OnToggle func(checked bool)
}

// BulkCheckboxProps binds the "select all" checkbox to the store
type BulkCheckboxProps struct {
	Checked       bool
	Indeterminate bool
	OnToggle      func(checked bool)
}

// CheckboxProps returns the checkbox binding for id
func (s *Store[ID]) CheckboxProps(id ID) CheckboxProps {
	return CheckboxProps{
		Checked: s.IsSelected(id),
		OnToggle: func(checked bool) {
			if checked {
				s.Select(id)
			} else {
				s.Deselect(id)
			}
		},
	}
}

// BulkCheckboxProps returns the binding for the bulk checkbox.
// Checked and Indeterminate are computed only against the current reference;
// selected ids outside it never count towards "all selected".
func (s *Store[ID]) BulkCheckboxProps() BulkCheckboxProps {
	state := s.BulkState()
	return BulkCheckboxProps{
		Checked:       state == BulkAll,
		Indeterminate: state == BulkSome,
		OnToggle: func(checked bool) {
			// The reference is read at toggle time, not at props time
			if checked {
				s.SelectBulk(s.reference)
			} else {
				s.DeselectBulk(s.reference)
			}
		},
	}
}

// BulkState derives the bulk checkbox state from the reference and complement sizes
func (s *Store[ID]) BulkState() BulkState {
	total := len(s.members)
	unselected := len(s.complement)
	switch {
	case total == 0:
		return BulkEmpty
	case unselected == 0:
		return BulkAll
	case unselected < total:
		return BulkSome
	default:
		return BulkNone
	}
}

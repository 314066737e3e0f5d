package logic

import (
	"slices"
	"strings"

	"rowpick/internal/domain"
)

// SortMode represents different sort modes
type SortMode int

const (
	SortByID SortMode = iota
	SortByFirstName
	SortByLastName
	SortByEmail
	sortModeCount
)

// String returns the label shown in the status line
func (m SortMode) String() string {
	switch m {
	case SortByID:
		return "id"
	case SortByFirstName:
		return "first name"
	case SortByLastName:
		return "last name"
	case SortByEmail:
		return "email"
	default:
		return "unknown"
	}
}

// Next returns the mode that follows m, wrapping around
func (m SortMode) Next() SortMode {
	return (m + 1) % sortModeCount
}

// RowSorter handles row sorting logic
type RowSorter struct {
	lookup RowLookup
}

// NewRowSorter creates a new row sorter
func NewRowSorter(lookup RowLookup) *RowSorter {
	return &RowSorter{lookup: lookup}
}

// Sort orders ids in place according to mode. Ties fall back to id order and
// ids without a row sort last.
func (s *RowSorter) Sort(ids []int, mode SortMode) {
	if mode == SortByID {
		slices.Sort(ids)
		return
	}

	key := func(row domain.Row) string {
		switch mode {
		case SortByFirstName:
			return strings.ToLower(row.FirstName)
		case SortByLastName:
			return strings.ToLower(row.LastName)
		default:
			return strings.ToLower(row.Email)
		}
	}

	slices.SortStableFunc(ids, func(a, b int) int {
		rowA, okA := s.lookup(a)
		rowB, okB := s.lookup(b)
		if !okA || !okB {
			switch {
			case okA:
				return -1
			case okB:
				return 1
			}
			return a - b
		}
		if c := strings.Compare(key(rowA), key(rowB)); c != 0 {
			return c
		}
		return a - b
	})
}

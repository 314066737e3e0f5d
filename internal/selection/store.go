// Package selection tracks which items of a large, changing collection are
// selected, and answers tri-state "select all" queries without scanning the
// collection.
//
// A Store keeps three pieces of state: the reference list (every id that is
// currently selectable), the selected set, and the complement set (reference
// ids that are not selected). The complement is a cache: it is rebuilt by
// SetReference and Clear and updated incrementally by every other command, so
// that the bulk checkbox state is O(1) to compute.
//
// A Store is not safe for concurrent use. Callers that share one across
// goroutines must serialize every call themselves.
package selection

import "slices"

// Store holds the selection state for one list scope.
//
// ID must have well-defined equality; ordering is never required.
type Store[ID comparable] struct {
	reference  []ID
	members    Set[ID]
	selected   Set[ID]
	complement Set[ID]
	version    uint64
}

// NewStore creates an empty store
func NewStore[ID comparable]() *Store[ID] {
	return &Store[ID]{
		members:    make(Set[ID]),
		selected:   make(Set[ID]),
		complement: make(Set[ID]),
	}
}

// SetReference replaces the reference list and rebuilds the complement set in
// one pass over ids. The selected set is left untouched, so ids selected under
// a previous reference stay selected even when they are no longer present.
func (s *Store[ID]) SetReference(ids []ID) {
	s.reference = slices.Clone(ids)
	s.members = make(Set[ID], len(ids))
	s.complement = make(Set[ID], len(ids))
	for _, id := range ids {
		s.members[id] = struct{}{}
		if _, ok := s.selected[id]; !ok {
			s.complement[id] = struct{}{}
		}
	}
	s.version++
}

// Select marks id as selected
func (s *Store[ID]) Select(id ID) {
	s.selectOne(id)
	s.version++
}

// Deselect marks id as not selected.
// The id only enters the complement when it belongs to the reference list, so
// the complement never holds ids outside the reference.
func (s *Store[ID]) Deselect(id ID) {
	s.deselectOne(id)
	s.version++
}

// SelectBulk selects every id in ids
func (s *Store[ID]) SelectBulk(ids []ID) {
	for _, id := range ids {
		s.selectOne(id)
	}
	s.version++
}

// DeselectBulk deselects every id in ids
func (s *Store[ID]) DeselectBulk(ids []ID) {
	for _, id := range ids {
		s.deselectOne(id)
	}
	s.version++
}

// Clear empties the selection; every reference id becomes part of the complement
func (s *Store[ID]) Clear() {
	s.selected = make(Set[ID])
	s.complement = s.members.Clone()
	s.version++
}

func (s *Store[ID]) selectOne(id ID) {
	s.selected[id] = struct{}{}
	delete(s.complement, id)
}

func (s *Store[ID]) deselectOne(id ID) {
	delete(s.selected, id)
	if _, ok := s.members[id]; ok {
		s.complement[id] = struct{}{}
	}
}

// IsSelected reports whether id is selected
func (s *Store[ID]) IsSelected(id ID) bool {
	_, ok := s.selected[id]
	return ok
}

// Len returns the number of selected ids, including ids outside the current reference
func (s *Store[ID]) Len() int {
	return len(s.selected)
}

// Selection returns a snapshot of the selected set
func (s *Store[ID]) Selection() Set[ID] {
	return s.selected.Clone()
}

// SelectedIDs returns the selected ids in no particular order
func (s *Store[ID]) SelectedIDs() []ID {
	return s.selected.Slice()
}

// Reference returns a copy of the reference list in its original order
func (s *Store[ID]) Reference() []ID {
	return slices.Clone(s.reference)
}

// ReferenceLen returns the number of distinct reference ids
func (s *Store[ID]) ReferenceLen() int {
	return len(s.members)
}

// InReference reports whether id belongs to the current reference list
func (s *Store[ID]) InReference(id ID) bool {
	_, ok := s.members[id]
	return ok
}

// Complement returns a snapshot of the reference ids that are not selected
func (s *Store[ID]) Complement() Set[ID] {
	return s.complement.Clone()
}

// ComplementLen returns the number of reference ids that are not selected
func (s *Store[ID]) ComplementLen() int {
	return len(s.complement)
}

// Version increases by one on every command, no-ops included. Observers
// compare versions instead of map identity to detect changes.
func (s *Store[ID]) Version() uint64 {
	return s.version
}

package logic

import (
	"sync"

	"rowpick/internal/domain"
)

// MemoryRowStore is an in-memory implementation of RowStore.
// Rows keep their insertion order; adding a row with a known id replaces it in place.
type MemoryRowStore struct {
	mu    sync.RWMutex
	rows  []domain.Row
	index map[int]int // row id -> position in rows
}

// NewMemoryRowStore creates a new memory-based row store
func NewMemoryRowStore() *MemoryRowStore {
	return &MemoryRowStore{
		index: make(map[int]int),
	}
}

func (s *MemoryRowStore) GetRow(id int) (domain.Row, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	pos, ok := s.index[id]
	if !ok {
		return domain.Row{}, false
	}
	return s.rows[pos], true
}

// AllIDs returns every row id in insertion order
func (s *MemoryRowStore) AllIDs() []int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]int, len(s.rows))
	for i, row := range s.rows {
		ids[i] = row.ID
	}
	return ids
}

func (s *MemoryRowStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.rows)
}

func (s *MemoryRowStore) AddRows(rows []domain.Row) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, row := range rows {
		if pos, ok := s.index[row.ID]; ok {
			s.rows[pos] = row
			continue
		}
		s.index[row.ID] = len(s.rows)
		s.rows = append(s.rows, row)
	}
}

func (s *MemoryRowStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows = nil
	s.index = make(map[int]int)
}

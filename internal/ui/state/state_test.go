package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIDAt(t *testing.T) {
	s := NewAppState()
	s.SetVisible([]int{7, 3, 9})

	id, ok := s.IDAt(1)
	assert.True(t, ok)
	assert.Equal(t, 3, id)

	_, ok = s.IDAt(3)
	assert.False(t, ok)
	_, ok = s.IDAt(-1)
	assert.False(t, ok)
}

func TestIsFiltered(t *testing.T) {
	s := NewAppState()
	assert.False(t, s.IsFiltered())
	s.FilterQuery = "ada"
	assert.True(t, s.IsFiltered())
}

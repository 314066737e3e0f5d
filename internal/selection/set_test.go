package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetOperations(t *testing.T) {
	s := NewSet("a", "b")
	s.Add("c")
	s.Add("a")
	s.Delete("b")
	s.Delete("missing")

	assert.Equal(t, 2, s.Len())
	assert.True(t, s.Contains("a"))
	assert.False(t, s.Contains("b"))
	assert.ElementsMatch(t, []string{"a", "c"}, s.Slice())
}

func TestSetCloneAndEqual(t *testing.T) {
	s := NewSet(1, 2, 3)
	c := s.Clone()
	assert.True(t, s.Equal(c))

	c.Delete(3)
	assert.False(t, s.Equal(c))
	assert.True(t, s.Contains(3))

	assert.False(t, NewSet(1, 2).Equal(NewSet(1, 3)))
	assert.True(t, NewSet[int]().Equal(Set[int]{}))
}

package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckboxPropsToggle(t *testing.T) {
	s := NewStore[int]()
	s.SetReference([]int{1, 2})

	props := s.CheckboxProps(1)
	assert.False(t, props.Checked)

	props.OnToggle(true)
	assert.True(t, s.IsSelected(1))
	assert.True(t, s.CheckboxProps(1).Checked)

	// Props captured earlier keep acting on the live store
	props.OnToggle(false)
	assert.False(t, s.IsSelected(1))
	assert.True(t, s.Complement().Contains(1))
}

func TestBulkCheckboxPropsToggle(t *testing.T) {
	s := NewStore[int]()
	s.SetReference([]int{1, 2, 3})
	s.Select(2)

	s.BulkCheckboxProps().OnToggle(true)
	assert.ElementsMatch(t, []int{1, 2, 3}, s.SelectedIDs())
	assert.True(t, s.BulkCheckboxProps().Checked)

	s.BulkCheckboxProps().OnToggle(false)
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, BulkNone, s.BulkState())
}

func TestBulkToggleUsesReferenceAtToggleTime(t *testing.T) {
	s := NewStore[int]()
	s.SetReference([]int{1, 2})
	props := s.BulkCheckboxProps()

	s.SetReference([]int{3, 4})
	props.OnToggle(true)

	assert.ElementsMatch(t, []int{3, 4}, s.SelectedIDs())
}

func TestBulkDeselectLeavesOutsideSelection(t *testing.T) {
	s := NewStore[int]()
	s.SetReference([]int{1, 2})
	s.Select(1)
	s.SetReference([]int{2, 3})
	s.SelectBulk([]int{2, 3})

	s.BulkCheckboxProps().OnToggle(false)

	assert.Equal(t, []int{1}, s.SelectedIDs())
	assert.Equal(t, BulkNone, s.BulkState())
}

func TestBulkStateString(t *testing.T) {
	tests := []struct {
		state BulkState
		want  string
	}{
		{BulkEmpty, "empty"},
		{BulkNone, "none"},
		{BulkSome, "some"},
		{BulkAll, "all"},
		{BulkState(99), "unknown"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.state.String())
	}
}

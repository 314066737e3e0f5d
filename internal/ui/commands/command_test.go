package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rowpick/internal/domain"
	"rowpick/internal/eventbus"
	"rowpick/internal/logic"
	selstore "rowpick/internal/selection"
	uilogic "rowpick/internal/ui/logic"
	"rowpick/internal/ui/services/selection"
	"rowpick/internal/ui/state"
)

func newTestExecutor(t *testing.T) (*Executor, *CommandContext) {
	t.Helper()

	bus := eventbus.New(nil)
	t.Cleanup(bus.Close)

	rows := logic.NewMemoryRowStore()
	rows.AddRows([]domain.Row{
		{ID: 3, FirstName: "Grace", LastName: "Hopper"},
		{ID: 1, FirstName: "Ada", LastName: "Lovelace"},
		{ID: 2, FirstName: "Alan", LastName: "Kay"},
		{ID: 4, FirstName: "Barbara", LastName: "Liskov"},
	})

	st := state.NewAppState()
	sel := selection.NewService(bus)
	sel.SetQueryFunction(st.IDAt)

	ctx := &CommandContext{
		State:     st,
		Selection: sel,
		Rows:      rows,
		Filter:    uilogic.NewRowFilter(rows.GetRow, sel.IsSelected),
		Sorter:    uilogic.NewRowSorter(rows.GetRow),
		Bus:       bus,
	}
	e := NewExecutor(ctx)
	e.ExecuteRebuildView()
	return e, ctx
}

func TestRebuildViewSetsReference(t *testing.T) {
	_, ctx := newTestExecutor(t)

	assert.Equal(t, []int{1, 2, 3, 4}, ctx.State.VisibleIDs)
	assert.Equal(t, []int{1, 2, 3, 4}, ctx.Selection.Store().Reference())
}

func TestRebuildViewFiltersAndSorts(t *testing.T) {
	e, ctx := newTestExecutor(t)

	ctx.State.FilterQuery = "l"
	ctx.State.SortMode = uilogic.SortByLastName
	e.ExecuteRebuildView()

	// Names containing "l", by last name
	assert.Equal(t, []int{2, 4, 1}, ctx.State.VisibleIDs)
	assert.Equal(t, 3, ctx.Selection.Store().ReferenceLen())
}

func TestToggleAndBulkCommands(t *testing.T) {
	e, ctx := newTestExecutor(t)

	e.ExecuteToggleSelection(0)
	assert.Equal(t, []int{1}, ctx.Selection.GetSelected())
	assert.Equal(t, selstore.BulkSome, ctx.Selection.Bulk())

	e.ExecuteToggleAll()
	assert.Equal(t, selstore.BulkAll, ctx.Selection.Bulk())
	assert.Equal(t, "4 selected", ctx.State.StatusMessage)

	e.ExecuteDeselectAll()
	assert.Equal(t, selstore.BulkNone, ctx.Selection.Bulk())
	assert.False(t, ctx.Selection.HasSelection())
}

func TestSelectRangeWithoutAnchor(t *testing.T) {
	e, ctx := newTestExecutor(t)

	e.ExecuteSelectRange(2)
	assert.Equal(t, []int{3}, ctx.Selection.GetSelected())

	e.ExecuteSelectRange(0)
	assert.Equal(t, []int{1, 2, 3}, ctx.Selection.GetSelected())
}

func TestClearSelection(t *testing.T) {
	e, ctx := newTestExecutor(t)

	// Nothing to clear
	e.ExecuteClearSelection()
	assert.Empty(t, ctx.State.StatusMessage)

	e.ExecuteToggleAll()
	ctx.State.FilterQuery = "ada"
	e.ExecuteRebuildView()
	require.Equal(t, 4, ctx.Selection.GetCount())

	e.ExecuteClearSelection()
	assert.Equal(t, 0, ctx.Selection.GetCount())
	assert.Equal(t, "Selection cleared", ctx.State.StatusMessage)
	assert.Equal(t, 1, ctx.Selection.Store().ComplementLen())
}

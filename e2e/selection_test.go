//go:build e2e && unix

package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func startRows(t *testing.T, rows string) *TUITestFramework {
	t.Helper()
	tf := NewTUITest(t)
	t.Cleanup(tf.Cleanup)

	require.NoError(t, tf.StartApp("-rows", rows, "-seed", "1"), "Failed to start app")
	require.True(t, tf.Ready(), "Should receive ready signal")
	require.True(t, tf.SeePlain("rowpick"), "Should show rowpick title")
	return tf
}

func TestRowSelection(t *testing.T) {
	t.Parallel()
	tf := startRows(t, "20")

	none := "0 selected · 20 visible · none"
	require.True(t, tf.SeePlain(none))

	require.NoError(t, tf.Select())
	require.True(t, tf.SeePlain("1 selected · 20 visible · some"), "Toggling a row should make the bulk checkbox indeterminate")
	require.True(t, tf.SeePlain("[-]"))

	before := tf.CountPlain(none)
	require.NoError(t, tf.Select())
	require.True(t, tf.SeePlainAgain(none, before))
}

func TestBulkCheckbox(t *testing.T) {
	t.Parallel()
	tf := startRows(t, "20")

	require.NoError(t, tf.SendKeys(KeyToggleAll))
	require.True(t, tf.SeePlain("20 selected · 20 visible · all"))

	none := "0 selected · 20 visible · none"
	before := tf.CountPlain(none)
	require.NoError(t, tf.SendKeys(KeyToggleAll))
	require.True(t, tf.SeePlainAgain(none, before))
}

func TestRangeSelection(t *testing.T) {
	t.Parallel()
	tf := startRows(t, "20")

	require.NoError(t, tf.Press(KeyRange, KeyRange, KeyRange))
	require.True(t, tf.SeePlain("4 selected · 20 visible · some"))

	require.NoError(t, tf.SendKeys(KeyEsc))
	require.True(t, tf.SeePlain("Selection cleared"))
}

func TestFilterKeepsSelection(t *testing.T) {
	t.Parallel()
	tf := startRows(t, "20")

	require.NoError(t, tf.SendKeys(KeyToggleAll))
	require.True(t, tf.SeePlain("20 selected · 20 visible · all"))

	require.NoError(t, tf.Filter("id:3"))
	require.True(t, tf.SeePlain("20 selected · 1 visible · all"), "Selection outside the filter is kept")

	// Deselect the only visible row
	require.NoError(t, tf.Select())
	require.True(t, tf.SeePlain("19 selected · 1 visible · none"))
}

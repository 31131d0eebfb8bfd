package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ruminaider/kvedit/internal/kvtree"
	"github.com/ruminaider/kvedit/internal/record"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRows(t *testing.T, doc string) []kvtree.Row {
	t.Helper()
	rec, err := record.Parse([]byte(doc))
	require.NoError(t, err)
	return kvtree.FromRecord(rec, kvtree.Sequence("n")).Visible()
}

func TestTreeView_CursorStaysInRange(t *testing.T) {
	v := NewTreeView(testRows(t, `{"a":1,"b":2}`))
	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, "a", v.Selected().Key)

	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyDown})
	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, "b", v.Selected().Key)

	v, _ = v.Update(runes("g"))
	assert.Equal(t, "a", v.Selected().Key)
	v, _ = v.Update(runes("G"))
	assert.Equal(t, "b", v.Selected().Key)
}

func TestTreeView_SetRowsClampsCursor(t *testing.T) {
	v := NewTreeView(testRows(t, `{"a":1,"b":2}`))
	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyDown})
	v.SetRows(testRows(t, `{"a":1}`))
	assert.Equal(t, "a", v.Selected().Key)

	v.SetRows(nil)
	assert.Nil(t, v.Selected())
}

func TestTreeView_Select(t *testing.T) {
	rows := testRows(t, `{"a":{"b":1},"c":2}`)
	v := NewTreeView(rows)
	assert.True(t, v.Select(rows[2].Node.ID))
	assert.Equal(t, "c", v.Selected().Key)
	assert.False(t, v.Select("missing"))
	assert.Equal(t, "c", v.Selected().Key)
}

func TestTreeView_ScrollsWithCursor(t *testing.T) {
	v := NewTreeView(testRows(t, `{"a":1,"b":2,"c":3,"d":4}`))
	v.SetSize(40, 2)
	v, _ = v.Update(runes("G"))
	assert.Equal(t, 2, v.offset)
	assert.NotContains(t, v.View(), "a")
	assert.Contains(t, v.View(), "d")
}

func TestTreeView_ActionKeys(t *testing.T) {
	rows := testRows(t, `{"a":1}`)
	v := NewTreeView(rows)

	tests := []struct {
		key    tea.KeyMsg
		action TreeAction
	}{
		{tea.KeyMsg{Type: tea.KeyEnter}, ActionToggle},
		{tea.KeyMsg{Type: tea.KeyRight}, ActionExpand},
		{tea.KeyMsg{Type: tea.KeyLeft}, ActionCollapse},
		{runes("a"), ActionAddRoot},
		{runes("c"), ActionAddChild},
		{runes("r"), ActionRename},
		{runes("e"), ActionEditValue},
		{runes("t"), ActionChangeType},
		{runes("d"), ActionRemove},
		{tea.KeyMsg{Type: tea.KeyDelete}, ActionRemove},
	}
	for _, tt := range tests {
		_, cmd := v.Update(tt.key)
		msg := extractTreeAction(cmd)
		require.NotNil(t, msg, tt.key.String())
		assert.Equal(t, tt.action, msg.Action, tt.key.String())
		assert.Equal(t, rows[0].Node.ID, msg.ID)
	}
}

func TestTreeView_EmptyTreeOnlyAddsRoots(t *testing.T) {
	v := NewTreeView(nil)
	assert.Contains(t, v.View(), "No parameters")

	_, cmd := v.Update(runes("d"))
	assert.Nil(t, cmd)

	_, cmd = v.Update(runes("a"))
	msg := extractTreeAction(cmd)
	require.NotNil(t, msg)
	assert.Equal(t, ActionAddRoot, msg.Action)
	assert.Empty(t, msg.ID)
}

func TestRenderRow(t *testing.T) {
	rows := testRows(t, `{"opts":{"n":2},"tags":["x"],"none":null,"":"v"}`)
	var out []string
	for _, r := range rows {
		out = append(out, renderRow(r))
	}
	assert.Contains(t, out[0], "▾ ")
	assert.Contains(t, out[0], "{1}")
	assert.Contains(t, out[1], "    n")
	assert.Contains(t, out[2], "[1]")
	assert.Contains(t, out[3], `"x"`)
	assert.Contains(t, out[4], "null")
	assert.Contains(t, out[5], "(no key)")
}

func TestRenderValue_RawNestedItem(t *testing.T) {
	rows := testRows(t, `{"grid":[[{"a":1}]]}`)
	require.Len(t, rows, 3)
	assert.Contains(t, renderValue(rows[2].Node), `{"a":1}`)
}

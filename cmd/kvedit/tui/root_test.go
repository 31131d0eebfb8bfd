package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ruminaider/kvedit/internal/editor"
	"github.com/ruminaider/kvedit/internal/kvtree"
	"github.com/ruminaider/kvedit/internal/record"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type saver struct {
	saved []record.Record
	err   error
}

func (s *saver) save(r record.Record) error {
	if s.err != nil {
		return s.err
	}
	s.saved = append(s.saved, r)
	return nil
}

// testModel opens a session on doc and wires an editor to it the way the
// edit command does.
func testModel(t *testing.T, doc string, opts ...editor.Option) (Model, *editor.Session, *saver) {
	t.Helper()
	rec, err := record.Parse([]byte(doc))
	require.NoError(t, err)

	sv := &saver{}
	session := editor.NewSession(sv.save)
	session.Open(rec)
	opts = append([]editor.Option{editor.WithIDs(kvtree.Sequence("n"))}, opts...)
	ed := editor.New(rec, session.Edit, opts...)

	m := NewModel(ed, session, "params.json")
	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	return m, session, sv
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(Model)
	require.True(t, ok)
	return out
}

var namedKeys = map[string]tea.KeyType{
	"enter":     tea.KeyEnter,
	"esc":       tea.KeyEsc,
	"tab":       tea.KeyTab,
	"up":        tea.KeyUp,
	"down":      tea.KeyDown,
	"backspace": tea.KeyBackspace,
	"ctrl+s":    tea.KeyCtrlS,
	"ctrl+c":    tea.KeyCtrlC,
}

func key(s string) tea.KeyMsg {
	if k, ok := namedKeys[s]; ok {
		return tea.KeyMsg{Type: k}
	}
	return runes(s)
}

// press sends keys in order and returns the model with the last command.
func press(t *testing.T, m Model, keys ...string) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		var next tea.Model
		next, cmd = m.Update(key(k))
		out, ok := next.(Model)
		require.True(t, ok)
		m = out
	}
	return m, cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestAddTimeoutParameterAndSave(t *testing.T) {
	m, session, sv := testModel(t, `{}`)

	m, _ = press(t, m, "a")
	require.True(t, m.overlay.Active(), "a new root asks for its name")
	m, _ = press(t, m, "timeout", "enter")

	m, _ = press(t, m, "t")
	require.True(t, m.overlay.Active())
	m, _ = press(t, m, "down", "enter") // string -> number

	m, _ = press(t, m, "e")
	require.True(t, m.overlay.Active())
	m, _ = press(t, m, "backspace", "30", "enter")

	want := record.Record{{Key: "timeout", Value: 30.0}}
	assert.True(t, want.Equal(session.Working()))
	assert.True(t, session.Dirty())

	m, _ = press(t, m, "ctrl+s")
	require.True(t, m.overlay.Active())
	assert.Contains(t, m.overlay.View(), "1 added")

	m, cmd := press(t, m, "enter")
	assert.True(t, m.Saved)
	assert.True(t, isQuit(cmd))
	require.Len(t, sv.saved, 1)
	assert.True(t, want.Equal(sv.saved[0]))
	assert.False(t, session.IsOpen())
}

func TestSave_NothingToSave(t *testing.T) {
	m, _, sv := testModel(t, `{"a":1}`)
	m, cmd := press(t, m, "ctrl+s")
	assert.False(t, m.overlay.Active())
	assert.Nil(t, cmd)
	assert.Empty(t, sv.saved)
	assert.Contains(t, m.View(), "No changes to save")
}

func TestSave_FailureKeepsEditing(t *testing.T) {
	m, session, sv := testModel(t, `{"a":1,"b":2}`)
	sv.err = errors.New("disk full")

	m, _ = press(t, m, "d", "ctrl+s", "enter")
	assert.False(t, m.Saved)
	assert.True(t, session.IsOpen())
	assert.Contains(t, m.View(), "disk full")
}

func TestQuit_CleanSessionQuitsImmediately(t *testing.T) {
	m, session, _ := testModel(t, `{"a":1}`)
	m, cmd := press(t, m, "esc")
	assert.True(t, isQuit(cmd))
	assert.False(t, m.Saved)
	assert.False(t, session.IsOpen())
}

func TestQuit_DirtySessionAsksFirst(t *testing.T) {
	m, session, sv := testModel(t, `{"a":1,"b":2}`)

	m, _ = press(t, m, "d")
	assert.True(t, session.Dirty())

	m, cmd := press(t, m, "q")
	require.True(t, m.overlay.Active())
	assert.False(t, isQuit(cmd))

	m, cmd = press(t, m, "enter")
	assert.True(t, isQuit(cmd))
	assert.Empty(t, sv.saved)
	assert.False(t, session.Dirty(), "cancel restores the committed value")
	assert.Equal(t, []string{"a", "b"}, session.Working().Keys())
}

func TestQuit_DeclineKeepsEditing(t *testing.T) {
	m, session, _ := testModel(t, `{"a":1,"b":2}`)
	m, _ = press(t, m, "d", "esc")
	m, cmd := press(t, m, "esc")
	assert.Nil(t, cmd)
	assert.False(t, m.overlay.Active())
	assert.True(t, session.IsOpen())
}

func TestCtrlCCancels(t *testing.T) {
	m, session, _ := testModel(t, `{"a":1,"b":2}`)
	m, cmd := press(t, m, "d", "ctrl+c")
	assert.True(t, isQuit(cmd))
	assert.Equal(t, "", m.View())
	assert.False(t, session.IsOpen())
}

func TestAddChildToObject(t *testing.T) {
	m, session, _ := testModel(t, `{"opts":{}}`)
	m, _ = press(t, m, "c")
	require.True(t, m.overlay.Active())
	m, _ = press(t, m, "n", "enter")

	v, _ := session.Working().Get("opts")
	assert.Equal(t, record.Record{{Key: "n", Value: ""}}, v)
	assert.Equal(t, "n", m.tree.Selected().Key, "cursor follows the new child")
}

func TestAddChildToArray(t *testing.T) {
	m, session, _ := testModel(t, `{"stop":["a"]}`)
	m, _ = press(t, m, "c")
	assert.False(t, m.overlay.Active(), "array children are keyed by position")

	v, _ := session.Working().Get("stop")
	assert.Equal(t, []any{"a", ""}, v)
	assert.Equal(t, "1", m.tree.Selected().Key)
}

func TestAddChildToScalarIsRefused(t *testing.T) {
	m, session, _ := testModel(t, `{"a":1}`)
	m, _ = press(t, m, "c")
	assert.False(t, m.overlay.Active())
	assert.False(t, session.Dirty())
	assert.Contains(t, m.View(), "not an object or array")
}

func TestToggleDoesNotDirtySession(t *testing.T) {
	m, session, _ := testModel(t, `{"opts":{"n":1}}`)
	assert.Len(t, m.tree.rows, 2)

	m, _ = press(t, m, "enter")
	assert.Len(t, m.tree.rows, 1)
	assert.False(t, session.Dirty())

	m, _ = press(t, m, "l")
	assert.Len(t, m.tree.rows, 2)
	m, _ = press(t, m, "l")
	assert.Len(t, m.tree.rows, 2, "expand is idempotent")
	m, _ = press(t, m, "h")
	assert.Len(t, m.tree.rows, 1)
}

func TestRenameAndEditBoolean(t *testing.T) {
	m, session, _ := testModel(t, `{"flag":true}`)

	m, _ = press(t, m, "r", "backspace", "backspace", "backspace", "backspace", "stream", "enter")
	m, _ = press(t, m, "e")
	require.True(t, m.overlay.Active())
	m, _ = press(t, m, "down", "enter")

	want := record.Record{{Key: "stream", Value: false}}
	assert.True(t, want.Equal(session.Working()))
}

func TestEditValue_ContainersAndNullAreRefused(t *testing.T) {
	m, _, _ := testModel(t, `{"opts":{},"none":null}`)
	m, _ = press(t, m, "e")
	assert.False(t, m.overlay.Active())
	m, _ = press(t, m, "down", "e")
	assert.False(t, m.overlay.Active())
	assert.Contains(t, m.View(), "change the type first")
}

func TestOverlayCancelLeavesRecord(t *testing.T) {
	m, session, _ := testModel(t, `{"a":"x"}`)
	m, _ = press(t, m, "e", "yz", "esc")
	assert.False(t, m.overlay.Active())
	assert.False(t, session.Dirty())
}

func TestJSONMode_DraftRoundTrip(t *testing.T) {
	m, session, _ := testModel(t, `{"a":1}`)

	m, _ = press(t, m, "tab")
	assert.Equal(t, editor.ModeJSON, m.editor.Mode())
	assert.Equal(t, "{\n  \"a\": 1\n}", m.jsonPane.Value())
	assert.Contains(t, m.View(), "valid")

	m, _ = press(t, m, "x")
	assert.Equal(t, "JSON format error", m.editor.DraftError())
	assert.False(t, session.Dirty(), "an invalid draft is not committed")
	assert.Contains(t, m.View(), "JSON format error")

	m.jsonPane.Load(`{"b":2}`)
	m.syncDraft()
	assert.Empty(t, m.editor.DraftError())
	assert.True(t, record.Record{{Key: "b", Value: 2.0}}.Equal(session.Working()))

	m, _ = press(t, m, "tab")
	assert.Equal(t, editor.ModeVisual, m.editor.Mode())
	require.Len(t, m.tree.rows, 1)
	assert.Equal(t, "b", m.tree.Selected().Key)
}

func TestJSONMode_NonObjectDraft(t *testing.T) {
	m, session, _ := testModel(t, `{"a":1}`)
	m, _ = press(t, m, "tab")
	m.jsonPane.Load(`[1,2]`)
	m.syncDraft()
	assert.Equal(t, "must be an object", m.editor.DraftError())
	assert.False(t, session.Dirty())
}

func TestJSONMode_QTypesInsteadOfQuitting(t *testing.T) {
	m, _, _ := testModel(t, `{}`)
	m, _ = press(t, m, "tab")
	assert.Equal(t, "", m.jsonPane.Value(), "an empty record has a blank draft")

	m, _ = press(t, m, "q")
	assert.False(t, m.quitting)
	assert.Equal(t, "q", m.jsonPane.Value())
}

func TestJSONMode_SaveWarnsAboutInvalidDraft(t *testing.T) {
	m, _, _ := testModel(t, `{"a":1}`)
	m, _ = press(t, m, "tab")
	m.jsonPane.Load(`{"a":2}`)
	m.syncDraft()
	m, _ = press(t, m, "x", "ctrl+s")
	require.True(t, m.overlay.Active())
	assert.Contains(t, m.overlay.View(), "The last valid value is saved")
}

func TestStartInJSONMode(t *testing.T) {
	m, _, _ := testModel(t, `{"a":1}`, editor.WithMode(editor.ModeJSON))
	assert.Equal(t, editor.ModeJSON, m.tabBar.Mode())
	assert.Equal(t, "{\n  \"a\": 1\n}", m.jsonPane.Value())
}

func TestView(t *testing.T) {
	m, _, _ := testModel(t, `{"model":"gpt"}`)
	view := m.View()
	assert.Contains(t, view, "params.json")
	assert.Contains(t, view, "model")
	assert.Contains(t, view, "1 parameter · Visual")

	fresh := NewModel(m.editor, m.session, "x")
	assert.Equal(t, "Loading...", fresh.View())
}

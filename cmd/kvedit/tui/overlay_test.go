package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func closeMsg(t *testing.T, cmd tea.Cmd) OverlayCloseMsg {
	t.Helper()
	msg := extractOverlayClose(cmd)
	require.NotNil(t, msg)
	return *msg
}

func TestComposite(t *testing.T) {
	bg := "AAAA\nBBBB\nCCCC\nDDDD"
	result := Composite(bg, "XX\nXX", 4, 4)
	lines := strings.Split(result, "\n")
	require.Len(t, lines, 4)

	assert.Equal(t, "AAAA", lines[0])
	assert.Equal(t, "BXXB", lines[1])
	assert.Equal(t, "CXXC", lines[2])
	assert.Equal(t, "DDDD", lines[3])
}

func TestCompositeEmpty(t *testing.T) {
	assert.Equal(t, "hello", Composite("hello", "", 5, 1))
}

func TestComposite_PadsShortBackground(t *testing.T) {
	result := Composite("", "X", 3, 3)
	lines := strings.Split(result, "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, " X", lines[1])
}

func TestComposite_OversizedOverlay(t *testing.T) {
	result := Composite("A\nB", "XXXX\nXXXX\nXXXX\nXXXX", 2, 2)
	assert.NotEmpty(t, result)
}

func TestConfirmOverlay(t *testing.T) {
	o := NewConfirmOverlay("Discard changes", "Close without saving?")
	assert.True(t, o.Active())
	assert.Contains(t, o.View(), "Close without saving?")

	o, cmd := o.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, o.Active())
	assert.True(t, closeMsg(t, cmd).Confirmed, "OK is the default button")

	o = NewConfirmOverlay("t", "m")
	o, _ = o.Update(tea.KeyMsg{Type: tea.KeyTab})
	_, cmd = o.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, closeMsg(t, cmd).Confirmed)

	_, cmd = NewConfirmOverlay("t", "m").Update(runes("n"))
	assert.False(t, closeMsg(t, cmd).Confirmed)
	_, cmd = NewConfirmOverlay("t", "m").Update(runes("y"))
	assert.True(t, closeMsg(t, cmd).Confirmed)
}

func TestTextInputOverlay(t *testing.T) {
	o := NewTextInputOverlay("Parameter name", "key", "time")
	o, _ = o.Update(runes("out"))
	_, cmd := o.Update(tea.KeyMsg{Type: tea.KeyEnter})

	msg := closeMsg(t, cmd)
	assert.True(t, msg.Confirmed)
	assert.Equal(t, "timeout", msg.Result)
}

func TestTextInputOverlay_EmptyIsSubmitted(t *testing.T) {
	o := NewTextInputOverlay("Value", "string", "x")
	o, _ = o.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	_, cmd := o.Update(tea.KeyMsg{Type: tea.KeyEnter})

	msg := closeMsg(t, cmd)
	assert.True(t, msg.Confirmed)
	assert.Equal(t, "", msg.Result)
}

func TestTextInputOverlay_Esc(t *testing.T) {
	o := NewTextInputOverlay("Value", "string", "x")
	o, cmd := o.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, o.Active())
	assert.False(t, closeMsg(t, cmd).Confirmed)
}

func TestChoiceOverlay_StartsOnSelected(t *testing.T) {
	o := NewChoiceOverlay("Type", []string{"string", "number", "boolean"}, "number")
	assert.Contains(t, o.View(), "> number")

	o, _ = o.Update(tea.KeyMsg{Type: tea.KeyDown})
	o, _ = o.Update(tea.KeyMsg{Type: tea.KeyDown})
	_, cmd := o.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, "boolean", closeMsg(t, cmd).Result)
}

func TestChoiceOverlay_UnknownSelectionDefaultsToFirst(t *testing.T) {
	o := NewChoiceOverlay("Type", []string{"a", "b"}, "zzz")
	o, _ = o.Update(tea.KeyMsg{Type: tea.KeyUp})
	_, cmd := o.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, "a", closeMsg(t, cmd).Result)
}

func TestSummaryOverlay(t *testing.T) {
	o := NewSummaryOverlay("Save parameters", "1 added", "Save")
	view := o.View()
	assert.Contains(t, view, "1 added")
	assert.Contains(t, view, "Save")

	_, cmd := o.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, closeMsg(t, cmd).Confirmed)
}

func TestInactiveOverlay(t *testing.T) {
	var o Overlay
	o, cmd := o.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.Empty(t, o.View())
}

func TestOverlayMaxWidth(t *testing.T) {
	assert.Equal(t, 40, OverlayMaxWidth(30))
	assert.Equal(t, 60, OverlayMaxWidth(200))
	assert.Equal(t, 50, OverlayMaxWidth(75))
}

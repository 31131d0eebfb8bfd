package tui

import (
	"testing"

	"github.com/ruminaider/kvedit/internal/editor"
	"github.com/stretchr/testify/assert"
)

func TestNewTabBar(t *testing.T) {
	assert.Equal(t, editor.ModeVisual, NewTabBar(editor.ModeVisual, "").Mode())
	assert.Equal(t, editor.ModeJSON, NewTabBar(editor.ModeJSON, "").Mode())
}

func TestTabBarCycle(t *testing.T) {
	tb := NewTabBar(editor.ModeVisual, "")
	tb.CycleNext()
	assert.Equal(t, editor.ModeJSON, tb.Mode())
	tb.CycleNext()
	assert.Equal(t, editor.ModeVisual, tb.Mode(), "wraps around")
	tb.CyclePrev()
	assert.Equal(t, editor.ModeJSON, tb.Mode())
}

func TestTabBarSetMode(t *testing.T) {
	tb := NewTabBar(editor.ModeVisual, "")
	tb.SetMode(editor.ModeJSON)
	assert.Equal(t, editor.ModeJSON, tb.Mode())
	tb.SetMode("bogus")
	assert.Equal(t, editor.ModeJSON, tb.Mode(), "unknown modes are ignored")
}

func TestTabBarView(t *testing.T) {
	tb := NewTabBar(editor.ModeVisual, "params.json")
	tb.SetWidth(60)
	view := tb.View()
	assert.Contains(t, view, "Visual")
	assert.Contains(t, view, "JSON")
	assert.Contains(t, view, "params.json")
}

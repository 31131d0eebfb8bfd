package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/ruminaider/kvedit/internal/editor"
)

// StatusBar renders the bottom row with the parameter count, the mode and
// the keyboard shortcuts.
type StatusBar struct {
	count   int
	mode    editor.Mode
	dirty   bool
	message string
	width   int
}

// NewStatusBar creates a status bar with default values.
func NewStatusBar() StatusBar {
	return StatusBar{mode: editor.ModeVisual}
}

// SetWidth sets the available width for rendering.
func (s *StatusBar) SetWidth(w int) {
	s.width = w
}

// Update refreshes the editor state shown on the left.
func (s *StatusBar) Update(count int, mode editor.Mode, dirty bool) {
	s.count = count
	s.mode = mode
	s.dirty = dirty
}

// SetMessage shows msg in place of the summary until it is cleared with "".
func (s *StatusBar) SetMessage(msg string) {
	s.message = msg
}

func countLabel(n int) string {
	if n == 1 {
		return "1 parameter"
	}
	return fmt.Sprintf("%d parameters", n)
}

func (s StatusBar) shortcuts() []string {
	key := StatusBarKeyStyle.Render
	common := []string{
		key("Ctrl+S") + ": save",
		key("Tab") + ": mode",
		key("Esc") + ": cancel",
	}
	if s.mode == editor.ModeJSON {
		return common
	}
	return append([]string{
		key("a") + "/" + key("c") + ": add",
		key("r") + "/" + key("e") + "/" + key("t") + ": edit",
		key("d") + ": delete",
	}, common...)
}

// View renders the status bar.
func (s StatusBar) View() string {
	var left string
	if s.message != "" {
		left = StatusBarErrorStyle.Render(s.message)
	} else {
		left = fmt.Sprintf("%s · %s", countLabel(s.count), tabLabel(s.mode))
		if s.dirty {
			left += " " + StatusBarDirtyStyle.Render("[modified]")
		}
	}
	right := strings.Join(s.shortcuts(), " · ")

	avail := s.width - 2 // StatusBarStyle padding
	gap := avail - ansi.StringWidth(left) - ansi.StringWidth(right)
	if gap < 1 {
		// Shortcuts give way to the summary on narrow terminals.
		return StatusBarStyle.Width(s.width).Render(ansi.Truncate(left, max(avail, 1), "…"))
	}
	return StatusBarStyle.Width(s.width).Render(left + strings.Repeat(" ", gap) + right)
}

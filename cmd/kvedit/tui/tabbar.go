package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/ruminaider/kvedit/internal/editor"
)

var tabModes = []editor.Mode{editor.ModeVisual, editor.ModeJSON}

func tabLabel(m editor.Mode) string {
	if m == editor.ModeJSON {
		return "JSON"
	}
	return "Visual"
}

// TabBar renders the Visual and JSON tabs along the top of the editor,
// with the file being edited on the right.
type TabBar struct {
	active int
	title  string
	width  int
}

// NewTabBar creates a tab bar with mode selected.
func NewTabBar(mode editor.Mode, title string) TabBar {
	t := TabBar{title: title}
	t.SetMode(mode)
	return t
}

// SetWidth sets the available width for rendering.
func (t *TabBar) SetWidth(w int) {
	t.width = w
}

// Mode returns the mode of the active tab.
func (t TabBar) Mode() editor.Mode {
	return tabModes[t.active]
}

// SetMode selects the tab for m.
func (t *TabBar) SetMode(m editor.Mode) {
	for i, mode := range tabModes {
		if mode == m {
			t.active = i
		}
	}
}

// CycleNext advances to the next tab, wrapping around.
func (t *TabBar) CycleNext() {
	t.active = (t.active + 1) % len(tabModes)
}

// CyclePrev moves to the previous tab, wrapping around.
func (t *TabBar) CyclePrev() {
	t.active = (t.active + len(tabModes) - 1) % len(tabModes)
}

// View renders the tab bar.
func (t TabBar) View() string {
	var tabs []string
	for i, mode := range tabModes {
		if i == t.active {
			tabs = append(tabs, ActiveTabStyle.Render(tabLabel(mode)))
		} else {
			tabs = append(tabs, InactiveTabStyle.Render(tabLabel(mode)))
		}
	}
	left := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)

	right := ""
	if t.title != "" {
		right = TitleStyle.Render(t.title)
	}
	gap := t.width - 2 - ansi.StringWidth(left) - ansi.StringWidth(right)
	if gap < 1 {
		gap = 1
	}
	return TabBarStyle.Width(t.width).Render(left + strings.Repeat(" ", gap) + right)
}

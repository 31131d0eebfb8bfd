package tui

import (
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// JSONPane shows the raw JSON draft next to a live preview of its parse
// result.
type JSONPane struct {
	input   textarea.Model
	preview viewport.Model
	width   int
	height  int
}

// NewJSONPane creates an empty, focused JSON pane.
func NewJSONPane() JSONPane {
	ta := textarea.New()
	ta.Placeholder = "{}"
	ta.ShowLineNumbers = true
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.Focus()

	return JSONPane{
		input:   ta,
		preview: viewport.New(40, 10),
	}
}

// Load replaces the draft text, as on entering JSON mode.
func (p *JSONPane) Load(text string) {
	p.input.SetValue(text)
}

// Value returns the draft text.
func (p JSONPane) Value() string {
	return p.input.Value()
}

// SetPreview replaces the preview content.
func (p *JSONPane) SetPreview(text string) {
	p.preview.SetContent(text)
}

// SetSize splits the area evenly between the draft and the preview.
func (p *JSONPane) SetSize(w, h int) {
	p.width = w
	p.height = h

	half := max(10, w/2)
	inner := max(1, h-3) // border and title
	p.input.SetWidth(half - 2)
	p.input.SetHeight(inner)
	p.preview.Width = max(1, w-half-2)
	p.preview.Height = inner
}

// Update forwards keys to the draft textarea, and scroll keys with alt to
// the preview.
func (p JSONPane) Update(msg tea.Msg) (JSONPane, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "alt+up":
			p.preview.LineUp(1)
			return p, nil
		case "alt+down":
			p.preview.LineDown(1)
			return p, nil
		}
	}
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return p, cmd
}

// View renders both panes. errText is the draft error, empty when the draft
// is valid.
func (p JSONPane) View(errText string) string {
	badge := ValidBadgeStyle.Render("valid")
	if errText != "" {
		badge = ErrorBadgeStyle.Render(errText)
	}

	left := PaneStyle.Render(PaneTitleStyle.Render("Draft") + " " + badge + "\n" + p.input.View())
	right := PaneStyle.Render(PaneTitleStyle.Render("Preview") + "\n" + p.preview.View())
	return lipgloss.JoinHorizontal(lipgloss.Top, left, right)
}

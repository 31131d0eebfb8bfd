package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

// OverlayType identifies the kind of modal overlay.
type OverlayType int

const (
	OverlayConfirm   OverlayType = iota // Yes/No confirmation
	OverlayTextInput                    // Single-line text input
	OverlaySummary                      // Multi-line summary with confirm/cancel
	OverlayChoice                       // List of choices with cursor
)

// Overlay renders a centered modal box on top of the editor.
type Overlay struct {
	overlayType OverlayType
	title       string
	message     string   // body text (for Confirm, Summary)
	okLabel     string   // OK button label (for Summary)
	choices     []string // choice list (for Choice)
	cursor      int      // selected choice index (Choice), or button index (Confirm/Summary: 0=Cancel, 1=OK)
	input       textinput.Model
	width       int
	active      bool
}

// NewConfirmOverlay creates a confirmation dialog with Cancel/OK buttons.
func NewConfirmOverlay(title, message string) Overlay {
	return Overlay{
		overlayType: OverlayConfirm,
		title:       title,
		message:     message,
		cursor:      1,
		active:      true,
	}
}

// NewTextInputOverlay creates a text input dialog prefilled with value.
// Submitting an empty value is allowed: a blank key or an empty string is a
// legitimate edit.
func NewTextInputOverlay(title, placeholder, value string) Overlay {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.SetValue(value)
	ti.CursorEnd()
	ti.Focus()
	ti.Width = 30
	return Overlay{
		overlayType: OverlayTextInput,
		title:       title,
		input:       ti,
		active:      true,
	}
}

// NewSummaryOverlay creates a summary dialog with Cancel and okLabel buttons.
func NewSummaryOverlay(title, body, okLabel string) Overlay {
	return Overlay{
		overlayType: OverlaySummary,
		title:       title,
		message:     body,
		okLabel:     okLabel,
		cursor:      1,
		active:      true,
	}
}

// NewChoiceOverlay creates a list-of-choices dialog with the cursor on
// selected, or on the first choice when selected is not listed.
func NewChoiceOverlay(title string, choices []string, selected string) Overlay {
	o := Overlay{
		overlayType: OverlayChoice,
		title:       title,
		choices:     choices,
		active:      true,
	}
	for i, c := range choices {
		if c == selected {
			o.cursor = i
		}
	}
	return o
}

// Active returns whether the overlay is currently shown.
func (o Overlay) Active() bool {
	return o.active
}

// Update handles key messages for the overlay.
func (o Overlay) Update(msg tea.Msg) (Overlay, tea.Cmd) {
	if !o.active {
		return o, nil
	}

	switch o.overlayType {
	case OverlayConfirm, OverlaySummary:
		return o.updateButtons(msg)
	case OverlayTextInput:
		return o.updateTextInput(msg)
	case OverlayChoice:
		return o.updateChoice(msg)
	}
	return o, nil
}

func (o Overlay) close(result string, confirmed bool) (Overlay, tea.Cmd) {
	o.active = false
	return o, func() tea.Msg {
		return OverlayCloseMsg{Result: result, Confirmed: confirmed}
	}
}

func (o Overlay) updateButtons(msg tea.Msg) (Overlay, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return o, nil
	}
	switch key.String() {
	case "esc":
		return o.close("", false)
	case "tab", "left", "right", "h", "l":
		o.cursor = 1 - o.cursor
	case "y":
		return o.close("", true)
	case "n":
		return o.close("", false)
	case "enter":
		return o.close("", o.cursor == 1)
	}
	return o, nil
}

func (o Overlay) updateTextInput(msg tea.Msg) (Overlay, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			return o.close("", false)
		case "enter":
			return o.close(o.input.Value(), true)
		}
	}

	var cmd tea.Cmd
	o.input, cmd = o.input.Update(msg)
	return o, cmd
}

func (o Overlay) updateChoice(msg tea.Msg) (Overlay, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return o, nil
	}
	switch key.String() {
	case "esc":
		return o.close("", false)
	case "up", "k":
		if o.cursor > 0 {
			o.cursor--
		}
	case "down", "j":
		if o.cursor < len(o.choices)-1 {
			o.cursor++
		}
	case "enter":
		result := ""
		if o.cursor >= 0 && o.cursor < len(o.choices) {
			result = o.choices[o.cursor]
		}
		return o.close(result, true)
	}
	return o, nil
}

// View renders the overlay box. Compositing it over the editor is the
// caller's job, see Composite.
func (o Overlay) View() string {
	if !o.active {
		return ""
	}

	var b strings.Builder
	b.WriteString(OverlayTitleStyle.Render(o.title))
	b.WriteString("\n\n")

	switch o.overlayType {
	case OverlayConfirm:
		b.WriteString(o.message)
		b.WriteString("\n\n")
		b.WriteString(o.renderButtons("Cancel", "OK"))
	case OverlaySummary:
		b.WriteString(o.message)
		b.WriteString("\n\n")
		b.WriteString(o.renderButtons("Cancel", o.okLabel))
	case OverlayTextInput:
		b.WriteString(o.input.View())
		b.WriteString("\n\n")
		b.WriteString(OverlayHintStyle.Render("Enter: submit  Esc: cancel"))
	case OverlayChoice:
		for i, choice := range o.choices {
			if i == o.cursor {
				b.WriteString(OverlayChoiceCursorStyle.Render("> " + choice))
			} else {
				b.WriteString("  " + choice)
			}
			b.WriteString("\n")
		}
	}

	return OverlayStyle.Render(b.String())
}

func (o Overlay) renderButtons(cancel, ok string) string {
	cancelBtn := OverlayButtonInactiveStyle.Render(cancel)
	okBtn := OverlayButtonActiveStyle.Render(ok)
	if o.cursor == 0 {
		cancelBtn = OverlayButtonActiveStyle.Render(cancel)
		okBtn = OverlayButtonInactiveStyle.Render(ok)
	}
	return cancelBtn + "  " + okBtn
}

// SetWidth sets the overlay width and sizes the text input to fit.
func (o *Overlay) SetWidth(w int) {
	o.width = w
	if o.overlayType == OverlayTextInput {
		inputWidth := w - 6 // overlay padding and border
		if inputWidth < 20 {
			inputWidth = 20
		}
		o.input.Width = inputWidth
	}
}

// OverlayMaxWidth returns the overlay width for a terminal of termWidth.
func OverlayMaxWidth(termWidth int) int {
	w := termWidth * 2 / 3
	if w < 40 {
		w = 40
	}
	if w > 60 {
		w = 60
	}
	return w
}

// Composite centers overlay over a blank frame of the given size.
func Composite(background, overlay string, totalWidth, totalHeight int) string {
	if overlay == "" {
		return background
	}

	bgLines := strings.Split(background, "\n")
	for len(bgLines) < totalHeight {
		bgLines = append(bgLines, "")
	}

	overlayLines := strings.Split(overlay, "\n")
	overlayWidth := 0
	for _, line := range overlayLines {
		overlayWidth = max(overlayWidth, ansi.StringWidth(line))
	}
	startRow := max(0, (totalHeight-len(overlayLines))/2)
	startCol := max(0, (totalWidth-overlayWidth)/2)

	for i, line := range overlayLines {
		row := startRow + i
		if row >= len(bgLines) {
			break
		}
		bg := []rune(bgLines[row])

		left := ""
		if startCol > 0 {
			if startCol <= len(bg) {
				left = string(bg[:startCol])
			} else {
				left = string(bg) + strings.Repeat(" ", startCol-len(bg))
			}
		}
		right := ""
		if end := startCol + ansi.StringWidth(line); end < len(bg) {
			right = string(bg[end:])
		}
		bgLines[row] = left + line + right
	}

	return strings.Join(bgLines[:totalHeight], "\n")
}

package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ruminaider/kvedit/internal/changes"
	"github.com/ruminaider/kvedit/internal/editor"
	"github.com/ruminaider/kvedit/internal/kvtree"
)

// overlayContext tracks what the currently-active overlay was opened for.
type overlayContext int

const (
	overlayNone        overlayContext = iota
	overlayRename                     // text input for a node key
	overlayValue                      // text input for a scalar value
	overlayBoolValue                  // true/false choice
	overlayType                       // value type choice
	overlaySaveSummary                // save summary with confirm/cancel
	overlayQuitConfirm                // discard changes confirmation
)

// Model is the root bubbletea model for one editing session. The editor's
// onChange must feed session.Edit so the session sees every committed
// change.
type Model struct {
	editor  *editor.Editor
	session *editor.Session

	tabBar    TabBar
	tree      TreeView
	jsonPane  JSONPane
	statusBar StatusBar
	overlay   Overlay

	overlayCtx overlayContext
	pendingID  string // node the open overlay edits

	width, height int
	ready         bool // set after first WindowSizeMsg
	quitting      bool

	// Saved is set when the session was saved. It is read by the edit
	// command after the program exits.
	Saved bool
}

// NewModel creates the root model. title is shown in the tab bar.
func NewModel(ed *editor.Editor, session *editor.Session, title string) Model {
	m := Model{
		editor:    ed,
		session:   session,
		tabBar:    NewTabBar(ed.Mode(), title),
		tree:      NewTreeView(ed.Tree().Visible()),
		jsonPane:  NewJSONPane(),
		statusBar: NewStatusBar(),
	}
	if ed.Mode() == editor.ModeJSON {
		m.jsonPane.Load(ed.Draft())
	}
	m.refresh()
	return m
}

// Init satisfies tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update satisfies tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.distributeSize()
		return m, nil
	}

	// When overlay is active, route ALL messages to the overlay.
	if m.overlay.Active() {
		return m.updateOverlay(msg)
	}

	if msg, ok := msg.(TreeActionMsg); ok {
		return m.handleTreeAction(msg)
	}

	if key, ok := msg.(tea.KeyMsg); ok {
		m.statusBar.SetMessage("")
		switch key.String() {
		case "ctrl+c":
			m.session.Cancel()
			m.quitting = true
			return m, tea.Quit
		case "ctrl+s":
			return m.triggerSave()
		case "tab":
			m.tabBar.CycleNext()
			m.switchMode(m.tabBar.Mode())
			return m, nil
		case "shift+tab":
			m.tabBar.CyclePrev()
			m.switchMode(m.tabBar.Mode())
			return m, nil
		case "esc":
			return m.triggerQuit()
		case "q":
			if m.editor.Mode() == editor.ModeVisual {
				return m.triggerQuit()
			}
		}
	}

	if m.editor.Mode() == editor.ModeJSON {
		return m.updateJSON(msg)
	}
	return m.updateTree(msg)
}

// View satisfies tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Loading..."
	}
	if m.overlay.Active() {
		blank := strings.Repeat(strings.Repeat(" ", m.width)+"\n", m.height-1)
		blank += strings.Repeat(" ", m.width)
		return Composite(blank, m.overlay.View(), m.width, m.height)
	}

	var body string
	if m.editor.Mode() == editor.ModeJSON {
		body = m.jsonPane.View(m.editor.DraftError())
	} else {
		body = m.tree.View()
	}
	body = clampHeight(body, m.bodyHeight())

	return m.tabBar.View() + "\n" + body + "\n" + m.statusBar.View()
}

// --- Update helpers ---

func (m Model) updateTree(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.tree, cmd = m.tree.Update(msg)
	if action := extractTreeAction(cmd); action != nil {
		return m.handleTreeAction(*action)
	}
	return m, cmd
}

func (m Model) updateJSON(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.jsonPane, cmd = m.jsonPane.Update(msg)
	m.syncDraft()
	return m, cmd
}

// syncDraft hands the textarea content to the editor when it changed.
func (m *Model) syncDraft() {
	if text := m.jsonPane.Value(); text != m.editor.Draft() {
		m.editor.SetDraft(text)
		m.refresh()
	}
}

func (m *Model) switchMode(mode editor.Mode) {
	m.editor.SetMode(mode)
	if mode == editor.ModeJSON {
		m.jsonPane.Load(m.editor.Draft())
	}
	m.refresh()
}

func (m Model) handleTreeAction(msg TreeActionMsg) (tea.Model, tea.Cmd) {
	n := m.editor.Tree().Find(msg.ID)
	if n == nil && msg.Action != ActionAddRoot {
		return m, nil
	}

	switch msg.Action {
	case ActionToggle:
		m.editor.ToggleExpand(n.ID)
	case ActionExpand:
		if !n.Expanded {
			m.editor.ToggleExpand(n.ID)
		}
	case ActionCollapse:
		if n.Expanded {
			m.editor.ToggleExpand(n.ID)
		}
	case ActionAddRoot:
		id := m.editor.AddRoot()
		m.refresh()
		m.tree.Select(id)
		m.openRename(id, "")
		return m, nil
	case ActionAddChild:
		if !n.Type.IsContainer() {
			m.statusBar.SetMessage(fmt.Sprintf("%s is not an object or array", string(n.Type)))
			return m, nil
		}
		if !n.Expanded {
			m.editor.ToggleExpand(n.ID)
		}
		id := m.editor.AddChild(n.ID)
		m.refresh()
		m.tree.Select(id)
		if n.Type == kvtree.TypeObject {
			m.openRename(id, "")
		}
		return m, nil
	case ActionRename:
		m.openRename(n.ID, n.Key)
		return m, nil
	case ActionEditValue:
		return m.openValueEditor(n), nil
	case ActionChangeType:
		choices := make([]string, len(kvtree.AllTypes))
		for i, t := range kvtree.AllTypes {
			choices[i] = string(t)
		}
		m.overlay = NewChoiceOverlay("Type of "+displayKey(n.Key), choices, string(n.Type))
		m.overlayCtx = overlayType
		m.pendingID = n.ID
		return m, nil
	case ActionRemove:
		m.editor.Remove(n.ID)
	}
	m.refresh()
	return m, nil
}

func (m *Model) openRename(id, key string) {
	m.overlay = NewTextInputOverlay("Parameter name", "key", key)
	m.overlay.SetWidth(OverlayMaxWidth(m.width))
	m.overlayCtx = overlayRename
	m.pendingID = id
}

func (m Model) openValueEditor(n *kvtree.Node) Model {
	switch {
	case n.Type.IsContainer():
		m.statusBar.SetMessage("containers are edited through their children")
		return m
	case n.Type == kvtree.TypeNull:
		m.statusBar.SetMessage("null has no value, change the type first")
		return m
	case n.Type == kvtree.TypeBoolean:
		m.overlay = NewChoiceOverlay("Value of "+displayKey(n.Key), []string{"true", "false"}, kvtree.Stringify(n.Value))
		m.overlayCtx = overlayBoolValue
	default:
		m.overlay = NewTextInputOverlay("Value of "+displayKey(n.Key), string(n.Type), kvtree.Stringify(n.Value))
		m.overlay.SetWidth(OverlayMaxWidth(m.width))
		m.overlayCtx = overlayValue
	}
	m.pendingID = n.ID
	return m
}

func (m Model) updateOverlay(msg tea.Msg) (tea.Model, tea.Cmd) {
	wasActive := m.overlay.Active()
	var cmd tea.Cmd
	m.overlay, cmd = m.overlay.Update(msg)

	// When the overlay just closed, the cmd is an OverlayCloseMsg producer.
	// Handle it directly instead of sending through the event loop.
	if wasActive && !m.overlay.Active() && cmd != nil {
		if closeMsg := extractOverlayClose(cmd); closeMsg != nil {
			return m.handleOverlayClose(*closeMsg)
		}
	}
	return m, cmd
}

func (m Model) handleOverlayClose(msg OverlayCloseMsg) (tea.Model, tea.Cmd) {
	ctx := m.overlayCtx
	id := m.pendingID
	m.overlayCtx = overlayNone
	m.pendingID = ""

	if !msg.Confirmed {
		return m, nil
	}

	switch ctx {
	case overlayRename:
		m.editor.Update(id, kvtree.FieldKey, msg.Result)
	case overlayValue, overlayBoolValue:
		m.editor.Update(id, kvtree.FieldValue, msg.Result)
	case overlayType:
		m.editor.Update(id, kvtree.FieldType, kvtree.ValueType(msg.Result))
	case overlaySaveSummary:
		if err := m.session.Save(); err != nil {
			m.statusBar.SetMessage(err.Error())
			return m, nil
		}
		m.Saved = true
		m.quitting = true
		return m, tea.Quit
	case overlayQuitConfirm:
		m.session.Cancel()
		m.quitting = true
		return m, tea.Quit
	}
	m.refresh()
	return m, nil
}

func (m Model) triggerSave() (tea.Model, tea.Cmd) {
	if !m.session.Dirty() {
		m.statusBar.SetMessage("No changes to save")
		return m, nil
	}
	m.overlay = NewSummaryOverlay("Save parameters", m.saveSummary(), "Save")
	m.overlay.SetWidth(OverlayMaxWidth(m.width))
	m.overlayCtx = overlaySaveSummary
	return m, nil
}

// saveSummary describes what Save would write.
func (m Model) saveSummary() string {
	diff := changes.Compute(m.session.Committed(), m.session.Working())

	var b strings.Builder
	b.WriteString(changes.Summary(diff))
	for _, kind := range []changes.Kind{changes.Added, changes.Modified, changes.Removed} {
		if keys := changes.Keys(diff, kind); len(keys) > 0 {
			fmt.Fprintf(&b, "\n%s: %s", kind, strings.Join(keys, ", "))
		}
	}
	if m.editor.Mode() == editor.ModeJSON && m.editor.DraftError() != "" {
		b.WriteString("\n\nThe draft does not parse. The last valid value is saved.")
	}
	return b.String()
}

func (m Model) triggerQuit() (tea.Model, tea.Cmd) {
	if m.session.Dirty() {
		m.overlay = NewConfirmOverlay("Discard changes", "Close without saving?")
		m.overlayCtx = overlayQuitConfirm
		return m, nil
	}
	m.session.Cancel()
	m.quitting = true
	return m, tea.Quit
}

// refresh pulls rows and counts from the editor into the child components.
func (m *Model) refresh() {
	m.tree.SetRows(m.editor.Tree().Visible())
	m.jsonPane.SetPreview(m.editor.PreviewText())
	m.statusBar.Update(m.editor.Count(), m.editor.Mode(), m.session.Dirty())
}

func (m Model) bodyHeight() int {
	return max(1, m.height-2) // tab bar and status bar
}

func (m *Model) distributeSize() {
	m.tabBar.SetWidth(m.width)
	m.statusBar.SetWidth(m.width)
	m.tree.SetSize(m.width, m.bodyHeight())
	m.jsonPane.SetSize(m.width, m.bodyHeight())
	if m.overlay.Active() {
		m.overlay.SetWidth(OverlayMaxWidth(m.width))
	}
}

func clampHeight(s string, maxLines int) string {
	lines := strings.Split(s, "\n")
	if len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	for len(lines) < maxLines {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

func displayKey(key string) string {
	if key == "" {
		return "(no key)"
	}
	return key
}

// --- Message extraction helpers ---
// These run a tea.Cmd synchronously to extract the message it produces.
// Our commands are simple closures returning a message.

func extractOverlayClose(cmd tea.Cmd) *OverlayCloseMsg {
	if cmd == nil {
		return nil
	}
	if m, ok := cmd().(OverlayCloseMsg); ok {
		return &m
	}
	return nil
}

func extractTreeAction(cmd tea.Cmd) *TreeActionMsg {
	if cmd == nil {
		return nil
	}
	if m, ok := cmd().(TreeActionMsg); ok {
		return &m
	}
	return nil
}

// Ensure Model satisfies tea.Model at compile time.
var _ tea.Model = Model{}

package tui

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/ruminaider/kvedit/internal/kvtree"
)

// TreeView lists the visible rows of the parameter tree with a cursor.
// It owns navigation only; edits are reported as TreeActionMsg.
type TreeView struct {
	rows   []kvtree.Row
	cursor int
	offset int // first row drawn
	width  int
	height int
}

// NewTreeView creates a tree view over rows.
func NewTreeView(rows []kvtree.Row) TreeView {
	v := TreeView{height: 10}
	v.SetRows(rows)
	return v
}

// SetRows replaces the rows, keeping the cursor in range.
func (v *TreeView) SetRows(rows []kvtree.Row) {
	v.rows = rows
	v.clamp()
}

// SetSize sets the area available for rows.
func (v *TreeView) SetSize(w, h int) {
	v.width = w
	v.height = max(1, h)
	v.clamp()
}

// Selected returns the node under the cursor, or nil for an empty tree.
func (v TreeView) Selected() *kvtree.Node {
	if v.cursor < 0 || v.cursor >= len(v.rows) {
		return nil
	}
	return v.rows[v.cursor].Node
}

// Select moves the cursor to the row of the node with id. It reports
// whether the node is visible.
func (v *TreeView) Select(id string) bool {
	for i, row := range v.rows {
		if row.Node.ID == id {
			v.cursor = i
			v.clamp()
			return true
		}
	}
	return false
}

func (v *TreeView) clamp() {
	if v.cursor >= len(v.rows) {
		v.cursor = len(v.rows) - 1
	}
	if v.cursor < 0 {
		v.cursor = 0
	}
	if v.cursor < v.offset {
		v.offset = v.cursor
	}
	if v.height > 0 && v.cursor >= v.offset+v.height {
		v.offset = v.cursor - v.height + 1
	}
}

var treeKeys = map[string]TreeAction{
	"enter":  ActionToggle,
	" ":      ActionToggle,
	"right":  ActionExpand,
	"l":      ActionExpand,
	"left":   ActionCollapse,
	"h":      ActionCollapse,
	"a":      ActionAddRoot,
	"c":      ActionAddChild,
	"r":      ActionRename,
	"e":      ActionEditValue,
	"t":      ActionChangeType,
	"d":      ActionRemove,
	"delete": ActionRemove,
}

// Update moves the cursor, or emits a TreeActionMsg for editing keys.
func (v TreeView) Update(msg tea.Msg) (TreeView, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}
	switch key.String() {
	case "up", "k":
		v.cursor--
	case "down", "j":
		v.cursor++
	case "home", "g":
		v.cursor = 0
	case "end", "G":
		v.cursor = len(v.rows) - 1
	case "pgup":
		v.cursor -= v.height
	case "pgdown":
		v.cursor += v.height
	default:
		action, ok := treeKeys[key.String()]
		if !ok {
			return v, nil
		}
		id := ""
		if n := v.Selected(); n != nil {
			id = n.ID
		}
		if id == "" && action != ActionAddRoot {
			return v, nil
		}
		return v, func() tea.Msg {
			return TreeActionMsg{Action: action, ID: id}
		}
	}
	v.clamp()
	return v, nil
}

// View renders the rows that fit in the view height.
func (v TreeView) View() string {
	if len(v.rows) == 0 {
		return MutedStyle.Render("No parameters. Press a to add one.")
	}

	end := min(len(v.rows), v.offset+v.height)
	lines := make([]string, 0, end-v.offset)
	for i := v.offset; i < end; i++ {
		line := renderRow(v.rows[i])
		if v.width > 0 {
			line = ansi.Truncate(line, v.width, "…")
		}
		if i == v.cursor {
			line = CursorRowStyle.Render(line)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func renderRow(row kvtree.Row) string {
	n := row.Node
	marker := "  "
	if len(n.Children) > 0 {
		marker = "▸ "
		if n.Expanded {
			marker = "▾ "
		}
	}

	key := KeyStyle.Render(n.Key)
	if n.Key == "" {
		key = EmptyKeyStyle.Render("(no key)")
	}

	return strings.Repeat("  ", row.Depth) + marker + key + "  " +
		TypeStyle.Render(string(n.Type)) + "  " + renderValue(n)
}

func renderValue(n *kvtree.Node) string {
	switch n.Type {
	case kvtree.TypeObject, kvtree.TypeArray:
		if !n.HasChildren() {
			// Nested array items keep their raw value.
			data, err := json.Marshal(n.Value)
			if err != nil {
				return MutedStyle.Render(kvtree.Stringify(n.Value))
			}
			return MutedStyle.Render(string(data))
		}
		if n.Type == kvtree.TypeArray {
			return MutedStyle.Render(fmt.Sprintf("[%d]", len(n.Children)))
		}
		return MutedStyle.Render(fmt.Sprintf("{%d}", len(n.Children)))
	case kvtree.TypeNull:
		return MutedStyle.Render("null")
	case kvtree.TypeNumber:
		return NumberValueStyle.Render(kvtree.Stringify(n.Value))
	case kvtree.TypeBoolean:
		return BoolValueStyle.Render(kvtree.Stringify(n.Value))
	default:
		return StringValueStyle.Render(strconv.Quote(kvtree.Stringify(n.Value)))
	}
}

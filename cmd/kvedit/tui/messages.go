package tui

// OverlayCloseMsg is emitted when any overlay is dismissed.
type OverlayCloseMsg struct {
	Result    string // Text result (for text input or choice) or empty
	Confirmed bool   // true = OK/Submit, false = Cancel/Esc
}

// TreeAction names an edit the user requested on the tree view.
type TreeAction int

const (
	ActionToggle TreeAction = iota
	ActionExpand
	ActionCollapse
	ActionAddRoot
	ActionAddChild
	ActionRename
	ActionEditValue
	ActionChangeType
	ActionRemove
)

// TreeActionMsg is sent by the tree view for every key that edits the tree.
// ID is the node under the cursor, empty when the tree has no rows.
type TreeActionMsg struct {
	Action TreeAction
	ID     string
}

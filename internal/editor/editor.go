// Package editor keeps a visual tree and a raw JSON draft consistent with a
// single canonical record.
//
// The record is the only value observers see. Visual edits rewrite the tree
// and re-serialize it; JSON drafts only reach the record once they validate.
// An Editor is owned by one editing session and is not safe for concurrent
// use.
package editor

import (
	"io"
	"log/slog"

	"github.com/ruminaider/kvedit/internal/kvtree"
	"github.com/ruminaider/kvedit/internal/record"
)

// Mode selects the live editing surface.
type Mode string

const (
	ModeVisual Mode = "visual"
	ModeJSON   Mode = "json"
)

// ParseMode maps a configured mode name to a Mode, defaulting to visual.
func ParseMode(s string) Mode {
	if Mode(s) == ModeJSON {
		return ModeJSON
	}
	return ModeVisual
}

// Editor holds the canonical record, the tree projected from it, and the
// JSON text draft.
type Editor struct {
	value    record.Record
	tree     kvtree.Tree
	mode     Mode
	draft    string
	draftErr string

	onChange func(record.Record)
	ids      kvtree.IDProvider
	indent   string
	logger   *slog.Logger
}

// Option configures an Editor.
type Option func(*Editor)

// WithIDs sets the node id provider. The default issues random UUIDs.
func WithIDs(ids kvtree.IDProvider) Option {
	return func(e *Editor) {
		e.ids = ids
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(l *slog.Logger) Option {
	return func(e *Editor) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithIndent sets the indentation used when rendering the JSON draft.
func WithIndent(indent string) Option {
	return func(e *Editor) {
		e.indent = indent
	}
}

// WithMode sets the initial mode.
func WithMode(m Mode) Option {
	return func(e *Editor) {
		e.mode = m
	}
}

// New creates an Editor over value. onChange receives the new record after
// every committed change; it may be nil.
func New(value record.Record, onChange func(record.Record), opts ...Option) *Editor {
	e := &Editor{
		mode:     ModeVisual,
		onChange: onChange,
		ids:      kvtree.UUIDs(),
		indent:   "  ",
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.reset(value)
	if e.mode == ModeJSON {
		e.draft = e.render()
	}
	return e
}

// Value returns the canonical record.
func (e *Editor) Value() record.Record {
	return e.value
}

// Tree returns the current tree snapshot.
func (e *Editor) Tree() kvtree.Tree {
	return e.tree
}

// Mode returns the live surface.
func (e *Editor) Mode() Mode {
	return e.mode
}

// Count returns the number of root nodes, blank-keyed ones included.
func (e *Editor) Count() int {
	return len(e.tree)
}

// SetValue replaces the canonical record from outside. The tree is rebuilt
// with new ids and onChange is not called. In JSON mode the draft is left
// alone until the mode is entered again.
func (e *Editor) SetValue(value record.Record) {
	e.reset(value)
	e.logger.Debug("external value loaded", "keys", len(e.value))
}

func (e *Editor) reset(value record.Record) {
	if value == nil {
		value = record.Record{}
	}
	e.value = value
	e.tree = kvtree.FromRecord(value, e.ids)
}

// SetMode switches the live surface. Entering JSON mode re-renders the draft
// from the canonical record and clears any draft error. Leaving it never
// parses the draft.
func (e *Editor) SetMode(m Mode) {
	if m == e.mode {
		return
	}
	if m == ModeJSON {
		e.draft = e.render()
		e.draftErr = ""
	}
	e.mode = m
	e.logger.Debug("mode switched", "mode", m)
}

func (e *Editor) render() string {
	if len(e.value) == 0 {
		return ""
	}
	text, err := record.Indent(e.value, e.indent)
	if err != nil {
		e.logger.Warn("rendering draft", "error", err)
		return ""
	}
	return text
}

// --- JSON surface ---

// Draft returns the current text draft.
func (e *Editor) Draft() string {
	return e.draft
}

// DraftError returns the message for the last rejected draft, or "".
func (e *Editor) DraftError() string {
	return e.draftErr
}

// SetDraft records text as the draft. Valid text replaces the canonical
// record, rebuilds the tree, and calls onChange. Invalid text is kept as the
// draft with an error message, and the canonical record is left as is.
func (e *Editor) SetDraft(text string) {
	e.draft = text
	rec, err := ValidateJSON(text)
	if err != nil {
		e.draftErr = err.Error()
		e.logger.Debug("draft rejected", "error", err)
		return
	}
	e.draftErr = ""
	e.reset(rec)
	e.emit("draft")
}

// Preview returns the record the draft parses to, and whether it parses.
func (e *Editor) Preview() (record.Record, bool) {
	rec, err := ValidateJSON(e.draft)
	if err != nil {
		return nil, false
	}
	return rec, true
}

// PreviewText renders the draft's parse result for display.
func (e *Editor) PreviewText() string {
	rec, ok := e.Preview()
	if !ok {
		return "JSON format error"
	}
	if len(rec) == 0 {
		return "No parameters"
	}
	text, err := record.Indent(rec, e.indent)
	if err != nil {
		return "JSON format error"
	}
	return text
}

// --- Visual surface ---

// AddRoot appends an empty root node and commits.
func (e *Editor) AddRoot() string {
	e.tree = e.tree.AddRoot(e.ids)
	id := e.tree[len(e.tree)-1].ID
	e.commit("add-root")
	return id
}

// AddChild appends an empty child to parentID and commits. It returns the
// new node's id, or "" if parentID is unknown.
func (e *Editor) AddChild(parentID string) string {
	tree, ok := e.tree.AddChild(parentID, e.ids)
	if !ok {
		return ""
	}
	e.tree = tree
	children := tree.Find(parentID).Children
	e.commit("add-child")
	return children[len(children)-1].ID
}

// Update changes one field of a node and commits. Unknown ids are ignored.
func (e *Editor) Update(id string, field kvtree.Field, v any) bool {
	return e.apply("update-"+string(field), func(t kvtree.Tree) (kvtree.Tree, bool) {
		return t.Update(id, field, v)
	})
}

// Remove deletes a node and commits. Unknown ids are ignored.
func (e *Editor) Remove(id string) bool {
	return e.apply("remove", func(t kvtree.Tree) (kvtree.Tree, bool) {
		return t.Remove(id)
	})
}

// ToggleExpand flips a node's expansion. It changes view state only, so the
// record is not re-serialized and onChange is not called.
func (e *Editor) ToggleExpand(id string) bool {
	tree, ok := e.tree.ToggleExpand(id)
	if ok {
		e.tree = tree
	}
	return ok
}

func (e *Editor) apply(op string, fn func(kvtree.Tree) (kvtree.Tree, bool)) bool {
	tree, ok := fn(e.tree)
	if !ok {
		e.logger.Debug("mutation ignored", "op", op)
		return false
	}
	e.tree = tree
	e.commit(op)
	return true
}

// commit re-serializes the tree into the canonical record.
func (e *Editor) commit(op string) {
	e.value = kvtree.ToRecord(e.tree)
	e.emit(op)
}

func (e *Editor) emit(op string) {
	e.logger.Debug("committed change", "op", op, "keys", len(e.value))
	if e.onChange != nil {
		e.onChange(e.value)
	}
}

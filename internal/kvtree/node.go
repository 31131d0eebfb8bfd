// Package kvtree projects an ordered record onto a tree of typed nodes and
// back. The tree is what an editing surface renders and mutates; the record
// is the value that gets persisted.
//
// Trees are immutable snapshots. Every mutation returns a new Tree that
// shares untouched subtrees with the old one, so a *Node reachable from a
// Tree must never be modified.
package kvtree

import "github.com/ruminaider/kvedit/internal/record"

// ValueType tags the kind of value a node holds.
type ValueType string

const (
	TypeString  ValueType = "string"
	TypeNumber  ValueType = "number"
	TypeBoolean ValueType = "boolean"
	TypeNull    ValueType = "null"
	TypeObject  ValueType = "object"
	TypeArray   ValueType = "array"
)

// AllTypes lists every type tag in the order a type picker offers them.
var AllTypes = []ValueType{
	TypeString,
	TypeNumber,
	TypeBoolean,
	TypeNull,
	TypeObject,
	TypeArray,
}

// Valid reports whether t is one of the six known tags.
func (t ValueType) Valid() bool {
	switch t {
	case TypeString, TypeNumber, TypeBoolean, TypeNull, TypeObject, TypeArray:
		return true
	}
	return false
}

// IsContainer reports whether nodes of this type carry children.
func (t ValueType) IsContainer() bool {
	return t == TypeObject || t == TypeArray
}

// Node is one entry of the tree.
type Node struct {
	// ID is unique within one tree instance and is not stable across a
	// rebuild from a record.
	ID string
	// Key is the property name, or the position for children of an array.
	Key string
	// Value is the scalar for scalar types. Container nodes keep the source
	// value, or an empty placeholder after a type change.
	Value any
	Type  ValueType
	// Expanded is view state only and never serialized.
	Expanded bool
	// Children is non-nil for container nodes, nil for leaves.
	Children []*Node
}

// HasChildren reports whether n carries a child list, even an empty one.
func (n *Node) HasChildren() bool {
	return n.Children != nil
}

// Tree is the ordered root list of nodes.
type Tree []*Node

// Len returns the number of root nodes.
func (t Tree) Len() int {
	return len(t)
}

// Find returns the node with the given id anywhere in the tree, or nil.
func (t Tree) Find(id string) *Node {
	for _, n := range t {
		if n.ID == id {
			return n
		}
		if n.Children != nil {
			if found := Tree(n.Children).Find(id); found != nil {
				return found
			}
		}
	}
	return nil
}

// Row is a node together with its nesting depth, as a renderer draws it.
type Row struct {
	Node  *Node
	Depth int
}

// Visible flattens the tree into display order, descending only into
// expanded nodes.
func (t Tree) Visible() []Row {
	var rows []Row
	var walk func(nodes []*Node, depth int)
	walk = func(nodes []*Node, depth int) {
		for _, n := range nodes {
			rows = append(rows, Row{Node: n, Depth: depth})
			if n.Expanded && len(n.Children) > 0 {
				walk(n.Children, depth+1)
			}
		}
	}
	walk(t, 0)
	return rows
}

// placeholder returns the empty value a node takes when switched to a
// container type.
func placeholder(t ValueType) any {
	if t == TypeArray {
		return []any{}
	}
	return record.Record{}
}

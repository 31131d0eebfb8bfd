package kvtree

import "strconv"

// Field names the node attribute Update changes.
type Field string

const (
	FieldKey   Field = "key"
	FieldValue Field = "value"
	FieldType  Field = "type"
)

// AddRoot appends an empty string node to the root list. Root nodes start
// collapsed, unlike nodes added with AddChild.
func (t Tree) AddRoot(ids IDProvider) Tree {
	n := &Node{
		ID:       ids.NewID(),
		Key:      "",
		Value:    "",
		Type:     TypeString,
		Expanded: false,
	}
	return append(t[:len(t):len(t)], n)
}

// AddChild appends an empty, expanded string node to the children of the
// node with id parentID. Children of arrays get the next position as their
// key; all others get an empty key. It reports false if no node matches.
func (t Tree) AddChild(parentID string, ids IDProvider) (Tree, bool) {
	return t.rewrite(parentID, func(n *Node) *Node {
		key := ""
		if n.Type == TypeArray {
			key = strconv.Itoa(len(n.Children))
		}
		child := &Node{
			ID:       ids.NewID(),
			Key:      key,
			Value:    "",
			Type:     TypeString,
			Expanded: true,
		}
		next := *n
		next.Children = append(n.Children[:len(n.Children):len(n.Children)], child)
		return &next
	})
}

// Update changes one field of the node with the given id.
//
// Changing the type resets the value: object and array get an empty
// placeholder and an empty child list, null drops the value, and scalar
// types coerce the stringified old value. Changing the value coerces the
// stringified input to the node's type. Changing the key stringifies the
// input. Update reports false if no node matches or the type is unknown.
func (t Tree) Update(id string, field Field, v any) (Tree, bool) {
	var apply func(n *Node) *Node
	switch field {
	case FieldKey:
		apply = func(n *Node) *Node {
			next := *n
			next.Key = Stringify(v)
			return &next
		}
	case FieldValue:
		apply = func(n *Node) *Node {
			next := *n
			next.Value = ConvertSimpleValue(Stringify(v), n.Type)
			return &next
		}
	case FieldType:
		typ := ValueType(Stringify(v))
		if !typ.Valid() {
			return t, false
		}
		apply = func(n *Node) *Node {
			return retype(n, typ)
		}
	default:
		return t, false
	}
	return t.rewrite(id, apply)
}

func retype(n *Node, typ ValueType) *Node {
	next := *n
	next.Type = typ
	switch typ {
	case TypeObject, TypeArray:
		next.Value = placeholder(typ)
		next.Children = []*Node{}
	case TypeNull:
		next.Value = nil
		next.Children = nil
	default:
		// The old value is stringified as-is, so a container placeholder
		// seeds the scalar with its String() form.
		next.Value = ConvertSimpleValue(Stringify(n.Value), typ)
		next.Children = nil
	}
	return &next
}

// Remove deletes the node with the given id and its subtree. It reports
// false if no node matches.
func (t Tree) Remove(id string) (Tree, bool) {
	out, ok := remove(t, id)
	return out, ok
}

func remove(nodes []*Node, id string) ([]*Node, bool) {
	for i, n := range nodes {
		if n.ID == id {
			out := make([]*Node, 0, len(nodes)-1)
			out = append(out, nodes[:i]...)
			return append(out, nodes[i+1:]...), true
		}
		if n.Children == nil {
			continue
		}
		if children, ok := remove(n.Children, id); ok {
			next := *n
			next.Children = children
			return replaceAt(nodes, i, &next), true
		}
	}
	return nodes, false
}

// ToggleExpand flips the expansion state of the node with the given id.
// Expansion is view state, so callers should not treat this as an edit.
func (t Tree) ToggleExpand(id string) (Tree, bool) {
	return t.rewrite(id, func(n *Node) *Node {
		next := *n
		next.Expanded = !n.Expanded
		return &next
	})
}

// rewrite replaces the node with the given id by fn(node). Only the path
// from the root to that node is copied; everything else is shared.
func (t Tree) rewrite(id string, fn func(*Node) *Node) (Tree, bool) {
	out, ok := rewrite(t, id, fn)
	return out, ok
}

func rewrite(nodes []*Node, id string, fn func(*Node) *Node) ([]*Node, bool) {
	for i, n := range nodes {
		if n.ID == id {
			return replaceAt(nodes, i, fn(n)), true
		}
		if n.Children == nil {
			continue
		}
		if children, ok := rewrite(n.Children, id, fn); ok {
			next := *n
			next.Children = children
			return replaceAt(nodes, i, &next), true
		}
	}
	return nodes, false
}

func replaceAt(nodes []*Node, i int, n *Node) []*Node {
	out := make([]*Node, len(nodes))
	copy(out, nodes)
	out[i] = n
	return out
}

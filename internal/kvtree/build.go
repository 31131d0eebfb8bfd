package kvtree

import (
	"strconv"
	"strings"

	"github.com/ruminaider/kvedit/internal/record"
)

// FromRecord builds a tree from rec, drawing a fresh id for every node.
//
// Objects are expanded to any depth, as are objects inside arrays. Arrays
// nested directly inside arrays are expanded one level only: their items
// become leaves holding the raw value, whatever its type.
func FromRecord(rec record.Record, ids IDProvider) Tree {
	nodes := make(Tree, 0, len(rec))
	for _, e := range rec {
		typ := InferType(e.Value)
		n := &Node{
			ID:       ids.NewID(),
			Key:      e.Key,
			Value:    e.Value,
			Type:     typ,
			Expanded: true,
		}
		switch typ {
		case TypeObject:
			obj, _ := record.As(e.Value)
			n.Children = FromRecord(obj, ids)
		case TypeArray:
			n.Children = arrayChildren(e.Value.([]any), ids)
		}
		nodes = append(nodes, n)
	}
	return nodes
}

func arrayChildren(items []any, ids IDProvider) []*Node {
	children := make([]*Node, 0, len(items))
	for i, item := range items {
		typ := InferType(item)
		child := &Node{
			ID:       ids.NewID(),
			Key:      strconv.Itoa(i),
			Value:    item,
			Type:     typ,
			Expanded: true,
		}
		switch typ {
		case TypeObject:
			obj, _ := record.As(item)
			child.Children = FromRecord(obj, ids)
		case TypeArray:
			sub := item.([]any)
			child.Children = make([]*Node, 0, len(sub))
			for j, subItem := range sub {
				child.Children = append(child.Children, &Node{
					ID:       ids.NewID(),
					Key:      strconv.Itoa(j),
					Value:    subItem,
					Type:     InferType(subItem),
					Expanded: true,
				})
			}
		}
		children = append(children, child)
	}
	return children
}

// ToRecord serializes the tree. Nodes whose key is blank are skipped along
// with their subtrees; keys inside arrays are positional and never checked.
func ToRecord(t Tree) record.Record {
	rec := record.Record{}
	for _, n := range t {
		if strings.TrimSpace(n.Key) == "" {
			continue
		}
		switch {
		case n.Type == TypeObject && n.Children != nil:
			rec = rec.Set(n.Key, ToRecord(n.Children))
		case n.Type == TypeArray && n.Children != nil:
			rec = rec.Set(n.Key, arrayValue(n.Children))
		case n.Type == TypeNull:
			rec = rec.Set(n.Key, nil)
		default:
			rec = rec.Set(n.Key, n.Value)
		}
	}
	return rec
}

func arrayValue(children []*Node) []any {
	out := make([]any, 0, len(children))
	for _, c := range children {
		switch {
		case c.Type == TypeObject && c.Children != nil:
			out = append(out, ToRecord(c.Children))
		case c.Type == TypeArray && c.Children != nil:
			// One level only: grandchildren contribute their raw values.
			inner := make([]any, 0, len(c.Children))
			for _, g := range c.Children {
				inner = append(inner, g.Value)
			}
			out = append(out, inner)
		case c.Type == TypeNull:
			out = append(out, nil)
		default:
			out = append(out, c.Value)
		}
	}
	return out
}

// Record serializes t; it is shorthand for ToRecord(t).
func (t Tree) Record() record.Record {
	return ToRecord(t)
}

// Package changes classifies, renders and merges differences between
// records.
package changes

import (
	"fmt"
	"strings"

	"github.com/ruminaider/kvedit/internal/record"
)

// Kind classifies a top-level change.
type Kind string

const (
	Added     Kind = "added"
	Modified  Kind = "modified"
	Removed   Kind = "removed"
	Reordered Kind = "reordered"
)

// Change describes one top-level key that differs. Reordered changes carry
// no key.
type Change struct {
	Kind   Kind
	Key    string
	Before any
	After  any
}

// Compute lists the top-level differences from before to after. Additions
// and modifications follow after's order, removals follow before's. A
// single Reordered change is appended when the keys both records share
// appear in a different order.
func Compute(before, after record.Record) []Change {
	var out []Change
	for _, e := range after {
		old, ok := before.Get(e.Key)
		if !ok {
			out = append(out, Change{Kind: Added, Key: e.Key, After: e.Value})
		} else if !record.ValueEqual(old, e.Value) {
			out = append(out, Change{Kind: Modified, Key: e.Key, Before: old, After: e.Value})
		}
	}
	for _, e := range before {
		if !after.Has(e.Key) {
			out = append(out, Change{Kind: Removed, Key: e.Key, Before: e.Value})
		}
	}
	if reordered(before, after) {
		out = append(out, Change{Kind: Reordered})
	}
	return out
}

func reordered(before, after record.Record) bool {
	var a, b []string
	for _, e := range before {
		if after.Has(e.Key) {
			a = append(a, e.Key)
		}
	}
	for _, e := range after {
		if before.Has(e.Key) {
			b = append(b, e.Key)
		}
	}
	for i := range a {
		if a[i] != b[i] {
			return true
		}
	}
	return false
}

// Count tallies changes by kind.
func Count(changes []Change) (added, modified, removed int) {
	for _, c := range changes {
		switch c.Kind {
		case Added:
			added++
		case Modified:
			modified++
		case Removed:
			removed++
		}
	}
	return added, modified, removed
}

// Summary renders changes as one line, e.g. "2 added, 1 removed".
func Summary(changes []Change) string {
	if len(changes) == 0 {
		return "no changes"
	}
	added, modified, removed := Count(changes)
	var parts []string
	if added > 0 {
		parts = append(parts, fmt.Sprintf("%d added", added))
	}
	if modified > 0 {
		parts = append(parts, fmt.Sprintf("%d modified", modified))
	}
	if removed > 0 {
		parts = append(parts, fmt.Sprintf("%d removed", removed))
	}
	for _, c := range changes {
		if c.Kind == Reordered {
			parts = append(parts, "order changed")
			break
		}
	}
	return strings.Join(parts, ", ")
}

// Keys returns the keys of changes of the given kind, in order.
func Keys(changes []Change, kind Kind) []string {
	var keys []string
	for _, c := range changes {
		if c.Kind == kind {
			keys = append(keys, c.Key)
		}
	}
	return keys
}

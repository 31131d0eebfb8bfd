package changes

import "github.com/ruminaider/kvedit/internal/record"

// Conflict describes a key both sides changed incompatibly.
type Conflict struct {
	Key           string
	LocalValue    any
	RemoteValue   any
	LocalRemoved  bool
	RemoteRemoved bool
}

// Merge performs a 3-way merge of top-level keys.
//
// Changes made on one side only are applied. Identical changes on both sides
// are applied once. Everything else is a conflict: two different additions
// keep the local value, while modify/modify and modify/remove keep the base
// value. Kept keys stay in base order; additions follow, local ones first.
func Merge(base, local, remote record.Record) (record.Record, []Conflict) {
	if base == nil {
		base = record.Record{}
	}
	localChanges := Compute(base, local)
	remoteChanges := Compute(base, remote)

	localByKey := index(localChanges)
	remoteByKey := index(remoteChanges)

	result := base
	var conflicts []Conflict

	for _, c := range localChanges {
		if c.Kind == Reordered {
			continue
		}
		r, both := remoteByKey[c.Key]
		switch {
		case !both, sameChange(c, r):
			result = apply(result, c)
		default:
			conflicts = append(conflicts, Conflict{
				Key:           c.Key,
				LocalValue:    c.After,
				RemoteValue:   r.After,
				LocalRemoved:  c.Kind == Removed,
				RemoteRemoved: r.Kind == Removed,
			})
			if c.Kind == Added {
				result = apply(result, c)
			}
		}
	}

	for _, c := range remoteChanges {
		if c.Kind == Reordered {
			continue
		}
		if _, ok := localByKey[c.Key]; ok {
			continue // Already handled
		}
		result = apply(result, c)
	}

	return result, conflicts
}

func index(changes []Change) map[string]Change {
	m := make(map[string]Change, len(changes))
	for _, c := range changes {
		if c.Kind != Reordered {
			m[c.Key] = c
		}
	}
	return m
}

func sameChange(a, b Change) bool {
	if a.Kind == Removed || b.Kind == Removed {
		return a.Kind == b.Kind
	}
	return record.ValueEqual(a.After, b.After)
}

func apply(r record.Record, c Change) record.Record {
	if c.Kind == Removed {
		return r.Delete(c.Key)
	}
	return r.Set(c.Key, c.After)
}

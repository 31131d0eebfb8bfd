package commands

import (
	"strings"

	"github.com/ruminaider/kvedit/internal/changes"
	"github.com/ruminaider/kvedit/internal/kvtree"
	"github.com/ruminaider/kvedit/internal/record"
	"github.com/ruminaider/kvedit/internal/recordfile"
)

// CheckResult reports whether a record survives a trip through the tree.
type CheckResult struct {
	Path     string
	Nodes    int
	Lossless bool
	Changes  []changes.Change
	// RawLeaves are container values inside nested arrays. They survive a
	// round trip but cannot be edited node by node.
	RawLeaves []string
}

// Check builds the tree for the record at path, serializes it back, and
// reports whether anything was lost on the way.
func Check(path string, ids kvtree.IDProvider) (*CheckResult, error) {
	rec, err := recordfile.Read(path)
	if err != nil {
		return nil, err
	}
	return CheckRecord(path, rec, ids), nil
}

// CheckRecord is Check for a record already in memory.
func CheckRecord(name string, rec record.Record, ids kvtree.IDProvider) *CheckResult {
	tree := kvtree.FromRecord(rec, ids)
	back := kvtree.ToRecord(tree)

	result := &CheckResult{
		Path:     name,
		Lossless: rec.Equal(back),
		Changes:  changes.Compute(rec, back),
	}
	walkPaths(tree, nil, func(n *kvtree.Node, path []string) {
		result.Nodes++
		if n.Type.IsContainer() && !n.HasChildren() {
			result.RawLeaves = append(result.RawLeaves, strings.Join(path, "."))
		}
	})
	return result
}

func walkPaths(nodes []*kvtree.Node, prefix []string, fn func(*kvtree.Node, []string)) {
	for _, n := range nodes {
		path := append(prefix[:len(prefix):len(prefix)], n.Key)
		fn(n, path)
		walkPaths(n.Children, path, fn)
	}
}

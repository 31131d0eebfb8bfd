package commands

import (
	"github.com/ruminaider/kvedit/internal/kvtree"
	"github.com/ruminaider/kvedit/internal/recordfile"
)

// ShowResult is the tree built from a record file, with its visible rows.
type ShowResult struct {
	Path  string
	Tree  kvtree.Tree
	Rows  []kvtree.Row
	Count int
}

// Show loads the record at path and flattens its tree for listing.
func Show(path string, ids kvtree.IDProvider) (*ShowResult, error) {
	rec, err := recordfile.Read(path)
	if err != nil {
		return nil, err
	}
	tree := kvtree.FromRecord(rec, ids)
	return &ShowResult{
		Path:  path,
		Tree:  tree,
		Rows:  tree.Visible(),
		Count: tree.Len(),
	}, nil
}

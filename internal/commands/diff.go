package commands

import (
	"github.com/ruminaider/kvedit/internal/changes"
	"github.com/ruminaider/kvedit/internal/recordfile"
)

// DiffResult compares two record files.
type DiffResult struct {
	Changes []changes.Change
	Summary string
	Text    string
	Patch   []byte
}

// Diff compares the records at two paths, which may use different formats.
func Diff(beforePath, afterPath, indent string) (*DiffResult, error) {
	before, err := recordfile.Read(beforePath)
	if err != nil {
		return nil, err
	}
	after, err := recordfile.Read(afterPath)
	if err != nil {
		return nil, err
	}

	cs := changes.Compute(before, after)
	text, err := changes.Text(before, after, indent)
	if err != nil {
		return nil, err
	}
	patch, err := changes.MergePatch(before, after)
	if err != nil {
		return nil, err
	}
	return &DiffResult{
		Changes: cs,
		Summary: changes.Summary(cs),
		Text:    text,
		Patch:   patch,
	}, nil
}

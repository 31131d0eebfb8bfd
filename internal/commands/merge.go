package commands

import (
	"github.com/ruminaider/kvedit/internal/changes"
	"github.com/ruminaider/kvedit/internal/record"
	"github.com/ruminaider/kvedit/internal/recordfile"
)

// MergeResult holds a 3-way merge. Record is only written when Conflicts
// is empty.
type MergeResult struct {
	Record    record.Record
	Conflicts []changes.Conflict
}

// Merge performs a 3-way merge of three record files. When outPath is set
// and there are no conflicts, the result is written there.
func Merge(basePath, localPath, remotePath, outPath, indent string) (*MergeResult, error) {
	var recs [3]record.Record
	for i, p := range []string{basePath, localPath, remotePath} {
		rec, err := recordfile.Read(p)
		if err != nil {
			return nil, err
		}
		recs[i] = rec
	}

	merged, conflicts := changes.Merge(recs[0], recs[1], recs[2])
	if outPath != "" && len(conflicts) == 0 {
		if err := recordfile.WriteDetected(outPath, merged, indent); err != nil {
			return nil, err
		}
	}
	return &MergeResult{Record: merged, Conflicts: conflicts}, nil
}

package commands

import (
	"fmt"
	"os"

	"github.com/ruminaider/kvedit/internal/changes"
	"github.com/ruminaider/kvedit/internal/record"
	"github.com/ruminaider/kvedit/internal/recordfile"
)

// PatchResult is the patched record and what changed.
type PatchResult struct {
	Record  record.Record
	Changes []changes.Change
}

// Patch applies a JSON patch or merge patch file to the record at path.
// The file is only written when dryRun is false.
func Patch(path, patchPath, indent string, dryRun bool) (*PatchResult, error) {
	format, err := recordfile.DetectFormat(path)
	if err != nil {
		return nil, err
	}
	rec, err := recordfile.Read(path)
	if err != nil {
		return nil, err
	}
	patch, err := os.ReadFile(patchPath)
	if err != nil {
		return nil, fmt.Errorf("reading patch: %w", err)
	}
	out, err := changes.Apply(rec, patch)
	if err != nil {
		return nil, err
	}
	if !dryRun {
		if err := recordfile.Write(path, out, format, indent); err != nil {
			return nil, err
		}
	}
	return &PatchResult{Record: out, Changes: changes.Compute(rec, out)}, nil
}

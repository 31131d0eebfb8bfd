package commands

import (
	"bytes"
	"fmt"
	"os"

	"github.com/ruminaider/kvedit/internal/recordfile"
)

// FormatResult reports whether a file differed from its canonical form.
type FormatResult struct {
	Path    string
	Changed bool
}

// Format rewrites the file at path in canonical form for its format. With
// check set, the file is left untouched and only the result is reported.
func Format(path, indent string, check bool) (*FormatResult, error) {
	format, err := recordfile.DetectFormat(path)
	if err != nil {
		return nil, err
	}
	orig, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	rec, err := recordfile.Decode(orig, format)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	formatted, err := recordfile.Encode(rec, format, indent)
	if err != nil {
		return nil, err
	}

	result := &FormatResult{Path: path, Changed: !bytes.Equal(orig, formatted)}
	if !result.Changed || check {
		return result, nil
	}
	if err := os.WriteFile(path, formatted, 0644); err != nil {
		return nil, fmt.Errorf("writing %s: %w", path, err)
	}
	return result, nil
}

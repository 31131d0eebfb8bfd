package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/ruminaider/kvedit/internal/editor"
	"github.com/ruminaider/kvedit/internal/record"
	"github.com/ruminaider/kvedit/internal/recordfile"
)

// ValidateResult is the verdict for one file.
type ValidateResult struct {
	Path    string
	Valid   bool
	Message string
	Keys    int
	// Syntax is set when the content does not parse at all, as opposed to
	// parsing to something other than an object. Detail then carries the
	// decoder's message.
	Syntax bool
	Detail string
}

// Validate applies the editor's draft rules to the content of path. JSON
// files are checked as raw text; YAML and TOML files must decode to an
// object. An invalid file is a result, not an error.
func Validate(path string) (*ValidateResult, error) {
	format, err := recordfile.DetectFormat(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return ValidateText(path, string(data), format), nil
}

// ValidateText is Validate for content already in memory.
func ValidateText(name, text string, format recordfile.Format) *ValidateResult {
	result := &ValidateResult{Path: name}
	if format == recordfile.FormatJSON {
		rec, err := editor.ValidateJSON(text)
		if err != nil {
			result.Message = err.Error()
			if editor.IsSyntaxError(err) {
				result.Syntax = true
				result.Detail = errors.Unwrap(err).Error()
			}
			return result
		}
		result.Valid = true
		result.Keys = rec.Len()
		return result
	}

	rec, err := recordfile.Decode([]byte(text), format)
	if err != nil {
		result.Message = err.Error()
		result.Syntax = !errors.Is(err, record.ErrNotObject)
		return result
	}
	result.Valid = true
	result.Keys = rec.Len()
	return result
}

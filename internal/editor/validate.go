package editor

import (
	"errors"
	"strings"

	"github.com/ruminaider/kvedit/internal/record"
)

// ErrNotObject reports JSON that parsed but is not an object.
var ErrNotObject = record.ErrNotObject

// SyntaxError reports draft text that is not valid JSON. Its message is the
// fixed text shown next to the editor; Unwrap exposes the decoder error.
type SyntaxError struct {
	Err error
}

func (e *SyntaxError) Error() string {
	return "JSON format error"
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// ValidateJSON checks raw draft text. Blank text is valid and means the
// empty record. Otherwise the text must be a JSON object: other JSON values
// yield ErrNotObject and unparseable text yields a *SyntaxError.
func ValidateJSON(text string) (record.Record, error) {
	if strings.TrimSpace(text) == "" {
		return record.Record{}, nil
	}
	v, err := record.DecodeValue([]byte(text))
	if err != nil {
		return nil, &SyntaxError{Err: err}
	}
	rec, ok := v.(record.Record)
	if !ok {
		return nil, ErrNotObject
	}
	return rec, nil
}

// IsSyntaxError reports whether err is a draft parse failure.
func IsSyntaxError(err error) bool {
	var se *SyntaxError
	return errors.As(err, &se)
}

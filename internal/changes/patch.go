package changes

import (
	"bytes"
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/ruminaider/kvedit/internal/record"
)

// MergePatch returns the RFC 7396 merge patch that turns before into after.
// Key order is not part of a merge patch and is not preserved.
func MergePatch(before, after record.Record) ([]byte, error) {
	a, err := marshal(before)
	if err != nil {
		return nil, err
	}
	b, err := marshal(after)
	if err != nil {
		return nil, err
	}
	patch, err := jsonpatch.CreateMergePatch(a, b)
	if err != nil {
		return nil, fmt.Errorf("creating merge patch: %w", err)
	}
	return patch, nil
}

// Apply applies patch to rec. A JSON array is read as an RFC 6902 operation
// list and a JSON object as an RFC 7396 merge patch. Keys of the result are
// in the patch library's order.
func Apply(rec record.Record, patch []byte) (record.Record, error) {
	doc, err := marshal(rec)
	if err != nil {
		return nil, err
	}

	var out []byte
	trimmed := bytes.TrimSpace(patch)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		ops, err := jsonpatch.DecodePatch(trimmed)
		if err != nil {
			return nil, fmt.Errorf("decoding JSON patch: %w", err)
		}
		if out, err = ops.Apply(doc); err != nil {
			return nil, fmt.Errorf("applying JSON patch: %w", err)
		}
	} else {
		if out, err = jsonpatch.MergePatch(doc, trimmed); err != nil {
			return nil, fmt.Errorf("applying merge patch: %w", err)
		}
	}

	result, err := record.Parse(out)
	if err != nil {
		return nil, fmt.Errorf("parsing patched record: %w", err)
	}
	return result, nil
}

func marshal(r record.Record) ([]byte, error) {
	if r == nil {
		r = record.Record{}
	}
	data, err := r.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("marshaling record: %w", err)
	}
	return data, nil
}

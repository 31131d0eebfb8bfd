package commands

import (
	"github.com/ruminaider/kvedit/internal/record"
	"github.com/ruminaider/kvedit/internal/recordfile"
)

// ConvertResult describes a conversion between record file formats.
type ConvertResult struct {
	From recordfile.Format
	To   recordfile.Format
	Keys int
	// DroppedNulls counts null values the target format cannot hold.
	DroppedNulls int
}

// Convert reads src and writes it to dst. An empty format is detected from
// dst's extension.
func Convert(src, dst string, format recordfile.Format, indent string) (*ConvertResult, error) {
	from, err := recordfile.DetectFormat(src)
	if err != nil {
		return nil, err
	}
	if format == "" {
		if format, err = recordfile.DetectFormat(dst); err != nil {
			return nil, err
		}
	}
	rec, err := recordfile.Read(src)
	if err != nil {
		return nil, err
	}
	if err := recordfile.Write(dst, rec, format, indent); err != nil {
		return nil, err
	}

	result := &ConvertResult{From: from, To: format, Keys: rec.Len()}
	if format == recordfile.FormatTOML {
		result.DroppedNulls = countNulls(rec)
	}
	return result, nil
}

func countNulls(v any) int {
	switch tv := v.(type) {
	case nil:
		return 1
	case record.Record:
		n := 0
		for _, e := range tv {
			n += countNulls(e.Value)
		}
		return n
	case []any:
		n := 0
		for _, item := range tv {
			n += countNulls(item)
		}
		return n
	}
	return 0
}

package changes

import (
	"fmt"
	"strings"

	"github.com/ruminaider/kvedit/internal/record"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Text renders a line diff of the indented JSON forms of before and after.
// Lines are prefixed "+ ", "- " or "  ". Equal records give "".
func Text(before, after record.Record, indent string) (string, error) {
	if before.Equal(after) {
		return "", nil
	}
	a, err := render(before, indent)
	if err != nil {
		return "", err
	}
	b, err := render(after, indent)
	if err != nil {
		return "", err
	}

	dmp := diffpatch.New()
	ca, cb, lines := dmp.DiffLinesToChars(a, b)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(ca, cb, false), lines)

	var sb strings.Builder
	for _, d := range diffs {
		prefix := "  "
		switch d.Type {
		case diffpatch.DiffInsert:
			prefix = "+ "
		case diffpatch.DiffDelete:
			prefix = "- "
		}
		for _, line := range strings.Split(strings.TrimSuffix(d.Text, "\n"), "\n") {
			sb.WriteString(prefix)
			sb.WriteString(line)
			sb.WriteByte('\n')
		}
	}
	return sb.String(), nil
}

func render(r record.Record, indent string) (string, error) {
	if r == nil {
		r = record.Record{}
	}
	text, err := record.Indent(r, indent)
	if err != nil {
		return "", fmt.Errorf("rendering record: %w", err)
	}
	return text + "\n", nil
}

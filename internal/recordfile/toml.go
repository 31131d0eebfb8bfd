package recordfile

import (
	"bytes"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/ruminaider/kvedit/internal/record"
)

const keySep = "\x00"

// decodeTOML decodes into a map and recovers document order from the
// metadata key list. Keys the metadata doesn't mention sort last by name.
func decodeTOML(data []byte) (record.Record, error) {
	var m map[string]any
	md, err := toml.Decode(string(data), &m)
	if err != nil {
		return nil, fmt.Errorf("parsing TOML: %w", err)
	}
	order := make(map[string]int)
	for i, k := range md.Keys() {
		p := strings.Join(k, keySep)
		if _, ok := order[p]; !ok {
			order[p] = i
		}
	}
	return tomlRecord(m, nil, order), nil
}

func tomlRecord(m map[string]any, path []string, order map[string]int) record.Record {
	pos := func(k string) int {
		p := strings.Join(append(path[:len(path):len(path)], k), keySep)
		if i, ok := order[p]; ok {
			return i
		}
		return math.MaxInt
	}

	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		pi, pj := pos(keys[i]), pos(keys[j])
		if pi != pj {
			return pi < pj
		}
		return keys[i] < keys[j]
	})

	rec := make(record.Record, 0, len(keys))
	for _, k := range keys {
		child := append(path[:len(path):len(path)], k)
		rec = append(rec, record.Entry{Key: k, Value: tomlValue(m[k], child, order)})
	}
	return rec
}

func tomlValue(v any, path []string, order map[string]int) any {
	switch tv := v.(type) {
	case map[string]any:
		return tomlRecord(tv, path, order)
	case []map[string]any:
		out := make([]any, len(tv))
		for i, item := range tv {
			out[i] = tomlRecord(item, path, order)
		}
		return out
	case []any:
		out := make([]any, len(tv))
		for i, item := range tv {
			out[i] = tomlValue(item, path, order)
		}
		return out
	case time.Time:
		return tomlTime(tv)
	default:
		return record.Normalize(v)
	}
}

// tomlTime renders date-times as text. Local dates and times carry marker
// locations from the decoder.
func tomlTime(t time.Time) string {
	switch t.Location().String() {
	case "date-local":
		return t.Format("2006-01-02")
	case "time-local":
		return t.Format("15:04:05.999999999")
	case "datetime-local":
		return t.Format("2006-01-02T15:04:05.999999999")
	}
	return t.Format(time.RFC3339Nano)
}

// encodeTOML writes rec with the encoder's own key order. TOML has no null,
// so null entries and array items are dropped.
func encodeTOML(rec record.Record, indent string) ([]byte, error) {
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.Indent = indent
	if err := enc.Encode(tomlPlain(rec)); err != nil {
		return nil, fmt.Errorf("marshaling TOML: %w", err)
	}
	return buf.Bytes(), nil
}

func tomlPlain(v any) any {
	switch tv := v.(type) {
	case record.Record:
		m := make(map[string]any, len(tv))
		for _, e := range tv {
			if e.Value == nil {
				continue
			}
			m[e.Key] = tomlPlain(e.Value)
		}
		return m
	case []any:
		out := make([]any, 0, len(tv))
		for _, item := range tv {
			if item == nil {
				continue
			}
			out = append(out, tomlPlain(item))
		}
		return out
	default:
		return v
	}
}

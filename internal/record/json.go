package record

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// ErrNotObject is returned when a JSON document is valid but its top-level
// value is not an object.
var ErrNotObject = errors.New("must be an object")

// MarshalJSON encodes r as a JSON object with keys in record order.
func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := encodeRecord(&buf, r); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object, keeping key order. Duplicate keys keep
// their first position and take the last value.
func (r *Record) UnmarshalJSON(data []byte) error {
	v, err := DecodeValue(data)
	if err != nil {
		return err
	}
	rec, ok := v.(Record)
	if !ok {
		return ErrNotObject
	}
	*r = rec
	return nil
}

// Parse decodes data, which must hold a single JSON object.
func Parse(data []byte) (Record, error) {
	var r Record
	if err := r.UnmarshalJSON(data); err != nil {
		return nil, err
	}
	return r, nil
}

// Indent renders r as JSON using indent for each nesting level, the way
// JSON.stringify(value, null, indent) does.
func Indent(r Record, indent string) (string, error) {
	raw, err := r.MarshalJSON()
	if err != nil {
		return "", err
	}
	var out bytes.Buffer
	if err := json.Indent(&out, raw, "", indent); err != nil {
		return "", fmt.Errorf("indenting record: %w", err)
	}
	return out.String(), nil
}

// DecodeValue decodes any single JSON value into the record value set.
func DecodeValue(data []byte) (any, error) {
	if !json.Valid(data) {
		// Run the standard decoder to get a positioned syntax error.
		var discard any
		if err := json.Unmarshal(data, &discard); err != nil {
			return nil, err
		}
		return nil, errors.New("invalid JSON")
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	v, err := decodeNext(dec)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New("invalid JSON: trailing data")
	}
	return v, nil
}

func decodeNext(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return decodeObject(dec)
		case '[':
			return decodeArray(dec)
		}
		return nil, fmt.Errorf("unexpected delimiter %q", t)
	case json.Number:
		// Out-of-range literals become ±Inf, as in JavaScript.
		f, _ := strconv.ParseFloat(t.String(), 64)
		return f, nil
	default:
		// string, bool or nil
		return t, nil
	}
}

func decodeObject(dec *json.Decoder) (Record, error) {
	r := Record{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected object key %v", tok)
		}
		v, err := decodeNext(dec)
		if err != nil {
			return nil, err
		}
		r = r.Set(key, v)
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return r, nil
}

func decodeArray(dec *json.Decoder) ([]any, error) {
	arr := []any{}
	for dec.More() {
		v, err := decodeNext(dec)
		if err != nil {
			return nil, err
		}
		arr = append(arr, v)
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return arr, nil
}

func encodeRecord(buf *bytes.Buffer, r Record) error {
	buf.WriteByte('{')
	for i, e := range r {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := encodeString(buf, e.Key); err != nil {
			return err
		}
		buf.WriteByte(':')
		if err := encodeValue(buf, e.Value); err != nil {
			return fmt.Errorf("encoding %q: %w", e.Key, err)
		}
	}
	buf.WriteByte('}')
	return nil
}

func encodeValue(buf *bytes.Buffer, v any) error {
	switch tv := v.(type) {
	case nil:
		buf.WriteString("null")
	case bool:
		buf.WriteString(strconv.FormatBool(tv))
	case string:
		return encodeString(buf, tv)
	case float64:
		// JSON.stringify writes non-finite numbers as null.
		if math.IsNaN(tv) || math.IsInf(tv, 0) {
			buf.WriteString("null")
			return nil
		}
		data, err := json.Marshal(tv)
		if err != nil {
			return err
		}
		buf.Write(data)
	case Record:
		return encodeRecord(buf, tv)
	case map[string]any:
		return encodeRecord(buf, fromMap(tv))
	case []any:
		buf.WriteByte('[')
		for i, item := range tv {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := encodeValue(buf, item); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	default:
		n := Normalize(v)
		if isPlain(n) {
			return encodeValue(buf, n)
		}
		data, err := json.Marshal(n)
		if err != nil {
			return err
		}
		buf.Write(data)
	}
	return nil
}

// isPlain reports whether v is one of the record value types, so encoding
// it cannot recurse back into the default branch.
func isPlain(v any) bool {
	switch v.(type) {
	case nil, bool, string, float64, Record, []any:
		return true
	}
	return false
}

func encodeString(buf *bytes.Buffer, s string) error {
	var tmp bytes.Buffer
	enc := json.NewEncoder(&tmp)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return err
	}
	// Encoder.Encode terminates with a newline.
	out := tmp.Bytes()[:tmp.Len()-1]
	if strings.ContainsAny(s, "\u2028\u2029") {
		out = unescapeLineSeparators(out)
	}
	buf.Write(out)
	return nil
}

// unescapeLineSeparators writes U+2028 and U+2029 back as raw characters.
// encoding/json always escapes them.
func unescapeLineSeparators(b []byte) []byte {
	out := make([]byte, 0, len(b))
	for i := 0; i < len(b); i++ {
		if b[i] != '\\' || i+1 >= len(b) {
			out = append(out, b[i])
			continue
		}
		if b[i+1] == 'u' && i+6 <= len(b) {
			switch string(b[i+2 : i+6]) {
			case "2028":
				out = append(out, "\u2028"...)
				i += 5
				continue
			case "2029":
				out = append(out, "\u2029"...)
				i += 5
				continue
			}
		}
		// Copy the escape pair whole so an escaped backslash is never
		// read as the start of a new escape.
		out = append(out, b[i], b[i+1])
		i++
	}
	return out
}

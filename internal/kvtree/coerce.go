package kvtree

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/ruminaider/kvedit/internal/record"
)

// ConvertSimpleValue turns raw input into a value of type t.
//
// Booleans are true only for the exact string "true". Numbers use ParseFloat
// and fall back to 0 when nothing parses. Null ignores raw. Every other type
// keeps raw unchanged.
func ConvertSimpleValue(raw string, t ValueType) any {
	switch t {
	case TypeBoolean:
		return raw == "true"
	case TypeNumber:
		f := ParseFloat(raw)
		if math.IsNaN(f) {
			return 0.0
		}
		return f
	case TypeNull:
		return nil
	default:
		return raw
	}
}

// ParseFloat parses the longest numeric prefix of s after leading
// whitespace, like JavaScript's parseFloat. It returns NaN when s has no
// numeric prefix. "Infinity" with an optional sign is accepted.
func ParseFloat(s string) float64 {
	s = strings.TrimLeftFunc(s, isSpace)

	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	if strings.HasPrefix(s[i:], "Infinity") {
		if s[0] == '-' {
			return math.Inf(-1)
		}
		return math.Inf(1)
	}

	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		j := i + 1
		frac := 0
		for j < len(s) && isDigit(s[j]) {
			j++
			frac++
		}
		if digits > 0 || frac > 0 {
			i = j
			digits += frac
		}
	}
	if digits == 0 {
		return math.NaN()
	}

	// The exponent only counts when at least one exponent digit follows.
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		start := j
		for j < len(s) && isDigit(s[j]) {
			j++
		}
		if j > start {
			i = j
		}
	}

	// Out-of-range input yields ±Inf or 0 alongside ErrRange; keep the value.
	f, _ := strconv.ParseFloat(s[:i], 64)
	return f
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isSpace(r rune) bool {
	return unicode.IsSpace(r) || r == '\uFEFF'
}

// Stringify renders v the way JavaScript's String(v) does. Objects become
// "[object Object]" and arrays join their elements with commas.
func Stringify(v any) string {
	switch tv := v.(type) {
	case nil:
		return "null"
	case string:
		return tv
	case bool:
		return strconv.FormatBool(tv)
	case float64:
		return formatNumber(tv)
	case record.Record, map[string]any:
		return "[object Object]"
	case []any:
		parts := make([]string, len(tv))
		for i, item := range tv {
			// Array.prototype.join renders null elements as empty strings.
			if item != nil {
				parts[i] = Stringify(item)
			}
		}
		return strings.Join(parts, ",")
	case ValueType:
		return string(tv)
	}
	if n, ok := record.Normalize(v).(float64); ok {
		return formatNumber(n)
	}
	if s, ok := v.(interface{ String() string }); ok {
		return s.String()
	}
	return ""
}

func formatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		// Covers negative zero, which String() also prints as "0".
		return "0"
	}
	// encoding/json formats floats the way ECMAScript's Number#toString does.
	data, err := json.Marshal(f)
	if err != nil {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	return string(data)
}

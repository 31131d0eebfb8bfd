package kvtree

import "github.com/ruminaider/kvedit/internal/record"

// InferType classifies v. The first matching rule wins: null, array, object,
// boolean, number, and string for everything else.
func InferType(v any) ValueType {
	switch v.(type) {
	case nil:
		return TypeNull
	case []any:
		return TypeArray
	case record.Record, map[string]any:
		return TypeObject
	case bool:
		return TypeBoolean
	case float64, float32, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64:
		return TypeNumber
	}
	return TypeString
}

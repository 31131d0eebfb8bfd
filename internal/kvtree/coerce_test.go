package kvtree_test

import (
	"math"
	"testing"

	"github.com/ruminaider/kvedit/internal/kvtree"
	"github.com/ruminaider/kvedit/internal/record"
	"github.com/stretchr/testify/assert"
)

func TestInferType(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want kvtree.ValueType
	}{
		{"nil", nil, kvtree.TypeNull},
		{"array", []any{1.0}, kvtree.TypeArray},
		{"empty array", []any{}, kvtree.TypeArray},
		{"record", record.Record{}, kvtree.TypeObject},
		{"map", map[string]any{}, kvtree.TypeObject},
		{"bool", false, kvtree.TypeBoolean},
		{"float", 1.5, kvtree.TypeNumber},
		{"int", 3, kvtree.TypeNumber},
		{"string", "x", kvtree.TypeString},
		{"other", struct{}{}, kvtree.TypeString},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, kvtree.InferType(tt.in))
		})
	}
}

func TestConvertSimpleValue_Boolean(t *testing.T) {
	assert.Equal(t, true, kvtree.ConvertSimpleValue("true", kvtree.TypeBoolean))
	assert.Equal(t, false, kvtree.ConvertSimpleValue("True", kvtree.TypeBoolean))
	assert.Equal(t, false, kvtree.ConvertSimpleValue("1", kvtree.TypeBoolean))
	assert.Equal(t, false, kvtree.ConvertSimpleValue("", kvtree.TypeBoolean))
}

func TestConvertSimpleValue_Number(t *testing.T) {
	assert.Equal(t, 30.0, kvtree.ConvertSimpleValue("30", kvtree.TypeNumber))
	assert.Equal(t, 0.0, kvtree.ConvertSimpleValue("abc", kvtree.TypeNumber))
	assert.Equal(t, 0.0, kvtree.ConvertSimpleValue("", kvtree.TypeNumber))
	assert.Equal(t, 12.5, kvtree.ConvertSimpleValue("  12.5px", kvtree.TypeNumber))
}

func TestConvertSimpleValue_NullAndString(t *testing.T) {
	assert.Nil(t, kvtree.ConvertSimpleValue("anything", kvtree.TypeNull))
	assert.Equal(t, " keep me ", kvtree.ConvertSimpleValue(" keep me ", kvtree.TypeString))
	assert.Equal(t, "raw", kvtree.ConvertSimpleValue("raw", kvtree.TypeObject))
}

func TestParseFloat(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"42", 42},
		{"-3.25", -3.25},
		{"+7", 7},
		{".5", 0.5},
		{"5.", 5},
		{"1e3", 1000},
		{"1e", 1},
		{"2E-2x", 0.02},
		{"\t\n 8", 8},
		{"0x10", 0},
		{"12abc", 12},
		{"1.2.3", 1.2},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, kvtree.ParseFloat(tt.in))
		})
	}
}

func TestParseFloat_Special(t *testing.T) {
	assert.True(t, math.IsNaN(kvtree.ParseFloat("")))
	assert.True(t, math.IsNaN(kvtree.ParseFloat(".")))
	assert.True(t, math.IsNaN(kvtree.ParseFloat("-")))
	assert.True(t, math.IsNaN(kvtree.ParseFloat("[object Object]")))
	assert.True(t, math.IsInf(kvtree.ParseFloat("Infinity"), 1))
	assert.True(t, math.IsInf(kvtree.ParseFloat("-Infinityx"), -1))
	assert.True(t, math.IsInf(kvtree.ParseFloat("1e999"), 1))
}

func TestStringify(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"nil", nil, "null"},
		{"string", "abc", "abc"},
		{"true", true, "true"},
		{"integer float", 30.0, "30"},
		{"fraction", 0.1, "0.1"},
		{"large", 1e21, "1e+21"},
		{"small", 1e-7, "1e-7"},
		{"negative zero", math.Copysign(0, -1), "0"},
		{"int", 7, "7"},
		{"object", record.Record{{Key: "a", Value: 1.0}}, "[object Object]"},
		{"empty object", record.Record{}, "[object Object]"},
		{"empty array", []any{}, ""},
		{"array", []any{1.0, "b", nil, []any{2.0, 3.0}}, "1,b,,2,3"},
		{"type tag", kvtree.TypeArray, "array"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, kvtree.Stringify(tt.in))
		})
	}
}

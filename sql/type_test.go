package sql

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTypeNames(t *testing.T) {
	testCases := []struct {
		typ      Type
		expected string
	}{
		{Boolean, "BOOLEAN"},
		{Int64, "Int64"},
		{UInt64, "UInt64"},
		{Float64, "Float64"},
		{String, "STRING"},
		{Array(Int32), "ARRAY(Int32)"},
		{Tuple(
			TupleField{"f1", Boolean},
			TupleField{"f2", String},
		), "TUPLE(f1 BOOLEAN, f2 STRING)"},
	}

	for _, tt := range testCases {
		t.Run(tt.expected, func(t *testing.T) {
			require.Equal(t, tt.expected, tt.typ.Name())
		})
	}
}

func TestFormatValue(t *testing.T) {
	testCases := []struct {
		name     string
		typ      Type
		value    interface{}
		expected string
	}{
		{"int", Int64, int64(42), "42"},
		{"negative int", Int64, -1, "-1"},
		{"uint", UInt64, uint64(42), "42"},
		{"float", Float64, 5.5, "5.5"},
		{"bool", Boolean, true, "true"},
		{"string", String, "ab", "'ab'"},
		{"string with quote", String, "a'b", "'a''b'"},
		{"array", Array(Int32), []interface{}{1, 2, 3}, "[1, 2, 3]"},
		{
			"tuple",
			Tuple(TupleField{"f1", Int64}, TupleField{"f2", String}),
			[]interface{}{1, "a"},
			"(1, 'a')",
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)
			s, err := tt.typ.FormatValue(tt.value)
			require.NoError(err)
			require.Equal(tt.expected, s)
		})
	}
}

func TestFormatValueInvalid(t *testing.T) {
	require := require.New(t)

	_, err := Int64.FormatValue("not a number")
	require.Error(err)
	require.True(ErrValueNotFormattable.Is(err))

	_, err = Array(Int32).FormatValue(42)
	require.Error(err)
	require.True(ErrValueNotFormattable.Is(err))
}

package expression

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fuseql/fuseql/sql"
)

func TestComparisonString(t *testing.T) {
	a := NewUnresolvedQualifiedColumn("t1", "a")
	lit := NewLiteral(int64(3), sql.Int64)

	testCases := []struct {
		name     string
		expr     sql.Expression
		expected string
	}{
		{"equals", NewEquals(a, lit), "t1.a = 3"},
		{"not equals", NewNotEquals(a, lit), "t1.a <> 3"},
		{"greater than", NewGreaterThan(a, lit), "t1.a > 3"},
		{"less than", NewLessThan(a, lit), "t1.a < 3"},
		{"greater or equal", NewGreaterThanOrEqual(a, lit), "t1.a >= 3"},
		{"less or equal", NewLessThanOrEqual(a, lit), "t1.a <= 3"},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)
			require.Equal(tt.expected, tt.expr.String())
			require.Equal(sql.Boolean, tt.expr.Type())
		})
	}
}

func TestArithmeticString(t *testing.T) {
	require := require.New(t)

	a := NewUnresolvedColumn("a")
	one := NewLiteral(int64(1), sql.Int64)

	require.Equal("a + 1", NewPlus(a, one).String())
	require.Equal("a - 1", NewMinus(a, one).String())
	require.Equal("a * 1", NewMult(a, one).String())
	require.Equal("a / 1", NewDiv(a, one).String())
}

func TestFunctionString(t *testing.T) {
	require := require.New(t)

	f := NewFunction("concat", sql.String,
		NewUnresolvedColumn("a"),
		NewLiteral("x", sql.String),
	)
	require.Equal("concat(a, 'x')", f.String())

	empty := NewFunction("now", sql.String)
	require.Equal("now()", empty.String())
}

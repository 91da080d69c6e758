package parse

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fuseql/fuseql/sql"
	"github.com/fuseql/fuseql/sql/ast"
	"github.com/fuseql/fuseql/sql/expression"
	"github.com/fuseql/fuseql/sql/format"
)

func TestParseSelect(t *testing.T) {
	require := require.New(t)
	ctx := sql.NewEmptyContext()

	stmt, err := Parse(ctx, "select t1.a, t2.b from t1, t2 where t1.a > 3 and t1.a = t2.a order by t1.a, t2.b desc")
	require.NoError(err)

	sel, ok := stmt.(*ast.Select)
	require.True(ok)
	require.Len(sel.Projections, 2)
	require.Equal("t1.a", sel.Projections[0].String())
	require.Equal("t2.b", sel.Projections[1].String())

	require.Len(sel.From, 2)
	require.Equal("t1", sel.From[0].Name)
	require.Equal("t2", sel.From[1].Name)

	require.Len(sel.Where, 2)
	require.Equal("t1.a > 3", sel.Where[0].String())
	require.Equal("t1.a = t2.a", sel.Where[1].String())

	require.Len(sel.OrderBy, 2)
	require.False(sel.OrderBy[0].Descending)
	require.True(sel.OrderBy[1].Descending)
}

func TestParseSelectLiterals(t *testing.T) {
	require := require.New(t)
	ctx := sql.NewEmptyContext()

	stmt, err := Parse(ctx, "select 1, 'ab', 2.5 from t1 where (a, b) = (1, 'a')")
	require.NoError(err)

	sel, ok := stmt.(*ast.Select)
	require.True(ok)
	require.Len(sel.Projections, 3)
	require.Equal("1", sel.Projections[0].String())
	require.Equal("'ab'", sel.Projections[1].String())
	require.Equal("2.5", sel.Projections[2].String())

	require.Len(sel.Where, 1)
	require.Equal("(a, b) = (1, 'a')", sel.Where[0].String())

	eq, ok := sel.Where[0].(*expression.Equals)
	require.True(ok)
	require.IsType((*expression.Tuple)(nil), eq.Left)
}

func TestParseDelete(t *testing.T) {
	require := require.New(t)
	ctx := sql.NewEmptyContext()

	stmt, err := Parse(ctx, "delete from t1 where a > 3 and b = 'x'")
	require.NoError(err)

	del, ok := stmt.(*ast.Delete)
	require.True(ok)
	require.Equal("t1", del.Table)
	require.Len(del.Where, 2)
	require.Equal("a > 3", del.Where[0].String())
	require.Equal("b = 'x'", del.Where[1].String())
}

func TestParseTrailingSemicolon(t *testing.T) {
	require := require.New(t)
	ctx := sql.NewEmptyContext()

	stmt, err := Parse(ctx, "select a from t1;")
	require.NoError(err)
	require.IsType((*ast.Select)(nil), stmt)
}

func TestParseUnsupported(t *testing.T) {
	require := require.New(t)
	ctx := sql.NewEmptyContext()

	_, err := Parse(ctx, "show tables")
	require.Error(err)
	require.True(ErrUnsupportedSyntax.Is(err))
}

// Canonicalization reaches a fixpoint: rendering a parsed statement and
// parsing the render again yields the same text.
func TestCanonicalizationFixpoint(t *testing.T) {
	queries := []string{
		"select 1, 'ab' from t1",
		"select * from t1, t2 where t1.a = t2.a",
		"select a from t1 where (a > 3 and b < 5) or a = 7",
		"select a, count(b) from t1 group by a order by a desc",
		"select a + 1, b * 2 from t1 where not (a = 2)",
		"delete from t1 where a > 3 and b = 'x'",
	}

	for _, q := range queries {
		t.Run(q, func(t *testing.T) {
			require := require.New(t)
			ctx := sql.NewEmptyContext()

			stmt, err := Parse(ctx, q)
			require.NoError(err)
			once := format.Format(stmt)

			stmt2, err := Parse(ctx, once)
			require.NoError(err)
			twice := format.Format(stmt2)

			require.Equal(once, twice)
		})
	}
}

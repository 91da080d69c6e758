package format

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fuseql/fuseql/sql"
	"github.com/fuseql/fuseql/sql/ast"
	"github.com/fuseql/fuseql/sql/expression"
)

func lit(v interface{}, typ sql.Type) *expression.Literal {
	return expression.NewLiteral(v, typ)
}

func col(name string) *expression.UnresolvedColumn {
	return expression.NewUnresolvedColumn(name)
}

func qcol(table, name string) *expression.UnresolvedColumn {
	return expression.NewUnresolvedQualifiedColumn(table, name)
}

func TestFormatSelectLiterals(t *testing.T) {
	require := require.New(t)

	stmt := &ast.Select{
		Projections: []sql.Expression{
			lit(int64(1), sql.Int64),
			lit("ab", sql.String),
			expression.NewArray(
				lit(int64(1), sql.Int64),
				lit(int64(2), sql.Int64),
				lit(int64(3), sql.Int64),
			),
			expression.NewTuple(
				lit(int64(1), sql.Int64),
				lit("a", sql.String),
			),
		},
	}

	require.Equal(`SELECT
    1,
    'ab',
    [1, 2, 3],
    (1, 'a')`, Format(stmt))
}

func TestFormatSelectClauses(t *testing.T) {
	require := require.New(t)

	stmt := &ast.Select{
		Projections: []sql.Expression{qcol("t1", "a"), qcol("t2", "b")},
		From: []ast.TableRef{
			{Name: "t1"},
			{Name: "t2"},
		},
		Where: []sql.Expression{
			expression.NewGreaterThan(qcol("t1", "a"), lit(int64(3), sql.Int64)),
			expression.NewEquals(qcol("t1", "a"), qcol("t2", "a")),
		},
		GroupBy: []sql.Expression{qcol("t1", "a")},
		OrderBy: []ast.OrderField{
			{Expr: qcol("t1", "a")},
			{Expr: qcol("t2", "b"), Descending: true},
		},
	}

	require.Equal(`SELECT
    t1.a,
    t2.b
FROM
    t1,
    t2
WHERE
    t1.a > 3
    AND t1.a = t2.a
GROUP BY
    t1.a
ORDER BY
    t1.a,
    t2.b DESC`, Format(stmt))
}

func TestFormatSelectWithAlias(t *testing.T) {
	require := require.New(t)

	stmt := &ast.Select{
		Projections: []sql.Expression{qcol("o", "a")},
		From:        []ast.TableRef{{Name: "t1", Alias: "o"}},
	}

	require.Equal(`SELECT
    o.a
FROM
    t1 AS o`, Format(stmt))
}

func TestFormatDelete(t *testing.T) {
	require := require.New(t)

	stmt := &ast.Delete{
		Table: "t1",
		Where: []sql.Expression{
			expression.NewGreaterThan(col("a"), lit(int64(3), sql.Int64)),
			expression.NewEquals(col("b"), lit("x", sql.String)),
		},
	}

	require.Equal(`DELETE FROM
    t1
WHERE
    a > 3
    AND b = 'x'`, Format(stmt))
}

func TestFormatCopyIntoTable(t *testing.T) {
	require := require.New(t)

	stmt := &ast.Copy{
		Direction: ast.CopyFromLocation,
		Table:     "mytable",
		Location:  "s3://mybucket/data.csv",
		FileFormat: map[string]string{
			"type":             "CSV",
			"field_delimiter":  ",",
			"record_delimiter": `\n`,
			"skip_header":      "1",
		},
		SizeLimit: 10,
	}

	require.Equal(`COPY
INTO mytable
FROM 's3://mybucket/data.csv'
FILE_FORMAT = (
    field_delimiter = ',',
    record_delimiter = '\n',
    skip_header = '1',
    type = 'CSV'
)
SIZE_LIMIT = 10`, Format(stmt))
}

func TestFormatCopyIntoLocation(t *testing.T) {
	require := require.New(t)

	stmt := &ast.Copy{
		Direction: ast.CopyToLocation,
		Table:     "mytable",
		Location:  "s3://mybucket/unload/",
	}

	require.Equal(`COPY
INTO 's3://mybucket/unload/'
FROM mytable`, Format(stmt))
}

// File format keys render sorted no matter how the bag was populated.
func TestFormatCopyOptionOrder(t *testing.T) {
	require := require.New(t)

	first := &ast.Copy{
		Direction:  ast.CopyFromLocation,
		Table:      "t",
		Location:   "fs:///data",
		FileFormat: map[string]string{"type": "CSV", "skip_header": "1"},
	}

	second := &ast.Copy{
		Direction:  ast.CopyFromLocation,
		Table:      "t",
		Location:   "fs:///data",
		FileFormat: map[string]string{"skip_header": "1", "type": "CSV"},
	}

	require.Equal(Format(first), Format(second))
	require.Equal(`COPY
INTO t
FROM 'fs:///data'
FILE_FORMAT = (
    skip_header = '1',
    type = 'CSV'
)`, Format(first))
}

func TestFormatCreateTable(t *testing.T) {
	require := require.New(t)

	stmt := &ast.CreateTable{
		Name: "t1",
		Schema: sql.Schema{
			{Name: "a", Type: sql.Int64},
			{Name: "b", Type: sql.Float64, Nullable: true},
			{Name: "c", Type: sql.String},
			{Name: "d", Type: sql.Array(sql.Int32)},
			{Name: "e", Type: sql.Tuple(
				sql.TupleField{Name: "f1", Type: sql.Boolean},
				sql.TupleField{Name: "f2", Type: sql.String},
			)},
		},
		Engine: "FUSE",
	}

	require.Equal(`CREATE TABLE t1 (
    a Int64 NOT NULL,
    b Float64 NULL,
    c STRING NOT NULL,
    d ARRAY(Int32) NOT NULL,
    e TUPLE(f1 BOOLEAN, f2 STRING) NOT NULL
) ENGINE = FUSE`, Format(stmt))
}

// CREATE TABLE options keep declaration order, unlike COPY's sorted bag.
func TestFormatCreateTableOptions(t *testing.T) {
	require := require.New(t)

	stmt := &ast.CreateTable{
		Name: "t1",
		Schema: sql.Schema{
			{Name: "a", Type: sql.UInt64},
			{Name: "b", Type: sql.UInt64},
		},
		Engine: "FUSE",
		ClusterBy: []sql.Expression{
			col("a"),
			col("b"),
		},
		Options: []ast.TableOption{
			{Key: "snapshot_loc", Value: "1/2/ss.json"},
			{Key: "compression", Value: "lz4"},
		},
	}

	require.Equal(`CREATE TABLE t1 (
    a UInt64 NOT NULL,
    b UInt64 NOT NULL
) ENGINE = FUSE
CLUSTER BY (
    a,
    b
)
snapshot_loc = '1/2/ss.json'
compression = 'lz4'`, Format(stmt))
}

func TestFormatCreateView(t *testing.T) {
	require := require.New(t)

	stmt := &ast.CreateView{
		Name: "v",
		Body: &ast.Select{
			Projections: []sql.Expression{col("a"), col("b")},
			From:        []ast.TableRef{{Name: "t1"}},
			Where: []sql.Expression{
				expression.NewGreaterThan(col("a"), lit(int64(1), sql.Int64)),
			},
		},
	}

	require.Equal(`CREATE VIEW v
AS
    SELECT
        a,
        b
    FROM
        t1
    WHERE
        a > 1`, Format(stmt))
}

func TestFormatIsDeterministic(t *testing.T) {
	require := require.New(t)

	stmt := &ast.Select{
		Projections: []sql.Expression{col("a")},
		From:        []ast.TableRef{{Name: "t1"}},
	}

	first := Format(stmt)
	for i := 0; i < 10; i++ {
		require.Equal(first, Format(stmt))
	}
}

// Package ast holds the statement trees consumed by the SQL canonicalizer.
// Scalar parts reuse sql.Expression; statements parsed from source carry
// unresolved columns, so canonical SQL renders without ordinal annotations.
package ast

import "github.com/fuseql/fuseql/sql"

// Statement is a parsed SQL statement.
//
// The statementNode method is a marker so only the types below can be used
// where a Statement is expected.
type Statement interface {
	statementNode()
}

// TableRef is a relation in a FROM clause.
type TableRef struct {
	Name  string
	Alias string
}

func (t TableRef) String() string {
	if t.Alias == "" {
		return t.Name
	}
	return t.Name + " AS " + t.Alias
}

// OrderField is one item of an ORDER BY clause.
type OrderField struct {
	Expr       sql.Expression
	Descending bool
}

// Select is a SELECT statement. Where holds the top-level conjuncts of the
// predicate, in source order, so the canonicalizer can lay them out one per
// line.
type Select struct {
	Projections []sql.Expression
	From        []TableRef
	Where       []sql.Expression
	GroupBy     []sql.Expression
	OrderBy     []OrderField
}

func (*Select) statementNode() {}

// Delete is a DELETE statement.
type Delete struct {
	Table string
	Where []sql.Expression
}

func (*Delete) statementNode() {}

// CopyDirection says which way a COPY statement moves data.
type CopyDirection byte

const (
	// CopyFromLocation loads a table from an external location.
	CopyFromLocation CopyDirection = iota
	// CopyToLocation unloads a table into an external location.
	CopyToLocation
)

// Copy is a COPY statement between a table and an external location. The
// file format options are an unordered bag; rendering sorts the keys.
type Copy struct {
	Direction  CopyDirection
	Table      string
	Location   string
	FileFormat map[string]string
	SizeLimit  uint64
}

func (*Copy) statementNode() {}

// TableOption is one key/value option of a CREATE TABLE statement. Unlike
// COPY file format options, table options keep their declaration order.
type TableOption struct {
	Key   string
	Value string
}

// CreateTable is a CREATE TABLE statement.
type CreateTable struct {
	Name      string
	Schema    sql.Schema
	Engine    string
	ClusterBy []sql.Expression
	Options   []TableOption
}

func (*CreateTable) statementNode() {}

// CreateView is a CREATE VIEW statement.
type CreateView struct {
	Name string
	Body *Select
}

func (*CreateView) statementNode() {}

package expression

import (
	"fmt"

	"github.com/fuseql/fuseql/sql"
)

// BoundColumn is a column reference bound to a stable per-query ordinal by
// the binding registry. It renders with its `#N` annotation so that plans
// stay unambiguous under table aliasing.
type BoundColumn struct {
	ref sql.ColumnRef
	typ sql.Type
}

var _ sql.Expression = (*BoundColumn)(nil)

// NewBoundColumn creates a BoundColumn from a registry reference.
func NewBoundColumn(ref sql.ColumnRef, typ sql.Type) *BoundColumn {
	return &BoundColumn{ref: ref, typ: typ}
}

// Name returns the column name.
func (c *BoundColumn) Name() string { return c.ref.Name }

// Table returns the qualifying table name, which may be empty.
func (c *BoundColumn) Table() string { return c.ref.Table }

// Ordinal returns the stable zero-based ordinal of the column.
func (c *BoundColumn) Ordinal() int { return c.ref.Ordinal }

// Type implements the Expression interface.
func (c *BoundColumn) Type() sql.Type { return c.typ }

// Resolved implements the Expression interface.
func (c *BoundColumn) Resolved() bool { return true }

// Children implements the Expression interface.
func (*BoundColumn) Children() []sql.Expression { return nil }

func (c *BoundColumn) String() string {
	if c.ref.Table == "" {
		return fmt.Sprintf("%s (#%d)", c.ref.Name, c.ref.Ordinal)
	}
	return fmt.Sprintf("%s.%s (#%d)", c.ref.Table, c.ref.Name, c.ref.Ordinal)
}

// UnresolvedColumn is a column reference that has not been bound yet. It is
// what the parser produces and what statement canonicalization renders, so
// it carries no ordinal.
type UnresolvedColumn struct {
	table string
	name  string
}

var _ sql.Expression = (*UnresolvedColumn)(nil)

// NewUnresolvedColumn creates a new UnresolvedColumn expression.
func NewUnresolvedColumn(name string) *UnresolvedColumn {
	return &UnresolvedColumn{name: name}
}

// NewUnresolvedQualifiedColumn creates a new UnresolvedColumn expression
// with a table qualifier.
func NewUnresolvedQualifiedColumn(table, name string) *UnresolvedColumn {
	return &UnresolvedColumn{table: table, name: name}
}

// Name returns the column name.
func (c *UnresolvedColumn) Name() string { return c.name }

// Table returns the qualifying table name, which may be empty.
func (c *UnresolvedColumn) Table() string { return c.table }

// Type implements the Expression interface.
func (*UnresolvedColumn) Type() sql.Type { return sql.String }

// Resolved implements the Expression interface.
func (*UnresolvedColumn) Resolved() bool { return false }

// Children implements the Expression interface.
func (*UnresolvedColumn) Children() []sql.Expression { return nil }

func (c *UnresolvedColumn) String() string {
	if c.table == "" {
		return c.name
	}
	return c.table + "." + c.name
}

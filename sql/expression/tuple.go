package expression

import (
	"fmt"
	"strings"

	"github.com/fuseql/fuseql/sql"
)

// Tuple is a fixed-arity list of expressions, rendered in parentheses.
type Tuple struct {
	exprs []sql.Expression
}

var _ sql.Expression = (*Tuple)(nil)

// NewTuple creates a new Tuple expression.
func NewTuple(exprs ...sql.Expression) *Tuple {
	return &Tuple{exprs: exprs}
}

// Type implements the Expression interface. Tuple fields are named
// positionally, f1 through fN.
func (t *Tuple) Type() sql.Type {
	fields := make([]sql.TupleField, len(t.exprs))
	for i, e := range t.exprs {
		fields[i] = sql.TupleField{
			Name: fmt.Sprintf("f%d", i+1),
			Type: e.Type(),
		}
	}
	return sql.Tuple(fields...)
}

// Resolved implements the Expression interface.
func (t *Tuple) Resolved() bool {
	for _, e := range t.exprs {
		if !e.Resolved() {
			return false
		}
	}
	return true
}

// Children implements the Expression interface.
func (t *Tuple) Children() []sql.Expression { return t.exprs }

func (t *Tuple) String() string {
	return "(" + joinExpressions(t.exprs, ", ") + ")"
}

// Array is a variable-length list of expressions of a common element type,
// rendered in square brackets.
type Array struct {
	exprs []sql.Expression
}

var _ sql.Expression = (*Array)(nil)

// NewArray creates a new Array expression.
func NewArray(exprs ...sql.Expression) *Array {
	return &Array{exprs: exprs}
}

// Type implements the Expression interface. The element type is taken from
// the first element; empty arrays are arrays of strings.
func (a *Array) Type() sql.Type {
	if len(a.exprs) == 0 {
		return sql.Array(sql.String)
	}
	return sql.Array(a.exprs[0].Type())
}

// Resolved implements the Expression interface.
func (a *Array) Resolved() bool {
	for _, e := range a.exprs {
		if !e.Resolved() {
			return false
		}
	}
	return true
}

// Children implements the Expression interface.
func (a *Array) Children() []sql.Expression { return a.exprs }

func (a *Array) String() string {
	return "[" + joinExpressions(a.exprs, ", ") + "]"
}

func joinExpressions(exprs []sql.Expression, sep string) string {
	strs := make([]string, len(exprs))
	for i, e := range exprs {
		strs[i] = e.String()
	}
	return strings.Join(strs, sep)
}

package expression

import (
	"fmt"

	"github.com/fuseql/fuseql/sql"
)

// And checks whether two expressions are both true.
type And struct {
	BinaryExpression
}

var _ sql.Expression = (*And)(nil)

// NewAnd creates a new And expression.
func NewAnd(left, right sql.Expression) *And {
	return &And{BinaryExpression{Left: left, Right: right}}
}

// JoinAnd joins every expression with an AND. It returns nil if the list is
// empty.
func JoinAnd(exprs ...sql.Expression) sql.Expression {
	switch len(exprs) {
	case 0:
		return nil
	case 1:
		return exprs[0]
	default:
		result := NewAnd(exprs[0], exprs[1])
		for _, e := range exprs[2:] {
			result = NewAnd(result, e)
		}
		return result
	}
}

// SplitConjunction breaks an expression into its top-level AND conjuncts, in
// left-to-right order.
func SplitConjunction(e sql.Expression) []sql.Expression {
	and, ok := e.(*And)
	if !ok {
		return []sql.Expression{e}
	}
	return append(
		SplitConjunction(and.Left),
		SplitConjunction(and.Right)...,
	)
}

// Type implements the Expression interface.
func (*And) Type() sql.Type {
	return sql.Boolean
}

func (a *And) String() string {
	return fmt.Sprintf("%s AND %s", operand(a.Left, opAnd), operand(a.Right, opAnd))
}

// Or checks whether one of the two given expressions is true.
type Or struct {
	BinaryExpression
}

var _ sql.Expression = (*Or)(nil)

// NewOr creates a new Or expression.
func NewOr(left, right sql.Expression) *Or {
	return &Or{BinaryExpression{Left: left, Right: right}}
}

// Type implements the Expression interface.
func (*Or) Type() sql.Type {
	return sql.Boolean
}

func (o *Or) String() string {
	return fmt.Sprintf("%s OR %s", operand(o.Left, opOr), operand(o.Right, opOr))
}

// Not negates an expression.
type Not struct {
	UnaryExpression
}

var _ sql.Expression = (*Not)(nil)

// NewNot returns a new Not expression.
func NewNot(child sql.Expression) *Not {
	return &Not{UnaryExpression{child}}
}

// Type implements the Expression interface.
func (*Not) Type() sql.Type {
	return sql.Boolean
}

func (n *Not) String() string {
	return fmt.Sprintf("NOT (%s)", n.Child)
}

type connector int

const (
	opAnd connector = iota
	opOr
)

// operand renders a child of a boolean connector. Chains of the same
// connector stay flat, any other operator expression is parenthesized so
// mixed-precedence trees read back unambiguously. Plain operands such as
// columns, literals and calls never need parentheses.
func operand(e sql.Expression, parent connector) string {
	switch e := e.(type) {
	case *And:
		if parent == opAnd {
			return e.String()
		}
	case *Or:
		if parent == opOr {
			return e.String()
		}
	case *BoundColumn, *UnresolvedColumn, *Literal, *Tuple, *Array, *Function:
		return e.String()
	}
	return fmt.Sprintf("(%s)", e)
}

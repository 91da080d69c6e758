package plan

import (
	"github.com/fuseql/fuseql/sql"
	"github.com/fuseql/fuseql/sql/expression"
)

// EvalScalar computes scalar expressions over the rows of its child.
type EvalScalar struct {
	UnaryNode
	Scalars []sql.Expression
}

var _ sql.Node = (*EvalScalar)(nil)

// NewEvalScalar creates a new EvalScalar node.
func NewEvalScalar(scalars []sql.Expression, child sql.Node) *EvalScalar {
	return &EvalScalar{
		UnaryNode: UnaryNode{Child: child},
		Scalars:   scalars,
	}
}

// Resolved implements the Node interface.
func (e *EvalScalar) Resolved() bool {
	return e.UnaryNode.Resolved() && resolved(e.Scalars)
}

func (e *EvalScalar) String() string {
	pr := sql.NewTreePrinter()
	_ = pr.WriteNode("EvalScalar: %s", expression.FormatExpressions(e.Scalars))
	_ = pr.WriteChildren(e.Child.String())
	return pr.String()
}

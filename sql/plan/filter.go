package plan

import (
	"github.com/fuseql/fuseql/sql"
)

// Filter drops the rows of its child that do not match the predicate. The
// renderer never introduces a Filter on its own: when the optimizer folds a
// predicate away, the plan simply has no Filter node to render.
type Filter struct {
	UnaryNode
	Expression sql.Expression
}

var _ sql.Node = (*Filter)(nil)

// NewFilter creates a new Filter node.
func NewFilter(expression sql.Expression, child sql.Node) *Filter {
	return &Filter{
		UnaryNode:  UnaryNode{Child: child},
		Expression: expression,
	}
}

// Resolved implements the Node interface.
func (f *Filter) Resolved() bool {
	return f.UnaryNode.Resolved() && f.Expression.Resolved()
}

func (f *Filter) String() string {
	pr := sql.NewTreePrinter()
	_ = pr.WriteNode("Filter: [%s]", f.Expression)
	_ = pr.WriteChildren(f.Child.String())
	return pr.String()
}

package plan

import (
	"github.com/fuseql/fuseql/sql"
	"github.com/fuseql/fuseql/sql/expression"
)

// Project is a projection of certain columns from the child node.
type Project struct {
	UnaryNode
	Projections []sql.Expression
}

var _ sql.Node = (*Project)(nil)

// NewProject creates a new projection.
func NewProject(projections []sql.Expression, child sql.Node) *Project {
	return &Project{
		UnaryNode:   UnaryNode{Child: child},
		Projections: projections,
	}
}

// Resolved implements the Node interface.
func (p *Project) Resolved() bool {
	return p.UnaryNode.Resolved() && resolved(p.Projections)
}

func (p *Project) String() string {
	pr := sql.NewTreePrinter()
	_ = pr.WriteNode("Project: %s", expression.FormatExpressions(p.Projections))
	_ = pr.WriteChildren(p.Child.String())
	return pr.String()
}

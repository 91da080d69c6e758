package plan

import (
	"github.com/fuseql/fuseql/sql"
	"github.com/fuseql/fuseql/sql/expression"
)

// LogicalInnerJoin is a logical inner join with its predicate already split
// into equi-conditions and the rest.
type LogicalInnerJoin struct {
	BinaryNode
	EquiConditions    []sql.Expression
	NonEquiConditions []sql.Expression
}

var _ sql.Node = (*LogicalInnerJoin)(nil)

// NewLogicalInnerJoin creates a new LogicalInnerJoin node.
func NewLogicalInnerJoin(
	equi, nonEqui []sql.Expression,
	left, right sql.Node,
) *LogicalInnerJoin {
	return &LogicalInnerJoin{
		BinaryNode:        BinaryNode{Left: left, Right: right},
		EquiConditions:    equi,
		NonEquiConditions: nonEqui,
	}
}

// Resolved implements the Node interface.
func (j *LogicalInnerJoin) Resolved() bool {
	return j.BinaryNode.Resolved() &&
		resolved(j.EquiConditions) &&
		resolved(j.NonEquiConditions)
}

func (j *LogicalInnerJoin) String() string {
	pr := sql.NewTreePrinter()
	_ = pr.WriteNode("LogicalInnerJoin: equi-conditions: %s, non-equi-conditions: %s",
		expression.FormatExpressions(j.EquiConditions),
		expression.FormatExpressions(j.NonEquiConditions))
	_ = pr.WriteChildren(j.Left.String(), j.Right.String())
	return pr.String()
}

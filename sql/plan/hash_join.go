package plan

import (
	"github.com/fuseql/fuseql/sql"
	"github.com/fuseql/fuseql/sql/expression"
)

// JoinType is the type of a join.
type JoinType byte

const (
	// JoinTypeInner is an inner join.
	JoinTypeInner JoinType = iota
	// JoinTypeLeft is a left outer join.
	JoinTypeLeft
	// JoinTypeRight is a right outer join.
	JoinTypeRight
	// JoinTypeFull is a full outer join.
	JoinTypeFull
	// JoinTypeCross is a cross join.
	JoinTypeCross
)

func (t JoinType) String() string {
	switch t {
	case JoinTypeInner:
		return "INNER"
	case JoinTypeLeft:
		return "LEFT"
	case JoinTypeRight:
		return "RIGHT"
	case JoinTypeFull:
		return "FULL"
	case JoinTypeCross:
		return "CROSS"
	default:
		return "UNKNOWN"
	}
}

// HashJoin is a physical join. Which side builds the hash table is an
// optimizer decision stored here at construction; the right child is the
// build side. The renderer displays the stored keys as-is so that the same
// plan renders identically on every call.
type HashJoin struct {
	BinaryNode
	JoinType    JoinType
	BuildKeys   []sql.Expression
	ProbeKeys   []sql.Expression
	JoinFilters []sql.Expression
}

var _ sql.Node = (*HashJoin)(nil)

// NewHashJoin creates a new HashJoin node. The probe side is the left
// child, the build side the right one.
func NewHashJoin(
	t JoinType,
	buildKeys, probeKeys, joinFilters []sql.Expression,
	probe, build sql.Node,
) *HashJoin {
	return &HashJoin{
		BinaryNode:  BinaryNode{Left: probe, Right: build},
		JoinType:    t,
		BuildKeys:   buildKeys,
		ProbeKeys:   probeKeys,
		JoinFilters: joinFilters,
	}
}

// Resolved implements the Node interface.
func (j *HashJoin) Resolved() bool {
	return j.BinaryNode.Resolved() &&
		resolved(j.BuildKeys) &&
		resolved(j.ProbeKeys) &&
		resolved(j.JoinFilters)
}

func (j *HashJoin) String() string {
	pr := sql.NewTreePrinter()
	_ = pr.WriteNode("HashJoin: %s, build keys: %s, probe keys: %s, join filters: %s",
		j.JoinType,
		expression.FormatExpressions(j.BuildKeys),
		expression.FormatExpressions(j.ProbeKeys),
		expression.FormatExpressions(j.JoinFilters))
	_ = pr.WriteChildren(j.Left.String(), j.Right.String())
	return pr.String()
}

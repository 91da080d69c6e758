package sql

import "fmt"

// Nameable is something that has a name.
type Nameable interface {
	// Name returns the name.
	Name() string
}

// Expression is a scalar expression node. Expressions are immutable once
// built and render themselves through the Stringer interface.
type Expression interface {
	fmt.Stringer
	// Resolved returns whether the expression and all of its children are
	// bound to concrete columns.
	Resolved() bool
	// Type returns the type of the expression.
	Type() Type
	// Children returns the children expressions of this expression.
	Children() []Expression
}

// Node is one operator of a logical or physical plan tree. A node owns its
// children exclusively: plans are trees, never DAGs.
type Node interface {
	fmt.Stringer
	// Resolved returns whether the node and all of its children are resolved.
	Resolved() bool
	// Children returns the plan children of this node.
	Children() []Node
}

// TableName is the fully qualified name of a table.
type TableName struct {
	Database string
	Schema   string
	Table    string
}

func (t TableName) String() string {
	return t.Database + "." + t.Schema + "." + t.Table
}

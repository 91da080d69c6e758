package sql

import "gopkg.in/src-d/go-errors.v1"

var (
	// ErrInvalidType is thrown when there is an unexpected type at some part of
	// the execution tree.
	ErrInvalidType = errors.NewKind("invalid type: %s")

	// ErrColumnNotBound is returned when a column is looked up in a binding
	// registry that never saw it. It is a contract violation: the binder must
	// run over every relation before anything renders.
	ErrColumnNotBound = errors.NewKind("column %q.%q is not bound")

	// ErrInvalidChildrenNumber is returned when the WithChildren method of a
	// node or expression is called with an invalid number of arguments.
	ErrInvalidChildrenNumber = errors.NewKind("%T: invalid children number, got %d, expected %d")

	// ErrNodeUnresolved is returned when a plan handed to the renderer still
	// contains unresolved nodes or expressions.
	ErrNodeUnresolved = errors.NewKind("node is not resolved: %s")

	// ErrValueNotFormattable is returned when a literal value cannot be
	// rendered as a SQL literal of its declared type.
	ErrValueNotFormattable = errors.NewKind("value %v cannot be formatted as %s")
)

package expression

import (
	"fmt"

	"github.com/fuseql/fuseql/sql"
)

// Function is a scalar function call. The renderer does not evaluate
// functions, so the result type is whatever the binder declared.
type Function struct {
	name  string
	typ   sql.Type
	exprs []sql.Expression
}

var _ sql.Expression = (*Function)(nil)

// NewFunction creates a new Function expression.
func NewFunction(name string, typ sql.Type, exprs ...sql.Expression) *Function {
	return &Function{name: name, typ: typ, exprs: exprs}
}

// Name returns the function name.
func (f *Function) Name() string { return f.name }

// Type implements the Expression interface.
func (f *Function) Type() sql.Type { return f.typ }

// Resolved implements the Expression interface.
func (f *Function) Resolved() bool {
	for _, e := range f.exprs {
		if !e.Resolved() {
			return false
		}
	}
	return true
}

// Children implements the Expression interface.
func (f *Function) Children() []sql.Expression { return f.exprs }

func (f *Function) String() string {
	return fmt.Sprintf("%s(%s)", f.name, joinExpressions(f.exprs, ", "))
}

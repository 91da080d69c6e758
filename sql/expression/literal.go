package expression

import (
	"fmt"

	"github.com/fuseql/fuseql/sql"
)

// Literal represents a constant value of a concrete type.
type Literal struct {
	value interface{}
	typ   sql.Type
}

var _ sql.Expression = (*Literal)(nil)

// NewLiteral creates a new Literal expression.
func NewLiteral(value interface{}, typ sql.Type) *Literal {
	return &Literal{value: value, typ: typ}
}

// Value returns the literal value.
func (l *Literal) Value() interface{} { return l.value }

// Type implements the Expression interface.
func (l *Literal) Type() sql.Type { return l.typ }

// Resolved implements the Expression interface.
func (*Literal) Resolved() bool { return true }

// Children implements the Expression interface.
func (*Literal) Children() []sql.Expression { return nil }

func (l *Literal) String() string {
	s, err := l.typ.FormatValue(l.value)
	if err != nil {
		return fmt.Sprintf("%v", l.value)
	}
	return s
}

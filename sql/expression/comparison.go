package expression

import (
	"fmt"

	"github.com/fuseql/fuseql/sql"
)

// Comparison is an expression that compares an expression against another.
type Comparison struct {
	BinaryExpression
}

// NewComparison creates a new comparison between two expressions.
func NewComparison(left, right sql.Expression) Comparison {
	return Comparison{BinaryExpression{left, right}}
}

// Type implements the Expression interface.
func (*Comparison) Type() sql.Type {
	return sql.Boolean
}

// Equals is a comparison that checks an expression is equal to another.
type Equals struct {
	Comparison
}

var _ sql.Expression = (*Equals)(nil)

// NewEquals returns a new Equals expression.
func NewEquals(left, right sql.Expression) *Equals {
	return &Equals{NewComparison(left, right)}
}

func (e *Equals) String() string {
	return fmt.Sprintf("%s = %s", e.Left, e.Right)
}

// NotEquals is a comparison that checks an expression is not equal to
// another.
type NotEquals struct {
	Comparison
}

var _ sql.Expression = (*NotEquals)(nil)

// NewNotEquals returns a new NotEquals expression.
func NewNotEquals(left, right sql.Expression) *NotEquals {
	return &NotEquals{NewComparison(left, right)}
}

func (e *NotEquals) String() string {
	return fmt.Sprintf("%s <> %s", e.Left, e.Right)
}

// GreaterThan is a comparison that checks an expression is greater than
// another.
type GreaterThan struct {
	Comparison
}

var _ sql.Expression = (*GreaterThan)(nil)

// NewGreaterThan creates a new GreaterThan expression.
func NewGreaterThan(left, right sql.Expression) *GreaterThan {
	return &GreaterThan{NewComparison(left, right)}
}

func (e *GreaterThan) String() string {
	return fmt.Sprintf("%s > %s", e.Left, e.Right)
}

// LessThan is a comparison that checks an expression is less than another.
type LessThan struct {
	Comparison
}

var _ sql.Expression = (*LessThan)(nil)

// NewLessThan creates a new LessThan expression.
func NewLessThan(left, right sql.Expression) *LessThan {
	return &LessThan{NewComparison(left, right)}
}

func (e *LessThan) String() string {
	return fmt.Sprintf("%s < %s", e.Left, e.Right)
}

// GreaterThanOrEqual is a comparison that checks an expression is greater
// than or equal to another.
type GreaterThanOrEqual struct {
	Comparison
}

var _ sql.Expression = (*GreaterThanOrEqual)(nil)

// NewGreaterThanOrEqual creates a new GreaterThanOrEqual expression.
func NewGreaterThanOrEqual(left, right sql.Expression) *GreaterThanOrEqual {
	return &GreaterThanOrEqual{NewComparison(left, right)}
}

func (e *GreaterThanOrEqual) String() string {
	return fmt.Sprintf("%s >= %s", e.Left, e.Right)
}

// LessThanOrEqual is a comparison that checks an expression is less than or
// equal to another.
type LessThanOrEqual struct {
	Comparison
}

var _ sql.Expression = (*LessThanOrEqual)(nil)

// NewLessThanOrEqual creates a new LessThanOrEqual expression.
func NewLessThanOrEqual(left, right sql.Expression) *LessThanOrEqual {
	return &LessThanOrEqual{NewComparison(left, right)}
}

func (e *LessThanOrEqual) String() string {
	return fmt.Sprintf("%s <= %s", e.Left, e.Right)
}

package plan

import (
	"fmt"

	"github.com/fuseql/fuseql/sql"
	"github.com/fuseql/fuseql/sql/expression"
)

// Scan is a physical table scan with the filters the optimizer pushed down
// to it. A scan without pushed filters renders them as [].
type Scan struct {
	Table   sql.TableName
	Filters []sql.Expression
}

var _ sql.Node = (*Scan)(nil)

// NewScan creates a new Scan node.
func NewScan(table sql.TableName, filters ...sql.Expression) *Scan {
	return &Scan{Table: table, Filters: filters}
}

// Resolved implements the Node interface.
func (s *Scan) Resolved() bool {
	return resolved(s.Filters)
}

// Children implements the Node interface.
func (*Scan) Children() []sql.Node { return nil }

func (s *Scan) String() string {
	return fmt.Sprintf("Scan: %s, filters: %s",
		s.Table, expression.FormatExpressions(s.Filters))
}

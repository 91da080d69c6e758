package plan

import (
	"fmt"

	"github.com/fuseql/fuseql/sql"
)

// LogicalGet is the logical read of a table, before any physical access
// path is chosen.
type LogicalGet struct {
	Table sql.TableName
}

var _ sql.Node = (*LogicalGet)(nil)

// NewLogicalGet creates a new LogicalGet node.
func NewLogicalGet(table sql.TableName) *LogicalGet {
	return &LogicalGet{Table: table}
}

// Resolved implements the Node interface.
func (*LogicalGet) Resolved() bool { return true }

// Children implements the Node interface.
func (*LogicalGet) Children() []sql.Node { return nil }

func (g *LogicalGet) String() string {
	return fmt.Sprintf("LogicalGet: %s", g.Table)
}

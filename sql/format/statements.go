package format

import (
	"sort"
	"strconv"
	"strings"

	"github.com/fuseql/fuseql/sql"
	"github.com/fuseql/fuseql/sql/ast"
)

// formatSelect renders a SELECT statement. Every line is prefixed with the
// given prefix so view bodies can be indented as a block.
func formatSelect(sb *strings.Builder, s *ast.Select, prefix string) {
	sb.WriteString(prefix + "SELECT")
	for i, e := range s.Projections {
		sb.WriteString("\n" + prefix + indent + e.String())
		if i < len(s.Projections)-1 {
			sb.WriteString(",")
		}
	}

	if len(s.From) > 0 {
		sb.WriteString("\n" + prefix + "FROM")
		for i, t := range s.From {
			sb.WriteString("\n" + prefix + indent + t.String())
			if i < len(s.From)-1 {
				sb.WriteString(",")
			}
		}
	}

	formatWhere(sb, s.Where, prefix)

	if len(s.GroupBy) > 0 {
		sb.WriteString("\n" + prefix + "GROUP BY")
		for i, e := range s.GroupBy {
			sb.WriteString("\n" + prefix + indent + e.String())
			if i < len(s.GroupBy)-1 {
				sb.WriteString(",")
			}
		}
	}

	if len(s.OrderBy) > 0 {
		sb.WriteString("\n" + prefix + "ORDER BY")
		for i, f := range s.OrderBy {
			sb.WriteString("\n" + prefix + indent + f.Expr.String())
			if f.Descending {
				sb.WriteString(" DESC")
			}
			if i < len(s.OrderBy)-1 {
				sb.WriteString(",")
			}
		}
	}
}

// formatWhere lays the conjuncts out one per line, continuation lines led
// by AND.
func formatWhere(sb *strings.Builder, conjuncts []sql.Expression, prefix string) {
	if len(conjuncts) == 0 {
		return
	}
	sb.WriteString("\n" + prefix + "WHERE")
	for i, e := range conjuncts {
		if i == 0 {
			sb.WriteString("\n" + prefix + indent + e.String())
		} else {
			sb.WriteString("\n" + prefix + indent + "AND " + e.String())
		}
	}
}

func formatDelete(sb *strings.Builder, d *ast.Delete) {
	sb.WriteString("DELETE FROM")
	sb.WriteString("\n" + indent + d.Table)
	formatWhere(sb, d.Where, "")
}

func formatCopy(sb *strings.Builder, c *ast.Copy) {
	sb.WriteString("COPY")
	if c.Direction == ast.CopyToLocation {
		sb.WriteString("\nINTO " + sql.QuoteString(c.Location))
		sb.WriteString("\nFROM " + c.Table)
	} else {
		sb.WriteString("\nINTO " + c.Table)
		sb.WriteString("\nFROM " + sql.QuoteString(c.Location))
	}

	if len(c.FileFormat) > 0 {
		keys := make([]string, 0, len(c.FileFormat))
		for k := range c.FileFormat {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		sb.WriteString("\nFILE_FORMAT = (")
		for i, k := range keys {
			sb.WriteString("\n" + indent + k + " = " + sql.QuoteString(c.FileFormat[k]))
			if i < len(keys)-1 {
				sb.WriteString(",")
			}
		}
		sb.WriteString("\n)")
	}

	if c.SizeLimit > 0 {
		sb.WriteString("\nSIZE_LIMIT = " + strconv.FormatUint(c.SizeLimit, 10))
	}
}

func formatCreateTable(sb *strings.Builder, c *ast.CreateTable) {
	sb.WriteString("CREATE TABLE " + c.Name + " (")
	for i, col := range c.Schema {
		sb.WriteString("\n" + indent + col.Name + " " + col.Type.Name())
		if col.Nullable {
			sb.WriteString(" NULL")
		} else {
			sb.WriteString(" NOT NULL")
		}
		if i < len(c.Schema)-1 {
			sb.WriteString(",")
		}
	}
	sb.WriteString("\n) ENGINE = " + c.Engine)

	if len(c.ClusterBy) > 0 {
		sb.WriteString("\nCLUSTER BY (")
		for i, e := range c.ClusterBy {
			sb.WriteString("\n" + indent + e.String())
			if i < len(c.ClusterBy)-1 {
				sb.WriteString(",")
			}
		}
		sb.WriteString("\n)")
	}

	// Table options keep declaration order, unlike COPY's file format bag.
	for _, opt := range c.Options {
		sb.WriteString("\n" + opt.Key + " = " + sql.QuoteString(opt.Value))
	}
}

func formatCreateView(sb *strings.Builder, v *ast.CreateView) {
	sb.WriteString("CREATE VIEW " + v.Name)
	sb.WriteString("\nAS\n")
	formatSelect(sb, v.Body, indent)
}

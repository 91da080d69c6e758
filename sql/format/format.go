// Package format renders statement trees back into canonical SQL: keywords
// uppercased, one clause keyword per line, clause bodies indented by four
// spaces. The output is deterministic, byte for byte, for a given tree.
package format

import (
	"strings"

	"github.com/fuseql/fuseql/sql/ast"
)

const indent = "    "

// Format returns the canonical SQL text of the statement. Lines are joined
// with \n and there is no trailing newline.
func Format(stmt ast.Statement) string {
	var sb strings.Builder
	Statement(&sb, stmt)
	return sb.String()
}

// Statement renders a single statement into the builder.
func Statement(sb *strings.Builder, stmt ast.Statement) {
	switch s := stmt.(type) {
	case *ast.Select:
		formatSelect(sb, s, "")
	case *ast.Delete:
		formatDelete(sb, s)
	case *ast.Copy:
		formatCopy(sb, s)
	case *ast.CreateTable:
		formatCreateTable(sb, s)
	case *ast.CreateView:
		formatCreateView(sb, s)
	}
}

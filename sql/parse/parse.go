// Package parse turns SQL text into statement trees for canonicalization.
// It covers the MySQL-compatible subset of the grammar; statements that only
// exist in the extended surface (COPY, CLUSTER BY, array literals) are built
// directly as trees by their callers.
package parse

import (
	"strconv"
	"strings"

	opentracing "github.com/opentracing/opentracing-go"
	"gopkg.in/src-d/go-errors.v1"
	"gopkg.in/src-d/go-vitess.v1/vt/sqlparser"

	"github.com/fuseql/fuseql/sql"
	"github.com/fuseql/fuseql/sql/ast"
	"github.com/fuseql/fuseql/sql/expression"
)

var (
	// ErrUnsupportedSyntax is thrown when a specific syntax is not already supported
	ErrUnsupportedSyntax = errors.NewKind("unsupported syntax: %#v")

	// ErrUnsupportedFeature is thrown when a feature is not already supported
	ErrUnsupportedFeature = errors.NewKind("unsupported feature: %s")

	// ErrInvalidSQLValType is returned when a SQLVal type is not valid.
	ErrInvalidSQLValType = errors.NewKind("invalid SQLVal of type: %d")
)

// Parse parses the given SQL sentence and returns the corresponding
// statement tree.
func Parse(ctx *sql.Context, query string) (ast.Statement, error) {
	span, _ := ctx.Span("parse", opentracing.Tag{Key: "query", Value: query})
	defer span.Finish()

	s := strings.TrimSpace(query)
	s = strings.TrimSuffix(s, ";")

	stmt, err := sqlparser.Parse(s)
	if err != nil {
		return nil, err
	}

	return convert(stmt)
}

func convert(stmt sqlparser.Statement) (ast.Statement, error) {
	switch n := stmt.(type) {
	case *sqlparser.Select:
		return convertSelect(n)
	case *sqlparser.Delete:
		return convertDelete(n)
	default:
		return nil, ErrUnsupportedSyntax.New(n)
	}
}

func convertSelect(s *sqlparser.Select) (*ast.Select, error) {
	if s.Having != nil {
		return nil, ErrUnsupportedFeature.New("HAVING")
	}

	projections, err := selectExprsToExpressions(s.SelectExprs)
	if err != nil {
		return nil, err
	}

	from, err := tableExprsToRefs(s.From)
	if err != nil {
		return nil, err
	}

	where, err := whereToConjuncts(s.Where)
	if err != nil {
		return nil, err
	}

	var groupBy []sql.Expression
	for _, g := range s.GroupBy {
		e, err := exprToExpression(g)
		if err != nil {
			return nil, err
		}
		groupBy = append(groupBy, e)
	}

	orderBy, err := orderByToFields(s.OrderBy)
	if err != nil {
		return nil, err
	}

	return &ast.Select{
		Projections: projections,
		From:        from,
		Where:       where,
		GroupBy:     groupBy,
		OrderBy:     orderBy,
	}, nil
}

func convertDelete(d *sqlparser.Delete) (*ast.Delete, error) {
	if len(d.TableExprs) != 1 {
		return nil, ErrUnsupportedFeature.New("DELETE over multiple tables")
	}

	aliased, ok := d.TableExprs[0].(*sqlparser.AliasedTableExpr)
	if !ok {
		return nil, ErrUnsupportedSyntax.New(d.TableExprs[0])
	}
	table, ok := aliased.Expr.(sqlparser.TableName)
	if !ok {
		return nil, ErrUnsupportedSyntax.New(aliased.Expr)
	}

	where, err := whereToConjuncts(d.Where)
	if err != nil {
		return nil, err
	}

	return &ast.Delete{
		Table: table.Name.String(),
		Where: where,
	}, nil
}

func whereToConjuncts(w *sqlparser.Where) ([]sql.Expression, error) {
	if w == nil {
		return nil, nil
	}
	e, err := exprToExpression(w.Expr)
	if err != nil {
		return nil, err
	}
	return expression.SplitConjunction(e), nil
}

func tableExprsToRefs(te sqlparser.TableExprs) ([]ast.TableRef, error) {
	refs := make([]ast.TableRef, 0, len(te))
	for _, t := range te {
		aliased, ok := t.(*sqlparser.AliasedTableExpr)
		if !ok {
			return nil, ErrUnsupportedSyntax.New(t)
		}
		table, ok := aliased.Expr.(sqlparser.TableName)
		if !ok {
			return nil, ErrUnsupportedSyntax.New(aliased.Expr)
		}

		ref := ast.TableRef{Name: table.Name.String()}
		if !aliased.As.IsEmpty() {
			ref.Alias = aliased.As.String()
		}
		refs = append(refs, ref)
	}
	return refs, nil
}

func orderByToFields(ob sqlparser.OrderBy) ([]ast.OrderField, error) {
	var fields []ast.OrderField
	for _, o := range ob {
		e, err := exprToExpression(o.Expr)
		if err != nil {
			return nil, err
		}
		fields = append(fields, ast.OrderField{
			Expr:       e,
			Descending: o.Direction == sqlparser.DescScr,
		})
	}
	return fields, nil
}

func selectExprsToExpressions(se sqlparser.SelectExprs) ([]sql.Expression, error) {
	var exprs []sql.Expression
	for _, e := range se {
		switch v := e.(type) {
		case *sqlparser.StarExpr:
			exprs = append(exprs, expression.NewUnresolvedColumn("*"))
		case *sqlparser.AliasedExpr:
			expr, err := exprToExpression(v.Expr)
			if err != nil {
				return nil, err
			}
			exprs = append(exprs, expr)
		default:
			return nil, ErrUnsupportedSyntax.New(e)
		}
	}
	return exprs, nil
}

func exprToExpression(e sqlparser.Expr) (sql.Expression, error) {
	switch v := e.(type) {
	default:
		return nil, ErrUnsupportedSyntax.New(e)
	case *sqlparser.ComparisonExpr:
		return comparisonExprToExpression(v)
	case *sqlparser.NotExpr:
		c, err := exprToExpression(v.Expr)
		if err != nil {
			return nil, err
		}
		return expression.NewNot(c), nil
	case *sqlparser.SQLVal:
		return convertVal(v)
	case sqlparser.BoolVal:
		return expression.NewLiteral(bool(v), sql.Boolean), nil
	case *sqlparser.ColName:
		if !v.Qualifier.IsEmpty() {
			return expression.NewUnresolvedQualifiedColumn(
				v.Qualifier.Name.String(),
				v.Name.String(),
			), nil
		}
		return expression.NewUnresolvedColumn(v.Name.String()), nil
	case *sqlparser.FuncExpr:
		exprs, err := selectExprsToExpressions(v.Exprs)
		if err != nil {
			return nil, err
		}
		return expression.NewFunction(v.Name.Lowered(), sql.String, exprs...), nil
	case *sqlparser.ParenExpr:
		return exprToExpression(v.Expr)
	case *sqlparser.AndExpr:
		lhs, err := exprToExpression(v.Left)
		if err != nil {
			return nil, err
		}
		rhs, err := exprToExpression(v.Right)
		if err != nil {
			return nil, err
		}
		return expression.NewAnd(lhs, rhs), nil
	case *sqlparser.OrExpr:
		lhs, err := exprToExpression(v.Left)
		if err != nil {
			return nil, err
		}
		rhs, err := exprToExpression(v.Right)
		if err != nil {
			return nil, err
		}
		return expression.NewOr(lhs, rhs), nil
	case sqlparser.ValTuple:
		var exprs = make([]sql.Expression, len(v))
		for i, e := range v {
			expr, err := exprToExpression(e)
			if err != nil {
				return nil, err
			}
			exprs[i] = expr
		}
		return expression.NewTuple(exprs...), nil
	case *sqlparser.BinaryExpr:
		return binaryExprToExpression(v)
	}
}

func comparisonExprToExpression(c *sqlparser.ComparisonExpr) (sql.Expression, error) {
	left, err := exprToExpression(c.Left)
	if err != nil {
		return nil, err
	}

	right, err := exprToExpression(c.Right)
	if err != nil {
		return nil, err
	}

	switch c.Operator {
	case sqlparser.EqualStr:
		return expression.NewEquals(left, right), nil
	case sqlparser.NotEqualStr:
		return expression.NewNotEquals(left, right), nil
	case sqlparser.LessThanStr:
		return expression.NewLessThan(left, right), nil
	case sqlparser.LessEqualStr:
		return expression.NewLessThanOrEqual(left, right), nil
	case sqlparser.GreaterThanStr:
		return expression.NewGreaterThan(left, right), nil
	case sqlparser.GreaterEqualStr:
		return expression.NewGreaterThanOrEqual(left, right), nil
	default:
		return nil, ErrUnsupportedFeature.New(c.Operator)
	}
}

func binaryExprToExpression(b *sqlparser.BinaryExpr) (sql.Expression, error) {
	left, err := exprToExpression(b.Left)
	if err != nil {
		return nil, err
	}

	right, err := exprToExpression(b.Right)
	if err != nil {
		return nil, err
	}

	switch b.Operator {
	case sqlparser.PlusStr, sqlparser.MinusStr, sqlparser.MultStr, sqlparser.DivStr:
		return expression.NewArithmetic(left, right, b.Operator), nil
	default:
		return nil, ErrUnsupportedFeature.New(b.Operator)
	}
}

func convertVal(v *sqlparser.SQLVal) (sql.Expression, error) {
	switch v.Type {
	case sqlparser.StrVal:
		return expression.NewLiteral(string(v.Val), sql.String), nil
	case sqlparser.IntVal:
		val, err := strconv.ParseInt(string(v.Val), 10, 64)
		if err != nil {
			return nil, err
		}
		return expression.NewLiteral(val, sql.Int64), nil
	case sqlparser.FloatVal:
		val, err := strconv.ParseFloat(string(v.Val), 64)
		if err != nil {
			return nil, err
		}
		return expression.NewLiteral(val, sql.Float64), nil
	default:
		return nil, ErrInvalidSQLValType.New(v.Type)
	}
}

package fuseql

import (
	"github.com/mitchellh/hashstructure"
	opentracing "github.com/opentracing/opentracing-go"

	"github.com/fuseql/fuseql/sql"
	"github.com/fuseql/fuseql/sql/ast"
	"github.com/fuseql/fuseql/sql/format"
	"github.com/fuseql/fuseql/sql/parse"
	"github.com/fuseql/fuseql/sql/plan"
)

// Engine is the rendering surface of EXPLAIN, EXPLAIN RAW and EXPLAIN
// SYNTAX. It holds no mutable state: plans and statements are produced
// upstream, rendered here, and discarded.
type Engine struct{}

// New creates a new Engine.
func New() *Engine {
	return &Engine{}
}

// Explain renders a physical plan tree as EXPLAIN text. The engine renders
// exactly the tree it is handed; it does not re-run any optimizer decision,
// so the same tree always yields the same text.
func (e *Engine) Explain(ctx *sql.Context, node sql.Node) (string, error) {
	return e.explain(ctx, node, "explain")
}

// ExplainRaw renders a logical plan tree as EXPLAIN RAW text. Logical and
// physical trees share the same renderer; the difference is which node
// types the upstream planner produced.
func (e *Engine) ExplainRaw(ctx *sql.Context, node sql.Node) (string, error) {
	return e.explain(ctx, node, "explain.raw")
}

func (e *Engine) explain(ctx *sql.Context, node sql.Node, op string) (string, error) {
	span, ctx := ctx.Span(op)
	defer span.Finish()

	if !node.Resolved() {
		return "", sql.ErrNodeUnresolved.New(node)
	}

	text := node.String()

	logger := ctx.Logger().WithField("nodes", plan.Count(node))
	if fp, err := Fingerprint(node); err == nil {
		logger = logger.WithField("fingerprint", fp)
	}
	logger.Debug("rendered plan")

	return text, nil
}

// ExplainSyntax renders a statement tree as canonical SQL.
func (e *Engine) ExplainSyntax(ctx *sql.Context, stmt ast.Statement) (string, error) {
	span, _ := ctx.Span("explain.syntax")
	defer span.Finish()

	return format.Format(stmt), nil
}

// ExplainSyntaxQuery parses the given query and renders it back as
// canonical SQL.
func (e *Engine) ExplainSyntaxQuery(ctx *sql.Context, query string) (string, error) {
	span, ctx := ctx.Span("explain.syntax",
		opentracing.Tag{Key: "query", Value: query})
	defer span.Finish()

	stmt, err := parse.Parse(ctx, query)
	if err != nil {
		return "", err
	}

	return e.ExplainSyntax(ctx, stmt)
}

// Fingerprint hashes the structure of a plan tree. Identical trees always
// hash the same, which pins down render determinism in tests and logs.
func Fingerprint(node sql.Node) (uint64, error) {
	return hashstructure.Hash(node, nil)
}

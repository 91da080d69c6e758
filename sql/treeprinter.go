package sql

import (
	"fmt"
	"strings"

	"gopkg.in/src-d/go-errors.v1"
)

var (
	// ErrNodeAlreadyWritten is returned when WriteNode is called twice on the
	// same printer.
	ErrNodeAlreadyWritten = errors.NewKind("treeprinter: node already written")
	// ErrNodeNotWritten is returned when WriteChildren is called before
	// WriteNode.
	ErrNodeNotWritten = errors.NewKind("treeprinter: a node must be written before its children")
	// ErrChildrenAlreadyWritten is returned when WriteChildren is called twice
	// on the same printer.
	ErrChildrenAlreadyWritten = errors.NewKind("treeprinter: children already written")
)

// TreePrinter renders a plan node and its children as a tree for EXPLAIN
// output. One printer renders exactly one node: write the node label first,
// then the already-rendered blocks of its children.
type TreePrinter struct {
	lines           []string
	nodeWritten     bool
	childrenWritten bool
}

// NewTreePrinter creates a new tree printer.
func NewTreePrinter() *TreePrinter {
	return &TreePrinter{}
}

// WriteNode writes the label line of the node.
func (p *TreePrinter) WriteNode(format string, args ...interface{}) error {
	if p.nodeWritten {
		return ErrNodeAlreadyWritten.New()
	}
	p.lines = append(p.lines, fmt.Sprintf(format, args...))
	p.nodeWritten = true
	return nil
}

// WriteChildren writes the rendered blocks of the node children, connecting
// them to the node with tree-drawing glyphs. A child block may span multiple
// lines; continuation lines are indented under their connector.
func (p *TreePrinter) WriteChildren(children ...string) error {
	if !p.nodeWritten {
		return ErrNodeNotWritten.New()
	}
	if p.childrenWritten {
		return ErrChildrenAlreadyWritten.New()
	}
	p.childrenWritten = true

	for i, child := range children {
		last := i == len(children)-1
		branch, cont := "├── ", "│   "
		if last {
			branch, cont = "└── ", "    "
		}

		for j, line := range strings.Split(strings.TrimRight(child, "\n"), "\n") {
			if j == 0 {
				p.lines = append(p.lines, branch+line)
			} else {
				p.lines = append(p.lines, cont+line)
			}
		}
	}
	return nil
}

// String returns the rendered tree. Lines are joined with \n and there is no
// trailing newline, so blocks compose when passed to a parent printer.
func (p *TreePrinter) String() string {
	return strings.Join(p.lines, "\n")
}

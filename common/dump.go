package common

import (
	"fmt"
	"io"
	"strings"
)

func (p *AstProgram) Dump(w io.Writer) {
	fmt.Fprintf(w, "Program %s\n", p.Span)

	for _, stmt := range p.Stmts {
		dumpNode(w, stmt, 1)
	}
}

// DumpNode writes node and its children as an indented tree, one node per
// line.
func DumpNode(w io.Writer, node AstNode) {
	dumpNode(w, node, 0)
}

func dumpNode(w io.Writer, node AstNode, depth int) {
	indent := strings.Repeat("  ", depth)

	switch v := node.(type) {
	case *AstLet:
		fmt.Fprintf(w, "%sLet %s %s\n", indent, v.Symbol.Name, v.Span)
		dumpNode(w, v.Initializer, depth+1)
	case *AstReturn:
		fmt.Fprintf(w, "%sReturn %s\n", indent, v.Span)
		dumpNode(w, v.Value, depth+1)
	case *AstExprStmt:
		fmt.Fprintf(w, "%sExprStmt %s\n", indent, v.Span)
		dumpNode(w, v.Expr, depth+1)
	case *AstBinaryOp:
		fmt.Fprintf(w, "%sBinary %s %s\n", indent, v.OpKind, v.Span)
		dumpNode(w, v.Lhs, depth+1)
		dumpNode(w, v.Rhs, depth+1)
	case *AstUnaryOp:
		fmt.Fprintf(w, "%sUnary %s %s\n", indent, v.OpKind, v.Span)
		dumpNode(w, v.Operand, depth+1)
	case *AstGrouping:
		fmt.Fprintf(w, "%sGrouping %s\n", indent, v.Span)
		dumpNode(w, v.Inner, depth+1)
	case *AstBlock:
		fmt.Fprintf(w, "%sBlock %s\n", indent, v.Span)
		for _, stmt := range v.Stmts {
			dumpNode(w, stmt, depth+1)
		}
	case *AstIdent:
		fmt.Fprintf(w, "%sIdent %s %s\n", indent, v.Name, v.Span)
	case *AstLiteral:
		fmt.Fprintf(w, "%sLiteral %s %s\n", indent, v.Value, v.Span)
	case *AstProgram:
		v.Dump(w)
	default:
		fmt.Fprintf(w, "%s<unknown node %T>\n", indent, node)
	}
}

package common

import (
	"propanec/report"
)

type AstNode interface {
	GetSpan() report.Span
}

type AstBase struct {
	Span report.Span
}

func (ab *AstBase) GetSpan() report.Span {
	return ab.Span
}

/* -------------------------------------------------------------------------- */

type AstStmt interface {
	AstNode

	stmtNode()
}

type AstStmtBase struct {
	AstBase
}

func (*AstStmtBase) stmtNode() {}

/* -------------------------------------------------------------------------- */

type AstExpr interface {
	AstNode

	exprNode()
}

type AstExprBase struct {
	AstBase
}

func (*AstExprBase) exprNode() {}

/* -------------------------------------------------------------------------- */

// AstProgram is the root of a parsed file. Stmts are in source order.
type AstProgram struct {
	AstBase

	File  report.FileID
	Stmts []AstStmt
}

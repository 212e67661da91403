package common

type AstLet struct {
	AstStmtBase

	Symbol      *Symbol
	Initializer AstExpr
}

type AstReturn struct {
	AstStmtBase

	Value AstExpr
}

type AstExprStmt struct {
	AstStmtBase

	Expr AstExpr
}

package common

type AstOpKind uint8

const (
	AOP_EQ AstOpKind = iota
	AOP_NEQ
	AOP_LT
	AOP_LTEQ
	AOP_GT
	AOP_GTEQ

	AOP_ADD
	AOP_SUB
	AOP_MUL
	AOP_DIV

	AOP_NEG
	AOP_NOT
)

var opKindNames = [...]string{
	AOP_EQ:   "==",
	AOP_NEQ:  "!=",
	AOP_LT:   "<",
	AOP_LTEQ: "<=",
	AOP_GT:   ">",
	AOP_GTEQ: ">=",
	AOP_ADD:  "+",
	AOP_SUB:  "-",
	AOP_MUL:  "*",
	AOP_DIV:  "/",
	AOP_NEG:  "-",
	AOP_NOT:  "!",
}

func (k AstOpKind) String() string {
	if int(k) < len(opKindNames) {
		return opKindNames[k]
	}

	return "?"
}

type AstBinaryOp struct {
	AstExprBase

	OpKind   AstOpKind
	Lhs, Rhs AstExpr
}

type AstUnaryOp struct {
	AstExprBase

	OpKind  AstOpKind
	Operand AstExpr
}

type AstGrouping struct {
	AstExprBase

	Inner AstExpr
}

type AstBlock struct {
	AstExprBase

	Stmts []AstStmt
}

type AstIdent struct {
	AstExprBase

	Name string
}

type AstLiteral struct {
	AstExprBase

	Value LitValue
}
